// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commonmark

import (
	"testing"

	"github.com/stretchr/testify/require"

	"notecard.dev/markdown"
)

// kinds returns the child kinds of a node, for shape assertions.
func kinds(n *markdown.Node) []markdown.Kind {
	var out []markdown.Kind
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		out = append(out, ch.Kind)
	}
	return out
}

func TestParseShape(t *testing.T) {
	doc := Parse([]byte("# Title\n\nHello *world*.\n"))
	require.Equal(t, markdown.KindDocument, doc.Kind)
	require.Equal(t, []markdown.Kind{markdown.KindHeading, markdown.KindParagraph}, kinds(doc))

	h := doc.FirstChild
	require.Equal(t, 1, h.Heading.Level)
	require.Equal(t, "Title", h.FirstChild.Literal)

	p := h.NextSibling
	require.Equal(t, []markdown.Kind{markdown.KindText, markdown.KindEmph, markdown.KindText}, kinds(p))
	require.Equal(t, "Hello ", p.FirstChild.Literal)
	require.Equal(t, "world", p.FirstChild.NextSibling.FirstChild.Literal)
}

func TestParseLinksParents(t *testing.T) {
	// Every node must point back at its parent; the renderer walks
	// sibling and parent links freely.
	doc := Parse([]byte("- a\n- b\n\n> **Note:** c\n"))
	var walk func(n *markdown.Node)
	walk = func(n *markdown.Node) {
		for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
			require.Same(t, n, ch.Parent)
			walk(ch)
		}
	}
	walk(doc)
}

func TestTaskListCollapse(t *testing.T) {
	doc := Parse([]byte("- [x] done\n- [ ] todo\n"))
	list := doc.FirstChild
	require.Equal(t, markdown.KindList, list.Kind)
	require.True(t, list.List.IsTaskList)
	require.True(t, list.List.Tight)

	done := list.FirstChild
	require.Equal(t, markdown.KindTaskItem, done.Kind)
	require.True(t, done.Task.Checked)
	// The checkbox and its separating space are consumed.
	require.Equal(t, "done", done.FirstChild.FirstChild.Literal)

	todo := done.NextSibling
	require.Equal(t, markdown.KindTaskItem, todo.Kind)
	require.False(t, todo.Task.Checked)
	require.Equal(t, "todo", todo.FirstChild.FirstChild.Literal)
}

func TestTextMerging(t *testing.T) {
	// An unmatched "[" comes back from goldmark as its own text node;
	// adjacent text merges into one literal so leading markers like
	// "[!NOTE]" survive as a prefix.
	doc := Parse([]byte("> [!NOTE]\n> Hi\n"))
	para := doc.FirstChild.FirstChild
	require.Equal(t, markdown.KindParagraph, para.Kind)
	require.Equal(t, markdown.KindText, para.FirstChild.Kind)
	require.Equal(t, "[!NOTE]", para.FirstChild.Literal)
	require.Equal(t, markdown.KindSoftBreak, para.FirstChild.NextSibling.Kind)
}

func TestFootnotes(t *testing.T) {
	doc := Parse([]byte("A[^x] B[^x].\n\n[^x]: N.\n"))

	para := doc.FirstChild
	var refs []*markdown.Node
	for ch := para.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Kind == markdown.KindFootnoteReference {
			refs = append(refs, ch)
		}
	}
	require.Len(t, refs, 2)
	require.Equal(t, "x", refs[0].Footnote.Name)
	require.Equal(t, 1, refs[0].Footnote.Ix)
	require.Equal(t, 1, refs[0].Footnote.RefNum)
	require.Equal(t, 2, refs[1].Footnote.RefNum)

	// The footnote list is spliced away: the definition hangs off the
	// document directly.
	def := doc.LastChild
	require.Equal(t, markdown.KindFootnoteDefinition, def.Kind)
	require.Equal(t, "x", def.Footnote.Name)
	require.Equal(t, 2, def.Footnote.TotalRefs)
}

func TestTable(t *testing.T) {
	doc := Parse([]byte("| A | B |\n| --- | :-: |\n| 1 | 2 |\n"))
	table := doc.FirstChild
	require.Equal(t, markdown.KindTable, table.Kind)
	require.Equal(t, []markdown.Alignment{markdown.AlignNone, markdown.AlignCenter}, table.Table.Alignments)

	header := table.FirstChild
	require.Equal(t, markdown.KindTableRow, header.Kind)
	require.True(t, header.Row.Header)
	require.Equal(t, []markdown.Kind{markdown.KindTableCell, markdown.KindTableCell}, kinds(header))

	body := header.NextSibling
	require.False(t, body.Row.Header)
	require.Equal(t, "1", body.FirstChild.FirstChild.Literal)
}

func TestAutolinks(t *testing.T) {
	doc := Parse([]byte("<https://example.com/>\n"))
	link := doc.FirstChild.FirstChild
	require.Equal(t, markdown.KindLink, link.Kind)
	require.Equal(t, "https://example.com/", link.Link.URL)
	require.Equal(t, "https://example.com/", link.FirstChild.Literal)

	doc = Parse([]byte("<a@b.example>\n"))
	link = doc.FirstChild.FirstChild
	require.Equal(t, "mailto:a@b.example", link.Link.URL)
	require.Equal(t, "a@b.example", link.FirstChild.Literal)
}

func TestCodeBlocks(t *testing.T) {
	doc := Parse([]byte("```js hidden\nlet x;\n```\n"))
	code := doc.FirstChild
	require.Equal(t, markdown.KindCodeBlock, code.Kind)
	require.Equal(t, "js hidden", code.Code.Info)
	require.Equal(t, "let x;\n", code.Literal)

	doc = Parse([]byte("    x = 1\n"))
	code = doc.FirstChild
	require.Equal(t, markdown.KindCodeBlock, code.Kind)
	require.Equal(t, "", code.Code.Info)
	require.Equal(t, "x = 1\n", code.Literal)
}

func TestRawHTML(t *testing.T) {
	doc := Parse([]byte("a <b>x</b> c\n"))
	para := doc.FirstChild
	require.Equal(t, []markdown.Kind{
		markdown.KindText, markdown.KindHTMLInline, markdown.KindText,
		markdown.KindHTMLInline, markdown.KindText,
	}, kinds(para))
	require.Equal(t, "<b>", para.FirstChild.NextSibling.Literal)

	doc = Parse([]byte("<div>\nx\n</div>\n"))
	block := doc.FirstChild
	require.Equal(t, markdown.KindHTMLBlock, block.Kind)
	require.Equal(t, "<div>\nx\n</div>\n", block.Literal)
}
