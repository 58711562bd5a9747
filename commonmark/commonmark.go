// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package commonmark binds the goldmark CommonMark parser to the
// renderer's node model.
//
// The renderer never tokenizes markdown itself; it consumes a
// [markdown.Node] tree from an external parser. This package is that
// boundary: [Parse] runs goldmark with the GFM extensions the renderer
// understands (tables, strikethrough, task lists, footnotes) and
// [Convert] maps the resulting goldmark AST onto renderer nodes.
package commonmark

import (
	"strconv"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"notecard.dev/markdown"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
		extension.Footnote,
	),
)

// Parse parses markdown source into a renderer tree.
func Parse(source []byte) *markdown.Node {
	doc := md.Parser().Parse(text.NewReader(source))
	return Convert(doc, source)
}

// Convert maps a goldmark AST onto the renderer's node model. The
// source text the AST was parsed from is needed because goldmark
// nodes reference it by segment.
func Convert(doc ast.Node, source []byte) *markdown.Node {
	c := &converter{
		source:  source,
		defs:    map[int]*footnoteDef{},
		refSeen: map[int]int{},
	}
	c.collectFootnotes(doc)

	root := markdown.NewNode(markdown.KindDocument)
	c.appendChildren(root, doc)
	return root
}

type footnoteDef struct {
	name string
	refs int
}

type converter struct {
	source  []byte
	defs    map[int]*footnoteDef // footnote index -> definition info
	refSeen map[int]int          // footnote index -> references converted so far

	// trimLeadingSpace drops one leading space from the next text
	// node, consuming the separator after a task checkbox.
	trimLeadingSpace bool
}

// collectFootnotes pre-walks the tree so references, which precede
// their definitions in document order, can resolve names and counts.
func (c *converter) collectFootnotes(doc ast.Node) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch n := n.(type) {
		case *east.Footnote:
			c.defs[n.Index] = &footnoteDef{name: string(n.Ref)}
		case *east.FootnoteLink:
			if def, ok := c.defs[n.Index]; ok {
				def.refs++
			} else {
				c.defs[n.Index] = &footnoteDef{refs: 1}
			}
		}
		return ast.WalkContinue, nil
	})
}

func (c *converter) footnoteName(index int) string {
	if def, ok := c.defs[index]; ok && def.name != "" {
		return def.name
	}
	return strconv.Itoa(index)
}

// appendText adds text to parent, merging into a preceding text node.
// goldmark leaves unmatched link brackets as their own text nodes;
// merging restores contiguous literals, which the note-card bracket
// markers depend on.
func (c *converter) appendText(parent *markdown.Node, s string) {
	if last := parent.LastChild; last != nil && last.Kind == markdown.KindText {
		last.Literal += s
		return
	}
	t := markdown.NewNode(markdown.KindText)
	t.Literal = s
	parent.AppendChild(t)
}

func (c *converter) appendChildren(parent *markdown.Node, gn ast.Node) {
	for ch := gn.FirstChild(); ch != nil; ch = ch.NextSibling() {
		c.appendChild(parent, ch)
	}
}

func (c *converter) appendChild(parent *markdown.Node, gn ast.Node) {
	switch n := gn.(type) {
	case *ast.Text:
		v := n.Segment.Value(c.source)
		if c.trimLeadingSpace {
			c.trimLeadingSpace = false
			if len(v) > 0 && v[0] == ' ' {
				v = v[1:]
			}
		}
		if len(v) > 0 {
			c.appendText(parent, string(v))
		}
		switch {
		case n.HardLineBreak():
			parent.AppendChild(markdown.NewNode(markdown.KindLineBreak))
		case n.SoftLineBreak():
			parent.AppendChild(markdown.NewNode(markdown.KindSoftBreak))
		}

	case *ast.String:
		c.appendText(parent, string(n.Value))

	case *east.TaskCheckBox:
		// Collapsed into the enclosing item; eat the separator.
		c.trimLeadingSpace = true

	case *east.FootnoteList:
		// Definitions hang off the document directly.
		c.appendChildren(parent, n)

	case *east.FootnoteBacklink:
		// The renderer generates back-references itself.

	default:
		if node := c.convert(gn); node != nil {
			parent.AppendChild(node)
		}
	}
}

// convert maps one goldmark node (and its subtree) onto a renderer
// node. It returns nil for nodes with no counterpart.
func (c *converter) convert(gn ast.Node) *markdown.Node {
	switch n := gn.(type) {
	case *ast.Document:
		node := markdown.NewNode(markdown.KindDocument)
		c.appendChildren(node, n)
		return node

	case *ast.Paragraph:
		node := markdown.NewNode(markdown.KindParagraph)
		c.appendChildren(node, n)
		return node

	case *ast.TextBlock:
		// Tight list content; tightness lives on the list node.
		node := markdown.NewNode(markdown.KindParagraph)
		c.appendChildren(node, n)
		return node

	case *ast.Heading:
		node := markdown.NewNode(markdown.KindHeading)
		node.Heading.Level = n.Level
		c.appendChildren(node, n)
		return node

	case *ast.Blockquote:
		node := markdown.NewNode(markdown.KindBlockQuote)
		c.appendChildren(node, n)
		return node

	case *ast.List:
		node := markdown.NewNode(markdown.KindList)
		node.List.Ordered = n.IsOrdered()
		node.List.Start = n.Start
		node.List.Tight = n.IsTight
		c.appendChildren(node, n)
		for ch := node.FirstChild; ch != nil; ch = ch.NextSibling {
			if ch.Kind == markdown.KindTaskItem {
				node.List.IsTaskList = true
				break
			}
		}
		return node

	case *ast.ListItem:
		node := markdown.NewNode(markdown.KindItem)
		if cb := taskCheckBox(n); cb != nil {
			node.Kind = markdown.KindTaskItem
			node.Task.Checked = cb.IsChecked
		}
		c.appendChildren(node, n)
		return node

	case *ast.ThematicBreak:
		return markdown.NewNode(markdown.KindThematicBreak)

	case *ast.FencedCodeBlock:
		node := markdown.NewNode(markdown.KindCodeBlock)
		if n.Info != nil {
			node.Code.Info = string(n.Info.Segment.Value(c.source))
		}
		node.Literal = linesText(n, c.source)
		return node

	case *ast.CodeBlock:
		node := markdown.NewNode(markdown.KindCodeBlock)
		node.Literal = linesText(n, c.source)
		return node

	case *ast.HTMLBlock:
		node := markdown.NewNode(markdown.KindHTMLBlock)
		var b strings.Builder
		b.WriteString(linesText(n, c.source))
		if n.HasClosure() {
			b.Write(n.ClosureLine.Value(c.source))
		}
		node.Literal = b.String()
		return node

	case *ast.RawHTML:
		node := markdown.NewNode(markdown.KindHTMLInline)
		var b strings.Builder
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			b.Write(seg.Value(c.source))
		}
		node.Literal = b.String()
		return node

	case *ast.CodeSpan:
		node := markdown.NewNode(markdown.KindCode)
		var b strings.Builder
		for ch := n.FirstChild(); ch != nil; ch = ch.NextSibling() {
			if t, ok := ch.(*ast.Text); ok {
				b.Write(t.Segment.Value(c.source))
			}
		}
		node.Literal = b.String()
		return node

	case *ast.Emphasis:
		kind := markdown.KindEmph
		if n.Level == 2 {
			kind = markdown.KindStrong
		}
		node := markdown.NewNode(kind)
		c.appendChildren(node, n)
		return node

	case *east.Strikethrough:
		node := markdown.NewNode(markdown.KindStrikethrough)
		c.appendChildren(node, n)
		return node

	case *ast.Link:
		node := markdown.NewNode(markdown.KindLink)
		node.Link.URL = string(n.Destination)
		node.Link.Title = string(n.Title)
		c.appendChildren(node, n)
		return node

	case *ast.Image:
		node := markdown.NewNode(markdown.KindImage)
		node.Link.URL = string(n.Destination)
		node.Link.Title = string(n.Title)
		c.appendChildren(node, n)
		return node

	case *ast.AutoLink:
		url := string(n.URL(c.source))
		label := string(n.Label(c.source))
		if n.AutoLinkType == ast.AutoLinkEmail && !strings.HasPrefix(url, "mailto:") {
			url = "mailto:" + url
		}
		node := markdown.NewNode(markdown.KindLink)
		node.Link.URL = url
		t := markdown.NewNode(markdown.KindText)
		t.Literal = label
		node.AppendChild(t)
		return node

	case *east.Table:
		node := markdown.NewNode(markdown.KindTable)
		node.Table.Alignments = alignments(n.Alignments)
		c.appendChildren(node, n)
		return node

	case *east.TableHeader:
		node := markdown.NewNode(markdown.KindTableRow)
		node.Row.Header = true
		c.appendChildren(node, n)
		return node

	case *east.TableRow:
		node := markdown.NewNode(markdown.KindTableRow)
		c.appendChildren(node, n)
		return node

	case *east.TableCell:
		node := markdown.NewNode(markdown.KindTableCell)
		c.appendChildren(node, n)
		return node

	case *east.Footnote:
		node := markdown.NewNode(markdown.KindFootnoteDefinition)
		node.Footnote.Name = c.footnoteName(n.Index)
		if def, ok := c.defs[n.Index]; ok {
			node.Footnote.TotalRefs = def.refs
		}
		c.appendChildren(node, n)
		return node

	case *east.FootnoteLink:
		c.refSeen[n.Index]++
		node := markdown.NewNode(markdown.KindFootnoteReference)
		node.Footnote.Name = c.footnoteName(n.Index)
		node.Footnote.Ix = n.Index
		node.Footnote.RefNum = c.refSeen[n.Index]
		return node

	default:
		// No counterpart: splice the children into a bare container
		// so unknown wrappers degrade instead of dropping content.
		node := markdown.NewNode(markdown.KindRaw)
		c.appendChildren(node, n)
		if node.FirstChild == nil {
			return nil
		}
		return node
	}
}

// taskCheckBox returns the checkbox inline opening a task list item,
// or nil.
func taskCheckBox(li *ast.ListItem) *east.TaskCheckBox {
	first := li.FirstChild()
	if first == nil {
		return nil
	}
	cb, _ := first.FirstChild().(*east.TaskCheckBox)
	return cb
}

func linesText(n ast.Node, source []byte) string {
	var b strings.Builder
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		b.Write(seg.Value(source))
	}
	return b.String()
}

func alignments(in []east.Alignment) []markdown.Alignment {
	out := make([]markdown.Alignment, len(in))
	for i, a := range in {
		switch a {
		case east.AlignLeft:
			out[i] = markdown.AlignLeft
		case east.AlignRight:
			out[i] = markdown.AlignRight
		case east.AlignCenter:
			out[i] = markdown.AlignCenter
		default:
			out[i] = markdown.AlignNone
		}
	}
	return out
}
