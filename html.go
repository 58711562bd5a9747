// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"notecard.dev/markdown/locale"
)

// templDelimStart marks templated content in heading text. A heading
// containing it gets a data-update-id attribute instead of a computed
// id; the surrounding pipeline fills the id in after template
// expansion.
const templDelimStart = "{{"

// macroCommentPrefix marks render-marker comments injected before
// parsing. Such HTML blocks are emitted without the usual blank-line
// padding so the markers stay glued to the surrounding flow.
const macroCommentPrefix = "<!-- md____"

// Render formats the tree rooted at doc as HTML on w.
//
// The tree may be mutated: block quotes recognized as note cards for
// the given locale have their marker nodes detached, so a later
// render of the same tree sees the markers already gone.
//
// The only error is a failed write to w; it aborts the render and is
// returned unmodified. Output already written is not rolled back.
func Render(w io.Writer, doc *Node, opts *Options, l locale.Locale) error {
	return RenderWithPlugins(w, doc, opts, nil, l)
}

// RenderWithPlugins is [Render] with optional extension points.
func RenderWithPlugins(w io.Writer, doc *Node, opts *Options, plugins *Plugins, l locale.Locale) error {
	if opts == nil {
		opts = &Options{}
	}
	if plugins == nil {
		plugins = &Plugins{}
	}
	f := &formatter{
		w:       &writer{w: w, lastLF: true},
		opts:    opts,
		plugins: plugins,
		anchors: NewAnchorizer(),
		locale:  l,
	}
	if err := f.format(doc, false); err != nil {
		return err
	}
	if f.footnoteIx > 0 {
		f.out("</ol>\n</section>\n")
	}
	return f.w.err
}

// ToHTML renders doc to a string.
func ToHTML(doc *Node, opts *Options, l locale.Locale) string {
	var buf bytes.Buffer
	Render(&buf, doc, opts, l) // a bytes.Buffer write cannot fail
	return buf.String()
}

// A writer tracks whether the last byte written was a newline, so
// block boundaries can be canonicalized to exactly one, and carries
// the first write error so the walk can stop at the next frame.
type writer struct {
	w      io.Writer
	err    error
	lastLF bool
}

func (w *writer) Write(p []byte) (int, error) {
	if w.err != nil {
		return 0, w.err
	}
	n, err := w.w.Write(p)
	if n > 0 {
		w.lastLF = p[n-1] == '\n'
	}
	if err != nil {
		w.err = err
	}
	return n, err
}

func (w *writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// A formatter is the per-render state. It must not be shared between
// renders: the anchor registry and footnote counters are scoped to
// one document.
type formatter struct {
	w                 *writer
	opts              *Options
	plugins           *Plugins
	anchors           *Anchorizer
	locale            locale.Locale
	footnoteIx        int // definitions seen so far
	writtenFootnoteIx int // last definition whose backrefs were written
}

type phase uint8

const (
	phasePre phase = iota
	phasePost
)

// renderFlag distinguishes a block quote rewritten into a note-card
// container from an ordinary one, so the matching close tag is chosen
// on exit.
type renderFlag uint8

const (
	flagNone renderFlag = iota
	flagCard
)

type frame struct {
	node  *Node
	plain bool
	phase phase
	flag  renderFlag
}

func (f *formatter) out(s string) {
	f.w.WriteString(s)
}

func (f *formatter) escape(s string) {
	Escape(f.w, []byte(s))
}

func (f *formatter) escapeHref(s string) {
	EscapeHref(f.w, []byte(s))
}

// cr ensures the output ends in a newline, writing one only if the
// last byte written was not already one.
func (f *formatter) cr() {
	if !f.w.lastLF {
		f.out("\n")
	}
}

// fail records an error reported by a plugin rather than by the sink.
func (f *formatter) fail(err error) {
	if err != nil && f.w.err == nil {
		f.w.err = err
	}
}

// format walks the tree iteratively with an explicit work stack and
// pre/post phases. During the pre phase a node renders its opening
// markup and pushes itself back for the post phase, then its children
// in reverse order, so the first child renders next. Plain mode (alt
// text collection) renders leaf text only and never schedules post
// frames.
func (f *formatter) format(root *Node, plain bool) error {
	stack := []frame{{root, plain, phasePre, flagNone}}

	for len(stack) > 0 {
		if f.w.err != nil {
			return f.w.err
		}
		fr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch fr.phase {
		case phasePre:
			newPlain := fr.plain
			if fr.plain {
				switch fr.node.Kind {
				case KindText, KindCode, KindHTMLInline, KindMath:
					f.escape(fr.node.Literal)
				case KindLineBreak, KindSoftBreak:
					f.out(" ")
				}
			} else {
				var newFlag renderFlag
				newPlain, newFlag = f.formatNode(fr.node, true, fr.flag)
				stack = append(stack, frame{fr.node, false, phasePost, newFlag})
			}
			for ch := fr.node.LastChild; ch != nil; ch = ch.PrevSibling {
				stack = append(stack, frame{ch, newPlain, phasePre, flagNone})
			}
		case phasePost:
			f.formatNode(fr.node, false, fr.flag)
		}
	}

	return f.w.err
}

// collectText flattens the text content of a subtree: text, code and
// math literals concatenated, line and soft breaks as one space.
func collectText(b *strings.Builder, node *Node) {
	switch node.Kind {
	case KindText, KindCode, KindMath:
		b.WriteString(node.Literal)
	case KindLineBreak, KindSoftBreak:
		b.WriteByte(' ')
	default:
		for ch := node.FirstChild; ch != nil; ch = ch.NextSibling {
			collectText(b, ch)
		}
	}
}

func collectTextString(node *Node) string {
	var b strings.Builder
	collectText(&b, node)
	return b.String()
}

func (f *formatter) sourcepos(node *Node) {
	if f.opts.Sourcepos && node.Pos.IsValid() {
		fmt.Fprintf(f.w, " data-sourcepos=\"%s\"", node.Pos)
	}
}

func (f *formatter) inlineSourcepos(node *Node) {
	if f.opts.InlineSourcepos {
		f.sourcepos(node)
	}
}

// formatNode emits the markup for one node in one phase. It returns
// whether the node's children render in plain mode and the flag to
// carry to the node's post phase.
func (f *formatter) formatNode(node *Node, entering bool, flag renderFlag) (bool, renderFlag) {
	switch node.Kind {
	case KindDocument, KindFrontMatter, KindDescriptionItem:
		// No markup of their own.

	case KindBlockQuote:
		f.cr()
		if entering {
			card, ok := classifyNoteCard(node, f.locale)
			if ok {
				switch card {
				case Callout:
					f.out(`<div class="callout"`)
				case Note:
					f.out(`<div class="notecard note" data-add-note`)
				case Warning:
					f.out(`<div class="notecard warning" data-add-warning`)
				}
				f.sourcepos(node)
				f.out(">\n")
				return false, flagCard
			}
			f.out("<blockquote")
			f.sourcepos(node)
			f.out(">\n")
		} else if flag == flagCard {
			f.out("</div>\n")
		} else {
			f.out("</blockquote>\n")
		}

	case KindList:
		if entering {
			f.cr()
			if node.List.Ordered {
				f.out("<ol")
			} else {
				f.out("<ul")
			}
			if node.List.IsTaskList && f.opts.TasklistClasses {
				f.out(` class="contains-task-list"`)
			}
			f.sourcepos(node)
			if node.List.Ordered && node.List.Start != 1 {
				fmt.Fprintf(f.w, " start=\"%d\">\n", node.List.Start)
			} else {
				f.out(">\n")
			}
		} else if node.List.Ordered {
			f.out("</ol>\n")
		} else {
			f.out("</ul>\n")
		}

	case KindItem:
		if entering {
			f.cr()
			f.out("<li")
			f.sourcepos(node)
			f.out(">")
		} else {
			f.out("</li>\n")
		}

	case KindTaskItem:
		if entering {
			f.cr()
			f.out("<li")
			if f.opts.TasklistClasses {
				f.out(` class="task-list-item"`)
			}
			f.sourcepos(node)
			f.out(">")
			f.out(`<input type="checkbox"`)
			if f.opts.TasklistClasses {
				f.out(` class="task-list-item-checkbox"`)
			}
			if node.Task.Checked {
				f.out(` checked=""`)
			}
			f.out(` disabled="" /> `)
		} else {
			f.out("</li>\n")
		}

	case KindDescriptionList:
		if entering {
			f.cr()
			f.out("<dl")
			f.sourcepos(node)
			f.out(">\n")
		} else {
			f.out("</dl>\n")
		}

	case KindDescriptionTerm:
		if entering {
			f.cr()
			f.out("<dt")
			f.sourcepos(node)
			f.out(">")
		} else {
			f.out("</dt>\n")
		}

	case KindDescriptionDetails:
		if entering {
			f.cr()
			f.out("<dd")
			f.sourcepos(node)
			f.out(">")
		} else {
			f.out("</dd>\n")
		}

	case KindHeading:
		f.formatHeading(node, entering)

	case KindCodeBlock:
		if entering {
			f.formatCodeBlock(node)
		}

	case KindHTMLBlock:
		// No sourcepos.
		if entering {
			isMacro := strings.HasPrefix(node.Literal, macroCommentPrefix)
			if !isMacro {
				f.cr()
			}
			literal := node.Literal
			if isMacro {
				literal = strings.TrimSuffix(literal, "\n")
			}
			switch {
			case f.opts.Escape:
				f.escape(literal)
			case !f.opts.Unsafe:
				f.out("<!-- raw HTML omitted -->")
			case f.opts.Tagfilter:
				tagfilterBlock(f.w, []byte(literal))
			default:
				f.out(literal)
			}
			if !isMacro {
				f.cr()
			}
		}

	case KindThematicBreak:
		if entering {
			f.cr()
			f.out("<hr")
			f.sourcepos(node)
			f.out(" />\n")
		}

	case KindParagraph:
		f.formatParagraph(node, entering)

	case KindText:
		// Nowhere to put sourcepos.
		if entering {
			f.escape(node.Literal)
		}

	case KindLineBreak:
		// Unreliable sourcepos.
		if entering {
			f.out("<br")
			f.inlineSourcepos(node)
			f.out(" />\n")
		}

	case KindSoftBreak:
		// Unreliable sourcepos.
		if entering {
			if f.opts.HardBreaks {
				f.out("<br")
				f.inlineSourcepos(node)
				f.out(" />\n")
			} else {
				f.out("\n")
			}
		}

	case KindCode:
		// Unreliable sourcepos.
		if entering {
			f.out("<code")
			f.inlineSourcepos(node)
			f.out(">")
			f.escape(node.Literal)
			f.out("</code>")
		}

	case KindHTMLInline:
		// No sourcepos.
		if entering {
			literal := node.Literal
			switch {
			case f.opts.Escape:
				f.escape(literal)
			case !f.opts.Unsafe:
				f.out("<!-- raw HTML omitted -->")
			case f.opts.Tagfilter && tagfilter([]byte(literal)):
				f.out("&lt;")
				f.out(literal[1:])
			default:
				f.out(literal)
			}
		}

	case KindRaw:
		// No sourcepos.
		if entering {
			f.out(node.Literal)
		}

	case KindStrong:
		// Unreliable sourcepos. Under GFM quirks a strong span
		// directly inside another renders no tags of its own.
		if !f.opts.GFMQuirks || node.Parent == nil || node.Parent.Kind != KindStrong {
			if entering {
				f.out("<strong")
				f.inlineSourcepos(node)
				f.out(">")
			} else {
				f.out("</strong>")
			}
		}

	case KindEmph:
		// Unreliable sourcepos.
		if entering {
			f.out("<em")
			f.inlineSourcepos(node)
			f.out(">")
		} else {
			f.out("</em>")
		}

	case KindStrikethrough:
		// Unreliable sourcepos.
		if entering {
			f.out("<del")
			f.inlineSourcepos(node)
			f.out(">")
		} else {
			f.out("</del>")
		}

	case KindSuperscript:
		// Unreliable sourcepos.
		if entering {
			f.out("<sup")
			f.inlineSourcepos(node)
			f.out(">")
		} else {
			f.out("</sup>")
		}

	case KindSubscript:
		// Unreliable sourcepos.
		if entering {
			f.out("<sub")
			f.inlineSourcepos(node)
			f.out(">")
		} else {
			f.out("</sub>")
		}

	case KindUnderline:
		// Unreliable sourcepos.
		if entering {
			f.out("<u")
			f.inlineSourcepos(node)
			f.out(">")
		} else {
			f.out("</u>")
		}

	case KindSpoileredText:
		// Unreliable sourcepos.
		if entering {
			f.out("<span")
			f.inlineSourcepos(node)
			f.out(` class="spoiler">`)
		} else {
			f.out("</span>")
		}

	case KindLink:
		// Unreliable sourcepos. Under relaxed autolinks a link
		// directly inside another renders no anchor of its own.
		if !f.opts.RelaxedAutolinks || node.Parent == nil || node.Parent.Kind != KindLink {
			if entering {
				f.out("<a")
				f.inlineSourcepos(node)
				f.out(` href="`)
				url := node.Link.URL
				if f.opts.Unsafe || !f.opts.dangerous([]byte(url)) {
					f.escapeHref(url)
				}
				if node.Link.Title != "" {
					f.out(`" title="`)
					f.escape(node.Link.Title)
				}
				if collectTextString(node) == url {
					f.out(`" data-autolink="`)
				}
				f.out(`">`)
			} else {
				f.out("</a>")
			}
		}

	case KindImage:
		// Unreliable sourcepos.
		if entering {
			f.out("<img")
			f.inlineSourcepos(node)
			f.out(` src="`)
			url := node.Link.URL
			if f.opts.Unsafe || !f.opts.dangerous([]byte(url)) {
				f.escapeHref(url)
			}
			f.out(`" alt="`)
			// The children render in plain mode into the alt value.
			return true, flagNone
		}
		if node.Link.Title != "" {
			f.out(`" title="`)
			f.escape(node.Link.Title)
		}
		f.out(`" />`)

	case KindWikiLink:
		// Unreliable sourcepos.
		if entering {
			f.out("<a")
			f.inlineSourcepos(node)
			f.out(` href="`)
			url := node.Link.URL
			if f.opts.Unsafe || !f.opts.dangerous([]byte(url)) {
				f.escapeHref(url)
			}
			f.out(`" data-wikilink="true`)
			f.out(`">`)
		} else {
			f.out("</a>")
		}

	case KindTable:
		if entering {
			f.cr()
			f.out("<table")
			f.sourcepos(node)
			f.out(">\n")
		} else {
			if node.LastChild != node.FirstChild {
				f.cr()
				f.out("</tbody>\n")
			}
			f.cr()
			f.out("</table>\n")
		}

	case KindTableRow:
		if entering {
			f.cr()
			if node.Row.Header {
				f.out("<thead>\n")
			} else if prev := node.PrevSibling; prev != nil && prev.Kind == KindTableRow && prev.Row.Header {
				// The first body row opens the tbody.
				f.out("<tbody>\n")
			}
			f.out("<tr")
			f.sourcepos(node)
			f.out(">")
		} else {
			f.cr()
			f.out("</tr>")
			if node.Row.Header {
				f.cr()
				f.out("</thead>")
			}
		}

	case KindTableCell:
		f.formatTableCell(node, entering)

	case KindFootnoteDefinition:
		if entering {
			if f.footnoteIx == 0 {
				f.out("<section")
				f.sourcepos(node)
				f.out(" class=\"footnotes\" data-footnotes>\n<ol>\n")
			}
			f.footnoteIx++
			f.out("<li")
			f.sourcepos(node)
			f.out(` id="fn-`)
			f.escapeHref(node.Footnote.Name)
			f.out(`">`)
		} else {
			if f.putFootnoteBackref(node) {
				f.out("\n")
			}
			f.out("</li>\n")
		}

	case KindFootnoteReference:
		// Unreliable sourcepos.
		if entering {
			refID := "fnref-" + node.Footnote.Name
			if node.Footnote.RefNum > 1 {
				refID = fmt.Sprintf("%s-%d", refID, node.Footnote.RefNum)
			}
			f.out("<sup")
			f.inlineSourcepos(node)
			f.out(` class="footnote-ref"><a href="#fn-`)
			f.escapeHref(node.Footnote.Name)
			f.out(`" id="`)
			f.escapeHref(refID)
			fmt.Fprintf(f.w, "\" data-footnote-ref>%d</a></sup>", node.Footnote.Ix)
		}

	case KindMultilineBlockQuote:
		if entering {
			f.cr()
			f.out("<blockquote")
			f.sourcepos(node)
			f.out(">\n")
		} else {
			f.cr()
			f.out("</blockquote>\n")
		}

	case KindEscaped:
		// Unreliable sourcepos.
		if f.opts.EscapedCharSpans {
			if entering {
				f.out("<span data-escaped-char")
				f.inlineSourcepos(node)
				f.out(">")
			} else {
				f.out("</span>")
			}
		}

	case KindMath:
		if entering {
			f.formatMathInline(node)
		}

	case KindEscapedTag:
		// Nowhere to put sourcepos.
		if entering {
			f.out(node.Literal)
		}

	case KindAlert:
		if entering {
			f.cr()
			f.out(`<div class="markdown-alert `)
			f.out(node.Alert.Type.cssClass())
			f.out(`"`)
			f.sourcepos(node)
			f.out(">\n")
			f.out(`<p class="markdown-alert-title">`)
			if node.Alert.Title != "" {
				f.escape(node.Alert.Title)
			} else {
				f.out(node.Alert.Type.defaultTitle(f.locale))
			}
			f.out("</p>\n")
		} else {
			f.cr()
			f.out("</div>\n")
		}

	default:
		panic(fmt.Sprintf("markdown: cannot render node of kind %v", node.Kind))
	}

	return false, flagNone
}

func (f *formatter) formatHeading(node *Node, entering bool) {
	if adapter := f.plugins.Heading; adapter != nil {
		meta := &HeadingMeta{
			Level:   node.Heading.Level,
			Content: collectTextString(node),
		}
		if entering {
			f.cr()
			var pos *SourceRange
			if f.opts.Sourcepos && node.Pos.IsValid() {
				pos = &node.Pos
			}
			f.fail(adapter.Enter(f.w, meta, pos))
		} else {
			f.fail(adapter.Exit(f.w, meta))
		}
		return
	}

	if entering {
		f.cr()
		fmt.Fprintf(f.w, "<h%d", node.Heading.Level)
		raw := collectTextString(node)
		if strings.Contains(raw, templDelimStart) {
			// The real id is known only after template expansion;
			// leave a marker for the later pass.
			f.out(" data-update-id")
		} else {
			fmt.Fprintf(f.w, " id=\"%s\"", f.anchors.Anchorize(raw))
		}
		f.sourcepos(node)
		f.out(">")
	} else {
		fmt.Fprintf(f.w, "</h%d>\n", node.Heading.Level)
	}
}

func (f *formatter) formatParagraph(node *Node, entering bool) {
	tight := false
	if p := node.Parent; p != nil && p.Parent != nil {
		switch p.Parent.Kind {
		case KindList, KindDescriptionItem:
			tight = p.Parent.List.Tight
		}
	}
	if p := node.Parent; p != nil && p.Kind == KindDescriptionTerm {
		tight = true
	}
	if tight {
		return
	}

	if entering {
		f.cr()
		f.out("<p")
		f.sourcepos(node)
		f.out(">")
	} else {
		if p := node.Parent; p != nil && p.Kind == KindFootnoteDefinition && node.NextSibling == nil {
			f.out(" ")
			f.putFootnoteBackref(p)
		}
		f.out("</p>\n")
	}
}

func (f *formatter) formatCodeBlock(node *Node) {
	if node.Code.Info == "math" {
		f.formatMathCodeBlock(node)
		return
	}

	f.cr()

	info := node.Code.Info
	firstTag := 0
	for firstTag < len(info) && !isSpace(info[firstTag]) {
		firstTag++
	}
	lang := info[:firstTag]
	meta := strings.TrimSpace(info[firstTag:])

	if hl := f.plugins.Highlighter; hl != nil {
		preAttrs := map[string]string{}
		codeAttrs := map[string]string{}
		if info != "" {
			if f.opts.GitHubPreLang {
				preAttrs["lang"] = lang
				if f.opts.FullInfoString && meta != "" {
					preAttrs["data-meta"] = meta
				}
			} else {
				codeAttrs["class"] = "language-" + lang
				if f.opts.FullInfoString && meta != "" {
					codeAttrs["data-meta"] = meta
				}
			}
		}
		if f.opts.Sourcepos && node.Pos.IsValid() {
			preAttrs["data-sourcepos"] = node.Pos.String()
		}
		f.fail(hl.WritePreTag(f.w, preAttrs))
		f.fail(hl.WriteCodeTag(f.w, codeAttrs))
		f.fail(hl.WriteHighlighted(f.w, lang, node.Literal))
		f.out("</code></pre>\n")
		return
	}

	// Default path: everything merges onto <pre>, and the language
	// class becomes the legacy "brush:" form. "plain" keeps just the
	// notranslate class.
	var attrs []Attribute
	if f.opts.GitHubPreLang && info != "" {
		attrs = append(attrs, Attribute{"lang", lang})
		if f.opts.FullInfoString && meta != "" {
			attrs = append(attrs, Attribute{"data-meta", meta})
		}
		attrs = append(attrs, Attribute{"class", "notranslate"})
	} else {
		class := "notranslate"
		if info != "" && info != "plain" {
			langs := strings.Fields(info)
			for i, l := range langs {
				langs[i] = strings.TrimSuffix(l, "-nolint")
			}
			class = "brush: " + strings.Join(langs, " ") + " notranslate"
		}
		attrs = append(attrs, Attribute{"class", class})
		if f.opts.FullInfoString && meta != "" {
			attrs = append(attrs, Attribute{"data-meta", meta})
		}
	}
	if f.opts.Sourcepos && node.Pos.IsValid() {
		attrs = append(attrs, Attribute{"data-sourcepos", node.Pos.String()})
	}
	writeOpeningTag(f.w, "pre", attrs)
	f.escape(node.Literal)
	f.out("</pre>\n")
}

func (f *formatter) formatTableCell(node *Node, entering bool) {
	row := node.Parent
	if row == nil || row.Kind != KindTableRow {
		panic("markdown: table cell without a table row parent")
	}
	table := row.Parent
	if table == nil || table.Kind != KindTable {
		panic("markdown: table row without a table parent")
	}

	if !entering {
		if row.Row.Header {
			f.out("</th>")
		} else {
			f.out("</td>")
		}
		return
	}

	f.cr()
	if row.Row.Header {
		f.out("<th")
	} else {
		f.out("<td")
	}
	f.sourcepos(node)

	i := 0
	for sib := row.FirstChild; sib != node; sib = sib.NextSibling {
		i++
	}
	switch table.Table.Alignments[i] {
	case AlignLeft:
		f.out(` align="left"`)
	case AlignRight:
		f.out(` align="right"`)
	case AlignCenter:
		f.out(` align="center"`)
	}

	f.out(">")
}

// putFootnoteBackref writes the back-reference links for the footnote
// definition currently being closed, once: the first exit that asks
// for them wins and later calls for the same definition are no-ops.
func (f *formatter) putFootnoteBackref(def *Node) bool {
	if f.writtenFootnoteIx >= f.footnoteIx {
		return false
	}
	f.writtenFootnoteIx = f.footnoteIx

	refSuffix := ""
	superscript := ""
	for refNum := 1; refNum <= def.Footnote.TotalRefs; refNum++ {
		if refNum > 1 {
			refSuffix = fmt.Sprintf("-%d", refNum)
			superscript = fmt.Sprintf(`<sup class="footnote-ref">%d</sup>`, refNum)
			f.out(" ")
		}
		f.out(`<a href="#fnref-`)
		f.escapeHref(def.Footnote.Name)
		fmt.Fprintf(f.w,
			"%s\" class=\"footnote-backref\" data-footnote-backref data-footnote-backref-idx=\"%d%s\" aria-label=\"Back to reference %d%s\">↩%s</a>",
			refSuffix, f.footnoteIx, refSuffix, f.footnoteIx, refSuffix, superscript)
	}
	return true
}

// formatMathInline renders dollar-delimited math in a <span>, to match
// other renderers, and otherwise-delimited math in a <code>.
func (f *formatter) formatMathInline(node *Node) {
	style := "inline"
	if node.Math.DisplayMath {
		style = "display"
	}
	tag := "code"
	if node.Math.DollarMath {
		tag = "span"
	}

	attrs := []Attribute{{"data-math-style", style}}
	if f.opts.InlineSourcepos && f.opts.Sourcepos && node.Pos.IsValid() {
		attrs = append(attrs, Attribute{"data-sourcepos", node.Pos.String()})
	}

	writeOpeningTag(f.w, tag, attrs)
	f.escape(node.Literal)
	f.out("</" + tag + ">")
}

// formatMathCodeBlock renders a ```math fence as a display-style
// <pre><code> block instead of the generic code-block path.
func (f *formatter) formatMathCodeBlock(node *Node) {
	f.cr()

	var preAttrs, codeAttrs []Attribute
	if f.opts.GitHubPreLang {
		preAttrs = append(preAttrs,
			Attribute{"lang", "math"},
			Attribute{"data-math-style", "display"})
	} else {
		codeAttrs = append(codeAttrs,
			Attribute{"class", "language-math"},
			Attribute{"data-math-style", "display"})
	}
	if f.opts.Sourcepos && node.Pos.IsValid() {
		preAttrs = append(preAttrs, Attribute{"data-sourcepos", node.Pos.String()})
	}

	writeOpeningTag(f.w, "pre", preAttrs)
	writeOpeningTag(f.w, "code", codeAttrs)
	f.escape(node.Literal)
	f.out("</code></pre>\n")
}
