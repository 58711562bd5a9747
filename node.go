// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "fmt"

// A Kind identifies the content kind of a [Node].
type Kind int

const (
	KindDocument Kind = iota
	KindFrontMatter
	KindBlockQuote
	KindMultilineBlockQuote
	KindList
	KindItem
	KindTaskItem
	KindDescriptionList
	KindDescriptionItem
	KindDescriptionTerm
	KindDescriptionDetails
	KindHeading
	KindCodeBlock
	KindHTMLBlock
	KindThematicBreak
	KindParagraph
	KindText
	KindSoftBreak
	KindLineBreak
	KindCode
	KindHTMLInline
	KindRaw
	KindEmph
	KindStrong
	KindStrikethrough
	KindSuperscript
	KindSubscript
	KindUnderline
	KindSpoileredText
	KindLink
	KindImage
	KindWikiLink
	KindTable
	KindTableRow
	KindTableCell
	KindFootnoteDefinition
	KindFootnoteReference
	KindEscaped
	KindMath
	KindEscapedTag
	KindAlert
)

var kindNames = [...]string{
	KindDocument:            "Document",
	KindFrontMatter:         "FrontMatter",
	KindBlockQuote:          "BlockQuote",
	KindMultilineBlockQuote: "MultilineBlockQuote",
	KindList:                "List",
	KindItem:                "Item",
	KindTaskItem:            "TaskItem",
	KindDescriptionList:     "DescriptionList",
	KindDescriptionItem:     "DescriptionItem",
	KindDescriptionTerm:     "DescriptionTerm",
	KindDescriptionDetails:  "DescriptionDetails",
	KindHeading:             "Heading",
	KindCodeBlock:           "CodeBlock",
	KindHTMLBlock:           "HTMLBlock",
	KindThematicBreak:       "ThematicBreak",
	KindParagraph:           "Paragraph",
	KindText:                "Text",
	KindSoftBreak:           "SoftBreak",
	KindLineBreak:           "LineBreak",
	KindCode:                "Code",
	KindHTMLInline:          "HTMLInline",
	KindRaw:                 "Raw",
	KindEmph:                "Emph",
	KindStrong:              "Strong",
	KindStrikethrough:       "Strikethrough",
	KindSuperscript:         "Superscript",
	KindSubscript:           "Subscript",
	KindUnderline:           "Underline",
	KindSpoileredText:       "SpoileredText",
	KindLink:                "Link",
	KindImage:               "Image",
	KindWikiLink:            "WikiLink",
	KindTable:               "Table",
	KindTableRow:            "TableRow",
	KindTableCell:           "TableCell",
	KindFootnoteDefinition:  "FootnoteDefinition",
	KindFootnoteReference:   "FootnoteReference",
	KindEscaped:             "Escaped",
	KindMath:                "Math",
	KindEscapedTag:          "EscapedTag",
	KindAlert:               "Alert",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// A Position is a line and column pair in the original source text,
// both 1-based. The zero Position means "unknown".
type Position struct {
	Line int
	Col  int
}

// A SourceRange is the source extent of a node, used only for
// diagnostic data-sourcepos attributes. The zero SourceRange means the
// node carries no reliable position and no attribute is emitted.
type SourceRange struct {
	Start Position
	End   Position
}

// IsValid reports whether the range carries a usable position.
func (r SourceRange) IsValid() bool { return r.Start.Line > 0 }

func (r SourceRange) String() string {
	return fmt.Sprintf("%d:%d-%d:%d", r.Start.Line, r.Start.Col, r.End.Line, r.End.Col)
}

// HeadingData is the payload of a [KindHeading] node.
type HeadingData struct {
	Level int // 1 through 6
}

// ListData is the payload of a [KindList] node.
// It is also consulted on [KindDescriptionItem] nodes, where only
// Tight is meaningful.
type ListData struct {
	Ordered    bool
	Start      int // first item number of an ordered list
	Tight      bool
	IsTaskList bool
}

// CodeData is the payload of a [KindCodeBlock] node.
// The literal code text lives in Node.Literal.
type CodeData struct {
	Info string // full fence info string, e.g. "go linenos"
}

// LinkData is the payload of [KindLink], [KindImage] and
// [KindWikiLink] nodes.
type LinkData struct {
	URL   string
	Title string
}

// An Alignment is a table column alignment.
type Alignment int

const (
	AlignNone Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

// TableData is the payload of a [KindTable] node.
type TableData struct {
	Alignments []Alignment // one per column
}

// RowData is the payload of a [KindTableRow] node.
type RowData struct {
	Header bool // row belongs to <thead>
}

// FootnoteData is the payload of footnote nodes.
// Definitions use Name and TotalRefs; references use Name, RefNum and Ix.
type FootnoteData struct {
	Name      string
	TotalRefs int // references to this definition in the document
	RefNum    int // 1-based ordinal of this reference to its definition
	Ix        int // 1-based footnote number, shown as the superscript
}

// TaskData is the payload of a [KindTaskItem] node.
type TaskData struct {
	Checked bool
}

// MathData is the payload of a [KindMath] node.
// The math source lives in Node.Literal.
type MathData struct {
	DisplayMath bool // $$...$$ or ```math, rendered display style
	DollarMath  bool // dollar-delimited, rendered in a <span>
}

// AlertData is the payload of a [KindAlert] node.
type AlertData struct {
	Type  AlertType
	Title string // explicit title; empty selects the localized default
}

// A Node is one element of a parsed document tree.
//
// A Node owns its children through the FirstChild/NextSibling chain;
// Parent, PrevSibling and LastChild are navigation aids. Exactly one
// payload field is meaningful for any given Kind; the rest stay zero.
//
// The tree arrives from an external parser (see package commonmark for
// one binding) and is only ever mutated by the note-card classifier,
// which detaches marker nodes before their subtree is rendered.
type Node struct {
	Kind Kind

	Parent      *Node
	FirstChild  *Node
	LastChild   *Node
	PrevSibling *Node
	NextSibling *Node

	// Pos is the node's extent in the original source, if known.
	Pos SourceRange

	// Literal is the text content of leaf kinds: Text, Code,
	// CodeBlock, HTMLBlock, HTMLInline, Raw, FrontMatter, Math,
	// and EscapedTag.
	Literal string

	Heading  HeadingData
	List     ListData
	Code     CodeData
	Link     LinkData
	Table    TableData
	Row      RowData
	Footnote FootnoteData
	Task     TaskData
	Math     MathData
	Alert    AlertData
}

// NewNode returns a detached node of the given kind.
func NewNode(kind Kind) *Node {
	return &Node{Kind: kind}
}

// AppendChild adds child as the last child of n.
// The child is detached from any previous parent first.
func (n *Node) AppendChild(child *Node) {
	child.Detach()
	child.Parent = n
	if n.LastChild == nil {
		n.FirstChild = child
		n.LastChild = child
		return
	}
	child.PrevSibling = n.LastChild
	n.LastChild.NextSibling = child
	n.LastChild = child
}

// InsertBefore inserts child immediately before sibling, which must be
// a child of n.
func (n *Node) InsertBefore(sibling, child *Node) {
	if sibling.Parent != n {
		panic("markdown: InsertBefore with non-child sibling")
	}
	child.Detach()
	child.Parent = n
	child.NextSibling = sibling
	child.PrevSibling = sibling.PrevSibling
	if sibling.PrevSibling != nil {
		sibling.PrevSibling.NextSibling = child
	} else {
		n.FirstChild = child
	}
	sibling.PrevSibling = child
}

// Detach removes n from its parent's child list. The node keeps its
// own children and can be re-attached elsewhere. Detaching only
// rewrites links, so traversal state held for other nodes stays valid.
func (n *Node) Detach() {
	if n.PrevSibling != nil {
		n.PrevSibling.NextSibling = n.NextSibling
	} else if n.Parent != nil {
		n.Parent.FirstChild = n.NextSibling
	}
	if n.NextSibling != nil {
		n.NextSibling.PrevSibling = n.PrevSibling
	} else if n.Parent != nil {
		n.Parent.LastChild = n.PrevSibling
	}
	n.Parent = nil
	n.PrevSibling = nil
	n.NextSibling = nil
}
