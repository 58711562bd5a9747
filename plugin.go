// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "io"

// HeadingMeta is the flattened content of a heading, handed to a
// [HeadingAdapter].
type HeadingMeta struct {
	Level   int
	Content string // concatenated text of the heading's leaves
}

// A HeadingAdapter takes over heading markup. When one is installed
// the renderer emits no <hN> tags of its own: Enter and Exit bracket
// the heading's rendered children. pos is non-nil only when sourcepos
// emission is enabled and the node has a usable range.
type HeadingAdapter interface {
	Enter(w io.Writer, h *HeadingMeta, pos *SourceRange) error
	Exit(w io.Writer, h *HeadingMeta) error
}

// A CodeHighlighter takes over fenced code block rendering. The
// renderer calls WritePreTag and WriteCodeTag with the attributes it
// would have emitted, then WriteHighlighted with the language token
// and the literal code; the highlighter is responsible for escaping.
// The renderer closes with </code></pre> itself.
type CodeHighlighter interface {
	WritePreTag(w io.Writer, attrs map[string]string) error
	WriteCodeTag(w io.Writer, attrs map[string]string) error
	WriteHighlighted(w io.Writer, lang string, code string) error
}

// Plugins are the optional extension points of the renderer. A nil
// field keeps the corresponding default behavior.
type Plugins struct {
	Heading     HeadingAdapter
	Highlighter CodeHighlighter
}
