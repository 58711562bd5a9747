// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package markdown renders a parsed CommonMark-family document tree as
HTML, with locale-aware "note card" handling: block quotes that follow
the callout/warning/note conventions are rewritten into styled
containers before emission.

The package does not parse markdown source text. A [Node] tree arrives
from an external parser (package commonmark binds the goldmark parser
to this model) and is rendered with [Render] or [ToHTML]:

	doc := commonmark.Parse(source)
	err := markdown.Render(os.Stdout, doc, &markdown.Options{Unsafe: true}, locale.EnUS)

Rendering is a single depth-first walk. It is deterministic: the same
tree state, options and locale always produce byte-identical output.
A render owns its state exclusively, so concurrent renders are fine
as long as each gets its own call; what must not be shared is a tree,
since the note-card rewrite mutates it on first visit.

Two extension points can be installed via [RenderWithPlugins]: a
[HeadingAdapter] replacing the default <hN> markup and a
[CodeHighlighter] replacing the default code fence emission.
*/
package markdown
