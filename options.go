// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

// Options control how a tree is rendered. The zero value is the
// default rendering: raw HTML is replaced by a placeholder comment,
// no diagnostic attributes, soft breaks stay soft.
type Options struct {
	// Sourcepos emits data-sourcepos attributes on block-level tags
	// for nodes that carry a usable source range.
	Sourcepos bool

	// InlineSourcepos additionally emits data-sourcepos on inline
	// tags. Inline positions are unreliable; this exists for
	// diagnostics only.
	InlineSourcepos bool

	// Unsafe passes raw HTML blocks and inline HTML through to the
	// output (subject to Tagfilter). When false, raw HTML is replaced
	// with a placeholder comment.
	Unsafe bool

	// Escape renders raw HTML fully escaped instead of omitted or
	// passed through. It takes precedence over Unsafe and Tagfilter.
	Escape bool

	// Tagfilter neutralizes blacklisted raw-HTML tag openers by
	// escaping their leading "<". Only consulted when Unsafe HTML is
	// being passed through.
	Tagfilter bool

	// HardBreaks renders soft breaks as <br />.
	HardBreaks bool

	// TasklistClasses attaches GitHub-compatible classes to task
	// list markup.
	TasklistClasses bool

	// GitHubPreLang puts the code-fence language in a lang attribute
	// on <pre> instead of a class.
	GitHubPreLang bool

	// FullInfoString emits the part of the fence info string after
	// the language as a data-meta attribute.
	FullInfoString bool

	// EscapedCharSpans wraps backslash-escaped characters in
	// <span data-escaped-char> for later inspection.
	EscapedCharSpans bool

	// GFMQuirks mirrors GitHub's rendering quirks; currently it
	// merges directly nested <strong> spans.
	GFMQuirks bool

	// RelaxedAutolinks suppresses the anchor tag of a link nested
	// directly inside another link, as produced by relaxed autolink
	// parsing.
	RelaxedAutolinks bool

	// DangerousURL, if non-nil, reports whether a link or image URL
	// is dangerous and must be dropped from the attribute. The
	// default policy is permissive: no URL is dangerous.
	DangerousURL func(url []byte) bool
}

// dangerous applies the configured URL policy.
func (o *Options) dangerous(url []byte) bool {
	return o.DangerousURL != nil && o.DangerousURL(url)
}
