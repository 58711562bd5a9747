// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var lowercaser = cases.Lower(language.Und)

// anchorize converts heading text to a URL-safe slug: the text is
// lowercased, whitespace runs become hyphens, letters, marks, numbers,
// "-" and "_" are kept, and everything else is dropped.
func anchorize(header string) string {
	var b strings.Builder
	for _, r := range lowercaser.String(header) {
		switch {
		case unicode.IsSpace(r):
			b.WriteByte('-')
		case unicode.IsLetter(r), unicode.IsMark(r), unicode.IsNumber(r), r == '-', r == '_':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// An Anchorizer converts heading text to canonical, unique, but still
// human-readable anchors.
//
// To guarantee uniqueness an anchorizer remembers every anchor it has
// returned, so use a fresh one per document: sharing an anchorizer
// across renders makes later documents inherit the earlier documents'
// collisions.
//
// The first occurrence of a slug is unsuffixed; collisions get "_2",
// "_3", and so on.
type Anchorizer struct {
	seen map[string]bool
}

// NewAnchorizer returns an empty anchorizer.
func NewAnchorizer() *Anchorizer {
	return &Anchorizer{seen: make(map[string]bool)}
}

// Anchorize returns a unique anchor for the given heading text.
func (a *Anchorizer) Anchorize(header string) string {
	id := anchorize(header)
	anchor := id
	for uniq := 2; a.seen[anchor]; uniq++ {
		anchor = fmt.Sprintf("%s_%d", id, uniq)
	}
	a.seen[anchor] = true
	return anchor
}
