// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"fmt"
	"strings"

	"notecard.dev/markdown/locale"
)

// A NoteCard classifies a block quote that encodes one of the styled
// note-card conventions.
type NoteCard int

const (
	Callout NoteCard = iota
	Warning
	Note
)

func (c NoteCard) String() string {
	switch c {
	case Callout:
		return "Callout"
	case Warning:
		return "Warning"
	case Note:
		return "Note"
	}
	return fmt.Sprintf("NoteCard(%d)", int(c))
}

// notePrefixes maps each locale to the free-text marker prefixes, in
// NoteCard order: Callout, Warning, Note.
var notePrefixes = map[locale.Locale][3]string{
	locale.EnUS: {"Callout:", "Warning:", "Note:"},
	locale.Es:   {"Observación:", "Advertencia:", "Nota:"},
	locale.Fr:   {"Remarque :", "Attention :", "Note :"},
	locale.Ja:   {"注目:", "警告:", "メモ:"},
	locale.Ko:   {"알림 :", "경고 :", "참고 :"},
	locale.PtBr: {"Observação:", "Aviso:", "Nota:"},
	locale.Ru:   {"Сноска:", "Предупреждение:", "Примечание:"},
	locale.ZhCn: {"标注：", "警告：", "备注："},
	locale.ZhTw: {"标注：", "警告：", "备注："},
}

// noteBrackets maps each locale to the bracket marker prefixes, in
// NoteCard order: Callout, Warning, Note.
var noteBrackets = map[locale.Locale][3]string{
	locale.EnUS: {"[!CALLOUT]", "[!WARNING]", "[!NOTE]"},
	locale.Es:   {"[!Observación]", "[!Advertencia]", "[!Nota]"},
	locale.Fr:   {"[!Remarque]", "[!Attention]", "[!Note]"},
	locale.Ja:   {"[!注目]", "[!警告]", "[!メモ]"},
	locale.Ko:   {"[!알림]", "[!경고]", "[!참고]"},
	locale.PtBr: {"[!Observação]", "[!Aviso]", "[!Nota]"},
	locale.Ru:   {"[!Сноска]", "[!Предупреждение]", "[!Примечание]"},
	locale.ZhCn: {"[!标注]", "[!警告]", "[!备注]"},
	locale.ZhTw: {"[!标注]", "[!警告]", "[!备注]"},
}

// The prefix mapping must be total: a locale without all three
// prefixes in both encodings is a configuration contract violation,
// caught here rather than surfacing as silently unclassified quotes.
func init() {
	for _, l := range locale.All() {
		for _, table := range []map[locale.Locale][3]string{notePrefixes, noteBrackets} {
			p, ok := table[l]
			if !ok {
				panic(fmt.Sprintf("markdown: locale %v missing note-card prefixes", l))
			}
			for _, s := range p {
				if s == "" {
					panic(fmt.Sprintf("markdown: locale %v has an empty note-card prefix", l))
				}
			}
		}
	}
}

// Prefix returns the free-text marker prefix for the locale,
// e.g. "Note:" for [Note] in en-US.
func (c NoteCard) Prefix(l locale.Locale) string {
	p, ok := notePrefixes[l]
	if !ok {
		panic(fmt.Sprintf("markdown: locale %v missing note-card prefixes", l))
	}
	return p[c]
}

// BracketPrefix returns the bracket marker prefix for the locale,
// e.g. "[!NOTE]" for [Note] in en-US.
func (c NoteCard) BracketPrefix(l locale.Locale) string {
	p, ok := noteBrackets[l]
	if !ok {
		panic(fmt.Sprintf("markdown: locale %v missing note-card prefixes", l))
	}
	return p[c]
}

// classifyNoteCard decides whether a block quote encodes a note card
// for the given locale, detaching the marker node as a side effect
// where the convention calls for it.
//
// The free-text encoding is checked first: the quote's first
// grandchild must be a strong span whose first child is text starting
// with one of the locale's prefixes. A Callout or Note match detaches
// the strong span; a Warning match leaves the marker in place and it
// stays visible in the output. The bracket encoding is checked second,
// against a bare leading text node, and detaches the marker for all
// three kinds.
//
// Matching is by prefix only, so a paragraph that merely begins with a
// marker token is classified as a card. Downstream content relies on
// both the prefix matching and the Warning asymmetry; keep them as
// they are.
func classifyNoteCard(blockQuote *Node, l locale.Locale) (NoteCard, bool) {
	if child := blockQuote.FirstChild; child != nil {
		if grand := child.FirstChild; grand != nil && grand.Kind == KindStrong {
			if marker := grand.FirstChild; marker != nil && marker.Kind == KindText {
				text := marker.Literal
				if strings.HasPrefix(text, Callout.Prefix(l)) {
					grand.Detach()
					return Callout, true
				}
				if strings.HasPrefix(text, Warning.Prefix(l)) {
					return Warning, true
				}
				if strings.HasPrefix(text, Note.Prefix(l)) {
					grand.Detach()
					return Note, true
				}
			}
		}
	}
	if child := blockQuote.FirstChild; child != nil {
		if marker := child.FirstChild; marker != nil && marker.Kind == KindText {
			text := marker.Literal
			for _, c := range []NoteCard{Callout, Warning, Note} {
				if strings.HasPrefix(text, c.BracketPrefix(l)) {
					marker.Detach()
					return c, true
				}
			}
		}
	}
	return 0, false
}
