// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package locale enumerates the locales the renderer knows note-card
// prefixes and default alert titles for.
//
// The set is closed: every supported locale must carry a complete
// prefix table, so there is no default-locale fallback and unknown
// tags are rejected by [Parse].
package locale

import (
	"fmt"

	"golang.org/x/text/language"
)

// A Locale selects one of the supported translations.
type Locale int

const (
	EnUS Locale = iota
	Es
	Fr
	Ja
	Ko
	PtBr
	Ru
	ZhCn
	ZhTw
)

var tags = [...]language.Tag{
	EnUS: language.MustParse("en-US"),
	Es:   language.MustParse("es"),
	Fr:   language.MustParse("fr"),
	Ja:   language.MustParse("ja"),
	Ko:   language.MustParse("ko"),
	PtBr: language.MustParse("pt-BR"),
	Ru:   language.MustParse("ru"),
	ZhCn: language.MustParse("zh-CN"),
	ZhTw: language.MustParse("zh-TW"),
}

var matcher = language.NewMatcher(tags[:])

// All returns every supported locale, in a fixed order.
func All() []Locale {
	all := make([]Locale, len(tags))
	for i := range all {
		all[i] = Locale(i)
	}
	return all
}

// String returns the canonical BCP 47 tag, e.g. "en-US".
func (l Locale) String() string {
	if l < 0 || int(l) >= len(tags) {
		return fmt.Sprintf("Locale(%d)", int(l))
	}
	return tags[l].String()
}

// Tag returns the locale's language tag.
func (l Locale) Tag() language.Tag {
	return tags[l]
}

// Parse interprets a BCP 47 tag and matches it against the supported
// set. Tags that do not plausibly identify a supported locale are an
// error; there is no fallback locale.
func Parse(s string) (Locale, error) {
	tag, err := language.Parse(s)
	if err != nil {
		return EnUS, fmt.Errorf("locale: invalid tag %q: %w", s, err)
	}
	_, index, conf := matcher.Match(tag)
	if conf == language.No {
		return EnUS, fmt.Errorf("locale: unsupported tag %q", s)
	}
	return Locale(index), nil
}
