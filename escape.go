// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "io"

// isSpace reports whether c is an ASCII whitespace byte,
// matching C isspace in the POSIX locale.
func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\v' || c == '\f' || c == '\r'
}

var htmlUnsafe = [256]bool{
	'"': true,
	'&': true,
	'<': true,
	'>': true,
}

// Escape writes buf to w, escaping anything that could be interpreted
// as an HTML tag:
//
//   - U+0022 QUOTATION MARK " becomes &quot;
//   - U+0026 AMPERSAND & becomes &amp;
//   - U+003C LESS-THAN SIGN < becomes &lt;
//   - U+003E GREATER-THAN SIGN > becomes &gt;
//
// Everything else is passed through unchanged. This is appropriate and
// sufficient for free text and ordinary attribute values, but not for
// URLs in attributes; see [EscapeHref].
func Escape(w io.Writer, buf []byte) error {
	offset := 0
	for i := 0; i < len(buf); i++ {
		if !htmlUnsafe[buf[i]] {
			continue
		}
		var esc string
		switch buf[i] {
		case '"':
			esc = "&quot;"
		case '&':
			esc = "&amp;"
		case '<':
			esc = "&lt;"
		case '>':
			esc = "&gt;"
		}
		if _, err := w.Write(buf[offset:i]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, esc); err != nil {
			return err
		}
		offset = i + 1
	}
	_, err := w.Write(buf[offset:])
	return err
}

// EscapeHref writes buf to w, escaping in a manner appropriate for
// URLs in HTML attributes: &, <, >, " and ' are escaped, and every
// other byte is passed through untouched.
//
// In particular "%" is not escaped: if a document author writes
//
//	[hi](https://ddg.gg/?q=a%20b)
//
// they mean the query "?q=a%20b", a search for "a b", not "?q=a%2520b",
// a search for the literal string "a%20b". Percent sequences already in
// the URL must not be double-encoded.
func EscapeHref(w io.Writer, buf []byte) error {
	size := len(buf)
	i := 0
	for i < size {
		org := i
		var esc string
		for i < size {
			switch buf[i] {
			case '&':
				esc = "&amp;"
			case '<':
				esc = "&lt;"
			case '>':
				esc = "&gt;"
			case '"':
				esc = "&quot;"
			case '\'':
				esc = "&#x27;"
			}
			if esc != "" {
				break
			}
			i++
		}
		if i > org {
			if _, err := w.Write(buf[org:i]); err != nil {
				return err
			}
		}
		if esc != "" {
			if _, err := io.WriteString(w, esc); err != nil {
				return err
			}
			i++
		}
	}
	return nil
}

// tagfilterBlacklist is the fixed set of tag names neutralized by the
// GFM tagfilter extension.
var tagfilterBlacklist = [...]string{
	"title",
	"textarea",
	"style",
	"xmp",
	"iframe",
	"noembed",
	"noframes",
	"script",
	"plaintext",
}

// tagfilter reports whether literal begins with an opening or closing
// tag whose name is on the tagfilter blacklist, followed by
// whitespace, ">", or a self-closing "/>". Such a fragment is defanged
// by escaping only its leading "<"; the rest passes through verbatim.
func tagfilter(literal []byte) bool {
	if len(literal) < 3 || literal[0] != '<' {
		return false
	}

	i := 1
	if literal[i] == '/' {
		i++
	}

	for _, t := range tagfilterBlacklist {
		j := i + len(t)
		if j >= len(literal) || !asciiFoldEqual(literal[i:j], t) {
			continue
		}
		return isSpace(literal[j]) ||
			literal[j] == '>' ||
			(literal[j] == '/' && len(literal) >= j+2 && literal[j+1] == '>')
	}

	return false
}

// asciiFoldEqual reports whether b equals the lower-case tag name t
// under ASCII case folding. Blacklisted tag names are ASCII-only, so
// no Unicode folding is needed.
func asciiFoldEqual(b []byte, t string) bool {
	for i := 0; i < len(t); i++ {
		if b[i]|0x20 != t[i] {
			return false
		}
	}
	return true
}

// tagfilterBlock copies input to w, applying tagfilter at each "<".
func tagfilterBlock(w io.Writer, input []byte) error {
	size := len(input)
	i := 0
	for i < size {
		org := i
		for i < size && input[i] != '<' {
			i++
		}
		if i > org {
			if _, err := w.Write(input[org:i]); err != nil {
				return err
			}
		}
		if i >= size {
			break
		}
		esc := "<"
		if tagfilter(input[i:]) {
			esc = "&lt;"
		}
		if _, err := io.WriteString(w, esc); err != nil {
			return err
		}
		i++
	}
	return nil
}

// An Attribute is one HTML attribute of an opening tag. Attributes are
// carried as an ordered slice so rendered output is deterministic.
type Attribute struct {
	Key   string
	Value string
}

// writeOpeningTag writes an opening tag with the given attributes,
// escaping every attribute value.
func writeOpeningTag(w io.Writer, tag string, attrs []Attribute) error {
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	for _, attr := range attrs {
		if _, err := io.WriteString(w, " "+attr.Key+"=\""); err != nil {
			return err
		}
		if err := Escape(w, []byte(attr.Value)); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\""); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, ">")
	return err
}
