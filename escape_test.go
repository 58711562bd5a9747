// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import (
	"bytes"
	"strings"
	"testing"
)

func TestEscape(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"plain text", "plain text"},
		{`<script>alert("&")</script>`, "&lt;script&gt;alert(&quot;&amp;&quot;)&lt;/script&gt;"},
		{"a < b > c", "a &lt; b &gt; c"},
		{"'single quotes untouched'", "'single quotes untouched'"},
		{"üñïçödé bytes pass through", "üñïçödé bytes pass through"},
		{"\x00\x01\x02", "\x00\x01\x02"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := Escape(&buf, []byte(tt.in)); err != nil {
			t.Fatalf("Escape(%q): %v", tt.in, err)
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEscapeReservedNeverUnescaped(t *testing.T) {
	// Every reserved byte in arbitrary input must come out as an
	// entity; all other bytes must be preserved exactly.
	in := []byte("a\"b&c<d>e\"\"&&<<>>\x7f~!")
	var buf bytes.Buffer
	if err := Escape(&buf, in); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, c := range []string{`"`, "<", ">"} {
		if strings.Contains(out, c) {
			t.Errorf("output %q contains unescaped %q", out, c)
		}
	}
	// Every & must begin one of the four entities.
	for i := 0; i < len(out); i++ {
		if out[i] != '&' {
			continue
		}
		rest := out[i:]
		if !strings.HasPrefix(rest, "&quot;") && !strings.HasPrefix(rest, "&amp;") &&
			!strings.HasPrefix(rest, "&lt;") && !strings.HasPrefix(rest, "&gt;") {
			t.Errorf("output %q has stray & at %d", out, i)
		}
	}
}

func TestEscapeHref(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"a%20b", "a%20b"}, // percent sequences stay as written
		{"a&b", "a&amp;b"},
		{"https://example.com/x?y=1&z='2'", "https://example.com/x?y=1&amp;z=&#x27;2&#x27;"},
		{`"><script>`, "&quot;&gt;&lt;script&gt;"},
		{"/ru/docs/Веб", "/ru/docs/Веб"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := EscapeHref(&buf, []byte(tt.in)); err != nil {
			t.Fatalf("EscapeHref(%q): %v", tt.in, err)
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("EscapeHref(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTagfilter(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"<script>", true},
		{"<SCRIPT src=x>", true},
		{"</script>", true},
		{"<script/>", true},
		{"<title\t>", true},
		{"<textarea rows=2>", true},
		{"<style>", true},
		{"<xmp>", true},
		{"<iframe>", true},
		{"<noembed>", true},
		{"<noframes>", true},
		{"<plaintext>", true},
		{"<div>", false},
		{"<scriptx>", false}, // name must end at a delimiter
		{"<scrip", false},
		{"<em>", false},
		{"no tag at all", false},
		{"<s", false},
	}
	for _, tt := range tests {
		if got := tagfilter([]byte(tt.in)); got != tt.want {
			t.Errorf("tagfilter(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestTagfilterBlock(t *testing.T) {
	var buf bytes.Buffer
	in := `<p>ok</p><script>evil()</script><em>fine</em>`
	if err := tagfilterBlock(&buf, []byte(in)); err != nil {
		t.Fatal(err)
	}
	want := `<p>ok</p>&lt;script>evil()&lt;/script><em>fine</em>`
	if got := buf.String(); got != want {
		t.Errorf("tagfilterBlock(%q) = %q, want %q", in, got, want)
	}
}

func TestWriteOpeningTag(t *testing.T) {
	var buf bytes.Buffer
	err := writeOpeningTag(&buf, "pre", []Attribute{
		{"class", "notranslate"},
		{"data-meta", `x="1" & y`},
	})
	if err != nil {
		t.Fatal(err)
	}
	want := `<pre class="notranslate" data-meta="x=&quot;1&quot; &amp; y">`
	if got := buf.String(); got != want {
		t.Errorf("writeOpeningTag = %q, want %q", got, want)
	}
}
