// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package markdown

import "testing"

func TestAnchorize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Basic usage", "basic-usage"},
		{"Basic usage", "basic-usage"}, // stateless
		{"HTML <video> element", "html-video-element"},
		{"What's new?", "whats-new"},
		{"snake_case_stays", "snake_case_stays"},
		{"Multiple   spaces\tand\ttabs", "multiple---spaces-and-tabs"},
		{"Überblick", "überblick"},
		{"数字と漢字 123", "数字と漢字-123"},
		{"!!!", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := anchorize(tt.in); got != tt.want {
			t.Errorf("anchorize(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestAnchorizerCollisions(t *testing.T) {
	a := NewAnchorizer()
	got := []string{
		a.Anchorize("Examples"),
		a.Anchorize("Examples"),
		a.Anchorize("Examples"),
		a.Anchorize("See also"),
		a.Anchorize("Examples"),
	}
	want := []string{"examples", "examples_2", "examples_3", "see-also", "examples_4"}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("anchor %d = %q, want %q", i, got[i], want[i])
		}
	}

	// A fresh anchorizer starts over.
	b := NewAnchorizer()
	if got := b.Anchorize("Examples"); got != "examples" {
		t.Errorf("fresh Anchorize(Examples) = %q, want %q", got, "examples")
	}
}

func TestAnchorizerSuffixCollision(t *testing.T) {
	// A heading whose slug already carries a numeric suffix must not
	// collide with a generated one.
	a := NewAnchorizer()
	first := a.Anchorize("Syntax_2")
	second := a.Anchorize("Syntax")
	third := a.Anchorize("Syntax")
	if first != "syntax_2" || second != "syntax" {
		t.Fatalf("got %q, %q; want syntax_2, syntax", first, second)
	}
	if third != "syntax_3" {
		t.Errorf("third = %q, want syntax_3", third)
	}
}
