// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package commonmark

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"

	"notecard.dev/markdown"
	"notecard.dev/markdown/locale"
)

// TestRender runs the golden corpora in testdata: txtar archives of
// name.md/name.html pairs, with render options in the archive comment.
func TestRender(t *testing.T) {
	files, err := filepath.Glob("testdata/*.txt")
	if err != nil {
		t.Fatal(err)
	}
	if len(files) == 0 {
		t.Fatal("no testdata archives")
	}
	for _, file := range files {
		t.Run(strings.TrimSuffix(filepath.Base(file), ".txt"), func(t *testing.T) {
			a, err := txtar.ParseFile(file)
			if err != nil {
				t.Fatal(err)
			}

			opts := &markdown.Options{}
			l := locale.EnUS
			if err := setRenderOptions(opts, &l, a.Comment); err != nil {
				t.Fatal(err)
			}

			var ncase, npass int
			for i := 0; i+2 <= len(a.Files); i += 2 {
				ncase++
				md := a.Files[i]
				html := a.Files[i+1]
				name := strings.TrimSuffix(md.Name, ".md")
				if name != strings.TrimSuffix(html.Name, ".html") {
					t.Fatalf("mismatched file pair: %s and %s", md.Name, html.Name)
				}

				t.Run(name, func(t *testing.T) {
					doc := Parse([]byte(decode(string(md.Data))))
					var buf bytes.Buffer
					if err := markdown.Render(&buf, doc, opts, l); err != nil {
						t.Fatal(err)
					}
					h := encode(buf.String())
					if h != string(html.Data) {
						t.Fatalf("input %q\nhave %q\nwant %q", md.Data, h, html.Data)
					}
					npass++
				})
			}
			t.Logf("%d/%d pass", npass, ncase)
		})
	}
}

// decode and encode protect bytes txtar cannot carry: trailing spaces
// and missing final newlines.
func decode(s string) string {
	s = strings.ReplaceAll(s, "^J\n", "\n")
	s = strings.ReplaceAll(s, "^D\n", "")
	return s
}

func encode(s string) string {
	s = strings.ReplaceAll(s, " \n", " ^J\n")
	if s != "" && !strings.HasSuffix(s, "\n") {
		s += "^D\n"
	}
	return s
}

// setRenderOptions extracts lines of the form
//
//	key: value
//
// from data and sets the corresponding render options.
func setRenderOptions(opts *markdown.Options, l *locale.Locale, data []byte) error {
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "//") {
			continue
		}
		key, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		value = strings.TrimSpace(value)
		if key == "Locale" {
			loc, err := locale.Parse(value)
			if err != nil {
				return err
			}
			*l = loc
			continue
		}
		b, err := strconv.ParseBool(value)
		if err != nil {
			return err
		}
		switch key {
		case "Unsafe":
			opts.Unsafe = b
		case "Escape":
			opts.Escape = b
		case "Tagfilter":
			opts.Tagfilter = b
		case "HardBreaks":
			opts.HardBreaks = b
		case "TasklistClasses":
			opts.TasklistClasses = b
		case "GitHubPreLang":
			opts.GitHubPreLang = b
		case "FullInfoString":
			opts.FullInfoString = b
		default:
			return fmt.Errorf("unknown option: %q", key)
		}
	}
	return nil
}
