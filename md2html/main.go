// Copyright 2024 The Notecard Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Md2html converts Markdown to HTML.
//
// Usage:
//
//	md2html [-locale tag] [-unsafe] [-tagfilter] [-sourcepos] [-hardbreaks] [file...]
//
// Md2html reads the named files, or else standard input, as Markdown
// documents and prints the corresponding HTML to standard output.
// Block quotes that follow the note-card conventions of the selected
// locale are rewritten into styled containers.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"notecard.dev/markdown"
	"notecard.dev/markdown/commonmark"
	"notecard.dev/markdown/locale"
)

var (
	localeFlag = flag.String("locale", "en-US", "note-card `locale` (BCP 47 tag)")
	unsafeFlag = flag.Bool("unsafe", false, "pass raw HTML through instead of omitting it")
	tagfilter  = flag.Bool("tagfilter", false, "neutralize blacklisted raw-HTML tags")
	sourcepos  = flag.Bool("sourcepos", false, "emit data-sourcepos attributes")
	hardbreaks = flag.Bool("hardbreaks", false, "render soft breaks as <br />")
)

func main() {
	log.SetPrefix("md2html: ")
	log.SetFlags(0)
	flag.Parse()

	l, err := locale.Parse(*localeFlag)
	if err != nil {
		log.Fatal(err)
	}
	opts := &markdown.Options{
		Unsafe:     *unsafeFlag,
		Tagfilter:  *tagfilter,
		Sourcepos:  *sourcepos,
		HardBreaks: *hardbreaks,
	}

	args := flag.Args()
	if len(args) == 0 {
		do(os.Stdin, opts, l)
		return
	}
	for _, arg := range args {
		f, err := os.Open(arg)
		if err != nil {
			log.Fatal(err)
		}
		do(f, opts, l)
		f.Close()
	}
}

func do(f *os.File, opts *markdown.Options, l locale.Locale) {
	data, err := io.ReadAll(f)
	if err != nil {
		log.Fatal(err)
	}
	doc := commonmark.Parse(data)
	if err := markdown.Render(os.Stdout, doc, opts, l); err != nil {
		log.Fatal(err)
	}
}
