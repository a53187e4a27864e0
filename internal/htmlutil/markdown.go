// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package htmlutil provides the HTML processing behind documentation
// pages: markdown conversion, heading anchors, outlines and javadoc
// card expansion.
package htmlutil

import (
	"github.com/google/safehtml"
	"github.com/google/safehtml/uncheckedconversions"
	"rsc.io/markdown"
)

// newParser returns the markdown parser used for documentation pages.
func newParser() *markdown.Parser {
	return &markdown.Parser{
		AutoLinkText:  true,
		Strikethrough: true,
		Table:         true,
		Emoji:         true,
	}
}

// MarkdownToHTML converts trusted markdown text to HTML.
// Raw HTML in the text, such as javadoc-link elements,
// is passed through unchanged.
// For untrusted markdown, use [MarkdownToSafeHTML] instead.
func MarkdownToHTML(text string) string {
	doc := newParser().Parse(text)
	return markdown.ToHTML(doc)
}

// MarkdownToSafeHTML converts untrusted markdown text to safe HTML.
// It escapes any HTML present in the original markdown document
// before converting the document to HTML.
func MarkdownToSafeHTML(text string) safehtml.HTML {
	escaped := safehtml.HTMLEscaped(text)
	// Note: [markdown.ToHTML] is trusted and does not add script
	// or style tags.
	html := MarkdownToHTML(escaped.String())
	return uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(html)
}
