// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package slug derives page-anchor fragments from heading text.
package slug

import (
	"strings"
	"unicode"
)

// Make returns the anchor slug for the display text s.
//
// The text is lowercased, each run of white space becomes a single "-",
// and every remaining character other than an ASCII letter, digit,
// underscore or hyphen is dropped. White space is collapsed before
// punctuation is removed, so "a , b" yields "a--b".
func Make(s string) string {
	var b strings.Builder
	inSpace := false
	for _, r := range strings.ToLower(s) {
		if isSpace(r) {
			if !inSpace {
				b.WriteByte('-')
			}
			inSpace = true
			continue
		}
		inSpace = false
		if isWord(r) || r == '-' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isSpace reports whether r is white space in the sense
// of an ECMAScript regular expression \s.
func isSpace(r rune) bool {
	switch r {
	case '\uFEFF':
		return true
	case '\u0085':
		return false
	}
	return unicode.IsSpace(r)
}

// isWord reports whether r is in [A-Za-z0-9_].
func isWord(r rune) bool {
	return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z' || '0' <= r && r <= '9' || r == '_'
}
