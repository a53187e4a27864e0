// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmlutil

import (
	"iter"
	"strings"

	"golang.org/x/net/html"

	"github.com/mineplex-llc/studiodocs/internal/deeplink"
)

// A Heading is an entry of a page outline.
type Heading struct {
	Level int    // 2 for h2, and so on
	ID    string // anchor ID of heading
	Text  string // text of heading, on one line
	Path  string // enclosing heading texts and this one, joined by " > "
}

// Href returns the fragment link to h.
func (h *Heading) Href() string {
	return "#" + h.ID
}

// Outline returns an iterator over the anchored headings under root,
// in document order. Headings without an id are skipped, since
// nothing can link to them.
func Outline(root *html.Node) iter.Seq[*Heading] {
	return func(yield func(*Heading) bool) {
		// titles[i] is the text of the most recent heading of level i+1.
		var titles [6]string
		walkOutline(root, &titles, yield)
	}
}

func walkOutline(n *html.Node, titles *[6]string, yield func(*Heading) bool) bool {
	if level := heading(n); level >= 1 {
		text := strings.Join(strings.Fields(deeplink.FromNode(n).Text()), " ")
		titles[level-1] = text
		clear(titles[level:])
		id := findAttr(n, "id")
		if id == "" || !deeplink.IsHeading(n.Data) {
			return true
		}
		var path []string
		for _, t := range titles[:level] {
			if t != "" {
				path = append(path, t)
			}
		}
		return yield(&Heading{Level: level, ID: id, Text: text, Path: strings.Join(path, " > ")})
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if !walkOutline(c, titles, yield) {
			return false
		}
	}
	return true
}

// heading reports the heading level of the node n.
// If n is not a heading, it returns 0.
func heading(n *html.Node) int {
	if n.Type == html.ElementNode {
		if len(n.Data) == 2 && n.Data[0] == 'h' && '1' <= n.Data[1] && n.Data[1] <= '6' {
			return int(n.Data[1] - '0')
		}
	}
	return 0
}
