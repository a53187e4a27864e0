// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package deeplink

import (
	"slices"
	"strings"

	"golang.org/x/net/html"
)

// AffordanceClass is the class marking copy affordances in a page.
const AffordanceClass = "icon-link"

// nodeElement is an [Element] backed by a parsed HTML node.
type nodeElement struct {
	n *html.Node
}

// FromNode returns the Element for the HTML element node n.
// It returns nil if n is nil or not an element.
func FromNode(n *html.Node) Element {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	return nodeElement{n}
}

func (e nodeElement) Tag() string { return strings.ToLower(e.n.Data) }

func (e nodeElement) Parent() Element {
	return FromNode(e.n.Parent)
}

// Text returns the text content of the element, including the text
// of script and style elements, as the DOM textContent does.
func (e nodeElement) Text() string {
	var b strings.Builder
	addText(&b, e.n)
	return b.String()
}

func addText(b *strings.Builder, n *html.Node) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		addText(b, c)
	}
}

// Affordances returns the elements under root carrying [AffordanceClass],
// in document order. It is the registration query a page runs once
// when it becomes interactive.
func Affordances(root *html.Node) []Element {
	var list []Element
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasClass(n, AffordanceClass) {
			list = append(list, nodeElement{n})
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return list
}

func hasClass(n *html.Node, class string) bool {
	for _, a := range n.Attr {
		if a.Key == "class" && slices.Contains(strings.Fields(a.Val), class) {
			return true
		}
	}
	return false
}
