// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmlutil

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mineplex-llc/studiodocs/internal/javadoc"
)

// JavadocTag is the element pages use to place a javadoc card.
const JavadocTag = "javadoc-link"

// ExpandJavadoc replaces each javadoc-link element under root
// with the card [javadoc.Render] builds from its attributes:
//
//	<javadoc-link classpath="com.mineplex.studio.sdk.modules.MineplexModule"></javadoc-link>
//
// The groupid and artifactid attributes (or group-id and artifact-id)
// override the default Maven coordinates.
// An element with an empty classpath is removed.
// The classpath is used as written; only an empty one is absent.
// A paragraph holding nothing but the element is replaced as a whole,
// so the card is not nested in a <p>.
// Content the element wrapped (as happens when it is written as
// self-closing, which HTML does not honor) is kept after the card.
//
// ExpandJavadoc returns the number of cards it inserted.
func ExpandJavadoc(root *html.Node) int {
	var links []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == JavadocTag {
			links = append(links, n)
		}
	})
	cards := 0
	// Innermost first, so that a link wrapped by another
	// (after an unclosed tag) is expanded before it moves.
	for i := len(links) - 1; i >= 0; i-- {
		n := links[i]
		ref := javadoc.Reference{
			Classpath:  findAttr(n, "classpath"),
			GroupID:    attrAlias(n, "groupid", "group-id"),
			ArtifactID: attrAlias(n, "artifactid", "artifact-id"),
		}
		if n.Parent == nil {
			continue
		}
		// Keep wrapped content, in order, after the element.
		next := n.NextSibling
		for c := n.FirstChild; c != nil; c = n.FirstChild {
			n.RemoveChild(c)
			n.Parent.InsertBefore(c, next)
		}
		at := n
		if p := n.Parent; p.DataAtom == atom.P && onlyChild(p, n) && p.Parent != nil {
			at = p
		}
		parent := at.Parent
		if card := javadoc.Render(ref); card != nil {
			parent.InsertBefore(card.Node(), at)
			cards++
		}
		parent.RemoveChild(at)
	}
	return cards
}

// attrAlias returns the value of the first of n's attributes
// named by names that is set.
func attrAlias(n *html.Node, names ...string) string {
	for _, name := range names {
		if v := strings.TrimSpace(findAttr(n, name)); v != "" {
			return v
		}
	}
	return ""
}

// onlyChild reports whether n is the only child of p,
// not counting white space.
func onlyChild(p, n *html.Node) bool {
	for c := p.FirstChild; c != nil; c = c.NextSibling {
		if c == n {
			continue
		}
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" {
			continue
		}
		return false
	}
	return true
}
