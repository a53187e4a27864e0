// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package javadoc builds link cards pointing at javadoc.io reference pages.
package javadoc

import (
	"bytes"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Defaults used when a [Reference] leaves GroupID or ArtifactID empty.
const (
	DefaultGroupID    = "com.mineplex.studio.sdk"
	DefaultArtifactID = "sdk"
)

// baseURL is the javadoc host every card links to.
const baseURL = "https://www.javadoc.io/doc/"

// Label is the text shown on every card.
const Label = "View the JavaDocs for this"

// A Reference identifies a class in a published artifact.
type Reference struct {
	Classpath  string // dot-separated class path, such as "com.example.Foo"
	GroupID    string // maven group ID; DefaultGroupID if empty
	ArtifactID string // maven artifact ID; DefaultArtifactID if empty
}

// URL returns the javadoc.io page for r.
// It does not check that the class path is well formed:
// leading or trailing dots produce an odd but valid URL.
func (r Reference) URL() string {
	group, artifact := r.GroupID, r.ArtifactID
	if group == "" {
		group = DefaultGroupID
	}
	if artifact == "" {
		artifact = DefaultArtifactID
	}
	path := strings.Join(strings.Split(r.Classpath, "."), "/")
	return baseURL + group + "/" + artifact + "/latest/" + path + ".html"
}

// A Card is the view model for a rendered javadoc link.
type Card struct {
	URL   string // destination, opened in a new browsing context
	Label string // visible text
}

// Render returns the card for r, or nil if r has no class path.
func Render(r Reference) *Card {
	if r.Classpath == "" {
		return nil
	}
	return &Card{URL: r.URL(), Label: Label}
}

// Attributes of the card's outer link.
const (
	target = "_blank"
	rel    = "noopener noreferrer"
)

// iconPaths are the strokes of the book icon drawn on the card.
var iconPaths = []string{
	"M4 19.5A2.5 2.5 0 0 1 6.5 17H20",
	"M6.5 2H20v20H6.5A2.5 2.5 0 0 1 4 19.5v-15A2.5 2.5 0 0 1 6.5 2z",
}

// Node returns c as an HTML element tree, ready to be
// inserted into a parsed document.
func (c *Card) Node() *html.Node {
	a := elem(atom.A, "javadoc-card",
		html.Attribute{Key: "href", Val: c.URL},
		html.Attribute{Key: "target", Val: target},
		html.Attribute{Key: "rel", Val: rel})

	icon := elem(atom.Div, "javadoc-card-icon")
	svg := &html.Node{
		Type:      html.ElementNode,
		Data:      "svg",
		Namespace: "svg",
		Attr: []html.Attribute{
			{Key: "xmlns", Val: "http://www.w3.org/2000/svg"},
			{Key: "width", Val: "24"},
			{Key: "height", Val: "24"},
			{Key: "viewBox", Val: "0 0 24 24"},
			{Key: "fill", Val: "none"},
			{Key: "stroke", Val: "currentColor"},
			{Key: "stroke-width", Val: "2"},
			{Key: "stroke-linecap", Val: "round"},
			{Key: "stroke-linejoin", Val: "round"},
		},
	}
	for _, d := range iconPaths {
		svg.AppendChild(&html.Node{
			Type:      html.ElementNode,
			Data:      "path",
			Namespace: "svg",
			Attr:      []html.Attribute{{Key: "d", Val: d}},
		})
	}
	icon.AppendChild(svg)
	a.AppendChild(icon)

	label := elem(atom.Div, "javadoc-card-label")
	label.AppendChild(&html.Node{Type: html.TextNode, Data: c.Label})
	a.AppendChild(label)
	return a
}

// String returns the HTML for c.
func (c *Card) String() string {
	var buf bytes.Buffer
	// html.Render only fails on write errors, and bytes.Buffer has none.
	_ = html.Render(&buf, c.Node())
	return buf.String()
}

// elem returns a new element node with the given class and attributes.
func elem(a atom.Atom, class string, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     append(attrs, html.Attribute{Key: "class", Val: class}),
	}
}
