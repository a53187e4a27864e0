// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmlutil

import (
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/mineplex-llc/studiodocs/internal/deeplink"
	"github.com/mineplex-llc/studiodocs/internal/slug"
)

// AnchorHeadings gives every heading under root that can own a
// copy affordance an id and a copy affordance.
//
// The id is the slug of the heading text, the same slug a
// [deeplink.Copier] derives when the affordance is activated,
// so copied links always resolve. Any id the source gave the
// heading is replaced. Headings whose text has an empty slug
// keep their id.
//
// AnchorHeadings returns the number of headings it changed.
func AnchorHeadings(root *html.Node) int {
	var headings []*html.Node
	walk(root, func(n *html.Node) {
		if n.Type == html.ElementNode && deeplink.IsHeading(n.Data) {
			headings = append(headings, n)
		}
	})
	for _, h := range headings {
		if id := slug.Make(deeplink.FromNode(h).Text()); id != "" {
			setAttr(h, "id", id)
		}
		h.AppendChild(affordance())
	}
	return len(headings)
}

// affordance returns a new copy affordance element.
// It has no text, so it does not change the heading text.
func affordance() *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Span,
		Data:     "span",
		Attr: []html.Attribute{
			{Key: "class", Val: deeplink.AffordanceClass},
			{Key: "aria-hidden", Val: "true"},
			{Key: "title", Val: "Copy link to this heading"},
		},
	}
}
