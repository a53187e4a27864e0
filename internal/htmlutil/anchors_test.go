// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package htmlutil

import (
	"context"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/mineplex-llc/studiodocs/internal/deeplink"
	"github.com/mineplex-llc/studiodocs/internal/testutil"
)

const affordanceHTML = `<span class="icon-link" aria-hidden="true" title="Copy link to this heading"></span>`

func TestAnchorHeadings(t *testing.T) {
	for _, tt := range []struct {
		in, out string
		n       int
	}{
		{
			`<h2>Getting Started</h2>`,
			`<h2 id="getting-started">Getting Started` + affordanceHTML + `</h2>`,
			1,
		},
		{
			`<h3 id="old">Hello, World!  Example</h3>`,
			`<h3 id="hello-world-example">Hello, World!  Example` + affordanceHTML + `</h3>`,
			1,
		},
		{
			`<h4><code>Module.start()</code> hooks</h4>`,
			`<h4 id="modulestart-hooks"><code>Module.start()</code> hooks` + affordanceHTML + `</h4>`,
			1,
		},
		{
			// Nothing to slug: the heading keeps no id but still gets an affordance.
			`<h2>!!!</h2>`,
			`<h2>!!!` + affordanceHTML + `</h2>`,
			1,
		},
		{
			`<h1>Title</h1><h5>Small</h5><p>text</p>`,
			`<h1>Title</h1><h5>Small</h5><p>text</p>`,
			0,
		},
	} {
		root := ParseFragment(tt.in)
		n := AnchorHeadings(root)
		if got := Render(root); got != tt.out || n != tt.n {
			t.Errorf("AnchorHeadings(%s) = %d, %s\nwant %d, %s", tt.in, n, got, tt.n, tt.out)
		}
	}
}

// TestAnchorsMatchCopier checks that the link a Copier builds for
// each affordance points at the id of the affordance's heading.
func TestAnchorsMatchCopier(t *testing.T) {
	page := MarkdownToHTML(`# Chat

## Sending Messages

### Formatting, colors & styles

## Events (v2)

#### Player joins
`)
	root := ParseFragment(page)
	AnchorHeadings(root)

	var ids []string
	for h := range Outline(root) {
		ids = append(ids, h.ID)
	}
	want := []string{"sending-messages", "formatting-colors--styles", "events-v2", "player-joins"}
	if diff := cmp.Diff(want, ids); diff != "" {
		t.Fatalf("heading ids (-want +got):\n%s", diff)
	}

	cb := new(testutil.Clipboard)
	c := deeplink.New(testutil.Slogger(t), "/docs/chat", cb)
	affordances := deeplink.Affordances(root)
	c.Attach(affordances)
	var links []string
	for _, a := range affordances {
		link, ok := c.Activate(context.Background(), a)
		if !ok {
			t.Fatalf("Activate(%v) failed", a)
		}
		links = append(links, link)
	}
	var wantLinks []string
	for _, id := range ids {
		wantLinks = append(wantLinks, "/docs/chat#"+id)
	}
	if diff := cmp.Diff(wantLinks, links); diff != "" {
		t.Errorf("copied links (-want +got):\n%s", diff)
	}
	if !slices.Equal(cb.Writes(), links) {
		t.Errorf("clipboard writes = %q, want %q", cb.Writes(), links)
	}
}
