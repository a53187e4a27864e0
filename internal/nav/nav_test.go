// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoutes(t *testing.T) {
	paths := []Path{
		{Title: "Intro", Href: "/intro"},
		{Spacer: true},
		{
			Title: "Guide",
			Href:  "/guide",
			Items: []Path{
				{Title: "One", Href: "/one"},
				{Spacer: true},
				{Title: "Missing href"},
				{
					Title:  "Group",
					Href:   "/group",
					NoLink: true,
					Items: []Path{
						{Title: "Deep", Href: "/deep"},
					},
				},
			},
		},
		{
			Title:      "Old",
			Href:       "/old",
			Deprecated: true,
			Items:      []Path{{Title: "Older", Href: "/older"}},
		},
	}
	want := []Route{
		{Title: "Intro", Href: "/intro"},
		{Title: "Guide", Href: "/guide"},
		{Title: "One", Href: "/guide/one"},
		{Title: "Deep", Href: "/guide/group/deep"},
		{Title: "Old", Href: "/old", Deprecated: true},
		{Title: "Older", Href: "/old/older", Deprecated: true},
	}
	if diff := cmp.Diff(want, Routes(paths)); diff != "" {
		t.Errorf("Routes mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultRoutes(t *testing.T) {
	routes := Routes(Documents())
	if len(routes) == 0 {
		t.Fatal("no default routes")
	}
	if routes[0].Href != "/introduction" {
		t.Errorf("first route = %q, want /introduction", routes[0].Href)
	}
	for _, href := range []string{
		"/getting-started/game-config",
		"/sdk/modules/moderation/model",
		"/sdk/modules/moderation/command",
		"/sdk/modules/world/datapoints",
		"/sdk/modules/game/mechanics/kit",
		"/cli/commands",
	} {
		if _, ok := Find(routes, href); !ok {
			t.Errorf("route %q missing", href)
		}
	}
	seen := make(map[string]bool)
	for _, r := range routes {
		if seen[r.Href] {
			t.Errorf("duplicate route %q", r.Href)
		}
		seen[r.Href] = true
	}
}

func TestPager(t *testing.T) {
	routes := []Route{{Title: "A", Href: "/a"}, {Title: "B", Href: "/b"}, {Title: "C", Href: "/c"}}
	for _, tt := range []struct {
		href       string
		prev, next string
	}{
		{"/a", "", "/b"},
		{"/b", "/a", "/c"},
		{"/c", "/b", ""},
		{"/zzz", "", ""},
	} {
		prev, next := Pager(routes, tt.href)
		if got := hrefOf(prev); got != tt.prev {
			t.Errorf("Pager(%q) prev = %q, want %q", tt.href, got, tt.prev)
		}
		if got := hrefOf(next); got != tt.next {
			t.Errorf("Pager(%q) next = %q, want %q", tt.href, got, tt.next)
		}
	}
}

func hrefOf(r *Route) string {
	if r == nil {
		return ""
	}
	return r.Href
}

func TestNavigation(t *testing.T) {
	links := Navigation(Routes(Documents()))
	if links[0].Href != "/docs/introduction" {
		t.Errorf("Docs link = %q, want /docs/introduction", links[0].Href)
	}
	for _, l := range links[1:] {
		if !l.External {
			t.Errorf("link %q not external", l.Title)
		}
	}
	if got := Navigation(nil)[0].Href; got != "/docs" {
		t.Errorf("Docs link without routes = %q", got)
	}
}

func TestTree(t *testing.T) {
	paths := []Path{
		{Title: "Intro", Href: "/intro"},
		{Spacer: true},
		{
			Title: "SDK",
			Href:  "/sdk",
			Items: []Path{
				{Title: "Chat", Href: "/chat"},
				{Title: "Group", Href: "/group", NoLink: true},
				{Title: "No href"},
			},
		},
	}
	want := []*Node{
		{Title: "Intro", Href: "/docs/intro"},
		{Spacer: true},
		{
			Title: "SDK",
			Href:  "/docs/sdk",
			Open:  true,
			Items: []*Node{
				{Title: "Chat", Href: "/docs/sdk/chat", Current: true, Open: true},
				{Title: "Group"},
			},
		},
	}
	if diff := cmp.Diff(want, Tree(paths, "/docs", "/sdk/chat")); diff != "" {
		t.Errorf("Tree mismatch (-want +got):\n%s", diff)
	}
}

func TestTreeDeprecated(t *testing.T) {
	paths := []Path{
		{
			Title:      "Legacy",
			Href:       "/legacy",
			Deprecated: true,
			Items: []Path{
				{Title: "Old API", Href: "/old"},
			},
		},
		{Title: "Current", Href: "/current"},
	}
	want := []*Node{
		{
			Title:      "Legacy",
			Href:       "/docs/legacy",
			Deprecated: true,
			Items: []*Node{
				{Title: "Old API", Href: "/docs/legacy/old", Deprecated: true},
			},
		},
		{Title: "Current", Href: "/docs/current", Current: true, Open: true},
	}
	if diff := cmp.Diff(want, Tree(paths, "/docs", "/current")); diff != "" {
		t.Errorf("Tree mismatch (-want +got):\n%s", diff)
	}
	// The sidebar agrees with the routes.
	for _, r := range Routes(paths) {
		if r.Href == "/legacy/old" && !r.Deprecated {
			t.Errorf("route %s not deprecated", r.Href)
		}
	}
}
