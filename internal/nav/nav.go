// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package nav describes the navigation of the documentation site:
// the document tree shown in the sidebar, the page routes derived
// from it, and the links in the top navigation bar.
package nav

// A Path is an entry of the document tree.
// An entry is either a spacer, which only separates groups in the
// sidebar, or a titled page whose Href is relative to its parent's.
type Path struct {
	Title      string `yaml:"title,omitempty" json:"title,omitempty"`
	Href       string `yaml:"href,omitempty" json:"href,omitempty"`
	NoLink     bool   `yaml:"noLink,omitempty" json:"noLink,omitempty"` // group heading without a page of its own
	Spacer     bool   `yaml:"spacer,omitempty" json:"spacer,omitempty"`
	Deprecated bool   `yaml:"deprecated,omitempty" json:"deprecated,omitempty"`
	Items      []Path `yaml:"items,omitempty" json:"items,omitempty"`
}

// isRoute reports whether p names a page location.
func (p Path) isRoute() bool {
	return !p.Spacer && p.Title != "" && p.Href != ""
}

// A Route is a page of the site with its full href.
type Route struct {
	Title      string `json:"title"`
	Href       string `json:"href"`
	Deprecated bool   `json:"deprecated,omitempty"`
}

// Routes flattens the document tree into page routes,
// in depth-first order.
// A child's href is its parent's href followed by its own.
// Spacers and entries lacking a title or href are skipped along
// with their children. NoLink entries contribute no route of their
// own but their children are still listed.
func Routes(paths []Path) []Route {
	var routes []Route
	for _, p := range paths {
		routes = appendRoutes(routes, p, "", false)
	}
	return routes
}

func appendRoutes(routes []Route, p Path, prefix string, deprecated bool) []Route {
	if !p.isRoute() {
		return routes
	}
	href := prefix + p.Href
	deprecated = deprecated || p.Deprecated
	if !p.NoLink {
		routes = append(routes, Route{Title: p.Title, Href: href, Deprecated: deprecated})
	}
	for _, c := range p.Items {
		routes = appendRoutes(routes, c, href, deprecated)
	}
	return routes
}

// Find returns the route with the given href.
func Find(routes []Route, href string) (Route, bool) {
	for _, r := range routes {
		if r.Href == href {
			return r, true
		}
	}
	return Route{}, false
}

// Pager returns the routes before and after href in routes,
// for "previous" and "next" page links.
// Either result is nil at the ends of the list,
// and both are nil if href is not a route.
func Pager(routes []Route, href string) (prev, next *Route) {
	for i := range routes {
		if routes[i].Href != href {
			continue
		}
		if i > 0 {
			prev = &routes[i-1]
		}
		if i+1 < len(routes) {
			next = &routes[i+1]
		}
		return prev, next
	}
	return nil, nil
}

// A Link is an entry of the top navigation bar.
type Link struct {
	Title    string `yaml:"title" json:"title"`
	Href     string `yaml:"href" json:"href"`
	External bool   `yaml:"external,omitempty" json:"external,omitempty"` // opens in a new browsing context
}

// A Node is a document tree entry resolved for display:
// hrefs are absolute and the entry for the current page is marked.
type Node struct {
	Title      string
	Href       string // empty for spacers and NoLink entries
	Spacer     bool
	Deprecated bool
	Current    bool // the page being displayed
	Open       bool // the current page is this entry or below it
	Items      []*Node
}

// Tree resolves paths for display under base (such as "/docs"),
// marking the entry whose full href is current.
// Entries below a deprecated entry are deprecated too, as in [Routes].
func Tree(paths []Path, base, current string) []*Node {
	var nodes []*Node
	for _, p := range paths {
		if n := resolve(p, base, "", current, false); n != nil {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

func resolve(p Path, base, prefix, current string, deprecated bool) *Node {
	if p.Spacer {
		return &Node{Spacer: true}
	}
	if !p.isRoute() {
		return nil
	}
	href := prefix + p.Href
	deprecated = deprecated || p.Deprecated
	n := &Node{
		Title:      p.Title,
		Deprecated: deprecated,
		Current:    href == current,
	}
	if !p.NoLink {
		n.Href = base + href
	}
	n.Open = n.Current
	for _, c := range p.Items {
		if cn := resolve(c, base, href, current, deprecated); cn != nil {
			n.Items = append(n.Items, cn)
			n.Open = n.Open || cn.Open
		}
	}
	return n
}
