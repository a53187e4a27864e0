// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package site

import (
	"html"
	"strings"

	"github.com/google/safehtml"
	"github.com/google/safehtml/uncheckedconversions"
)

// A Tag is a <meta> or <link> element of a page head.
type Tag struct {
	Element string // "meta" or "link"
	Key     string // name, property or rel attribute name
	Name    string // its value
	Attr    string // content or href attribute name
	Value   string // its value
}

func meta(name, content string) Tag {
	return Tag{Element: "meta", Key: "name", Name: name, Attr: "content", Value: content}
}

func property(name, content string) Tag {
	return Tag{Element: "meta", Key: "property", Name: name, Attr: "content", Value: content}
}

func link(rel, href string) Tag {
	return Tag{Element: "link", Key: "rel", Name: rel, Attr: "href", Value: href}
}

// Title returns the document title for a page titled page.
func Title(s Settings, page string) string {
	if page == "" || page == s.SiteName {
		return s.SiteName
	}
	return page + " - " + s.SiteName
}

// Meta returns the head tags for the page at path (such as "/docs/introduction")
// with the given title and description. An empty description falls back to
// the site description.
func Meta(s Settings, title, description, path string) []Tag {
	if description == "" {
		description = s.Description
	}
	title = Title(s, title)
	pageURL := s.URL + path
	image := absolute(s, s.URLImage)

	tags := []Tag{
		meta("description", description),
	}
	if len(s.Keywords) > 0 {
		tags = append(tags, meta("keywords", strings.Join(s.Keywords, ", ")))
	}
	tags = append(tags,
		link("canonical", pageURL),
		property("og:type", "website"),
		property("og:site_name", s.SiteName),
		property("og:title", title),
		property("og:description", description),
		property("og:url", pageURL),
	)
	if image != "" {
		tags = append(tags,
			property("og:image", image),
			property("og:image:alt", s.ImageAlt),
		)
	}
	tags = append(tags,
		meta("twitter:card", "summary_large_image"),
		meta("twitter:title", title),
		meta("twitter:description", description),
	)
	if s.TwitterHandle != "" {
		tags = append(tags,
			meta("twitter:site", s.TwitterHandle),
			meta("twitter:creator", s.TwitterHandle),
		)
	}
	if image != "" {
		tags = append(tags, meta("twitter:image", image))
	}
	if s.SiteIcon != "" {
		tags = append(tags, link("icon", s.SiteIcon))
	}
	return tags
}

// absolute returns path resolved against the site URL.
func absolute(s Settings, path string) string {
	if path == "" || strings.Contains(path, "://") {
		return path
	}
	return s.URL + path
}

// MetaTags renders tags as HTML for inclusion in a page head.
func MetaTags(tags []Tag) safehtml.HTML {
	var b strings.Builder
	for _, t := range tags {
		b.WriteString("<" + t.Element)
		b.WriteString(" " + t.Key + `="` + html.EscapeString(t.Name) + `"`)
		b.WriteString(" " + t.Attr + `="` + html.EscapeString(t.Value) + `"`)
		b.WriteString("/>\n")
	}
	// Element and attribute names come from this package's constructors
	// and every value is escaped.
	return uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(b.String())
}
