// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"net/http"

	"github.com/google/safehtml"
	"github.com/google/safehtml/template"

	"github.com/mineplex-llc/studiodocs/internal/nav"
	"github.com/mineplex-llc/studiodocs/internal/site"
)

// Exec executes the given template on the page.
func Exec(tmpl *template.Template, p page) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, p); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// handlePage writes the page p rendered by tmpl with the given status.
func handlePage(w http.ResponseWriter, status int, p page, tmpl *template.Template, report func(error)) {
	b, err := Exec(tmpl, p)
	if err != nil {
		report(err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// page is a studiodocs webpage containing a [CommonPage].
// Any struct that embeds a [CommonPage] implements this interface.
type page interface {
	// do not directly define [isCommonPage].
	isCommonPage()
}

// A CommonPage is a partial representation of a studiodocs web page,
// used to store data that is common to every page.
// The templates in tmpl/common.tmpl are defined on this type.
type CommonPage struct {
	// The document title.
	Title string
	// Meta and link tags for the page head.
	Head safehtml.HTML
	// The site name, shown in the header.
	SiteName string
	// The top navigation links.
	Navigation []nav.Link
	// The documentation repository.
	GitHub string
	// The Google Tag Manager script, if enabled.
	GTM safeURL
	// Whether GTM is set.
	HasGTM bool
	// Footer text.
	Company, CompanyLink string
	// Whether to show the "made with" branding.
	Branding bool
}

// Implements [page.isCommonPage].
func (*CommonPage) isCommonPage() {}

// newCommonPage returns the common part of the page at path
// (such as "/docs/introduction").
func (s *Studiodocs) newCommonPage(title, description, path string) CommonPage {
	st := s.site.Settings
	// Canonical and social links use the configured origin.
	st.URL = s.baseURL
	cp := CommonPage{
		Title:       site.Title(st, title),
		Head:        site.MetaTags(site.Meta(st, title, description, path)),
		SiteName:    st.SiteName,
		Navigation:  s.site.Navigation,
		GitHub:      s.site.GitHub,
		Company:     st.CompanyName,
		CompanyLink: st.CompanyLink,
		Branding:    st.Branding,
	}
	if st.GTMConnected && st.GTM != "" {
		cp.GTM = safehtml.TrustedResourceURLWithParams(gtmScript, map[string]string{"id": st.GTM})
		cp.HasGTM = true
	}
	return cp
}

var gtmScript = safehtml.TrustedResourceURLFromConstant("https://www.googletagmanager.com/gtm.js")

// Shorthands for safehtml types.
type (
	safeURL = safehtml.TrustedResourceURL
)
