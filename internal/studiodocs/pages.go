// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"net/http"
	"net/url"

	"github.com/mineplex-llc/studiodocs/internal/deeplink"
	"github.com/mineplex-llc/studiodocs/internal/docs"
	"github.com/mineplex-llc/studiodocs/internal/nav"
)

// A docPage holds the fields needed to display a documentation page.
type docPage struct {
	CommonPage

	Page *docs.Page  // the page to display
	Tree []*nav.Node // sidebar entries
	Prev *pagerLink  // previous page, if any
	Next *pagerLink  // next page, if any

	TOC      bool   // show the table of contents
	ToTop    bool   // show the "scroll to top" link
	EditURL  string // link to edit the page source, if enabled
	Feedback string // link to report a problem with the page, if enabled

	Notice   string // confirmation shown after copying a heading link
	NoticeMS int64  // how long the confirmation stays visible
}

// A pagerLink is a "previous" or "next" page link.
type pagerLink struct {
	Title string
	Href  string
}

// A notFoundPage is shown for paths without a page.
type notFoundPage struct {
	CommonPage

	Path  string     // requested path
	First *pagerLink // the first page of the site
}

func (s *Studiodocs) handleDoc(w http.ResponseWriter, r *http.Request, href string, report func(error)) {
	p, ok := s.docs.Page(href)
	if !ok {
		if rt, ok := nav.Find(s.routes, href); ok {
			s.slog.Warn("route has no page", "href", href, "title", rt.Title)
		} else {
			s.slog.Debug("page not found", "href", href)
		}
		handlePage(w, http.StatusNotFound, s.populateNotFoundPage(r.URL.Path), notFoundTmpl, report)
		return
	}
	handlePage(w, http.StatusOK, s.populateDocPage(p), docPageTmpl, report)
}

// populateDocPage returns the contents of the page view for p.
func (s *Studiodocs) populateDocPage(p *docs.Page) *docPage {
	st := s.site.Settings
	path := docsPrefix + p.Href
	dp := &docPage{
		CommonPage: s.newCommonPage(p.Title, p.Description, path),
		Page:       p,
		Tree:       nav.Tree(s.site.Documents, docsPrefix, p.Href),
		TOC:        st.TableOfContent && st.RightSidebar && len(p.Outline) > 0,
		ToTop:      st.ToTopScroll,
		Notice:     deeplink.NoticeText,
		NoticeMS:   deeplink.NoticeDuration.Milliseconds(),
	}
	prev, next := nav.Pager(s.routes, p.Href)
	dp.Prev = newPagerLink(prev)
	dp.Next = newPagerLink(next)
	if st.FeedbackEdit && s.site.GitHub != "" {
		if p.File != "" {
			dp.EditURL = s.site.GitHub + "/edit/main/contents/docs/" + p.File
		}
		q := url.Values{
			"title":  {"Feedback for \"" + p.Title + "\""},
			"body":   {s.pageURL(p.Href)},
			"labels": {"feedback"},
		}
		dp.Feedback = s.site.GitHub + "/issues/new?" + q.Encode()
	}
	return dp
}

func newPagerLink(r *nav.Route) *pagerLink {
	if r == nil {
		return nil
	}
	return &pagerLink{Title: r.Title, Href: docsPrefix + r.Href}
}

// populateNotFoundPage returns the contents of the "not found" page for path.
func (s *Studiodocs) populateNotFoundPage(path string) *notFoundPage {
	np := &notFoundPage{
		CommonPage: s.newCommonPage("Page not found", "", path),
		Path:       path,
	}
	if len(s.routes) > 0 {
		np.First = &pagerLink{Title: s.routes[0].Title, Href: s.firstPage()}
	}
	return np
}
