// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.opentelemetry.io/otel/attribute"
	ometric "go.opentelemetry.io/otel/metric"

	"github.com/mineplex-llc/studiodocs/internal/docs"
	"github.com/mineplex-llc/studiodocs/internal/javadoc"
	"github.com/mineplex-llc/studiodocs/internal/nav"
	"github.com/mineplex-llc/studiodocs/internal/slug"
)

// docsPrefix is the URL path under which pages are served.
const docsPrefix = "/docs"

// serveHTTP serves the site until the process is interrupted.
func (s *Studiodocs) serveHTTP() error {
	mux := s.newServer(s.reportError)
	// Listen in this goroutine so that we can return a synchronous error
	// if the port is already in use or the address is otherwise invalid.
	l, err := net.Listen("tcp", s.addr)
	if err != nil {
		s.reportError(err)
		return err
	}
	s.slog.Info("serving", "addr", l.Addr().String(), "base", s.baseURL)

	srv := &http.Server{Handler: mux, ReadHeaderTimeout: 10 * time.Second}
	ctx, stop := signal.NotifyContext(s.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	if err := srv.Serve(l); !errors.Is(err, http.ErrServerClosed) {
		s.reportError(err)
		return err
	}
	s.slog.Info("server stopped")
	return nil
}

// newServer creates a new [http.ServeMux] that uses report to
// process server creation and endpoint errors.
func (s *Studiodocs) newServer(report func(error)) *http.ServeMux {
	const (
		docsEndpoint     = "docs"
		javadocEndpoint  = "javadoc"
		routesEndpoint   = "api/routes"
		copiedEndpoint   = "api/copied"
		setLevelEndpoint = "setlevel"
	)
	docsEndpointCounter := s.newEndpointCounter(docsEndpoint)
	javadocEndpointCounter := s.newEndpointCounter(javadocEndpoint)
	copiedCounter := s.newCounter("links-copied", "number of heading links copied")
	s.registerPagesMetric()

	mux := http.NewServeMux()

	// The site root leads to the first page.
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, s.firstPage(), http.StatusFound)
	})

	mux.HandleFunc("GET /"+docsEndpoint+"/{path...}", func(w http.ResponseWriter, r *http.Request) {
		href := "/" + strings.TrimSuffix(r.PathValue("path"), "/")
		if href == "/" {
			// Without a root page, lead to the first page, if that is elsewhere.
			if _, ok := s.docs.Page(href); !ok {
				if first := s.firstPage(); first != r.URL.Path {
					http.Redirect(w, r, first, http.StatusFound)
					return
				}
			}
		}
		s.handleDoc(w, r, href, report)
		docsEndpointCounter.Add(r.Context(), 1)
	})

	// serve static files
	mux.Handle("GET /static/", http.FileServerFS(staticFS))

	// javadoc redirects to the javadoc page of a class.
	// Usage: /javadoc?classpath=CLASS[&groupid=GROUP][&artifactid=ARTIFACT]
	mux.HandleFunc("GET /"+javadocEndpoint, func(w http.ResponseWriter, r *http.Request) {
		javadocEndpointCounter.Add(r.Context(), 1)
		card := javadoc.Render(javadoc.Reference{
			Classpath:  r.FormValue("classpath"),
			GroupID:    r.FormValue("groupid"),
			ArtifactID: r.FormValue("artifactid"),
		})
		if card == nil {
			http.Error(w, "missing classpath", http.StatusNotFound)
			return
		}
		http.Redirect(w, r, card.URL, http.StatusFound)
	})

	// routes lists the page routes and the top navigation as JSON,
	// along with the server metadata.
	mux.HandleFunc("GET /"+routesEndpoint, func(w http.ResponseWriter, r *http.Request) {
		type route struct {
			nav.Route
			Path     string `json:"path"`
			Loaded   bool   `json:"loaded"`
			Headings int    `json:"headings,omitempty"`
		}
		resp := struct {
			Routes     []route           `json:"routes"`
			Navigation []nav.Link        `json:"navigation"`
			GitHub     string            `json:"github"`
			Meta       map[string]string `json:"meta"`
		}{
			Navigation: s.site.Navigation,
			GitHub:     s.site.GitHub,
			Meta:       s.meta,
		}
		loaded := make(map[string]*docs.Page)
		for p := range s.docs.Pages() {
			loaded[p.Href] = p
		}
		for _, rt := range s.docs.Routes() {
			rr := route{Route: rt, Path: docsPrefix + rt.Href}
			if p, ok := loaded[rt.Href]; ok {
				rr.Loaded = true
				rr.Headings = len(p.Outline)
			}
			resp.Routes = append(resp.Routes, rr)
		}
		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(resp); err != nil {
			report(err)
		}
	})

	// copied records a heading link copied by deeplink.js.
	// The request body is the copied link.
	mux.HandleFunc("POST /"+copiedEndpoint, func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, 4096))
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		href, anchor, ok := s.copiedLink(string(body))
		if !ok {
			http.Error(w, "not a heading link", http.StatusBadRequest)
			return
		}
		s.slog.Debug("heading link copied", "href", href, "anchor", anchor)
		copiedCounter.Add(r.Context(), 1, ometric.WithAttributes(attribute.String("page", href)))
		w.WriteHeader(http.StatusNoContent)
	})

	// setlevel changes the log level dynamically.
	// Usage: /setlevel?l=LEVEL
	mux.HandleFunc("GET /"+setLevelEndpoint, func(w http.ResponseWriter, r *http.Request) {
		if err := s.slogLevel.UnmarshalText([]byte(r.FormValue("l"))); err != nil {
			report(err)
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// Don't use "level" as a key: it will be misinterpreted as the severity of the log entry.
		s.slog.Info("log level set", "new-level", s.slogLevel.Level())
		fmt.Fprintf(w, "log level: %v\n", s.slogLevel.Level())
	})

	return mux
}

// firstPage returns the path of the first route's page.
func (s *Studiodocs) firstPage() string {
	if len(s.routes) == 0 {
		return docsPrefix + "/"
	}
	return docsPrefix + s.routes[0].Href
}

// copiedLink parses a link copied from a page of this site.
// It reports the route of the page and the heading anchor,
// and whether the link is a heading link to a loaded page.
func (s *Studiodocs) copiedLink(link string) (href, anchor string, ok bool) {
	u, err := url.Parse(strings.TrimSpace(link))
	if err != nil || u.Fragment == "" || slug.Make(u.Fragment) != u.Fragment {
		return "", "", false
	}
	href, ok = strings.CutPrefix(u.Path, docsPrefix)
	if !ok {
		return "", "", false
	}
	if _, ok := s.docs.Page(href); !ok {
		return "", "", false
	}
	return href, u.Fragment, true
}
