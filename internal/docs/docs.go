// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package docs implements a corpus of documentation pages
// loaded from a tree of markdown files.
//
// A page for the route "/a/b" lives in "a/b/index.md" or "a/b.md".
// A page may start with YAML front matter between "---" lines:
//
//	---
//	title: Chat Module
//	description: Send formatted chat messages to players.
//	---
//
// Page bodies are trusted: raw HTML in them is kept,
// and javadoc-link elements are expanded into cards.
package docs

import (
	"bytes"
	"cmp"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"log/slog"
	"path"
	"slices"
	"strings"
	"sync"

	"github.com/google/safehtml"
	"github.com/google/safehtml/uncheckedconversions"
	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"

	"github.com/mineplex-llc/studiodocs/internal/htmlutil"
	"github.com/mineplex-llc/studiodocs/internal/nav"
	"github.com/mineplex-llc/studiodocs/internal/queue"
)

// A Page is a rendered documentation page.
type Page struct {
	Href        string              // route of the page, such as "/getting-started/introduction"
	Title       string              // from front matter, or the route title
	Description string              // from front matter; plain text
	Lead        safehtml.HTML       // Description rendered as markdown
	Deprecated  bool                // the route is marked deprecated
	Body        safehtml.HTML       // rendered page body
	Outline     []*htmlutil.Heading // anchored headings, in order
	Cards       int                 // number of javadoc cards in Body
	File        string              // file the page was loaded from
}

// Document parses the page body into a new HTML tree.
// Each call returns a separate tree.
func (p *Page) Document() *html.Node {
	return htmlutil.ParseFragment(p.Body.String())
}

// A Corpus is the set of pages for a site's routes.
type Corpus struct {
	slog   *slog.Logger
	fsys   fs.FS
	routes []nav.Route

	mu    sync.RWMutex
	pages map[string]*Page
}

// New returns a new, empty Corpus for routes, reading files from fsys.
// Call [Corpus.Load] to read the pages.
func New(lg *slog.Logger, fsys fs.FS, routes []nav.Route) *Corpus {
	return &Corpus{
		slog:   lg,
		fsys:   fsys,
		routes: routes,
		pages:  make(map[string]*Page),
	}
}

// Load reads and renders the page for every route, replacing any
// pages loaded earlier. Pages are rendered concurrently.
// Routes without a page file are logged and skipped. Load returns
// the errors of all pages that failed to load; the other pages are
// still available.
func (c *Corpus) Load(ctx context.Context) error {
	var mu sync.Mutex
	pages := make(map[string]*Page)
	q := queue.NewInMemory(ctx, loadWorkers, func(_ context.Context, t queue.Task) error {
		r := t.(routeTask).Route
		p, err := c.load(r)
		if err != nil {
			return err
		}
		if p == nil {
			c.slog.Info("docs page missing", "href", r.Href)
			return nil
		}
		c.slog.Debug("docs.Load", "href", r.Href, "file", p.File, "headings", len(p.Outline), "cards", p.Cards)
		mu.Lock()
		pages[r.Href] = p
		mu.Unlock()
		return nil
	})
	for _, r := range c.routes {
		q.Enqueue(routeTask{r})
	}
	q.Wait()

	c.mu.Lock()
	c.pages = pages
	c.mu.Unlock()
	return errors.Join(q.Errors()...)
}

// loadWorkers is the number of pages rendered at once.
const loadWorkers = 4

// A routeTask loads the page for a route.
type routeTask struct {
	nav.Route
}

func (t routeTask) Name() string { return t.Href }

// load loads the page for r. It returns nil, nil if r has no page file.
func (c *Corpus) load(r nav.Route) (*Page, error) {
	for _, file := range Files(r.Href) {
		data, err := fs.ReadFile(c.fsys, file)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("docs: %s: %w", r.Href, err)
		}
		p, err := Parse(r, data)
		if err != nil {
			return nil, fmt.Errorf("docs: %s: %w", file, err)
		}
		p.File = file
		return p, nil
	}
	return nil, nil
}

// Files returns the files that may hold the page for href,
// in order of preference.
func Files(href string) []string {
	p := strings.Trim(path.Clean("/"+href), "/")
	if p == "" {
		return []string{"index.md"}
	}
	return []string{path.Join(p, "index.md"), p + ".md"}
}

// Page returns the page for href.
func (c *Corpus) Page(href string) (*Page, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.pages[href]
	return p, ok
}

// Routes returns the corpus routes.
func (c *Corpus) Routes() []nav.Route {
	return c.routes
}

// Pages returns an iterator over the loaded pages, in route order.
func (c *Corpus) Pages() iter.Seq[*Page] {
	return func(yield func(*Page) bool) {
		for _, r := range c.routes {
			if p, ok := c.Page(r.Href); ok {
				if !yield(p) {
					return
				}
			}
		}
	}
}

// Len returns the number of loaded pages.
func (c *Corpus) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.pages)
}

// frontMatter is the YAML header of a page file.
type frontMatter struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Parse renders the page file data for the route r.
func Parse(r nav.Route, data []byte) (*Page, error) {
	fm, body, err := splitFrontMatter(data)
	if err != nil {
		return nil, err
	}
	p := &Page{
		Href:        r.Href,
		Title:       cmp.Or(fm.Title, r.Title),
		Description: fm.Description,
		Deprecated:  r.Deprecated,
	}
	if fm.Description != "" {
		p.Lead = htmlutil.MarkdownToSafeHTML(fm.Description)
	}

	root := htmlutil.ParseFragment(htmlutil.MarkdownToHTML(string(body)))
	p.Cards = htmlutil.ExpandJavadoc(root)
	htmlutil.AnchorHeadings(root)
	p.Outline = slices.Collect(htmlutil.Outline(root))
	// Page files are part of the site source, not user input.
	p.Body = uncheckedconversions.HTMLFromStringKnownToSatisfyTypeContract(htmlutil.Render(root))
	return p, nil
}

var fence = []byte("---")

// splitFrontMatter splits data into its front matter and markdown body.
// Data without front matter has a zero frontMatter.
func splitFrontMatter(data []byte) (frontMatter, []byte, error) {
	var fm frontMatter
	data = bytes.TrimPrefix(data, []byte("\ufeff"))
	first, rest, ok := cutLine(data)
	if !ok || !bytes.Equal(bytes.TrimRight(first, " \t\r"), fence) {
		return fm, data, nil
	}
	var header []byte
	for len(rest) > 0 {
		var line []byte
		line, rest, _ = cutLine(rest)
		if bytes.Equal(bytes.TrimRight(line, " \t\r"), fence) {
			if err := yaml.Unmarshal(header, &fm); err != nil {
				return fm, nil, fmt.Errorf("front matter: %w", err)
			}
			return fm, rest, nil
		}
		header = append(header, line...)
		header = append(header, '\n')
	}
	return fm, nil, errors.New("front matter: missing closing ---")
}

// cutLine cuts data after its first line.
// ok is false if data has no newline.
func cutLine(data []byte) (line, rest []byte, ok bool) {
	line, rest, ok = bytes.Cut(data, []byte("\n"))
	return line, rest, ok
}
