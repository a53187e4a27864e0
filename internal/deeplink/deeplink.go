// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package deeplink implements the "copy link to heading" behavior
// of a documentation page.
//
// A page registers its copy affordances once with [Copier.Attach].
// Activating an affordance resolves the nearest enclosing heading,
// writes a link to that heading to the clipboard and shows a
// confirmation notice for [NoticeDuration].
package deeplink

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/mineplex-llc/studiodocs/internal/slug"
)

// NoticeDuration is how long the confirmation notice stays visible
// after the most recent copy.
const NoticeDuration = 2 * time.Second

// NoticeText is the confirmation shown after a copy.
const NoticeText = "Copied heading link to clipboard!"

// headingTags are the heading elements a copy affordance can belong to.
var headingTags = []string{"h2", "h3", "h4"}

// IsHeading reports whether elements named tag can own a copy affordance.
func IsHeading(tag string) bool {
	return slices.Contains(headingTags, strings.ToLower(tag))
}

// An Element is a node of a page's element tree.
// Implementations must be comparable: two Elements for the
// same underlying node must compare equal.
type Element interface {
	// Tag returns the lower-case element name, such as "h2".
	Tag() string
	// Parent returns the enclosing element, or nil at the root.
	Parent() Element
	// Text returns the visible text of the element.
	Text() string
}

// A Clipboard accepts text written by a [Copier].
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}

// State is the notice state of a [Copier].
type State int

const (
	Idle          State = iota // no notice shown
	NoticeVisible              // confirmation notice shown
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case NoticeVisible:
		return "notice-visible"
	}
	return "State(?)"
}

// A timer is the part of [*time.Timer] used by a Copier.
type timer interface {
	Stop() bool
}

// A Copier holds the deep-link state of a single page.
type Copier struct {
	slog      *slog.Logger
	pageURL   string
	clipboard Clipboard

	// afterFunc schedules f after d; tests replace it.
	afterFunc func(d time.Duration, f func()) timer

	mu       sync.Mutex
	attached bool
	targets  map[Element]bool
	state    State
	timer    timer
	gen      int // incremented on every copy; stale timers see a newer gen
	onChange func(State)
}

// New returns a Copier for the page at pageURL that writes links to cb.
// Nothing is attached until [Copier.Attach] is called.
func New(lg *slog.Logger, pageURL string, cb Clipboard) *Copier {
	return &Copier{
		slog:      lg,
		pageURL:   pageURL,
		clipboard: cb,
		afterFunc: func(d time.Duration, f func()) timer { return time.AfterFunc(d, f) },
	}
}

// OnChange arranges for f to be called after every state transition.
// f runs without the Copier's lock held, possibly on a timer goroutine.
func (c *Copier) OnChange(f func(State)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onChange = f
}

// Attach registers the copy affordances of the page.
// Only the first call has any effect: affordances that appear
// after the page became interactive are not registered.
// Attach reports whether the call registered the affordances.
func (c *Copier) Attach(affordances []Element) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.attached {
		c.slog.Debug("deeplink attach ignored", "page", c.pageURL, "affordances", len(affordances))
		return false
	}
	c.attached = true
	c.targets = make(map[Element]bool, len(affordances))
	for _, e := range affordances {
		c.targets[e] = true
	}
	c.state = Idle
	return true
}

// State returns the current notice state.
func (c *Copier) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Visible reports whether the confirmation notice is showing.
func (c *Copier) Visible() bool {
	return c.State() == NoticeVisible
}

// Activate handles an activation whose event target is target.
// The activation counts if target or one of its ancestors is an
// attached affordance and a heading encloses target.
// In that case Activate copies the link to the heading, shows the
// notice and returns the link and true.
// Otherwise it changes nothing and returns "", false.
//
// Clipboard errors are logged but otherwise ignored.
func (c *Copier) Activate(ctx context.Context, target Element) (link string, ok bool) {
	if target == nil || !c.isAffordance(target) {
		return "", false
	}
	h := Closest(target, headingTags...)
	if h == nil {
		return "", false
	}
	link = c.pageURL + "#" + slug.Make(h.Text())
	if err := c.clipboard.WriteText(ctx, link); err != nil {
		c.slog.Debug("deeplink clipboard write failed", "link", link, "err", err)
	}
	c.show()
	return link, true
}

// isAffordance reports whether e or an ancestor of e was attached.
func (c *Copier) isAffordance(e Element) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for ; e != nil; e = e.Parent() {
		if c.targets[e] {
			return true
		}
	}
	return false
}

// show makes the notice visible and (re)starts its dismissal timer.
func (c *Copier) show() {
	c.mu.Lock()
	if c.timer != nil {
		c.timer.Stop()
	}
	c.gen++
	gen := c.gen
	c.state = NoticeVisible
	c.timer = c.afterFunc(NoticeDuration, func() { c.hide(gen) })
	f := c.onChange
	c.mu.Unlock()

	if f != nil {
		f(NoticeVisible)
	}
}

// hide dismisses the notice shown by copy number gen,
// unless a later copy has restarted it.
func (c *Copier) hide(gen int) {
	c.mu.Lock()
	if gen != c.gen || c.state != NoticeVisible {
		c.mu.Unlock()
		return
	}
	c.state = Idle
	c.timer = nil
	f := c.onChange
	c.mu.Unlock()

	if f != nil {
		f(Idle)
	}
}

// Closest returns the nearest of e and its ancestors whose
// tag is one of tags, or nil if there is none.
func Closest(e Element, tags ...string) Element {
	for ; e != nil; e = e.Parent() {
		for _, t := range tags {
			if e.Tag() == t {
				return e
			}
		}
	}
	return nil
}
