// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aymanbagabas/go-osc52/v2"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mineplex-llc/studiodocs/internal/deeplink"
	"github.com/mineplex-llc/studiodocs/internal/docs"
)

// read runs the terminal heading browser for the page at href.
func (s *Studiodocs) read(in io.Reader, out io.Writer, href string) error {
	p, ok := s.docs.Page(href)
	if !ok {
		return fmt.Errorf("no page for %s", href)
	}
	cb := &osc52Clipboard{w: out, tmux: os.Getenv("TMUX") != "", screen: strings.HasPrefix(os.Getenv("TERM"), "screen")}
	m := newReaderModel(s.slog, s.pageURL(href), p, cb)

	prog := tea.NewProgram(m, tea.WithInput(in), tea.WithOutput(out))
	// Changes can happen inside Update, which must not block on Send.
	m.copier.OnChange(func(st deeplink.State) { go prog.Send(noticeMsg(st)) })
	_, err := prog.Run()
	return err
}

// An osc52Clipboard writes to the terminal's clipboard
// using the OSC 52 escape sequence.
type osc52Clipboard struct {
	w      io.Writer
	tmux   bool // wrap the sequence for tmux
	screen bool // wrap the sequence for GNU screen
}

// WriteText implements [deeplink.Clipboard].
func (c *osc52Clipboard) WriteText(_ context.Context, text string) error {
	seq := osc52.New(text)
	switch {
	case c.tmux:
		seq = seq.Tmux()
	case c.screen:
		seq = seq.Screen()
	}
	_, err := seq.WriteTo(c.w)
	return err
}

// noticeMsg reports a notice state change of the copier.
type noticeMsg deeplink.State

// A readerItem is a heading of the page being read.
type readerItem struct {
	affordance deeplink.Element // activated to copy the heading link
	level      int              // 2 for h2, and so on
	text       string
}

type readerKeys struct {
	Up   key.Binding
	Down key.Binding
	Copy key.Binding
	Quit key.Binding
}

func defaultReaderKeys() readerKeys {
	return readerKeys{
		Up:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Copy: key.NewBinding(key.WithKeys("enter", "c"), key.WithHelp("enter", "copy link")),
		Quit: key.NewBinding(key.WithKeys("ctrl+c", "q", "esc"), key.WithHelp("q", "quit")),
	}
}

func (k readerKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Copy, k.Quit}
}

func (k readerKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#d9472b")).Bold(true)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(lipgloss.Color("#22c55e")).Padding(0, 1)
	linkStyle     = lipgloss.NewStyle().Faint(true)
)

// readerModel is the Bubble Tea model of the heading browser.
type readerModel struct {
	title  string
	copier *deeplink.Copier
	items  []readerItem
	cursor int
	notice bool   // confirmation notice showing
	last   string // last copied link
	keys   readerKeys
	help   help.Model
}

// newReaderModel returns the model for browsing p, whose URL is pageURL.
// The copier is attached to the page's affordances at once.
func newReaderModel(lg *slog.Logger, pageURL string, p *docs.Page, cb deeplink.Clipboard) *readerModel {
	m := &readerModel{
		title:  p.Title,
		copier: deeplink.New(lg, pageURL, cb),
		keys:   defaultReaderKeys(),
		help:   help.New(),
	}
	affordances := deeplink.Affordances(p.Document())
	m.copier.Attach(affordances)
	for _, a := range affordances {
		h := deeplink.Closest(a, "h2", "h3", "h4")
		if h == nil {
			continue
		}
		m.items = append(m.items, readerItem{
			affordance: a,
			level:      int(h.Tag()[1] - '0'),
			text:       strings.Join(strings.Fields(h.Text()), " "),
		})
	}
	return m
}

func (m *readerModel) Init() tea.Cmd { return nil }

func (m *readerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.help.Width = msg.Width

	case noticeMsg:
		m.notice = deeplink.State(msg) == deeplink.NoticeVisible

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keys.Down):
			if m.cursor < len(m.items)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keys.Copy):
			if m.cursor < len(m.items) {
				if link, ok := m.copier.Activate(context.Background(), m.items[m.cursor].affordance); ok {
					m.last = link
					m.notice = m.copier.Visible()
				}
			}
		}
	}
	return m, nil
}

func (m *readerModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title))
	b.WriteString("\n")
	if len(m.items) == 0 {
		b.WriteString("This page has no linkable headings.\n")
	}
	for i, it := range m.items {
		line := strings.Repeat("  ", it.level-2) + it.text
		if i == m.cursor {
			line = selectedStyle.Render("> " + line)
		} else {
			line = "  " + line
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n")
	if m.notice {
		b.WriteString(noticeStyle.Render(deeplink.NoticeText))
		b.WriteString(" " + linkStyle.Render(m.last))
	}
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}
