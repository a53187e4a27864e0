// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aymanbagabas/go-osc52/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/go-cmp/cmp"

	"github.com/mineplex-llc/studiodocs/internal/deeplink"
	"github.com/mineplex-llc/studiodocs/internal/docs"
	"github.com/mineplex-llc/studiodocs/internal/nav"
	"github.com/mineplex-llc/studiodocs/internal/testutil"
)

const readerPage = `# Title

## Setup

### Install the CLI

#### On Linux

## Usage
`

func newTestReader(t *testing.T, cb deeplink.Clipboard) *readerModel {
	t.Helper()
	p, err := docs.Parse(nav.Route{Title: "Guide", Href: "/guide"}, []byte(readerPage))
	testutil.Check(t, err)
	return newReaderModel(testutil.Slogger(t), "https://docs.example.com/docs/guide", p, cb)
}

func update(m *readerModel, msgs ...tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	for _, msg := range msgs {
		_, cmd = m.Update(msg)
	}
	return cmd
}

func TestReaderItems(t *testing.T) {
	m := newTestReader(t, new(testutil.Clipboard))
	type item struct {
		Level int
		Text  string
	}
	var got []item
	for _, it := range m.items {
		got = append(got, item{it.level, it.text})
	}
	want := []item{{2, "Setup"}, {3, "Install the CLI"}, {4, "On Linux"}, {2, "Usage"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

func TestReaderCopy(t *testing.T) {
	cb := new(testutil.Clipboard)
	m := newTestReader(t, cb)

	down := tea.KeyMsg{Type: tea.KeyDown}
	up := tea.KeyMsg{Type: tea.KeyUp}
	enter := tea.KeyMsg{Type: tea.KeyEnter}

	if strings.Contains(m.View(), deeplink.NoticeText) {
		t.Fatal("notice shown before any copy")
	}

	update(m, down, down, up, enter)
	want := "https://docs.example.com/docs/guide#install-the-cli"
	if diff := cmp.Diff([]string{want}, cb.Writes()); diff != "" {
		t.Errorf("clipboard writes (-want +got):\n%s", diff)
	}
	if !m.notice || m.last != want {
		t.Errorf("after copy: notice=%v last=%q", m.notice, m.last)
	}
	if v := m.View(); !strings.Contains(v, deeplink.NoticeText) || !strings.Contains(v, want) {
		t.Errorf("View() missing notice:\n%s", v)
	}

	// The copier's timer reports the notice going away.
	update(m, noticeMsg(deeplink.Idle))
	if m.notice || strings.Contains(m.View(), deeplink.NoticeText) {
		t.Errorf("notice still shown after Idle")
	}

	// The cursor stops at the ends of the list.
	update(m, down, down, down, down, down, enter)
	if w := cb.Writes(); w[len(w)-1] != "https://docs.example.com/docs/guide#usage" {
		t.Errorf("last write = %q, want link to usage", w[len(w)-1])
	}
	update(m, up, up, up, up, up, up, enter)
	if w := cb.Writes(); w[len(w)-1] != "https://docs.example.com/docs/guide#setup" {
		t.Errorf("last write = %q, want link to setup", w[len(w)-1])
	}
}

func TestReaderClipboardError(t *testing.T) {
	cb := &testutil.Clipboard{Err: errors.New("no terminal")}
	m := newTestReader(t, cb)
	update(m, tea.KeyMsg{Type: tea.KeyEnter})
	// The notice shows even if the clipboard write failed.
	if !m.notice {
		t.Errorf("notice not shown after failed clipboard write")
	}
}

func TestReaderQuit(t *testing.T) {
	m := newTestReader(t, new(testutil.Clipboard))
	cmd := update(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q command = %T, want tea.QuitMsg", cmd())
	}
}

func TestReaderNoHeadings(t *testing.T) {
	p, err := docs.Parse(nav.Route{Title: "Empty", Href: "/empty"}, []byte("# Only a title\n\nText.\n"))
	testutil.Check(t, err)
	cb := new(testutil.Clipboard)
	m := newReaderModel(testutil.Slogger(t), "/docs/empty", p, cb)
	update(m, tea.KeyMsg{Type: tea.KeyEnter})
	if len(cb.Writes()) != 0 || m.notice {
		t.Errorf("copy on a page without headings: writes=%q notice=%v", cb.Writes(), m.notice)
	}
	if !strings.Contains(m.View(), "no linkable headings") {
		t.Errorf("View() = %q", m.View())
	}
}

func TestOSC52Clipboard(t *testing.T) {
	const link = "https://docs.example.com/docs/guide#setup"
	for _, tt := range []struct {
		name string
		cb   osc52Clipboard
		want string
	}{
		{"plain", osc52Clipboard{}, osc52.New(link).String()},
		{"tmux", osc52Clipboard{tmux: true}, osc52.New(link).Tmux().String()},
		{"screen", osc52Clipboard{screen: true}, osc52.New(link).Screen().String()},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.cb.w = &buf
			testutil.Check(t, tt.cb.WriteText(context.Background(), link))
			if buf.String() != tt.want {
				t.Errorf("wrote %q, want %q", buf.String(), tt.want)
			}
		})
	}
}
