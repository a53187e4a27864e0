// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package slug

import "testing"

func TestMake(t *testing.T) {
	for _, tt := range []struct {
		in, want string
	}{
		{"Hello, World!  Example", "hello-world-example"},
		{"Getting Started", "getting-started"},
		{"Chat Module", "chat-module"},
		{"already-slugged", "already-slugged"},
		{"snake_case_name", "snake_case_name"},
		{"a , b", "a--b"},
		{"  leading and trailing  ", "-leading-and-trailing-"},
		{"Tabs\tand\nnewlines", "tabs-and-newlines"},
		{"non\u00a0breaking", "non-breaking"},
		{"Café Menü", "caf-men"},
		{"GUI Menus (v2.1)", "gui-menus-v21"},
		{"", ""},
		{"!!!", ""},
	} {
		if got := Make(tt.in); got != tt.want {
			t.Errorf("Make(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
