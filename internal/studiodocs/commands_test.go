// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"strings"
	"testing"
)

func runCmd(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd(&out, &errOut)
	cmd.SetArgs(args)
	err = cmd.Execute()
	t.Logf("stderr: %s", errOut.String())
	return out.String(), err
}

func TestSlugCmd(t *testing.T) {
	for _, tt := range []struct {
		args []string
		want string
	}{
		{[]string{"slug", "Hello, World!  Example"}, "hello-world-example\n"},
		{[]string{"slug", "Getting", "Started"}, "getting-started\n"},
		{[]string{"slug", "a , b"}, "a--b\n"},
	} {
		got, err := runCmd(t, tt.args...)
		if err != nil || got != tt.want {
			t.Errorf("%q = %q, %v, want %q", tt.args, got, err, tt.want)
		}
	}
	if _, err := runCmd(t, "slug"); err == nil {
		t.Errorf("slug without text succeeded")
	}
}

func TestJavadocCmd(t *testing.T) {
	for _, tt := range []struct {
		args []string
		want string
	}{
		{[]string{"javadoc", "a.b.C", "org.example", "lib"}, "https://www.javadoc.io/doc/org.example/lib/latest/a/b/C.html\n"},
		{[]string{"javadoc", "x.Y"}, "https://www.javadoc.io/doc/com.mineplex.studio.sdk/sdk/latest/x/Y.html\n"},
		{[]string{"javadoc", ""}, ""},
	} {
		got, err := runCmd(t, tt.args...)
		if err != nil || got != tt.want {
			t.Errorf("%q = %q, %v, want %q", tt.args, got, err, tt.want)
		}
	}
}

func TestRoutesCmd(t *testing.T) {
	check := func(out string) {
		t.Helper()
		lines := strings.Split(strings.TrimSpace(out), "\n")
		if len(lines) != 3 {
			t.Fatalf("got %d routes, want 3:\n%s", len(lines), out)
		}
		if f := strings.Fields(lines[2]); len(f) != 3 || f[0] != "/docs/modules/legacy" || f[2] != "deprecated" {
			t.Errorf("legacy line = %q", lines[2])
		}
	}

	out, err := runCmd(t, "routes", "--site", "testdata/site.yaml")
	if err != nil {
		t.Fatal(err)
	}
	check(out)

	t.Setenv("STUDIODOCS_SITE", "testdata/site.yaml")
	out, err = runCmd(t, "routes")
	if err != nil {
		t.Fatal(err)
	}
	check(out)
}

func TestDefaultRoutesCmd(t *testing.T) {
	out, err := runCmd(t, "routes")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "/docs/introduction ") {
		t.Errorf("first route line = %q", strings.SplitN(out, "\n", 2)[0])
	}
}

func TestBadFlags(t *testing.T) {
	if _, err := runCmd(t, "routes", "--level", "loud"); err == nil {
		t.Errorf("routes --level loud succeeded")
	}
	if _, err := runCmd(t, "routes", "--site", "testdata/missing.yaml"); err == nil {
		t.Errorf("routes with a missing site file succeeded")
	}
	t.Setenv("STUDIODOCS_JSON_LOGS", "true")
	if _, err := runCmd(t, "slug", "x"); err != nil {
		t.Errorf("slug with JSON logs: %v", err)
	}
}
