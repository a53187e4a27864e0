// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logs builds the [slog.Handler] used by the studiodocs server.
//
// In JSON mode the handler writes one JSON object per line using the
// field names of Google Cloud Logging, which treats such lines written
// to stderr as structured logs on Cloud Run.
// Otherwise it writes slog's text format, for local use.
package logs

import (
	"io"
	"log/slog"
	"time"
)

// New returns a handler writing to w at the given level.
// If json is set, the output is GCP-style JSON lines.
func New(w io.Writer, level slog.Leveler, json bool) slog.Handler {
	if !json {
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	}
	return slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:       level,
		ReplaceAttr: replaceAttr,
	})
}

// ParseLevel parses a level name such as "debug" or "WARN+2" into a new LevelVar.
func ParseLevel(s string) (*slog.LevelVar, error) {
	level := new(slog.LevelVar)
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	return level, nil
}

// If testTime is non-zero, replaceAttr will use it as the time.
var testTime time.Time

// replaceAttr uses GCP names for certain fields.
// It also formats times in the way that GCP expects.
// See https://cloud.google.com/logging/docs/agent/logging/configuration#special-fields.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return a
	}
	switch a.Key {
	case slog.TimeKey:
		if a.Value.Kind() == slog.KindTime {
			tm := a.Value.Time()
			if !testTime.IsZero() {
				tm = testTime
			}
			a.Value = slog.StringValue(tm.Format(time.RFC3339))
		}
	case slog.MessageKey:
		a.Key = "message"
	case slog.LevelKey:
		a.Key = "severity"
	case "traceID":
		a.Key = "logging.googleapis.com/trace"
	}
	return a
}
