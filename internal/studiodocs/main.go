// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Studiodocs serves the Mineplex Studio documentation site.
//
// Usage:
//
//	studiodocs serve [-addr addr] [-project id]
//	studiodocs routes
//	studiodocs javadoc classpath [groupid [artifactid]]
//	studiodocs slug text...
//	studiodocs read href
//
// All commands accept -content, -site, -level, -json-logs and -base-url.
// Every flag can also be set with an environment variable named
// STUDIODOCS_ followed by the upper-cased flag name, with dashes
// replaced by underscores (for example STUDIODOCS_JSON_LOGS).
package main

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"cloud.google.com/go/compute/metadata"
	"cloud.google.com/go/errorreporting"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel"
	ometric "go.opentelemetry.io/otel/metric"

	"github.com/mineplex-llc/studiodocs/internal/docs"
	"github.com/mineplex-llc/studiodocs/internal/logs"
	"github.com/mineplex-llc/studiodocs/internal/nav"
	"github.com/mineplex-llc/studiodocs/internal/site"
)

// envPrefix prefixes the environment variables that set flags.
const envPrefix = "STUDIODOCS"

// Flag names, shared by cobra and viper.
const (
	flagAddr     = "addr"
	flagContent  = "content"
	flagSite     = "site"
	flagLevel    = "level"
	flagJSONLogs = "json-logs"
	flagProject  = "project"
	flagBaseURL  = "base-url"
)

// Studiodocs holds the state for a studiodocs command.
type Studiodocs struct {
	ctx     context.Context
	cloud   bool              // running on Cloud Run
	meta    map[string]string // any metadata we want to expose
	addr    string            // address to serve HTTP on
	baseURL string            // origin of the site, for absolute links

	slog      *slog.Logger           // slog output to use
	slogLevel *slog.LevelVar         // slog level, for changing as needed
	site      *site.Config           // declarative site data
	routes    []nav.Route            // page routes of site.Documents
	docs      *docs.Corpus           // rendered pages
	meter     ometric.Meter          // used to create Open Telemetry instruments
	report    *errorreporting.Client // used to report server errors to Cloud Error Reporting, if configured
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "studiodocs: %v\n", err)
		os.Exit(1)
	}
}

// newRootCmd returns the studiodocs command tree.
// Command output goes to stdout, logs to stderr.
func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	root := &cobra.Command{
		Use:           "studiodocs",
		Short:         "Serve and inspect the Mineplex Studio documentation",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.String(flagContent, "content", "directory holding the markdown page files")
	pf.String(flagSite, "", "YAML site description (default: the built-in Mineplex Studio site)")
	pf.String(flagLevel, "info", "initial log level")
	pf.Bool(flagJSONLogs, false, "write logs as JSON lines for Google Cloud Logging")
	pf.String(flagBaseURL, "", "origin of the site for copied links (default: the site url setting)")
	_ = v.BindPFlags(pf)

	root.AddCommand(
		newServeCmd(v),
		newRoutesCmd(v),
		newJavadocCmd(),
		newSlugCmd(),
		newReadCmd(v),
	)
	return root
}

// newStudiodocs returns the command state configured by v,
// logging to stderr. It loads the site description but not the pages;
// call [Studiodocs.loadDocs] for those.
func newStudiodocs(ctx context.Context, v *viper.Viper, stderr io.Writer) (*Studiodocs, error) {
	level, err := logs.ParseLevel(v.GetString(flagLevel))
	if err != nil {
		return nil, fmt.Errorf("-%s: %w", flagLevel, err)
	}
	s := &Studiodocs{
		ctx:       ctx,
		cloud:     onCloudRun(),
		meta:      map[string]string{},
		addr:      "localhost:8080",
		slog:      slog.New(logs.New(stderr, level, v.GetBool(flagJSONLogs))),
		slogLevel: level,
		meter:     otel.Meter("studiodocs"),
	}
	if addr := v.GetString(flagAddr); addr != "" {
		s.addr = addr
	}

	cfg := site.Default()
	if file := v.GetString(flagSite); file != "" {
		f, err := os.Open(file)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if cfg, err = site.Load(f); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		s.meta["site"] = file
	}
	s.site = cfg
	s.routes = cfg.Routes()
	s.baseURL = strings.TrimSuffix(cmp.Or(v.GetString(flagBaseURL), cfg.Settings.URL), "/")

	s.docs = docs.New(s.slog, os.DirFS(v.GetString(flagContent)), s.routes)
	s.meta["content"] = v.GetString(flagContent)
	return s, nil
}

// loadDocs reads and renders the pages.
// Pages that fail to load are logged and left out.
func (s *Studiodocs) loadDocs() {
	if err := s.docs.Load(s.ctx); err != nil {
		s.slog.Error("loading pages", "err", err)
	}
	s.slog.Info("pages loaded", "pages", s.docs.Len(), "routes", len(s.routes))
}

// initGCP initializes Cloud Error Reporting for project.
// On Cloud Run an empty project is taken from the metadata server.
// Without a project, errors are only logged.
func (s *Studiodocs) initGCP(project string) error {
	if s.cloud {
		port := os.Getenv("PORT")
		if port == "" {
			return fmt.Errorf("$PORT not set")
		}
		s.meta["port"] = port
		s.addr = ":" + port

		if project == "" {
			id, err := metadata.ProjectIDWithContext(s.ctx)
			if err != nil {
				return fmt.Errorf("metadata project ID: %w", err)
			}
			project = id
		}
	}
	if project == "" {
		return nil
	}

	s.slog.Info("studiodocs cloud init",
		"project", project,
		"k_service", os.Getenv("K_SERVICE"),
		"k_revision", os.Getenv("K_REVISION"))

	rep, err := errorreporting.NewClient(s.ctx, project, errorreporting.Config{
		ServiceName: cmp.Or(os.Getenv("K_SERVICE"), "studiodocs"),
		OnError: func(err error) {
			s.slog.Error("error reporting", "err", err)
		},
	})
	if err != nil {
		return err
	}
	s.report = rep
	s.meta["project"] = project
	return nil
}

// reportError logs err and forwards it to Cloud Error Reporting
// when that is configured.
func (s *Studiodocs) reportError(err error) {
	s.slog.Error("reporting", "err", err)
	if s.report != nil {
		s.report.Report(errorreporting.Entry{Error: err})
	}
}

// pageURL returns the absolute URL of the page for the route href.
func (s *Studiodocs) pageURL(href string) string {
	return s.baseURL + docsPrefix + href
}

func onCloudRun() bool {
	// There is no definitive test, so look for some environment variables specified in
	// https://cloud.google.com/run/docs/container-contract#services-env-vars.
	return os.Getenv("K_SERVICE") != "" && os.Getenv("K_REVISION") != ""
}

