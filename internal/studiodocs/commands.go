// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/mineplex-llc/studiodocs/internal/javadoc"
	"github.com/mineplex-llc/studiodocs/internal/slug"
)

func newServeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the documentation site over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStudiodocs(cmd.Context(), v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if err := s.initGCP(v.GetString(flagProject)); err != nil {
				return err
			}
			s.loadDocs()
			return s.serveHTTP()
		},
	}
	cmd.Flags().String(flagAddr, "", "address to serve HTTP on (default localhost:8080, or :$PORT on Cloud Run)")
	cmd.Flags().String(flagProject, "", "Google Cloud project for error reporting")
	_ = v.BindPFlag(flagAddr, cmd.Flags().Lookup(flagAddr))
	_ = v.BindPFlag(flagProject, cmd.Flags().Lookup(flagProject))
	return cmd
}

func newRoutesCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the page routes of the site",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newStudiodocs(cmd.Context(), v, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return s.printRoutes(cmd.OutOrStdout())
		},
	}
}

// printRoutes prints one line per route: href, title and,
// for deprecated routes, a marker.
func (s *Studiodocs) printRoutes(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	for _, r := range s.routes {
		mark := ""
		if r.Deprecated {
			mark = "deprecated"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", docsPrefix+r.Href, r.Title, mark)
	}
	return tw.Flush()
}

func newJavadocCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "javadoc classpath [groupid [artifactid]]",
		Short: "Print the javadoc URL for a class",
		Args:  cobra.RangeArgs(1, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			ref := javadoc.Reference{Classpath: args[0]}
			if len(args) > 1 {
				ref.GroupID = args[1]
			}
			if len(args) > 2 {
				ref.ArtifactID = args[2]
			}
			// An empty class path has no card and prints nothing.
			if card := javadoc.Render(ref); card != nil {
				fmt.Fprintln(cmd.OutOrStdout(), card.URL)
			}
			return nil
		},
	}
}

func newSlugCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slug text...",
		Short: "Print the heading anchor for text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), slug.Make(strings.Join(args, " ")))
			return nil
		},
	}
}

func newReadCmd(v *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "read href",
		Short: "Browse the headings of a page and copy links to them",
		Long: `Read shows the headings of the page at href (such as /introduction)
in the terminal. Enter copies a link to the selected heading to the
clipboard using the OSC 52 terminal sequence.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Hold logs until the terminal is released.
			var logBuf bytes.Buffer
			defer func() { _, _ = cmd.ErrOrStderr().Write(logBuf.Bytes()) }()

			s, err := newStudiodocs(cmd.Context(), v, &logBuf)
			if err != nil {
				return err
			}
			s.loadDocs()
			return s.read(cmd.InOrStdin(), cmd.OutOrStdout(), strings.TrimPrefix(args[0], docsPrefix))
		},
	}
}
