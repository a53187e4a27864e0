// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package site holds the declarative data of the documentation site:
// its metadata and feature switches, top navigation and document tree.
package site

import (
	"fmt"
	"io"

	"github.com/mineplex-llc/studiodocs/internal/nav"
	"gopkg.in/yaml.v3"
)

// Settings are the site-wide metadata and feature switches.
type Settings struct {
	URL      string `yaml:"url"`      // canonical origin, such as "https://docs.mineplex.com"
	SiteIcon string `yaml:"siteicon"` // favicon path

	GTM          string `yaml:"gtm"`          // Google Tag Manager container ID
	GTMConnected bool   `yaml:"gtmconnected"` // load the tag manager script

	SiteName      string   `yaml:"sitename"`
	Description   string   `yaml:"description"`
	Keywords      []string `yaml:"keywords"`
	URLImage      string   `yaml:"urlimage"` // social preview image path
	ImageAlt      string   `yaml:"imagealt"`
	TwitterHandle string   `yaml:"twitterhandle"`

	CompanyName string `yaml:"companyname"`
	CompanyLink string `yaml:"companylink"`

	Branding       bool `yaml:"branding"`
	RightSidebar   bool `yaml:"rightsidebar"`
	FeedbackEdit   bool `yaml:"feedbackedit"`
	TableOfContent bool `yaml:"tableofcontent"`
	ToTopScroll    bool `yaml:"totopscroll"`
	LoadFromGitHub bool `yaml:"loadfromgithub"`
}

// DefaultSettings returns the Mineplex Studio settings.
func DefaultSettings() Settings {
	return Settings{
		URL:           "https://docs.mineplex.com",
		SiteIcon:      "/icon.webp",
		GTM:           "GTM-XXXXXXX",
		GTMConnected:  false,
		SiteName:      "Mineplex Studio",
		Description:   "An explanation of the Mineplex Studio, how it works, and how to get started",
		Keywords:      []string{"documentation", "Mineplex Studios"},
		URLImage:      "/images/og-image.png",
		ImageAlt:      "Mineplex Studio Documentation",
		TwitterHandle: "@Mineplex",

		CompanyName: "Mineplex Studio",
		CompanyLink: "https://www.mineplex.com",

		Branding:       true,
		RightSidebar:   true,
		FeedbackEdit:   true,
		TableOfContent: true,
		ToTopScroll:    true,
		LoadFromGitHub: false,
	}
}

// Config is the complete declarative data of a site.
type Config struct {
	Settings   Settings   `yaml:"settings"`
	Navigation []nav.Link `yaml:"navigation"`
	GitHub     string     `yaml:"github"`
	Documents  []nav.Path `yaml:"documents"`
}

// Default returns the Mineplex Studio documentation site.
func Default() *Config {
	docs := nav.Documents()
	return &Config{
		Settings:   DefaultSettings(),
		Navigation: nav.Navigation(nav.Routes(docs)),
		GitHub:     nav.GitHubLink,
		Documents:  docs,
	}
}

// Routes returns the page routes of the document tree.
func (c *Config) Routes() []nav.Route {
	return nav.Routes(c.Documents)
}

// Load reads a YAML site description from r.
// Fields of the settings section that are absent keep their default
// values; absent navigation, github and documents sections keep the
// default Mineplex data. When documents are replaced but navigation
// is not, the "Docs" link follows the new first route.
func Load(r io.Reader) (*Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("site: %w", err)
	}
	c := &Config{Settings: DefaultSettings()}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("site: parsing config: %w", err)
	}
	if c.Documents == nil {
		c.Documents = nav.Documents()
	}
	if c.Navigation == nil {
		c.Navigation = nav.Navigation(c.Routes())
	}
	if c.GitHub == "" {
		c.GitHub = nav.GitHubLink
	}
	return c, nil
}
