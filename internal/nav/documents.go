// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package nav

// GitHubLink is the repository holding the documentation sources.
const GitHubLink = "https://github.com/Mineplex-LLC/Studio-PublicDocs"

// Navigation returns the default top navigation for a site
// whose page routes are routes. The "Docs" entry leads to the
// first route.
func Navigation(routes []Route) []Link {
	docs := "/docs"
	if len(routes) > 0 {
		docs += routes[0].Href
	}
	return []Link{
		{Title: "Docs", Href: docs},
		{Title: "Login", Href: "https://studio.mineplex.com/login", External: true},
		{Title: "Contact Support", Href: "mailto:support@mineplex.com", External: true},
	}
}

// spacer separates groups of the sidebar.
var spacer = Path{Spacer: true}

// Documents returns the default document tree of the
// Mineplex Studio documentation.
func Documents() []Path {
	return []Path{
		{Title: "Introduction", Href: "/introduction"},
		spacer,
		{
			Title: "Getting Started",
			Href:  "/getting-started",
			Items: []Path{
				{Title: "Example Project", Href: "/example-project"},
				{Title: "Game Configuration", Href: "/game-config"},
				{Title: "Project Namespaces", Href: "/namespaces"},
			},
		},
		spacer,
		{
			Title: "Auxiliary Information",
			Href:  "/auxiliary",
			Items: []Path{
				{Title: "Data Privacy", Href: "/data-privacy"},
				{Title: "Game Publishing", Href: "/publishing"},
				{Title: "Moderation Information", Href: "/moderation"},
				{Title: "Security Guidelines", Href: "/security-guidelines"},
				{Title: "Frequently Asked Questions", Href: "/faq"},
				{Title: "Review Process", Href: "/review-process"},
			},
		},
		spacer,
		{
			Title: "Command Line",
			Href:  "/cli",
			Items: []Path{
				{Title: "Installation", Href: "/installation"},
				{Title: "Commands", Href: "/commands"},
			},
		},
		spacer,
		{
			Title: "Studio Development Kit",
			Href:  "/sdk",
			Items: []Path{
				{Title: "Installation", Href: "/installation"},
				{
					Title: "Built-In Modules",
					Href:  "/modules",
					Items: []Path{
						{Title: "Chat Module", Href: "/chat"},
						{Title: "Command Module", Href: "/command"},
						{Title: "Player Ignore Module", Href: "/player-ignore"},
						{Title: "Data Storage Module", Href: "/data"},
						{Title: "Game Engine Module", Href: "/game"},
						{Title: "Leaderboard Module", Href: "/leaderboard"},
						{Title: "Queue Module", Href: "/queueing"},
						{Title: "Messaging Module", Href: "/messaging"},
						{
							Title: "Moderation Module",
							Href:  "/moderation",
							Items: []Path{
								{Title: "Punishment Object", Href: "/model"},
								{Title: "Punishment Types", Href: "/types"},
								{Title: "Punishment Reasons", Href: "/reasons"},
								{Title: "Punishment Command", Href: "/command"},
							},
						},
						{Title: "Party Module", Href: "/party"},
						{Title: "Purchase Module", Href: "/purchase"},
						{Title: "Resource Pack Module", Href: "/resourcepack"},
						{Title: "Stats Module", Href: "/stats"},
						{
							Title: "World Module",
							Href:  "/world",
							Items: []Path{
								{Title: "World Datapoints", Href: "/datapoints"},
							},
						},
					},
				},
				{
					Title: "Built-In Game Mechanics",
					Href:  "/modules/game/mechanics",
					Items: []Path{
						{Title: "Ability Mechanic", Href: "/ability"},
						{Title: "Kit Mechanic", Href: "/kit"},
					},
				},
				{Title: "Custom Modules", Href: "/custom"},
				{Title: "GUI Menus", Href: "/gui"},
				{Title: "Internationalization", Href: "/internationalization"},
				{Title: "Third Party Resources", Href: "/thirdparty"},
			},
		},
	}
}
