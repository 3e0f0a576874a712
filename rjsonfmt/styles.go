// Copyright 2024 The rjson Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rjsonfmt pretty-prints an rjson.Value tree for human inspection.
// It is a read-only view of the tree: it never participates in encoding
// and its output is not meant to be decoded back.
package rjsonfmt

import "github.com/charmbracelet/lipgloss"

var (
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#4D96FF")).
			Bold(true)

	stringStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6BCB77"))

	numberStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD93D"))

	boolStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	nullStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280")).
			Italic(true)

	punctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6B7280"))
)

// Options controls how Fprint renders a tree.
type Options struct {
	// Indent is the string repeated per nesting level. Defaults to two
	// spaces when empty.
	Indent string
	// Color enables ANSI styling of keys, punctuation, and scalar kinds.
	Color bool
}
