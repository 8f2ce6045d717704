// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and visual properties for the
// Gestia console. All colors use lipgloss ANSI 256-color codes for
// broad terminal compatibility.
//
// The fields cover both universal chrome (text, selection, borders)
// and semantic workflow states that recur across resources — tickets,
// quotes, invoices, and reports each move through a small set of
// statuses, and the same visual language applies to all of them.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected row.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Workflow state colors. Open/pending items need attention,
	// in-progress items are being worked, terminal good states are
	// calm, terminal bad states (rejected, overdue) are alarming.
	StatusAttention  lipgloss.Color // open tickets, pending quotes/invoices/reports
	StatusInProgress lipgloss.Color // tickets being worked
	StatusGood       lipgloss.Color // resolved, approved, paid, validated
	StatusBad        lipgloss.Color // rejected, overdue
	StatusNeutral    lipgloss.Color // closed, archived

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Flash messages after mutations.
	FlashSuccess lipgloss.Color
	FlashError   lipgloss.Color

	// Background tint for rows changed by a recent mutation.
	HotAccent lipgloss.Color

	// Fuzzy match highlighting in filtered lists.
	MatchHighlightBackground lipgloss.Color

	// Modal and dropdown overlays.
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color
}

// statusColors maps every workflow status the back office uses to a
// theme field selector. Ticket, quote, invoice, and report statuses
// share this single table; names that appear in several workflows
// (like "pending") mean the same thing visually in all of them.
var statusColors = map[string]func(Theme) lipgloss.Color{
	"open":        func(t Theme) lipgloss.Color { return t.StatusAttention },
	"pending":     func(t Theme) lipgloss.Color { return t.StatusAttention },
	"submitted":   func(t Theme) lipgloss.Color { return t.StatusAttention },
	"draft":       func(t Theme) lipgloss.Color { return t.StatusNeutral },
	"in_progress": func(t Theme) lipgloss.Color { return t.StatusInProgress },
	"resolved":    func(t Theme) lipgloss.Color { return t.StatusGood },
	"approved":    func(t Theme) lipgloss.Color { return t.StatusGood },
	"paid":        func(t Theme) lipgloss.Color { return t.StatusGood },
	"validated":   func(t Theme) lipgloss.Color { return t.StatusGood },
	"rejected":    func(t Theme) lipgloss.Color { return t.StatusBad },
	"overdue":     func(t Theme) lipgloss.Color { return t.StatusBad },
	"closed":      func(t Theme) lipgloss.Color { return t.StatusNeutral },
}

// StatusColor returns the color for a workflow status string.
// Unknown values return FaintText.
func (theme Theme) StatusColor(status string) lipgloss.Color {
	if selector, ok := statusColors[status]; ok {
		return selector(theme)
	}
	return theme.FaintText
}

// ThemeByName resolves a stored theme preference. Unknown names fall
// back to the dark scheme.
func ThemeByName(name string) Theme {
	if name == "light" {
		return LightTheme
	}
	return DefaultTheme
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed
// for 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	StatusAttention:  lipgloss.Color("220"), // amber
	StatusInProgress: lipgloss.Color("75"),  // blue
	StatusGood:       lipgloss.Color("114"), // green
	StatusBad:        lipgloss.Color("196"), // red
	StatusNeutral:    lipgloss.Color("245"), // gray

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	FlashSuccess: lipgloss.Color("114"),
	FlashError:   lipgloss.Color("196"),

	HotAccent: lipgloss.Color("58"), // dark amber background tint

	MatchHighlightBackground: lipgloss.Color("58"),

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("237"),
}

// LightTheme is the light-background counterpart, selected by the
// stored "light" theme preference. Status colors keep the same hues
// at darker shades so they stay legible on white.
var LightTheme = Theme{
	NormalText: lipgloss.Color("235"),
	FaintText:  lipgloss.Color("243"),

	SelectedBackground: lipgloss.Color("254"),
	SelectedForeground: lipgloss.Color("232"),

	StatusAttention:  lipgloss.Color("130"), // dark amber
	StatusInProgress: lipgloss.Color("26"),  // blue
	StatusGood:       lipgloss.Color("28"),  // green
	StatusBad:        lipgloss.Color("124"), // red
	StatusNeutral:    lipgloss.Color("243"), // gray

	HeaderForeground: lipgloss.Color("232"),
	BorderColor:      lipgloss.Color("250"),
	HelpText:         lipgloss.Color("245"),

	FlashSuccess: lipgloss.Color("28"),
	FlashError:   lipgloss.Color("124"),

	HotAccent: lipgloss.Color("229"), // pale amber background tint

	MatchHighlightBackground: lipgloss.Color("229"),

	OverlayForeground: lipgloss.Color("235"),
	OverlayBackground: lipgloss.Color("253"),
}
