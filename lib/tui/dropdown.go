// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// DropdownOption is one selectable entry. Label is what the menu
// shows; Value is what the selection hands back (a filter value or an
// action name).
type DropdownOption struct {
	Label string
	Value string
}

// DropdownOverlay is the floating menu used for status filters and row
// actions. The console opens one, routes keys and clicks to it while
// it has focus, and reads Selected on confirm.
type DropdownOverlay struct {
	Options []DropdownOption
	Cursor  int
	AnchorX int    // Screen column of the top-left corner.
	AnchorY int    // Screen row of the top-left corner.
	Field   string // Filter field this dropdown sets ("status"); empty for action menus.
	ItemID  string // Row the menu acts on, when it drives a mutation.
}

// MoveUp moves the cursor up one entry, wrapping at the top.
func (dropdown *DropdownOverlay) MoveUp() {
	dropdown.Cursor--
	if dropdown.Cursor < 0 {
		dropdown.Cursor = len(dropdown.Options) - 1
	}
}

// MoveDown moves the cursor down one entry, wrapping at the bottom.
func (dropdown *DropdownOverlay) MoveDown() {
	dropdown.Cursor++
	if dropdown.Cursor >= len(dropdown.Options) {
		dropdown.Cursor = 0
	}
}

// Selected returns the entry under the cursor.
func (dropdown *DropdownOverlay) Selected() DropdownOption {
	return dropdown.Options[dropdown.Cursor]
}

// Width is the rendered width in columns. Render pads every line to
// this width, and mouse hit-testing measures against it.
func (dropdown *DropdownOverlay) Width() int {
	widest := 0
	for _, option := range dropdown.Options {
		if w := ansi.StringWidth(option.Label); w > widest {
			widest = w
		}
	}
	// " > LABEL  ": marker column plus a space of padding each side.
	return widest + 5
}

// Contains reports whether the screen cell (x, y) lands on the menu.
func (dropdown *DropdownOverlay) Contains(x, y int) bool {
	if y < dropdown.AnchorY || y >= dropdown.AnchorY+len(dropdown.Options) {
		return false
	}
	return x >= dropdown.AnchorX && x < dropdown.AnchorX+dropdown.Width()
}

// OptionAtY maps a screen row to an option index, -1 when the row is
// outside the menu.
func (dropdown *DropdownOverlay) OptionAtY(y int) int {
	index := y - dropdown.AnchorY
	if index < 0 || index >= len(dropdown.Options) {
		return -1
	}
	return index
}

// Render produces one line per option for overlay splicing. Lines all
// share the same visible width and carry a solid background so the
// menu reads as a layer above the table. The cursor row uses the
// selection colors.
func (dropdown *DropdownOverlay) Render(theme Theme) []string {
	width := dropdown.Width()

	base := lipgloss.NewStyle().Background(theme.OverlayBackground)
	cursor := lipgloss.NewStyle().
		Background(theme.SelectedBackground).
		Foreground(theme.SelectedForeground)

	lines := make([]string, 0, len(dropdown.Options))
	for index, option := range dropdown.Options {
		style := base
		marker := " "
		if index == dropdown.Cursor {
			style = cursor
			marker = ">"
		}

		cell := " " + marker + " " + option.Label
		if pad := width - 1 - ansi.StringWidth(cell); pad > 0 {
			cell += strings.Repeat(" ", pad)
		}
		lines = append(lines, style.Render(cell+" "))
	}
	return lines
}
