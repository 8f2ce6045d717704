// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package opsui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/junegunn/fzf/src/util"

	"github.com/gestia-ops/gestia/lib/tui"
)

// Column describes one table column. Exactly one column per table
// should be flexible; it absorbs whatever width the fixed columns
// leave over.
type Column struct {
	Title string
	Width int  // Fixed width in cells; ignored when Flex is set.
	Flex  bool // Absorbs remaining width.
}

// Row is one rendered table row. Cells align with the pane's columns.
type Row struct {
	ID     string   // Stable identifier, matches the controller's ID func.
	Cells  []string // One value per column, unstyled.
	Status string   // Workflow status, colors the status column.

	// Detail pane content.
	Title       string
	Description string // Markdown.
}

// StatTile is one aggregate figure shown in the stats row and on the
// dashboard.
type StatTile struct {
	Label  string
	Value  string
	Status string // Optional status for coloring; empty renders neutral.
}

const columnGap = 2

// statusColumnTitle marks the column whose cells are colored by the
// row's workflow status.
const statusColumnTitle = "STATUS"

// layoutColumns resolves column widths for a total table width. Fixed
// columns keep their width (clipped when the terminal is too narrow);
// the flex column absorbs the remainder, minimum 8 cells.
func layoutColumns(columns []Column, totalWidth int) []int {
	widths := make([]int, len(columns))
	fixedTotal := 0
	flexIndex := -1
	for index, column := range columns {
		if column.Flex {
			flexIndex = index
			continue
		}
		widths[index] = column.Width
		fixedTotal += column.Width + columnGap
	}
	if flexIndex >= 0 {
		remaining := totalWidth - fixedTotal
		if remaining < 8 {
			remaining = 8
		}
		widths[flexIndex] = remaining
	}
	return widths
}

// renderColumnHeader renders the column title line.
func renderColumnHeader(theme tui.Theme, columns []Column, widths []int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Bold(true)

	var cells []string
	for index, column := range columns {
		cells = append(cells, padCell(column.Title, widths[index]))
	}
	return style.Render(strings.Join(cells, strings.Repeat(" ", columnGap)))
}

// renderRow renders one table row. The status column is colored by the
// row's workflow status; a selected row gets the selection background
// across its full width; a hot row gets the mutation glow tint. When a
// search is active, matching runs in the flex column are highlighted
// (the selected row drops the highlight with the rest of its styling).
func renderRow(theme tui.Theme, columns []Column, widths []int, row Row, totalWidth int, selected, hot bool, search []rune, slab *util.Slab) string {
	var cells []string
	for index := range columns {
		value := ""
		if index < len(row.Cells) {
			value = row.Cells[index]
		}
		if len(search) > 0 && columns[index].Flex && !selected {
			value = highlightMatches(theme, value, search, slab)
		}
		cell := padCell(value, widths[index])

		if columns[index].Title == statusColumnTitle && !selected {
			cell = lipgloss.NewStyle().
				Foreground(theme.StatusColor(row.Status)).
				Render(cell)
		}
		cells = append(cells, cell)
	}

	line := strings.Join(cells, strings.Repeat(" ", columnGap))

	lineWidth := ansi.StringWidth(line)
	if lineWidth < totalWidth {
		line += strings.Repeat(" ", totalWidth-lineWidth)
	}

	switch {
	case selected:
		return lipgloss.NewStyle().
			Background(theme.SelectedBackground).
			Foreground(theme.SelectedForeground).
			Render(ansi.Strip(line))
	case hot:
		return lipgloss.NewStyle().
			Background(theme.HotAccent).
			Render(line)
	default:
		return line
	}
}

// highlightMatches marks the runes of value that fuzzy-match the
// search pattern. No match leaves the value unstyled.
func highlightMatches(theme tui.Theme, value string, search []rune, slab *util.Slab) string {
	match := tui.FuzzyMatch(value, search, slab)
	if len(match.Positions) == 0 {
		return value
	}

	matched := make(map[int]bool, len(match.Positions))
	for _, position := range match.Positions {
		matched[position] = true
	}

	highlightStyle := lipgloss.NewStyle().Background(theme.MatchHighlightBackground)
	var builder strings.Builder
	for index, character := range []rune(value) {
		if matched[index] {
			builder.WriteString(highlightStyle.Render(string(character)))
		} else {
			builder.WriteRune(character)
		}
	}
	return builder.String()
}

// padCell truncates or pads a value to an exact cell width.
func padCell(value string, width int) string {
	if width <= 0 {
		return ""
	}
	cellWidth := ansi.StringWidth(value)
	if cellWidth > width {
		return ansi.Truncate(value, width-1, "…")
	}
	return value + strings.Repeat(" ", width-cellWidth)
}

// renderTiles renders a row of stat tiles, separated by dim dividers.
func renderTiles(theme tui.Theme, tiles []StatTile) string {
	if len(tiles) == 0 {
		return ""
	}

	labelStyle := lipgloss.NewStyle().Foreground(theme.FaintText)
	divider := lipgloss.NewStyle().Foreground(theme.BorderColor).Render(" │ ")

	var parts []string
	for _, tile := range tiles {
		valueColor := theme.NormalText
		if tile.Status != "" {
			valueColor = theme.StatusColor(tile.Status)
		}
		valueStyle := lipgloss.NewStyle().Foreground(valueColor).Bold(true)
		parts = append(parts, valueStyle.Render(tile.Value)+" "+labelStyle.Render(tile.Label))
	}
	return strings.Join(parts, divider)
}

// formatCents renders a cent amount as a euro string, e.g. "1240.50 €".
func formatCents(cents int64) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return fmt.Sprintf("%s%d.%02d €", sign, cents/100, cents%100)
}

// formatDate trims an RFC 3339 timestamp to its date part for table
// cells. Empty and short values pass through unchanged.
func formatDate(timestamp string) string {
	if len(timestamp) >= 10 {
		return timestamp[:10]
	}
	return timestamp
}
