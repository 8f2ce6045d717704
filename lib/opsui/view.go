// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package opsui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/gestia-ops/gestia/lib/tui"
)

// View implements tea.Model. Renders from the controllers' current
// snapshots; nothing here blocks.
func (model Model) View() string {
	if !model.ready {
		return "Loading…"
	}

	var sections []string
	sections = append(sections, model.renderHeader())

	switch {
	case model.detailOpen:
		sections = append(sections, model.renderDetail())
	case model.activeTab == TabDashboard:
		sections = append(sections, model.renderDashboard())
	case model.activeTab == TabPlanning:
		sections = append(sections, model.renderPlanning())
	default:
		sections = append(sections, model.renderPane())
	}

	sections = append(sections, model.renderStatusBar())
	view := strings.Join(sections, "\n")

	// Overlays splice over the assembled view.
	if model.dropdown != nil {
		view = tui.SpliceOverlay(view, model.dropdown.Render(model.theme), model.dropdown.AnchorX, model.dropdown.AnchorY)
	}
	if model.reasonModal != nil {
		lines, anchorX, anchorY := model.reasonModal.Render(model.width, model.height)
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}
	if model.focus == FocusNotifications {
		lines, anchorX, anchorY := model.renderNotifications()
		view = tui.SpliceOverlay(view, lines, anchorX, anchorY)
	}

	return view
}

// renderHeader renders the tab bar with the unread notification count
// on the right.
func (model Model) renderHeader() string {
	activeStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.SelectedForeground).
		Background(model.theme.SelectedBackground).
		Padding(0, 1)
	inactiveStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Padding(0, 1)

	var tabs []string
	for tab := Tab(0); tab < tabCount; tab++ {
		title := fmt.Sprintf("%d %s", int(tab), tabTitles[tab])
		if tab == model.activeTab {
			tabs = append(tabs, activeStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveStyle.Render(title))
		}
	}
	bar := strings.Join(tabs, "")

	unread := model.store.UnreadCount()
	badge := ""
	if unread > 0 {
		badge = lipgloss.NewStyle().
			Foreground(model.theme.StatusAttention).
			Bold(true).
			Render(fmt.Sprintf("◆ %d", unread))
	}

	barWidth := ansi.StringWidth(bar)
	badgeWidth := ansi.StringWidth(badge)
	padding := model.width - barWidth - badgeWidth - 1
	if padding < 1 {
		padding = 1
	}
	return bar + strings.Repeat(" ", padding) + badge
}

// renderPane renders the active resource tab: stat tiles, search or
// filter line, error banner, table, pagination.
func (model Model) renderPane() string {
	pane := model.panes[model.activeTab]
	var sections []string

	if tiles := pane.Tiles(); len(tiles) > 0 {
		sections = append(sections, " "+renderTiles(model.theme, tiles))
	}

	sections = append(sections, model.renderQueryLine(pane))

	if err := pane.Err(); err != nil {
		banner := lipgloss.NewStyle().
			Foreground(model.theme.FlashError).
			Render(" ✗ " + err.Error())
		sections = append(sections, ansi.Truncate(banner, model.width, "…"))
	}

	sections = append(sections, model.renderTable(pane))
	sections = append(sections, model.renderPagination(pane))

	return strings.Join(sections, "\n")
}

// renderQueryLine shows the search input when active, otherwise the
// current search and filters.
func (model Model) renderQueryLine(pane Pane) string {
	if model.focus == FocusSearch {
		return " " + model.searchInput.View()
	}

	var parts []string
	if search := pane.Search(); search != "" {
		parts = append(parts, "search: "+search)
	}
	filters := pane.Filters()
	for name, value := range filters {
		parts = append(parts, name+"="+value)
	}
	if pane.LocalMode() {
		parts = append(parts, "(local)")
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Render(" " + strings.Join(parts, "  "))
}

// renderTable renders the column header and visible rows. The cursor
// row is highlighted; recently mutated rows glow until the heat
// decays.
func (model Model) renderTable(pane Pane) string {
	tableWidth := model.width - 2
	columns := pane.Columns()
	widths := layoutColumns(columns, tableWidth)

	var lines []string
	lines = append(lines, " "+renderColumnHeader(model.theme, columns, widths))

	rows := pane.Rows()
	if len(rows) == 0 {
		empty := "no results"
		if pane.Loading() {
			empty = "loading…"
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("  "+empty))
		return strings.Join(lines, "\n")
	}

	var search []rune
	if model.focus != FocusSearch {
		search = []rune(pane.Search())
	}

	cursor := model.cursors[model.activeTab]
	now := model.clk.Now()
	for index, row := range rows {
		selected := index == cursor && model.focus != FocusSearch
		hot := model.heat.Heat(row.ID, now) > 0
		lines = append(lines, " "+renderRow(model.theme, columns, widths, row, tableWidth, selected, hot, search, model.fuzzySlab))
	}

	return strings.Join(lines, "\n")
}

// renderPagination renders "page 2/7 · 64 items", with a loading
// marker while a fetch is in flight.
func (model Model) renderPagination(pane Pane) string {
	meta := pane.Meta()
	text := fmt.Sprintf(" page %d/%d · %d items", pane.Page(), max(meta.LastPage, 1), meta.Total)
	if pane.Loading() {
		text += " · fetching…"
	}
	return lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Render(text)
}

// renderDetail renders the full-screen detail view for the selected
// row.
func (model Model) renderDetail() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	hint := lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render("  Esc close · j/k scroll")

	scrollbar := tui.RenderScrollbar(model.theme, model.detail.Height,
		model.detail.TotalLineCount(), model.detail.VisibleLineCount(),
		model.detail.YOffset, model.focus == FocusDetail)
	body := lipgloss.JoinHorizontal(lipgloss.Top, model.detail.View(), " ", scrollbar)

	return titleStyle.Render(" "+model.detailRow.Title) + hint + "\n\n" + body
}

// renderStatusBar renders the flash banner when one is active,
// otherwise the keyboard help line.
func (model Model) renderStatusBar() string {
	if model.flash.text != "" {
		color := model.theme.FlashSuccess
		marker := "✓ "
		if model.flash.isError {
			color = model.theme.FlashError
			marker = "✗ "
		}
		return lipgloss.NewStyle().
			Foreground(color).
			Render(" " + marker + model.flash.text)
	}

	help := " /search · f filter · a actions · n/p page · r refresh · ]/[ tab · N notifications · q quit"
	return lipgloss.NewStyle().
		Foreground(model.theme.HelpText).
		Render(ansi.Truncate(help, model.width, "…"))
}

// renderNotifications builds the notification overlay: recent entries
// newest first, unread marked.
func (model Model) renderNotifications() ([]string, int, int) {
	notifications := model.store.Notifications()

	boxWidth := model.width / 2
	if boxWidth < 40 {
		boxWidth = min(40, model.width-2)
	}
	innerWidth := boxWidth - 2

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground).
		Background(model.theme.OverlayBackground)
	textStyle := lipgloss.NewStyle().
		Foreground(model.theme.OverlayForeground).
		Background(model.theme.OverlayBackground)
	faintStyle := lipgloss.NewStyle().
		Foreground(model.theme.FaintText).
		Background(model.theme.OverlayBackground)
	unreadStyle := lipgloss.NewStyle().
		Foreground(model.theme.StatusAttention).
		Background(model.theme.OverlayBackground)

	var contentLines []string
	contentLines = append(contentLines, titleStyle.Render("Notifications"))

	if len(notifications) == 0 {
		contentLines = append(contentLines, faintStyle.Render("nothing yet"))
	}
	maxVisible := model.height - 8
	for index, notification := range notifications {
		if index >= maxVisible {
			contentLines = append(contentLines,
				faintStyle.Render(fmt.Sprintf("… %d more", len(notifications)-index)))
			break
		}
		marker := "  "
		style := textStyle
		if !notification.Read {
			marker = unreadMarker(model.prefs.AvatarStyle, notification.Title)
			style = unreadStyle
		}
		for _, excerpt := range tui.ExtractExcerpt(notification.Body, innerWidth-2, 1) {
			contentLines = append(contentLines, style.Render(marker+excerpt))
		}
	}
	contentLines = append(contentLines, faintStyle.Render("Esc marks all read"))

	// Pad lines to uniform width over the overlay background.
	bgStyle := lipgloss.NewStyle().Background(model.theme.OverlayBackground)
	var lines []string
	for _, line := range contentLines {
		lines = append(lines, tui.PadOverlayLine(line, innerWidth, boxWidth, bgStyle))
	}

	anchorX := (model.width - boxWidth) / 2
	anchorY := 2
	if anchorX < 0 {
		anchorX = 0
	}
	return lines, anchorX, anchorY
}

// unreadMarker picks the unread bullet: the avatar_style preference
// "initials" shows the first letter of the title, anything else a
// plain diamond.
func unreadMarker(avatarStyle, title string) string {
	if avatarStyle == "initials" && title != "" {
		runes := []rune(title)
		return strings.ToUpper(string(runes[0])) + " "
	}
	return "◆ "
}
