// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package opsui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// dashboardOrder fixes the card layout; map iteration order would
// shuffle the cards every render.
var dashboardOrder = []Tab{
	TabTickets, TabQuotes, TabInvoices, TabAssets, TabProviders, TabSites,
}

// renderDashboard renders one stat card per resource. Cards fill in
// as their stats snapshots arrive; a pane whose stats have not loaded
// yet shows a placeholder.
func (model Model) renderDashboard() string {
	cardWidth := (model.width - 6) / 3
	if cardWidth < 24 {
		cardWidth = 24
	}

	var cards []string
	for _, tab := range dashboardOrder {
		pane, ok := model.panes[tab]
		if !ok {
			continue
		}
		cards = append(cards, model.renderStatCard(pane, cardWidth))
	}

	// Lay the cards out three per row.
	var rows []string
	for start := 0; start < len(cards); start += 3 {
		end := min(start+3, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}

	// Planning teaser: next few events this month.
	if teaser := model.renderUpcoming(); teaser != "" {
		rows = append(rows, teaser)
	}

	return strings.Join(rows, "\n")
}

// renderStatCard renders one bordered card with the pane's stat tiles
// stacked vertically.
func (model Model) renderStatCard(pane Pane, width int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	labelStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	var lines []string
	lines = append(lines, titleStyle.Render(pane.Title()))

	tiles := pane.Tiles()
	if len(tiles) == 0 {
		lines = append(lines, labelStyle.Render("loading…"))
	}
	for _, tile := range tiles {
		valueColor := model.theme.NormalText
		if tile.Status != "" {
			valueColor = model.theme.StatusColor(tile.Status)
		}
		value := lipgloss.NewStyle().
			Foreground(valueColor).
			Bold(true).
			Render(tile.Value)
		lines = append(lines, value+" "+labelStyle.Render(tile.Label))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(model.theme.BorderColor).
		Width(width).
		Padding(0, 1).
		Render(strings.Join(lines, "\n"))
}

// renderUpcoming lists the next few planning events under the cards.
func (model Model) renderUpcoming() string {
	if len(model.planningEvents) == 0 {
		return ""
	}

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	var lines []string
	lines = append(lines, titleStyle.Render(" Upcoming — "+model.planningMonth))

	shown := 0
	for _, event := range model.planningEvents {
		if shown >= 5 {
			break
		}
		statusDot := lipgloss.NewStyle().
			Foreground(model.theme.StatusColor(event.Status)).
			Render("●")
		lines = append(lines, " "+statusDot+" "+formatDate(event.StartsAt)+"  "+
			event.Title+faint.Render("  "+event.SiteName))
		shown++
	}
	return strings.Join(lines, "\n")
}
