// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package opsui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/gestia-ops/gestia/lib/api"
)

// renderPlanning renders the month calendar: a Monday-first grid with
// event counts per day, followed by the month's event list.
func (model Model) renderPlanning() string {
	month, err := time.Parse("2006-01", model.planningMonth)
	if err != nil {
		month = model.clk.Now()
	}

	var sections []string

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(model.theme.HeaderForeground)
	sections = append(sections, titleStyle.Render(" "+model.monthTitle(month))+
		lipgloss.NewStyle().Foreground(model.theme.HelpText).Render("   n/p change month"))

	if model.planningErr != nil {
		sections = append(sections, lipgloss.NewStyle().
			Foreground(model.theme.FlashError).
			Render(" ✗ "+model.planningErr.Error()))
	}

	sections = append(sections, model.renderMonthGrid(month))
	sections = append(sections, model.renderEventList())

	return strings.Join(sections, "\n")
}

var frenchMonths = [...]string{
	"janvier", "février", "mars", "avril", "mai", "juin",
	"juillet", "août", "septembre", "octobre", "novembre", "décembre",
}

// monthTitle renders the calendar heading in the preferred display
// language.
func (model Model) monthTitle(month time.Time) string {
	if model.prefs.Language == "fr" {
		return fmt.Sprintf("%s %d", frenchMonths[month.Month()-1], month.Year())
	}
	return month.Format("January 2006")
}

// eventsByDay buckets the loaded events by day-of-month. Events whose
// start date does not parse are skipped.
func (model Model) eventsByDay() map[int][]api.PlanningEvent {
	buckets := make(map[int][]api.PlanningEvent)
	for _, event := range model.planningEvents {
		start, err := time.Parse(time.RFC3339, event.StartsAt)
		if err != nil {
			continue
		}
		day := start.Day()
		buckets[day] = append(buckets[day], event)
	}
	return buckets
}

// renderMonthGrid draws the calendar grid. Each cell shows the day
// number and a colored event-count marker.
func (model Model) renderMonthGrid(month time.Time) string {
	const cellWidth = 8

	headerStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	dayStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	todayStyle := lipgloss.NewStyle().
		Foreground(model.theme.SelectedForeground).
		Background(model.theme.SelectedBackground)
	countStyle := lipgloss.NewStyle().Foreground(model.theme.StatusAttention)

	byDay := model.eventsByDay()
	now := model.clk.Now()

	var lines []string
	var header []string
	for _, name := range []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"} {
		header = append(header, padCell(name, cellWidth))
	}
	lines = append(lines, " "+headerStyle.Render(strings.Join(header, "")))

	first := time.Date(month.Year(), month.Month(), 1, 0, 0, 0, 0, time.UTC)
	// Monday-first column index of the 1st.
	offset := (int(first.Weekday()) + 6) % 7
	daysInMonth := first.AddDate(0, 1, -1).Day()

	day := 1
	for day <= daysInMonth {
		var cells []string
		for column := 0; column < 7; column++ {
			if (len(lines) == 1 && column < offset) || day > daysInMonth {
				cells = append(cells, strings.Repeat(" ", cellWidth))
				continue
			}

			label := fmt.Sprintf("%2d", day)
			style := dayStyle
			if month.Year() == now.Year() && month.Month() == now.Month() && day == now.Day() {
				style = todayStyle
			}
			cell := style.Render(label)
			if count := len(byDay[day]); count > 0 {
				cell += countStyle.Render(fmt.Sprintf(" •%d", count))
			}

			cellVisible := ansi.StringWidth(cell)
			if cellVisible < cellWidth {
				cell += strings.Repeat(" ", cellWidth-cellVisible)
			}
			cells = append(cells, cell)
			day++
		}
		lines = append(lines, " "+strings.Join(cells, ""))
	}

	return strings.Join(lines, "\n")
}

// renderEventList lists the month's events chronologically below the
// grid.
func (model Model) renderEventList() string {
	if len(model.planningEvents) == 0 {
		return lipgloss.NewStyle().
			Foreground(model.theme.FaintText).
			Render("  no interventions scheduled")
	}

	faint := lipgloss.NewStyle().Foreground(model.theme.FaintText)

	var lines []string
	lines = append(lines, "")
	for _, event := range model.planningEvents {
		statusDot := lipgloss.NewStyle().
			Foreground(model.theme.StatusColor(event.Status)).
			Render("●")
		line := fmt.Sprintf(" %s %s  %s", statusDot, formatDate(event.StartsAt), event.Title)
		line += faint.Render(fmt.Sprintf("  %s · %s", event.SiteName, event.Kind))
		lines = append(lines, ansi.Truncate(line, model.width-1, "…"))
	}
	return strings.Join(lines, "\n")
}
