// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar draws the one-column scrollbar beside the detail
// viewport. totalLines and visibleLines describe the scrolled content;
// offset is the index of the first visible line.
//
// The bar always fills its height. Content that fits yields an
// all-thumb bar, which doubles as a "nothing to scroll" signal. The
// thumb picks up the in-progress accent while the viewport has focus.
func RenderScrollbar(theme Theme, height, totalLines, visibleLines, offset int, focused bool) string {
	if height <= 0 {
		return ""
	}

	thumbStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)
	if focused {
		thumbStyle = lipgloss.NewStyle().Foreground(theme.StatusInProgress)
	}
	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)

	thumbTop, thumbBottom := thumbSpan(height, totalLines, visibleLines, offset)

	var bar strings.Builder
	for line := 0; line < height; line++ {
		if line > 0 {
			bar.WriteByte('\n')
		}
		if line >= thumbTop && line < thumbBottom {
			bar.WriteString(thumbStyle.Render("┃"))
		} else {
			bar.WriteString(trackStyle.Render("│"))
		}
	}
	return bar.String()
}

// thumbSpan returns the half-open [top, bottom) row range of the thumb.
func thumbSpan(height, totalLines, visibleLines, offset int) (int, int) {
	if totalLines <= visibleLines || totalLines <= 0 {
		return 0, height
	}

	size := height * visibleLines / totalLines
	if size < 1 {
		size = 1
	}

	// Map the scroll offset onto the rows the thumb can occupy.
	scrollable := totalLines - visibleLines
	track := height - size
	top := 0
	if scrollable > 0 && track > 0 {
		top = offset * track / scrollable
	}
	if top+size > height {
		top = height - size
	}
	return top, top + size
}
