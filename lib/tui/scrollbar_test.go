// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestThumbSpanFullWhenContentFits(t *testing.T) {
	top, bottom := thumbSpan(10, 5, 8, 0)
	if top != 0 || bottom != 10 {
		t.Fatalf("span = [%d,%d), want [0,10)", top, bottom)
	}
}

func TestThumbSpanTracksOffset(t *testing.T) {
	// 100 lines through a 10-line window on a 10-row bar: 1-row thumb.
	top, bottom := thumbSpan(10, 100, 10, 0)
	if top != 0 || bottom != 1 {
		t.Fatalf("span at top = [%d,%d), want [0,1)", top, bottom)
	}
	top, bottom = thumbSpan(10, 100, 10, 90)
	if top != 9 || bottom != 10 {
		t.Fatalf("span at bottom = [%d,%d), want [9,10)", top, bottom)
	}
}

func TestRenderScrollbarRowGlyphs(t *testing.T) {
	bar := RenderScrollbar(DefaultTheme, 4, 8, 4, 0, false)
	lines := strings.Split(ansi.Strip(bar), "\n")
	if len(lines) != 4 {
		t.Fatalf("bar has %d rows, want 4", len(lines))
	}
	want := []string{"┃", "┃", "│", "│"}
	for index, line := range lines {
		if line != want[index] {
			t.Errorf("row %d = %q, want %q", index, line, want[index])
		}
	}
}

func TestRenderScrollbarZeroHeight(t *testing.T) {
	if bar := RenderScrollbar(DefaultTheme, 0, 8, 4, 0, false); bar != "" {
		t.Fatalf("zero height bar = %q, want empty", bar)
	}
}
