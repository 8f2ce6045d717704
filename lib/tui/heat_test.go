// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"
	"time"
)

func TestHeatDecay(t *testing.T) {
	tracker := NewHeatTracker()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tracker.Ignite("ticket-7", start)

	if heat := tracker.Heat("ticket-7", start); heat != 1.0 {
		t.Errorf("heat at ignition = %v, want 1.0", heat)
	}

	halfway := start.Add(HeatDecayDuration / 2)
	if heat := tracker.Heat("ticket-7", halfway); heat < 0.49 || heat > 0.51 {
		t.Errorf("heat at halfway = %v, want ~0.5", heat)
	}

	after := start.Add(HeatDecayDuration)
	if heat := tracker.Heat("ticket-7", after); heat != 0.0 {
		t.Errorf("heat after decay = %v, want 0.0", heat)
	}
}

func TestHeatUnknownItem(t *testing.T) {
	tracker := NewHeatTracker()
	if heat := tracker.Heat("never-ignited", time.Now()); heat != 0.0 {
		t.Errorf("heat for unknown item = %v, want 0.0", heat)
	}
}

func TestHasHotGarbageCollects(t *testing.T) {
	tracker := NewHeatTracker()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tracker.Ignite("quote-3", start)

	if !tracker.HasHot(start.Add(time.Second)) {
		t.Error("expected hot item within decay window")
	}

	cold := start.Add(HeatDecayDuration + time.Second)
	if tracker.HasHot(cold) {
		t.Error("expected no hot items after decay")
	}
	if len(tracker.ignitions) != 0 {
		t.Errorf("expected decayed entries to be collected, have %d", len(tracker.ignitions))
	}
}

func TestReigniteResetsDecay(t *testing.T) {
	tracker := NewHeatTracker()
	start := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tracker.Ignite("invoice-9", start)
	later := start.Add(HeatDecayDuration - time.Millisecond)
	tracker.Ignite("invoice-9", later)

	if heat := tracker.Heat("invoice-9", later); heat != 1.0 {
		t.Errorf("heat after re-ignition = %v, want 1.0", heat)
	}
}
