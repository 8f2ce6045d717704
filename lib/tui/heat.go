// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"time"
)

// HeatDecayDuration is how long a row glows after a mutation lands.
// Heat starts at 1.0 and decays linearly to 0.0 over this duration.
const HeatDecayDuration = 3 * time.Second

// HeatTickInterval is the re-render interval while any rows are hot.
// 100ms gives ~10fps animation for smooth color decay.
const HeatTickInterval = 100 * time.Millisecond

// HeatTracker maps item IDs to ignition timestamps for animated
// change highlighting. An optimistic update "ignites" the affected
// row, which then decays from full intensity to zero over
// [HeatDecayDuration] so the operator can see what just changed.
type HeatTracker struct {
	ignitions map[string]time.Time
}

// NewHeatTracker creates an empty heat tracker.
func NewHeatTracker() *HeatTracker {
	return &HeatTracker{
		ignitions: make(map[string]time.Time),
	}
}

// Ignite records a mutation for an item. Resets the decay timer if
// the item was already hot.
func (tracker *HeatTracker) Ignite(itemID string, now time.Time) {
	tracker.ignitions[itemID] = now
}

// Heat returns the current intensity for an item: 1.0 at ignition,
// linearly decaying to 0.0 over [HeatDecayDuration]. Returns 0.0 for
// items that were never ignited or have fully decayed.
func (tracker *HeatTracker) Heat(itemID string, now time.Time) float64 {
	ignition, exists := tracker.ignitions[itemID]
	if !exists {
		return 0.0
	}
	elapsed := now.Sub(ignition)
	if elapsed >= HeatDecayDuration {
		return 0.0
	}
	return 1.0 - float64(elapsed)/float64(HeatDecayDuration)
}

// HasHot returns true if any tracked item still has heat > 0,
// meaning the tick timer should keep running for animation.
func (tracker *HeatTracker) HasHot(now time.Time) bool {
	for itemID, ignition := range tracker.ignitions {
		if now.Sub(ignition) < HeatDecayDuration {
			return true
		}
		// Garbage-collect fully decayed entries.
		delete(tracker.ignitions, itemID)
	}
	return false
}
