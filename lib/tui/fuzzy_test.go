// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"testing"
)

func TestFuzzyMatchBasic(t *testing.T) {
	result := FuzzyMatch("Chaudière salle des machines", []rune("chaud"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for substring match")
	}
	if len(result.Positions) == 0 {
		t.Fatal("expected non-empty match positions")
	}
}

func TestFuzzyMatchNonContiguous(t *testing.T) {
	// "fac" should match "facture impayée" non-contiguously as well
	// as "fuite d'eau chaude" across word boundaries.
	result := FuzzyMatch("fuite d'eau chaude", []rune("fac"), nil)
	if result.Score <= 0 {
		t.Fatal("expected positive score for non-contiguous fuzzy match")
	}
}

func TestFuzzyMatchNoMatch(t *testing.T) {
	result := FuzzyMatch("Ascenseur bloqué", []rune("xyz"), nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for no match, got %d", result.Score)
	}
	if len(result.Positions) != 0 {
		t.Errorf("expected empty positions for no match, got %v", result.Positions)
	}
}

func TestFuzzyMatchCaseInsensitive(t *testing.T) {
	result := FuzzyMatch("CVC Tour Nord", []rune("cvc"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected case-insensitive match, got score=%d", result.Score)
	}
	result = FuzzyMatch("plomberie", []rune("PLOMB"), nil)
	if result.Score <= 0 {
		t.Fatalf("expected upper-case pattern to match, got score=%d", result.Score)
	}
}

func TestFuzzyMatchEmptyPattern(t *testing.T) {
	result := FuzzyMatch("anything", []rune{}, nil)
	if result.Score != 0 {
		t.Errorf("expected zero score for empty pattern, got %d", result.Score)
	}
}

func TestFuzzyMatchReusedSlab(t *testing.T) {
	slab := NewFuzzySlab()
	texts := []string{"Chaudière Nord", "Ascenseur B", "Portail parking"}
	for _, text := range texts {
		if result := FuzzyMatch(text, []rune("a"), slab); result.Score <= 0 {
			t.Errorf("expected match for %q with shared slab", text)
		}
	}
}
