// Copyright 2026 The Gestia Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

// FuzzyResult holds the outcome of a fuzzy match: the fzf score and
// the rune positions within the text that matched the pattern.
// A zero score means no match.
type FuzzyResult struct {
	Score     int
	Positions []int
}

// FuzzyMatch runs fzf's FuzzyMatchV2 algorithm against a single text.
// Matching is case-insensitive: both sides are lowered before the
// algorithm runs, so the returned positions index into the original
// text's runes unchanged.
//
// The slab is fzf's scratch allocation arena. Callers matching many
// texts in a loop should allocate one with [NewFuzzySlab] and reuse
// it; nil is accepted and allocates per call.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{}
	}

	lowered := make([]rune, len(pattern))
	for index, character := range pattern {
		lowered[index] = toLowerRune(character)
	}

	chars := util.ToChars([]byte(strings.ToLower(text)))
	result, positions := algo.FuzzyMatchV2(false, false, true, &chars, lowered, true, slab)
	if result.Score <= 0 {
		return FuzzyResult{}
	}

	matched := FuzzyResult{Score: result.Score}
	if positions != nil {
		matched.Positions = *positions
	}
	return matched
}

// NewFuzzySlab allocates a scratch arena sized the way fzf itself
// sizes its per-worker slabs.
func NewFuzzySlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}

func toLowerRune(character rune) rune {
	if character >= 'A' && character <= 'Z' {
		return character + ('a' - 'A')
	}
	return character
}
