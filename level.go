// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (level/options idiom); strategy semantics
// grounded in _examples/original_source/src/deflate.rs CompressionLevel

package yaz0

// Strategy selects how the encoder searches for back-references.
type Strategy int

const (
	// Naive always takes the longest run found at the current cursor.
	Naive Strategy = iota
	// Lookahead additionally probes the run one byte ahead and prefers it
	// when doing so yields a materially longer match (see Level.window and
	// findLookaheadRun).
	Lookahead
)

func (s Strategy) String() string {
	switch s {
	case Naive:
		return "naive"
	case Lookahead:
		return "lookahead"
	default:
		return "unknown"
	}
}

// Level selects the encoder's search strategy and window quality.
// Quality must be in [1,10]; 10 gives the largest (4096-byte) search window.
type Level struct {
	Strategy Strategy
	Quality  int
}

// NaiveLevel returns a Level using the plain greedy search at the given quality.
func NaiveLevel(quality int) Level { return Level{Strategy: Naive, Quality: quality} }

// LookaheadLevel returns a Level using the one-byte-lookahead search at the given quality.
func LookaheadLevel(quality int) Level { return Level{Strategy: Lookahead, Quality: quality} }

// window returns the effective search window in bytes for this level's quality.
//
// The formula is maxLookback / floor(quality/10), which divides by zero for
// every quality below 10. Per the design notes this implementation clamps the
// divisor to at least 1, so quality in [1,10] always yields the full
// maxLookback window; see DESIGN.md for why no shrinking reference behavior
// exists to match instead.
func (l Level) window() int {
	divisor := l.Quality / 10
	if divisor < 1 {
		divisor = 1
	}
	return maxLookback / divisor
}
