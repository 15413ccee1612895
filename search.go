// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (match.go search idiom); algorithm
// grounded in _examples/original_source/src/deflate.rs find_naive_run /
// find_lookahead_run

package yaz0

// run is a candidate back-reference: a match starting at cursor in the input,
// length bytes long. A zero run (length 0) is the identity for swapIfBetter.
type run struct {
	cursor int
	length int
}

// swapIfBetter returns other if it is strictly longer than r, and r otherwise.
// Because findNaiveRun folds candidates in increasing searchHead order, a tie
// is resolved in favor of the first candidate found (the earliest match
// start, largest distance).
func (r run) swapIfBetter(other run) run {
	if other.length > r.length {
		return other
	}
	return r
}

// findNaiveRun naively looks back from cursor within the given window, trying
// to find the longest substring of src that matches the data starting at
// cursor. Returns the zero run if no match is possible.
func findNaiveRun(src []byte, cursor, window int) run {
	searchStart := cursor - window
	if searchStart < 0 {
		searchStart = 0
	}

	best := run{}
	maxRunLen := len(src) - cursor

	for searchHead := searchStart; searchHead < cursor; searchHead++ {
		runLen := 0
		for runLen < maxRunLen && src[searchHead+runLen] == src[cursor+runLen] {
			runLen++
		}
		best = best.swapIfBetter(run{cursor: searchHead, length: runLen})
	}

	return best
}

// findLookaheadRun performs a naive search at cursor; if that run is at least
// 3 bytes long, it also searches one byte ahead. If the lookahead run is at
// least 2 bytes longer than the original, it reports that the caller should
// emit cursor's byte as a literal and use the lookahead run starting at
// cursor+1 instead.
//
// Returns (useLookahead, bestRun).
func findLookaheadRun(src []byte, cursor, window int) (bool, run) {
	best := findNaiveRun(src, cursor, window)

	if best.length >= minMatchLen {
		ahead := findNaiveRun(src, cursor+1, window)
		if ahead.length >= best.length+2 {
			return true, ahead
		}
	}

	return false, best
}
