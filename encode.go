// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (driver/codec structuring idiom);
// algorithm grounded in _examples/original_source/src/deflate.rs
// compress_lookaround / write_run

package yaz0

// encode compresses src at the given level, driving the run search and
// packing results into the Yaz0 packet stream. Progress updates are sent on
// progressCh (which may be nil) after an 8-packet group whenever readHead is
// a multiple of 10 or equals len(src)-1.
//
// The encoder never fails on input content; any byte sequence is encodable.
func encode(src []byte, level Level, progressCh chan<- ProgressMsg) []byte {
	window := level.window()

	var lookaheadCache *run
	readHead := 0
	encoded := make([]byte, 0, len(src))

	// groupBuf holds one group's packet bytes: at most groupSize packets of
	// 3 bytes each.
	groupBuf := make([]byte, 0, groupSize*3)

	for readHead < len(src) {
		groupBuf = groupBuf[:0]
		var codon byte

		for bit := 0; bit < groupSize && readHead < len(src); bit++ {
			var (
				best        run
				isLookahead bool
			)

			if lookaheadCache != nil {
				best = *lookaheadCache
				lookaheadCache = nil
			} else if level.Strategy == Lookahead {
				isLookahead, best = findLookaheadRun(src, readHead, window)
			} else {
				best = findNaiveRun(src, readHead, window)
			}

			switch {
			case isLookahead:
				cached := best
				lookaheadCache = &cached
				groupBuf = append(groupBuf, src[readHead])
				codon |= 0x80 >> uint(bit)
				readHead++
			case best.length >= minMatchLen:
				readHead += writeRun(readHead, best, &groupBuf)
			default:
				groupBuf = append(groupBuf, src[readHead])
				codon |= 0x80 >> uint(bit)
				readHead++
			}
		}

		encoded = append(encoded, codon)
		encoded = append(encoded, groupBuf...)

		if readHead%10 == 0 || readHead == len(src)-1 {
			sendProgress(progressCh, ProgressMsg{ReadHead: readHead})
		}
	}

	return encoded
}

// writeRun appends the packet for run to buf, given the current read cursor,
// and returns how many input bytes the packet accounts for.
func writeRun(readHead int, r run, buf *[]byte) int {
	dist := readHead - r.cursor - 1

	if r.length >= shortLongBoundary {
		clippedLength := r.length
		if clippedLength > maxMatchLen {
			clippedLength = maxMatchLen
		}
		*buf = append(*buf,
			byte(dist>>8),
			byte(dist&0xff),
			byte(clippedLength-shortLongBoundary),
		)
		return clippedLength
	}

	*buf = append(*buf,
		byte((r.length-2)<<4)|byte((dist>>8)&0x0F),
		byte(dist&0xff),
	)
	return r.length
}
