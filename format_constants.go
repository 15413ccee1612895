// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted)

package yaz0

// Yaz0 format constants: header shape and packet length/distance bounds.

// Header layout.
const (
	headerMagicLen = 4
	headerSizeLen  = 4
	headerPadLen   = 8
	headerLen      = headerMagicLen + headerSizeLen + headerPadLen
)

var headerMagic = [headerMagicLen]byte{'Y', 'a', 'z', '0'}

// Back-reference bounds shared by both packet shapes.
const (
	minMatchLen = 3
	maxMatchLen = 273 // 0xFF + 0x12
	maxDistance = 4096

	// shortLongBoundary is the match length at or above which a back-reference
	// must use the 3-byte packet shape instead of the 2-byte one.
	shortLongBoundary = 0x12
)

// maxLookback is the largest search window the run search will ever use.
const maxLookback = 4096

// groupSize is the number of packets described by a single codon byte.
const groupSize = 8
