// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (decompress.go state-machine idiom,
// copy.go overlap-aware copy); algorithm grounded in
// _examples/original_source/src/inflate.rs decompress_into

package yaz0

import "io"

// decodeInto reads a Yaz0 packet stream from r and fills dest[:len(dest)].
// The caller must size dest to the header's declared expected size before
// calling. Returns a *IOError on a short read.
func decodeInto(r io.Reader, dest []byte) error {
	var (
		byteBuf  [1]byte
		twoBuf   [2]byte
		destPos  int
		opsLeft  uint
		codeByte byte
	)

	readByte := func() (byte, error) {
		if _, err := io.ReadFull(r, byteBuf[:]); err != nil {
			return 0, wrapIO(err)
		}
		return byteBuf[0], nil
	}

	for destPos < len(dest) {
		if opsLeft == 0 {
			b, err := readByte()
			if err != nil {
				return err
			}
			codeByte = b
			opsLeft = 8
		}

		if codeByte&0x80 != 0 {
			b, err := readByte()
			if err != nil {
				return err
			}
			dest[destPos] = b
			destPos++
		} else {
			if _, err := io.ReadFull(r, twoBuf[:]); err != nil {
				return wrapIO(err)
			}
			b1, b2 := twoBuf[0], twoBuf[1]

			distance := (int(b1&0x0F) << 8) | int(b2)
			runBase := destPos - (distance + 1)

			var length int
			if b1>>4 == 0 {
				b3, err := readByte()
				if err != nil {
					return err
				}
				length = int(b3) + shortLongBoundary
			} else {
				length = int(b1>>4) + 2
			}

			if err := copyRun(dest, destPos, runBase, length); err != nil {
				return err
			}
			destPos += length
		}

		codeByte <<= 1
		opsLeft--
	}

	return nil
}

// copyRun copies length bytes from dest[runBase:] to dest[destPos:], matching
// emission order. Self-overlap (runBase+length > destPos, i.e. the
// back-reference's distance is shorter than its length) is permitted and must
// behave as if copied byte-by-byte, so freshly written bytes become valid
// source for later bytes in the same run (the run-length-encode effect).
//
// When the ranges don't overlap a single bulk copy is equivalent and used
// directly. When they do overlap, the first dist bytes are seeded with a bulk
// copy (equivalent to the first dist byte-by-byte steps, since none of that
// source range has been written by this run yet) and the remainder is filled
// by repeatedly doubling the already-written region, which reproduces the
// same periodic pattern a byte-by-byte loop would.
func copyRun(dest []byte, destPos, runBase, length int) error {
	if runBase < 0 {
		return wrapIO(io.ErrUnexpectedEOF)
	}

	dist := destPos - runBase
	if dist >= length {
		copy(dest[destPos:destPos+length], dest[runBase:runBase+length])
		return nil
	}

	copy(dest[destPos:destPos+dist], dest[runBase:destPos])
	copied := dist
	for copied < length {
		n := copy(dest[destPos+copied:destPos+length], dest[destPos:destPos+copied])
		copied += n
	}
	return nil
}
