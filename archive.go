// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (Archive façade idiom); contract grounded
// in _examples/original_source/src/inflate.rs Yaz0Archive

package yaz0

import "io"

// Archive wraps a reader positioned at the start of a Yaz0 file, exposing its
// declared size and decompression.
type Archive struct {
	r      io.Reader
	header Header
}

// NewArchive parses the Yaz0 header from r and returns an Archive positioned
// to decompress the packet stream that follows. Fails with ErrInvalidMagic if
// r's first four bytes are not "Yaz0".
func NewArchive(r io.Reader) (*Archive, error) {
	header, err := ParseHeader(r)
	if err != nil {
		return nil, err
	}

	return &Archive{r: r, header: header}, nil
}

// ExpectedSize returns the uncompressed size declared by the header.
func (a *Archive) ExpectedSize() uint32 {
	return a.header.ExpectedSize
}

// Decompress allocates a buffer of ExpectedSize and fills it by decompressing
// the archive's packet stream.
func (a *Archive) Decompress() ([]byte, error) {
	dest := make([]byte, a.header.ExpectedSize)
	if err := a.DecompressInto(dest); err != nil {
		return nil, err
	}
	return dest, nil
}

// DecompressInto decompresses into dest, which must have length at least
// ExpectedSize; violating that precondition is a programmer error.
func (a *Archive) DecompressInto(dest []byte) error {
	if len(dest) < int(a.header.ExpectedSize) {
		panic("yaz0: DecompressInto: dest shorter than ExpectedSize")
	}

	return decodeInto(a.r, dest[:a.header.ExpectedSize])
}
