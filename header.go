// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (adapted); wire layout grounded in
// _examples/original_source/src/header.rs

package yaz0

import (
	"encoding/binary"
	"io"
)

// Header is the 16-byte container header: magic, uncompressed size, and an
// 8-byte padding tail that is ignored on read and zeroed on write.
type Header struct {
	// ExpectedSize is the uncompressed size in bytes.
	ExpectedSize uint32
}

// ParseHeader reads a 16-byte Yaz0 header from r, leaving r positioned at the
// first compressed byte. It fails with ErrInvalidMagic if the first four bytes
// are not "Yaz0", or with *IOError on a short read.
func ParseHeader(r io.Reader) (Header, error) {
	var magic [headerMagicLen]byte
	if _, err := io.ReadFull(r, magic[:]); err != nil {
		return Header{}, wrapIO(err)
	}
	if magic != headerMagic {
		return Header{}, ErrInvalidMagic
	}

	var sizeBuf [headerSizeLen]byte
	if _, err := io.ReadFull(r, sizeBuf[:]); err != nil {
		return Header{}, wrapIO(err)
	}
	expectedSize := binary.BigEndian.Uint32(sizeBuf[:])

	var pad [headerPadLen]byte
	if _, err := io.ReadFull(r, pad[:]); err != nil {
		return Header{}, wrapIO(err)
	}

	return Header{ExpectedSize: expectedSize}, nil
}

// WriteHeader writes the 16-byte Yaz0 header for expectedSize to w.
func WriteHeader(w io.Writer, expectedSize uint32) error {
	var buf [headerLen]byte
	copy(buf[:headerMagicLen], headerMagic[:])
	binary.BigEndian.PutUint32(buf[headerMagicLen:headerMagicLen+headerSizeLen], expectedSize)
	// trailing headerPadLen bytes are already zero

	_, err := w.Write(buf[:])
	return wrapIO(err)
}
