// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

package yaz0

import "fmt"

// ErrInvalidMagic is returned when a stream's first four bytes are not "Yaz0".
var ErrInvalidMagic = invalidMagicError{}

// invalidMagicError renders as "yaz0 header magic invalid" and carries no payload.
// It is a distinct type (rather than errors.New) so that ErrInvalidMagic can be
// compared with errors.Is without relying on pointer identity being preserved
// across a reassignment.
type invalidMagicError struct{}

func (invalidMagicError) Error() string { return "yaz0 header magic invalid" }

// IOError wraps any read or write failure encountered while parsing a header,
// decoding a packet stream, or writing compressed/decompressed output. The
// underlying cause is preserved and reachable via errors.Unwrap/errors.As.
type IOError struct {
	Err error
}

func (e *IOError) Error() string { return fmt.Sprintf("backing i/o error: %v", e.Err) }

func (e *IOError) Unwrap() error { return e.Err }

// wrapIO wraps a non-nil I/O error in *IOError; it passes nil through unchanged.
func wrapIO(err error) error {
	if err == nil {
		return nil
	}
	return &IOError{Err: err}
}
