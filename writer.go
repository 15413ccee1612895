// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (Writer façade idiom); contract grounded
// in _examples/original_source/src/deflate.rs Yaz0Writer

package yaz0

import "io"

// Writer writes Yaz0 archives to an underlying io.Writer.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer that writes compressed archives to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// CompressAndWrite writes the Yaz0 header for data followed by data
// compressed at level. No progress observer is notified.
func (wr *Writer) CompressAndWrite(data []byte, level Level) error {
	return wr.CompressAndWriteWithProgress(data, level, nil)
}

// CompressAndWriteWithProgress is like CompressAndWrite but forwards progress
// updates on progressCh as compression proceeds. progressCh may be nil, in
// which case no updates are sent. Sends never block: a slow or absent
// consumer cannot stall or fail the encoder.
func (wr *Writer) CompressAndWriteWithProgress(data []byte, level Level, progressCh chan<- ProgressMsg) error {
	if err := WriteHeader(wr.w, uint32(len(data))); err != nil {
		return err
	}

	compressed := encode(data, level, progressCh)
	if _, err := wr.w.Write(compressed); err != nil {
		return wrapIO(err)
	}

	return nil
}
