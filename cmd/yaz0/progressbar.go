// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (cmd wrapper idiom)

package main

import (
	"fmt"
	"io"
)

// progressBar renders a simple terminal progress bar fed by ProgressMsg
// updates. It has no dependency on the codec; it only knows a total and a
// current position.
type progressBar struct {
	w       io.Writer
	total   int
	width   int
	started bool
}

func newProgressBar(w io.Writer, total int) *progressBar {
	return &progressBar{w: w, total: total, width: 40}
}

func (b *progressBar) update(pos int) {
	if b.total <= 0 {
		return
	}
	b.started = true

	frac := float64(pos) / float64(b.total)
	if frac > 1 {
		frac = 1
	}
	filled := int(frac * float64(b.width))

	fmt.Fprintf(b.w, "\r[%s%s] %3.0f%%",
		repeat('=', filled), repeat(' ', b.width-filled), frac*100)
}

func (b *progressBar) finish() {
	if !b.started {
		return
	}
	fmt.Fprintln(b.w)
}

func repeat(c byte, n int) string {
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = c
	}
	return string(buf)
}
