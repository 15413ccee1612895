// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo channel/pool idiom; contract grounded in
// _examples/original_source/src/deflate.rs ProgressMsg / mpsc::Sender

package yaz0

// ProgressMsg reports how far the encoder has advanced through its input.
type ProgressMsg struct {
	// ReadHead is the number of input bytes consumed so far.
	ReadHead int
}

// sendProgress delivers msg on ch without blocking. If ch is nil, or the
// consumer isn't ready to receive, the message is silently dropped: the
// encoder must never stall or fail because a progress observer is slow or
// has disconnected.
func sendProgress(ch chan<- ProgressMsg, msg ProgressMsg) {
	if ch == nil {
		return
	}
	select {
	case ch <- msg:
	default:
	}
}
