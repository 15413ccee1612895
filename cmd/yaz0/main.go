// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo (cmd wrapper idiom); verb surface
// grounded in _examples/original_source/examples/yaztool.rs

// Command yaz0 compresses or decompresses a single file using the Yaz0
// container format.
//
//	yaz0 compress   <INPUT> <OUTPUT>
//	yaz0 decompress <INPUT> <OUTPUT>
package main

import (
	"fmt"
	"os"

	"github.com/gcnhax/yaz0"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: yaz0 <compress|decompress> <INPUT> <OUTPUT>")
	}

	verb, inPath, outPath := args[0], args[1], args[2]
	switch verb {
	case "compress":
		return runCompress(inPath, outPath)
	case "decompress":
		return runDecompress(inPath, outPath)
	default:
		return fmt.Errorf("unknown verb %q (want compress or decompress)", verb)
	}
}

func runCompress(inPath, outPath string) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return fmt.Errorf("read %s: %w", inPath, err)
	}

	out, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer out.Close()

	progressCh := make(chan yaz0.ProgressMsg, 8)
	done := make(chan struct{})
	bar := newProgressBar(os.Stderr, len(data))
	go func() {
		defer close(done)
		for msg := range progressCh {
			bar.update(msg.ReadHead)
		}
	}()

	w := yaz0.NewWriter(out)
	err = w.CompressAndWriteWithProgress(data, yaz0.LookaheadLevel(10), progressCh)
	close(progressCh)
	<-done
	bar.finish()

	if err != nil {
		return fmt.Errorf("compress %s: %w", inPath, err)
	}
	return nil
}

func runDecompress(inPath, outPath string) error {
	in, err := os.Open(inPath)
	if err != nil {
		return fmt.Errorf("open %s: %w", inPath, err)
	}
	defer in.Close()

	archive, err := yaz0.NewArchive(in)
	if err != nil {
		return fmt.Errorf("parse %s: %w", inPath, err)
	}

	data, err := archive.Decompress()
	if err != nil {
		return fmt.Errorf("decompress %s: %w", inPath, err)
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}
	return nil
}
