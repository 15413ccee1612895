// SPDX-License-Identifier: GPL-2.0-only
// Source: github.com/woozymasta/lzo (adapted)

/*
Package yaz0 implements the Yaz0 container format: a byte-oriented LZ77-family
compression used by a family of console games to package asset archives.

A Yaz0 file is a 16-byte header (magic "Yaz0", big-endian uncompressed size,
8 bytes of padding) followed by a packet stream of literals and back-references
grouped under codon bytes.

# Decompress

	src, _ := os.Open("archive.szs")
	archive, err := yaz0.NewArchive(src)
	if err != nil {
		// err is *yaz0.IOError or errors.Is(err, yaz0.ErrInvalidMagic)
	}
	data, err := archive.Decompress()

# Compress

Levels select the search strategy (Naive or Lookahead) and a quality 1-10;
every quality in that range uses the full 4096-byte search window:

	var buf bytes.Buffer
	w := yaz0.NewWriter(&buf)
	err := w.CompressAndWrite(data, yaz0.LookaheadLevel(10))

To observe progress on large inputs, use CompressAndWriteWithProgress with a
channel; the encoder never blocks on a slow or absent consumer.
*/
package yaz0
