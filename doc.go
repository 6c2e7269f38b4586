// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

/*
Package lzav implements the LZAV byte-oriented, LZ77-family compression
codec: a default compressor tuned for speed, a high-ratio compressor tuned
for size, and one decoder that reads both compressors' output along with
the legacy format-1 stream layout.

Every function operates on in-memory byte slices; there is no streaming
API, no checksum, and no dictionary-preset support by design.

# Compress

opts may be nil (default compressor, no external hash table):

	out, err := lzav.Compress(data, nil)
	out, err := lzav.Compress(data, lzav.HighRatioCompressOptions())

CompressBound and CompressBoundHi give the worst-case output size for a
given input length, for callers that want to size their own buffer and call
CompressInto directly:

	dst := make([]byte, lzav.CompressBound(len(data)))
	n, err := lzav.CompressInto(data, dst, nil)

# Decompress

	out, err := lzav.Decompress(compressed, nil)

Decompress allocates its own output buffer, sized by scanning the stream.
Callers that already know (or can bound) the decompressed size should use
DecompressInto instead:

	dst := make([]byte, expectedLen)
	n, err := lzav.DecompressInto(compressed, dst, nil)

DecompressPartial never returns an error; it reports how many output bytes
it managed to commit before a fault, for best-effort recovery of a
truncated or corrupted stream:

	n, code := lzav.DecompressPartial(compressed, dst, nil)
*/
package lzav
