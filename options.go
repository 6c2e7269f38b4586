// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzav

// CompressOptions configures compression. The zero value (or a nil
// *CompressOptions passed to Compress) selects the default compressor with
// no external hash-table buffer.
type CompressOptions struct {
	// HighRatio selects the slower, higher-ratio compressor (lazy matching,
	// larger hash buckets) instead of the default one.
	HighRatio bool

	// ExtBuf, when non-nil, is used as the compressor's hash table instead
	// of a pooled scratch buffer. Its length must be a power of two within
	// [minExtBufLen, maxExtBufLen] (maxExtBufHiLen when HighRatio is set).
	// The caller must not reuse ExtBuf concurrently with the Compress call,
	// and it must not alias src or dst.
	ExtBuf []uint32
}

// DefaultCompressOptions returns options selecting the default compressor
// with no external buffer.
func DefaultCompressOptions() *CompressOptions {
	return &CompressOptions{}
}

// HighRatioCompressOptions returns options selecting the high-ratio
// compressor with no external buffer.
func HighRatioCompressOptions() *CompressOptions {
	return &CompressOptions{HighRatio: true}
}

// DecompressOptions configures decompression.
type DecompressOptions struct {
	// AllowLegacy permits decoding streams written in the legacy format-1
	// layout. Format-2 streams are always accepted.
	AllowLegacy bool
}

// DefaultDecompressOptions returns options accepting only current-format
// streams.
func DefaultDecompressOptions() *DecompressOptions {
	return &DecompressOptions{}
}
