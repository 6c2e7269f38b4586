// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzav

// CompressBound returns the largest number of bytes the default compressor
// can ever produce for an input of srcLen bytes. Callers size dst with this
// before calling Compress.
func CompressBound(srcLen int) int {
	if srcLen <= 0 {
		return 16
	}
	const k = 144
	b := srcLen + (srcLen+k-1)/k + 16
	if b < 16 {
		return 16
	}
	return b
}

// CompressBoundHi returns the largest number of bytes the high-ratio
// compressor can ever produce for an input of srcLen bytes.
func CompressBoundHi(srcLen int) int {
	if srcLen <= 0 {
		return 16
	}
	const k = 16
	b := srcLen + (srcLen+k-1)/k + 16
	if b < 16 {
		return 16
	}
	return b
}
