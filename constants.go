// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzav

// Stream format constants: window size, reference length bounds, mandatory
// trailing literal run, and the format identifiers carried in the stream
// prefix byte.

const (
	// WinLen is the maximum backward-reference distance, in bytes.
	WinLen = 1 << 23

	// RefMinDefault is the shortest reference length the default compressor
	// will emit.
	RefMinDefault = 6
	// RefMinHi is the shortest reference length the high-ratio compressor
	// will emit.
	RefMinHi = 5

	// RefLenSearchMax bounds how far the match scanners extend a single
	// candidate match before cutting a block; longer matches are split into
	// consecutive reference blocks.
	RefLenSearchMax = 530

	// LitFin is the number of literal bytes mandatorily held back at the
	// tail of every stream (never reference-covered).
	LitFin = 6
)

// Stream prefix format identifiers. The prefix byte is (formatID<<4)|mref.
const (
	formatLegacy   = 1
	formatDefault2 = 2
)

// Block types, packed into bits[5:4] of a block header byte.
const (
	blkLiteral  = 0
	blkRef10bit = 1
	blkRef18bit = 2
	blkRef23bit = 3
)
