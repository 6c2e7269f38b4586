// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzav

import (
	"encoding/binary"
	"math/bits"
)

// matchLen returns the number of equal leading bytes of a and b, up to max.
// It compares 8 bytes at a time via XOR+trailing-zero-count, falling back to
// a byte loop for the tail, mirroring how a hand-rolled C match scanner
// widens its comparisons to machine words.
func matchLen(a, b []byte, max int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if max < n {
		n = max
	}

	i := 0
	for i+8 <= n {
		x := binary.LittleEndian.Uint64(a[i:]) ^ binary.LittleEndian.Uint64(b[i:])
		if x != 0 {
			return i + bits.TrailingZeros64(x)/8
		}
		i += 8
	}
	for i < n && a[i] == b[i] {
		i++
	}
	return i
}

// matchLenRev returns the number of equal trailing bytes ending at a[ai] and
// b[bi] (inclusive, scanning backwards), up to max. Used to back-extend a
// candidate match into the literal run that precedes it.
func matchLenRev(a []byte, ai int, b []byte, bi int, max int) int {
	n := 0
	for n < max && ai-n >= 0 && bi-n >= 0 && a[ai-n] == b[bi-n] {
		n++
	}
	return n
}
