// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzav

// Low-level byte primitives shared by the block writer, both compressors,
// and both decoders: header byte packing/unpacking and overlap-safe copies.

// packHeader assembles a block header byte from its three fields.
func packHeader(carry byte, blockType byte, lenNibble byte) byte {
	return (carry&0x3)<<6 | (blockType&0x3)<<4 | (lenNibble & 0xf)
}

// headerCarry extracts the 2-bit carry field from a header byte.
func headerCarry(bh byte) byte { return bh >> 6 }

// headerBlockType extracts the 2-bit block-type field from a header byte.
func headerBlockType(bh byte) byte { return (bh >> 4) & 0x3 }

// headerLenNibble extracts the 4-bit length nibble from a header byte.
func headerLenNibble(bh byte) byte { return bh & 0xf }

// refCarryShift returns the number of offset bits a reference block of the
// given type reserves for the next block's carry-in: only the 23-bit class
// (blkRef23bit) has spare header-adjacent bits to spend on this, so every
// other type reserves none.
func refCarryShift(blockType byte) int {
	if blockType == blkRef23bit {
		return 3
	}
	return 0
}

// refBlockType picks the narrowest offset class that fits d, the distance
// remaining after the carry-in and any literal's own low bits have been
// peeled off it.
func refBlockType(d int) byte {
	bt := byte(1)
	if d > 1<<10-1 {
		bt++
	}
	if d > 1<<18-1 {
		bt++
	}
	return bt
}

// byteTrunc packs v into a single byte, keeping only its low 8 bits.
// Callers pass values whose low 8 bits are the full serialized form.
func byteTrunc(v int) byte {
	//nolint:gosec // G115: intentionally encoding only the low 8 bits.
	return byte(v & 0xff)
}

// copyOverlapSafe copies length bytes from dst[dstPos-dist:] to
// dst[dstPos:], handling the dist < length case (source and destination
// regions overlap, as with run-length patterns) byte by byte so that each
// repeated byte sees the ones already written ahead of it.
func copyOverlapSafe(dst []byte, dstPos, dist, length int) error {
	srcPos := dstPos - dist
	if srcPos < 0 {
		return ErrRefOOB
	}
	if dstPos+length > len(dst) {
		return ErrDstOOB
	}

	if dist >= length {
		copy(dst[dstPos:dstPos+length], dst[srcPos:srcPos+length])
		return nil
	}

	for i := 0; i < length; i++ {
		dst[dstPos+i] = dst[srcPos+i]
	}
	return nil
}
