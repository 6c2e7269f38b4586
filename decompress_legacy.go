// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzav

// decompress1 decodes the legacy format-1 body: the same literal/reference
// block shape as format 2, but with a differently-shaped carry channel.
// Every literal unconditionally SETS the pending carry from its own header
// (rather than accumulating into it); a 10-bit or 18-bit reference block
// consumes that carry into its own distance and clears it; a 24-bit
// reference block's distance never absorbs its own header bits at all —
// instead it forward-carries its own header's 2 bits to whichever block
// reads next, exactly mirroring how the matching legacy encoder spends its
// header bits.
func decompress1(mref int, body, dst []byte) (int, error) {
	ip, op := 0, 0
	mref1 := mref - 1
	cv, csh := 0, 0

	for ip < len(body) {
		bh := body[ip]
		ip++
		blockType := headerBlockType(bh)
		nibble := int(headerLenNibble(bh))

		if blockType == blkLiteral {
			length := nibble
			if nibble == 0 {
				var err error
				length, ip, err = readLegacyLiteralLenExtensionChecked(body, ip)
				if err != nil {
					return 0, err
				}
			}
			if ip+length > len(body) {
				return 0, ErrSrcOOB
			}
			if op+length > len(dst) {
				return 0, ErrDstOOB
			}
			copy(dst[op:op+length], body[ip:ip+length])
			ip += length
			op += length

			cv, csh = int(headerCarry(bh)), 2
			continue
		}

		length := nibble + mref1
		if nibble == 0 {
			var err error
			length, ip, err = readLegacyRefLenExtensionChecked(body, ip, mref1)
			if err != nil {
				return 0, err
			}
		}

		offBytes := legacyOffsetBytes(blockType)
		if ip+offBytes > len(body) {
			return 0, ErrSrcOOB
		}
		raw := 0
		for i := 0; i < offBytes; i++ {
			raw |= int(body[ip+i]) << (8 * i)
		}
		ip += offBytes

		var dist int
		if blockType == blkRef23bit {
			dist = (raw << csh) | cv
			csh, cv = 2, int(headerCarry(bh))
		} else {
			dist = ((int(headerCarry(bh)) | raw<<2) << csh) | cv
			csh, cv = 0, 0
		}

		if dist <= 0 || op-dist < 0 {
			return 0, ErrRefOOB
		}
		if op+length > len(dst) {
			return 0, ErrDstOOB
		}
		if err := copyOverlapSafe(dst, op, dist, length); err != nil {
			return 0, err
		}
		op += length
	}

	return op, nil
}

// legacyOffsetBytes returns the fixed byte width of a format-1 reference
// block's offset field: the 10-bit and 18-bit classes each spend 1 and 2
// raw offset bytes respectively (with their remaining bits folded in from
// the header's own carry field and whatever the channel was carrying in),
// and the 24-bit class spends a full 3 raw bytes with nothing held back.
func legacyOffsetBytes(blockType byte) int {
	switch blockType {
	case blkRef10bit:
		return 1
	case blkRef18bit:
		return 2
	default:
		return 3
	}
}

// readLegacyLiteralLenExtensionChecked reads a format-1 literal's overflow
// length as a 1-or-2-byte, 255-sentinel extension (distinct from format 2's
// varint scheme), returning 16+extra as the decoded length.
func readLegacyLiteralLenExtensionChecked(body []byte, ip int) (length, next int, err error) {
	if ip >= len(body) {
		return 0, 0, ErrSrcOOB
	}
	b := body[ip]
	if b < 255 {
		return 16 + int(b), ip + 1, nil
	}
	if ip+1 >= len(body) {
		return 0, 0, ErrSrcOOB
	}
	return 16 + 255 + int(body[ip+1]), ip + 2, nil
}

// readLegacyRefLenExtensionChecked reads a format-1 reference's overflow
// length as a single raw byte (no sentinel, unlike every other extension
// scheme this decoder handles), returning 16+mref1+extra as the decoded
// length.
func readLegacyRefLenExtensionChecked(body []byte, ip, mref1 int) (length, next int, err error) {
	if ip >= len(body) {
		return 0, 0, ErrSrcOOB
	}
	return 16 + mref1 + int(body[ip]), ip + 1, nil
}
