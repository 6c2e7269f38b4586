// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzav

// Decompress decompresses src, which must carry a stream prefix byte
// identifying its format, into a newly allocated buffer sized to what the
// stream declares it needs. opts may be nil (legacy streams rejected).
func Decompress(src []byte, opts *DecompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}
	if len(src) == 0 {
		return nil, nil
	}

	outLen, err := decodedLen(src)
	if err != nil {
		return nil, err
	}

	dst := make([]byte, outLen)
	n, err := DecompressInto(src, dst, opts)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// DecompressInto decompresses src into dst and returns the number of bytes
// written. dst must be at least as large as the stream's decoded output
// length, or ErrDstOOB is returned. A format-2 decode stops once dst is
// full, so bytes following the stream are ignored when dst is exactly the
// decoded length.
func DecompressInto(src, dst []byte, opts *DecompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultDecompressOptions()
	}
	if len(src) == 0 {
		return 0, nil
	}

	format := src[0] >> 4
	mref := int(src[0] & 0xf)

	switch format {
	case formatDefault2:
		return decompress2(mref, src[1:], dst)
	case formatLegacy:
		if !opts.AllowLegacy {
			return 0, ErrUnknownFormat
		}
		return decompress1(mref, src[1:], dst)
	default:
		return 0, ErrUnknownFormat
	}
}

// DecompressPartial decompresses as much of src as it can, never returning
// an error: it reports the number of output bytes committed and a status
// code (0 on full success, one of the Code* constants otherwise). It is
// meant for best-effort recovery of partially corrupted or truncated
// streams, not for validating well-formed ones.
func DecompressPartial(src, dst []byte, opts *DecompressOptions) (written int, code int) {
	n, err := DecompressInto(src, dst, opts)
	if err == nil {
		return n, 0
	}

	e, ok := err.(*Error)
	if !ok {
		e = ErrParams
	}

	if len(src) == 0 {
		return 0, e.Code
	}

	format := src[0] >> 4
	mref := int(src[0] & 0xf)
	switch format {
	case formatDefault2:
		return decompress2Partial(mref, src[1:], dst), e.Code
	default:
		return 0, e.Code
	}
}

// decodedLen inspects the stream prefix to determine how large a
// destination buffer Decompress needs to allocate, without performing a
// full decode.
func decodedLen(src []byte) (int, error) {
	if len(src) < 1 {
		return 0, ErrSrcOOB
	}
	format := src[0] >> 4
	switch format {
	case formatDefault2, formatLegacy:
		// Neither format carries an explicit total-output-length field in
		// its prefix; Decompress scans once, counting literal and
		// reference lengths without copying, to size dst exactly.
		mref := int(src[0] & 0xf)
		return estimateDecodedLen(mref, src[1:]), nil
	default:
		return 0, ErrUnknownFormat
	}
}

// estimateDecodedLen scans a format-2 body once, counting literal and
// reference lengths, without copying any bytes or tracking the carry
// channel (distances are never needed to compute output length).
func estimateDecodedLen(mref int, body []byte) int {
	total, ip := 0, 0
	for ip < len(body) {
		bh := body[ip]
		ip++
		blockType := headerBlockType(bh)
		nibble := int(headerLenNibble(bh))

		if blockType == blkLiteral {
			length := nibble
			if nibble == 0 {
				var ext int
				ext, ip = readLiteralLenExtension(body, ip)
				length = 16 + ext
			}
			total += length
			ip += length
			continue
		}

		ip += refOffsetBytes(blockType)
		length := nibble + mref - 1
		if nibble == 0 {
			var ext int
			ext, ip = readReferenceLenExtension(body, ip)
			length = mref + 15 + ext
		}
		total += length
	}
	return total
}

func refOffsetBytes(blockType byte) int {
	switch blockType {
	case blkRef10bit:
		return 1
	case blkRef18bit:
		return 2
	default:
		return 3
	}
}

// readLiteralLenExtension reads the 7-bit continuation varint written by
// blockWriter.writeLiteralLenExtension, returning the accumulated extra
// length and the position just past it. Stops at the buffer end rather
// than erroring: callers needing bounds safety re-check ip themselves.
func readLiteralLenExtension(body []byte, ip int) (extra, next int) {
	shift := 0
	for ip < len(body) {
		b := body[ip]
		ip++
		extra |= int(b&0x7f) << shift
		if b&0x80 == 0 {
			break
		}
		shift += 7
	}
	return extra, ip
}

// readLiteralLenExtensionChecked is readLiteralLenExtension with overrun
// checking, returning 16+extra as the decoded literal length.
func readLiteralLenExtensionChecked(body []byte, ip int) (length, next int, err error) {
	start := ip
	extra, nip := readLiteralLenExtension(body, ip)
	if nip == start || (nip == len(body) && body[nip-1]&0x80 != 0) {
		return 0, 0, ErrSrcOOB
	}
	return 16 + extra, nip, nil
}

// readReferenceLenExtension reads the 1-or-2-byte, 255-sentinel extension
// written by blockWriter.writeReferenceLenExtension, returning the
// accumulated extra length and the position just past it.
func readReferenceLenExtension(body []byte, ip int) (extra, next int) {
	if ip >= len(body) {
		return 0, ip
	}
	b := body[ip]
	ip++
	if b < 255 {
		return int(b), ip
	}
	if ip >= len(body) {
		return 255, ip
	}
	extra = 255 + int(body[ip])
	return extra, ip + 1
}

// readReferenceLenExtensionChecked is readReferenceLenExtension with
// overrun checking, returning mref+15+extra as the decoded reference
// length.
func readReferenceLenExtensionChecked(body []byte, ip, mref int) (length, next int, err error) {
	if ip >= len(body) {
		return 0, 0, ErrSrcOOB
	}
	b := body[ip]
	if b < 255 {
		return mref + 15 + int(b), ip + 1, nil
	}
	if ip+1 >= len(body) {
		return 0, 0, ErrSrcOOB
	}
	return mref + 15 + 255 + int(body[ip+1]), ip + 2, nil
}

// decompress2 is the format-2 decoder: a single (ip, op, bh, cv, csh) state
// machine over literal and reference blocks, threading the carry channel
// between successive headers (see blockwriter.go). Literal headers
// accumulate into cv/csh (csh grows by 2 each time); a reference header
// resolves the pending distance and then resets cv/csh from its own
// offset-class carry allowance. Decoding stops once dst is full, so any
// bytes after the end of the stream are left unread.
func decompress2(mref int, body, dst []byte) (int, error) {
	ip, op := 0, 0
	cv, csh := 0, 0

	for ip < len(body) && op < len(dst) {
		bh := body[ip]
		ip++
		blockType := headerBlockType(bh)
		nibble := int(headerLenNibble(bh))

		if blockType == blkLiteral {
			length := nibble
			if nibble == 0 {
				var err error
				length, ip, err = readLiteralLenExtensionChecked(body, ip)
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

			cv |= int(headerCarry(bh)) << csh
			csh += 2
			continue
		}

		offBytes := refOffsetBytes(blockType)
		if ip+offBytes > len(body) {
			return 0, ErrSrcOOB
		}
		raw := 0
		for i := 0; i < offBytes; i++ {
			raw |= int(body[ip+i]) << (8 * i)
		}
		ip += offBytes

		length := nibble + mref - 1
		if nibble == 0 {
			var err error
			length, ip, err = readReferenceLenExtensionChecked(body, ip, mref)
			if err != nil {
				return 0, err
			}
		}

		dist := (((int(headerCarry(bh)) | (raw&0x1fffff)<<2) << csh) | cv)

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

		csh = refCarryShift(blockType)
		cv = raw >> 21
	}

	return op, nil
}

// decompress2Partial mirrors decompress2 but stops at the first fault and
// reports the output length committed so far instead of an error.
func decompress2Partial(mref int, body, dst []byte) int {
	ip, op := 0, 0
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
				length, ip, err = readLiteralLenExtensionChecked(body, ip)
				if err != nil {
					return op
				}
			}
			if ip+length > len(body) || op+length > len(dst) {
				return op
			}
			copy(dst[op:op+length], body[ip:ip+length])
			ip += length
			op += length
			cv |= int(headerCarry(bh)) << csh
			csh += 2
			continue
		}

		offBytes := refOffsetBytes(blockType)
		if ip+offBytes > len(body) {
			return op
		}
		raw := 0
		for i := 0; i < offBytes; i++ {
			raw |= int(body[ip+i]) << (8 * i)
		}
		ip += offBytes

		length := nibble + mref - 1
		if nibble == 0 {
			var err error
			length, ip, err = readReferenceLenExtensionChecked(body, ip, mref)
			if err != nil {
				return op
			}
		}

		dist := (((int(headerCarry(bh)) | (raw&0x1fffff)<<2) << csh) | cv)
		if dist <= 0 || op-dist < 0 || op+length > len(dst) {
			return op
		}
		if copyOverlapSafe(dst, op, dist, length) != nil {
			return op
		}
		op += length
		csh = refCarryShift(blockType)
		cv = raw >> 21
	}

	return op
}
