// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzav

// blockWriter emits literal and reference blocks into a destination buffer.
// Every block's header reserves its top 2 bits for the low 2 bits of the
// distance still being assembled at the time that block is written; a
// 23-bit-offset reference block additionally reserves 3 bits in its own
// last offset byte, to be deposited into by whichever reference block
// writes next. carryPos/carryShift track that pending deposit.
type blockWriter struct {
	dst []byte
	pos int

	carryPos   int // position of the pending deposit byte, or -1 if none
	carryShift int // number of bits still owed to carryPos, or 0
}

func newBlockWriter(dst []byte) *blockWriter {
	return &blockWriter{dst: dst, carryPos: -1}
}

func (w *blockWriter) remaining() int { return len(w.dst) - w.pos }

func (w *blockWriter) putByte(b byte) error {
	if w.pos >= len(w.dst) {
		return ErrDstOOB
	}
	w.dst[w.pos] = b
	w.pos++
	return nil
}

func (w *blockWriter) putBytes(b []byte) error {
	if w.pos+len(b) > len(w.dst) {
		return ErrDstOOB
	}
	copy(w.dst[w.pos:], b)
	w.pos += len(b)
	return nil
}

// writeLiteralLenExtension writes a literal's overflowed length (nibble ==
// 0, meaning the literal is 16 bytes or longer) as a little-endian 7-bit
// continuation varint: each byte holds 7 value bits plus a top continuation
// bit, set on every byte but the last.
func (w *blockWriter) writeLiteralLenExtension(extra int) error {
	for extra > 127 {
		if err := w.putByte(byteTrunc(0x80 | extra&0x7f)); err != nil {
			return err
		}
		extra >>= 7
	}
	return w.putByte(byteTrunc(extra))
}

// writeReferenceLenExtension writes a reference's overflowed length as one
// byte (0-254), or, if that byte would be 255, a 255 sentinel followed by a
// second raw byte. Unlike the literal extension this never needs a third
// byte: the match scanners cap reference length well inside 255+255.
func (w *blockWriter) writeReferenceLenExtension(extra int) error {
	if extra < 255 {
		return w.putByte(byteTrunc(extra))
	}
	if err := w.putByte(255); err != nil {
		return err
	}
	return w.putByte(byteTrunc(extra - 255))
}

// writeBlock emits an optional literal run covering src[litPos:litPos+litLen]
// followed by a mandatory reference block, threading the carry channel
// between them and into whatever reference wrote before this call. minRef is
// the compressor's shortest representable reference length (6 for the
// default compressor, 5 for the high-ratio one).
func (w *blockWriter) writeBlock(src []byte, litPos, litLen, refLen, dist, minRef int) error {
	d := dist
	if w.carryShift != 0 {
		w.dst[w.carryPos] |= byteTrunc((d << 8) >> w.carryShift)
		d >>= w.carryShift
	}

	if litLen > 0 {
		var err error
		d, err = w.writeLiteral(src, litPos, litLen, d)
		if err != nil {
			return err
		}
	}

	return w.writeReference(refLen, d, minRef)
}

// writeLiteral emits a literal block covering src[srcPos:srcPos+n], peeling
// its own 2-bit carry contribution off d first, and returns the reduced d
// for the reference block that follows.
func (w *blockWriter) writeLiteral(src []byte, srcPos, n int, d int) (int, error) {
	carry := byte(d & 3)
	d >>= 2

	nibble := byte(0)
	if n < 16 {
		nibble = byteTrunc(n)
	}
	if err := w.putByte(packHeader(carry, blkLiteral, nibble)); err != nil {
		return d, err
	}
	if nibble == 0 {
		if err := w.writeLiteralLenExtension(n - 16); err != nil {
			return d, err
		}
	}
	if err := w.putBytes(src[srcPos : srcPos+n]); err != nil {
		return d, err
	}

	return d, nil
}

// writeReference emits a reference block of the given length and remaining
// distance d (already reduced by any carry-in and literal consumption), and
// arms the carry channel for whichever reference writes next.
func (w *blockWriter) writeReference(length, d, minRef int) error {
	blockType := refBlockType(d)
	offBytes := int(blockType)

	nibble := byte(0)
	rc := length - minRef + 1
	if rc < 16 {
		nibble = byteTrunc(rc)
	}

	if err := w.putByte(packHeader(byte(d&3), blockType, nibble)); err != nil {
		return err
	}

	off := d >> 2
	var raw [3]byte
	raw[0] = byteTrunc(off)
	raw[1] = byteTrunc(off >> 8)
	raw[2] = byteTrunc(off >> 16)
	if err := w.putBytes(raw[:offBytes]); err != nil {
		return err
	}
	w.carryPos = w.pos - 1
	w.carryShift = refCarryShift(blockType)

	if nibble == 0 {
		if err := w.writeReferenceLenExtension(rc - 16); err != nil {
			return err
		}
	}
	return nil
}

// finish writes the mandatory trailing literal run (spec invariant: the
// last LitFin bytes of the stream are always literal, never covered by a
// reference block) and returns the total bytes written. The terminal
// literal has no reference after it, so its header carries no carry-in.
func (w *blockWriter) finish(src []byte, srcPos int) (int, error) {
	if srcPos < len(src) {
		n := len(src) - srcPos
		nibble := byte(0)
		if n < 16 {
			nibble = byteTrunc(n)
		}
		if err := w.putByte(packHeader(0, blkLiteral, nibble)); err != nil {
			return 0, err
		}
		if nibble == 0 {
			if err := w.writeLiteralLenExtension(n - 16); err != nil {
				return 0, err
			}
		}
		if err := w.putBytes(src[srcPos:]); err != nil {
			return 0, err
		}
	}
	return w.pos, nil
}
