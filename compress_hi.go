// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzav

// compressHi is the high-ratio compressor: buckets of 7 candidate positions
// plus one rotating head-index word (replacing the oldest slot round-robin,
// cheaper than tracking true LRU order), one-step lazy matching, and a
// cost-weighted comparison between the current position's best match and
// the next position's, so a slightly shorter match that starts sooner
// doesn't automatically win over a longer one that costs one extra literal
// byte to reach.
func compressHi(src, dst []byte, extBuf []uint32) (int, error) {
	table, fromPool, err := acquireTable(extBuf, true, len(src))
	if err != nil {
		return 0, err
	}
	defer releaseTable(table, fromPool, true)

	const slots = 7
	const bucketWords = slots + 1
	numBuckets := len(table) / bucketWords
	bucketMask := uint32(numBuckets - 1)

	w := newBlockWriter(dst)
	n := len(src)
	limit := n - LitFin
	scanLimit := limit - 4

	findBest := func(p int) (length, dist int) {
		if p >= scanLimit {
			return 0, 0
		}
		h := hash4(src[p:]) & bucketMask
		base := int(h) * bucketWords

		for i := 0; i < slots; i++ {
			cand := int(table[base+i]) - 1
			if cand < 0 || cand >= p {
				continue
			}
			d := p - cand
			if d >= WinLen || src[cand] != src[p] {
				continue
			}
			ml := matchLen(src[cand:], src[p:], limit-p)
			if ml > RefLenSearchMax {
				ml = RefLenSearchMax
			}
			if ml > length {
				length, dist = ml, d
			}
		}

		head := int(table[base+slots])
		slot := head / 2
		table[base+slot] = uint32(p + 1)
		if head == 0 {
			head = 2 * (slots - 1)
		} else {
			head -= 2
		}
		table[base+slots] = uint32(head)
		return
	}

	litStart, pos := 0, 0
	for pos < scanLimit {
		length, dist := findBest(pos)
		if length < RefMinHi {
			pos++
			continue
		}

		if pos+1 < scanLimit {
			nextLen, nextDist := findBest(pos + 1)
			if netGain(nextLen, nextDist, RefMinHi) > netGain(length, dist, RefMinHi) {
				pos++
				length, dist = nextLen, nextDist
			}
		}

		back := matchLenRev(src, pos-1, src, pos-dist-1, min(pos-litStart, RefLenSearchMax-length))
		pos -= back
		length += back

		if err := w.writeBlock(src, litStart, pos-litStart, length, dist, RefMinHi); err != nil {
			return 0, err
		}

		pos += length
		litStart = pos
	}

	return w.finish(src, litStart)
}

// blockCost estimates the number of bytes a reference block of this length
// and distance will occupy: one header byte, plus a length-extension byte
// for matches outside the nibble's direct range, plus 1-3 offset bytes.
func blockCost(length, dist, minRef int) int {
	cost := 1
	if length-minRef+1 >= 16 || length < minRef {
		cost++
	}
	cost += int(refBlockType(dist))
	return cost
}

// netGain scores a candidate match by bytes saved versus emitting the same
// span as literals: match length minus the bytes the reference block itself
// costs to encode. Used to pick between the current position's best match
// and the one-step lazy alternative.
func netGain(length, dist, minRef int) int {
	if length < minRef {
		return -1 << 30
	}
	return length - blockCost(length, dist, minRef)
}
