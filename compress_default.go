// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzav

// compressDefault is the default compressor: a single hash table of 2-entry
// buckets (the newest candidate and the one it displaced), probed once per
// position. A running average, mavg, feeds a step switch keyed to the
// thresholds 200<<14, 130<<14 and 100<<14; as mavg is updated here it starts
// at 100<<14 and only falls (toward 64<<14 on misses), so no threshold is
// ever reached and every miss advances the position by one byte.
func compressDefault(src, dst []byte, extBuf []uint32) (int, error) {
	table, fromPool, err := acquireTable(extBuf, false, len(src))
	if err != nil {
		return 0, err
	}
	defer releaseTable(table, fromPool, false)

	w := newBlockWriter(dst)
	n := len(src)
	limit := n - LitFin

	bucketMask := uint32(len(table)/2 - 1)
	litStart := 0
	pos := 0
	mavg := int64(100 << 14)

	for pos < limit-4 {
		h := (hash4(src[pos:]) & bucketMask) * 2
		c0 := int(table[h]) - 1
		c1 := int(table[h+1]) - 1
		table[h+1] = table[h]
		table[h] = uint32(pos + 1)

		bestLen, bestDist := 0, 0
		for _, cand := range [2]int{c0, c1} {
			if cand < 0 || cand >= pos {
				continue
			}
			dist := pos - cand
			if dist >= WinLen || src[cand] != src[pos] {
				continue
			}
			ml := matchLen(src[cand:], src[pos:], limit-pos)
			if ml > RefLenSearchMax {
				ml = RefLenSearchMax
			}
			if ml > bestLen {
				bestLen, bestDist = ml, dist
			}
		}

		if bestLen >= RefMinDefault {
			back := matchLenRev(src, pos-1, src, pos-bestDist-1, min(pos-litStart, RefLenSearchMax-bestLen))
			pos -= back
			bestLen += back

			if err := w.writeBlock(src, litStart, pos-litStart, bestLen, bestDist, RefMinDefault); err != nil {
				return 0, err
			}

			pos += bestLen
			litStart = pos
			mavg -= mavg >> 6
			continue
		}

		mavg += (1 << 14) - (mavg >> 6)

		step := 1
		switch {
		case mavg >= 200<<14:
			step = 4
		case mavg >= 130<<14:
			step = 2
		case mavg >= 100<<14:
			step = 1
		}
		pos += step
	}

	return w.finish(src, litStart)
}
