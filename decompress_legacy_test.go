package lzav

import "testing"

// TestDecompress1_CarryChannel exercises a hand-built format-1 stream whose
// single reference block only decodes correctly if the literal that
// precedes it sets the carry channel and the 10-bit reference class
// consumes it: mref=6 (mref1=5), a literal of "ABCDEF" whose header carries
// carry=2, followed by a 10-bit reference of length 6 whose header carries
// carry=1 and a zero offset byte. The reference's distance only comes out
// to 6 (dist == length, a non-overlapping repeat of "ABCDEF") once the
// literal's carry bits are folded back in: ((1 | 0<<2) << 2) | 2 == 6.
func TestDecompress1_CarryChannel(t *testing.T) {
	const mref = 6
	body := []byte{
		packHeader(2, blkLiteral, 6), 'A', 'B', 'C', 'D', 'E', 'F',
		packHeader(1, blkRef10bit, 1), 0x00,
	}

	dst := make([]byte, 12)
	n, err := decompress1(mref, body, dst)
	if err != nil {
		t.Fatalf("decompress1 failed: %v", err)
	}
	if got, want := string(dst[:n]), "ABCDEFABCDEF"; got != want {
		t.Fatalf("unexpected output: got %q want %q", got, want)
	}
}

func TestDecompress1_ViaDecompressInto(t *testing.T) {
	const mref = 6
	src := []byte{
		byteTrunc(formatLegacy<<4 | mref),
		packHeader(2, blkLiteral, 6), 'A', 'B', 'C', 'D', 'E', 'F',
		packHeader(1, blkRef10bit, 1), 0x00,
	}

	dst := make([]byte, 12)
	n, err := DecompressInto(src, dst, &DecompressOptions{AllowLegacy: true})
	if err != nil {
		t.Fatalf("DecompressInto failed: %v", err)
	}
	if got, want := string(dst[:n]), "ABCDEFABCDEF"; got != want {
		t.Fatalf("unexpected output: got %q want %q", got, want)
	}

	if _, err := DecompressInto(src, dst, nil); err != ErrUnknownFormat {
		t.Fatalf("expected ErrUnknownFormat without AllowLegacy, got %v", err)
	}
}
