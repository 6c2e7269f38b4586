package lzav

import (
	"bytes"
	"testing"
)

func TestAPIContract_DecompressAllowsTrailingBytes(t *testing.T) {
	src := bytes.Repeat([]byte("api-contract"), 64)

	compressed, err := Compress(src, DefaultCompressOptions())
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	dst := make([]byte, len(src))
	payload := append(append([]byte{}, compressed...), []byte("tail")...)
	n, err := DecompressInto(payload, dst, nil)
	if err != nil {
		t.Fatalf("DecompressInto with trailing bytes failed: %v", err)
	}

	if !bytes.Equal(dst[:n], src) {
		t.Fatal("decoded output mismatch for trailing-byte input")
	}
}

func TestAPIContract_DecompressBoundInvariantHoldsAcrossCorpus(t *testing.T) {
	for _, in := range testInputSet() {
		for _, hiRatio := range []bool{false, true} {
			opts := DefaultCompressOptions()
			bound := CompressBound(len(in.data))
			if hiRatio {
				opts = HighRatioCompressOptions()
				bound = CompressBoundHi(len(in.data))
			}

			cmp, err := Compress(in.data, opts)
			if err != nil {
				t.Fatalf("%s: Compress failed: %v", in.name, err)
			}
			if len(cmp) > bound {
				t.Fatalf("%s: compressed size %d exceeds bound %d", in.name, len(cmp), bound)
			}
		}
	}
}

func TestAPIContract_TerminalLiteralLaw(t *testing.T) {
	// The last LitFin bytes decoded by any stream must come from a literal
	// block: if the reference with the largest reach covers every byte
	// except an untouched LitFin-sized tail, decoding still recovers them
	// exactly, since the compressor never emits a match reaching into the
	// mandatory tail.
	data := bytes.Repeat([]byte{0x5a}, 4096)
	for i := range data[len(data)-LitFin:] {
		data[len(data)-LitFin+i] = byte(0xf0 + i)
	}

	cmp, err := Compress(data, DefaultCompressOptions())
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}

	out, err := Decompress(cmp, nil)
	if err != nil {
		t.Fatalf("Decompress failed: %v", err)
	}
	if !bytes.Equal(out, data) {
		t.Fatal("decoded output mismatch; terminal literal bytes were not preserved exactly")
	}
}

func TestAPIContract_Determinism(t *testing.T) {
	data := bytes.Repeat([]byte("deterministic-payload"), 300)

	first, err := Compress(data, DefaultCompressOptions())
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	second, err := Compress(data, DefaultCompressOptions())
	if err != nil {
		t.Fatalf("Compress failed: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Fatal("Compress is not deterministic across repeated calls on identical input")
	}
}
