package lzav

import "testing"

// FuzzDecompressNeverPanics feeds arbitrary bytes to Decompress: a hostile
// or merely corrupted stream must be rejected with an error, never panic
// or read/write past the buffers it was given.
func FuzzDecompressNeverPanics(f *testing.F) {
	f.Add([]byte{0x20})
	f.Add([]byte{0x20, 0x0f, 0x00})
	f.Add([]byte{0x30, 0xff})
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) > 1<<14 {
			data = data[:1<<14]
		}
		opts := &DecompressOptions{AllowLegacy: true}
		_, _ = Decompress(data, opts)

		dst := make([]byte, 1<<14)
		_, _ = DecompressInto(data, dst, opts)
		_, _ = DecompressPartial(data, dst, opts)
	})
}
