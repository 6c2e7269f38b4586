// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzav

import (
	"bytes"
	"testing"

	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/pierrec/lz4/v4"
)

// BenchmarkCompareCompressors exercises the same corpus against a handful
// of general-purpose LZ77-family compressors from the ecosystem, so a
// regression in this codec's ratio or throughput shows up relative to
// known baselines rather than in isolation.
func BenchmarkCompareCompressors(b *testing.B) {
	for name, data := range benchmarkInputSets() {
		b.Run(name+"/lzav", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				if _, err := Compress(data, HighRatioCompressOptions()); err != nil {
					b.Fatalf("Compress failed: %v", err)
				}
			}
		})

		b.Run(name+"/snappy", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				_ = snappy.Encode(nil, data)
			}
		})

		b.Run(name+"/flate", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				var buf bytes.Buffer
				w, err := flate.NewWriter(&buf, flate.DefaultCompression)
				if err != nil {
					b.Fatalf("flate.NewWriter failed: %v", err)
				}
				if _, err := w.Write(data); err != nil {
					b.Fatalf("flate write failed: %v", err)
				}
				if err := w.Close(); err != nil {
					b.Fatalf("flate close failed: %v", err)
				}
			}
		})

		b.Run(name+"/lz4", func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			dst := make([]byte, lz4.CompressBlockBound(len(data)))
			var c lz4.Compressor
			for i := 0; i < b.N; i++ {
				if _, err := c.CompressBlock(data, dst); err != nil {
					b.Fatalf("lz4 compress failed: %v", err)
				}
			}
		})
	}
}

// TestCompareCompressors_RatioSanityCheck is not a strict assertion (ratio
// comparisons across algorithms are workload-dependent) but guards against
// an accidental regression where this codec stops compressing at all.
func TestCompareCompressors_RatioSanityCheck(t *testing.T) {
	for name, data := range benchmarkInputSets() {
		lzavOut, err := Compress(data, HighRatioCompressOptions())
		if err != nil {
			t.Fatalf("%s: Compress failed: %v", name, err)
		}
		snappyOut := snappy.Encode(nil, data)

		t.Logf("%s: input=%d lzav=%d snappy=%d", name, len(data), len(lzavOut), len(snappyOut))

		if len(lzavOut) >= len(data) {
			t.Errorf("%s: lzav output (%d) did not shrink a highly repetitive input (%d)", name, len(lzavOut), len(data))
		}
	}
}
