// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzav

// Compress compresses src into a new buffer, sized exactly to what the
// stream needs. opts may be nil (default compressor, no external hash
// table). Inputs of length 0 are declined: Compress returns (nil, nil).
func Compress(src []byte, opts *CompressOptions) ([]byte, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if len(src) == 0 {
		return nil, nil
	}

	bound := CompressBound(len(src))
	if opts.HighRatio {
		bound = CompressBoundHi(len(src))
	}
	dst := make([]byte, bound)

	n, err := CompressInto(src, dst, opts)
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// CompressInto compresses src into dst, which must be at least
// CompressBound(len(src)) (or CompressBoundHi, for the high-ratio
// compressor) bytes long, and returns the number of bytes written.
//
// Inputs shorter than 16 bytes skip the hash table entirely: a reference
// block could never pay for its own header at that size, so the body is a
// single literal block (format-2's own short form, not a distinct prefix).
func CompressInto(src, dst []byte, opts *CompressOptions) (int, error) {
	if opts == nil {
		opts = DefaultCompressOptions()
	}
	if len(src) == 0 {
		return 0, nil
	}
	if len(dst) < 1 {
		return 0, ErrDstOOB
	}

	mref := RefMinDefault
	if opts.HighRatio {
		mref = RefMinHi
	}
	dst[0] = byteTrunc(formatDefault2<<4 | mref)

	if len(src) < 16 {
		n, err := newBlockWriter(dst[1:]).finish(src, 0)
		if err != nil {
			return 0, err
		}
		return 1 + n, nil
	}

	var n int
	var err error
	if opts.HighRatio {
		n, err = compressHi(src, dst[1:], opts.ExtBuf)
	} else {
		n, err = compressDefault(src, dst[1:], opts.ExtBuf)
	}
	if err != nil {
		return 0, err
	}
	return 1 + n, nil
}
