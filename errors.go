// SPDX-License-Identifier: MIT
// Copyright (c) 2026 WoozyMasta
// Source: github.com/woozymasta/lzo

package lzav

// Sentinel errors for compression and decompression. Each wraps a numeric
// code compatible with the original C-API error codes, recoverable via
// errors.As with *Error.
var (
	// ErrParams carries CodeParams, the code for invalid arguments. No
	// function in this package returns it; DecompressPartial reports its code
	// for a decode failure that is not an *Error.
	ErrParams = &Error{Code: CodeParams, msg: "invalid parameters"}
	// ErrSrcOOB is returned when the decoder would read past the end of src.
	ErrSrcOOB = &Error{Code: CodeSrcOOB, msg: "source buffer overrun"}
	// ErrDstOOB is returned when the decoder would write past the end of dst.
	ErrDstOOB = &Error{Code: CodeDstOOB, msg: "destination buffer overrun"}
	// ErrRefOOB is returned when a reference block's offset points before
	// the start of the already-decoded output.
	ErrRefOOB = &Error{Code: CodeRefOOB, msg: "reference offset out of bounds"}
	// ErrDstLen carries CodeDstLen, the code for a destination length that
	// does not match what the stream requires. The decoders in this package
	// do not return it: a dst that is too short yields ErrDstOOB, and a dst
	// longer than the decoded output is accepted, with the byte count
	// returned.
	ErrDstLen = &Error{Code: CodeDstLen, msg: "destination length mismatch"}
	// ErrUnknownFormat is returned when the stream prefix names a format
	// identifier this decoder does not understand.
	ErrUnknownFormat = &Error{Code: CodeUnkFmt, msg: "unknown stream format"}

	// ErrExtBuf is returned when a caller-supplied external hash-table buffer
	// violates the size contract: its length must be a power of 2 within the
	// bounds for the selected compressor.
	ErrExtBuf = &Error{Code: CodeParams, msg: "invalid external hash-table buffer"}
)

// Numeric error codes, mirroring the original E_* constants so callers doing
// C-API-style bookkeeping can recover them from an *Error.
const (
	CodeParams = -1
	CodeSrcOOB = -2
	CodeDstOOB = -3
	CodeRefOOB = -4
	CodeDstLen = -5
	CodeUnkFmt = -6
)

// Error is the concrete type behind the Err* sentinels. It carries the
// numeric code from the original API alongside the Go error message.
type Error struct {
	Code int
	msg  string
}

func (e *Error) Error() string { return "lzav: " + e.msg }
