// Package errs defines the sentinel errors returned by the codec, following
// the error taxonomy in the frame and preprocess packages. Errors are plain
// values; callers compare with errors.Is and the codec never wraps them in a
// way that would defeat that comparison.
package errs

import "errors"

var (
	// ErrInvalidInput names the case of an internally inconsistent point
	// list (e.g. mismatched timestamp/value lengths). No code path in this
	// module returns it: []Point cannot hold a mismatched pair.
	ErrInvalidInput = errors.New("tsgorilla: invalid input")

	// ErrNonFiniteInMetricsMode is returned when a NaN or infinite value is
	// encountered while metrics mode is enabled. Recoverable by retrying
	// with metrics mode disabled.
	ErrNonFiniteInMetricsMode = errors.New("tsgorilla: non-finite value in metrics mode")

	// ErrBadMagic is returned when the first 8 bytes of a frame do not match
	// the expected magic value.
	ErrBadMagic = errors.New("tsgorilla: bad magic value")

	// ErrUnsupportedVersion is returned when the frame's version field is
	// greater than the highest version this codec understands.
	ErrUnsupportedVersion = errors.New("tsgorilla: unsupported frame version")

	// ErrBadHeader is returned when header_size is not one of the known
	// sizes, or the header's internal lengths are inconsistent.
	ErrBadHeader = errors.New("tsgorilla: malformed frame header")

	// ErrTruncated is returned when the input is shorter than the header
	// declares, or a bit-level read runs past the declared bit length.
	ErrTruncated = errors.New("tsgorilla: truncated frame")

	// ErrChecksumMismatch signals a CRC32 mismatch over the inner payload.
	// Unlike the other sentinels, it is not fatal: decoding proceeds and
	// this is surfaced only through DecodeReport.ChecksumOK.
	ErrChecksumMismatch = errors.New("tsgorilla: checksum mismatch")
)
