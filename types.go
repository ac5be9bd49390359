package tsgorilla

// Point is a single (timestamp, value) sample. Ts is not required to be
// monotonic; deltas between consecutive points may be negative or zero.
// Value may be any finite float64; NaN and Inf round-trip their exact bit
// pattern when metrics mode is disabled.
type Point struct {
	Ts    int64
	Value float64
}

// ScaleMode selects how metrics-mode decimal scaling picks its digit count.
// The zero value is equivalent to ScaleFixed(0); use ScaleAuto or ScaleFixed.
type ScaleMode struct {
	auto  bool
	fixed uint8
}

// ScaleAuto detects the scale from the data: the maximum number of
// fractional decimal digits across all values, clamped to 6.
func ScaleAuto() ScaleMode {
	return ScaleMode{auto: true}
}

// ScaleFixed uses a caller-supplied digit count, clamped to 6.
func ScaleFixed(n uint8) ScaleMode {
	return ScaleMode{fixed: n}
}

// EncodeOptions configures the optional metrics preprocessing stage applied
// before the Gorilla pipeline. The zero value disables metrics mode
// entirely, matching this codec's default.
type EncodeOptions struct {
	MetricsMode   bool
	IsCounter     bool
	ScaleDecimals ScaleMode
}

// DecodeReport carries signals from Decode that do not by themselves
// prevent decoding from succeeding.
type DecodeReport struct {
	// ChecksumOK is false when the inner payload's CRC32 did not match the
	// checksum stored in the frame. The decoded points are returned
	// regardless; acting on a mismatch is left to the caller.
	ChecksumOK bool
}
