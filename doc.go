// Package tsgorilla implements the Gorilla time-series compression scheme
// (Facebook, VLDB 2015): delta-of-delta encoding for timestamps and
// XOR-based encoding for IEEE 754 float64 values, packed into a bitstream
// and wrapped in a framed binary container with a CRC32 checksum.
//
// # Basic usage
//
//	points := []tsgorilla.Point{
//	    {Ts: 1_000_000, Value: 36.5},
//	    {Ts: 1_000_060, Value: 36.7},
//	    {Ts: 1_000_120, Value: 36.6},
//	}
//
//	frame, err := tsgorilla.Encode(points)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	decoded, err := tsgorilla.Decode(frame)
//
// # Metrics mode
//
// Counter-style and slowly-varying decimal metrics compress better after a
// preprocessing pass that runs before the Gorilla pipeline:
//
//	frame, err := tsgorilla.Encode(points,
//	    tsgorilla.WithMetricsMode(),
//	    tsgorilla.WithCounter(),
//	    tsgorilla.WithScaleDecimals(tsgorilla.ScaleAuto()),
//	)
//
// Metrics mode rejects NaN/Inf values with ErrNonFiniteInMetricsMode; retry
// with metrics mode disabled if the series may contain them.
//
// # Checksum handling
//
// A CRC32 mismatch over the inner payload is a soft signal, not a decode
// failure: DecodeWithReport returns the decoded points alongside a
// DecodeReport whose ChecksumOK field the caller may act on.
//
// # Package layout
//
// The bit-level codec, timestamp/value encoders, and preprocessing live
// under internal/ since they have no stable API independent of this
// package. frame defines the wire format; errs defines the sentinel errors
// this package and frame return.
package tsgorilla
