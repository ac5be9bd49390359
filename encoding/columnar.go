// Package encoding defines the generic columnar encoder/decoder interfaces
// shared by the timestamp and value codecs in internal/gorilla.
package encoding

import "iter"

// ColumnarEncoder encodes a sequence of values of type T into a single
// contiguous byte payload.
//
// Implementations are stateful for the duration of one encoding session:
// construct, call Write/WriteSlice any number of times, retrieve Bytes,
// then call Finish. An encoder is not safe for concurrent use.
type ColumnarEncoder[T comparable] interface {
	// Bytes returns the encoded byte slice accumulated so far.
	// The returned slice is valid until the next call to Write, WriteSlice,
	// or Reset. The caller must not modify it.
	Bytes() []byte

	// Len returns the number of values encoded since the last Reset.
	Len() int

	// Size returns the size in bytes of the data written to the internal
	// buffer so far.
	Size() int

	// Reset clears the encoder's running state (e.g. previous value/delta)
	// so it can start a new independent sequence, without releasing the
	// underlying buffer.
	Reset()

	// Finish ends the encoding session. The internal/gorilla encoders clear
	// their state on Finish; they do not return their bit writer's buffer
	// to the pool. After Finish the encoder must not be used again; create
	// a new one for further encoding.
	Finish()

	// Write encodes a single value.
	Write(data T)

	// WriteSlice encodes a slice of values. Implementations may fuse
	// repeated-value runs or otherwise batch more efficiently than
	// repeated calls to Write.
	WriteSlice(values []T)
}

// ColumnarDecoder decodes a byte payload produced by the matching
// ColumnarEncoder back into a sequence of values of type T.
//
// Decoding is strictly sequential — the wire formats covered here
// (delta-of-delta timestamps, XOR-compressed values) are bit-packed
// streams with no index, so random access within a payload is not
// supported; callers needing an arbitrary element must decode from the
// start.
type ColumnarDecoder[T comparable] interface {
	// All returns an iterator yielding all count decoded values, in
	// encoding order. If the payload is truncated or malformed the
	// iterator yields fewer than count values.
	All(data []byte, count int) iter.Seq[T]
}
