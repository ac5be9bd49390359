// Package gorilla implements the delta-of-delta timestamp codec and the
// XOR/Gorilla value codec over the bit-level primitives in internal/bitio.
package gorilla

import (
	"iter"

	"github.com/gorillatsdb/tsgorilla/encoding"
	"github.com/gorillatsdb/tsgorilla/internal/bitio"
)

// varint bucket prefixes and payload widths, asymmetric around zero per the
// wire format: a delta of 64 fits the 7-bit bucket but -64 does not.
const (
	bucket7Prefix  = 0b10
	bucket7Bits    = 2
	bucket7Payload = 7
	bucket7Min     = -63
	bucket7Max     = 64

	bucket9Prefix  = 0b110
	bucket9Bits    = 3
	bucket9Payload = 9
	bucket9Min     = -255
	bucket9Max     = 256

	bucket12Prefix  = 0b1110
	bucket12Bits    = 4
	bucket12Payload = 12
	bucket12Min     = -2047
	bucket12Max     = 2048

	bucket32Prefix  = 0b1111
	bucket32Bits    = 4
	bucket32Payload = 32
)

// TimestampEncoder encodes a sequence of int64 timestamps using delta-of-delta
// with the variable-width bucket scheme described in the frame format.
//
// The first timestamp is written raw (64 bits); the first delta and every
// subsequent delta-of-delta are written with writeVarint. An encoder is
// stateful for the duration of one sequence: construct, call Write/WriteSlice,
// read Bytes, then Finish.
type TimestampEncoder struct {
	w         *bitio.Writer
	count     int
	started   bool // true once ts[0] has been written
	haveDelta bool // true once first_delta has been written
	prevTs    int64
	prevDelta int64
}

var _ encoding.ColumnarEncoder[int64] = (*TimestampEncoder)(nil)

// NewTimestampEncoder returns an empty TimestampEncoder with its own bit
// writer.
func NewTimestampEncoder() *TimestampEncoder {
	return &TimestampEncoder{w: bitio.NewWriter()}
}

// NewTimestampEncoderWriter returns a TimestampEncoder that appends to an
// existing bit writer instead of starting a fresh one. The frame builder
// uses this so the timestamp stream and the value stream that follows it
// share one continuous bit sequence with a single trailing pad, rather than
// each padding independently to a byte boundary.
func NewTimestampEncoderWriter(w *bitio.Writer) *TimestampEncoder {
	return &TimestampEncoder{w: w}
}

// FirstDelta returns the first delta (ts[1]-ts[0]) written so far, or 0 if
// fewer than two timestamps have been written. Used by the frame builder to
// populate the outer header's first_delta field.
func (e *TimestampEncoder) FirstDelta() int64 {
	return e.prevDelta
}

func (e *TimestampEncoder) Write(ts int64) {
	if !e.started {
		e.w.WriteBits(uint64(ts), 64)
		e.started = true
		e.prevTs = ts
		e.count++

		return
	}

	if !e.haveDelta {
		delta := ts - e.prevTs
		writeVarint(e.w, delta)
		e.prevDelta = delta
		e.prevTs = ts
		e.haveDelta = true
		e.count++

		return
	}

	delta := ts - e.prevTs
	dod := delta - e.prevDelta
	writeVarint(e.w, dod)
	e.prevDelta = delta
	e.prevTs = ts
	e.count++
}

func (e *TimestampEncoder) WriteSlice(values []int64) {
	for _, v := range values {
		e.Write(v)
	}
}

func (e *TimestampEncoder) Bytes() []byte {
	data, _ := e.w.Bytes()

	return data
}

// TotalBits returns the number of bits written so far, before byte padding.
func (e *TimestampEncoder) TotalBits() int {
	return e.w.TotalBits()
}

func (e *TimestampEncoder) Len() int {
	return e.count
}

func (e *TimestampEncoder) Size() int {
	return len(e.Bytes())
}

func (e *TimestampEncoder) Reset() {
	e.w.Reset()
	e.count = 0
	e.started = false
	e.haveDelta = false
	e.prevTs = 0
	e.prevDelta = 0
}

func (e *TimestampEncoder) Finish() {
	e.Reset()
}

// writeVarint writes d using the asymmetric bucket scheme shared by the
// first-delta and delta-of-delta positions.
func writeVarint(w *bitio.Writer, d int64) {
	switch {
	case d == 0:
		w.WriteBits(0, 1)
	case d >= bucket7Min && d <= bucket7Max:
		w.WriteBits(bucket7Prefix, bucket7Bits)
		w.WriteSigned(d, bucket7Payload)
	case d >= bucket9Min && d <= bucket9Max:
		w.WriteBits(bucket9Prefix, bucket9Bits)
		w.WriteSigned(d, bucket9Payload)
	case d >= bucket12Min && d <= bucket12Max:
		w.WriteBits(bucket12Prefix, bucket12Bits)
		w.WriteSigned(d, bucket12Payload)
	default:
		w.WriteBits(bucket32Prefix, bucket32Bits)
		w.WriteSigned(d, bucket32Payload)
	}
}

// readVarint mirrors writeVarint, consuming the prefix bits first.
func readVarint(r *bitio.Reader) (int64, error) {
	bit, err := r.ReadBits(1)
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		return 0, nil
	}

	bit, err = r.ReadBits(1)
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		return readBucket(r, bucket7Payload, bucket7Max)
	}

	bit, err = r.ReadBits(1)
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		return readBucket(r, bucket9Payload, bucket9Max)
	}

	bit, err = r.ReadBits(1)
	if err != nil {
		return 0, err
	}
	if bit == 0 {
		return readBucket(r, bucket12Payload, bucket12Max)
	}

	return r.ReadSigned(bucket32Payload)
}

// readBucket reads an nbits two's-complement payload of an asymmetric
// bucket. The pattern that sign-extends to -max is never written for such a
// bucket (its range starts at -max+1), so it stands for +max.
func readBucket(r *bitio.Reader, nbits uint, max int64) (int64, error) {
	v, err := r.ReadSigned(nbits)
	if err != nil {
		return 0, err
	}
	if v == -max {
		return max, nil
	}

	return v, nil
}

// TimestampDecoder decodes a byte payload produced by TimestampEncoder.
type TimestampDecoder struct{}

var _ encoding.ColumnarDecoder[int64] = TimestampDecoder{}

// NewTimestampDecoder returns a stateless TimestampDecoder.
func NewTimestampDecoder() TimestampDecoder {
	return TimestampDecoder{}
}

// All decodes count timestamps from the first len(data)*8 bits of data. If
// the stream is truncated the iterator yields fewer than count values.
func (TimestampDecoder) All(data []byte, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		decodeTimestamps(bitio.NewReader(data, len(data)*8), count, yield)
	}
}

// AllFromReader decodes count timestamps starting at r's current position,
// advancing r exactly as far as the timestamp stream extends. The frame
// decoder uses this so the value stream that follows can resume reading
// from the same shared Reader at the correct bit offset.
func (TimestampDecoder) AllFromReader(r *bitio.Reader, count int) iter.Seq[int64] {
	return func(yield func(int64) bool) {
		decodeTimestamps(r, count, yield)
	}
}

func decodeTimestamps(r *bitio.Reader, count int, yield func(int64) bool) {
	if count == 0 {
		return
	}

	first, err := r.ReadBits(64)
	if err != nil {
		return
	}
	ts := int64(first)
	if !yield(ts) {
		return
	}
	if count == 1 {
		return
	}

	dod, err := readVarint(r)
	if err != nil {
		return
	}
	delta := dod
	ts += delta
	if !yield(ts) {
		return
	}

	for i := 2; i < count; i++ {
		dod, err := readVarint(r)
		if err != nil {
			return
		}
		delta += dod
		ts += delta
		if !yield(ts) {
			return
		}
	}
}
