package gorilla

import (
	"iter"
	"math"
	"math/bits"

	"github.com/gorillatsdb/tsgorilla/encoding"
	"github.com/gorillatsdb/tsgorilla/internal/bitio"
)

// leadingBits and meaningfulBits are the widths of the new-window control
// fields: 5 bits for a clamped leading-zero count, 6 bits for
// meaningful-1.
const (
	leadingBits    = 5
	meaningfulBits = 6
	maxLeadingAdj  = 31
)

// ValueEncoder encodes a sequence of float64 values with XOR/Gorilla
// compression: the first value is written raw (64 bits); each subsequent
// value is XORed against the previous one and either reuses the previous
// leading/trailing window or opens a new one.
type ValueEncoder struct {
	w              *bitio.Writer
	count          int
	started        bool
	prevBits       uint64
	prevLeading    uint
	prevTrailing   uint
	prevMeaningful uint
}

var _ encoding.ColumnarEncoder[float64] = (*ValueEncoder)(nil)

// NewValueEncoder returns an empty ValueEncoder with its own bit writer.
func NewValueEncoder() *ValueEncoder {
	return &ValueEncoder{w: bitio.NewWriter()}
}

// NewValueEncoderWriter returns a ValueEncoder that appends to an existing
// bit writer, continuing immediately after whatever was already written to
// it (typically a TimestampEncoder sharing the same inner payload).
func NewValueEncoderWriter(w *bitio.Writer) *ValueEncoder {
	return &ValueEncoder{w: w}
}

func (e *ValueEncoder) Write(value float64) {
	curr := math.Float64bits(value)

	if !e.started {
		e.w.WriteBits(curr, 64)
		e.started = true
		e.prevBits = curr
		e.count++

		return
	}

	xor := curr ^ e.prevBits
	if xor == 0 {
		e.w.WriteBits(0, 1)
		e.prevBits = curr
		e.count++

		return
	}

	e.w.WriteBits(1, 1)

	leading := uint(bits.LeadingZeros64(xor))
	trailing := uint(bits.TrailingZeros64(xor))

	if leading >= e.prevLeading && trailing >= e.prevTrailing && e.prevMeaningful > 0 {
		e.w.WriteBits(0, 1)
		window := (xor >> e.prevTrailing) & mask(e.prevMeaningful)
		e.w.WriteBits(window, e.prevMeaningful)
	} else {
		e.w.WriteBits(1, 1)

		// leading is encoded in 5 bits (0-31). When the true leading-zero
		// count overflows that, clamp it and shrink trailing by the same
		// amount so leadingAdj+trailingAdj still accounts for every zero
		// bit outside the payload: meaningfulAdj is derived from the
		// adjusted pair, not the true meaningful width, so the decoder's
		// trailing = 64-leading-meaningful formula stays consistent with
		// the shift actually used below.
		leadingAdj := leading
		trailingAdj := trailing
		if leadingAdj > maxLeadingAdj {
			adjustment := leadingAdj - maxLeadingAdj
			leadingAdj = maxLeadingAdj
			if trailingAdj > adjustment {
				trailingAdj -= adjustment
			} else {
				trailingAdj = 0
			}
		}
		meaningfulAdj := 64 - leadingAdj - trailingAdj

		e.w.WriteBits(uint64(leadingAdj), leadingBits)
		e.w.WriteBits(uint64(meaningfulAdj-1), meaningfulBits)

		payload := (xor >> trailingAdj) & mask(meaningfulAdj)
		e.w.WriteBits(payload, meaningfulAdj)

		e.prevLeading = leadingAdj
		e.prevTrailing = trailingAdj
		e.prevMeaningful = meaningfulAdj
	}

	e.prevBits = curr
	e.count++
}

func (e *ValueEncoder) WriteSlice(values []float64) {
	for _, v := range values {
		e.Write(v)
	}
}

func (e *ValueEncoder) Bytes() []byte {
	data, _ := e.w.Bytes()

	return data
}

// TotalBits returns the number of bits written so far, before byte padding.
func (e *ValueEncoder) TotalBits() int {
	return e.w.TotalBits()
}

func (e *ValueEncoder) Len() int {
	return e.count
}

func (e *ValueEncoder) Size() int {
	return len(e.Bytes())
}

func (e *ValueEncoder) Reset() {
	e.w.Reset()
	e.count = 0
	e.started = false
	e.prevBits = 0
	e.prevLeading = 0
	e.prevTrailing = 0
	e.prevMeaningful = 0
}

func (e *ValueEncoder) Finish() {
	e.Reset()
}

func mask(nbits uint) uint64 {
	if nbits >= 64 {
		return ^uint64(0)
	}

	return (uint64(1) << nbits) - 1
}

// ValueDecoder decodes a byte payload produced by ValueEncoder.
type ValueDecoder struct{}

var _ encoding.ColumnarDecoder[float64] = ValueDecoder{}

// NewValueDecoder returns a stateless ValueDecoder.
func NewValueDecoder() ValueDecoder {
	return ValueDecoder{}
}

// All decodes count values from the first len(data)*8 bits of data. If the
// stream is truncated the iterator yields fewer than count values.
func (ValueDecoder) All(data []byte, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		decodeValues(bitio.NewReader(data, len(data)*8), count, yield)
	}
}

// AllFromReader decodes count values starting at r's current position. The
// frame decoder uses this to resume reading immediately after the
// timestamp stream within the same shared bit sequence.
func (ValueDecoder) AllFromReader(r *bitio.Reader, count int) iter.Seq[float64] {
	return func(yield func(float64) bool) {
		decodeValues(r, count, yield)
	}
}

func decodeValues(r *bitio.Reader, count int, yield func(float64) bool) {
	if count == 0 {
		return
	}

	first, err := r.ReadBits(64)
	if err != nil {
		return
	}
	prevBits := first
	if !yield(math.Float64frombits(prevBits)) {
		return
	}

	var prevTrailing, prevMeaningful uint

	for i := 1; i < count; i++ {
		ctrl, err := r.ReadBits(1)
		if err != nil {
			return
		}
		if ctrl == 0 {
			if !yield(math.Float64frombits(prevBits)) {
				return
			}

			continue
		}

		reuse, err := r.ReadBits(1)
		if err != nil {
			return
		}

		if reuse == 0 {
			m, err := r.ReadBits(prevMeaningful)
			if err != nil {
				return
			}
			prevBits ^= m << prevTrailing
			if !yield(math.Float64frombits(prevBits)) {
				return
			}

			continue
		}

		leadingVal, err := r.ReadBits(leadingBits)
		if err != nil {
			return
		}
		lVal, err := r.ReadBits(meaningfulBits)
		if err != nil {
			return
		}
		meaningful := uint(lVal) + 1
		leading := uint(leadingVal)
		trailing := 64 - leading - meaningful

		m, err := r.ReadBits(meaningful)
		if err != nil {
			return
		}
		prevBits ^= m << trailing
		prevTrailing = trailing
		prevMeaningful = meaningful

		if !yield(math.Float64frombits(prevBits)) {
			return
		}
	}
}
