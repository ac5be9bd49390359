package tsgorilla

import (
	"math"
	"time"

	"github.com/gorillatsdb/tsgorilla/errs"
	"github.com/gorillatsdb/tsgorilla/frame"
	"github.com/gorillatsdb/tsgorilla/internal/bitio"
	"github.com/gorillatsdb/tsgorilla/internal/gorilla"
	"github.com/gorillatsdb/tsgorilla/internal/pool"
	"github.com/gorillatsdb/tsgorilla/internal/preprocess"
)

// nowFunc supplies creation_time. A test in this package that needs
// byte-identical output across two encodings of the same input can override
// it; production callers get the wall clock.
var nowFunc = time.Now

// Encode compresses points into a single self-contained frame. Empty input
// produces an empty output (zero bytes). Non-finite values round-trip their
// exact IEEE 754 bit pattern unless metrics mode is enabled, in which case
// they are rejected with ErrNonFiniteInMetricsMode.
func Encode(points []Point, opts ...Option) ([]byte, error) {
	o, err := newEncodeOptions(opts...)
	if err != nil {
		return nil, err
	}

	if len(points) == 0 {
		return []byte{}, nil
	}

	// ts/vals are scratch buffers for the row-to-columnar transform below;
	// pooled since Encode is expected to run once per incoming batch.
	ts, tsCleanup := pool.GetInt64Slice(len(points))
	defer tsCleanup()
	vals, valsCleanup := pool.GetFloat64Slice(len(points))
	defer valsCleanup()
	for i, p := range points {
		ts[i] = p.Ts
		vals[i] = p.Value
	}

	flags := frame.Flags(0)
	var scaleDecimals int

	if o.MetricsMode {
		if !preprocess.AllFinite(vals) {
			return nil, errs.ErrNonFiniteInMetricsMode
		}

		if o.IsCounter {
			preprocess.ApplyCounterDelta(vals)
			flags = flags.WithCounter(true)
		}

		scaleDecimals = preprocess.ResolveScale(vals, o.ScaleDecimals.auto, o.ScaleDecimals.fixed)
		preprocess.ApplyScale(vals, scaleDecimals)
		flags = flags.WithMetricsMode(true)
	}

	innerPayload, inner := packInner(ts, vals)

	crc := frame.Checksum(innerPayload)
	originalSize := uint32(16 * len(points))
	compressedSize := uint32(len(innerPayload))

	var ratio float64
	if originalSize > 0 {
		ratio = float64(compressedSize) / float64(originalSize)
	}

	outer := frame.OuterHeader{
		Count:            inner.Count,
		CompressedSize:   compressedSize,
		OriginalSize:     originalSize,
		CRC32:            crc,
		FirstTimestamp:   inner.FirstTimestamp,
		FirstDelta:       inner.FirstDelta,
		FirstValueBits:   inner.FirstValueBits,
		TsBitLen:         inner.TsBitLen,
		ValBitLen:        inner.ValBitLen,
		TotalBits:        8 * compressedSize,
		CompressionRatio: ratio,
		CreationTime:     nowFunc().Unix(),
		Flags:            flags,
		ScaleDecimals:    uint32(scaleDecimals),
	}

	out := make([]byte, 0, int(outer.HeaderSize())+len(innerPayload))
	out = append(out, outer.Bytes()...)
	out = append(out, innerPayload...)

	return out, nil
}

// packInner encodes ts and vals into the inner payload: the 32-byte inner
// header followed by the timestamp and value bit streams sharing a single
// continuous bit sequence, zero-padded to a byte boundary.
func packInner(ts []int64, vals []float64) ([]byte, frame.InnerHeader) {
	w := bitio.NewWriter()
	defer w.Release()

	tsEnc := gorilla.NewTimestampEncoderWriter(w)
	tsEnc.WriteSlice(ts)
	tsBitLen := w.TotalBits()

	valEnc := gorilla.NewValueEncoderWriter(w)
	valEnc.WriteSlice(vals)
	valBitLen := w.TotalBits() - tsBitLen

	body, _ := w.Bytes()

	inner := frame.InnerHeader{
		Count:          uint32(len(ts)),
		FirstTimestamp: ts[0],
		FirstValueBits: math.Float64bits(vals[0]),
		FirstDelta:     int32(tsEnc.FirstDelta()),
		TsBitLen:       uint32(tsBitLen),
		ValBitLen:      uint32(valBitLen),
	}

	payload := make([]byte, 0, frame.InnerHeaderSize+len(body))
	payload = append(payload, inner.Bytes()...)
	payload = append(payload, body...)

	return payload, inner
}

// Decode decompresses a frame produced by Encode. Empty input produces
// empty output.
func Decode(data []byte) ([]Point, error) {
	points, _, err := decode(data)

	return points, err
}

// DecodeWithReport behaves like Decode but also reports whether the inner
// payload's checksum matched the one stored in the frame. A mismatch does
// not prevent decoding from producing points; acting on ChecksumOK is left
// to the caller.
func DecodeWithReport(data []byte) ([]Point, DecodeReport, error) {
	return decode(data)
}

func decode(data []byte) ([]Point, DecodeReport, error) {
	if len(data) == 0 {
		return []Point{}, DecodeReport{ChecksumOK: true}, nil
	}

	outer, headerSize, err := frame.ParseOuterHeader(data)
	if err != nil {
		return nil, DecodeReport{}, err
	}

	innerPayload := data[headerSize : headerSize+int(outer.CompressedSize)]
	report := DecodeReport{ChecksumOK: frame.Checksum(innerPayload) == outer.CRC32}

	inner, err := frame.ParseInnerHeader(innerPayload)
	if err != nil {
		return nil, report, err
	}

	count := int(inner.Count)
	body := innerPayload[frame.InnerHeaderSize:]
	r := bitio.NewReader(body, int(inner.TsBitLen+inner.ValBitLen))

	// ts/vals are scratch buffers for the columnar-to-row transform below;
	// pooled for the same reason as Encode's row-to-columnar buffers.
	ts, tsCleanup := pool.GetInt64Slice(count)
	defer tsCleanup()
	vals, valsCleanup := pool.GetFloat64Slice(count)
	defer valsCleanup()

	tsGot := 0
	for v := range gorilla.NewTimestampDecoder().AllFromReader(r, count) {
		ts[tsGot] = v
		tsGot++
	}

	valsGot := 0
	for v := range gorilla.NewValueDecoder().AllFromReader(r, count) {
		vals[valsGot] = v
		valsGot++
	}

	if tsGot < count || valsGot < count {
		return nil, report, errs.ErrTruncated
	}

	if outer.Flags.HasMetricsMode() {
		preprocess.ReverseScale(vals, int(outer.ScaleDecimals))
		if outer.Flags.HasCounter() {
			preprocess.ReverseCounterDelta(vals)
		}
	}

	points := make([]Point, count)
	for i := range points {
		points[i] = Point{Ts: ts[i], Value: vals[i]}
	}

	return points, report, nil
}
