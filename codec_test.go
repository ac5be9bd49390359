package tsgorilla

import (
	"math"
	"testing"

	"github.com/gorillatsdb/tsgorilla/errs"
	"github.com/gorillatsdb/tsgorilla/frame"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeEmpty(t *testing.T) {
	out, err := Encode(nil)
	require.NoError(t, err)
	require.Empty(t, out)

	points, err := Decode(nil)
	require.NoError(t, err)
	require.Empty(t, points)
}

func TestEncodeDecodeSinglePoint(t *testing.T) {
	in := []Point{{Ts: 1_000_000, Value: 42.0}}

	out, err := Encode(in)
	require.NoError(t, err)

	// header(80) + inner header(32) + 64 raw ts bits + 64 raw value bits
	// (16 bytes), no delta is ever emitted for a single-point series.
	require.Len(t, out, frame.OuterHeaderSizeV1+frame.InnerHeaderSize+16)

	points, err := Decode(out)
	require.NoError(t, err)
	require.Equal(t, in, points)
}

func TestEncodeDecodeRegularInterval(t *testing.T) {
	in := []Point{
		{Ts: 1_000_000, Value: 36.5},
		{Ts: 1_000_060, Value: 36.7},
		{Ts: 1_000_120, Value: 36.6},
		{Ts: 1_000_180, Value: 36.8},
	}

	out, err := Encode(in)
	require.NoError(t, err)

	points, err := Decode(out)
	require.NoError(t, err)
	require.Equal(t, in, points)

	for i := range in {
		require.Equal(t, math.Float64bits(in[i].Value), math.Float64bits(points[i].Value))
	}
}

func TestDecodeRejectsBadMagic(t *testing.T) {
	data := make([]byte, 80)
	_, err := Decode(data)
	require.ErrorIs(t, err, errs.ErrBadMagic)
}

func TestMetricsCounterRoundTrip(t *testing.T) {
	in := []Point{
		{Ts: 0, Value: 100.0},
		{Ts: 1, Value: 200.0},
		{Ts: 2, Value: 350.0},
	}

	out, err := Encode(in, WithMetricsMode(), WithCounter(), WithScaleDecimals(ScaleAuto()))
	require.NoError(t, err)

	points, err := Decode(out)
	require.NoError(t, err)
	require.Len(t, points, len(in))
	for i := range in {
		require.InDelta(t, in[i].Value, points[i].Value, 0.01)
		require.Equal(t, in[i].Ts, points[i].Ts)
	}
}

func TestMetricsModeRejectsNonFinite(t *testing.T) {
	in := []Point{{Ts: 0, Value: math.NaN()}}
	_, err := Encode(in, WithMetricsMode())
	require.ErrorIs(t, err, errs.ErrNonFiniteInMetricsMode)
}

func TestV2HeaderUsedWhenMetricsModeEnabled(t *testing.T) {
	in := []Point{{Ts: 0, Value: 1.5}, {Ts: 1, Value: 2.25}}

	out, err := Encode(in, WithMetricsMode())
	require.NoError(t, err)

	outer, headerSize, err := frame.ParseOuterHeader(out)
	require.NoError(t, err)
	require.Equal(t, frame.OuterHeaderSizeV2, headerSize)
	require.True(t, outer.Flags.RequiresV2())
}

func TestFrameInvariants(t *testing.T) {
	in := []Point{
		{Ts: 10, Value: 1.0},
		{Ts: 20, Value: 1.0},
		{Ts: 30, Value: 2.0},
		{Ts: 40, Value: 2.0},
		{Ts: 50, Value: 3.0},
	}

	out, err := Encode(in)
	require.NoError(t, err)

	outer, headerSize, err := frame.ParseOuterHeader(out)
	require.NoError(t, err)
	require.Equal(t, frame.OuterHeaderSizeV1, headerSize)

	require.Equal(t, uint32(16*len(in)), outer.OriginalSize)
	require.Equal(t, outer.TotalBits, 8*outer.CompressedSize)

	innerPayload := out[headerSize : headerSize+int(outer.CompressedSize)]
	require.Equal(t, outer.CRC32, frame.Checksum(innerPayload))

	require.Len(t, out, headerSize+int(outer.CompressedSize))
}

func TestCRCMismatchIsReportedNotFatal(t *testing.T) {
	in := []Point{
		{Ts: 1, Value: 1.5},
		{Ts: 2, Value: 2.5},
		{Ts: 3, Value: 3.5},
	}

	out, err := Encode(in)
	require.NoError(t, err)

	// Flip a bit inside the inner payload.
	corrupted := append([]byte(nil), out...)
	corrupted[len(corrupted)-1] ^= 0x01

	points, report, err := DecodeWithReport(corrupted)
	require.NoError(t, err)
	require.False(t, report.ChecksumOK)
	require.Len(t, points, len(in))
}

func TestHeaderSizeRejection(t *testing.T) {
	out, err := Encode([]Point{{Ts: 1, Value: 1.0}})
	require.NoError(t, err)

	tampered := append([]byte(nil), out...)
	tampered[10], tampered[11] = 0x00, 0x51 // header_size = 81
	_, err = Decode(tampered)
	require.ErrorIs(t, err, errs.ErrBadHeader)
}

func TestIdenticalValuesRoundTripBitExact(t *testing.T) {
	in := make([]Point, 10)
	for i := range in {
		in[i] = Point{Ts: 1_000_000 + 60*int64(i), Value: 42.0}
	}

	out, err := Encode(in)
	require.NoError(t, err)

	points, err := Decode(out)
	require.NoError(t, err)
	require.Equal(t, in, points)
}
