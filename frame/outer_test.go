package frame

import (
	"testing"

	"github.com/gorillatsdb/tsgorilla/errs"
	"github.com/stretchr/testify/require"
)

func sampleV1() OuterHeader {
	return OuterHeader{
		Count:            4,
		CompressedSize:   48,
		OriginalSize:     64,
		CRC32:            0xDEADBEEF,
		FirstTimestamp:   1_000_000,
		FirstDelta:       60,
		FirstValueBits:   0x4044C00000000000,
		TsBitLen:         96,
		ValBitLen:        48,
		TotalBits:        384,
		CompressionRatio: 0.75,
		CreationTime:     1_700_000_000,
	}
}

func TestOuterHeaderRoundTripV1(t *testing.T) {
	h := sampleV1()
	data := h.Bytes()
	require.Len(t, data, OuterHeaderSizeV1)

	parsed, size, err := ParseOuterHeader(append(data, make([]byte, h.CompressedSize)...))
	require.NoError(t, err)
	require.Equal(t, OuterHeaderSizeV1, size)
	require.Equal(t, h, parsed)
}

func TestOuterHeaderRoundTripV2(t *testing.T) {
	h := sampleV1()
	h.Flags = h.Flags.WithMetricsMode(true).WithCounter(true)
	h.ScaleDecimals = 3

	data := h.Bytes()
	require.Len(t, data, OuterHeaderSizeV2)

	parsed, size, err := ParseOuterHeader(append(data, make([]byte, h.CompressedSize)...))
	require.NoError(t, err)
	require.Equal(t, OuterHeaderSizeV2, size)
	require.Equal(t, h, parsed)
	require.True(t, parsed.Flags.HasMetricsMode())
	require.True(t, parsed.Flags.HasCounter())
}

func TestOuterHeaderRejectsBadMagic(t *testing.T) {
	data := sampleV1().Bytes()
	data[0] = 0xFF

	_, _, err := ParseOuterHeader(data)
	require.ErrorIs(t, err, errs.ErrBadMagic)
}

func TestOuterHeaderRejectsUnsupportedVersion(t *testing.T) {
	h := sampleV1()
	data := h.Bytes()
	copy(data[8:10], []byte{0x00, 0x02})

	_, _, err := ParseOuterHeader(data)
	require.ErrorIs(t, err, errs.ErrUnsupportedVersion)
}

func TestOuterHeaderRejectsBadHeaderSize(t *testing.T) {
	h := sampleV1()
	data := h.Bytes()
	data[10] = 0x00
	data[11] = 0x51 // 81, not 80 or 84

	_, _, err := ParseOuterHeader(data)
	require.ErrorIs(t, err, errs.ErrBadHeader)
}

func TestOuterHeaderRejectsTruncatedInput(t *testing.T) {
	h := sampleV1()
	data := h.Bytes() // no inner payload appended, but CompressedSize > 0

	_, _, err := ParseOuterHeader(data)
	require.ErrorIs(t, err, errs.ErrTruncated)
}

func TestInnerHeaderRoundTrip(t *testing.T) {
	h := InnerHeader{
		Count:          4,
		FirstTimestamp: 1_000_000,
		FirstValueBits: 0x4044C00000000000,
		FirstDelta:     60,
		TsBitLen:       96,
		ValBitLen:      48,
	}

	data := h.Bytes()
	require.Len(t, data, InnerHeaderSize)

	parsed, err := ParseInnerHeader(data)
	require.NoError(t, err)
	require.Equal(t, h, parsed)
}

func TestInnerHeaderTruncated(t *testing.T) {
	_, err := ParseInnerHeader(make([]byte, 10))
	require.ErrorIs(t, err, errs.ErrTruncated)
}
