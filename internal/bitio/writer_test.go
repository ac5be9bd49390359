package bitio

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterRoundTrip(t *testing.T) {
	t.Run("writes and reads back arbitrary widths", func(t *testing.T) {
		w := NewWriter()
		w.WriteBits(0, 1)
		w.WriteBits(0b1010101, 7)
		w.WriteBits(0x1FF, 9)
		w.WriteBits(0xABCDEF12, 32)
		w.WriteBits(^uint64(0), 64)

		data, trailing := w.Bytes()
		totalBits := w.TotalBits()
		require.Equal(t, 1+7+9+32+64, totalBits)

		r := NewReader(data, totalBits)
		v, err := r.ReadBits(1)
		require.NoError(t, err)
		require.Equal(t, uint64(0), v)

		v, err = r.ReadBits(7)
		require.NoError(t, err)
		require.Equal(t, uint64(0b1010101), v)

		v, err = r.ReadBits(9)
		require.NoError(t, err)
		require.Equal(t, uint64(0x1FF), v)

		v, err = r.ReadBits(32)
		require.NoError(t, err)
		require.Equal(t, uint64(0xABCDEF12), v)

		v, err = r.ReadBits(64)
		require.NoError(t, err)
		require.Equal(t, ^uint64(0), v)

		require.Equal(t, 0, r.Remaining())
		require.Equal(t, uint(totalBits%8), trailing)
	})

	t.Run("zero-width write is a no-op", func(t *testing.T) {
		w := NewWriter()
		w.WriteBits(0xFF, 0)
		require.Equal(t, 0, w.TotalBits())
	})

	t.Run("trailing bits are left-aligned and zero-padded", func(t *testing.T) {
		w := NewWriter()
		w.WriteBits(0b101, 3)
		data, trailing := w.Bytes()
		require.Equal(t, uint(3), trailing)
		require.Len(t, data, 1)
		require.Equal(t, byte(0b10100000), data[0])
	})

	t.Run("exact byte boundary has no trailing bits", func(t *testing.T) {
		w := NewWriter()
		w.WriteBits(0xAB, 8)
		data, trailing := w.Bytes()
		require.Equal(t, uint(0), trailing)
		require.Equal(t, []byte{0xAB}, data)
	})

	t.Run("signed values round-trip through two's complement truncation", func(t *testing.T) {
		w := NewWriter()
		w.WriteSigned(-1, 7)
		w.WriteSigned(64, 7)
		w.WriteSigned(-63, 7)

		data, _ := w.Bytes()
		r := NewReader(data, w.TotalBits())

		v, err := r.ReadSigned(7)
		require.NoError(t, err)
		require.Equal(t, int64(-1), v)

		// 64 does not fit 7-bit two's complement: its truncated pattern
		// 0b1000000 sign-extends to -64. The timestamp codec's readVarint
		// maps that pattern back to +64 for its asymmetric bucket.
		v, err = r.ReadSigned(7)
		require.NoError(t, err)
		require.Equal(t, int64(-64), v)

		v, err = r.ReadSigned(7)
		require.NoError(t, err)
		require.Equal(t, int64(-63), v)
	})

	t.Run("reset clears accumulated state", func(t *testing.T) {
		w := NewWriter()
		w.WriteBits(0x3, 2)
		w.Reset()
		require.Equal(t, 0, w.TotalBits())

		w.WriteBits(0x1, 1)
		data, trailing := w.Bytes()
		require.Equal(t, uint(1), trailing)
		require.Equal(t, byte(0b10000000), data[0])
	})
}
