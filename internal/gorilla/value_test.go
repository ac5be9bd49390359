package gorilla

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func collectValues(data []byte, count int) []float64 {
	var out []float64
	for v := range NewValueDecoder().All(data, count) {
		out = append(out, v)
	}

	return out
}

func TestValueEncoderRoundTrip(t *testing.T) {
	t.Run("empty sequence emits nothing", func(t *testing.T) {
		e := NewValueEncoder()
		require.Equal(t, 0, e.Len())
		require.Empty(t, e.Bytes())
	})

	t.Run("single value is 64 raw bits", func(t *testing.T) {
		e := NewValueEncoder()
		e.Write(42.0)
		require.Equal(t, 64, e.TotalBits())
		require.Equal(t, []float64{42.0}, collectValues(e.Bytes(), 1))
	})

	t.Run("identical values produce a single 0 bit per repeat", func(t *testing.T) {
		e := NewValueEncoder()
		in := make([]float64, 10)
		for i := range in {
			in[i] = 42.0
		}
		e.WriteSlice(in)

		require.Equal(t, 64+9, e.TotalBits())
		require.Equal(t, in, collectValues(e.Bytes(), len(in)))
	})

	t.Run("regular drifting series round-trips bit-exact", func(t *testing.T) {
		e := NewValueEncoder()
		in := []float64{36.5, 36.7, 36.6, 36.8}
		e.WriteSlice(in)
		require.Equal(t, in, collectValues(e.Bytes(), len(in)))
	})
}

func TestValueXORBoundaries(t *testing.T) {
	base := 123.456

	cases := []struct {
		name string
		next float64
	}{
		{"identical values", base},
		{"differ only in sign bit", -base},
		{"differ only in low mantissa bit", math.Float64frombits(math.Float64bits(base) ^ 1)},
		{"differ only in exponent", math.Float64frombits(math.Float64bits(base) ^ (1 << 52))},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			e := NewValueEncoder()
			e.Write(base)
			e.Write(tc.next)

			out := collectValues(e.Bytes(), 2)
			require.Len(t, out, 2)
			require.Equal(t, math.Float64bits(base), math.Float64bits(out[0]))
			require.Equal(t, math.Float64bits(tc.next), math.Float64bits(out[1]))
		})
	}
}

func TestValueEncoderWindowReuse(t *testing.T) {
	// Two consecutive XORs with the same (or widening) leading/trailing
	// window should reuse the previous window (control bits '10') rather
	// than opening a new one.
	e := NewValueEncoder()
	a := math.Float64frombits(0x3FF0000000000000) // 1.0
	b := math.Float64frombits(0x3FF0000000000001) // 1.0 + 1ulp
	c := math.Float64frombits(0x3FF0000000000003) // differs in same low window
	e.Write(a)
	e.Write(b)
	e.Write(c)

	require.Equal(t, []float64{a, b, c}, collectValues(e.Bytes(), 3))
}

func TestValueDecoderTruncation(t *testing.T) {
	e := NewValueEncoder()
	e.WriteSlice([]float64{1.0, 2.0, 3.0, 4.0})
	data := e.Bytes()

	truncated := data[:len(data)-1]
	out := collectValues(truncated, 4)
	require.LessOrEqual(t, len(out), 4)
}

func TestValueNonFiniteRoundTrip(t *testing.T) {
	e := NewValueEncoder()
	in := []float64{math.NaN(), math.Inf(1), math.Inf(-1), 0.0}
	e.WriteSlice(in)

	out := collectValues(e.Bytes(), len(in))
	require.Len(t, out, len(in))
	require.True(t, math.IsNaN(out[0]))
	require.Equal(t, math.Inf(1), out[1])
	require.Equal(t, math.Inf(-1), out[2])
	require.Equal(t, 0.0, out[3])
}
