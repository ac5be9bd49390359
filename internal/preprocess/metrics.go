// Package preprocess implements the optional metrics-mode transforms
// (counter delta-encoding, decimal scaling) applied to a value slice before
// it enters the Gorilla value codec, and their inverses on decode.
package preprocess

import (
	"math"
	"strconv"
	"strings"
)

// MaxScaleDecimals is the clamp applied to Auto-detected and caller-supplied
// decimal scales alike.
const MaxScaleDecimals = 6

// ApplyCounterDelta replaces values[i] with values[i]-values[i-1] for i>=1,
// in place, leaving values[0] untouched. Walking backwards means each
// subtraction reads an unmodified predecessor.
func ApplyCounterDelta(values []float64) {
	for i := len(values) - 1; i >= 1; i-- {
		values[i] -= values[i-1]
	}
}

// ReverseCounterDelta undoes ApplyCounterDelta via prefix-sum, in place.
func ReverseCounterDelta(values []float64) {
	for i := 1; i < len(values); i++ {
		values[i] += values[i-1]
	}
}

// DecimalPlaces returns the number of fractional digits in the shortest
// round-tripping decimal representation of x, trailing zeros trimmed, per
// the scale_decimals=Auto contract. Integers report 0. The result is
// clamped to [0, MaxScaleDecimals].
func DecimalPlaces(x float64) int {
	if x == math.Trunc(x) {
		return 0
	}

	s := strconv.FormatFloat(x, 'f', -1, 64)

	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return 0
	}

	frac := strings.TrimRight(s[dot+1:], "0")
	n := len(frac)
	if n > MaxScaleDecimals {
		n = MaxScaleDecimals
	}

	return n
}

// ResolveScale returns the decimal scale to apply: the explicit fixed value
// when auto is false, otherwise the maximum DecimalPlaces across values,
// clamped to MaxScaleDecimals.
func ResolveScale(values []float64, auto bool, fixed uint8) int {
	if !auto {
		n := int(fixed)
		if n > MaxScaleDecimals {
			n = MaxScaleDecimals
		}

		return n
	}

	n := 0
	for _, v := range values {
		if d := DecimalPlaces(v); d > n {
			n = d
		}
	}

	return n
}

// ApplyScale replaces each value with round(v * 10^n), in place. n == 0 is a
// no-op.
func ApplyScale(values []float64, n int) {
	if n == 0 {
		return
	}

	factor := math.Pow(10, float64(n))
	for i, v := range values {
		values[i] = math.Round(v * factor)
	}
}

// ReverseScale undoes ApplyScale, in place. n == 0 is a no-op.
func ReverseScale(values []float64, n int) {
	if n == 0 {
		return
	}

	factor := math.Pow(10, float64(n))
	for i := range values {
		values[i] /= factor
	}
}

// AllFinite reports whether every value is neither NaN nor infinite.
func AllFinite(values []float64) bool {
	for _, v := range values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
