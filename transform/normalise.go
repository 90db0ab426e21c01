package transform

import (
	"math"
	"numtransform/stats"
	"slices"

	"gonum.org/v1/gonum/floats"
)

// Normalise maps values onto [0, 1] with (v - min) / (max - min). The minimum
// maps to exactly 0 and the maximum to exactly 1. When every value is the same
// (including a single value) each output is 1. An empty input yields an empty,
// non-nil slice.
func Normalise[T Number](values []T) []float64 {
	if len(values) == 0 {
		return []float64{}
	}
	if isFloat[T]() {
		return normaliseFloats(toFloats(values))
	}
	return normaliseIntegers(values)
}

func normaliseFloats(out []float64) []float64 {
	bounds := stats.GetBounds(out)
	if bounds.Degenerate() {
		return fill(out, 1.0)
	}

	// Halve everything when max-min overflows; halving is exact.
	lower, spread := bounds.Lower, bounds.Spread()
	if math.IsInf(spread, 0) {
		floats.Scale(0.5, out)
		lower = bounds.Lower * 0.5
		spread = bounds.Upper*0.5 - lower
	}

	// Divide rather than scale by the reciprocal so the maximum lands on 1.
	floats.AddConst(-lower, out)
	for i := range out {
		out[i] /= spread
	}
	return out
}

// Differences are taken in uint64, where v-lower wraps to the exact distance
// even when it overflows T.
func normaliseIntegers[T Number](values []T) []float64 {
	out := make([]float64, len(values))
	lower, upper := slices.Min(values), slices.Max(values)
	if lower == upper {
		return fill(out, 1.0)
	}

	spread := float64(uint64(upper) - uint64(lower))
	for i, v := range values {
		out[i] = float64(uint64(v)-uint64(lower)) / spread
	}
	return out
}

func fill(out []float64, value float64) []float64 {
	for i := range out {
		out[i] = value
	}
	return out
}
