package stats

import (
	"gonum.org/v1/gonum/floats"
)

type Bounds struct {
	Lower float64
	Upper float64
}

// GetBounds panics if values is empty.
func GetBounds(values []float64) *Bounds {
	return &Bounds{
		Lower: floats.Min(values),
		Upper: floats.Max(values),
	}
}

func (bounds *Bounds) Spread() float64 {
	return bounds.Upper - bounds.Lower
}

// Degenerate reports whether every value was identical.
func (bounds *Bounds) Degenerate() bool {
	return bounds.Lower == bounds.Upper
}
