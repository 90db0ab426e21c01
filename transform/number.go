// Package transform rescales and summarises numeric datasets held in memory.
// Every function is pure: inputs are never mutated and each call allocates
// its own result.
package transform

import "golang.org/x/exp/constraints"

type Number interface {
	constraints.Float | constraints.Integer
}

// Ptr returns a pointer to v, for building present entries of a sequence
// where nil marks a missing measurement.
func Ptr[T any](v T) *T {
	return &v
}

// isFloat reports whether T is a floating-point type, named types included.
func isFloat[T Number]() bool {
	var half T = 1
	half /= 2
	return half != 0
}

func toFloats[T Number](values []T) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = float64(v)
	}
	return out
}
