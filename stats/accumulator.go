package stats

import (
	"math"
	"math/big"
)

// Accumulator keeps an exact running sum of float64 values, so GetMean is
// sum/count rounded once.
type Accumulator struct {
	count uint64
	sum   *big.Rat
	// Sum of the NaN/Inf values seen, which big.Rat cannot hold.
	special    float64
	hasSpecial bool
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		count: 0,
		sum:   new(big.Rat),
	}
}

func (acc *Accumulator) Update(value float64) {
	acc.count++
	if math.IsNaN(value) || math.IsInf(value, 0) {
		acc.special += value
		acc.hasSpecial = true
		return
	}
	acc.sum.Add(acc.sum, new(big.Rat).SetFloat64(value))
}

func (acc *Accumulator) GetCount() uint64 {
	return acc.count
}

// GetSum is the exact sum rounded to the nearest float64, ±Inf when out of
// range.
func (acc *Accumulator) GetSum() float64 {
	if acc.hasSpecial {
		return acc.special
	}
	sum, _ := acc.sum.Float64()
	return sum
}

func (acc *Accumulator) GetMean() float64 {
	if acc.count == 0 {
		return 0
	}
	if acc.hasSpecial {
		return acc.special
	}
	mean := new(big.Rat).SetUint64(acc.count)
	mean.Quo(acc.sum, mean)
	f, _ := mean.Float64()
	return f
}
