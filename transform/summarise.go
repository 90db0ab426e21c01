package transform

import (
	"fmt"
	"numtransform/stats"
)

// Summary is the count and arithmetic mean of the present entries of a
// sequence. Average is 0 when Count is 0.
type Summary struct {
	Count   int
	Average float64
}

func (s Summary) String() string {
	return fmt.Sprintf("count=%d average=%g", s.Count, s.Average)
}

// Summarise skips nil entries and summarises the rest. Average is the exact
// sum of the present entries divided by Count, rounded once.
func Summarise(values []*float64) Summary {
	acc := stats.NewAccumulator()
	for _, v := range values {
		if v == nil {
			continue
		}
		acc.Update(*v)
	}
	return newSummary(acc)
}

// SummariseValues summarises a sequence with no missing entries.
func SummariseValues[T Number](values []T) Summary {
	acc := stats.NewAccumulator()
	for _, v := range values {
		acc.Update(float64(v))
	}
	return newSummary(acc)
}

func newSummary(acc *stats.Accumulator) Summary {
	return Summary{
		Count:   int(acc.GetCount()),
		Average: acc.GetMean(),
	}
}
