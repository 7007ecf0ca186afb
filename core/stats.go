package core

import (
	"math"
	"sort"
)

// gini calculates the Gini coefficient for a set of values.
// The Gini coefficient measures inequality in a distribution, ranging from 0
// (perfect equality) to 1 (perfect inequality). It's used here to measure how
// evenly governance activity is distributed among agents.
func gini(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	mean := sum / float64(n)
	if mean == 0 {
		return 0
	}

	var diffSum float64
	for i := range n {
		for j := range n {
			diffSum += math.Abs(values[i] - values[j])
		}
	}

	g := diffSum / (2 * float64(n*n) * mean)
	return math.Min(math.Max(g, 0), 1) // clamp to [0,1]
}

// medianOf returns the median of the given values, or nil for an empty
// slice. Median resists outliers from stalled or extended-voting proposals
// better than a mean would.
func medianOf(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}
	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mid := len(sorted) / 2
	var m float64
	if len(sorted)%2 == 0 {
		m = (sorted[mid-1] + sorted[mid]) / 2
	} else {
		m = sorted[mid]
	}
	return &m
}

// roundInt rounds half away from zero to the nearest integer.
func roundInt(v float64) int {
	return int(math.Round(v))
}

// roundToFive rounds a raw composite sum to the nearest multiple of 5,
// avoiding false precision in the reported score.
func roundToFive(sum int) int {
	return roundInt(float64(sum)/5.0) * 5
}

// clampInt bounds v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func intPtr(v int) *int { return &v }
