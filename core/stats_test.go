package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestGini tests the Gini coefficient calculation.
func TestGini(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected float64
		delta    float64
	}{
		{
			name:     "empty slice",
			values:   []float64{},
			expected: 0.0,
			delta:    0.001,
		},
		{
			name:     "perfect equality",
			values:   []float64{1, 1, 1, 1},
			expected: 0.0,
			delta:    0.001,
		},
		{
			name:     "perfect inequality",
			values:   []float64{0, 0, 0, 10},
			expected: 0.75,
			delta:    0.001,
		},
		{
			name:     "moderate inequality",
			values:   []float64{1, 2, 3, 4},
			expected: 0.25,
			delta:    0.001,
		},
		{
			name:     "single value",
			values:   []float64{5},
			expected: 0.0,
			delta:    0.001,
		},
		{
			name:     "all zeros",
			values:   []float64{0, 0, 0},
			expected: 0.0,
			delta:    0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := gini(tt.values)
			assert.LessOrEqual(t, math.Abs(result-tt.expected), tt.delta)
		})
	}
}

// TestMedianOf tests median calculation including the empty case.
func TestMedianOf(t *testing.T) {
	tests := []struct {
		name     string
		values   []float64
		expected *float64
	}{
		{
			name:     "empty slice",
			values:   nil,
			expected: nil,
		},
		{
			name:     "odd count",
			values:   []float64{3, 1, 2},
			expected: floatPtr(2),
		},
		{
			name:     "even count",
			values:   []float64{4, 1, 3, 2},
			expected: floatPtr(2.5),
		},
		{
			name:     "single value",
			values:   []float64{7},
			expected: floatPtr(7),
		},
		{
			name:     "outlier resistant",
			values:   []float64{1, 2, 1000},
			expected: floatPtr(2),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := medianOf(tt.values)
			if tt.expected == nil {
				assert.Nil(t, result)
			} else {
				assert.NotNil(t, result)
				assert.InDelta(t, *tt.expected, *result, 0.001)
			}
		})
	}
}

// TestMedianOfDoesNotMutateInput verifies the input slice order is preserved.
func TestMedianOfDoesNotMutateInput(t *testing.T) {
	values := []float64{3, 1, 2}
	_ = medianOf(values)
	assert.Equal(t, []float64{3, 1, 2}, values)
}

// TestRoundToFive tests rounding to the nearest multiple of 5.
func TestRoundToFive(t *testing.T) {
	tests := []struct {
		name     string
		input    int
		expected int
	}{
		{name: "exact multiple", input: 75, expected: 75},
		{name: "rounds down", input: 72, expected: 70},
		{name: "rounds up", input: 73, expected: 75},
		{name: "rounds up near multiple", input: 74, expected: 75},
		{name: "zero", input: 0, expected: 0},
		{name: "max score", input: 100, expected: 100},
		{name: "near max", input: 98, expected: 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, roundToFive(tt.input))
		})
	}
}

// TestClampInt tests integer clamping to a range.
func TestClampInt(t *testing.T) {
	assert.Equal(t, 0, clampInt(-5, 0, 100))
	assert.Equal(t, 100, clampInt(105, 0, 100))
	assert.Equal(t, 50, clampInt(50, 0, 100))
}

func floatPtr(v float64) *float64 { return &v }
