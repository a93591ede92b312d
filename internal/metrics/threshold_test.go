package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyThreshold(t *testing.T) {
	scores := []float64{0.9, 0.5, 0.49, 0.1, 0.0, 1.0}
	tests := []struct {
		name string
		t    float64
		want []int
	}{
		{"default cutoff", 0.5, []int{1, 1, 0, 0, 0, 1}},
		{"aggressive cutoff", 0.10, []int{1, 1, 1, 1, 0, 1}},
		{"zero classifies everything positive", 0, []int{1, 1, 1, 1, 1, 1}},
		{"one keeps only certain scores", 1, []int{0, 0, 0, 0, 0, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApplyThreshold(scores, tt.t)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// A score equal to the threshold predicts positive.
func TestApplyThresholdTiePolicy(t *testing.T) {
	got, err := ApplyThreshold([]float64{0.3}, 0.3)
	require.NoError(t, err)
	assert.Equal(t, []int{1}, got)
}

func TestApplyThresholdValidation(t *testing.T) {
	tests := []struct {
		name   string
		scores []float64
		t      float64
	}{
		{"empty scores", nil, 0.5},
		{"threshold above one", []float64{0.5}, 1.1},
		{"threshold below zero", []float64{0.5}, -0.1},
		{"threshold NaN", []float64{0.5}, math.NaN()},
		{"score above one", []float64{1.5}, 0.5},
		{"score below zero", []float64{-0.5}, 0.5},
		{"score NaN", []float64{math.NaN()}, 0.5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ApplyThreshold(tt.scores, tt.t)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

func TestApplyThresholdDeterministic(t *testing.T) {
	scores := []float64{0.31, 0.72, 0.55}
	a, err := ApplyThreshold(scores, 0.55)
	require.NoError(t, err)
	b, err := ApplyThreshold(scores, 0.55)
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Equal(t, []float64{0.31, 0.72, 0.55}, scores)
}
