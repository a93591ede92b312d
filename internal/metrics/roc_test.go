package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRocEndpointsAndOrdering(t *testing.T) {
	labels := []int{1, 0, 1, 0, 1, 0, 0, 1}
	scores := []float64{0.9, 0.8, 0.7, 0.6, 0.55, 0.4, 0.35, 0.2}

	curve, err := Roc(labels, scores)
	require.NoError(t, err)

	first := curve[0]
	assert.Equal(t, 0.0, first.FPR)
	assert.Equal(t, 0.0, first.TPR)
	assert.True(t, math.IsInf(first.Threshold, 1))

	last := curve[len(curve)-1]
	assert.Equal(t, 1.0, last.FPR)
	assert.Equal(t, 1.0, last.TPR)

	for i := 1; i < len(curve); i++ {
		assert.GreaterOrEqual(t, curve[i].FPR, curve[i-1].FPR)
		assert.GreaterOrEqual(t, curve[i].TPR, curve[i-1].TPR)
		assert.Less(t, curve[i].Threshold, curve[i-1].Threshold)
	}
}

func TestAucPerfectSeparation(t *testing.T) {
	curve, err := Roc([]int{1, 0, 1, 0}, []float64{0.9, 0.1, 0.8, 0.2})
	require.NoError(t, err)
	auc, err := AUC(curve)
	require.NoError(t, err)
	assert.Equal(t, 1.0, auc)
}

func TestAucAllTiesIsChance(t *testing.T) {
	curve, err := Roc([]int{1, 0, 1, 0}, []float64{0.5, 0.5, 0.5, 0.5})
	require.NoError(t, err)
	auc, err := AUC(curve)
	require.NoError(t, err)
	assert.Equal(t, 0.5, auc)
}

func TestAucInvertedRanking(t *testing.T) {
	curve, err := Roc([]int{1, 0, 1, 0}, []float64{0.1, 0.9, 0.2, 0.8})
	require.NoError(t, err)
	auc, err := AUC(curve)
	require.NoError(t, err)
	assert.Equal(t, 0.0, auc)
}

func TestRocDegenerateLabels(t *testing.T) {
	tests := []struct {
		name   string
		labels []int
	}{
		{"only positives", []int{1, 1, 1}},
		{"only negatives", []int{0, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Roc(tt.labels, []float64{0.2, 0.5, 0.8})
			var degen *DegenerateInputError
			require.ErrorAs(t, err, &degen)
		})
	}
}

func TestRocValidation(t *testing.T) {
	tests := []struct {
		name   string
		labels []int
		scores []float64
	}{
		{"empty input", nil, nil},
		{"length mismatch", []int{1, 0}, []float64{0.5}},
		{"bad label", []int{1, 2}, []float64{0.5, 0.6}},
		{"score out of range", []int{1, 0}, []float64{0.5, 1.6}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Roc(tt.labels, tt.scores)
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
		})
	}
}

// Only the rank order of the scores matters: any strictly increasing
// transform must leave the AUC unchanged.
func TestAucMonotoneTransformInvariance(t *testing.T) {
	labels := []int{1, 0, 1, 1, 0, 0, 1, 0, 1, 0}
	scores := []float64{0.91, 0.78, 0.75, 0.62, 0.58, 0.44, 0.42, 0.31, 0.22, 0.15}

	base, err := Roc(labels, scores)
	require.NoError(t, err)
	want, err := AUC(base)
	require.NoError(t, err)

	transforms := map[string]func(float64) float64{
		"square": func(s float64) float64 { return s * s },
		"sqrt":   math.Sqrt,
		"shrink": func(s float64) float64 { return 0.1 + 0.8*s },
	}
	for name, f := range transforms {
		t.Run(name, func(t *testing.T) {
			mapped := make([]float64, len(scores))
			for i, s := range scores {
				mapped[i] = f(s)
			}
			curve, err := Roc(labels, mapped)
			require.NoError(t, err)
			auc, err := AUC(curve)
			require.NoError(t, err)
			assert.InDelta(t, want, auc, 1e-12)
		})
	}
}

// The single-pass curve must agree with recomputing the confusion matrix
// from scratch at every distinct threshold.
func TestRocMatchesPerThresholdRecomputation(t *testing.T) {
	labels := []int{1, 0, 1, 1, 0, 0, 1, 0, 0, 1, 1, 0}
	scores := []float64{0.95, 0.95, 0.8, 0.7, 0.7, 0.6, 0.5, 0.5, 0.3, 0.3, 0.2, 0.1}

	curve, err := Roc(labels, scores)
	require.NoError(t, err)

	for _, pt := range curve[1:] {
		preds, err := ApplyThreshold(scores, pt.Threshold)
		require.NoError(t, err)
		c, err := Confusion(labels, preds)
		require.NoError(t, err)

		tpr, err := c.Recall()
		require.NoError(t, err)
		fpr, err := c.FalsePositiveRate()
		require.NoError(t, err)
		assert.InDelta(t, tpr, pt.TPR, 1e-12, "threshold %v", pt.Threshold)
		assert.InDelta(t, fpr, pt.FPR, 1e-12, "threshold %v", pt.Threshold)
	}
}

func TestAucNeedsTwoPoints(t *testing.T) {
	_, err := AUC(RocCurve{{FPR: 0, TPR: 0}})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
}
