package metrics

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	labels := []int{1, 1, 0, 0, 1, 0}
	scores := []float64{0.9, 0.4, 0.3, 0.8, 0.7, 0.2}

	rep, err := NewReport(labels, scores, 0.5)
	require.NoError(t, err)

	assert.Equal(t, ConfusionCounts{TP: 2, FP: 1, TN: 2, FN: 1}, rep.Counts)
	require.NotNil(t, rep.Accuracy)
	assert.InDelta(t, 4.0/6.0, *rep.Accuracy, 1e-12)
	require.NotNil(t, rep.F1)
	assert.InDelta(t, 2.0/3.0, *rep.F1, 1e-12)
	require.NotNil(t, rep.Threshold)
	assert.Equal(t, 0.5, *rep.Threshold)
	require.NotNil(t, rep.AUC)
}

func TestNewReportSingleClassSkipsAUC(t *testing.T) {
	rep, err := NewReport([]int{1, 1, 1}, []float64{0.9, 0.8, 0.2}, 0.5)
	require.NoError(t, err)
	assert.Nil(t, rep.AUC)
	require.NotNil(t, rep.Recall)
	assert.InDelta(t, 2.0/3.0, *rep.Recall, 1e-12)
	// No negatives: specificity and FPR stay undefined.
	assert.Nil(t, rep.Specificity)
	assert.Nil(t, rep.FalsePositiveRate)
}

func TestNewReportValidation(t *testing.T) {
	_, err := NewReport([]int{1, 0}, []float64{0.5}, 0.5)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	_, err = NewReport([]int{1, 0}, []float64{0.5, 0.4}, 1.5)
	require.ErrorAs(t, err, &verr)
}

// Undefined ratios serialize as null so API callers can pick their policy.
func TestReportJSONNulls(t *testing.T) {
	c, err := Confusion([]int{1, 1}, []int{1, 1})
	require.NoError(t, err)
	raw, err := json.Marshal(ReportFromCounts(c))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Nil(t, decoded["specificity"])
	assert.Nil(t, decoded["false_positive_rate"])
	assert.Equal(t, 1.0, decoded["accuracy"])
}
