package metrics

import "errors"

// Report aggregates the confusion counts and every derived ratio for one
// operating point. Undefined ratios are nil so they serialize as null and
// the caller decides how to surface them.
type Report struct {
	Counts            ConfusionCounts `json:"counts"`
	Threshold         *float64        `json:"threshold,omitempty"`
	Accuracy          *float64        `json:"accuracy"`
	BaselineAccuracy  *float64        `json:"baseline_accuracy"`
	Precision         *float64        `json:"precision"`
	Recall            *float64        `json:"recall"`
	Specificity       *float64        `json:"specificity"`
	FalsePositiveRate *float64        `json:"false_positive_rate"`
	F1                *float64        `json:"f1"`
	AUC               *float64        `json:"auc,omitempty"`
}

// ratio flattens a metric method into a nil-able value. Only the undefined
// condition is absorbed; anything else is not expected from the methods.
func ratio(f func() (float64, error)) *float64 {
	v, err := f()
	var undef *UndefinedMetricError
	if errors.As(err, &undef) {
		return nil
	}
	return &v
}

// ReportFromCounts derives every ratio metric from an existing tally.
func ReportFromCounts(c ConfusionCounts) *Report {
	return &Report{
		Counts:            c,
		Accuracy:          ratio(c.Accuracy),
		BaselineAccuracy:  ratio(c.BaselineAccuracy),
		Precision:         ratio(c.Precision),
		Recall:            ratio(c.Recall),
		Specificity:       ratio(c.Specificity),
		FalsePositiveRate: ratio(c.FalsePositiveRate),
		F1:                ratio(c.F1),
	}
}

// NewReport thresholds the scores at t, tallies against labels and fills in
// AUC when the label vector carries both classes. A single-class label
// vector still yields the threshold metrics, with AUC left null.
func NewReport(labels []int, scores []float64, t float64) (*Report, error) {
	preds, err := ApplyThreshold(scores, t)
	if err != nil {
		return nil, err
	}
	c, err := Confusion(labels, preds)
	if err != nil {
		return nil, err
	}
	rep := ReportFromCounts(c)
	rep.Threshold = &t

	curve, err := Roc(labels, scores)
	var degen *DegenerateInputError
	if errors.As(err, &degen) {
		return rep, nil
	}
	if err != nil {
		return nil, err
	}
	auc, err := AUC(curve)
	if err != nil {
		return nil, err
	}
	rep.AUC = &auc
	return rep, nil
}
