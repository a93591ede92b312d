// Package metrics evaluates binary classifiers: confusion-matrix tallies,
// derived ratios, threshold application and ROC/AUC. Labels and predictions
// are 0/1, scores are probabilities of the positive class in [0,1].
package metrics

// ConfusionCounts holds the four cells of a binary confusion matrix.
// It is a value: each tally or threshold produces a fresh one.
type ConfusionCounts struct {
	TP int `json:"tp"`
	FP int `json:"fp"`
	TN int `json:"tn"`
	FN int `json:"fn"`
}

func (c ConfusionCounts) Total() int { return c.TP + c.FP + c.TN + c.FN }

// Confusion tallies labels against predictions. Both vectors must be
// non-empty, equal length and 0/1-valued.
func Confusion(labels, preds []int) (ConfusionCounts, error) {
	var c ConfusionCounts
	if len(labels) == 0 {
		return c, validationf("empty label vector")
	}
	if len(labels) != len(preds) {
		return c, validationf("length mismatch: %d labels vs %d predictions", len(labels), len(preds))
	}
	for i := range labels {
		if labels[i] != 0 && labels[i] != 1 {
			return ConfusionCounts{}, validationf("label[%d] = %d, want 0 or 1", i, labels[i])
		}
		if preds[i] != 0 && preds[i] != 1 {
			return ConfusionCounts{}, validationf("prediction[%d] = %d, want 0 or 1", i, preds[i])
		}
		switch {
		case labels[i] == 1 && preds[i] == 1:
			c.TP++
		case labels[i] == 0 && preds[i] == 1:
			c.FP++
		case labels[i] == 0 && preds[i] == 0:
			c.TN++
		default:
			c.FN++
		}
	}
	return c, nil
}

func (c ConfusionCounts) Accuracy() (float64, error) {
	n := c.Total()
	if n == 0 {
		return 0, &UndefinedMetricError{Metric: "accuracy", Denom: "tp+fp+tn+fn"}
	}
	return float64(c.TP+c.TN) / float64(n), nil
}

// BaselineAccuracy is the accuracy of always predicting the majority class.
func (c ConfusionCounts) BaselineAccuracy() (float64, error) {
	n := c.Total()
	if n == 0 {
		return 0, &UndefinedMetricError{Metric: "baseline accuracy", Denom: "tp+fp+tn+fn"}
	}
	pos := c.TP + c.FN
	neg := c.TN + c.FP
	if pos > neg {
		return float64(pos) / float64(n), nil
	}
	return float64(neg) / float64(n), nil
}

func (c ConfusionCounts) Precision() (float64, error) {
	if c.TP+c.FP == 0 {
		return 0, &UndefinedMetricError{Metric: "precision", Denom: "tp+fp"}
	}
	return float64(c.TP) / float64(c.TP+c.FP), nil
}

// Recall is the true positive rate (sensitivity).
func (c ConfusionCounts) Recall() (float64, error) {
	if c.TP+c.FN == 0 {
		return 0, &UndefinedMetricError{Metric: "recall", Denom: "tp+fn"}
	}
	return float64(c.TP) / float64(c.TP+c.FN), nil
}

// Specificity is the true negative rate.
func (c ConfusionCounts) Specificity() (float64, error) {
	if c.TN+c.FP == 0 {
		return 0, &UndefinedMetricError{Metric: "specificity", Denom: "tn+fp"}
	}
	return float64(c.TN) / float64(c.TN+c.FP), nil
}

func (c ConfusionCounts) FalsePositiveRate() (float64, error) {
	if c.TN+c.FP == 0 {
		return 0, &UndefinedMetricError{Metric: "false positive rate", Denom: "tn+fp"}
	}
	return float64(c.FP) / float64(c.TN+c.FP), nil
}

// F1 is the harmonic mean of precision and recall. An undefined precision
// or recall propagates; both zero yields its own undefined error.
func (c ConfusionCounts) F1() (float64, error) {
	prec, err := c.Precision()
	if err != nil {
		return 0, err
	}
	rec, err := c.Recall()
	if err != nil {
		return 0, err
	}
	if prec+rec == 0 {
		return 0, &UndefinedMetricError{Metric: "f1", Denom: "precision+recall"}
	}
	return 2 * prec * rec / (prec + rec), nil
}
