package metrics

import "fmt"

// ValidationError reports structurally invalid input: mismatched vector
// lengths, empty vectors, or values outside the allowed range.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return "metrics: " + e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// UndefinedMetricError reports a ratio whose denominator is zero. A metric
// that is undefined is distinct from a metric that computed to zero.
type UndefinedMetricError struct {
	Metric string
	Denom  string
}

func (e *UndefinedMetricError) Error() string {
	return fmt.Sprintf("metrics: %s undefined (%s = 0)", e.Metric, e.Denom)
}

// DegenerateInputError reports a label vector with only one class present,
// for which no ROC curve exists.
type DegenerateInputError struct {
	Msg string
}

func (e *DegenerateInputError) Error() string { return "metrics: " + e.Msg }
