package dataset

// Record pairs a ground-truth label with the scorer's estimated probability
// that the message is spam.
type Record struct {
	Label int     `json:"label"`
	Score float64 `json:"score"`
}

// Split unzips records into the label and score vectors the metrics
// package consumes.
func Split(recs []Record) ([]int, []float64) {
	labels := make([]int, len(recs))
	scores := make([]float64, len(recs))
	for i, r := range recs {
		labels[i] = r.Label
		scores[i] = r.Score
	}
	return labels, scores
}
