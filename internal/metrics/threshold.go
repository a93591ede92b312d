package metrics

import "math"

// ApplyThreshold maps scores to 0/1 predictions. The tie policy is
// score >= t predicts positive, so t=0 predicts everything positive.
// t must lie in [0,1] and every score must lie in [0,1].
func ApplyThreshold(scores []float64, t float64) ([]int, error) {
	if len(scores) == 0 {
		return nil, validationf("empty score vector")
	}
	if math.IsNaN(t) || t < 0 || t > 1 {
		return nil, validationf("threshold %v outside [0,1]", t)
	}
	if err := checkScores(scores); err != nil {
		return nil, err
	}
	out := make([]int, len(scores))
	for i, s := range scores {
		if s >= t {
			out[i] = 1
		}
	}
	return out, nil
}

func checkScores(scores []float64) error {
	for i, s := range scores {
		if math.IsNaN(s) || s < 0 || s > 1 {
			return validationf("score[%d] = %v outside [0,1]", i, s)
		}
	}
	return nil
}

func checkLabels(labels []int) (pos, neg int, err error) {
	for i, y := range labels {
		switch y {
		case 1:
			pos++
		case 0:
			neg++
		default:
			return 0, 0, validationf("label[%d] = %d, want 0 or 1", i, y)
		}
	}
	return pos, neg, nil
}
