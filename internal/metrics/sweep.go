package metrics

import "math"

// Objectives for BestThreshold.
const (
	ObjectiveF1  = "f1"
	ObjectiveAcc = "acc"
)

// ThresholdPoint is the confusion matrix obtained at one candidate cutoff.
type ThresholdPoint struct {
	Threshold float64
	Counts    ConfusionCounts
}

// Sweep evaluates every distinct score as a cutoff in one sorted pass and
// returns the confusion counts at each, ordered by descending threshold.
// The leading point is the classify-all-negative extreme tagged +Inf.
func Sweep(labels []int, scores []float64) ([]ThresholdPoint, error) {
	pairs, pos, neg, err := sortedByScore(labels, scores)
	if err != nil {
		return nil, err
	}
	points := make([]ThresholdPoint, 0, len(pairs)+1)
	points = append(points, ThresholdPoint{
		Threshold: math.Inf(1),
		Counts:    ConfusionCounts{TN: neg, FN: pos},
	})
	tp, fp := 0, 0
	for i := 0; i < len(pairs); {
		s := pairs[i].score
		for i < len(pairs) && pairs[i].score == s {
			if pairs[i].label == 1 {
				tp++
			} else {
				fp++
			}
			i++
		}
		points = append(points, ThresholdPoint{
			Threshold: s,
			Counts:    ConfusionCounts{TP: tp, FP: fp, TN: neg - fp, FN: pos - tp},
		})
	}
	return points, nil
}

// BestThreshold picks the cutoff maximizing the objective (ObjectiveF1 or
// ObjectiveAcc) over the distinct scores. Ties keep the higher threshold.
// If the objective is undefined at every cutoff, it fails with
// DegenerateInputError.
func BestThreshold(labels []int, scores []float64, objective string) (thr, best float64, err error) {
	if objective != ObjectiveF1 && objective != ObjectiveAcc {
		return 0, 0, validationf("unknown objective %q", objective)
	}
	points, err := Sweep(labels, scores)
	if err != nil {
		return 0, 0, err
	}
	obj := ConfusionCounts.F1
	if objective == ObjectiveAcc {
		obj = ConfusionCounts.Accuracy
	}
	best = -1
	// The classify-all-negative extreme is realizable as t=1 whenever no
	// score reaches 1, so it competes too.
	if points[1].Threshold < 1 {
		if v, verr := obj(points[0].Counts); verr == nil {
			best = v
			thr = 1
		}
	}
	for _, p := range points[1:] {
		v, verr := obj(p.Counts)
		if verr != nil {
			continue
		}
		if v > best {
			best = v
			thr = p.Threshold
		}
	}
	if best < 0 {
		return 0, 0, &DegenerateInputError{Msg: objective + " undefined at every threshold"}
	}
	return thr, best, nil
}
