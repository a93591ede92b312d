package metrics

import (
	"math"
	"sort"
)

// RocPoint is one operating point of the ROC curve: the false and true
// positive rates obtained when scores >= Threshold predict positive.
type RocPoint struct {
	Threshold float64 `json:"threshold"`
	FPR       float64 `json:"fpr"`
	TPR       float64 `json:"tpr"`
}

// RocCurve is ordered by ascending FPR (ties by ascending TPR). The first
// point is the classify-all-negative extreme (0,0) tagged +Inf; the last is
// the classify-all-positive extreme (1,1) at the minimum score.
type RocCurve []RocPoint

type scoredLabel struct {
	score float64
	label int
}

// sortedByScore validates (labels, scores) and returns the pairs sorted by
// descending score together with the class totals. Shared by Roc and Sweep
// so the whole threshold family costs one O(N log N) sort.
func sortedByScore(labels []int, scores []float64) ([]scoredLabel, int, int, error) {
	if len(labels) == 0 {
		return nil, 0, 0, validationf("empty label vector")
	}
	if len(labels) != len(scores) {
		return nil, 0, 0, validationf("length mismatch: %d labels vs %d scores", len(labels), len(scores))
	}
	pos, neg, err := checkLabels(labels)
	if err != nil {
		return nil, 0, 0, err
	}
	if err := checkScores(scores); err != nil {
		return nil, 0, 0, err
	}
	pairs := make([]scoredLabel, len(labels))
	for i := range labels {
		pairs[i] = scoredLabel{score: scores[i], label: labels[i]}
	}
	sort.Slice(pairs, func(i, j int) bool { return pairs[i].score > pairs[j].score })
	return pairs, pos, neg, nil
}

// Roc builds the full ROC curve in a single pass over the scores sorted
// descending, emitting one point per distinct score value. Labels with only
// one class present have no curve and fail with DegenerateInputError.
func Roc(labels []int, scores []float64) (RocCurve, error) {
	pairs, pos, neg, err := sortedByScore(labels, scores)
	if err != nil {
		return nil, err
	}
	if pos == 0 {
		return nil, &DegenerateInputError{Msg: "no positive labels, TPR undefined at every threshold"}
	}
	if neg == 0 {
		return nil, &DegenerateInputError{Msg: "no negative labels, FPR undefined at every threshold"}
	}
	curve := make(RocCurve, 0, len(pairs)+1)
	curve = append(curve, RocPoint{Threshold: math.Inf(1)})
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
		curve = append(curve, RocPoint{
			Threshold: s,
			FPR:       float64(fp) / float64(neg),
			TPR:       float64(tp) / float64(pos),
		})
	}
	return curve, nil
}

// AUC integrates TPR over FPR with the trapezoid rule. The curve must hold
// at least the two extreme points.
func AUC(curve RocCurve) (float64, error) {
	if len(curve) < 2 {
		return 0, validationf("roc curve with %d points, want at least 2", len(curve))
	}
	var auc float64
	for i := 1; i < len(curve); i++ {
		auc += (curve[i].FPR - curve[i-1].FPR) * (curve[i].TPR + curve[i-1].TPR) / 2
	}
	return auc, nil
}
