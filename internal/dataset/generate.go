package dataset

import (
	"encoding/csv"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
)

var triggerWords = []string{"free", "money", "winner", "urgent", "offer"}
var triggerWeights = []float64{0.30, 0.25, 0.35, 0.20, 0.15}

// GenerateSpamScores writes a synthetic spam word-count dataset to outPath:
// per-message counts of the trigger words, the rule score and the label.
// spamRate is the fraction of spam messages; sep in [0,1] controls how well
// the score separates the classes (1 = clean separation, 0 = mostly noise).
func GenerateSpamScores(n int, spamRate, sep float64, outPath string) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	header := []string{"message_id"}
	header = append(header, triggerWords...)
	header = append(header, "total_words", "score", "label")
	if err := w.Write(header); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		spam := 0
		if rand.Float64() < spamRate {
			spam = 1
		}
		totalWords := 40 + rand.Intn(160)
		counts := make([]int, len(triggerWords))
		for j := range counts {
			if spam == 1 {
				counts[j] = rand.Intn(4)
				if rand.Float64() < 0.5 {
					counts[j] += 1 + rand.Intn(3)
				}
			} else if rand.Float64() < 0.1 {
				counts[j] = 1
			}
		}
		score := ruleScore(counts, totalWords)
		// Shrink toward 0.5 and jitter as separation drops.
		score = 0.5 + sep*(score-0.5) + (1-sep)*0.4*(rand.Float64()-0.5)
		if score < 0 {
			score = 0
		}
		if score > 1 {
			score = 1
		}

		rec := []string{"M" + strconv.Itoa(1000000+i)}
		for _, c := range counts {
			rec = append(rec, strconv.Itoa(c))
		}
		rec = append(rec,
			strconv.Itoa(totalWords),
			strconv.FormatFloat(score, 'f', 6, 64),
			strconv.Itoa(spam),
		)
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// ruleScore is a fixed additive scorer over the trigger-word counts, the
// same shape as a hand-written spam filter: no fitting involved.
func ruleScore(counts []int, totalWords int) float64 {
	s := 0.05
	for j, c := range counts {
		if c > 0 {
			s += triggerWeights[j]
		}
		if c >= 3 {
			s += 0.1
		}
	}
	hits := 0
	for _, c := range counts {
		hits += c
	}
	if totalWords > 0 && float64(hits)/float64(totalWords) > 0.05 {
		s += 0.2
	}
	if s > 0.95 {
		s = 0.95
	}
	return s
}
