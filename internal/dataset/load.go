package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
)

// Load reads a plain two-column label,score CSV, the minimal evaluation
// input. A non-numeric first row is treated as a header.
func Load(path string) ([]Record, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	recs := make([]Record, 0, len(rows))
	for i, row := range rows {
		if len(row) < 2 {
			return nil, fmt.Errorf("%s row %d: want 2 columns, got %d", path, i+1, len(row))
		}
		label, err := parseLabel(row[0])
		if err != nil {
			if i == 0 {
				continue // header
			}
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		score, err := parseScore(row[1])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		recs = append(recs, Record{Label: label, Score: score})
	}
	if len(recs) == 0 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	return recs, nil
}

// LoadSpam reads the CSV layout written by GenerateSpamScores, where the
// score and label are the last two columns.
func LoadSpam(path string) ([]Record, error) {
	rows, err := readAll(path)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, fmt.Errorf("%s: no data rows", path)
	}
	recs := make([]Record, 0, len(rows)-1)
	for i := 1; i < len(rows); i++ {
		row := rows[i]
		if len(row) < 3 {
			return nil, fmt.Errorf("%s row %d: want at least 3 columns, got %d", path, i+1, len(row))
		}
		score, err := parseScore(row[len(row)-2])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		label, err := parseLabel(row[len(row)-1])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+1, err)
		}
		recs = append(recs, Record{Label: label, Score: score})
	}
	return recs, nil
}

func readAll(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	r := csv.NewReader(f)
	return r.ReadAll()
}

func parseLabel(s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("label %q: %w", s, err)
	}
	if v != 0 && v != 1 {
		return 0, fmt.Errorf("label %d: want 0 or 1", v)
	}
	return v, nil
}

func parseScore(s string) (float64, error) {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("score %q: %w", s, err)
	}
	if v < 0 || v > 1 {
		return 0, fmt.Errorf("score %g: want [0,1]", v)
	}
	return v, nil
}
