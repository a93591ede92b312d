package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"classeval/internal/dataset"
	"classeval/internal/metrics"
)

// analyzer sweeps every distinct score threshold and charts how accuracy,
// precision, recall and F1 trade off as the cutoff moves.
func main() {
	dataPath := flag.String("data", "data/spam_scores.csv", "Input CSV")
	format := flag.String("format", "spam", "Input format: spam|plain")
	outImg := flag.String("out_img", "cmd/api/static/threshold_sweep.png", "Output PNG")
	outCsv := flag.String("out_csv", "data/threshold_sweep.csv", "Output CSV")
	flag.Parse()

	var recs []dataset.Record
	var err error
	if *format == "plain" {
		recs, err = dataset.Load(*dataPath)
	} else {
		recs, err = dataset.LoadSpam(*dataPath)
	}
	if err != nil {
		fmt.Println("Failed to load dataset:", err)
		return
	}
	labels, scores := dataset.Split(recs)

	points, err := metrics.Sweep(labels, scores)
	if err != nil {
		fmt.Println("Sweep failed:", err)
		return
	}

	thrs := make([]float64, 0, len(points))
	accs := make([]float64, 0, len(points))
	precs := make([]float64, 0, len(points))
	recalls := make([]float64, 0, len(points))
	f1s := make([]float64, 0, len(points))
	for _, pt := range points {
		if math.IsInf(pt.Threshold, 1) {
			continue
		}
		acc, _ := pt.Counts.Accuracy()
		prec, precErr := pt.Counts.Precision()
		rec, recErr := pt.Counts.Recall()
		f1, f1Err := pt.Counts.F1()
		thrs = append(thrs, pt.Threshold)
		accs = append(accs, acc)
		precs = append(precs, nanIf(prec, precErr))
		recalls = append(recalls, nanIf(rec, recErr))
		f1s = append(f1s, nanIf(f1, f1Err))
		fmt.Printf("thr=%.4f | acc=%.3f | prec=%s | rec=%s | f1=%s\n",
			pt.Threshold, acc, cell(prec, precErr), cell(rec, recErr), cell(f1, f1Err))
	}

	if err := writeCSV(*outCsv, thrs, accs, precs, recalls, f1s); err != nil {
		fmt.Println("Failed to save CSV:", err)
	} else {
		fmt.Println("Sweep saved to:", *outCsv)
	}
	if err := plotSweep(*outImg, thrs, accs, precs, recalls, f1s); err != nil {
		fmt.Println("Failed to save PNG:", err)
	} else {
		fmt.Println("Chart saved to:", *outImg)
	}
}

func nanIf(v float64, err error) float64 {
	if err != nil {
		return math.NaN()
	}
	return v
}

func cell(v float64, err error) string {
	if err != nil {
		return "undef"
	}
	return fmt.Sprintf("%.3f", v)
}

func writeCSV(path string, thrs, accs, precs, recalls, f1s []float64) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err := w.Write([]string{"threshold", "accuracy", "precision", "recall", "f1"}); err != nil {
		return err
	}
	fmtCell := func(v float64) string {
		if math.IsNaN(v) {
			return ""
		}
		return strconv.FormatFloat(v, 'f', 6, 64)
	}
	for i := range thrs {
		rec := []string{fmtCell(thrs[i]), fmtCell(accs[i]), fmtCell(precs[i]), fmtCell(recalls[i]), fmtCell(f1s[i])}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func plotSweep(path string, thrs, accs, precs, recalls, f1s []float64) error {
	p := plot.New()
	p.Title.Text = "Threshold Sweep"
	p.X.Label.Text = "Threshold"
	p.Y.Label.Text = "Metric"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	toXY := func(ys []float64) plotter.XYs {
		pts := make(plotter.XYs, 0, len(thrs))
		for i := range thrs {
			if math.IsNaN(ys[i]) {
				continue
			}
			pts = append(pts, plotter.XY{X: thrs[i], Y: ys[i]})
		}
		return pts
	}
	err := plotutil.AddLinePoints(p,
		"Accuracy", toXY(accs),
		"Precision", toXY(precs),
		"Recall", toXY(recalls),
		"F1", toXY(f1s),
	)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(8*vg.Inch, 4*vg.Inch, path)
}
