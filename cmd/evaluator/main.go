package main

import (
	"encoding/csv"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"go.uber.org/zap"

	"classeval/internal/dataset"
	"classeval/internal/metrics"
	"classeval/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	regen := flag.Bool("regen", true, "Regenerate the synthetic spam dataset")
	n := flag.Int("n", 5000, "Number of synthetic messages")
	spamRate := flag.Float64("spam_rate", 0.25, "Fraction of spam messages")
	sep := flag.Float64("sep", 0.7, "Score separation between classes, 0..1")
	data := flag.String("data", "data/spam_scores.csv", "Input CSV path")
	format := flag.String("format", "spam", "Input format: spam|plain (plain = label,score columns)")
	threshold := flag.Float64("threshold", 0.5, "Classification threshold")
	thresholdAuto := flag.Bool("threshold_auto", true, "Pick the threshold that maximizes the objective")
	thresholdMetric := flag.String("threshold_metric", "f1", "Objective for the automatic threshold: f1|acc")
	thrMin := flag.Float64("threshold_min", 0.05, "Lower clamp for the automatic threshold")
	thrMax := flag.Float64("threshold_max", 0.95, "Upper clamp for the automatic threshold")
	rocCsv := flag.String("roc_out_csv", "data/roc_curve.csv", "ROC curve CSV output")
	rocImg := flag.String("roc_out_img", "cmd/api/static/roc_curve.png", "ROC curve PNG output")
	reportCsv := flag.String("report_out_csv", "data/report.csv", "Metrics report CSV output")
	flag.Parse()

	if *regen && *format == "spam" {
		logger.Info("Generating synthetic spam dataset",
			zap.Int("n", *n), zap.Float64("spam_rate", *spamRate),
			zap.Float64("sep", *sep), zap.String("out", *data))
		if err := dataset.GenerateSpamScores(*n, *spamRate, *sep, *data); err != nil {
			logger.Fatal("Failed to generate dataset", zap.Error(err))
		}
	}

	var recs []dataset.Record
	var err error
	if *format == "plain" {
		recs, err = dataset.Load(*data)
	} else {
		recs, err = dataset.LoadSpam(*data)
	}
	if err != nil {
		logger.Fatal("Failed to load dataset", zap.Error(err))
	}
	labels, scores := dataset.Split(recs)

	thrUsed := *threshold
	if *thresholdAuto {
		thr, best, err := metrics.BestThreshold(labels, scores, *thresholdMetric)
		if err != nil {
			logger.Fatal("Threshold selection failed", zap.Error(err))
		}
		logger.Info("Automatic threshold",
			zap.Float64("threshold", thr),
			zap.String("objective", *thresholdMetric),
			zap.Float64("value", best))
		thrUsed = thr
	}
	if thrUsed < *thrMin {
		thrUsed = *thrMin
	}
	if thrUsed > *thrMax {
		thrUsed = *thrMax
	}

	rep, err := metrics.NewReport(labels, scores, thrUsed)
	if err != nil {
		logger.Fatal("Evaluation failed", zap.Error(err))
	}
	logger.Info("Evaluation report",
		zap.Int("n", rep.Counts.Total()),
		zap.Int("tp", rep.Counts.TP), zap.Int("fp", rep.Counts.FP),
		zap.Int("tn", rep.Counts.TN), zap.Int("fn", rep.Counts.FN),
		zap.Float64("threshold", thrUsed),
		ratioField("accuracy", rep.Accuracy),
		ratioField("baseline_accuracy", rep.BaselineAccuracy),
		ratioField("precision", rep.Precision),
		ratioField("recall", rep.Recall),
		ratioField("specificity", rep.Specificity),
		ratioField("fpr", rep.FalsePositiveRate),
		ratioField("f1", rep.F1),
		ratioField("roc_auc", rep.AUC),
	)

	curve, rocErr := metrics.Roc(labels, scores)
	var degen *metrics.DegenerateInputError
	if errors.As(rocErr, &degen) {
		logger.Warn("ROC skipped", zap.Error(rocErr))
	} else if rocErr != nil {
		logger.Fatal("ROC failed", zap.Error(rocErr))
	} else {
		if err := writeRocCSV(*rocCsv, curve); err != nil {
			logger.Warn("Failed to save ROC CSV", zap.Error(err))
		}
		if err := plotRocPNG(*rocImg, curve, rep.AUC); err != nil {
			logger.Warn("Failed to save ROC PNG", zap.Error(err))
		} else {
			logger.Info("ROC curve rendered", zap.String("png", *rocImg), zap.String("csv", *rocCsv))
		}
	}

	if err := writeReportCSV(*reportCsv, rep); err != nil {
		logger.Warn("Failed to save report CSV", zap.Error(err))
	}
	fmt.Println("Threshold:", strconv.FormatFloat(thrUsed, 'f', 4, 64))
}

func ratioField(name string, v *float64) zap.Field {
	if v == nil {
		return zap.String(name, "undefined")
	}
	return zap.Float64(name, *v)
}

func ratioCell(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.6f", *v)
}

func writeRocCSV(path string, curve metrics.RocCurve) error {
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
	if err := w.Write([]string{"threshold", "fpr", "tpr"}); err != nil {
		return err
	}
	for _, p := range curve {
		rec := []string{
			strconv.FormatFloat(p.Threshold, 'g', -1, 64),
			fmt.Sprintf("%.6f", p.FPR),
			fmt.Sprintf("%.6f", p.TPR),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func writeReportCSV(path string, rep *metrics.Report) error {
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
	hdr := []string{"n", "tp", "fp", "tn", "fn", "threshold", "accuracy", "baseline_accuracy",
		"precision", "recall", "specificity", "fpr", "f1", "roc_auc"}
	if err := w.Write(hdr); err != nil {
		return err
	}
	rec := []string{
		strconv.Itoa(rep.Counts.Total()),
		strconv.Itoa(rep.Counts.TP), strconv.Itoa(rep.Counts.FP),
		strconv.Itoa(rep.Counts.TN), strconv.Itoa(rep.Counts.FN),
		ratioCell(rep.Threshold),
		ratioCell(rep.Accuracy), ratioCell(rep.BaselineAccuracy),
		ratioCell(rep.Precision), ratioCell(rep.Recall),
		ratioCell(rep.Specificity), ratioCell(rep.FalsePositiveRate),
		ratioCell(rep.F1), ratioCell(rep.AUC),
	}
	return w.Write(rec)
}

func plotRocPNG(path string, curve metrics.RocCurve, auc *float64) error {
	p := plot.New()
	p.Title.Text = "ROC Curve"
	if auc != nil {
		p.Title.Text = fmt.Sprintf("ROC Curve (AUC = %.4f)", *auc)
	}
	p.X.Label.Text = "False positive rate"
	p.Y.Label.Text = "True positive rate"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	pts := make(plotter.XYs, len(curve))
	for i, rp := range curve {
		pts[i].X = rp.FPR
		pts[i].Y = rp.TPR
	}
	chance := plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}}
	if err := plotutil.AddLinePoints(p, "ROC", pts, "Chance", chance); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return p.Save(6*vg.Inch, 6*vg.Inch, path)
}
