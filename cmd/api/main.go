package main

import (
	"encoding/csv"
	"errors"
	"net/http"
	"os"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"classeval/internal/metrics"
	"classeval/pkg/utils"
)

func main() {
	logger := utils.Logger()
	defer logger.Sync()

	r := gin.Default()

	r.Static("/static", "cmd/api/static")
	r.GET("/dashboard", func(c *gin.Context) {
		c.File("cmd/api/static/index.html")
	})
	r.GET("/dashboard/data", dashboardData)
	r.GET("/dashboard/metrics", dashboardMetrics)

	api := r.Group("/")
	api.Use(apiKeyMiddleware)
	api.POST("/evaluate", handleEvaluate)
	api.POST("/roc", handleRoc)
	api.POST("/threshold", handleThreshold)
	api.POST("/sweep", handleSweep)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logger.Info("Serving evaluation API", zap.String("port", port))
	r.Run(":" + port)
}

func apiKeyMiddleware(c *gin.Context) {
	key := os.Getenv("API_KEY")
	if key == "" {
		c.Next()
		return
	}
	got := c.GetHeader("X-API-Key")
	if got != key {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Next()
}

// status maps engine errors to HTTP codes: malformed input is the caller's
// fault, undefined/degenerate metrics are unprocessable for these labels.
func status(err error) int {
	var v *metrics.ValidationError
	if errors.As(err, &v) {
		return http.StatusBadRequest
	}
	var u *metrics.UndefinedMetricError
	var d *metrics.DegenerateInputError
	if errors.As(err, &u) || errors.As(err, &d) {
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

type evaluateReq struct {
	Labels      []int `json:"labels" binding:"required,min=1,dive,min=0,max=1"`
	Predictions []int `json:"predictions" binding:"required,min=1,dive,min=0,max=1"`
}

func handleEvaluate(c *gin.Context) {
	var req evaluateReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	counts, err := metrics.Confusion(req.Labels, req.Predictions)
	if err != nil {
		c.JSON(status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, metrics.ReportFromCounts(counts))
}

type rocReq struct {
	Labels []int     `json:"labels" binding:"required,min=1,dive,min=0,max=1"`
	Scores []float64 `json:"scores" binding:"required,min=1,dive,gte=0,lte=1"`
}

func handleRoc(c *gin.Context) {
	var req rocReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	curve, err := metrics.Roc(req.Labels, req.Scores)
	if err != nil {
		c.JSON(status(err), gin.H{"error": err.Error()})
		return
	}
	auc, err := metrics.AUC(curve)
	if err != nil {
		c.JSON(status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"curve": curve, "auc": auc})
}

type thresholdReq struct {
	Labels    []int     `json:"labels" binding:"required,min=1,dive,min=0,max=1"`
	Scores    []float64 `json:"scores" binding:"required,min=1,dive,gte=0,lte=1"`
	Threshold *float64  `json:"threshold" binding:"required,gte=0,lte=1"`
}

func handleThreshold(c *gin.Context) {
	var req thresholdReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	preds, err := metrics.ApplyThreshold(req.Scores, *req.Threshold)
	if err != nil {
		c.JSON(status(err), gin.H{"error": err.Error()})
		return
	}
	rep, err := metrics.NewReport(req.Labels, req.Scores, *req.Threshold)
	if err != nil {
		c.JSON(status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"predictions": preds, "report": rep})
}

type sweepReq struct {
	Labels    []int     `json:"labels" binding:"required,min=1,dive,min=0,max=1"`
	Scores    []float64 `json:"scores" binding:"required,min=1,dive,gte=0,lte=1"`
	Objective string    `json:"objective" binding:"omitempty,oneof=f1 acc"`
}

func handleSweep(c *gin.Context) {
	var req sweepReq
	if err := c.BindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	objective := req.Objective
	if objective == "" {
		objective = metrics.ObjectiveF1
	}
	thr, best, err := metrics.BestThreshold(req.Labels, req.Scores, objective)
	if err != nil {
		c.JSON(status(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"threshold": thr, "objective": objective, "value": best})
}

func confidenceBand(score float64) string {
	switch {
	case score >= 0.95:
		return "very_high"
	case score >= 0.7:
		return "high"
	case score >= 0.5:
		return "medium"
	default:
		return "low"
	}
}

func dashboardData(c *gin.Context) {
	path := "data/spam_scores.csv"
	f, err := os.Open(path)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"items": []gin.H{}})
		return
	}
	defer f.Close()
	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusOK, gin.H{"items": []gin.H{}})
		return
	}
	max := 200
	items := make([]gin.H, 0, max)
	for i := 1; i < len(rows) && len(items) < max; i++ {
		row := rows[i]
		if len(row) < 3 {
			continue
		}
		score, _ := strconv.ParseFloat(row[len(row)-2], 64)
		label, _ := strconv.Atoi(row[len(row)-1])
		items = append(items, gin.H{
			"message_id": row[0],
			"score":      score,
			"label":      label,
			"confidence": confidenceBand(score),
		})
	}
	if q := c.Query("confidence"); q != "" {
		filt := make([]gin.H, 0, len(items))
		for _, it := range items {
			if it["confidence"] == q {
				filt = append(filt, it)
			}
		}
		items = filt
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func dashboardMetrics(c *gin.Context) {
	path := "data/report.csv"
	f, err := os.Open(path)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"metrics": gin.H{}})
		return
	}
	defer f.Close()
	r := csv.NewReader(f)
	rows, err := r.ReadAll()
	if err != nil || len(rows) < 2 {
		c.JSON(http.StatusOK, gin.H{"metrics": gin.H{}})
		return
	}
	hdr := rows[0]
	last := rows[len(rows)-1]
	out := gin.H{}
	for i := range hdr {
		if i < len(last) {
			out[hdr[i]] = last[i]
		}
	}
	c.JSON(http.StatusOK, gin.H{"metrics": out})
}
