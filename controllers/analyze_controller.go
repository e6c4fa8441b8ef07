package controllers

import (
	"errors"
	"net/http"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logicheck/db"
	"logicheck/internal/metrics"
	"logicheck/models"
	"logicheck/services"
	"logicheck/utils"
)

// AnalyzeController serves the text analyzer and the essay clinic.
type AnalyzeController struct {
	analyzer *services.AnalyzerService
	progress db.ProgressStore
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func NewAnalyzeController(analyzer *services.AnalyzerService, progress db.ProgressStore, m *metrics.Metrics, log *zap.Logger) *AnalyzeController {
	return &AnalyzeController{analyzer: analyzer, progress: progress, metrics: m, log: log}
}

// AnalyzeText handles POST /api/analyze
func (ac *AnalyzeController) AnalyzeText(c *gin.Context) {
	var req models.AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Please provide valid text to analyze")
		return
	}

	result, err := ac.analyzer.AnalyzeText(c.Request.Context(), req.Text, req.APIKey)
	ac.observe(string(services.PromptAnalyze), err)
	if err != nil {
		ac.logFailure("analyzeText", err)
		utils.RespondError(c, err, "Failed to analyze text. Please try again.")
		return
	}

	ac.record(c, models.AnalysisKindText, req.Text)
	c.JSON(http.StatusOK, result)
}

// AnalyzeEssay handles POST /api/clinic/analyze-essay
func (ac *AnalyzeController) AnalyzeEssay(c *gin.Context) {
	var req models.AnalyzeEssayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Please provide valid essay text to analyze")
		return
	}

	result, err := ac.analyzer.AnalyzeEssay(c.Request.Context(), req.EssayText, req.APIKey)
	ac.observe(string(services.PromptEssay), err)
	if err != nil {
		ac.logFailure("analyzeEssay", err)
		utils.RespondError(c, err, "Failed to analyze essay. Please try again.")
		return
	}

	ac.record(c, models.AnalysisKindEssay, req.EssayText)
	c.JSON(http.StatusOK, result)
}

func (ac *AnalyzeController) observe(kind string, err error) {
	outcome := "ok"
	switch {
	case err == nil:
	case errors.Is(err, services.ErrValidation), errors.Is(err, services.ErrMissingAPIKey):
		outcome = "rejected"
	case errors.Is(err, services.ErrModelOutput):
		outcome = "bad_output"
	default:
		outcome = "error"
	}
	ac.metrics.AIRequest(kind, outcome)
}

func (ac *AnalyzeController) logFailure(op string, err error) {
	if errors.Is(err, services.ErrValidation) || errors.Is(err, services.ErrMissingAPIKey) {
		return
	}
	ac.log.Error("analysis failed", zap.String("op", op), zap.Error(err))
}

func (ac *AnalyzeController) record(c *gin.Context, kind, text string) {
	learnerID := utils.LearnerID(c)
	if learnerID == "" {
		return
	}
	if err := ac.progress.RecordAnalysis(c.Request.Context(), learnerID, kind, utf8.RuneCountInString(text)); err != nil {
		ac.log.Warn("failed to record analysis history", zap.String("learnerId", learnerID), zap.Error(err))
	}
}
