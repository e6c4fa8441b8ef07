package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logicheck/db"
	"logicheck/internal/metrics"
	"logicheck/models"
	"logicheck/services"
	"logicheck/utils"
)

// DojoController serves the sparring and bias practice modes.
type DojoController struct {
	sparring *services.SparringService
	bias     *services.BiasService
	progress db.ProgressStore
	metrics  *metrics.Metrics
	log      *zap.Logger
}

func NewDojoController(sparring *services.SparringService, bias *services.BiasService, progress db.ProgressStore, m *metrics.Metrics, log *zap.Logger) *DojoController {
	return &DojoController{sparring: sparring, bias: bias, progress: progress, metrics: m, log: log}
}

// GetSparringChallenge handles GET /api/dojo/sparring-challenge
func (dc *DojoController) GetSparringChallenge(c *gin.Context) {
	challenge, err := dc.sparring.NextChallenge()
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch sparring challenge")
		return
	}
	dc.metrics.ChallengeIssued("sparring")
	c.JSON(http.StatusOK, challenge)
}

// VerifyAnswer handles POST /api/dojo/verify-answer
func (dc *DojoController) VerifyAnswer(c *gin.Context) {
	var req models.VerifyAnswerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Missing required fields")
		return
	}

	result, err := dc.sparring.VerifyAnswer(req.Scenario, req.UserAnswer)
	if err != nil {
		utils.RespondError(c, err, "Failed to verify answer")
		return
	}
	dc.metrics.AnswerGraded(result.IsCorrect)

	if learnerID := utils.LearnerID(c); learnerID != "" {
		if err := dc.progress.RecordSparring(c.Request.Context(), learnerID, result.CorrectAnswer, result.IsCorrect); err != nil {
			dc.log.Warn("failed to record sparring progress", zap.String("learnerId", learnerID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, result)
}

// GetBiasChallenge handles GET /api/dojo/bias-challenge
func (dc *DojoController) GetBiasChallenge(c *gin.Context) {
	challenge, err := dc.bias.NextChallenge()
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch bias challenge")
		return
	}
	dc.metrics.ChallengeIssued("bias")
	c.JSON(http.StatusOK, challenge)
}

// AnalyzeBiasHighlights handles POST /api/dojo/analyze-bias-highlights
func (dc *DojoController) AnalyzeBiasHighlights(c *gin.Context) {
	var sub models.BiasHighlightSubmission
	if err := c.ShouldBindJSON(&sub); err != nil {
		utils.BadRequest(c, "Missing highlights")
		return
	}

	feedback, err := dc.bias.ScoreHighlights(sub)
	if err != nil {
		utils.RespondError(c, err, "Failed to analyze bias highlights")
		return
	}
	dc.metrics.BiasScored(feedback.OverallScore)

	if learnerID := utils.LearnerID(c); learnerID != "" {
		if err := dc.progress.RecordBias(c.Request.Context(), learnerID, feedback.OverallScore); err != nil {
			dc.log.Warn("failed to record bias progress", zap.String("learnerId", learnerID), zap.Error(err))
		}
	}

	c.JSON(http.StatusOK, feedback)
}

// GetProgress handles GET /api/dojo/progress
func (dc *DojoController) GetProgress(c *gin.Context) {
	learnerID := utils.LearnerID(c)
	if learnerID == "" {
		utils.BadRequest(c, "Missing "+utils.LearnerHeader+" header")
		return
	}

	progress, err := dc.progress.Progress(c.Request.Context(), learnerID)
	if err != nil {
		utils.RespondError(c, err, "Failed to fetch progress")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"learnerId":       progress.LearnerID,
		"dojoStats":       progress.DojoStats,
		"accuracy":        progress.DojoStats.Accuracy(),
		"analysisHistory": progress.AnalysisHistory,
		"lastActive":      progress.LastActive,
	})
}
