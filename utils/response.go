package utils

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"logicheck/db"
	"logicheck/services"
)

// LearnerHeader identifies a learner for progress tracking. It is optional
// on every endpoint except the progress lookup.
const LearnerHeader = "X-Learner-Id"

const maxLearnerIDLength = 128

// ErrorBody is the envelope every failed request returns.
type ErrorBody struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details string `json:"details,omitempty"`
}

// Error writes the error envelope and aborts the chain.
func Error(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorBody{Error: ErrorDetail{Message: message, Status: status}})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, "Too many requests. Please slow down.")
}

// RespondError maps service errors onto HTTP statuses. fallback is the
// message for unexpected failures; the cause is attached only in debug mode.
func RespondError(c *gin.Context, err error, fallback string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		BadRequest(c, clientMessage(err, services.ErrValidation))
	case errors.Is(err, services.ErrNotFound):
		NotFound(c, clientMessage(err, services.ErrNotFound))
	case errors.Is(err, db.ErrLearnerNotFound):
		NotFound(c, "Learner not found")
	case errors.Is(err, services.ErrMissingAPIKey):
		Error(c, http.StatusUnauthorized, "API key required. Please configure your Gemini API key in Settings.")
	case errors.Is(err, db.ErrProgressUnavailable):
		Error(c, http.StatusServiceUnavailable, "Progress tracking is not available")
	default:
		body := ErrorBody{Error: ErrorDetail{Message: fallback, Status: http.StatusInternalServerError}}
		if gin.Mode() == gin.DebugMode {
			body.Error.Details = err.Error()
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	}
}

// clientMessage strips the sentinel prefix added by "%w: message" wrapping.
func clientMessage(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" || msg == sentinel.Error() {
		return "Invalid request"
	}
	return msg
}

// LearnerID returns the trimmed learner header, or "" when absent or unusable.
func LearnerID(c *gin.Context) string {
	id := strings.TrimSpace(c.GetHeader(LearnerHeader))
	if len(id) > maxLearnerIDLength {
		return ""
	}
	return id
}
