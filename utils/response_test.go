package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logicheck/db"
	"logicheck/services"
)

func respond(t *testing.T, err error) (int, ErrorDetail) {
	t.Helper()
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	RespondError(c, err, "Failed to do the thing")

	var body ErrorBody
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, w.Code, body.Error.Status)
	return w.Code, body.Error
}

func TestRespondError_Mapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", fmt.Errorf("%w: Missing required fields", services.ErrValidation), http.StatusBadRequest, "Missing required fields"},
		{"not found", fmt.Errorf("%w: Challenge not found", services.ErrNotFound), http.StatusNotFound, "Challenge not found"},
		{"unknown learner", db.ErrLearnerNotFound, http.StatusNotFound, "Learner not found"},
		{"missing key", services.ErrMissingAPIKey, http.StatusUnauthorized, "API key required. Please configure your Gemini API key in Settings."},
		{"no database", db.ErrProgressUnavailable, http.StatusServiceUnavailable, "Progress tracking is not available"},
		{"anything else", errors.New("boom"), http.StatusInternalServerError, "Failed to do the thing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, detail := respond(t, tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, detail.Message)
			assert.Empty(t, detail.Details, "details only in debug mode")
		})
	}
}

func TestRespondError_DebugDetails(t *testing.T) {
	gin.SetMode(gin.DebugMode)
	defer gin.SetMode(gin.TestMode)

	_, detail := respond(t, errors.New("model timed out"))
	assert.Equal(t, "model timed out", detail.Details)
}

func TestLearnerID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, LearnerID(c))

	c.Request.Header.Set(LearnerHeader, "  learner-7 ")
	assert.Equal(t, "learner-7", LearnerID(c))

	c.Request.Header.Set(LearnerHeader, strings.Repeat("x", 200))
	assert.Empty(t, LearnerID(c))
}
