package routes

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"logicheck/catalog"
	"logicheck/controllers"
	"logicheck/db"
	"logicheck/internal/cache"
	"logicheck/internal/metrics"
	"logicheck/internal/ratelimit"
	"logicheck/models"
	"logicheck/services"
	"logicheck/utils"
)

type memoryProgress struct {
	mu       sync.Mutex
	learners map[string]*models.LearnerProgress
}

func newMemoryProgress() *memoryProgress {
	return &memoryProgress{learners: map[string]*models.LearnerProgress{}}
}

func (m *memoryProgress) get(id string) *models.LearnerProgress {
	p, ok := m.learners[id]
	if !ok {
		p = &models.LearnerProgress{LearnerID: id, DojoStats: models.DojoStats{FallacyMastery: map[string]int{}}}
		m.learners[id] = p
	}
	return p
}

func (m *memoryProgress) RecordSparring(_ context.Context, id, fallacy string, correct bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.get(id)
	p.DojoStats.TotalChallenges++
	if correct {
		p.DojoStats.CorrectAnswers++
		p.DojoStats.FallacyMastery[fallacy]++
	}
	return nil
}

func (m *memoryProgress) RecordBias(_ context.Context, id string, score int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.get(id)
	p.DojoStats.BiasChallenges++
	p.DojoStats.BestBiasScore = max(p.DojoStats.BestBiasScore, score)
	return nil
}

func (m *memoryProgress) RecordAnalysis(_ context.Context, id, kind string, n int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.get(id)
	p.AnalysisHistory = append(p.AnalysisHistory, models.AnalysisRecord{Type: kind, TextLength: n})
	return nil
}

func (m *memoryProgress) Progress(_ context.Context, id string) (*models.LearnerProgress, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.learners[id]
	if !ok {
		return nil, db.ErrLearnerNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memoryProgress) Ping(context.Context) error { return nil }

type cannedGenerator struct {
	reply string
	calls int
}

func (g *cannedGenerator) GenerateText(context.Context, string, string) (string, error) {
	g.calls++
	return g.reply, nil
}

func (g *cannedGenerator) HasDefaultKey() bool { return true }

type testServer struct {
	router   *gin.Engine
	gen      *cannedGenerator
	progress db.ProgressStore
}

func newTestServer(t *testing.T, progress db.ProgressStore, maxRequests int) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gen := &cannedGenerator{reply: "```json\n{\"mainClaim\":\"Cats rule\",\"fallacies\":[{\"fallacyName\":\"Straw Man\",\"quote\":\"q\"}],\"annotations\":[]}\n```"}
	store := cache.New(time.Minute, time.Minute)
	m := metrics.New()
	log := zap.NewNop()

	limiter, err := ratelimit.NewMemoryLimiter(ratelimit.Config{MaxRequests: maxRequests, Window: time.Hour})
	require.NoError(t, err)

	sparring := services.NewSparringService(catalog.DefaultFallacies(), services.WithPicker(func(int) int { return 0 }))
	bias := services.NewBiasService(catalog.DefaultBiasTopics(), services.WithPicker(func(int) int { return 0 }))
	analyzer := services.NewAnalyzerService(gen, store, services.DefaultAnalyzerLimits())

	router := NewRouter(Deps{
		Dojo:           controllers.NewDojoController(sparring, bias, progress, m, log),
		Analyze:        controllers.NewAnalyzeController(analyzer, progress, m, log),
		Health:         controllers.NewHealthController(progress, store),
		Metrics:        m,
		Limiter:        limiter,
		Log:            log,
		AllowedOrigins: []string{"http://localhost:5173"},
	})
	return &testServer{router: router, gen: gen, progress: progress}
}

func (s *testServer) do(method, path string, body any, learner string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if learner != "" {
		req.Header.Set(utils.LearnerHeader, learner)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestSparringRoundTrip(t *testing.T) {
	s := newTestServer(t, newMemoryProgress(), 10)

	w := s.do(http.MethodGet, "/api/dojo/sparring-challenge", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	challenge := decode[models.SparringChallenge](t, w)
	assert.NotEmpty(t, challenge.ChallengeID)
	assert.Len(t, challenge.Options, 4)

	w = s.do(http.MethodPost, "/api/dojo/verify-answer", models.VerifyAnswerRequest{
		ChallengeID: challenge.ChallengeID,
		Scenario:    challenge.Scenario,
		UserAnswer:  challenge.CorrectAnswer,
	}, "learner-1")
	require.Equal(t, http.StatusOK, w.Code)
	result := decode[models.VerifyAnswerResult](t, w)
	assert.True(t, result.IsCorrect)
	assert.Equal(t, challenge.CorrectAnswer, result.CorrectAnswer)

	w = s.do(http.MethodGet, "/api/dojo/progress", nil, "learner-1")
	require.Equal(t, http.StatusOK, w.Code)
	progress := decode[struct {
		DojoStats models.DojoStats `json:"dojoStats"`
		Accuracy  float64          `json:"accuracy"`
	}](t, w)
	assert.Equal(t, 1, progress.DojoStats.TotalChallenges)
	assert.Equal(t, 1, progress.DojoStats.FallacyMastery[challenge.CorrectAnswer])
	assert.Equal(t, 1.0, progress.Accuracy)
}

func TestVerifyAnswer_Errors(t *testing.T) {
	s := newTestServer(t, newMemoryProgress(), 10)

	w := s.do(http.MethodPost, "/api/dojo/verify-answer", map[string]string{"scenario": "x"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Missing required fields","status":400}}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/dojo/verify-answer", map[string]string{"scenario": "nobody said this", "userAnswer": "Straw Man"}, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Challenge not found","status":404}}`, w.Body.String())
}

func TestBiasRoundTrip(t *testing.T) {
	s := newTestServer(t, newMemoryProgress(), 10)

	w := s.do(http.MethodGet, "/api/dojo/bias-challenge", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	challenge := decode[models.BiasChallenge](t, w)
	assert.NotEqual(t, challenge.ArticleA.Bias, challenge.ArticleB.Bias)

	sub := map[string]any{
		"topic": challenge.Topic,
		"articleAHighlights": []map[string]string{
			{"text": "stunning betrayal", "category": "loaded"},
			{"text": "watched in horror", "category": "emotional"},
			{"text": "as if there will be an economy", "category": "framing"},
		},
		"articleBHighlights": []map[string]string{
			{"text": "radical", "category": "loaded"},
			{"text": "alarmist activists", "category": "loaded"},
		},
	}
	w = s.do(http.MethodPost, "/api/dojo/analyze-bias-highlights", sub, "learner-2")
	require.Equal(t, http.StatusOK, w.Code)
	fb := decode[models.BiasFeedback](t, w)
	assert.Equal(t, 75, fb.OverallScore)
	assert.Equal(t, "Proficient", fb.PerformanceLevel)
	assert.Equal(t, 5, fb.CategoryBreakdown.Total())

	p, err := s.progress.Progress(context.Background(), "learner-2")
	require.NoError(t, err)
	assert.Equal(t, 75, p.DojoStats.BestBiasScore)

	w = s.do(http.MethodPost, "/api/dojo/analyze-bias-highlights", map[string]string{"topic": "x"}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAnalyze_CachesAndRecords(t *testing.T) {
	s := newTestServer(t, newMemoryProgress(), 10)

	for i := 0; i < 2; i++ {
		w := s.do(http.MethodPost, "/api/analyze", map[string]string{"text": "Everyone I know agrees, so it must be true."}, "learner-3")
		require.Equal(t, http.StatusOK, w.Code)
		got := decode[models.TextAnalysis](t, w)
		assert.Equal(t, "Cats rule", got.MainClaim)
		require.Len(t, got.Fallacies, 1)
		assert.Equal(t, "No explanation provided.", got.Fallacies[0].Explanation)
		assert.Equal(t, "What evidence would strengthen this argument?", got.SocraticQuestion)
	}
	assert.Equal(t, 1, s.gen.calls, "second request served from cache")

	p, err := s.progress.Progress(context.Background(), "learner-3")
	require.NoError(t, err)
	assert.Len(t, p.AnalysisHistory, 2)

	w := s.do(http.MethodPost, "/api/analyze", map[string]string{"text": "   "}, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPost, "/api/clinic/analyze-essay", map[string]string{"essayText": "An essay."}, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"annotations":[]}`, w.Body.String())
}

func TestAnalyze_RateLimited(t *testing.T) {
	s := newTestServer(t, newMemoryProgress(), 1)

	w := s.do(http.MethodPost, "/api/analyze", map[string]string{"text": "first"}, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/api/clinic/analyze-essay", map[string]string{"essayText": "second"}, "")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = s.do(http.MethodGet, "/api/dojo/sparring-challenge", nil, "")
	assert.Equal(t, http.StatusOK, w.Code, "dojo routes are not limited")
}

func TestProgress_Errors(t *testing.T) {
	s := newTestServer(t, newMemoryProgress(), 10)
	assert.Equal(t, http.StatusBadRequest, s.do(http.MethodGet, "/api/dojo/progress", nil, "").Code)
	assert.Equal(t, http.StatusNotFound, s.do(http.MethodGet, "/api/dojo/progress", nil, "ghost").Code)

	noDB := newTestServer(t, db.NopProgressStore{}, 10)
	assert.Equal(t, http.StatusServiceUnavailable, noDB.do(http.MethodGet, "/api/dojo/progress", nil, "ghost").Code)
}

func TestHealthAndNotFound(t *testing.T) {
	s := newTestServer(t, db.NopProgressStore{}, 10)

	w := s.do(http.MethodGet, "/api/health", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	health := decode[map[string]any](t, w)
	assert.Equal(t, "ok", health["status"])
	assert.Equal(t, "LogiCheck API is running", health["message"])
	assert.Equal(t, "disabled", health["components"].(map[string]any)["database"])

	w = s.do(http.MethodGet, "/api/nope", nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":{"message":"Endpoint not found","status":404}}`, w.Body.String())

	require.Equal(t, http.StatusOK, s.do(http.MethodGet, "/api/dojo/sparring-challenge", nil, "").Code)
	w = s.do(http.MethodGet, "/metrics", nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `logicheck_challenges_issued_total{mode="sparring"} 1`)
}
