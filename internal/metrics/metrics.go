// Package metrics holds the Prometheus collectors for HTTP traffic and the
// practice engines.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	RequestCounter   *prometheus.CounterVec
	RequestDuration  *prometheus.HistogramVec
	ChallengesIssued *prometheus.CounterVec
	AnswersGraded    *prometheus.CounterVec
	BiasScore        prometheus.Histogram
	AIRequests       *prometheus.CounterVec
}

// New registers every collector on a private registry, so tests can build
// as many instances as they like.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RequestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "endpoint", "status"},
		),
		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests",
				Buckets: []float64{0.1, 0.5, 1, 2, 5},
			},
			[]string{"method", "endpoint"},
		),
		ChallengesIssued: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logicheck_challenges_issued_total",
				Help: "Practice challenges handed out, by mode",
			},
			[]string{"mode"},
		),
		AnswersGraded: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logicheck_answers_graded_total",
				Help: "Sparring answers graded, by result",
			},
			[]string{"result"},
		),
		BiasScore: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "logicheck_bias_score",
				Help:    "Overall scores awarded for bias highlighting",
				Buckets: []float64{40, 60, 80, 100},
			},
		),
		AIRequests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "logicheck_ai_requests_total",
				Help: "Model-backed analyses, by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
	}
	m.registry.MustRegister(
		m.RequestCounter,
		m.RequestDuration,
		m.ChallengesIssued,
		m.AnswersGraded,
		m.BiasScore,
		m.AIRequests,
	)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

func (m *Metrics) ChallengeIssued(mode string) {
	m.ChallengesIssued.WithLabelValues(mode).Inc()
}

func (m *Metrics) AnswerGraded(correct bool) {
	result := "incorrect"
	if correct {
		result = "correct"
	}
	m.AnswersGraded.WithLabelValues(result).Inc()
}

func (m *Metrics) BiasScored(score int) {
	m.BiasScore.Observe(float64(score))
}

func (m *Metrics) AIRequest(kind, outcome string) {
	m.AIRequests.WithLabelValues(kind, outcome).Inc()
}

// Middleware records request count and latency by route template.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		duration := time.Since(start).Seconds()
		endpoint := c.FullPath()
		if endpoint == "" {
			endpoint = "unmatched"
		}

		m.RequestCounter.WithLabelValues(
			c.Request.Method,
			endpoint,
			strconv.Itoa(c.Writer.Status()),
		).Inc()

		m.RequestDuration.WithLabelValues(
			c.Request.Method,
			endpoint,
		).Observe(duration)
	}
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// PrometheusHandler adapts Handler for gin.
func (m *Metrics) PrometheusHandler() gin.HandlerFunc {
	h := m.Handler()
	return func(c *gin.Context) {
		h.ServeHTTP(c.Writer, c.Request)
	}
}
