package routes

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logicheck/controllers"
	"logicheck/internal/metrics"
	"logicheck/internal/ratelimit"
	"logicheck/middlewares"
	"logicheck/utils"
)

// Deps is everything the router needs.
type Deps struct {
	Dojo           *controllers.DojoController
	Analyze        *controllers.AnalyzeController
	Health         *controllers.HealthController
	Metrics        *metrics.Metrics
	Limiter        ratelimit.Limiter
	Log            *zap.Logger
	AllowedOrigins []string
}

// NewRouter wires middlewares and every /api route.
func NewRouter(d Deps) *gin.Engine {
	router := gin.New()

	// Set trusted proxies (adjust as needed)
	router.SetTrustedProxies([]string{"127.0.0.1", "::1"})

	router.Use(
		middlewares.RequestLogger(d.Log),
		middlewares.Recovery(d.Log),
		d.Metrics.Middleware(),
	)

	router.Use(cors.New(cors.Config{
		AllowOrigins:     d.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", utils.LearnerHeader},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	router.GET("/metrics", d.Metrics.PrometheusHandler())

	api := router.Group("/api")
	api.GET("/health", d.Health.Health)

	limit := middlewares.RateLimit(d.Limiter, d.Log)
	SetupAnalyzeRoutes(api, d.Analyze, limit)
	SetupClinicRoutes(api, d.Analyze, limit)
	SetupDojoRoutes(api, d.Dojo)

	router.NoRoute(func(c *gin.Context) {
		utils.Error(c, http.StatusNotFound, "Endpoint not found")
	})

	return router
}
