package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"logicheck/catalog"
	"logicheck/config"
	"logicheck/controllers"
	"logicheck/db"
	"logicheck/internal/cache"
	"logicheck/internal/metrics"
	"logicheck/internal/ratelimit"
	"logicheck/logger"
	"logicheck/routes"
	"logicheck/services"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config file (defaults and environment when empty)")
	flag.Parse()

	// Load the configuration from the specified YAML file
	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logr := logger.New(cfg)
	defer logr.Sync()

	gin.SetMode(cfg.Server.Mode)
	ctx := context.Background()

	progress, closeDB := connectProgressStore(ctx, cfg, logr)
	defer closeDB()

	limiter, closeRedis := buildLimiter(ctx, cfg, logr)
	defer closeRedis()

	m := metrics.New()
	store := cache.New(cfg.CacheTTL(), 10*time.Minute)
	generator := services.NewGeminiGenerator(cfg.Gemini.ApiKey, cfg.Gemini.Model, cfg.GeminiTimeout())
	if !generator.HasDefaultKey() {
		logr.Warn("no server Gemini key configured; analysis requests must supply their own apiKey")
	}

	sparring := services.NewSparringService(catalog.DefaultFallacies())
	bias := services.NewBiasService(catalog.DefaultBiasTopics())
	analyzer := services.NewAnalyzerService(generator, store, services.AnalyzerLimits{
		MaxTextLength:  cfg.Analysis.MaxTextLength,
		MaxEssayLength: cfg.Analysis.MaxEssayLength,
	})

	router := routes.NewRouter(routes.Deps{
		Dojo:           controllers.NewDojoController(sparring, bias, progress, m, logr),
		Analyze:        controllers.NewAnalyzeController(analyzer, progress, m, logr),
		Health:         controllers.NewHealthController(progress, store),
		Metrics:        m,
		Limiter:        limiter,
		Log:            logr,
		AllowedOrigins: cfg.Origins(),
	})

	run(cfg, router, logr)
}

// connectProgressStore falls back to the no-op store when the database is
// not configured or unreachable.
func connectProgressStore(ctx context.Context, cfg *config.Config, logr *zap.Logger) (db.ProgressStore, func()) {
	if cfg.Database.URI == "" {
		logr.Info("no database configured, progress tracking disabled")
		return db.NopProgressStore{}, func() {}
	}

	client, database, err := db.ConnectMongoDB(ctx, cfg.Database.URI)
	if err != nil {
		logr.Warn("MongoDB unavailable, continuing without database", zap.Error(err))
		return db.NopProgressStore{}, func() {}
	}
	logr.Info("connected to MongoDB", zap.String("database", database.Name()))

	store := db.NewMongoProgressStore(client, database)
	return store, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(ctx); err != nil {
			logr.Error("failed to disconnect MongoDB", zap.Error(err))
		}
	}
}

// buildLimiter prefers Redis so limits hold across instances.
func buildLimiter(ctx context.Context, cfg *config.Config, logr *zap.Logger) (ratelimit.Limiter, func()) {
	rlCfg := ratelimit.Config{MaxRequests: cfg.RateLimit.Requests, Window: cfg.RateWindow()}

	if cfg.Redis.Addr != "" {
		limiter, closeFn, err := redisLimiter(ctx, cfg, rlCfg)
		if err == nil {
			logr.Info("using Redis rate limiter", zap.String("addr", cfg.Redis.Addr))
			return limiter, closeFn
		}
		logr.Warn("Redis unavailable, using in-memory rate limiter", zap.Error(err))
	}

	limiter, err := ratelimit.NewMemoryLimiter(rlCfg)
	if err != nil {
		logr.Fatal("invalid rate limit configuration", zap.Error(err))
	}
	return limiter, func() {}
}

func redisLimiter(ctx context.Context, cfg *config.Config, rlCfg ratelimit.Config) (ratelimit.Limiter, func(), error) {
	rdb, err := ratelimit.NewRedisClient(ctx, cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		return nil, nil, err
	}
	limiter, err := ratelimit.NewRedisLimiter(rdb, rlCfg, "ai")
	if err != nil {
		rdb.Close()
		return nil, nil, err
	}
	return limiter, func() { rdb.Close() }, nil
}

func run(cfg *config.Config, handler http.Handler, logr *zap.Logger) {
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logr.Info("LogiCheck server running", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logr.Fatal("failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logr.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("server forced to shutdown", zap.Error(err))
	}
	logr.Info("server exiting")
}
