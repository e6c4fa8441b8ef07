package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"logicheck/db"
	"logicheck/internal/cache"
)

type HealthController struct {
	progress db.ProgressStore
	cache    *cache.Store
	now      func() time.Time
}

func NewHealthController(progress db.ProgressStore, store *cache.Store) *HealthController {
	return &HealthController{progress: progress, cache: store, now: time.Now}
}

// Health handles GET /api/health. It reports ok even when the database is
// down, since every practice mode works without it.
func (hc *HealthController) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	database := "up"
	if err := hc.progress.Ping(ctx); err != nil {
		database = "down"
		if errors.Is(err, db.ErrProgressUnavailable) {
			database = "disabled"
		}
	}

	cacheState := "disabled"
	if hc.cache != nil {
		cacheState = "up"
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "ok",
		"message":   "LogiCheck API is running",
		"timestamp": hc.now().UTC().Format(time.RFC3339Nano),
		"components": gin.H{
			"database": database,
			"cache":    gin.H{"status": cacheState, "entries": hc.cache.Len()},
		},
	})
}
