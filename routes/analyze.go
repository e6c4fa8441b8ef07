package routes

import (
	"github.com/gin-gonic/gin"

	"logicheck/controllers"
)

// SetupAnalyzeRoutes registers the text analyzer. limit runs before the handler.
func SetupAnalyzeRoutes(router *gin.RouterGroup, ac *controllers.AnalyzeController, limit gin.HandlerFunc) {
	router.POST("/analyze", limit, ac.AnalyzeText)
}

// SetupClinicRoutes registers the essay clinic under /api/clinic.
func SetupClinicRoutes(router *gin.RouterGroup, ac *controllers.AnalyzeController, limit gin.HandlerFunc) {
	clinic := router.Group("/clinic", limit)
	{
		clinic.POST("/analyze-essay", ac.AnalyzeEssay)
	}
}
