package routes

import (
	"github.com/gin-gonic/gin"

	"logicheck/controllers"
)

// SetupDojoRoutes registers the practice modes under /api/dojo.
func SetupDojoRoutes(router *gin.RouterGroup, dc *controllers.DojoController) {
	dojo := router.Group("/dojo")
	{
		dojo.GET("/sparring-challenge", dc.GetSparringChallenge)
		dojo.POST("/verify-answer", dc.VerifyAnswer)
		dojo.GET("/bias-challenge", dc.GetBiasChallenge)
		dojo.POST("/analyze-bias-highlights", dc.AnalyzeBiasHighlights)
		dojo.GET("/progress", dc.GetProgress)
	}
}
