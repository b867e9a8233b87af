package wire

import (
	"net/http"

	"github.com/gin-gonic/gin"

	config_http "appstarter/internal/features/config/presentation/http"
	generation_http "appstarter/internal/features/generation/presentation/http"
)

// RegisterRoutes mounts every API route on r.
func RegisterRoutes(r *gin.Engine, app *App) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "App starter generator API is running",
		})
	})

	// Generation API routes
	apiGroup := r.Group("/api")
	{
		handler := generation_http.NewGenerationHandler(app.Generation)
		apiGroup.POST("/generate", handler.GenerateHandler)
		apiGroup.POST("/analyze", handler.AnalyzeHandler)
		apiGroup.GET("/generations", handler.ListGenerationsHandler)
		apiGroup.GET("/generations/:id", handler.GetGenerationHandler)
	}

	// Config API routes
	configGroup := r.Group("/api/config")
	{
		handler := config_http.NewAppConfigHandler(app.Config, app.Generation.SetRules)
		configGroup.GET("/app", handler.GetAppConfigHandler)
		configGroup.POST("/app", handler.SaveAppConfigHandler)
	}
}
