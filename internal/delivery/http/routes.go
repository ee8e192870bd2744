package http

import (
	"github.com/basketsync/backend/config"
	"github.com/basketsync/backend/internal/logger"
	"github.com/gin-gonic/gin"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, log *logger.Logger) *gin.Engine {
	// Set Gin mode based on environment
	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RecoveryMiddleware(log))
	router.Use(LoggerMiddleware(log))

	router.GET("/status", handler.HealthCheck)

	// Mealie posts its webhook to the bare URL
	router.POST("/", handler.AddRecipe)

	v1 := router.Group("/api/v1")
	{
		v1.POST("/recipes", handler.AddRecipe)
	}

	return router
}
