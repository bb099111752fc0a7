package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/skinlens/backend/config"
)

// SetupRouter creates and configures the Gin router
func SetupRouter(cfg *config.Config, handler *Handler, logger *zap.Logger) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	// Set Gin mode based on environment
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Global middleware
	router.Use(RequestIDMiddleware())
	router.Use(RecoveryMiddleware(logger))
	router.Use(LoggerMiddleware(logger))
	router.Use(CORSMiddleware(cfg.Server.AllowedOrigins))

	// Operational endpoints
	router.GET("/health", handler.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/api/v1")
	v1.Use(RateLimitMiddleware(NewRateLimiter(cfg.RateLimit.PerIP, cfg.RateLimit.Burst)))
	{
		recommendations := v1.Group("/recommendations")
		{
			recommendations.POST("", handler.GetRecommendations)
			recommendations.POST("/explain", handler.ExplainRecommendations)
		}

		analysis := v1.Group("/analysis")
		{
			analysis.POST("/recommendations", handler.AnalysisRecommendations)
		}

		catalog := v1.Group("/catalog")
		{
			catalog.GET("/products", handler.ListProducts)
			catalog.GET("/products/:id", handler.GetProduct)
			catalog.GET("/categories", handler.ListCategories)
		}
	}

	return router
}
