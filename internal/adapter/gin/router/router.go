package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/jaipal-12/villageconnect/internal/adapter/gin/handler"
	"github.com/jaipal-12/villageconnect/internal/adapter/gin/middleware"
	"github.com/jaipal-12/villageconnect/pkg/logger"
)

// SetupRouter configures and returns a Gin router with all routes and middleware
func SetupRouter(
	sessionHandler *handler.SessionHandler,
	catalogHandler *handler.CatalogHandler,
	rateLimiter *middleware.RateLimiter,
	log *zap.Logger,
) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware
	router.Use(middleware.Recovery(log))
	router.Use(logger.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(rateLimiter.Middleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "villageconnect",
		})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", sessionHandler.Register)
			auth.POST("/login", sessionHandler.Login)
			auth.POST("/logout", sessionHandler.Logout)
		}

		v1.GET("/session", sessionHandler.CurrentSession)
		v1.PUT("/profile", sessionHandler.UpdateProfile)
		v1.POST("/enrollments", sessionHandler.Enroll)

		services := v1.Group("/services")
		{
			services.GET("", catalogHandler.ListServices)
			services.GET("/:id", catalogHandler.GetService)
			services.GET("/:id/videos", catalogHandler.GetServiceVideos)
		}

		v1.GET("/categories", catalogHandler.ListCategories)
		v1.GET("/dashboard", catalogHandler.Dashboard)
	}

	return router
}
