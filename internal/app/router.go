package app

import (
	"learnpath_backend/docs"
	"learnpath_backend/internal/middleware"
	"learnpath_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	router.Use(middleware.RequestID())

	router.GET("/", c.health.Home)

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		api.POST("/register", c.learner.Register)
		api.POST("/assessment", c.learner.SubmitAssessment)
		api.POST("/generate-path", c.path.GeneratePath)
		api.GET("/dashboard/:userId", c.dashboard.GetDashboard)
		api.POST("/update-progress", c.progress.UpdateProgress)
	}
}
