package controller

import (
	"learnpath_backend/internal/catalog"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Catalog *catalog.Catalog
}

func NewHealthController(cat *catalog.Catalog) *HealthController {
	return &HealthController{Catalog: cat}
}

// @Summary Service banner
// @Description Lists the available endpoints.
// @Tags system
// @Produce json
// @Router / [get]
func (c *HealthController) Home(ctx *gin.Context) {
	ctx.JSON(200, gin.H{
		"message": "AI-Powered Personalized Learning Path Generator API",
		"version": "1.0.0",
		"endpoints": gin.H{
			"POST /api/register":          "Register learner profile",
			"POST /api/assessment":        "Submit skill assessment",
			"POST /api/generate-path":     "Generate personalized learning path",
			"GET /api/dashboard/<userId>": "Get dashboard data",
			"POST /api/update-progress":   "Update progress",
		},
	})
}

// @Summary Health check
// @Description Reports service status and catalog table sizes.
// @Tags system
// @Produce json
// @Success 200 {object} util.Response
// @Router /health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"catalog": gin.H{
			"courses":  c.Catalog.CourseCount(),
			"students": c.Catalog.StudentCount(),
		},
	})
}
