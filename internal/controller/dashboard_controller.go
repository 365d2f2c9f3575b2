package controller

import (
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Service *service.DashboardService
}

func NewDashboardController(svc *service.DashboardService) *DashboardController {
	return &DashboardController{Service: svc}
}

// @Summary Get dashboard statistics for a user
// @Description Recomputes course and skill statistics from the user's progress record on every call. Users without generated paths see empty progress.
// @Tags dashboard
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /dashboard/{userId} [get]
func (c *DashboardController) GetDashboard(ctx *gin.Context) {
	userID := ctx.Param("userId")

	dashboard, err := c.Service.GetDashboard(userID)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"dashboard": dashboard,
	})
}
