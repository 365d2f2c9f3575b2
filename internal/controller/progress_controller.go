package controller

import (
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Service *service.ProgressService
}

func NewProgressController(svc *service.ProgressService) *ProgressController {
	return &ProgressController{Service: svc}
}

// @Summary Update skill and course progress
// @Description Applies progress updates to the user's progress record, matched by skill name or course title. Course status follows the new progress value.
// @Tags progress
// @Accept json
// @Produce json
// @Param body body service.UpdateProgressRequest true "Progress updates"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /update-progress [post]
func (c *ProgressController) UpdateProgress(ctx *gin.Context) {
	var req service.UpdateProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	record, err := c.Service.UpdateProgress(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "Progress updated successfully", gin.H{
		"progress": record,
	})
}
