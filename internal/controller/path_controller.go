package controller

import (
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type PathController struct {
	Service *service.PathService
}

func NewPathController(svc *service.PathService) *PathController {
	return &PathController{Service: svc}
}

// @Summary Generate a personalized learning path
// @Description Runs skill gap analysis and course recommendation for a user who has registered and submitted an assessment. Regenerating overwrites the path but preserves existing progress.
// @Tags path
// @Accept json
// @Produce json
// @Param body body service.GeneratePathRequest true "User reference"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /generate-path [post]
func (c *PathController) GeneratePath(ctx *gin.Context) {
	var req service.GeneratePathRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	path, err := c.Service.GeneratePath(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "Learning path generated successfully", gin.H{
		"learningPath": path,
	})
}
