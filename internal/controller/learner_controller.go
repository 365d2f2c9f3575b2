package controller

import (
	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type LearnerController struct {
	Service *service.LearnerService
}

func NewLearnerController(svc *service.LearnerService) *LearnerController {
	return &LearnerController{Service: svc}
}

// @Summary Register a learner profile
// @Description Creates a new learner profile and mints a unique userId. All eight profile fields are required.
// @Tags learner
// @Accept json
// @Produce json
// @Param body body service.RegisterRequest true "Learner profile"
// @Success 201 {object} util.Response
// @Failure 400 {object} util.Response
// @Router /register [post]
func (c *LearnerController) Register(ctx *gin.Context) {
	var req service.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	profile, err := c.Service.Register(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.Created(ctx, "Learner profile registered successfully", gin.H{
		"userId":  profile.UserID,
		"profile": profile,
	})
}

// @Summary Submit a skill assessment
// @Description Stores self-assessed skills for a registered user and computes the assessment aggregates. Resubmission overwrites the previous assessment.
// @Tags learner
// @Accept json
// @Produce json
// @Param body body service.AssessmentRequest true "Assessed skills"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /assessment [post]
func (c *LearnerController) SubmitAssessment(ctx *gin.Context) {
	var req service.AssessmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	assessment, err := c.Service.SubmitAssessment(req)
	if err != nil {
		respondServiceError(ctx, err)
		return
	}

	util.SuccessMessage(ctx, "Skill assessment submitted successfully", gin.H{
		"assessment": assessment,
	})
}
