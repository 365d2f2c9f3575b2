package controller

import (
	"errors"

	"learnpath_backend/internal/service"
	"learnpath_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps service errors onto the envelope: validation
// failures become 400 naming the field, missing records become 404, and
// anything else is logged and surfaced as 500 with the raw message.
func respondServiceError(ctx *gin.Context, err error) {
	var validationErr *service.ValidationError
	switch {
	case errors.As(err, &validationErr):
		util.BadRequest(ctx, validationErr.Message)
	case errors.Is(err, util.ErrUserNotFound),
		errors.Is(err, util.ErrAssessmentNotFound),
		errors.Is(err, util.ErrProgressNotFound):
		util.NotFound(ctx, err.Error())
	default:
		util.LogInternalError(ctx, err)
	}
}
