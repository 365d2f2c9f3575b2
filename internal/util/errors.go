package util

import "errors"

var (
	ErrUserNotFound       = errors.New("User not found. Please register first.")
	ErrAssessmentNotFound = errors.New("Assessment not found. Please submit assessment first.")
	ErrProgressNotFound   = errors.New("User progress not found")
)
