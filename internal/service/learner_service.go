package service

import (
	"fmt"
	"time"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"

	"github.com/google/uuid"
)

// LearnerService handles registration and skill assessment, the first two
// stages of the pipeline.
type LearnerService struct {
	Store repository.SessionStore
}

func NewLearnerService(store repository.SessionStore) *LearnerService {
	return &LearnerService{Store: store}
}

// RegisterRequest carries the eight required profile fields. Pointers
// distinguish an absent field from a zero value so validation can name
// exactly what is missing.
type RegisterRequest struct {
	FullName         *string `json:"fullName"`
	Age              *int    `json:"age"`
	EducationLevel   *string `json:"educationLevel"`
	CurrentDomain    *string `json:"currentDomain"`
	CareerGoal       *string `json:"careerGoal"`
	ExperienceLevel  *string `json:"experienceLevel"`
	LearningStyle    *string `json:"learningStyle"`
	WeeklyStudyHours *int    `json:"weeklyStudyHours"`
}

// MissingField reports the first absent required field in declaration
// order, matching the order the fields are documented in.
func (r *RegisterRequest) MissingField() (string, bool) {
	checks := []struct {
		name    string
		present bool
	}{
		{"fullName", r.FullName != nil},
		{"age", r.Age != nil},
		{"educationLevel", r.EducationLevel != nil},
		{"currentDomain", r.CurrentDomain != nil},
		{"careerGoal", r.CareerGoal != nil},
		{"experienceLevel", r.ExperienceLevel != nil},
		{"learningStyle", r.LearningStyle != nil},
		{"weeklyStudyHours", r.WeeklyStudyHours != nil},
	}
	for _, c := range checks {
		if !c.present {
			return c.name, true
		}
	}
	return "", false
}

// ValidationError names the offending input; controllers map it to 400.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Register mints a fresh userId and stores the profile. There is no
// identity dedup: registering "the same" person twice creates two users.
func (s *LearnerService) Register(req RegisterRequest) (*model.LearnerProfile, error) {
	if field, missing := req.MissingField(); missing {
		return nil, &ValidationError{Message: fmt.Sprintf("Missing required field: %s", field)}
	}

	profile := &model.LearnerProfile{
		UserID:           "user_" + uuid.New().String(),
		FullName:         *req.FullName,
		Age:              *req.Age,
		EducationLevel:   *req.EducationLevel,
		CurrentDomain:    *req.CurrentDomain,
		CareerGoal:       *req.CareerGoal,
		ExperienceLevel:  *req.ExperienceLevel,
		LearningStyle:    *req.LearningStyle,
		WeeklyStudyHours: *req.WeeklyStudyHours,
		RegisteredAt:     time.Now(),
	}

	s.Store.SaveProfile(profile)
	return profile, nil
}

// AssessmentRequest submits self-assessed skills for a registered user.
// Skills is a pointer so "absent" and "empty list" stay distinguishable:
// an empty list is valid and yields averageLevel 0.
type AssessmentRequest struct {
	UserID string                 `json:"userId"`
	Skills *[]model.AssessedSkill `json:"skills"`
}

// SubmitAssessment stores the assessment with its aggregates computed once
// at submission time. Resubmission overwrites the previous record wholesale.
func (s *LearnerService) SubmitAssessment(req AssessmentRequest) (*model.SkillAssessment, error) {
	if req.UserID == "" {
		return nil, &ValidationError{Message: "Missing userId"}
	}
	if req.Skills == nil {
		return nil, &ValidationError{Message: "Missing or invalid skills array"}
	}
	if _, ok := s.Store.GetProfile(req.UserID); !ok {
		return nil, util.ErrUserNotFound
	}

	skills := *req.Skills
	totalScore := 0
	for _, skill := range skills {
		totalScore += skill.Level
	}

	averageLevel := 0.0
	if len(skills) > 0 {
		averageLevel = util.Round2(float64(totalScore) / float64(len(skills)))
	}

	assessment := &model.SkillAssessment{
		UserID:       req.UserID,
		Skills:       skills,
		TotalSkills:  len(skills),
		TotalScore:   totalScore,
		AverageLevel: averageLevel,
		AssessedAt:   time.Now(),
	}

	s.Store.SaveAssessment(assessment)
	return assessment, nil
}
