package service

import (
	"strings"
	"testing"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fullRegisterRequest() RegisterRequest {
	fullName := "Test User"
	age := 22
	education := "Bachelor's Degree"
	domain := "web-development"
	careerGoal := "Become a full-stack developer"
	experience := "intermediate"
	style := "video"
	hours := 10

	return RegisterRequest{
		FullName:         &fullName,
		Age:              &age,
		EducationLevel:   &education,
		CurrentDomain:    &domain,
		CareerGoal:       &careerGoal,
		ExperienceLevel:  &experience,
		LearningStyle:    &style,
		WeeklyStudyHours: &hours,
	}
}

func TestRegisterStoresProfile(t *testing.T) {
	store := repository.NewMemorySessionStore()
	svc := NewLearnerService(store)

	profile, err := svc.Register(fullRegisterRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(profile.UserID, "user_"))
	assert.Equal(t, "Test User", profile.FullName)
	assert.Equal(t, 22, profile.Age)
	assert.False(t, profile.RegisteredAt.IsZero())

	stored, ok := store.GetProfile(profile.UserID)
	require.True(t, ok)
	assert.Equal(t, profile, stored)
}

func TestRegisterMintsDistinctUsers(t *testing.T) {
	svc := NewLearnerService(repository.NewMemorySessionStore())

	first, err := svc.Register(fullRegisterRequest())
	require.NoError(t, err)
	second, err := svc.Register(fullRegisterRequest())
	require.NoError(t, err)

	// No identity dedup: the same payload twice creates two users.
	assert.NotEqual(t, first.UserID, second.UserID)
}

func TestRegisterMissingFields(t *testing.T) {
	svc := NewLearnerService(repository.NewMemorySessionStore())

	tests := []struct {
		field string
		strip func(*RegisterRequest)
	}{
		{"fullName", func(r *RegisterRequest) { r.FullName = nil }},
		{"age", func(r *RegisterRequest) { r.Age = nil }},
		{"educationLevel", func(r *RegisterRequest) { r.EducationLevel = nil }},
		{"currentDomain", func(r *RegisterRequest) { r.CurrentDomain = nil }},
		{"careerGoal", func(r *RegisterRequest) { r.CareerGoal = nil }},
		{"experienceLevel", func(r *RegisterRequest) { r.ExperienceLevel = nil }},
		{"learningStyle", func(r *RegisterRequest) { r.LearningStyle = nil }},
		{"weeklyStudyHours", func(r *RegisterRequest) { r.WeeklyStudyHours = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			req := fullRegisterRequest()
			tt.strip(&req)

			_, err := svc.Register(req)
			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, "Missing required field: "+tt.field, validationErr.Message)
		})
	}
}

func TestSubmitAssessmentAggregates(t *testing.T) {
	store := repository.NewMemorySessionStore()
	svc := NewLearnerService(store)
	profile, err := svc.Register(fullRegisterRequest())
	require.NoError(t, err)

	skills := []model.AssessedSkill{
		{Name: "JavaScript", Level: 3},
		{Name: "React", Level: 2},
		{Name: "Node.js", Level: 1},
	}
	assessment, err := svc.SubmitAssessment(AssessmentRequest{UserID: profile.UserID, Skills: &skills})
	require.NoError(t, err)

	assert.Equal(t, 3, assessment.TotalSkills)
	assert.Equal(t, 6, assessment.TotalScore)
	assert.InDelta(t, 2.0, assessment.AverageLevel, 0.001)
	assert.False(t, assessment.AssessedAt.IsZero())
}

func TestSubmitAssessmentEmptySkills(t *testing.T) {
	store := repository.NewMemorySessionStore()
	svc := NewLearnerService(store)
	profile, err := svc.Register(fullRegisterRequest())
	require.NoError(t, err)

	skills := []model.AssessedSkill{}
	assessment, err := svc.SubmitAssessment(AssessmentRequest{UserID: profile.UserID, Skills: &skills})
	require.NoError(t, err)

	// An empty list is valid and averages to zero.
	assert.Zero(t, assessment.TotalSkills)
	assert.Zero(t, assessment.TotalScore)
	assert.Zero(t, assessment.AverageLevel)
}

func TestSubmitAssessmentOverwrites(t *testing.T) {
	store := repository.NewMemorySessionStore()
	svc := NewLearnerService(store)
	profile, err := svc.Register(fullRegisterRequest())
	require.NoError(t, err)

	first := []model.AssessedSkill{{Name: "Python", Level: 1}, {Name: "Statistics", Level: 1}}
	_, err = svc.SubmitAssessment(AssessmentRequest{UserID: profile.UserID, Skills: &first})
	require.NoError(t, err)

	second := []model.AssessedSkill{{Name: "Go", Level: 5}}
	_, err = svc.SubmitAssessment(AssessmentRequest{UserID: profile.UserID, Skills: &second})
	require.NoError(t, err)

	stored, ok := store.GetAssessment(profile.UserID)
	require.True(t, ok)
	assert.Equal(t, 1, stored.TotalSkills, "resubmission replaces, never merges")
	assert.Equal(t, "Go", stored.Skills[0].Name)
}

func TestSubmitAssessmentValidation(t *testing.T) {
	svc := NewLearnerService(repository.NewMemorySessionStore())
	skills := []model.AssessedSkill{}

	_, err := svc.SubmitAssessment(AssessmentRequest{Skills: &skills})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Missing userId", validationErr.Message)

	_, err = svc.SubmitAssessment(AssessmentRequest{UserID: "user_x"})
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Missing or invalid skills array", validationErr.Message)

	_, err = svc.SubmitAssessment(AssessmentRequest{UserID: "user_unknown", Skills: &skills})
	assert.ErrorIs(t, err, util.ErrUserNotFound)
}
