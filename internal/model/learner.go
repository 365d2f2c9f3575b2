package model

import "time"

// LearnerProfile is created once at registration and never mutated.
// The userId is server-generated; every other field comes from the caller.
type LearnerProfile struct {
	UserID           string    `json:"userId"`
	FullName         string    `json:"fullName"`
	Age              int       `json:"age"`
	EducationLevel   string    `json:"educationLevel"`
	CurrentDomain    string    `json:"currentDomain"`
	CareerGoal       string    `json:"careerGoal"`
	ExperienceLevel  string    `json:"experienceLevel"`
	LearningStyle    string    `json:"learningStyle"`
	WeeklyStudyHours int       `json:"weeklyStudyHours"`
	RegisteredAt     time.Time `json:"registeredAt"`
}

// AssessedSkill is a single self-assessed skill on a 0-5 scale.
type AssessedSkill struct {
	Name  string `json:"name"`
	Level int    `json:"level"`
}

// SkillAssessment belongs to exactly one learner. The aggregates are
// computed at submission time and never recomputed afterwards.
// Resubmission replaces the whole record.
type SkillAssessment struct {
	UserID       string          `json:"userId"`
	Skills       []AssessedSkill `json:"skills"`
	TotalSkills  int             `json:"totalSkills"`
	TotalScore   int             `json:"totalScore"`
	AverageLevel float64         `json:"averageLevel"`
	AssessedAt   time.Time       `json:"assessedAt"`
}
