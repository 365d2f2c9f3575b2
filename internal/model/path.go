package model

import "time"

// SkillGap describes the distance between an assessed skill and the level a
// domain requires. Priority is always "High" in the current analyzer; the
// field is kept stable rather than differentiated.
type SkillGap struct {
	Name             string `json:"name"`
	CurrentLevel     int    `json:"current_level"`
	RecommendedLevel int    `json:"recommended_level"`
	Priority         string `json:"priority"`
}

// RecommendedSkill is the learner-facing projection of a skill gap.
type RecommendedSkill struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Level       string `json:"level"`
	Priority    string `json:"priority"`
}

// CourseRecommendation is a scored projection of a catalog row. It is
// recomputed on every path generation and never stored on its own.
type CourseRecommendation struct {
	Title       string  `json:"title"`
	Provider    string  `json:"provider"`
	Level       string  `json:"level"`
	Duration    string  `json:"duration"`
	Rating      float64 `json:"rating"`
	Students    string  `json:"students"`
	Description string  `json:"description"`
	Score       int     `json:"score"`
}

// LearningPath is the per-user snapshot written by path generation.
// Regeneration overwrites it wholesale.
type LearningPath struct {
	UserID       string                 `json:"userId"`
	GeneratedAt  time.Time              `json:"generatedAt"`
	Skills       []RecommendedSkill     `json:"skills"`
	Courses      []CourseRecommendation `json:"courses"`
	TotalSkills  int                    `json:"totalSkills"`
	TotalCourses int                    `json:"totalCourses"`
	SkillGaps    []SkillGap             `json:"skillGaps"`
}
