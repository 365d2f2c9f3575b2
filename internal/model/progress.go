package model

// Course progress statuses.
const (
	StatusNotStarted = "not-started"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Skill level labels used on progress entries and dashboard averages.
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// SkillProgress tracks completion of one recommended skill, 0-100.
type SkillProgress struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
	Level    string `json:"level"`
}

// CourseProgress tracks completion of one recommended course, 0-100.
type CourseProgress struct {
	Title    string `json:"title"`
	Provider string `json:"provider"`
	Progress int    `json:"progress"`
	Status   string `json:"status"`
}

// ProgressRecord is initialized exactly once, the first time a path is
// generated for a user. Later path regenerations leave it untouched; only
// updateProgress mutates it, entry by entry.
type ProgressRecord struct {
	Skills  []SkillProgress  `json:"skills"`
	Courses []CourseProgress `json:"courses"`
}
