package util

import "math"

// Dashboard accounting assumptions.
const (
	// CourseNominalHours is the assumed length of every recommended
	// course when estimating hours completed.
	CourseNominalHours = 40.0

	// SkillMasteryThreshold is the progress percentage at which a skill
	// counts as mastered.
	SkillMasteryThreshold = 80
)

// Round1 rounds to one decimal place.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Round2 rounds to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
