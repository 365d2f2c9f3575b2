package service

import (
	"sort"
	"strings"

	"learnpath_backend/internal/model"
)

const maxRecommendations = 10

// Scoring weights for catalog rows.
const (
	weightSkillGap   = 3 // per skill gap named in the course's skills field
	weightLevelMatch = 2 // experience level equals course level
	weightStyleMatch = 1 // learning style contained in course format
)

// fallbackRecommendation is returned whenever the catalog yields nothing,
// so the recommender can never come back empty.
func fallbackRecommendation() []model.CourseRecommendation {
	return []model.CourseRecommendation{{
		Title:       "Python for Data Science",
		Provider:    "Udemy",
		Level:       model.LevelBeginner,
		Duration:    "30 hours",
		Rating:      4.6,
		Students:    "100,000+",
		Description: "Complete Python guide for Data Science",
		Score:       5,
	}}
}

// RecommendCourses ranks catalog rows against a learner's profile and skill
// gaps. Candidate rows are those whose domain contains the profile's current
// domain (falling back to the whole catalog when the filter comes up empty),
// scored by the fixed weights above, kept only at score >= 1, sorted by
// score descending with catalog order as the tie-break, and capped at ten.
// Assessed skills are accepted for contract parity but do not affect the
// score directly; their influence arrives through the gaps.
func RecommendCourses(profile *model.LearnerProfile, assessedSkills []model.AssessedSkill, gaps []model.SkillGap, courses []model.Course) []model.CourseRecommendation {
	if len(courses) == 0 {
		return fallbackRecommendation()
	}

	targetDomain := strings.ToLower(profile.CurrentDomain)

	candidates := make([]model.Course, 0, len(courses))
	for _, course := range courses {
		if strings.Contains(strings.ToLower(course.Domain), targetDomain) {
			candidates = append(candidates, course)
		}
	}
	if len(candidates) == 0 {
		candidates = courses
	}

	experience := strings.ToLower(profile.ExperienceLevel)
	if experience == "" {
		experience = "beginner"
	}
	learningStyle := strings.ToLower(profile.LearningStyle)
	if learningStyle == "" {
		learningStyle = "video"
	}

	recommendations := make([]model.CourseRecommendation, 0, len(candidates))
	for _, course := range candidates {
		score := 0

		courseSkills := strings.ToLower(course.Skills)
		for _, gap := range gaps {
			if strings.Contains(courseSkills, strings.ToLower(gap.Name)) {
				score += weightSkillGap
			}
		}

		if experience == strings.ToLower(course.Level) {
			score += weightLevelMatch
		}

		if strings.Contains(strings.ToLower(course.Format), learningStyle) {
			score += weightStyleMatch
		}

		if score >= 1 {
			recommendations = append(recommendations, model.CourseRecommendation{
				Title:       course.Title,
				Provider:    course.Provider,
				Level:       course.Level,
				Duration:    course.Duration,
				Rating:      course.Rating,
				Students:    course.Students,
				Description: course.Description,
				Score:       score,
			})
		}
	}

	if len(recommendations) == 0 {
		return fallbackRecommendation()
	}

	sort.SliceStable(recommendations, func(i, j int) bool {
		return recommendations[i].Score > recommendations[j].Score
	})

	if len(recommendations) > maxRecommendations {
		recommendations = recommendations[:maxRecommendations]
	}
	return recommendations
}
