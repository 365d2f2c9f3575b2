package service

import (
	"testing"

	"learnpath_backend/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProfile() *model.LearnerProfile {
	return &model.LearnerProfile{
		UserID:          "user_test",
		CurrentDomain:   "web-development",
		ExperienceLevel: "beginner",
		LearningStyle:   "video",
	}
}

func TestRecommendCoursesEmptyCatalog(t *testing.T) {
	recs := RecommendCourses(testProfile(), nil, nil, nil)

	require.Len(t, recs, 1)
	assert.Equal(t, "Python for Data Science", recs[0].Title)
	assert.Equal(t, "Udemy", recs[0].Provider)
	assert.Equal(t, 5, recs[0].Score)
}

func TestRecommendCoursesScoring(t *testing.T) {
	gaps := []model.SkillGap{
		{Name: "HTML"},
		{Name: "CSS"},
	}
	courses := []model.Course{
		{
			Title:  "Web Basics",
			Domain: "Web Development",
			Skills: "HTML, CSS, JavaScript",
			Level:  "beginner",
			Format: "video",
		},
	}

	recs := RecommendCourses(testProfile(), nil, gaps, courses)
	require.Len(t, recs, 1)

	// Two gap hits (3 each) + level match (2) + style match (1).
	assert.Equal(t, 9, recs[0].Score)
}

func TestRecommendCoursesScoreFloor(t *testing.T) {
	// A row matching nothing scores 0 and is dropped; with only such rows
	// the fixed fallback comes back instead of an empty list.
	courses := []model.Course{
		{Title: "Pottery", Domain: "web-development", Skills: "clay", Level: "advanced", Format: "workshop"},
	}

	recs := RecommendCourses(testProfile(), nil, nil, courses)
	require.Len(t, recs, 1)
	assert.Equal(t, "Python for Data Science", recs[0].Title)
	assert.Equal(t, 5, recs[0].Score)
}

func TestRecommendCoursesDomainFilterFallback(t *testing.T) {
	// No row matches the profile domain, so the whole catalog is scored.
	courses := []model.Course{
		{Title: "ML Intro", Domain: "Data Science", Skills: "Python", Level: "beginner", Format: "video"},
	}

	recs := RecommendCourses(testProfile(), nil, nil, courses)
	require.Len(t, recs, 1)
	assert.Equal(t, "ML Intro", recs[0].Title)
	// Level match + style match; the Python skill is not a gap here.
	assert.Equal(t, 3, recs[0].Score)
}

func TestRecommendCoursesSortedAndStable(t *testing.T) {
	gaps := []model.SkillGap{{Name: "HTML"}}
	courses := []model.Course{
		{Title: "A", Domain: "web", Skills: "", Level: "beginner", Format: "video"},   // 3
		{Title: "B", Domain: "web", Skills: "HTML", Level: "advanced", Format: "lab"}, // 3
		{Title: "C", Domain: "web", Skills: "HTML", Level: "beginner", Format: "video"}, // 6
		{Title: "D", Domain: "web", Skills: "", Level: "advanced", Format: "video"},   // 1
	}

	profile := testProfile()
	profile.CurrentDomain = "web"

	recs := RecommendCourses(profile, nil, gaps, courses)
	require.Len(t, recs, 4)

	titles := []string{recs[0].Title, recs[1].Title, recs[2].Title, recs[3].Title}
	// C wins outright; A and B tie at 3 and keep catalog order; D trails.
	assert.Equal(t, []string{"C", "A", "B", "D"}, titles)

	for i := 1; i < len(recs); i++ {
		assert.GreaterOrEqual(t, recs[i-1].Score, recs[i].Score)
	}
}

func TestRecommendCoursesCap(t *testing.T) {
	courses := make([]model.Course, 25)
	for i := range courses {
		courses[i] = model.Course{
			Title:  "Course",
			Domain: "web-development",
			Level:  "beginner",
			Format: "video",
		}
	}

	recs := RecommendCourses(testProfile(), nil, nil, courses)
	assert.Len(t, recs, 10)
}

func TestRecommendCoursesProfileDefaults(t *testing.T) {
	// Empty experience level and learning style default to beginner/video.
	profile := &model.LearnerProfile{CurrentDomain: "web"}
	courses := []model.Course{
		{Title: "Defaulted", Domain: "web", Level: "Beginner", Format: "Video Lectures"},
	}

	recs := RecommendCourses(profile, nil, nil, courses)
	require.Len(t, recs, 1)
	assert.Equal(t, 3, recs[0].Score)
}
