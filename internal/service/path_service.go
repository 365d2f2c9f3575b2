package service

import (
	"fmt"
	"time"

	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
	"learnpath_backend/pkg/monitoring"
)

// CourseSource supplies the current course catalog snapshot.
type CourseSource interface {
	Courses() []model.Course
}

// PathService generates personalized learning paths: gap analysis, course
// recommendation, and the one-time progress initialization.
type PathService struct {
	Store   repository.SessionStore
	Catalog CourseSource
}

func NewPathService(store repository.SessionStore, cat CourseSource) *PathService {
	return &PathService{Store: store, Catalog: cat}
}

type GeneratePathRequest struct {
	UserID string `json:"userId"`
}

// GeneratePath runs the analyzer and recommender over the user's profile
// and assessment, stores the resulting path, and initializes the progress
// record if the user does not have one yet. Regeneration overwrites the
// path but never touches existing progress.
func (s *PathService) GeneratePath(req GeneratePathRequest) (*model.LearningPath, error) {
	if req.UserID == "" {
		return nil, &ValidationError{Message: "Missing userId"}
	}

	profile, ok := s.Store.GetProfile(req.UserID)
	if !ok {
		return nil, util.ErrUserNotFound
	}

	assessment, ok := s.Store.GetAssessment(req.UserID)
	if !ok {
		return nil, util.ErrAssessmentNotFound
	}

	gaps := AnalyzeSkillGaps(assessment.Skills, profile.CurrentDomain)

	recommendedSkills := make([]model.RecommendedSkill, len(gaps))
	for i, gap := range gaps {
		recommendedSkills[i] = model.RecommendedSkill{
			Name:        gap.Name,
			Description: fmt.Sprintf("Develop %s skills to reach level %d", gap.Name, gap.RecommendedLevel),
			Level:       skillLevelLabel(gap.CurrentLevel),
			Priority:    gap.Priority,
		}
	}

	recommendedCourses := RecommendCourses(profile, assessment.Skills, gaps, s.Catalog.Courses())

	path := &model.LearningPath{
		UserID:       req.UserID,
		GeneratedAt:  time.Now(),
		Skills:       recommendedSkills,
		Courses:      recommendedCourses,
		TotalSkills:  len(recommendedSkills),
		TotalCourses: len(recommendedCourses),
		SkillGaps:    gaps,
	}

	s.Store.SavePath(path)
	s.initProgress(req.UserID, recommendedSkills, recommendedCourses)
	monitoring.PathsGenerated.Inc()

	return path, nil
}

// initProgress seeds the progress record from the freshly generated path.
// If a record already exists it is left alone, by contract.
func (s *PathService) initProgress(userID string, skills []model.RecommendedSkill, courses []model.CourseRecommendation) {
	record := &model.ProgressRecord{
		Skills:  make([]model.SkillProgress, len(skills)),
		Courses: make([]model.CourseProgress, len(courses)),
	}
	for i, skill := range skills {
		record.Skills[i] = model.SkillProgress{
			Name:     skill.Name,
			Progress: 0,
			Level:    skill.Level,
		}
	}
	for i, course := range courses {
		record.Courses[i] = model.CourseProgress{
			Title:    course.Title,
			Provider: course.Provider,
			Progress: 0,
			Status:   model.StatusNotStarted,
		}
	}
	s.Store.InitProgress(userID, record)
}

// skillLevelLabel maps an assessed level to the label shown on the path:
// never assessed is Beginner, assessed but gapped is Intermediate, anything
// above the gap threshold is Advanced.
func skillLevelLabel(currentLevel int) string {
	switch {
	case currentLevel == 0:
		return model.LevelBeginner
	case currentLevel <= 2:
		return model.LevelIntermediate
	default:
		return model.LevelAdvanced
	}
}
