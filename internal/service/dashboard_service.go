package service

import (
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
)

// DashboardService derives summary statistics from a user's progress
// record. Nothing is cached; every read recomputes from current state.
type DashboardService struct {
	Store repository.SessionStore
}

func NewDashboardService(store repository.SessionStore) *DashboardService {
	return &DashboardService{Store: store}
}

type DashboardStatistics struct {
	TotalCourses      int     `json:"totalCourses"`
	CompletedCourses  int     `json:"completedCourses"`
	InProgressCourses int     `json:"inProgressCourses"`
	OverallProgress   float64 `json:"overallProgress"`
}

type DashboardSummary struct {
	TotalSkills       int     `json:"totalSkills"`
	MasteredSkills    int     `json:"masteredSkills"`
	AverageSkillLevel float64 `json:"averageSkillLevel"`
	HoursCompleted    float64 `json:"hoursCompleted"`
	CompletionRate    float64 `json:"completionRate"`
}

type Dashboard struct {
	UserID     string                 `json:"userId"`
	Statistics DashboardStatistics    `json:"statistics"`
	Skills     []model.SkillProgress  `json:"skills"`
	Courses    []model.CourseProgress `json:"courses"`
	Summary    DashboardSummary       `json:"summary"`
}

// skillLevelValues maps progress level labels to numeric weight for the
// average; unknown labels count as 1.
var skillLevelValues = map[string]int{
	model.LevelBeginner:     1,
	model.LevelIntermediate: 2,
	model.LevelAdvanced:     3,
}

// GetDashboard requires a registered user but tolerates missing progress:
// a user who has not generated a path yet sees empty lists and zeroed
// statistics rather than an error.
func (s *DashboardService) GetDashboard(userID string) (*Dashboard, error) {
	if _, ok := s.Store.GetProfile(userID); !ok {
		return nil, util.ErrUserNotFound
	}

	record, ok := s.Store.GetProgress(userID)
	if !ok {
		record = &model.ProgressRecord{
			Skills:  []model.SkillProgress{},
			Courses: []model.CourseProgress{},
		}
	}

	totalCourses := len(record.Courses)
	completed := 0
	inProgress := 0
	totalProgress := 0
	totalHoursProgress := 0.0
	for _, course := range record.Courses {
		if course.Progress == 100 {
			completed++
		} else if course.Progress > 0 && course.Progress < 100 {
			inProgress++
		}
		totalProgress += course.Progress
		totalHoursProgress += float64(course.Progress) / 100 * util.CourseNominalHours
	}

	overallProgress := 0.0
	if totalCourses > 0 {
		overallProgress = util.Round1(float64(totalProgress) / float64(totalCourses))
	}

	totalSkills := len(record.Skills)
	mastered := 0
	totalLevel := 0
	for _, skill := range record.Skills {
		if skill.Progress >= util.SkillMasteryThreshold {
			mastered++
		}
		value, known := skillLevelValues[skill.Level]
		if !known {
			value = 1
		}
		totalLevel += value
	}

	averageLevel := 0.0
	if totalSkills > 0 {
		averageLevel = util.Round1(float64(totalLevel) / float64(totalSkills))
	}

	return &Dashboard{
		UserID: userID,
		Statistics: DashboardStatistics{
			TotalCourses:      totalCourses,
			CompletedCourses:  completed,
			InProgressCourses: inProgress,
			OverallProgress:   overallProgress,
		},
		Skills:  record.Skills,
		Courses: record.Courses,
		Summary: DashboardSummary{
			TotalSkills:       totalSkills,
			MasteredSkills:    mastered,
			AverageSkillLevel: averageLevel,
			HoursCompleted:    util.Round1(totalHoursProgress),
			CompletionRate:    overallProgress,
		},
	}, nil
}
