package service

import (
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/util"
)

// ProgressService mutates per-user progress records field by field.
type ProgressService struct {
	Store repository.SessionStore
}

func NewProgressService(store repository.SessionStore) *ProgressService {
	return &ProgressService{Store: store}
}

type SkillProgressUpdate struct {
	Name     string `json:"name"`
	Progress int    `json:"progress"`
}

type CourseProgressUpdate struct {
	Title    string `json:"title"`
	Progress int    `json:"progress"`
}

type UpdateProgressRequest struct {
	UserID         string                 `json:"userId"`
	SkillProgress  []SkillProgressUpdate  `json:"skillProgress"`
	CourseProgress []CourseProgressUpdate `json:"courseProgress"`
}

// UpdateProgress applies each supplied entry to the first stored entry with
// a matching name or title; unmatched entries are silently skipped. Course
// status is derived from the new progress value: 100 marks the course
// completed, anything above 0 marks it in-progress, and exactly 0 leaves
// the status as it was — a long-standing quirk that is kept deliberately.
func (s *ProgressService) UpdateProgress(req UpdateProgressRequest) (*model.ProgressRecord, error) {
	if req.UserID == "" {
		return nil, &ValidationError{Message: "Missing userId"}
	}

	record, ok := s.Store.UpdateProgress(req.UserID, func(r *model.ProgressRecord) {
		for _, update := range req.SkillProgress {
			for i := range r.Skills {
				if r.Skills[i].Name == update.Name {
					r.Skills[i].Progress = update.Progress
					break
				}
			}
		}

		for _, update := range req.CourseProgress {
			for i := range r.Courses {
				if r.Courses[i].Title == update.Title {
					r.Courses[i].Progress = update.Progress
					if update.Progress == 100 {
						r.Courses[i].Status = model.StatusCompleted
					} else if update.Progress > 0 {
						r.Courses[i].Status = model.StatusInProgress
					}
					break
				}
			}
		}
	})
	if !ok {
		return nil, util.ErrProgressNotFound
	}

	return record, nil
}
