package repository

import (
	"sync"

	"learnpath_backend/internal/model"
)

// SessionStore owns the four per-user tables the pipeline runs over:
// profiles, assessments, learning paths and progress records. State is
// process-lifetime only; nothing is ever deleted. The interface exists so
// tests can inject an isolated instance per case.
type SessionStore interface {
	SaveProfile(p *model.LearnerProfile)
	GetProfile(userID string) (*model.LearnerProfile, bool)

	SaveAssessment(a *model.SkillAssessment)
	GetAssessment(userID string) (*model.SkillAssessment, bool)

	SavePath(p *model.LearningPath)
	GetPath(userID string) (*model.LearningPath, bool)

	// InitProgress writes only if the user has no record yet and reports
	// whether it did. UpdateProgress applies fn to the stored record under
	// the write lock and returns a copy of the result. GetProgress returns
	// a copy so readers never observe a concurrent mutation.
	InitProgress(userID string, r *model.ProgressRecord) bool
	UpdateProgress(userID string, fn func(*model.ProgressRecord)) (*model.ProgressRecord, bool)
	GetProgress(userID string) (*model.ProgressRecord, bool)
}

// MemorySessionStore is the only SessionStore implementation. A single
// RWMutex guards all four tables; every operation is a bounded in-memory
// lookup so the coarse lock is not a bottleneck at this scale.
type MemorySessionStore struct {
	mu          sync.RWMutex
	profiles    map[string]*model.LearnerProfile
	assessments map[string]*model.SkillAssessment
	paths       map[string]*model.LearningPath
	progress    map[string]*model.ProgressRecord
}

func NewMemorySessionStore() *MemorySessionStore {
	return &MemorySessionStore{
		profiles:    make(map[string]*model.LearnerProfile),
		assessments: make(map[string]*model.SkillAssessment),
		paths:       make(map[string]*model.LearningPath),
		progress:    make(map[string]*model.ProgressRecord),
	}
}

func (s *MemorySessionStore) SaveProfile(p *model.LearnerProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.profiles[p.UserID] = p
}

func (s *MemorySessionStore) GetProfile(userID string) (*model.LearnerProfile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.profiles[userID]
	return p, ok
}

func (s *MemorySessionStore) SaveAssessment(a *model.SkillAssessment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.assessments[a.UserID] = a
}

func (s *MemorySessionStore) GetAssessment(userID string) (*model.SkillAssessment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	a, ok := s.assessments[userID]
	return a, ok
}

func (s *MemorySessionStore) SavePath(p *model.LearningPath) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.paths[p.UserID] = p
}

func (s *MemorySessionStore) GetPath(userID string) (*model.LearningPath, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.paths[userID]
	return p, ok
}

func (s *MemorySessionStore) InitProgress(userID string, r *model.ProgressRecord) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.progress[userID]; exists {
		return false
	}
	s.progress[userID] = r
	return true
}

func (s *MemorySessionStore) UpdateProgress(userID string, fn func(*model.ProgressRecord)) (*model.ProgressRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.progress[userID]
	if !ok {
		return nil, false
	}
	fn(r)
	return copyProgress(r), true
}

func (s *MemorySessionStore) GetProgress(userID string) (*model.ProgressRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.progress[userID]
	if !ok {
		return nil, false
	}
	return copyProgress(r), true
}

func copyProgress(r *model.ProgressRecord) *model.ProgressRecord {
	cp := &model.ProgressRecord{
		Skills:  make([]model.SkillProgress, len(r.Skills)),
		Courses: make([]model.CourseProgress, len(r.Courses)),
	}
	copy(cp.Skills, r.Skills)
	copy(cp.Courses, r.Courses)
	return cp
}
