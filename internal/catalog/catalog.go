package catalog

import (
	"os"
	"sync"

	"learnpath_backend/internal/config"
	"learnpath_backend/internal/model"
	"learnpath_backend/pkg/logger"
	"learnpath_backend/pkg/monitoring"

	"github.com/gocarina/gocsv"
	"go.uber.org/zap"
)

// Catalog holds the in-memory course and student tables loaded from CSV.
// Load failures never propagate: a missing or unparseable file yields an
// empty table so the recommendation pipeline can fall back gracefully.
// Reload swaps the tables atomically, so readers always see a consistent
// snapshot.
type Catalog struct {
	mu       sync.RWMutex
	cfg      config.CatalogConfig
	courses  []model.Course
	students []model.Student
}

func New(cfg config.CatalogConfig) *Catalog {
	c := &Catalog{cfg: cfg}
	c.Reload()
	return c
}

// Reload re-reads both CSV files and swaps the snapshots.
func (c *Catalog) Reload() {
	students := loadStudents(c.cfg.StudentsPath)
	courses := loadCourses(c.cfg.CoursesPath)

	c.mu.Lock()
	c.students = students
	c.courses = courses
	c.mu.Unlock()

	monitoring.CatalogCourses.Set(float64(len(courses)))
}

// Courses returns the current course snapshot. Callers must not mutate it.
func (c *Catalog) Courses() []model.Course {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.courses
}

// StudentCount reports how many student rows were loaded. The rows feed no
// core logic; the count is surfaced on the health endpoint.
func (c *Catalog) StudentCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.students)
}

// CourseCount reports how many course rows are loaded.
func (c *Catalog) CourseCount() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.courses)
}

// Paths returns the configured CSV locations, for the file watcher.
func (c *Catalog) Paths() (students, courses string) {
	return c.cfg.StudentsPath, c.cfg.CoursesPath
}

func loadCourses(path string) []model.Course {
	var courses []model.Course
	if !readCSV(path, &courses, "courses") {
		return nil
	}
	for i := range courses {
		courses[i].ApplyDefaults()
	}
	logger.Log.Info("Loaded course records", zap.Int("count", len(courses)), zap.String("path", path))
	return courses
}

func loadStudents(path string) []model.Student {
	var students []model.Student
	if !readCSV(path, &students, "students") {
		return nil
	}
	logger.Log.Info("Loaded student records", zap.Int("count", len(students)), zap.String("path", path))
	return students
}

func readCSV(path string, out interface{}, table string) bool {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Log.Warn("catalog file missing, using empty table", zap.String("table", table), zap.String("path", path))
		} else {
			logger.Log.Error("failed to open catalog file", zap.String("table", table), zap.String("path", path), zap.Error(err))
		}
		return false
	}
	defer f.Close()

	if err := gocsv.UnmarshalFile(f, out); err != nil {
		logger.Log.Error("failed to parse catalog file, using empty table", zap.String("table", table), zap.String("path", path), zap.Error(err))
		return false
	}
	return true
}
