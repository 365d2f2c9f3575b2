package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"learnpath_backend/internal/catalog"
	"learnpath_backend/internal/config"
	"learnpath_backend/internal/model"
	"learnpath_backend/internal/repository"
	"learnpath_backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Code    int                        `json:"code"`
	Message string                     `json:"message"`
	Data    map[string]json.RawMessage `json:"data"`
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dir := t.TempDir()
	coursesPath := filepath.Join(dir, "courses.csv")
	require.NoError(t, os.WriteFile(coursesPath, []byte(
		"title,provider,domain,skills,level,format,duration,rating,students,description\n"+
			"Complete Web Development Bootcamp,Udemy,Web Development,\"HTML, CSS, JavaScript, Node.js\",intermediate,video,55 hours,4.7,\"250,000+\",Full-stack course\n"+
			"React Deep Dive,Udemy,Web Development,\"React, JavaScript\",intermediate,video,40 hours,4.6,\"100,000+\",Component patterns\n"),
		0o644))

	cat := catalog.New(config.CatalogConfig{
		StudentsPath: filepath.Join(dir, "students.csv"),
		CoursesPath:  coursesPath,
	})
	store := repository.NewMemorySessionStore()

	learner := NewLearnerController(service.NewLearnerService(store))
	path := NewPathController(service.NewPathService(store, cat))
	progress := NewProgressController(service.NewProgressService(store))
	dashboard := NewDashboardController(service.NewDashboardService(store))
	health := NewHealthController(cat)

	router := gin.New()
	router.GET("/", health.Home)
	api := router.Group("/api")
	{
		api.GET("/health", health.HealthCheck)
		api.POST("/register", learner.Register)
		api.POST("/assessment", learner.SubmitAssessment)
		api.POST("/generate-path", path.GeneratePath)
		api.GET("/dashboard/:userId", dashboard.GetDashboard)
		api.POST("/update-progress", progress.UpdateProgress)
	}
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, url string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("invalid response body %q: %v", w.Body.String(), err)
	}
	return w, env
}

func registerUser(t *testing.T, router *gin.Engine) string {
	t.Helper()

	w, env := doJSON(t, router, http.MethodPost, "/api/register", gin.H{
		"fullName":         "Test User",
		"age":              22,
		"educationLevel":   "Bachelor's Degree",
		"currentDomain":    "Web Development",
		"careerGoal":       "Become a full-stack developer",
		"experienceLevel":  "intermediate",
		"learningStyle":    "video",
		"weeklyStudyHours": 10,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	require.Equal(t, "Learner profile registered successfully", env.Message)

	var userID string
	require.NoError(t, json.Unmarshal(env.Data["userId"], &userID))
	require.NotEmpty(t, userID)
	return userID
}

func TestRegisterMissingFieldHTTP(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/register", gin.H{
		"fullName": "No Age",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Missing required field: age", env.Message)
}

func TestAssessmentUnknownUserHTTP(t *testing.T) {
	router := newTestRouter(t)

	w, env := doJSON(t, router, http.MethodPost, "/api/assessment", gin.H{
		"userId": "user_ghost",
		"skills": []gin.H{{"name": "Python", "level": 2}},
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User not found. Please register first.", env.Message)
}

func TestUpdateProgressBeforePathHTTP(t *testing.T) {
	router := newTestRouter(t)
	userID := registerUser(t, router)

	w, env := doJSON(t, router, http.MethodPost, "/api/update-progress", gin.H{
		"userId": userID,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User progress not found", env.Message)
}

func TestDashboardUnknownUserHTTP(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/api/dashboard/user_ghost", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// Full pipeline: register, assess, generate, update progress, read the
// dashboard.
func TestLearningPathPipeline(t *testing.T) {
	router := newTestRouter(t)
	userID := registerUser(t, router)

	w, env := doJSON(t, router, http.MethodPost, "/api/assessment", gin.H{
		"userId": userID,
		"skills": []gin.H{
			{"name": "JavaScript", "level": 3},
			{"name": "React", "level": 2},
			{"name": "Node.js", "level": 1},
			{"name": "Database Design", "level": 2},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var assessment model.SkillAssessment
	require.NoError(t, json.Unmarshal(env.Data["assessment"], &assessment))
	assert.Equal(t, 4, assessment.TotalSkills)
	assert.Equal(t, 8, assessment.TotalScore)
	assert.InDelta(t, 2.0, assessment.AverageLevel, 0.001)

	w, env = doJSON(t, router, http.MethodPost, "/api/generate-path", gin.H{"userId": userID})
	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, "Learning path generated successfully", env.Message)

	var path model.LearningPath
	require.NoError(t, json.Unmarshal(env.Data["learningPath"], &path))
	assert.Equal(t, 5, path.TotalSkills, "HTML, CSS, React, Node.js, Database Design")
	require.NotEmpty(t, path.Courses)
	firstCourse := path.Courses[0].Title

	w, env = doJSON(t, router, http.MethodPost, "/api/update-progress", gin.H{
		"userId": userID,
		"skillProgress": []gin.H{
			{"name": "HTML", "progress": 50},
		},
		"courseProgress": []gin.H{
			{"title": firstCourse, "progress": 100},
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var record model.ProgressRecord
	require.NoError(t, json.Unmarshal(env.Data["progress"], &record))
	assert.Equal(t, model.StatusCompleted, record.Courses[0].Status)

	w, env = doJSON(t, router, http.MethodGet, "/api/dashboard/"+userID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var dashboard service.Dashboard
	require.NoError(t, json.Unmarshal(env.Data["dashboard"], &dashboard))
	assert.Equal(t, userID, dashboard.UserID)
	assert.Equal(t, 1, dashboard.Statistics.CompletedCourses)
	assert.Equal(t, 5, dashboard.Summary.TotalSkills)
	assert.InDelta(t, 40.0, dashboard.Summary.HoursCompleted, 0.001)
}
