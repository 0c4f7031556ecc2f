package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"learnhub_backend/internal/config"
	"learnhub_backend/internal/model"
	"learnhub_backend/internal/store"

	"github.com/gin-gonic/gin"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{}
	cfg.Server.Mode = "test"
	cfg.Store.Path = filepath.Join(t.TempDir(), "state.json")
	cfg.RateLimit.MaxRequests = 1000
	cfg.RateLimit.WindowMinutes = 1

	st := store.New(cfg.Store.Path)
	if err := st.Load(); err != nil {
		t.Fatalf("load store: %v", err)
	}

	a := &App{Config: cfg, Store: st}
	repos := a.initRepositories(st)
	services := a.initServices(repos, st)
	controllers := a.initControllers(services, st)

	router := gin.New()
	a.setupMiddlewares(router, cfg)
	a.registerRoutes(router, controllers)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var adminHeaders = map[string]string{"x-role": "admin"}

const courseBody = `{
	"title": "Go 入门",
	"description": "从零开始学 Go",
	"category": "programming",
	"lessons": [
		{"id": "l1", "title": "环境搭建", "type": "document"},
		{"id": "l2", "title": "第一个程序", "type": "video"}
	]
}`

func createCourse(t *testing.T, router *gin.Engine) model.Course {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/courses", courseBody, adminHeaders)
	if w.Code != http.StatusCreated {
		t.Fatalf("create course: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var course model.Course
	if err := json.Unmarshal(w.Body.Bytes(), &course); err != nil {
		t.Fatalf("decode created course: %v", err)
	}
	if course.ID == "" {
		t.Fatalf("created course has no id")
	}
	return course
}

func TestCreateCourseRequiresAdminRole(t *testing.T) {
	router := newTestRouter(t)

	for name, headers := range map[string]map[string]string{
		"missing header": nil,
		"wrong role":     {"x-role": "student"},
	} {
		w := doJSON(t, router, http.MethodPost, "/api/courses", courseBody, headers)
		if w.Code != http.StatusForbidden {
			t.Fatalf("%s: expected 403, got %d", name, w.Code)
		}
	}

	// 被拒绝的请求不得追加课程
	w := doJSON(t, router, http.MethodGet, "/api/courses", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list: expected 200, got %d", w.Code)
	}
	var courses []model.Course
	if err := json.Unmarshal(w.Body.Bytes(), &courses); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(courses) != 0 {
		t.Fatalf("catalog must be unchanged, got %d courses", len(courses))
	}
}

func TestCreateCourseMalformedJSON(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/courses", `{"title": `, adminHeaders)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("error body must carry a message: %s", w.Body.String())
	}
}

func TestCreateCourseValidationError(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/courses",
		`{"title": "", "description": "d", "category": "c"}`, adminHeaders)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestPatchCourse(t *testing.T) {
	router := newTestRouter(t)
	course := createCourse(t, router)

	w := doJSON(t, router, http.MethodPatch, "/api/courses/"+course.ID,
		`{"category": "golang"}`, adminHeaders)
	if w.Code != http.StatusOK {
		t.Fatalf("patch: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var updated model.Course
	if err := json.Unmarshal(w.Body.Bytes(), &updated); err != nil {
		t.Fatalf("decode updated: %v", err)
	}
	if updated.Category != "golang" || updated.Title != course.Title {
		t.Fatalf("shallow merge wrong: %+v", updated)
	}

	w = doJSON(t, router, http.MethodPatch, "/api/courses/missing", `{"category": "x"}`, adminHeaders)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown id: expected 404, got %d", w.Code)
	}
}

func TestLessonProgressEndpoint(t *testing.T) {
	router := newTestRouter(t)
	course := createCourse(t, router)

	// 缺 userId
	w := doJSON(t, router, http.MethodPatch,
		"/api/courses/"+course.ID+"/lessons/l1/progress", `{}`, nil)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing userId: expected 400, got %d", w.Code)
	}

	// 未知课程
	w = doJSON(t, router, http.MethodPatch,
		"/api/courses/missing/lessons/l1/progress", `{"userId": "u1"}`, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown course: expected 404, got %d", w.Code)
	}

	w = doJSON(t, router, http.MethodPatch,
		"/api/courses/"+course.ID+"/lessons/l1/progress", `{"userId": "u1"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("report l1: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var snap model.ProgressSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.Progress != 50 || snap.Completed {
		t.Fatalf("after l1: expected {50 false}, got %+v", snap)
	}
}

func TestCompletionAndCertificateFlow(t *testing.T) {
	router := newTestRouter(t)
	course := createCourse(t, router)

	for _, lesson := range []string{"l1", "l2"} {
		w := doJSON(t, router, http.MethodPatch,
			"/api/courses/"+course.ID+"/lessons/"+lesson+"/progress", `{"userId": "u1"}`, nil)
		if w.Code != http.StatusOK {
			t.Fatalf("report %s: expected 200, got %d", lesson, w.Code)
		}
	}

	w := doJSON(t, router, http.MethodPost,
		"/api/courses/"+course.ID+"/certificates", `{"userId": "u1", "score": 90}`, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("issue: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var issued map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &issued); err != nil {
		t.Fatalf("decode issue response: %v", err)
	}
	certID := issued["id"]
	if certID == "" {
		t.Fatalf("expected certificate id in response")
	}

	w = doJSON(t, router, http.MethodGet, "/api/progress/u1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("progress: expected 200, got %d", w.Code)
	}
	var records []model.ProgressRecord
	if err := json.Unmarshal(w.Body.Bytes(), &records); err != nil {
		t.Fatalf("decode records: %v", err)
	}
	if len(records) != 1 || records[0].CertificateID != certID {
		t.Fatalf("record must reference certificate %s: %+v", certID, records)
	}
	if !records[0].Completed || records[0].Progress != 100 {
		t.Fatalf("record must be complete: %+v", records[0])
	}

	w = doJSON(t, router, http.MethodGet, "/api/certificates/u1", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("certificates: expected 200, got %d", w.Code)
	}
	var certs []model.Certificate
	if err := json.Unmarshal(w.Body.Bytes(), &certs); err != nil {
		t.Fatalf("decode certificates: %v", err)
	}
	if len(certs) != 1 || certs[0].ID != certID || certs[0].Score == nil || *certs[0].Score != 90 {
		t.Fatalf("certificate list wrong: %+v", certs)
	}
}

func TestQuizSubmissionEndpoint(t *testing.T) {
	router := newTestRouter(t)

	body := `{
		"title": "带测验的课",
		"description": "d",
		"category": "c",
		"lessons": [],
		"quiz": {
			"passingScore": 50,
			"questions": [
				{"text": "Q1", "options": ["a", "b"], "correctOption": 1},
				{"text": "Q2", "options": ["a", "b"], "correctOption": 0}
			]
		}
	}`
	w := doJSON(t, router, http.MethodPost, "/api/courses", body, adminHeaders)
	if w.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d (%s)", w.Code, w.Body.String())
	}
	var course model.Course
	if err := json.Unmarshal(w.Body.Bytes(), &course); err != nil {
		t.Fatalf("decode course: %v", err)
	}

	w = doJSON(t, router, http.MethodPost,
		"/api/courses/"+course.ID+"/quiz/submissions", `{"answers": [1, 1]}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("submit: expected 200, got %d (%s)", w.Code, w.Body.String())
	}
	var result map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &result); err != nil {
		t.Fatalf("decode result: %v", err)
	}
	if result["score"].(float64) != 50 || result["passed"].(bool) != true {
		t.Fatalf("expected score 50 passed, got %v", result)
	}
}

func TestPreflightRequest(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/courses", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("preflight: expected 204, got %d", w.Code)
	}
	if w.Header().Get("Access-Control-Allow-Origin") == "" {
		t.Fatalf("missing CORS headers")
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", w.Code)
	}
}
