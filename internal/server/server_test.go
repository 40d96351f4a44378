package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/planner"
	"github.com/abhisek/coursegen/internal/store"
	"github.com/abhisek/coursegen/internal/stream"
	"github.com/abhisek/coursegen/internal/tutor"
)

type fakeCourseRepo struct {
	store.CourseRepo
	courses map[string]*store.Course
}

func newFakeCourseRepo(courses ...*store.Course) *fakeCourseRepo {
	m := make(map[string]*store.Course)
	for _, c := range courses {
		m[c.ID] = c
	}
	return &fakeCourseRepo{courses: m}
}

func (f *fakeCourseRepo) Create(_ context.Context, c *store.Course) error {
	f.courses[c.ID] = c
	return nil
}

func (f *fakeCourseRepo) Get(_ context.Context, id string) (*store.Course, error) {
	c, ok := f.courses[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return c, nil
}

func (f *fakeCourseRepo) List(_ context.Context) ([]*store.Course, error) {
	out := make([]*store.Course, 0, len(f.courses))
	for _, c := range f.courses {
		out = append(out, c)
	}
	return out, nil
}

type fakeLessonRepo struct {
	store.LessonRepo
	saved *store.Lesson
}

func (f *fakeLessonRepo) Upsert(_ context.Context, l *store.Lesson) error {
	f.saved = l
	return nil
}

func testCourse() *store.Course {
	return &store.Course{
		ID:    "c-1",
		Goal:  "learn Go concurrency",
		Title: "Concurrency in Go",
		Modules: []store.Module{
			{
				Order: 1,
				Title: "Goroutines",
				Subtopics: []store.Subtopic{
					{Order: 1, Title: "The go statement"},
				},
			},
		},
	}
}

func newTestServer(t *testing.T, mock *llm.MockProvider, courses *fakeCourseRepo, lessons *fakeLessonRepo) *httptest.Server {
	t.Helper()
	plannerSvc := planner.NewService(mock, courses, planner.DefaultConfig())
	tutorSvc := tutor.NewService(mock, courses, lessons, tutor.DefaultConfig())
	srv := httptest.NewServer(Router(
		&courseHandler{planner: plannerSvc, courses: courses},
		&lessonHandler{tutor: tutorSvc, lessons: lessons},
	))
	t.Cleanup(srv.Close)
	return srv
}

func TestPlanCourseEndpoint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(`{
		"title": "Practical Go Concurrency",
		"description": "Goroutines to pipelines.",
		"modules": [
			{"title": "Goroutines", "description": "Basics.", "subtopics": ["The go statement"]}
		]
	}`)})
	courses := newFakeCourseRepo()
	srv := newTestServer(t, mock, courses, &fakeLessonRepo{})

	resp, err := http.Post(srv.URL+"/api/courses", "application/json",
		strings.NewReader(`{"goal":"learn Go concurrency","knowledge_profile":"knows basic Go"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d", resp.StatusCode)
	}

	var got courseJSON
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.ID == "" {
		t.Error("expected a course ID")
	}
	if got.Title != "Practical Go Concurrency" {
		t.Errorf("title = %q", got.Title)
	}
	if len(courses.courses) != 1 {
		t.Error("expected course to be persisted")
	}
}

func TestPlanCourseRequiresGoal(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(), newFakeCourseRepo(), &fakeLessonRepo{})

	resp, err := http.Post(srv.URL+"/api/courses", "application/json", strings.NewReader(`{}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestGetCourseEndpoint(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(), newFakeCourseRepo(testCourse()), &fakeLessonRepo{})

	resp, err := http.Get(srv.URL + "/api/courses/c-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got courseJSON
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Modules) != 1 || got.Modules[0].Subtopics[0].Title != "The go statement" {
		t.Errorf("unexpected course body: %+v", got)
	}
}

func TestGetCourseNotFound(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(), newFakeCourseRepo(), &fakeLessonRepo{})

	resp, err := http.Get(srv.URL + "/api/courses/missing")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestGenerateLessonEndpoint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`{"title":"Understanding the go statement","content":"A goroutine is lightweight.","estimated_read_time_min":3}`),
	})
	lessons := &fakeLessonRepo{}
	srv := newTestServer(t, mock, newFakeCourseRepo(testCourse()), lessons)

	resp, err := http.Post(srv.URL+"/api/courses/c-1/lesson", "application/json",
		strings.NewReader(`{"module":1,"subtopic":1}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	var got lessonJSON
	if err := json.NewDecoder(resp.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Content != "A goroutine is lightweight." {
		t.Errorf("content = %q", got.Content)
	}
	if lessons.saved == nil {
		t.Error("expected lesson to be persisted")
	}
}

func TestGenerateLessonRejectsBadCoordinates(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(), newFakeCourseRepo(testCourse()), &fakeLessonRepo{})

	resp, err := http.Post(srv.URL+"/api/courses/c-1/lesson", "application/json",
		strings.NewReader(`{"module":0,"subtopic":1}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}

func TestStreamLessonEndpoint(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Chunks: []string{
		`{"title":"Understanding the go state`,
		`ment","content":"A goroutine is a light`,
		`weight thread.","estimated_read_time_min":3}`,
	}})
	lessons := &fakeLessonRepo{}
	srv := newTestServer(t, mock, newFakeCourseRepo(testCourse()), lessons)

	resp, err := http.Post(srv.URL+"/api/courses/c-1/lesson/stream", "application/json",
		strings.NewReader(`{"module":1,"subtopic":1}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("content type = %q", ct)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	body := string(raw)
	if !strings.Contains(body, "data: ") {
		t.Fatal("expected SSE data lines")
	}
	if !strings.HasSuffix(strings.TrimSpace(body), "data: "+stream.DoneSentinel) {
		t.Fatalf("expected trailing done sentinel, got tail: %q", body[len(body)-40:])
	}

	// The proxied payload must reassemble into the original document.
	payload, err := io.ReadAll(stream.NewSSEReader(io.NopCloser(strings.NewReader(body))))
	if err != nil {
		t.Fatalf("reassemble: %v", err)
	}
	var doc map[string]any
	if err := json.Unmarshal(payload, &doc); err != nil {
		t.Fatalf("reassembled payload is not JSON: %v", err)
	}
	if doc["content"] != "A goroutine is a lightweight thread." {
		t.Errorf("content = %v", doc["content"])
	}

	if lessons.saved == nil {
		t.Fatal("expected streamed lesson to be persisted")
	}
	if lessons.saved.Title != "Understanding the go statement" {
		t.Errorf("persisted title = %q", lessons.saved.Title)
	}
}

func TestStreamLessonUnknownCourse(t *testing.T) {
	srv := newTestServer(t, llm.NewMockProvider(), newFakeCourseRepo(), &fakeLessonRepo{})

	resp, err := http.Post(srv.URL+"/api/courses/missing/lesson/stream", "application/json",
		strings.NewReader(`{"module":1,"subtopic":1}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d", resp.StatusCode)
	}
}
