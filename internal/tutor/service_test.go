package tutor

import (
	"context"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/store"
	"github.com/abhisek/coursegen/internal/stream"
)

func testCourse() *store.Course {
	return &store.Course{
		ID:               "c-1",
		Goal:             "learn Go concurrency",
		KnowledgeProfile: "knows basic Go syntax",
		Title:            "Concurrency in Go",
		Modules: []store.Module{
			{
				Order: 1,
				Title: "Goroutines",
				Subtopics: []store.Subtopic{
					{Order: 1, Title: "The go statement"},
					{Order: 2, Title: "WaitGroups"},
				},
			},
		},
	}
}

func validLessonJSON() string {
	return `{"title":"Understanding the go statement","content":"A goroutine is a lightweight thread managed by the Go runtime.","estimated_read_time_min":4}`
}

type fakeCourseRepo struct {
	store.CourseRepo
	course *store.Course
}

func (f *fakeCourseRepo) Get(_ context.Context, id string) (*store.Course, error) {
	if f.course == nil || f.course.ID != id {
		return nil, store.ErrNotFound
	}
	return f.course, nil
}

type fakeLessonRepo struct {
	store.LessonRepo
	saved *store.Lesson
	err   error
}

func (f *fakeLessonRepo) Upsert(_ context.Context, l *store.Lesson) error {
	if f.err != nil {
		return f.err
	}
	f.saved = l
	return nil
}

func params() stream.StartParams {
	return stream.StartParams{
		CourseID:      "c-1",
		ModuleOrder:   1,
		SubtopicOrder: 1,
		SubtopicTitle: "The go statement",
	}
}

func TestGenerateLesson_PersistsAndReturns(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validLessonJSON())})
	lessons := &fakeLessonRepo{}
	svc := NewService(mock, &fakeCourseRepo{course: testCourse()}, lessons, DefaultConfig())

	lesson, err := svc.GenerateLesson(t.Context(), params())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if lesson.Title != "Understanding the go statement" {
		t.Errorf("title = %q", lesson.Title)
	}
	if lesson.EstimatedReadTimeMin != 4 {
		t.Errorf("read time = %d", lesson.EstimatedReadTimeMin)
	}
	if lesson.Model != "mock" {
		t.Errorf("model = %q", lesson.Model)
	}
	if lessons.saved == nil || lessons.saved.Content != lesson.Content {
		t.Error("expected lesson to be persisted")
	}
}

func TestGenerateLesson_UnknownCoordinates(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), &fakeCourseRepo{course: testCourse()}, &fakeLessonRepo{}, DefaultConfig())

	p := params()
	p.SubtopicOrder = 9
	if _, err := svc.GenerateLesson(t.Context(), p); err == nil {
		t.Fatal("expected error for unknown subtopic")
	}

	p = params()
	p.ModuleOrder = 9
	if _, err := svc.GenerateLesson(t.Context(), p); err == nil {
		t.Fatal("expected error for unknown module")
	}
}

func TestGenerateLesson_UnknownCourse(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), &fakeCourseRepo{}, &fakeLessonRepo{}, DefaultConfig())

	if _, err := svc.GenerateLesson(t.Context(), params()); err == nil {
		t.Fatal("expected error for unknown course")
	}
}

func TestLessonPromptCarriesOutline(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: json.RawMessage(validLessonJSON())})
	svc := NewService(mock, &fakeCourseRepo{course: testCourse()}, &fakeLessonRepo{}, DefaultConfig())

	if _, err := svc.GenerateLesson(t.Context(), params()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	req := mock.Calls[0]
	if req.Schema != LessonSchema {
		t.Error("expected lesson schema on the request")
	}
	msg := req.Messages[0].Content
	for _, want := range []string{"Concurrency in Go", "WaitGroups", "subtopic 1.1: The go statement", "knows basic Go syntax"} {
		if !strings.Contains(msg, want) {
			t.Errorf("prompt missing %q", want)
		}
	}
}

func TestStreamingLessonEndToEnd(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Chunks: []string{
		`{"title":"Understanding the go state`,
		`ment","content":"A goroutine is a light`,
		`weight thread.","estimated_read_time_min":3}`,
	}})
	lessons := &fakeLessonRepo{}
	svc := NewService(mock, &fakeCourseRepo{course: testCourse()}, lessons, DefaultConfig())

	ctrl := svc.NewController(stream.Options{
		TickInterval: time.Millisecond,
		RunesPerTick: 64,
	})

	if err := ctrl.Start(t.Context(), params()); err != nil {
		t.Fatalf("start: %v", err)
	}

	select {
	case <-ctrl.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("controller did not finish")
	}

	if err := ctrl.Err(); err != nil {
		t.Fatalf("controller error: %v", err)
	}
	if !ctrl.IsSuccess() {
		t.Fatal("expected success")
	}

	data := ctrl.Data()
	if data == nil {
		t.Fatal("expected finalized result")
	}
	if data.Content != "A goroutine is a lightweight thread." {
		t.Errorf("content = %q", data.Content)
	}

	if lessons.saved == nil {
		t.Fatal("expected lesson to be persisted")
	}
	if lessons.saved.EstimatedReadTimeMin != 3 {
		t.Errorf("persisted read time = %d", lessons.saved.EstimatedReadTimeMin)
	}
	if lessons.saved.Model != "mock" {
		t.Errorf("persisted model = %q", lessons.saved.Model)
	}
}

func TestOpenLessonStream_RequiresStreamProvider(t *testing.T) {
	svc := NewService(blockingProvider{}, &fakeCourseRepo{course: testCourse()}, &fakeLessonRepo{}, DefaultConfig())

	_, err := svc.OpenLessonStream(t.Context(), params())
	if err == nil {
		t.Fatal("expected error for non-streaming provider")
	}
}

func TestSubtopicTitle(t *testing.T) {
	svc := NewService(llm.NewMockProvider(), &fakeCourseRepo{course: testCourse()}, &fakeLessonRepo{}, DefaultConfig())

	p := params()
	p.SubtopicOrder = 2
	title, err := svc.SubtopicTitle(t.Context(), p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if title != "WaitGroups" {
		t.Errorf("title = %q", title)
	}
}

// blockingProvider implements llm.Provider without streaming.
type blockingProvider struct{}

func (blockingProvider) Generate(context.Context, llm.Request) (*llm.Response, error) {
	return &llm.Response{Content: json.RawMessage(`{}`), Model: "blocking", StopReason: "end"}, nil
}

func (blockingProvider) ModelID() string { return "blocking" }
