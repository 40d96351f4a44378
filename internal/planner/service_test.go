package planner

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/store"
)

func validOutlineJSON() json.RawMessage {
	return json.RawMessage(`{
		"title": "Practical Go Concurrency",
		"description": "Build concurrent Go programs with goroutines, channels, and the patterns that tie them together.",
		"modules": [
			{
				"title": "Goroutines",
				"description": "Starting and coordinating goroutines.",
				"subtopics": ["The go statement", "WaitGroups"]
			},
			{
				"title": "Channels",
				"description": "Communicating between goroutines.",
				"subtopics": ["Unbuffered channels", "Select"]
			}
		]
	}`)
}

// fakeCourseRepo records the created course.
type fakeCourseRepo struct {
	store.CourseRepo
	created *store.Course
	err     error
}

func (f *fakeCourseRepo) Create(_ context.Context, c *store.Course) error {
	if f.err != nil {
		return f.err
	}
	f.created = c
	return nil
}

func TestService_PlansAndPersistsCourse(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutlineJSON()})
	repo := &fakeCourseRepo{}
	svc := NewService(mock, repo, DefaultConfig())

	course, err := svc.PlanCourse(t.Context(), PlanInput{
		Goal:             "learn Go concurrency",
		KnowledgeProfile: "knows basic Go syntax",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if course.ID == "" {
		t.Error("expected a generated course ID")
	}
	if course.Title != "Practical Go Concurrency" {
		t.Errorf("title = %q", course.Title)
	}
	if course.Goal != "learn Go concurrency" {
		t.Errorf("goal = %q", course.Goal)
	}
	if len(course.Modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(course.Modules))
	}
	if course.Modules[0].Order != 1 || course.Modules[1].Order != 2 {
		t.Error("expected 1-based module ordering")
	}
	if got := course.Modules[1].Subtopics[1]; got.Order != 2 || got.Title != "Select" {
		t.Errorf("subtopic 2.2 = %+v", got)
	}

	if repo.created == nil {
		t.Fatal("expected course to be persisted")
	}
	if repo.created.ID != course.ID {
		t.Error("persisted course should match returned course")
	}
}

func TestService_RequiresGoal(t *testing.T) {
	mock := llm.NewMockProvider()
	svc := NewService(mock, &fakeCourseRepo{}, DefaultConfig())

	_, err := svc.PlanCourse(t.Context(), PlanInput{})
	if err == nil {
		t.Fatal("expected error for empty goal")
	}
	if mock.CallCount() != 0 {
		t.Error("provider should not be called")
	}
}

func TestService_PromptCarriesProfile(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Content: validOutlineJSON()})
	svc := NewService(mock, &fakeCourseRepo{}, DefaultConfig())

	_, err := svc.PlanCourse(t.Context(), PlanInput{
		Goal:             "learn SQL",
		KnowledgeProfile: "has used spreadsheets extensively",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(mock.Calls) != 1 {
		t.Fatalf("expected 1 call, got %d", len(mock.Calls))
	}
	req := mock.Calls[0]
	if req.Schema != OutlineSchema {
		t.Error("expected outline schema on the request")
	}
	msg := req.Messages[0].Content
	if !strings.Contains(msg, "learn SQL") {
		t.Error("prompt should carry the goal")
	}
	if !strings.Contains(msg, "spreadsheets") {
		t.Error("prompt should carry the knowledge profile")
	}
}

func TestService_ProviderErrorNotPersisted(t *testing.T) {
	mock := llm.NewMockProvider(llm.MockResponse{Err: &llm.ErrProviderUnavailable{}})
	repo := &fakeCourseRepo{}
	svc := NewService(mock, repo, DefaultConfig())

	_, err := svc.PlanCourse(t.Context(), PlanInput{Goal: "learn Go"})
	if err == nil {
		t.Fatal("expected error")
	}
	if repo.created != nil {
		t.Error("nothing should be persisted on provider failure")
	}
}
