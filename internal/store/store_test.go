package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func testCourse() *Course {
	return &Course{
		ID:               "c-1",
		Goal:             "learn Go concurrency",
		KnowledgeProfile: "knows basic Go syntax",
		Title:            "Concurrency in Go",
		Description:      "From goroutines to pipelines.",
		Modules: []Module{
			{
				Order:       1,
				Title:       "Goroutines",
				Description: "Starting and coordinating goroutines.",
				Subtopics: []Subtopic{
					{Order: 1, Title: "The go statement"},
					{Order: 2, Title: "WaitGroups"},
				},
			},
			{
				Order: 2,
				Title: "Channels",
				Subtopics: []Subtopic{
					{Order: 1, Title: "Unbuffered channels"},
				},
			},
		},
	}
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestCourseCreateAndGet(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	if err := repo.Create(ctx, testCourse()); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := repo.Get(ctx, "c-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Title != "Concurrency in Go" {
		t.Fatalf("title = %q", got.Title)
	}
	if len(got.Modules) != 2 {
		t.Fatalf("expected 2 modules, got %d", len(got.Modules))
	}
	if len(got.Modules[0].Subtopics) != 2 {
		t.Fatalf("expected 2 subtopics in module 1, got %d", len(got.Modules[0].Subtopics))
	}
	if got.Modules[0].Subtopics[1].Title != "WaitGroups" {
		t.Fatalf("subtopic 1.2 = %q", got.Modules[0].Subtopics[1].Title)
	}
	if got.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be set")
	}
}

func TestCourseGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.CourseRepo().Get(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestCourseList(t *testing.T) {
	s := openTestStore(t)
	repo := s.CourseRepo()
	ctx := context.Background()

	c1 := testCourse()
	c2 := testCourse()
	c2.ID = "c-2"
	c2.Title = "Another Course"

	if err := repo.Create(ctx, c1); err != nil {
		t.Fatalf("create c1: %v", err)
	}
	if err := repo.Create(ctx, c2); err != nil {
		t.Fatalf("create c2: %v", err)
	}

	courses, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(courses) != 2 {
		t.Fatalf("expected 2 courses, got %d", len(courses))
	}
	// List omits outline details.
	if len(courses[0].Modules) != 0 {
		t.Fatal("expected list results without modules")
	}
}

func TestCourseDeleteAll(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.CourseRepo().Create(ctx, testCourse()); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := s.LessonRepo().Upsert(ctx, &Lesson{
		CourseID: "c-1", ModuleOrder: 1, SubtopicOrder: 1,
		Title: "The go statement", Content: "body",
	}); err != nil {
		t.Fatalf("upsert lesson: %v", err)
	}

	if err := s.CourseRepo().DeleteAll(ctx); err != nil {
		t.Fatalf("delete all: %v", err)
	}

	courses, err := s.CourseRepo().List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(courses) != 0 {
		t.Fatalf("expected 0 courses, got %d", len(courses))
	}
	if _, err := s.LessonRepo().Get(ctx, "c-1", 1, 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected lesson gone, got: %v", err)
	}
}

func TestLessonUpsertReplacesContent(t *testing.T) {
	s := openTestStore(t)
	repo := s.LessonRepo()
	ctx := context.Background()

	first := &Lesson{
		CourseID: "c-1", ModuleOrder: 1, SubtopicOrder: 2,
		Title: "WaitGroups", Content: "first draft", Model: "mock",
	}
	if err := repo.Upsert(ctx, first); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	second := &Lesson{
		CourseID: "c-1", ModuleOrder: 1, SubtopicOrder: 2,
		Title: "WaitGroups, revisited", Content: "second draft",
		EstimatedReadTimeMin: 5, Model: "mock",
	}
	if err := repo.Upsert(ctx, second); err != nil {
		t.Fatalf("upsert (replace): %v", err)
	}

	got, err := repo.Get(ctx, "c-1", 1, 2)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Content != "second draft" {
		t.Fatalf("content = %q", got.Content)
	}
	if got.Title != "WaitGroups, revisited" {
		t.Fatalf("title = %q", got.Title)
	}
	if got.EstimatedReadTimeMin != 5 {
		t.Fatalf("read time = %d", got.EstimatedReadTimeMin)
	}

	all, err := repo.ListByCourse(ctx, "c-1")
	if err != nil {
		t.Fatalf("list by course: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("expected 1 lesson after upsert, got %d", len(all))
	}
}

func TestLessonGetNotFound(t *testing.T) {
	s := openTestStore(t)

	_, err := s.LessonRepo().Get(context.Background(), "c-1", 9, 9)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      "lesson-gen",
			InputTokens:  10 + i,
			OutputTokens: 20 + i,
			Success:      true,
			RequestBody:  "[user]\nprompt\n",
			ResponseBody: `{"ok":true}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}
	// Newest first.
	if events[0].Sequence <= events[1].Sequence {
		t.Fatalf("expected descending sequence, got %d then %d", events[0].Sequence, events[1].Sequence)
	}
	if events[0].ResponseBody != `{"ok":true}` {
		t.Fatalf("response body = %q", events[0].ResponseBody)
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 events, got %d", len(limited))
	}

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	if err != nil {
		t.Fatalf("get event: %v", err)
	}
	if got.Purpose != "lesson-gen" {
		t.Fatalf("purpose = %q", got.Purpose)
	}

	if _, err := repo.GetLLMEvent(ctx, 9999); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got: %v", err)
	}
}

func TestSequenceCounterMonotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		seq, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if seq <= prev {
			t.Fatalf("sequence not increasing: %d after %d", seq, prev)
		}
		prev = seq
	}
}
