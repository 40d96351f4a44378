package tui

import (
	"context"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/abhisek/coursegen/internal/stream"
)

type stubStreamer struct {
	doc string
}

func (s stubStreamer) OpenLessonStream(ctx context.Context, p stream.StartParams) (io.ReadCloser, error) {
	return io.NopCloser(strings.NewReader(s.doc)), nil
}

func finishedController(t *testing.T, doc string) *stream.Controller {
	t.Helper()
	ctrl := stream.NewController(stubStreamer{doc: doc}, stream.NopSaver{}, stream.Options{
		TickInterval: time.Millisecond,
		RunesPerTick: 1 << 16,
	})
	if err := ctrl.Start(context.Background(), stream.StartParams{SubtopicTitle: "Fallback"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	select {
	case <-ctrl.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("controller did not finish")
	}
	return ctrl
}

func TestTailLines(t *testing.T) {
	s := "a\nb\nc\nd"
	if got := tailLines(s, 2); got != "c\nd" {
		t.Errorf("tailLines = %q, want %q", got, "c\nd")
	}
	if got := tailLines(s, 10); got != s {
		t.Errorf("tailLines = %q, want full string", got)
	}
	if got := tailLines(s, 0); got != "" {
		t.Errorf("tailLines = %q, want empty", got)
	}
}

func TestLessonModel_View_WaitingState(t *testing.T) {
	ctrl := stream.NewController(stubStreamer{}, stream.NopSaver{}, stream.Options{})
	m := newLessonModel(ctrl, stream.StartParams{SubtopicTitle: "The go statement"})
	m.width, m.height = 80, 24

	body := m.renderBody(20)
	if !strings.Contains(body, "Preparing your lesson") {
		t.Errorf("expected waiting message, got %q", body)
	}
	if !strings.Contains(m.headerLine(), "The go statement") {
		t.Error("expected header to show the subtopic title")
	}
}

func TestLessonModel_View_Finished(t *testing.T) {
	doc := `{"title": "Goroutines", "content": "The go statement starts a goroutine.", "estimated_read_time_min": 3}`
	ctrl := finishedController(t, doc)

	m := newLessonModel(ctrl, stream.StartParams{SubtopicTitle: "Fallback"})
	m.width, m.height = 80, 24
	m.started = true
	m.finished = true

	if !strings.Contains(m.renderBody(20), "go statement starts a goroutine") {
		t.Error("expected finished body to show lesson content")
	}
	if !strings.Contains(m.headerLine(), "Goroutines") {
		t.Error("expected header to show the generated title")
	}
	if !strings.Contains(m.footerLine(), "3 min read") {
		t.Error("expected footer to show the read-time estimate")
	}
}

func TestLessonModel_View_ExhaustedRecovery(t *testing.T) {
	ctrl := finishedController(t, "not json at all")

	m := newLessonModel(ctrl, stream.StartParams{})
	m.width, m.height = 80, 24
	m.started = true
	m.finished = true

	if !strings.Contains(m.renderBody(20), "no usable lesson content") {
		t.Errorf("expected exhausted-recovery message, got %q", m.renderBody(20))
	}
}
