package stream

import (
	"strings"
	"testing"
	"time"
)

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("condition not met before deadline")
}

func TestTypewriterRevealsGradually(t *testing.T) {
	s := NewSession()
	s.append(`{"content":"` + strings.Repeat("a", 200))

	tw := NewTypewriter(s, time.Millisecond, 5)
	tw.Start()
	defer tw.Stop()

	waitFor(t, time.Second, func() bool { return len(s.Displayed()) > 0 })

	// Mid-stream the display trails the raw buffer; the reveal is paced,
	// not chunk-sized.
	if got := s.Displayed(); len(got) == len(s.Raw()) {
		// Possible to catch up on a fast machine; tolerate only full catch-up
		// after enough ticks, not instantly.
		t.Logf("display caught up early: %d runes", len(got))
	}

	waitFor(t, time.Second, func() bool { return s.Displayed() == s.Raw() })
}

func TestTypewriterConvergesAfterStreamEnds(t *testing.T) {
	s := NewSession()
	s.append(`{"content":"short lesson body`)

	tw := NewTypewriter(s, time.Millisecond, 2)
	tw.Start()

	s.Finalize("t")
	waitFor(t, time.Second, func() bool { return s.Displayed() == s.Raw() })
	tw.Stop()

	if s.Displayed() != "short lesson body" {
		t.Errorf("displayed = %q", s.Displayed())
	}
}

func TestTypewriterSnapsWhenNotStreaming(t *testing.T) {
	s := NewSession()
	s.append(`{"content":"full text here`)
	s.Finalize("t")

	tw := NewTypewriter(s, time.Hour, 1) // ticks will never fire
	tw.Snap()

	if s.Displayed() != s.Raw() {
		t.Errorf("snap did not reveal full content: %q vs %q", s.Displayed(), s.Raw())
	}
}

func TestTypewriterNoSkippedOrDuplicatedRunes(t *testing.T) {
	s := NewSession()
	s.append(`{"content":"abcdefghij κόσμε 🌍 end`)

	tw := NewTypewriter(s, time.Millisecond, 1)
	tw.Start()

	var seen []string
	waitFor(t, 2*time.Second, func() bool {
		seen = append(seen, s.Displayed())
		return s.Displayed() == s.Raw()
	})
	s.Finalize("t")
	tw.Stop()

	// Every observation must be a prefix of the final content; prefixes
	// imply no skips, no duplicates, no torn runes.
	final := s.Raw()
	for _, obs := range seen {
		if !strings.HasPrefix(final, obs) {
			t.Fatalf("observed %q is not a prefix of %q", obs, final)
		}
	}
}

func TestTypewriterStopIdempotent(t *testing.T) {
	s := NewSession()
	tw := NewTypewriter(s, time.Millisecond, 1)
	tw.Start()
	tw.Stop()
	tw.Stop()
}

func TestTypewriterEmptyBufferNoMovement(t *testing.T) {
	s := NewSession()
	tw := NewTypewriter(s, time.Millisecond, 3)
	tw.Start()
	time.Sleep(20 * time.Millisecond)
	tw.Stop()

	if s.Displayed() != "" {
		t.Errorf("displayed = %q, want empty", s.Displayed())
	}
}
