package stream

import (
	"io"
	"strings"
	"testing"
)

func readAll(t *testing.T, r io.Reader) string {
	t.Helper()
	b, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	return string(b)
}

func TestSSEReaderStripsFraming(t *testing.T) {
	feed := "data: {\"content\":\"He\n" +
		"data: llo\"}\n" +
		"\n" +
		"data: [DONE]\n"
	r := NewSSEReader(io.NopCloser(strings.NewReader(feed)))

	got := readAll(t, r)
	want := `{"content":"Hello"}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSSEReaderStopsAtDoneSentinel(t *testing.T) {
	feed := "data: before\n" +
		"data: [DONE]\n" +
		"data: after\n"
	r := NewSSEReader(io.NopCloser(strings.NewReader(feed)))

	if got := readAll(t, r); got != "before" {
		t.Errorf("got %q, want %q", got, "before")
	}
}

func TestSSEReaderSkipsNoise(t *testing.T) {
	feed := ": comment line\n" +
		"event: delta\n" +
		"retry: 500\n" +
		"data: payload\n" +
		"\n" +
		"data: [DONE]\n"
	r := NewSSEReader(io.NopCloser(strings.NewReader(feed)))

	if got := readAll(t, r); got != "payload" {
		t.Errorf("got %q, want %q", got, "payload")
	}
}

func TestSSEReaderEOFWithoutSentinel(t *testing.T) {
	// A gateway that dies mid-response never sends [DONE]; the adapter
	// forwards what arrived, then reports the cut, not a clean end.
	feed := "data: {\"content\":\"partial"
	r := NewSSEReader(io.NopCloser(strings.NewReader(feed)))

	got, err := io.ReadAll(r)
	if string(got) != `{"content":"partial` {
		t.Errorf("got %q", got)
	}
	if err != io.ErrUnexpectedEOF {
		t.Errorf("err = %v, want io.ErrUnexpectedEOF", err)
	}

	// The failure is sticky across further reads.
	if _, err := r.Read(make([]byte, 1)); err != io.ErrUnexpectedEOF {
		t.Errorf("repeat read err = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSSEReaderTruncationFailsIngestion(t *testing.T) {
	// A truncated remote stream must surface as an ingestion error so the
	// controller reports a transport failure instead of finalizing the
	// partial text as a successful lesson.
	feed := "data: {\"title\":\"T\",\"content\":\"Part"

	s := NewSession()
	err := s.Ingest(t.Context(), NewSSEReader(io.NopCloser(strings.NewReader(feed))))
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("ingest err = %v, want io.ErrUnexpectedEOF", err)
	}
}

func TestSSEReaderFeedsIngestion(t *testing.T) {
	feed := "data: {\"title\":\"T\",\"content\":\"Str\n" +
		"data: eamed body\"}\n" +
		"data: [DONE]\n"

	s := NewSession()
	if err := s.Ingest(t.Context(), NewSSEReader(io.NopCloser(strings.NewReader(feed)))); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	res := s.Finalize("fallback")
	if res.Content != "Streamed body" {
		t.Errorf("content = %q", res.Content)
	}
	if res.Title != "T" {
		t.Errorf("title = %q", res.Title)
	}
}
