package stream

import (
	"context"
	"io"
	"strings"
	"testing"
)

// chunkReader yields the given chunks one per Read call, then io.EOF.
type chunkReader struct {
	chunks [][]byte
	err    error // returned after the chunks are exhausted instead of EOF
}

func newChunkReader(chunks ...string) *chunkReader {
	r := &chunkReader{}
	for _, c := range chunks {
		r.chunks = append(r.chunks, []byte(c))
	}
	return r
}

func (r *chunkReader) Read(p []byte) (int, error) {
	if len(r.chunks) == 0 {
		if r.err != nil {
			return 0, r.err
		}
		return 0, io.EOF
	}
	n := copy(p, r.chunks[0])
	if n < len(r.chunks[0]) {
		r.chunks[0] = r.chunks[0][n:]
	} else {
		r.chunks = r.chunks[1:]
	}
	return n, nil
}

func ingest(t *testing.T, s *Session, chunks ...string) {
	t.Helper()
	if err := s.Ingest(context.Background(), newChunkReader(chunks...)); err != nil {
		t.Fatalf("ingest: %v", err)
	}
}

func TestSessionIngestExtractsIncrementally(t *testing.T) {
	s := NewSession()
	ingest(t, s,
		`{"title":"T",`,
		`"content":"Hello`,
		` world`,
	)
	if got := s.Raw(); got != "Hello world" {
		t.Errorf("raw buffer = %q, want %q", got, "Hello world")
	}
}

func TestSessionNeverRegresses(t *testing.T) {
	s := NewSession()
	ingest(t, s, `{"title":"T","content":"stable text`)
	if s.Raw() != "stable text" {
		t.Fatalf("setup failed, raw = %q", s.Raw())
	}

	// The next chunk leaves the accumulated text mid-escape-sequence, which
	// fails extraction. The buffer must keep the prior content.
	if err := s.Ingest(context.Background(), newChunkReader(`\`)); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if s.Raw() != "stable text" {
		t.Errorf("raw buffer regressed to %q after failed extraction", s.Raw())
	}

	// Completing the escape sequence resumes growth.
	if err := s.Ingest(context.Background(), newChunkReader(`nmore`)); err != nil {
		t.Fatalf("ingest: %v", err)
	}
	if s.Raw() != "stable text\nmore" {
		t.Errorf("raw buffer = %q, want %q", s.Raw(), "stable text\nmore")
	}
}

func TestSessionMultiByteSplitAcrossChunks(t *testing.T) {
	s := NewSession()
	text := `{"content":"héllo wörld"}`
	raw := []byte(text)

	// Split in the middle of the two-byte é (bytes 13/14 of the document).
	var mid int
	for i := range raw {
		if raw[i] >= 0x80 {
			mid = i + 1
			break
		}
	}
	ingest(t, s, string(raw[:mid]), string(raw[mid:]))

	res := s.Finalize("fallback")
	if res.Content != "héllo wörld" {
		t.Errorf("content = %q, want %q", res.Content, "héllo wörld")
	}
	if strings.ContainsRune(res.Content, '�') {
		t.Error("content contains replacement characters")
	}
}

func TestSessionFinalizeFullParse(t *testing.T) {
	s := NewSession()
	ingest(t, s, `{"title":"Intro to Go","content":"Full lesson.","estimated_read_time_min":4}`)

	res := s.Finalize("fallback")
	if res.Title != "Intro to Go" {
		t.Errorf("title = %q", res.Title)
	}
	if res.Content != "Full lesson." {
		t.Errorf("content = %q", res.Content)
	}
	if res.EstimatedReadTimeMin != 4 {
		t.Errorf("read time = %d, want 4", res.EstimatedReadTimeMin)
	}
	if s.IsStreaming() {
		t.Error("session still streaming after finalize")
	}
}

func TestSessionFinalizeDefaultsMissingTitle(t *testing.T) {
	s := NewSession()
	ingest(t, s, `{"content":"No title here."}`)

	res := s.Finalize("Requested Subtopic")
	if res.Title != "Requested Subtopic" {
		t.Errorf("title = %q, want fallback", res.Title)
	}
}

func TestSessionFinalizeIgnoresOutOfRangeReadTime(t *testing.T) {
	s := NewSession()
	ingest(t, s, `{"title":"T","content":"C","estimated_read_time_min":500}`)

	res := s.Finalize("fallback")
	if res.EstimatedReadTimeMin != 0 {
		t.Errorf("read time = %d, want 0", res.EstimatedReadTimeMin)
	}
}

func TestSessionFinalizeLengthensBuffer(t *testing.T) {
	s := NewSession()
	// The tail of the value only becomes extractable once the closing
	// quote arrives with the last chunk.
	ingest(t, s, `{"title":"T","content":"part one`, ` and two"}`)

	res := s.Finalize("fallback")
	if res.Content != "part one and two" {
		t.Errorf("content = %q", res.Content)
	}
	if s.Raw() != res.Content {
		t.Errorf("raw buffer %q not updated to final content", s.Raw())
	}
}

func TestSessionFinalizeFallsBackToExtraction(t *testing.T) {
	s := NewSession()
	// Gateway died mid-response: never valid JSON.
	ingest(t, s, `{"title":"T","content":"Partial lesson tex`)

	res := s.Finalize("Requested Subtopic")
	if res.Content != "Partial lesson tex" {
		t.Errorf("content = %q, want partial text", res.Content)
	}
	if res.Title != "Requested Subtopic" {
		t.Errorf("title = %q, want fallback", res.Title)
	}
}

func TestSessionFinalizeWithCursorCaughtUp(t *testing.T) {
	s := NewSession()
	ingest(t, s, `{"content":"abcdefghij`)

	// Display caught up with everything extracted so far.
	s.advance(len("abcdefghij"))
	if got := s.Displayed(); got != "abcdefghij" {
		t.Fatalf("displayed = %q", got)
	}

	// The stream ends without closing JSON, so finalization re-sets the raw
	// buffer to content exactly as long as the cursor.
	res := s.Finalize("fallback")
	if res.Content != "abcdefghij" {
		t.Errorf("content = %q", res.Content)
	}
	if got := s.Displayed(); got != "abcdefghij" {
		t.Errorf("displayed after finalize = %q", got)
	}
}

func TestSessionSetRawShorterThanCursor(t *testing.T) {
	s := NewSession()
	ingest(t, s, `{"content":"héllo wörld`)
	s.advance(100)

	s.mu.Lock()
	s.setRaw("héllo")
	aligned := s.cursor == len("héllo")
	s.mu.Unlock()
	if !aligned {
		t.Errorf("cursor not clamped to new buffer end")
	}
}

func TestSessionFinalizeFallsBackToLastValid(t *testing.T) {
	s := NewSession()
	// Valid partial arrives, then the stream degenerates into an unfinished
	// escape that defeats both extraction passes over the full text.
	ingest(t, s, `{"title":"T","content":"last coherent text`, `\`)

	res := s.Finalize("fallback")
	if res.Content != "last coherent text" {
		t.Errorf("content = %q, want last valid extraction", res.Content)
	}
}

func TestSessionFinalizeExhaustedRecovery(t *testing.T) {
	s := NewSession()
	ingest(t, s, `total garbage, no content field at all`)

	res := s.Finalize("Requested Subtopic")
	if res.Content != "" {
		t.Errorf("content = %q, want empty", res.Content)
	}
	if res.Title != "Requested Subtopic" {
		t.Errorf("title = %q", res.Title)
	}
	if s.Raw() != "" {
		t.Errorf("raw JSON leaked into the buffer: %q", s.Raw())
	}
}

func TestSessionFinalizeSetsResultOnce(t *testing.T) {
	s := NewSession()
	ingest(t, s, `{"title":"T","content":"C"}`)

	first := s.Finalize("fallback")
	second := s.Finalize("other")
	if first != second {
		t.Error("finalize produced a second result for the same session")
	}
}

func TestSessionIngestPropagatesReadError(t *testing.T) {
	s := NewSession()
	r := newChunkReader(`{"content":"some`)
	r.err = io.ErrUnexpectedEOF

	err := s.Ingest(context.Background(), r)
	if err != io.ErrUnexpectedEOF {
		t.Fatalf("expected read error to propagate, got %v", err)
	}
}

func TestSessionReset(t *testing.T) {
	s := NewSession()
	ingest(t, s, `{"content":"something"}`)
	s.Finalize("t")

	s.Reset()
	if s.Raw() != "" || s.Displayed() != "" {
		t.Error("buffers not cleared on reset")
	}
	if s.Result() != nil {
		t.Error("result not cleared on reset")
	}
	if !s.IsStreaming() {
		t.Error("reset session should be ready to stream")
	}
}
