package stream

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

// Result is the finalized structured output of one streaming generation.
// It is set exactly once per session, at finalization.
type Result struct {
	Title                string `json:"title"`
	Content              string `json:"content"`
	EstimatedReadTimeMin int    `json:"estimated_read_time_min,omitempty"`
}

// Session holds the mutable state of one streaming lesson generation.
//
// Two tasks share a Session: the ingestion loop (writer of raw and
// accumulated state) and the typewriter (writer of the display cursor).
// Unlike the cooperative single-threaded model this design descends from,
// goroutines really do run in parallel, so all shared state sits behind one
// mutex and readers always observe the current buffer, never a stale
// snapshot.
type Session struct {
	mu sync.Mutex

	// raw is the best-known extracted lesson text so far. It is only ever
	// replaced by a non-empty extraction, so it never regresses to raw JSON
	// or to empty once content existed (except on Reset).
	raw string

	// cursor is the byte offset into raw up to which content has been
	// revealed. Always rune-aligned and <= len(raw).
	cursor int

	// streaming is true from session start until the byte stream is fully
	// drained. The typewriter may still be catching up after it turns false.
	streaming bool

	// accumulated is the full concatenation of all decoded bytes received.
	// Used only for extraction and final parsing; never shown to the user.
	accumulated strings.Builder

	// lastValid is the most recent non-empty extraction, kept as the last
	// line of defense when finalization cannot parse anything.
	lastValid string

	result *Result
}

// NewSession creates a session in the streaming state, ready for ingestion.
func NewSession() *Session {
	return &Session{streaming: true}
}

// newIdleSession creates an empty, non-streaming session. It backs a
// controller's observables before the first Start and after Reset.
func newIdleSession() *Session {
	return &Session{}
}

// Raw returns the best-known extracted lesson text.
func (s *Session) Raw() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw
}

// Displayed returns the prefix of the raw buffer revealed so far.
func (s *Session) Displayed() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.raw[:s.cursor]
}

// IsStreaming reports whether the byte stream is still being drained.
func (s *Session) IsStreaming() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.streaming
}

// Result returns the finalized output, or nil before finalization.
func (s *Session) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Reset clears all buffers and returns the session to the streaming state.
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = ""
	s.cursor = 0
	s.streaming = true
	s.accumulated.Reset()
	s.lastValid = ""
	s.result = nil
}

// Ingest drains r into the session: each chunk is decoded, appended to the
// accumulated text, and re-extracted. Incomplete multi-byte UTF-8 sequences
// at a chunk boundary are held back until the remaining bytes arrive, so a
// split character never reaches the extractor as garbage.
//
// Ingest returns nil when the stream is exhausted and the caller should
// finalize, or the underlying read error (transport failure). It does not
// mark the stream finished itself; Finalize does.
func (s *Session) Ingest(ctx context.Context, r io.Reader) error {
	buf := make([]byte, 4096)
	var pending []byte

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := r.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			if valid := completePrefixLen(pending); valid > 0 {
				s.append(string(pending[:valid]))
				pending = append(pending[:0], pending[valid:]...)
			}
		}
		if err == io.EOF {
			if len(pending) > 0 {
				s.append(string(pending))
			}
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// append adds decoded text and re-runs extraction over the full accumulated
// stream. The raw buffer is only replaced when extraction yields non-empty
// content; a failed increment (for example mid-escape-sequence) leaves the
// previously extracted text visible.
func (s *Session) append(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.accumulated.WriteString(text)

	ext := ExtractContent(s.accumulated.String())
	if ext.Kind == ExtractionFailed || ext.Content == "" {
		return
	}
	s.setRaw(ext.Content)
	s.lastValid = ext.Content
}

// setRaw replaces the raw buffer, keeping the display cursor inside it and
// rune-aligned. A cursor sitting at the end of the buffer is already aligned.
// Callers must hold the mutex.
func (s *Session) setRaw(content string) {
	s.raw = content
	if s.cursor > len(s.raw) {
		s.cursor = len(s.raw)
	}
	for s.cursor > 0 && s.cursor < len(s.raw) && !utf8.RuneStart(s.raw[s.cursor]) {
		s.cursor--
	}
}

// advance moves the display cursor forward by up to n runes and reports
// whether the cursor has caught up with the raw buffer and whether the
// stream is still being drained. When streaming has ended it snaps straight
// to the full content.
func (s *Session) advance(n int) (caughtUp, streaming bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.streaming {
		s.cursor = len(s.raw)
		return true, false
	}

	for i := 0; i < n && s.cursor < len(s.raw); i++ {
		_, size := utf8.DecodeRuneInString(s.raw[s.cursor:])
		s.cursor += size
	}
	return s.cursor >= len(s.raw), true
}

// Finalize marks the stream drained and produces the authoritative result
// from the complete accumulated text, cascading through recovery layers:
// full parse, re-extraction, last valid extraction, and finally an empty
// content with the fallback title. Raw JSON is never surfaced as content.
// The result is set exactly once; later calls return the existing result.
func (s *Session) Finalize(fallbackTitle string) *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.streaming = false
	if s.result != nil {
		return s.result
	}

	full := strings.TrimSpace(s.accumulated.String())

	if res, ok := parseFinalDocument(full, fallbackTitle); ok {
		// Trailing content may only become extractable once the closing
		// quote arrives, so the final parse can lengthen the raw buffer.
		s.setRaw(res.Content)
		s.result = res
		return res
	}

	if ext := ExtractContent(full); ext.Kind != ExtractionFailed && ext.Content != "" {
		s.setRaw(ext.Content)
		s.result = &Result{Title: fallbackTitle, Content: ext.Content}
		return s.result
	}

	if s.lastValid != "" {
		s.setRaw(s.lastValid)
		s.result = &Result{Title: fallbackTitle, Content: s.lastValid}
		return s.result
	}

	s.result = &Result{Title: fallbackTitle}
	return s.result
}

// Clear empties every buffer and marks the stream finished. Used when a
// transport failure invalidates whatever partial content was extracted.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.raw = ""
	s.cursor = 0
	s.streaming = false
	s.accumulated.Reset()
	s.lastValid = ""
}

// parseFinalDocument attempts a strict full parse of the complete document.
// It succeeds only when the document is valid JSON with a string content
// field. A missing or non-string title falls back to fallbackTitle, and the
// read-time estimate is carried only when it is numeric and in range.
func parseFinalDocument(full, fallbackTitle string) (*Result, bool) {
	var doc map[string]any
	if err := json.Unmarshal([]byte(full), &doc); err != nil {
		return nil, false
	}
	content, ok := doc["content"].(string)
	if !ok {
		return nil, false
	}

	res := &Result{
		Title:   fallbackTitle,
		Content: NormalizeEscapes(content),
	}
	if t, ok := doc["title"].(string); ok && t != "" {
		res.Title = t
	}
	if v, ok := doc["estimated_read_time_min"].(float64); ok && v >= 1 && v <= 30 {
		res.EstimatedReadTimeMin = int(v)
	}
	return res, true
}

// completePrefixLen returns the length of the longest prefix of b that ends
// on a complete UTF-8 character. Up to three bytes of a potentially
// incomplete trailing sequence are excluded; anything definitely invalid is
// passed through so the stream cannot stall on garbage input.
func completePrefixLen(b []byte) int {
	valid := 0
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			if len(b)-i < utf8.UTFMax {
				// Might be the start of a multi-byte character whose tail
				// hasn't arrived yet; hold it back.
				break
			}
			i++
			valid = i
			continue
		}
		i += size
		valid = i
	}
	return valid
}
