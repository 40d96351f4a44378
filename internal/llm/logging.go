package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/abhisek/coursegen/internal/store"
)

// LoggingProvider is a decorator that records every LLM request as an event.
type LoggingProvider struct {
	inner     Provider
	eventRepo store.EventRepo
}

// WithLogging wraps a Provider with event logging.
func WithLogging(p Provider, repo store.EventRepo) Provider {
	return &LoggingProvider{inner: p, eventRepo: repo}
}

func (l *LoggingProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	purpose := PurposeFrom(ctx)

	resp, err := l.inner.Generate(ctx, req)

	latencyMs := time.Since(start).Milliseconds()

	data := store.LLMRequestEventData{
		Provider:    l.inner.ModelID(),
		Model:       l.inner.ModelID(),
		Purpose:     purpose,
		LatencyMs:   latencyMs,
		Success:     err == nil,
		RequestBody: serializeRequest(req),
	}

	if resp != nil {
		data.InputTokens = resp.Usage.InputTokens
		data.OutputTokens = resp.Usage.OutputTokens
		data.Model = resp.Model
		data.ResponseBody = string(resp.Content)
	}

	if err != nil {
		data.ErrorMessage = err.Error()
	}

	l.appendEvent(ctx, data)

	return resp, err
}

// GenerateStream opens the inner stream and records an event once the
// stream is drained or closed. Latency covers open through close, and
// the accumulated bytes become the logged response body.
func (l *LoggingProvider) GenerateStream(ctx context.Context, req Request) (io.ReadCloser, error) {
	sp, ok := l.inner.(StreamProvider)
	if !ok {
		return nil, ErrStreamingUnsupported
	}

	start := time.Now()
	purpose := PurposeFrom(ctx)

	rc, err := sp.GenerateStream(ctx, req)
	if err != nil {
		l.appendEvent(ctx, store.LLMRequestEventData{
			Provider:     l.inner.ModelID(),
			Model:        l.inner.ModelID(),
			Purpose:      purpose,
			LatencyMs:    time.Since(start).Milliseconds(),
			Success:      false,
			RequestBody:  serializeRequest(req),
			ErrorMessage: err.Error(),
		})
		return nil, err
	}

	return &loggedStream{
		inner:   rc,
		logger:  l,
		ctx:     context.WithoutCancel(ctx),
		req:     req,
		purpose: purpose,
		start:   start,
	}, nil
}

func (l *LoggingProvider) ModelID() string {
	return l.inner.ModelID()
}

func (l *LoggingProvider) appendEvent(ctx context.Context, data store.LLMRequestEventData) {
	// Log the event but don't fail the request if logging fails.
	if logErr := l.eventRepo.AppendLLMRequest(ctx, data); logErr != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to log LLM request event: %v\n", logErr)
	}
}

// loggedStream accumulates streamed bytes and appends a single event
// when the stream ends.
type loggedStream struct {
	inner   io.ReadCloser
	logger  *LoggingProvider
	ctx     context.Context
	req     Request
	purpose string
	start   time.Time

	buf     bytes.Buffer
	readErr error
	logged  bool
}

func (s *loggedStream) Read(p []byte) (int, error) {
	n, err := s.inner.Read(p)
	if n > 0 {
		s.buf.Write(p[:n])
	}
	if err != nil {
		if err != io.EOF {
			s.readErr = err
		}
		s.logOnce()
	}
	return n, err
}

func (s *loggedStream) Close() error {
	err := s.inner.Close()
	s.logOnce()
	return err
}

func (s *loggedStream) logOnce() {
	if s.logged {
		return
	}
	s.logged = true

	data := store.LLMRequestEventData{
		Provider:     s.logger.inner.ModelID(),
		Model:        s.logger.inner.ModelID(),
		Purpose:      s.purpose,
		LatencyMs:    time.Since(s.start).Milliseconds(),
		Success:      s.readErr == nil,
		RequestBody:  serializeRequest(s.req),
		ResponseBody: s.buf.String(),
	}
	if s.readErr != nil {
		data.ErrorMessage = s.readErr.Error()
	}

	s.logger.appendEvent(s.ctx, data)
}

// serializeRequest builds a readable representation of the LLM request.
func serializeRequest(req Request) string {
	var b strings.Builder

	if req.System != "" {
		b.WriteString("[system]\n")
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}

	for _, m := range req.Messages {
		b.WriteString(fmt.Sprintf("[%s]\n", m.Role))
		b.WriteString(m.Content)
		b.WriteString("\n\n")
	}

	if req.Schema != nil {
		schemaDef, err := json.Marshal(req.Schema.Definition)
		if err == nil {
			b.WriteString(fmt.Sprintf("[schema: %s]\n", req.Schema.Name))
			b.WriteString(string(schemaDef))
			b.WriteString("\n")
		}
	}

	return b.String()
}
