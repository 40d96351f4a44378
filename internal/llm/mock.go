package llm

import (
	"context"
	"encoding/json"
	"io"
	"sync"
)

// MockResponse is a canned response for the MockProvider.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error

	// Chunks, when non-empty, is served by GenerateStream as a
	// sequence of reads instead of one contiguous body.
	Chunks []string
}

// MockProvider is a deterministic Provider for testing.
// It returns canned responses in FIFO order and records all requests.
type MockProvider struct {
	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

// NewMockProvider creates a MockProvider with the given canned responses.
func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

// Generate returns the next canned response or ErrProviderUnavailable if
// the queue is empty.
func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	resp, err := m.next(req)
	if err != nil {
		return nil, err
	}

	content := resp.Content
	if content == nil && len(resp.Chunks) > 0 {
		var joined string
		for _, c := range resp.Chunks {
			joined += c
		}
		content = json.RawMessage(joined)
	}

	return &Response{
		Content:    content,
		Usage:      resp.Usage,
		Model:      "mock",
		StopReason: "end",
	}, nil
}

// GenerateStream returns the next canned response as a stream. Chunks,
// if set, arrive as distinct reads so callers can observe incremental
// delivery.
func (m *MockProvider) GenerateStream(_ context.Context, req Request) (io.ReadCloser, error) {
	resp, err := m.next(req)
	if err != nil {
		return nil, err
	}

	chunks := resp.Chunks
	if len(chunks) == 0 && resp.Content != nil {
		chunks = []string{string(resp.Content)}
	}

	return &mockStream{chunks: chunks}, nil
}

func (m *MockProvider) next(req Request) (MockResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.Calls = append(m.Calls, req)

	if len(m.responses) == 0 {
		return MockResponse{}, &ErrProviderUnavailable{Err: nil}
	}

	resp := m.responses[0]
	m.responses = m.responses[1:]

	if resp.Err != nil {
		return MockResponse{}, resp.Err
	}
	return resp, nil
}

// ModelID returns "mock".
func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse appends a canned response to the queue.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls made.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}

type mockStream struct {
	chunks []string
	closed bool
}

func (s *mockStream) Read(p []byte) (int, error) {
	if s.closed || len(s.chunks) == 0 {
		return 0, io.EOF
	}
	n := copy(p, s.chunks[0])
	if n < len(s.chunks[0]) {
		s.chunks[0] = s.chunks[0][n:]
	} else {
		s.chunks = s.chunks[1:]
	}
	return n, nil
}

func (s *mockStream) Close() error {
	s.closed = true
	return nil
}
