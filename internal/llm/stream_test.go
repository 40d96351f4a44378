package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
)

func TestMockProvider_StreamDeliversChunks(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Chunks: []string{`{"title":"Goroutines",`, `"content":"A goroutine`, ` is lightweight."}`}},
	)

	rc, err := mock.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	// Each Read should surface at most one canned chunk.
	buf := make([]byte, 1024)
	var got []string
	for {
		n, err := rc.Read(buf)
		if n > 0 {
			got = append(got, string(buf[:n]))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("unexpected read error: %v", err)
		}
	}

	if len(got) != 3 {
		t.Fatalf("expected 3 reads, got %d: %q", len(got), got)
	}
	joined := got[0] + got[1] + got[2]
	want := `{"title":"Goroutines","content":"A goroutine is lightweight."}`
	if joined != want {
		t.Fatalf("joined stream = %q, want %q", joined, want)
	}
}

func TestMockProvider_StreamFallsBackToContent(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"ok":true}`)},
	)

	rc, err := mock.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != `{"ok":true}` {
		t.Fatalf("unexpected stream body: %s", data)
	}
}

func TestRetry_StreamOpenRetried(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}},
		MockResponse{Chunks: []string{"hello"}},
	)
	p := WithRetry(mock, retryConfig())

	sp, ok := p.(StreamProvider)
	if !ok {
		t.Fatal("retry decorator should expose streaming")
	}

	rc, err := sp.GenerateStream(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(data) != "hello" {
		t.Fatalf("unexpected stream body: %s", data)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("expected 2 calls, got %d", mock.CallCount())
	}
}

func TestRetry_StreamUnsupportedInner(t *testing.T) {
	p := WithRetry(blockingOnlyProvider{}, retryConfig())

	sp, ok := p.(*RetryProvider)
	if !ok {
		t.Fatalf("unexpected decorator type: %T", p)
	}

	_, err := sp.GenerateStream(context.Background(), Request{})
	if !errors.Is(err, ErrStreamingUnsupported) {
		t.Fatalf("expected ErrStreamingUnsupported, got: %v", err)
	}
}

// blockingOnlyProvider implements Provider without GenerateStream.
type blockingOnlyProvider struct{}

func (blockingOnlyProvider) Generate(context.Context, Request) (*Response, error) {
	return &Response{Content: json.RawMessage(`{}`), Model: "blocking", StopReason: "end"}, nil
}

func (blockingOnlyProvider) ModelID() string { return "blocking" }
