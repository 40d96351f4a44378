package server

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/abhisek/coursegen/internal/stream"
)

// Client consumes a remote coursegen server's SSE lesson endpoint. It
// implements stream.Streamer, so the local typewriter pipeline works
// unchanged against a remote generation.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a client for the server at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{},
	}
}

// OpenLessonStream opens the SSE endpoint and returns the de-framed
// payload stream. The server persists the lesson on its side.
func (c *Client) OpenLessonStream(ctx context.Context, p stream.StartParams) (io.ReadCloser, error) {
	body, err := json.Marshal(lessonRequest{
		Module:           p.ModuleOrder,
		Subtopic:         p.SubtopicOrder,
		KnowledgeProfile: p.KnowledgeProfile,
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	url := fmt.Sprintf("%s/api/courses/%s/lesson/stream", c.baseURL, p.CourseID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "text/event-stream")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("open lesson stream: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		defer resp.Body.Close()
		var apiErr struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&apiErr); decodeErr == nil && apiErr.Error != "" {
			return nil, fmt.Errorf("server: %s (status %d)", apiErr.Error, resp.StatusCode)
		}
		return nil, fmt.Errorf("server returned status %d", resp.StatusCode)
	}

	return stream.NewSSEReader(resp.Body), nil
}
