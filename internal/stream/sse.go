package stream

import (
	"bufio"
	"io"
	"strings"
)

// DoneSentinel terminates an SSE lesson feed.
const DoneSentinel = "[DONE]"

// SSEReader adapts a Server-Sent-Events lesson feed into the plain decoded
// byte stream the ingestion loop consumes. Each `data: <fragment>` line
// contributes its payload verbatim; comment, event and retry lines are
// skipped; a `data: [DONE]` line ends the stream. A source that ends before
// the sentinel was cut off mid-response, reported as io.ErrUnexpectedEOF so
// the caller treats the stream as failed rather than complete.
//
// Fragments are pieces of a single JSON document, inside which newlines only
// ever appear escaped, so payloads are concatenated without separators.
type SSEReader struct {
	src     io.ReadCloser
	br      *bufio.Reader
	pending []byte
	done    bool
	err     error // sticky; set when the source ends without the sentinel
}

// NewSSEReader wraps an SSE-framed source. Closing the SSEReader closes the
// source.
func NewSSEReader(src io.ReadCloser) *SSEReader {
	return &SSEReader{src: src, br: bufio.NewReader(src)}
}

func (r *SSEReader) Read(p []byte) (int, error) {
	for len(r.pending) == 0 {
		if r.done {
			if r.err != nil {
				return 0, r.err
			}
			return 0, io.EOF
		}
		payload, err := r.nextPayload()
		if err != nil {
			r.done = true
			r.err = err
			return 0, err
		}
		r.pending = append(r.pending, payload...)
	}

	n := copy(p, r.pending)
	r.pending = r.pending[n:]
	return n, nil
}

// nextPayload reads lines until it finds a data line, the done sentinel, or
// the end of the source.
func (r *SSEReader) nextPayload() (string, error) {
	for {
		line, err := r.br.ReadString('\n')
		line = strings.TrimRight(line, "\r\n")

		switch {
		case strings.HasPrefix(line, "data:"):
			payload := strings.TrimPrefix(line, "data:")
			payload = strings.TrimLeft(payload, " ")
			if payload == DoneSentinel {
				r.done = true
				return "", nil
			}
			if payload != "" {
				return payload, nil
			}
		case line == "", strings.HasPrefix(line, ":"),
			strings.HasPrefix(line, "event:"), strings.HasPrefix(line, "retry:"):
			// Framing noise; skip.
		}

		if err == io.EOF {
			// The producer only stops sending after [DONE]; anything else
			// is a connection cut short.
			return "", io.ErrUnexpectedEOF
		}
		if err != nil {
			return "", err
		}
	}
}

func (r *SSEReader) Close() error {
	return r.src.Close()
}
