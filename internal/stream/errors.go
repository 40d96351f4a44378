package stream

import (
	"errors"
	"fmt"
)

// TransportError indicates the byte stream failed mid-flight: the initiating
// request was rejected, the read aborted, or the idle timeout fired. Partial
// buffers are cleared when this surfaces; the user sees an error, not a
// half-rendered lesson presented as complete.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("lesson stream transport failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// ErrIdleTimeout is the cause carried by a TransportError when the provider
// stopped sending bytes without closing the stream.
var ErrIdleTimeout = errors.New("stream idle timeout exceeded")

// ErrSessionActive is returned by Start when a generation is already
// in-flight. Callers must Stop or Reset before starting another.
var ErrSessionActive = errors.New("a streaming session is already active")
