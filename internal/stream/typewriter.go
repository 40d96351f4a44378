package stream

import (
	"sync"
	"time"
)

const (
	// DefaultTickInterval paces the reveal independently of how bursty the
	// network delivery is.
	DefaultTickInterval = 30 * time.Millisecond

	// DefaultRunesPerTick is the reveal increment. Small enough to read as a
	// typewriter, large enough to keep up with fast models.
	DefaultRunesPerTick = 3
)

// Typewriter reveals a session's extracted content at a bounded, predictable
// pace, decoupled from chunk arrival. Each tick re-reads the current buffer
// state, so content appended by the ingestion loop after the typewriter
// started is picked up without restarting. Once the stream ends it snaps the
// display to the full content and stops ticking.
type Typewriter struct {
	session  *Session
	interval time.Duration
	runes    int

	mu      sync.Mutex
	stop    chan struct{}
	done    chan struct{}
	running bool
}

// NewTypewriter creates a typewriter over session. Non-positive interval or
// increment values fall back to the defaults.
func NewTypewriter(session *Session, interval time.Duration, runesPerTick int) *Typewriter {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	if runesPerTick <= 0 {
		runesPerTick = DefaultRunesPerTick
	}
	return &Typewriter{session: session, interval: interval, runes: runesPerTick}
}

// Start launches the tick loop. Starting an already-running typewriter is a
// no-op.
func (t *Typewriter) Start() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.running {
		return
	}
	t.running = true
	t.stop = make(chan struct{})
	t.done = make(chan struct{})
	go t.loop(t.stop, t.done)
}

func (t *Typewriter) loop(stop, done chan struct{}) {
	defer close(done)

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			caughtUp, streaming := t.session.advance(t.runes)
			if !streaming && caughtUp {
				// Stream drained and display converged: nothing left to do.
				return
			}
			// A caught-up tick while still streaming is a no-op wait for
			// more content.
		}
	}
}

// Stop halts the tick loop and waits for it to exit. Idempotent.
func (t *Typewriter) Stop() {
	t.mu.Lock()
	if !t.running {
		t.mu.Unlock()
		return
	}
	t.running = false
	close(t.stop)
	done := t.done
	t.mu.Unlock()
	<-done
}

// Snap reveals the full raw buffer immediately. Only meaningful once the
// session has stopped streaming; while streaming the pacing is preserved.
func (t *Typewriter) Snap() {
	t.session.advance(0)
}
