package stream

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"
)

// StartParams identifies the lesson to generate and the prompt context the
// collaborators need to open the stream and persist the result.
type StartParams struct {
	KnowledgeProfile string
	CourseID         string
	ModuleOrder      int
	SubtopicOrder    int

	// SubtopicTitle is the requested subtopic title, used as the fallback
	// lesson title when the streamed document carries none.
	SubtopicTitle string
}

// Streamer opens the raw byte stream of lesson JSON for the given params.
// Implemented by the tutor service (direct provider call) and by the remote
// client (HTTP + SSE).
type Streamer interface {
	OpenLessonStream(ctx context.Context, p StartParams) (io.ReadCloser, error)
}

// Saver persists finalized lesson content keyed by the course coordinates.
type Saver interface {
	SaveLessonContent(ctx context.Context, p StartParams, res *Result) error
}

// NopSaver discards finalized content. Used when persistence happens
// elsewhere, e.g. on the remote server that produced the stream.
type NopSaver struct{}

func (NopSaver) SaveLessonContent(context.Context, StartParams, *Result) error { return nil }

// Options tunes a controller. The zero value uses typewriter defaults and no
// idle timeout.
type Options struct {
	TickInterval time.Duration
	RunesPerTick int

	// IdleTimeout aborts the stream when no bytes arrive for this long.
	// Zero disables the watchdog and defers to the transport's own limits.
	IdleTimeout time.Duration
}

// Controller orchestrates one streaming generation at a time: it owns the
// session, the typewriter, cancellation of the in-flight read, and the
// persistence hand-off. Collaborators are injected so the pipeline is
// testable with fakes.
type Controller struct {
	streamer Streamer
	saver    Saver
	opts     Options

	mu          sync.Mutex
	session     *Session
	typewriter  *Typewriter
	cancel      context.CancelFunc
	reader      io.ReadCloser
	active      bool
	err         error
	success     bool
	persistWarn error
	done        chan struct{}
}

// NewController creates a controller with the given collaborators.
func NewController(streamer Streamer, saver Saver, opts Options) *Controller {
	c := &Controller{streamer: streamer, saver: saver, opts: opts}
	c.session = newIdleSession()
	return c
}

// Start resets all buffers, opens the byte stream, and drives ingestion,
// finalization, and persistence in the background. It returns
// ErrSessionActive if a generation is already in-flight.
func (c *Controller) Start(ctx context.Context, p StartParams) error {
	c.mu.Lock()
	if c.active {
		c.mu.Unlock()
		return ErrSessionActive
	}

	c.session = NewSession()
	c.typewriter = NewTypewriter(c.session, c.opts.TickInterval, c.opts.RunesPerTick)
	c.err = nil
	c.success = false
	c.persistWarn = nil
	c.active = true
	c.done = make(chan struct{})

	runCtx, cancel := context.WithCancel(ctx)
	c.cancel = cancel

	session := c.session
	tw := c.typewriter
	done := c.done
	c.mu.Unlock()

	tw.Start()
	go c.run(runCtx, p, session, tw, done)
	return nil
}

func (c *Controller) run(ctx context.Context, p StartParams, session *Session, tw *Typewriter, done chan struct{}) {
	defer close(done)
	defer func() {
		c.mu.Lock()
		c.active = false
		c.mu.Unlock()
	}()

	reader, err := c.streamer.OpenLessonStream(ctx, p)
	if err != nil {
		session.Clear()
		tw.Stop()
		c.setErr(&TransportError{Err: err})
		return
	}

	if c.opts.IdleTimeout > 0 {
		reader = newIdleReader(reader, c.opts.IdleTimeout)
	}

	c.mu.Lock()
	c.reader = reader
	c.mu.Unlock()

	ingestErr := session.Ingest(ctx, reader)
	reader.Close()

	c.mu.Lock()
	c.reader = nil
	c.mu.Unlock()

	if ingestErr != nil {
		session.Clear()
		tw.Stop()
		// A cancelled context means the caller stopped the session; that is
		// a clean shutdown, not a transport failure.
		if ctx.Err() == nil {
			c.setErr(&TransportError{Err: ingestErr})
		}
		return
	}

	res := session.Finalize(p.SubtopicTitle)
	tw.Snap()
	tw.Stop()

	c.mu.Lock()
	c.success = true
	c.mu.Unlock()

	// An unparseable stream finalizes to empty content rather than an
	// error; nothing coherent exists to persist in that case.
	if res.Content == "" {
		return
	}

	if err := c.saver.SaveLessonContent(ctx, p, res); err != nil {
		// Persistence failure is reported distinctly and does not
		// invalidate the result already shown.
		c.mu.Lock()
		c.persistWarn = err
		c.mu.Unlock()
	}
}

func (c *Controller) setErr(err error) {
	c.mu.Lock()
	c.err = err
	c.mu.Unlock()
}

// Stop cancels the in-flight read, halts the typewriter, and leaves the
// session in a clean stopped state. Idempotent; safe to call at any time.
func (c *Controller) Stop() {
	c.mu.Lock()
	cancel := c.cancel
	reader := c.reader
	tw := c.typewriter
	done := c.done
	c.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	if reader != nil {
		// Unblocks a read stuck on a stalled connection.
		reader.Close()
	}
	if done != nil {
		<-done
	}
	if tw != nil {
		tw.Stop()
	}
}

// Reset stops any in-flight generation and clears all buffers and the
// finalized result. A subsequent Start begins from an empty state.
func (c *Controller) Reset() {
	c.Stop()

	c.mu.Lock()
	defer c.mu.Unlock()
	c.session = newIdleSession()
	c.typewriter = nil
	c.cancel = nil
	c.err = nil
	c.success = false
	c.persistWarn = nil
	c.done = nil
}

// Content returns the typewriter-paced displayed buffer.
func (c *Controller) Content() string {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()
	return session.Displayed()
}

// Data returns the finalized result, or nil while streaming.
func (c *Controller) Data() *Result {
	c.mu.Lock()
	session := c.session
	c.mu.Unlock()
	return session.Result()
}

// IsLoading reports whether a generation is in-flight.
func (c *Controller) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.active
}

// Err returns the session-level error, if any. Empty final content is not an
// error; check Data().Content to distinguish exhausted recovery from success.
func (c *Controller) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}

// IsSuccess reports whether the last generation finalized without a
// transport error.
func (c *Controller) IsSuccess() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.success
}

// PersistWarning returns the non-fatal persistence error from the last
// generation, if any.
func (c *Controller) PersistWarning() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.persistWarn
}

// Done returns a channel closed when the current generation finishes
// (successfully or not). Returns a closed channel when nothing is running.
func (c *Controller) Done() <-chan struct{} {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.done == nil {
		closed := make(chan struct{})
		close(closed)
		return closed
	}
	return c.done
}

// idleReader aborts a stream whose producer goes quiet: a watchdog timer is
// re-armed after every successful read and closes the underlying reader on
// expiry, unblocking the pending Read.
type idleReader struct {
	inner    io.ReadCloser
	timer    *time.Timer
	duration time.Duration
	expired  atomic.Bool
}

func newIdleReader(inner io.ReadCloser, d time.Duration) *idleReader {
	r := &idleReader{inner: inner, duration: d}
	r.timer = time.AfterFunc(d, func() {
		r.expired.Store(true)
		inner.Close()
	})
	return r
}

func (r *idleReader) Read(p []byte) (int, error) {
	n, err := r.inner.Read(p)
	if err != nil && r.expired.Load() {
		return n, ErrIdleTimeout
	}
	if err == nil {
		r.timer.Reset(r.duration)
	}
	return n, err
}

func (r *idleReader) Close() error {
	r.timer.Stop()
	return r.inner.Close()
}
