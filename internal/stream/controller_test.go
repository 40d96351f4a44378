package stream

import (
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"
)

// fakeStreamer serves scripted chunks with an optional delay between reads.
type fakeStreamer struct {
	chunks  []string
	delay   time.Duration
	openErr error
	readErr error
}

func (f *fakeStreamer) OpenLessonStream(ctx context.Context, p StartParams) (io.ReadCloser, error) {
	if f.openErr != nil {
		return nil, f.openErr
	}
	return &scriptedStream{chunks: f.chunks, delay: f.delay, readErr: f.readErr}, nil
}

type scriptedStream struct {
	mu      sync.Mutex
	chunks  []string
	delay   time.Duration
	readErr error
	closed  bool
}

func (s *scriptedStream) Read(p []byte) (int, error) {
	if s.delay > 0 {
		time.Sleep(s.delay)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, errors.New("read on closed stream")
	}
	if len(s.chunks) == 0 {
		if s.readErr != nil {
			return 0, s.readErr
		}
		return 0, io.EOF
	}
	n := copy(p, s.chunks[0])
	s.chunks = s.chunks[1:]
	return n, nil
}

func (s *scriptedStream) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

type fakeSaver struct {
	mu     sync.Mutex
	saved  []*Result
	params []StartParams
	err    error
}

func (f *fakeSaver) SaveLessonContent(ctx context.Context, p StartParams, res *Result) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, res)
	f.params = append(f.params, p)
	return nil
}

func (f *fakeSaver) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.saved)
}

var testParams = StartParams{
	CourseID:      "course-1",
	ModuleOrder:   1,
	SubtopicOrder: 2,
	SubtopicTitle: "Requested Subtopic",
}

func fastOpts() Options {
	return Options{TickInterval: time.Millisecond, RunesPerTick: 50}
}

func TestControllerHappyPath(t *testing.T) {
	saver := &fakeSaver{}
	ctrl := NewController(&fakeStreamer{chunks: []string{
		`{"title":"Pointers in Go",`,
		`"content":"Lesson body text.",`,
		`"estimated_read_time_min":3}`,
	}}, saver, fastOpts())

	if err := ctrl.Start(context.Background(), testParams); err != nil {
		t.Fatalf("start: %v", err)
	}
	<-ctrl.Done()

	if !ctrl.IsSuccess() {
		t.Fatalf("expected success, err = %v", ctrl.Err())
	}
	data := ctrl.Data()
	if data == nil || data.Content != "Lesson body text." {
		t.Fatalf("data = %+v", data)
	}
	if data.Title != "Pointers in Go" {
		t.Errorf("title = %q", data.Title)
	}
	if saver.count() != 1 {
		t.Errorf("expected one persistence call, got %d", saver.count())
	}

	// Display converges to the full content once the typewriter snaps.
	waitFor(t, time.Second, func() bool { return ctrl.Content() == data.Content })
}

func TestControllerUnrecoverableStreamFallsBack(t *testing.T) {
	saver := &fakeSaver{}
	ctrl := NewController(&fakeStreamer{chunks: []string{
		`{"title":"T","content":"Partial lesson tex`,
	}}, saver, fastOpts())

	if err := ctrl.Start(context.Background(), testParams); err != nil {
		t.Fatalf("start: %v", err)
	}
	<-ctrl.Done()

	data := ctrl.Data()
	if data == nil {
		t.Fatal("expected a finalized result")
	}
	if data.Content != "Partial lesson tex" {
		t.Errorf("content = %q, want recovered partial text", data.Content)
	}
	if ctrl.Err() != nil {
		t.Errorf("recovery is not an error path, got %v", ctrl.Err())
	}
}

func TestControllerTransportErrorClearsBuffers(t *testing.T) {
	saver := &fakeSaver{}
	ctrl := NewController(&fakeStreamer{
		chunks:  []string{`{"content":"doomed text`},
		readErr: errors.New("connection reset"),
	}, saver, fastOpts())

	if err := ctrl.Start(context.Background(), testParams); err != nil {
		t.Fatalf("start: %v", err)
	}
	<-ctrl.Done()

	var te *TransportError
	if !errors.As(ctrl.Err(), &te) {
		t.Fatalf("expected TransportError, got %v", ctrl.Err())
	}
	if ctrl.Content() != "" {
		t.Errorf("buffers not cleared: %q", ctrl.Content())
	}
	if ctrl.IsSuccess() {
		t.Error("transport failure must not report success")
	}
	if saver.count() != 0 {
		t.Error("nothing should be persisted after a transport failure")
	}
}

func TestControllerOpenFailure(t *testing.T) {
	ctrl := NewController(&fakeStreamer{openErr: errors.New("503")}, &fakeSaver{}, fastOpts())

	if err := ctrl.Start(context.Background(), testParams); err != nil {
		t.Fatalf("start: %v", err)
	}
	<-ctrl.Done()

	var te *TransportError
	if !errors.As(ctrl.Err(), &te) {
		t.Fatalf("expected TransportError, got %v", ctrl.Err())
	}
}

func TestControllerPersistenceWarningNonFatal(t *testing.T) {
	saver := &fakeSaver{err: errors.New("disk full")}
	ctrl := NewController(&fakeStreamer{chunks: []string{
		`{"title":"T","content":"Saved anyway on screen."}`,
	}}, saver, fastOpts())

	if err := ctrl.Start(context.Background(), testParams); err != nil {
		t.Fatalf("start: %v", err)
	}
	<-ctrl.Done()

	if !ctrl.IsSuccess() {
		t.Fatal("persistence failure must not fail the generation")
	}
	if ctrl.PersistWarning() == nil {
		t.Error("expected a persistence warning")
	}
	if ctrl.Data().Content != "Saved anyway on screen." {
		t.Errorf("displayed result lost: %+v", ctrl.Data())
	}
}

func TestControllerRejectsConcurrentStart(t *testing.T) {
	ctrl := NewController(&fakeStreamer{
		chunks: []string{`{"content":"slow`, `er"}`},
		delay:  20 * time.Millisecond,
	}, &fakeSaver{}, fastOpts())

	if err := ctrl.Start(context.Background(), testParams); err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := ctrl.Start(context.Background(), testParams); !errors.Is(err, ErrSessionActive) {
		t.Errorf("expected ErrSessionActive, got %v", err)
	}
	ctrl.Stop()
}

func TestControllerStopIsIdempotent(t *testing.T) {
	ctrl := NewController(&fakeStreamer{
		chunks: []string{`{"content":"x`},
		delay:  50 * time.Millisecond,
	}, &fakeSaver{}, fastOpts())

	if err := ctrl.Start(context.Background(), testParams); err != nil {
		t.Fatalf("start: %v", err)
	}
	ctrl.Stop()
	ctrl.Stop()

	if ctrl.IsLoading() {
		t.Error("controller still loading after stop")
	}
}

func TestControllerIdleBeforeStart(t *testing.T) {
	ctrl := NewController(&fakeStreamer{}, &fakeSaver{}, fastOpts())

	if ctrl.IsLoading() {
		t.Error("fresh controller reports loading")
	}
	if ctrl.Content() != "" {
		t.Errorf("content = %q before start", ctrl.Content())
	}
	if ctrl.Data() != nil {
		t.Error("data set before start")
	}
	select {
	case <-ctrl.Done():
	default:
		t.Error("Done not closed while idle")
	}
}

func TestControllerReset(t *testing.T) {
	saver := &fakeSaver{}
	ctrl := NewController(&fakeStreamer{chunks: []string{
		`{"title":"T","content":"First lesson."}`,
	}}, saver, fastOpts())

	if err := ctrl.Start(context.Background(), testParams); err != nil {
		t.Fatalf("start: %v", err)
	}
	<-ctrl.Done()

	ctrl.Reset()
	if ctrl.Content() != "" {
		t.Errorf("content = %q after reset", ctrl.Content())
	}
	if ctrl.Data() != nil {
		t.Error("data not cleared after reset")
	}
	if ctrl.IsLoading() {
		t.Error("loading after reset")
	}

	// A new generation starts from a clean slate.
	ctrl2 := NewController(&fakeStreamer{chunks: []string{
		`{"title":"U","content":"Second lesson."}`,
	}}, saver, fastOpts())
	if err := ctrl2.Start(context.Background(), testParams); err != nil {
		t.Fatalf("restart: %v", err)
	}
	<-ctrl2.Done()
	if ctrl2.Data().Content != "Second lesson." {
		t.Errorf("second run leaked state: %+v", ctrl2.Data())
	}
}

func TestControllerIdleTimeout(t *testing.T) {
	opts := fastOpts()
	opts.IdleTimeout = 30 * time.Millisecond

	// One chunk arrives, then the producer goes silent without closing.
	ctrl := NewController(&fakeStreamer{
		chunks: []string{`{"content":"stalls here`},
		delay:  200 * time.Millisecond,
	}, &fakeSaver{}, opts)

	if err := ctrl.Start(context.Background(), testParams); err != nil {
		t.Fatalf("start: %v", err)
	}

	select {
	case <-ctrl.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("idle timeout never fired")
	}

	var te *TransportError
	if !errors.As(ctrl.Err(), &te) {
		t.Fatalf("expected TransportError, got %v", ctrl.Err())
	}
}
