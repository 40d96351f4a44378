package store

import (
	"context"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit  int       // max results (0 = unlimited)
	After  int64     // sequence > After
	Before int64     // sequence < Before
	From   time.Time // timestamp >= From
	To     time.Time // timestamp <= To
}

// Subtopic is one lesson-sized unit within a module.
type Subtopic struct {
	Order int
	Title string
}

// Module is one ordered module of a course outline.
type Module struct {
	Order       int
	Title       string
	Description string
	Subtopics   []Subtopic
}

// Course is a planned course outline.
type Course struct {
	ID               string
	Goal             string
	KnowledgeProfile string
	Title            string
	Description      string
	Modules          []Module
	CreatedAt        time.Time
}

// CourseRepo manages course outlines.
type CourseRepo interface {
	// Create persists a course with its modules and subtopics.
	Create(ctx context.Context, c *Course) error

	// Get returns the full course for the given ID, or ErrNotFound.
	Get(ctx context.Context, id string) (*Course, error)

	// List returns all courses, newest first, without their modules.
	List(ctx context.Context) ([]*Course, error)

	// DeleteAll removes every course, module, subtopic, and lesson.
	DeleteAll(ctx context.Context) error
}

// Lesson is the generated content for one subtopic.
type Lesson struct {
	CourseID             string
	ModuleOrder          int
	SubtopicOrder        int
	Title                string
	Content              string
	EstimatedReadTimeMin int
	Model                string
	UpdatedAt            time.Time
}

// LessonRepo manages generated lesson content.
type LessonRepo interface {
	// Upsert saves the lesson, replacing any previous content for the
	// same (course, module, subtopic) coordinates.
	Upsert(ctx context.Context, l *Lesson) error

	// Get returns the lesson at the given coordinates, or ErrNotFound.
	Get(ctx context.Context, courseID string, moduleOrder, subtopicOrder int) (*Lesson, error)

	// ListByCourse returns all lessons stored for a course.
	ListByCourse(ctx context.Context, courseID string) ([]*Lesson, error)
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMEvent is a recorded LLM request with its event metadata.
type LLMEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]*LLMEvent, error)

	// GetLLMEvent returns a single event by ID, or ErrNotFound.
	GetLLMEvent(ctx context.Context, id int) (*LLMEvent, error)
}
