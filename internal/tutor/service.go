package tutor

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/store"
	"github.com/abhisek/coursegen/internal/stream"
)

// Service generates lesson content for course subtopics. It implements
// stream.Streamer and stream.Saver so a stream.Controller can drive it.
type Service struct {
	provider llm.Provider
	courses  store.CourseRepo
	lessons  store.LessonRepo
	cfg      Config
}

// NewService creates a lesson generation service.
func NewService(provider llm.Provider, courses store.CourseRepo, lessons store.LessonRepo, cfg Config) *Service {
	return &Service{provider: provider, courses: courses, lessons: lessons, cfg: cfg}
}

// NewController returns a streaming controller wired to this service for
// both the byte stream and persistence.
func (s *Service) NewController(opts stream.Options) *stream.Controller {
	return stream.NewController(s, s, opts)
}

// GenerateLesson produces and persists a lesson in one blocking call.
func (s *Service) GenerateLesson(ctx context.Context, p stream.StartParams) (*store.Lesson, error) {
	req, subtopic, err := s.buildRequest(ctx, p)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "lesson-gen")

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("lesson generation: %w", err)
	}

	var out struct {
		Title                string `json:"title"`
		Content              string `json:"content"`
		EstimatedReadTimeMin int    `json:"estimated_read_time_min"`
	}
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse lesson response: %w", err)
	}
	if out.Title == "" {
		out.Title = subtopic
	}

	lesson := &store.Lesson{
		CourseID:             p.CourseID,
		ModuleOrder:          p.ModuleOrder,
		SubtopicOrder:        p.SubtopicOrder,
		Title:                out.Title,
		Content:              out.Content,
		EstimatedReadTimeMin: out.EstimatedReadTimeMin,
		Model:                s.provider.ModelID(),
	}
	if err := s.lessons.Upsert(ctx, lesson); err != nil {
		return nil, fmt.Errorf("persist lesson: %w", err)
	}

	return lesson, nil
}

// OpenLessonStream implements stream.Streamer by opening a raw content
// stream from the provider.
func (s *Service) OpenLessonStream(ctx context.Context, p stream.StartParams) (io.ReadCloser, error) {
	sp, ok := s.provider.(llm.StreamProvider)
	if !ok {
		return nil, llm.ErrStreamingUnsupported
	}

	req, _, err := s.buildRequest(ctx, p)
	if err != nil {
		return nil, err
	}

	ctx = llm.WithPurpose(ctx, "lesson-gen")
	return sp.GenerateStream(ctx, req)
}

// SaveLessonContent implements stream.Saver by upserting the finalized
// lesson at its course coordinates.
func (s *Service) SaveLessonContent(ctx context.Context, p stream.StartParams, res *stream.Result) error {
	lesson := &store.Lesson{
		CourseID:             p.CourseID,
		ModuleOrder:          p.ModuleOrder,
		SubtopicOrder:        p.SubtopicOrder,
		Title:                res.Title,
		Content:              res.Content,
		EstimatedReadTimeMin: res.EstimatedReadTimeMin,
		Model:                s.provider.ModelID(),
	}
	return s.lessons.Upsert(ctx, lesson)
}

// SubtopicTitle resolves the outline title for the given coordinates, for
// callers that need a fallback title before streaming starts.
func (s *Service) SubtopicTitle(ctx context.Context, p stream.StartParams) (string, error) {
	course, err := s.courses.Get(ctx, p.CourseID)
	if err != nil {
		return "", fmt.Errorf("load course: %w", err)
	}
	in := LessonInput{Course: course, ModuleOrder: p.ModuleOrder, SubtopicOrder: p.SubtopicOrder}
	return in.subtopicTitle()
}

func (s *Service) buildRequest(ctx context.Context, p stream.StartParams) (llm.Request, string, error) {
	course, err := s.courses.Get(ctx, p.CourseID)
	if err != nil {
		return llm.Request{}, "", fmt.Errorf("load course: %w", err)
	}
	if p.KnowledgeProfile != "" {
		course.KnowledgeProfile = p.KnowledgeProfile
	}

	in := LessonInput{Course: course, ModuleOrder: p.ModuleOrder, SubtopicOrder: p.SubtopicOrder}
	subtopic, err := in.subtopicTitle()
	if err != nil {
		return llm.Request{}, "", err
	}

	req := llm.Request{
		System: lessonSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildLessonUserMessage(in, subtopic)},
		},
		Schema:      LessonSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}
	return req, subtopic, nil
}
