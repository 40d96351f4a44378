package planner

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"github.com/abhisek/coursegen/internal/llm"
	"github.com/abhisek/coursegen/internal/store"
)

// Service plans course outlines and persists them.
type Service struct {
	provider llm.Provider
	courses  store.CourseRepo
	cfg      Config
}

// NewService creates a course planning service.
func NewService(provider llm.Provider, courses store.CourseRepo, cfg Config) *Service {
	return &Service{provider: provider, courses: courses, cfg: cfg}
}

// PlanCourse generates a course outline for the input, persists it, and
// returns the stored course.
func (s *Service) PlanCourse(ctx context.Context, input PlanInput) (*store.Course, error) {
	if input.Goal == "" {
		return nil, fmt.Errorf("learning goal is required")
	}

	ctx = llm.WithPurpose(ctx, "course-plan")

	req := llm.Request{
		System: planSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildPlanUserMessage(input)},
		},
		Schema:      OutlineSchema,
		MaxTokens:   s.cfg.MaxTokens,
		Temperature: s.cfg.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("course planning: %w", err)
	}

	var out Outline
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, fmt.Errorf("parse outline response: %w", err)
	}

	course := courseFromOutline(out, input)

	if err := s.courses.Create(ctx, course); err != nil {
		return nil, fmt.Errorf("persist course: %w", err)
	}

	return course, nil
}

// courseFromOutline assigns an ID and 1-based ordering to the outline.
func courseFromOutline(out Outline, input PlanInput) *store.Course {
	course := &store.Course{
		ID:               uuid.NewString(),
		Goal:             input.Goal,
		KnowledgeProfile: input.KnowledgeProfile,
		Title:            out.Title,
		Description:      out.Description,
	}

	for i, m := range out.Modules {
		mod := store.Module{
			Order:       i + 1,
			Title:       m.Title,
			Description: m.Description,
		}
		for j, st := range m.Subtopics {
			mod.Subtopics = append(mod.Subtopics, store.Subtopic{
				Order: j + 1,
				Title: st,
			})
		}
		course.Modules = append(course.Modules, mod)
	}

	return course
}
