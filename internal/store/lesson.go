package store

import (
	"context"
	"fmt"

	"github.com/abhisek/coursegen/ent"
	"github.com/abhisek/coursegen/ent/lessoncontent"
)

// lessonRepo implements LessonRepo backed by ent.
type lessonRepo struct {
	client *ent.Client
}

func (r *lessonRepo) Upsert(ctx context.Context, l *Lesson) error {
	existing, err := r.client.LessonContent.Query().
		Where(
			lessoncontent.CourseID(l.CourseID),
			lessoncontent.ModuleOrder(l.ModuleOrder),
			lessoncontent.SubtopicOrder(l.SubtopicOrder),
		).
		Only(ctx)
	switch {
	case err == nil:
		_, err = existing.Update().
			SetTitle(l.Title).
			SetContent(l.Content).
			SetEstimatedReadTimeMin(l.EstimatedReadTimeMin).
			SetModel(l.Model).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("update lesson: %w", err)
		}
		return nil
	case ent.IsNotFound(err):
		_, err = r.client.LessonContent.Create().
			SetCourseID(l.CourseID).
			SetModuleOrder(l.ModuleOrder).
			SetSubtopicOrder(l.SubtopicOrder).
			SetTitle(l.Title).
			SetContent(l.Content).
			SetEstimatedReadTimeMin(l.EstimatedReadTimeMin).
			SetModel(l.Model).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("create lesson: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("query lesson: %w", err)
	}
}

func (r *lessonRepo) Get(ctx context.Context, courseID string, moduleOrder, subtopicOrder int) (*Lesson, error) {
	row, err := r.client.LessonContent.Query().
		Where(
			lessoncontent.CourseID(courseID),
			lessoncontent.ModuleOrder(moduleOrder),
			lessoncontent.SubtopicOrder(subtopicOrder),
		).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query lesson: %w", err)
	}
	return lessonFromRow(row), nil
}

func (r *lessonRepo) ListByCourse(ctx context.Context, courseID string) ([]*Lesson, error) {
	rows, err := r.client.LessonContent.Query().
		Where(lessoncontent.CourseID(courseID)).
		Order(
			ent.Asc(lessoncontent.FieldModuleOrder),
			ent.Asc(lessoncontent.FieldSubtopicOrder),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list lessons: %w", err)
	}

	out := make([]*Lesson, len(rows))
	for i, row := range rows {
		out[i] = lessonFromRow(row)
	}
	return out, nil
}

func lessonFromRow(row *ent.LessonContent) *Lesson {
	return &Lesson{
		CourseID:             row.CourseID,
		ModuleOrder:          row.ModuleOrder,
		SubtopicOrder:        row.SubtopicOrder,
		Title:                row.Title,
		Content:              row.Content,
		EstimatedReadTimeMin: row.EstimatedReadTimeMin,
		Model:                row.Model,
		UpdatedAt:            row.UpdatedAt,
	}
}
