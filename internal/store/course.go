package store

import (
	"context"
	"fmt"

	"github.com/abhisek/coursegen/ent"
	"github.com/abhisek/coursegen/ent/course"
	"github.com/abhisek/coursegen/ent/coursemodule"
	"github.com/abhisek/coursegen/ent/subtopic"
)

// courseRepo implements CourseRepo backed by ent.
type courseRepo struct {
	client *ent.Client
}

func (r *courseRepo) Create(ctx context.Context, c *Course) error {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	err = func() error {
		_, err := tx.Course.Create().
			SetCourseID(c.ID).
			SetGoal(c.Goal).
			SetKnowledgeProfile(c.KnowledgeProfile).
			SetTitle(c.Title).
			SetDescription(c.Description).
			Save(ctx)
		if err != nil {
			return fmt.Errorf("save course: %w", err)
		}

		for _, m := range c.Modules {
			_, err := tx.CourseModule.Create().
				SetCourseID(c.ID).
				SetModuleOrder(m.Order).
				SetTitle(m.Title).
				SetDescription(m.Description).
				Save(ctx)
			if err != nil {
				return fmt.Errorf("save module %d: %w", m.Order, err)
			}

			for _, st := range m.Subtopics {
				_, err := tx.Subtopic.Create().
					SetCourseID(c.ID).
					SetModuleOrder(m.Order).
					SetSubtopicOrder(st.Order).
					SetTitle(st.Title).
					Save(ctx)
				if err != nil {
					return fmt.Errorf("save subtopic %d.%d: %w", m.Order, st.Order, err)
				}
			}
		}
		return nil
	}()
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			return fmt.Errorf("%w (rollback: %v)", err, rerr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

func (r *courseRepo) Get(ctx context.Context, id string) (*Course, error) {
	row, err := r.client.Course.Query().
		Where(course.CourseID(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("query course: %w", err)
	}

	modRows, err := r.client.CourseModule.Query().
		Where(coursemodule.CourseID(id)).
		Order(ent.Asc(coursemodule.FieldModuleOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query modules: %w", err)
	}

	subRows, err := r.client.Subtopic.Query().
		Where(subtopic.CourseID(id)).
		Order(ent.Asc(subtopic.FieldModuleOrder), ent.Asc(subtopic.FieldSubtopicOrder)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query subtopics: %w", err)
	}

	subsByModule := make(map[int][]Subtopic)
	for _, s := range subRows {
		subsByModule[s.ModuleOrder] = append(subsByModule[s.ModuleOrder], Subtopic{
			Order: s.SubtopicOrder,
			Title: s.Title,
		})
	}

	c := &Course{
		ID:               row.CourseID,
		Goal:             row.Goal,
		KnowledgeProfile: row.KnowledgeProfile,
		Title:            row.Title,
		Description:      row.Description,
		CreatedAt:        row.CreatedAt,
	}
	for _, m := range modRows {
		c.Modules = append(c.Modules, Module{
			Order:       m.ModuleOrder,
			Title:       m.Title,
			Description: m.Description,
			Subtopics:   subsByModule[m.ModuleOrder],
		})
	}

	return c, nil
}

func (r *courseRepo) List(ctx context.Context) ([]*Course, error) {
	rows, err := r.client.Course.Query().
		Order(ent.Desc(course.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("list courses: %w", err)
	}

	out := make([]*Course, len(rows))
	for i, row := range rows {
		out[i] = &Course{
			ID:               row.CourseID,
			Goal:             row.Goal,
			KnowledgeProfile: row.KnowledgeProfile,
			Title:            row.Title,
			Description:      row.Description,
			CreatedAt:        row.CreatedAt,
		}
	}
	return out, nil
}

func (r *courseRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.client.LessonContent.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete lessons: %w", err)
	}
	if _, err := r.client.Subtopic.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete subtopics: %w", err)
	}
	if _, err := r.client.CourseModule.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete modules: %w", err)
	}
	if _, err := r.client.Course.Delete().Exec(ctx); err != nil {
		return fmt.Errorf("delete courses: %w", err)
	}
	return nil
}
