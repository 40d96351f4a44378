// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/lessoncontent"
)

// LessonContentCreate is the builder for creating a LessonContent entity.
type LessonContentCreate struct {
	config
	mutation *LessonContentMutation
	hooks    []Hook
}

// SetCourseID sets the "course_id" field.
func (_c *LessonContentCreate) SetCourseID(v string) *LessonContentCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetModuleOrder sets the "module_order" field.
func (_c *LessonContentCreate) SetModuleOrder(v int) *LessonContentCreate {
	_c.mutation.SetModuleOrder(v)
	return _c
}

// SetSubtopicOrder sets the "subtopic_order" field.
func (_c *LessonContentCreate) SetSubtopicOrder(v int) *LessonContentCreate {
	_c.mutation.SetSubtopicOrder(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *LessonContentCreate) SetTitle(v string) *LessonContentCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *LessonContentCreate) SetContent(v string) *LessonContentCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetEstimatedReadTimeMin sets the "estimated_read_time_min" field.
func (_c *LessonContentCreate) SetEstimatedReadTimeMin(v int) *LessonContentCreate {
	_c.mutation.SetEstimatedReadTimeMin(v)
	return _c
}

// SetNillableEstimatedReadTimeMin sets the "estimated_read_time_min" field if the given value is not nil.
func (_c *LessonContentCreate) SetNillableEstimatedReadTimeMin(v *int) *LessonContentCreate {
	if v != nil {
		_c.SetEstimatedReadTimeMin(*v)
	}
	return _c
}

// SetModel sets the "model" field.
func (_c *LessonContentCreate) SetModel(v string) *LessonContentCreate {
	_c.mutation.SetModel(v)
	return _c
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_c *LessonContentCreate) SetNillableModel(v *string) *LessonContentCreate {
	if v != nil {
		_c.SetModel(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *LessonContentCreate) SetUpdatedAt(v time.Time) *LessonContentCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *LessonContentCreate) SetNillableUpdatedAt(v *time.Time) *LessonContentCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// Mutation returns the LessonContentMutation object of the builder.
func (_c *LessonContentCreate) Mutation() *LessonContentMutation {
	return _c.mutation
}

// Save creates the LessonContent in the database.
func (_c *LessonContentCreate) Save(ctx context.Context) (*LessonContent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *LessonContentCreate) SaveX(ctx context.Context) *LessonContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonContentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonContentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *LessonContentCreate) defaults() {
	if _, ok := _c.mutation.EstimatedReadTimeMin(); !ok {
		v := lessoncontent.DefaultEstimatedReadTimeMin
		_c.mutation.SetEstimatedReadTimeMin(v)
	}
	if _, ok := _c.mutation.Model(); !ok {
		v := lessoncontent.DefaultModel
		_c.mutation.SetModel(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := lessoncontent.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *LessonContentCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "LessonContent.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := lessoncontent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "LessonContent.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleOrder(); !ok {
		return &ValidationError{Name: "module_order", err: errors.New(`ent: missing required field "LessonContent.module_order"`)}
	}
	if v, ok := _c.mutation.ModuleOrder(); ok {
		if err := lessoncontent.ModuleOrderValidator(v); err != nil {
			return &ValidationError{Name: "module_order", err: fmt.Errorf(`ent: validator failed for field "LessonContent.module_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubtopicOrder(); !ok {
		return &ValidationError{Name: "subtopic_order", err: errors.New(`ent: missing required field "LessonContent.subtopic_order"`)}
	}
	if v, ok := _c.mutation.SubtopicOrder(); ok {
		if err := lessoncontent.SubtopicOrderValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_order", err: fmt.Errorf(`ent: validator failed for field "LessonContent.subtopic_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "LessonContent.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := lessoncontent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LessonContent.title": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "LessonContent.content"`)}
	}
	if v, ok := _c.mutation.Content(); ok {
		if err := lessoncontent.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "LessonContent.content": %w`, err)}
		}
	}
	if _, ok := _c.mutation.EstimatedReadTimeMin(); !ok {
		return &ValidationError{Name: "estimated_read_time_min", err: errors.New(`ent: missing required field "LessonContent.estimated_read_time_min"`)}
	}
	if _, ok := _c.mutation.Model(); !ok {
		return &ValidationError{Name: "model", err: errors.New(`ent: missing required field "LessonContent.model"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "LessonContent.updated_at"`)}
	}
	return nil
}

func (_c *LessonContentCreate) sqlSave(ctx context.Context) (*LessonContent, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *LessonContentCreate) createSpec() (*LessonContent, *sqlgraph.CreateSpec) {
	var (
		_node = &LessonContent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(lessoncontent.Table, sqlgraph.NewFieldSpec(lessoncontent.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(lessoncontent.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.ModuleOrder(); ok {
		_spec.SetField(lessoncontent.FieldModuleOrder, field.TypeInt, value)
		_node.ModuleOrder = value
	}
	if value, ok := _c.mutation.SubtopicOrder(); ok {
		_spec.SetField(lessoncontent.FieldSubtopicOrder, field.TypeInt, value)
		_node.SubtopicOrder = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(lessoncontent.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(lessoncontent.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.EstimatedReadTimeMin(); ok {
		_spec.SetField(lessoncontent.FieldEstimatedReadTimeMin, field.TypeInt, value)
		_node.EstimatedReadTimeMin = value
	}
	if value, ok := _c.mutation.Model(); ok {
		_spec.SetField(lessoncontent.FieldModel, field.TypeString, value)
		_node.Model = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(lessoncontent.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// LessonContentCreateBulk is the builder for creating many LessonContent entities in bulk.
type LessonContentCreateBulk struct {
	config
	err      error
	builders []*LessonContentCreate
}

// Save creates the LessonContent entities in the database.
func (_c *LessonContentCreateBulk) Save(ctx context.Context) ([]*LessonContent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*LessonContent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*LessonContentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *LessonContentCreateBulk) SaveX(ctx context.Context) []*LessonContent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *LessonContentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *LessonContentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
