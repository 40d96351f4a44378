// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/subtopic"
)

// SubtopicCreate is the builder for creating a Subtopic entity.
type SubtopicCreate struct {
	config
	mutation *SubtopicMutation
	hooks    []Hook
}

// SetCourseID sets the "course_id" field.
func (_c *SubtopicCreate) SetCourseID(v string) *SubtopicCreate {
	_c.mutation.SetCourseID(v)
	return _c
}

// SetModuleOrder sets the "module_order" field.
func (_c *SubtopicCreate) SetModuleOrder(v int) *SubtopicCreate {
	_c.mutation.SetModuleOrder(v)
	return _c
}

// SetSubtopicOrder sets the "subtopic_order" field.
func (_c *SubtopicCreate) SetSubtopicOrder(v int) *SubtopicCreate {
	_c.mutation.SetSubtopicOrder(v)
	return _c
}

// SetTitle sets the "title" field.
func (_c *SubtopicCreate) SetTitle(v string) *SubtopicCreate {
	_c.mutation.SetTitle(v)
	return _c
}

// Mutation returns the SubtopicMutation object of the builder.
func (_c *SubtopicCreate) Mutation() *SubtopicMutation {
	return _c.mutation
}

// Save creates the Subtopic in the database.
func (_c *SubtopicCreate) Save(ctx context.Context) (*Subtopic, error) {
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *SubtopicCreate) SaveX(ctx context.Context) *Subtopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubtopicCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubtopicCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *SubtopicCreate) check() error {
	if _, ok := _c.mutation.CourseID(); !ok {
		return &ValidationError{Name: "course_id", err: errors.New(`ent: missing required field "Subtopic.course_id"`)}
	}
	if v, ok := _c.mutation.CourseID(); ok {
		if err := subtopic.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "Subtopic.course_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModuleOrder(); !ok {
		return &ValidationError{Name: "module_order", err: errors.New(`ent: missing required field "Subtopic.module_order"`)}
	}
	if v, ok := _c.mutation.ModuleOrder(); ok {
		if err := subtopic.ModuleOrderValidator(v); err != nil {
			return &ValidationError{Name: "module_order", err: fmt.Errorf(`ent: validator failed for field "Subtopic.module_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.SubtopicOrder(); !ok {
		return &ValidationError{Name: "subtopic_order", err: errors.New(`ent: missing required field "Subtopic.subtopic_order"`)}
	}
	if v, ok := _c.mutation.SubtopicOrder(); ok {
		if err := subtopic.SubtopicOrderValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_order", err: fmt.Errorf(`ent: validator failed for field "Subtopic.subtopic_order": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Title(); !ok {
		return &ValidationError{Name: "title", err: errors.New(`ent: missing required field "Subtopic.title"`)}
	}
	if v, ok := _c.mutation.Title(); ok {
		if err := subtopic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Subtopic.title": %w`, err)}
		}
	}
	return nil
}

func (_c *SubtopicCreate) sqlSave(ctx context.Context) (*Subtopic, error) {
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

func (_c *SubtopicCreate) createSpec() (*Subtopic, *sqlgraph.CreateSpec) {
	var (
		_node = &Subtopic{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(subtopic.Table, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	)
	if value, ok := _c.mutation.CourseID(); ok {
		_spec.SetField(subtopic.FieldCourseID, field.TypeString, value)
		_node.CourseID = value
	}
	if value, ok := _c.mutation.ModuleOrder(); ok {
		_spec.SetField(subtopic.FieldModuleOrder, field.TypeInt, value)
		_node.ModuleOrder = value
	}
	if value, ok := _c.mutation.SubtopicOrder(); ok {
		_spec.SetField(subtopic.FieldSubtopicOrder, field.TypeInt, value)
		_node.SubtopicOrder = value
	}
	if value, ok := _c.mutation.Title(); ok {
		_spec.SetField(subtopic.FieldTitle, field.TypeString, value)
		_node.Title = value
	}
	return _node, _spec
}

// SubtopicCreateBulk is the builder for creating many Subtopic entities in bulk.
type SubtopicCreateBulk struct {
	config
	err      error
	builders []*SubtopicCreate
}

// Save creates the Subtopic entities in the database.
func (_c *SubtopicCreateBulk) Save(ctx context.Context) ([]*Subtopic, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Subtopic, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*SubtopicMutation)
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
func (_c *SubtopicCreateBulk) SaveX(ctx context.Context) []*Subtopic {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *SubtopicCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *SubtopicCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
