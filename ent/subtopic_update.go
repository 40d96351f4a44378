// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/predicate"
	"github.com/abhisek/coursegen/ent/subtopic"
)

// SubtopicUpdate is the builder for updating Subtopic entities.
type SubtopicUpdate struct {
	config
	hooks    []Hook
	mutation *SubtopicMutation
}

// Where appends a list predicates to the SubtopicUpdate builder.
func (_u *SubtopicUpdate) Where(ps ...predicate.Subtopic) *SubtopicUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetModuleOrder sets the "module_order" field.
func (_u *SubtopicUpdate) SetModuleOrder(v int) *SubtopicUpdate {
	_u.mutation.ResetModuleOrder()
	_u.mutation.SetModuleOrder(v)
	return _u
}

// SetNillableModuleOrder sets the "module_order" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableModuleOrder(v *int) *SubtopicUpdate {
	if v != nil {
		_u.SetModuleOrder(*v)
	}
	return _u
}

// AddModuleOrder adds value to the "module_order" field.
func (_u *SubtopicUpdate) AddModuleOrder(v int) *SubtopicUpdate {
	_u.mutation.AddModuleOrder(v)
	return _u
}

// SetSubtopicOrder sets the "subtopic_order" field.
func (_u *SubtopicUpdate) SetSubtopicOrder(v int) *SubtopicUpdate {
	_u.mutation.ResetSubtopicOrder()
	_u.mutation.SetSubtopicOrder(v)
	return _u
}

// SetNillableSubtopicOrder sets the "subtopic_order" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableSubtopicOrder(v *int) *SubtopicUpdate {
	if v != nil {
		_u.SetSubtopicOrder(*v)
	}
	return _u
}

// AddSubtopicOrder adds value to the "subtopic_order" field.
func (_u *SubtopicUpdate) AddSubtopicOrder(v int) *SubtopicUpdate {
	_u.mutation.AddSubtopicOrder(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SubtopicUpdate) SetTitle(v string) *SubtopicUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SubtopicUpdate) SetNillableTitle(v *string) *SubtopicUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// Mutation returns the SubtopicMutation object of the builder.
func (_u *SubtopicUpdate) Mutation() *SubtopicMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *SubtopicUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtopicUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *SubtopicUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtopicUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtopicUpdate) check() error {
	if v, ok := _u.mutation.ModuleOrder(); ok {
		if err := subtopic.ModuleOrderValidator(v); err != nil {
			return &ValidationError{Name: "module_order", err: fmt.Errorf(`ent: validator failed for field "Subtopic.module_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubtopicOrder(); ok {
		if err := subtopic.SubtopicOrderValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_order", err: fmt.Errorf(`ent: validator failed for field "Subtopic.subtopic_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := subtopic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Subtopic.title": %w`, err)}
		}
	}
	return nil
}

func (_u *SubtopicUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopic.Table, subtopic.Columns, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModuleOrder(); ok {
		_spec.SetField(subtopic.FieldModuleOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleOrder(); ok {
		_spec.AddField(subtopic.FieldModuleOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubtopicOrder(); ok {
		_spec.SetField(subtopic.FieldSubtopicOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubtopicOrder(); ok {
		_spec.AddField(subtopic.FieldSubtopicOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(subtopic.FieldTitle, field.TypeString, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// SubtopicUpdateOne is the builder for updating a single Subtopic entity.
type SubtopicUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *SubtopicMutation
}

// SetModuleOrder sets the "module_order" field.
func (_u *SubtopicUpdateOne) SetModuleOrder(v int) *SubtopicUpdateOne {
	_u.mutation.ResetModuleOrder()
	_u.mutation.SetModuleOrder(v)
	return _u
}

// SetNillableModuleOrder sets the "module_order" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableModuleOrder(v *int) *SubtopicUpdateOne {
	if v != nil {
		_u.SetModuleOrder(*v)
	}
	return _u
}

// AddModuleOrder adds value to the "module_order" field.
func (_u *SubtopicUpdateOne) AddModuleOrder(v int) *SubtopicUpdateOne {
	_u.mutation.AddModuleOrder(v)
	return _u
}

// SetSubtopicOrder sets the "subtopic_order" field.
func (_u *SubtopicUpdateOne) SetSubtopicOrder(v int) *SubtopicUpdateOne {
	_u.mutation.ResetSubtopicOrder()
	_u.mutation.SetSubtopicOrder(v)
	return _u
}

// SetNillableSubtopicOrder sets the "subtopic_order" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableSubtopicOrder(v *int) *SubtopicUpdateOne {
	if v != nil {
		_u.SetSubtopicOrder(*v)
	}
	return _u
}

// AddSubtopicOrder adds value to the "subtopic_order" field.
func (_u *SubtopicUpdateOne) AddSubtopicOrder(v int) *SubtopicUpdateOne {
	_u.mutation.AddSubtopicOrder(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *SubtopicUpdateOne) SetTitle(v string) *SubtopicUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *SubtopicUpdateOne) SetNillableTitle(v *string) *SubtopicUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// Mutation returns the SubtopicMutation object of the builder.
func (_u *SubtopicUpdateOne) Mutation() *SubtopicMutation {
	return _u.mutation
}

// Where appends a list predicates to the SubtopicUpdate builder.
func (_u *SubtopicUpdateOne) Where(ps ...predicate.Subtopic) *SubtopicUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *SubtopicUpdateOne) Select(field string, fields ...string) *SubtopicUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Subtopic entity.
func (_u *SubtopicUpdateOne) Save(ctx context.Context) (*Subtopic, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *SubtopicUpdateOne) SaveX(ctx context.Context) *Subtopic {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *SubtopicUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *SubtopicUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *SubtopicUpdateOne) check() error {
	if v, ok := _u.mutation.ModuleOrder(); ok {
		if err := subtopic.ModuleOrderValidator(v); err != nil {
			return &ValidationError{Name: "module_order", err: fmt.Errorf(`ent: validator failed for field "Subtopic.module_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubtopicOrder(); ok {
		if err := subtopic.SubtopicOrderValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_order", err: fmt.Errorf(`ent: validator failed for field "Subtopic.subtopic_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := subtopic.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "Subtopic.title": %w`, err)}
		}
	}
	return nil
}

func (_u *SubtopicUpdateOne) sqlSave(ctx context.Context) (_node *Subtopic, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(subtopic.Table, subtopic.Columns, sqlgraph.NewFieldSpec(subtopic.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Subtopic.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, subtopic.FieldID)
		for _, f := range fields {
			if !subtopic.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != subtopic.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ModuleOrder(); ok {
		_spec.SetField(subtopic.FieldModuleOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleOrder(); ok {
		_spec.AddField(subtopic.FieldModuleOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubtopicOrder(); ok {
		_spec.SetField(subtopic.FieldSubtopicOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubtopicOrder(); ok {
		_spec.AddField(subtopic.FieldSubtopicOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(subtopic.FieldTitle, field.TypeString, value)
	}
	_node = &Subtopic{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{subtopic.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
