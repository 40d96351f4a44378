// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/abhisek/coursegen/ent/lessoncontent"
	"github.com/abhisek/coursegen/ent/predicate"
)

// LessonContentUpdate is the builder for updating LessonContent entities.
type LessonContentUpdate struct {
	config
	hooks    []Hook
	mutation *LessonContentMutation
}

// Where appends a list predicates to the LessonContentUpdate builder.
func (_u *LessonContentUpdate) Where(ps ...predicate.LessonContent) *LessonContentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetCourseID sets the "course_id" field.
func (_u *LessonContentUpdate) SetCourseID(v string) *LessonContentUpdate {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonContentUpdate) SetNillableCourseID(v *string) *LessonContentUpdate {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetModuleOrder sets the "module_order" field.
func (_u *LessonContentUpdate) SetModuleOrder(v int) *LessonContentUpdate {
	_u.mutation.ResetModuleOrder()
	_u.mutation.SetModuleOrder(v)
	return _u
}

// SetNillableModuleOrder sets the "module_order" field if the given value is not nil.
func (_u *LessonContentUpdate) SetNillableModuleOrder(v *int) *LessonContentUpdate {
	if v != nil {
		_u.SetModuleOrder(*v)
	}
	return _u
}

// AddModuleOrder adds value to the "module_order" field.
func (_u *LessonContentUpdate) AddModuleOrder(v int) *LessonContentUpdate {
	_u.mutation.AddModuleOrder(v)
	return _u
}

// SetSubtopicOrder sets the "subtopic_order" field.
func (_u *LessonContentUpdate) SetSubtopicOrder(v int) *LessonContentUpdate {
	_u.mutation.ResetSubtopicOrder()
	_u.mutation.SetSubtopicOrder(v)
	return _u
}

// SetNillableSubtopicOrder sets the "subtopic_order" field if the given value is not nil.
func (_u *LessonContentUpdate) SetNillableSubtopicOrder(v *int) *LessonContentUpdate {
	if v != nil {
		_u.SetSubtopicOrder(*v)
	}
	return _u
}

// AddSubtopicOrder adds value to the "subtopic_order" field.
func (_u *LessonContentUpdate) AddSubtopicOrder(v int) *LessonContentUpdate {
	_u.mutation.AddSubtopicOrder(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonContentUpdate) SetTitle(v string) *LessonContentUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonContentUpdate) SetNillableTitle(v *string) *LessonContentUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *LessonContentUpdate) SetContent(v string) *LessonContentUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *LessonContentUpdate) SetNillableContent(v *string) *LessonContentUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetEstimatedReadTimeMin sets the "estimated_read_time_min" field.
func (_u *LessonContentUpdate) SetEstimatedReadTimeMin(v int) *LessonContentUpdate {
	_u.mutation.ResetEstimatedReadTimeMin()
	_u.mutation.SetEstimatedReadTimeMin(v)
	return _u
}

// SetNillableEstimatedReadTimeMin sets the "estimated_read_time_min" field if the given value is not nil.
func (_u *LessonContentUpdate) SetNillableEstimatedReadTimeMin(v *int) *LessonContentUpdate {
	if v != nil {
		_u.SetEstimatedReadTimeMin(*v)
	}
	return _u
}

// AddEstimatedReadTimeMin adds value to the "estimated_read_time_min" field.
func (_u *LessonContentUpdate) AddEstimatedReadTimeMin(v int) *LessonContentUpdate {
	_u.mutation.AddEstimatedReadTimeMin(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *LessonContentUpdate) SetModel(v string) *LessonContentUpdate {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LessonContentUpdate) SetNillableModel(v *string) *LessonContentUpdate {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonContentUpdate) SetUpdatedAt(v time.Time) *LessonContentUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonContentMutation object of the builder.
func (_u *LessonContentUpdate) Mutation() *LessonContentMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *LessonContentUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonContentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *LessonContentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonContentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonContentUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessoncontent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonContentUpdate) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := lessoncontent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "LessonContent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleOrder(); ok {
		if err := lessoncontent.ModuleOrderValidator(v); err != nil {
			return &ValidationError{Name: "module_order", err: fmt.Errorf(`ent: validator failed for field "LessonContent.module_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubtopicOrder(); ok {
		if err := lessoncontent.SubtopicOrderValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_order", err: fmt.Errorf(`ent: validator failed for field "LessonContent.subtopic_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lessoncontent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LessonContent.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := lessoncontent.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "LessonContent.content": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonContentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessoncontent.Table, lessoncontent.Columns, sqlgraph.NewFieldSpec(lessoncontent.FieldID, field.TypeInt))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lessoncontent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleOrder(); ok {
		_spec.SetField(lessoncontent.FieldModuleOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleOrder(); ok {
		_spec.AddField(lessoncontent.FieldModuleOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubtopicOrder(); ok {
		_spec.SetField(lessoncontent.FieldSubtopicOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubtopicOrder(); ok {
		_spec.AddField(lessoncontent.FieldSubtopicOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lessoncontent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(lessoncontent.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedReadTimeMin(); ok {
		_spec.SetField(lessoncontent.FieldEstimatedReadTimeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedReadTimeMin(); ok {
		_spec.AddField(lessoncontent.FieldEstimatedReadTimeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(lessoncontent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessoncontent.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessoncontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// LessonContentUpdateOne is the builder for updating a single LessonContent entity.
type LessonContentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *LessonContentMutation
}

// SetCourseID sets the "course_id" field.
func (_u *LessonContentUpdateOne) SetCourseID(v string) *LessonContentUpdateOne {
	_u.mutation.SetCourseID(v)
	return _u
}

// SetNillableCourseID sets the "course_id" field if the given value is not nil.
func (_u *LessonContentUpdateOne) SetNillableCourseID(v *string) *LessonContentUpdateOne {
	if v != nil {
		_u.SetCourseID(*v)
	}
	return _u
}

// SetModuleOrder sets the "module_order" field.
func (_u *LessonContentUpdateOne) SetModuleOrder(v int) *LessonContentUpdateOne {
	_u.mutation.ResetModuleOrder()
	_u.mutation.SetModuleOrder(v)
	return _u
}

// SetNillableModuleOrder sets the "module_order" field if the given value is not nil.
func (_u *LessonContentUpdateOne) SetNillableModuleOrder(v *int) *LessonContentUpdateOne {
	if v != nil {
		_u.SetModuleOrder(*v)
	}
	return _u
}

// AddModuleOrder adds value to the "module_order" field.
func (_u *LessonContentUpdateOne) AddModuleOrder(v int) *LessonContentUpdateOne {
	_u.mutation.AddModuleOrder(v)
	return _u
}

// SetSubtopicOrder sets the "subtopic_order" field.
func (_u *LessonContentUpdateOne) SetSubtopicOrder(v int) *LessonContentUpdateOne {
	_u.mutation.ResetSubtopicOrder()
	_u.mutation.SetSubtopicOrder(v)
	return _u
}

// SetNillableSubtopicOrder sets the "subtopic_order" field if the given value is not nil.
func (_u *LessonContentUpdateOne) SetNillableSubtopicOrder(v *int) *LessonContentUpdateOne {
	if v != nil {
		_u.SetSubtopicOrder(*v)
	}
	return _u
}

// AddSubtopicOrder adds value to the "subtopic_order" field.
func (_u *LessonContentUpdateOne) AddSubtopicOrder(v int) *LessonContentUpdateOne {
	_u.mutation.AddSubtopicOrder(v)
	return _u
}

// SetTitle sets the "title" field.
func (_u *LessonContentUpdateOne) SetTitle(v string) *LessonContentUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *LessonContentUpdateOne) SetNillableTitle(v *string) *LessonContentUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *LessonContentUpdateOne) SetContent(v string) *LessonContentUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *LessonContentUpdateOne) SetNillableContent(v *string) *LessonContentUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetEstimatedReadTimeMin sets the "estimated_read_time_min" field.
func (_u *LessonContentUpdateOne) SetEstimatedReadTimeMin(v int) *LessonContentUpdateOne {
	_u.mutation.ResetEstimatedReadTimeMin()
	_u.mutation.SetEstimatedReadTimeMin(v)
	return _u
}

// SetNillableEstimatedReadTimeMin sets the "estimated_read_time_min" field if the given value is not nil.
func (_u *LessonContentUpdateOne) SetNillableEstimatedReadTimeMin(v *int) *LessonContentUpdateOne {
	if v != nil {
		_u.SetEstimatedReadTimeMin(*v)
	}
	return _u
}

// AddEstimatedReadTimeMin adds value to the "estimated_read_time_min" field.
func (_u *LessonContentUpdateOne) AddEstimatedReadTimeMin(v int) *LessonContentUpdateOne {
	_u.mutation.AddEstimatedReadTimeMin(v)
	return _u
}

// SetModel sets the "model" field.
func (_u *LessonContentUpdateOne) SetModel(v string) *LessonContentUpdateOne {
	_u.mutation.SetModel(v)
	return _u
}

// SetNillableModel sets the "model" field if the given value is not nil.
func (_u *LessonContentUpdateOne) SetNillableModel(v *string) *LessonContentUpdateOne {
	if v != nil {
		_u.SetModel(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *LessonContentUpdateOne) SetUpdatedAt(v time.Time) *LessonContentUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the LessonContentMutation object of the builder.
func (_u *LessonContentUpdateOne) Mutation() *LessonContentMutation {
	return _u.mutation
}

// Where appends a list predicates to the LessonContentUpdate builder.
func (_u *LessonContentUpdateOne) Where(ps ...predicate.LessonContent) *LessonContentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *LessonContentUpdateOne) Select(field string, fields ...string) *LessonContentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated LessonContent entity.
func (_u *LessonContentUpdateOne) Save(ctx context.Context) (*LessonContent, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *LessonContentUpdateOne) SaveX(ctx context.Context) *LessonContent {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *LessonContentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *LessonContentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *LessonContentUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := lessoncontent.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *LessonContentUpdateOne) check() error {
	if v, ok := _u.mutation.CourseID(); ok {
		if err := lessoncontent.CourseIDValidator(v); err != nil {
			return &ValidationError{Name: "course_id", err: fmt.Errorf(`ent: validator failed for field "LessonContent.course_id": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModuleOrder(); ok {
		if err := lessoncontent.ModuleOrderValidator(v); err != nil {
			return &ValidationError{Name: "module_order", err: fmt.Errorf(`ent: validator failed for field "LessonContent.module_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.SubtopicOrder(); ok {
		if err := lessoncontent.SubtopicOrderValidator(v); err != nil {
			return &ValidationError{Name: "subtopic_order", err: fmt.Errorf(`ent: validator failed for field "LessonContent.subtopic_order": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Title(); ok {
		if err := lessoncontent.TitleValidator(v); err != nil {
			return &ValidationError{Name: "title", err: fmt.Errorf(`ent: validator failed for field "LessonContent.title": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Content(); ok {
		if err := lessoncontent.ContentValidator(v); err != nil {
			return &ValidationError{Name: "content", err: fmt.Errorf(`ent: validator failed for field "LessonContent.content": %w`, err)}
		}
	}
	return nil
}

func (_u *LessonContentUpdateOne) sqlSave(ctx context.Context) (_node *LessonContent, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(lessoncontent.Table, lessoncontent.Columns, sqlgraph.NewFieldSpec(lessoncontent.FieldID, field.TypeInt))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "LessonContent.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, lessoncontent.FieldID)
		for _, f := range fields {
			if !lessoncontent.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != lessoncontent.FieldID {
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
	if value, ok := _u.mutation.CourseID(); ok {
		_spec.SetField(lessoncontent.FieldCourseID, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModuleOrder(); ok {
		_spec.SetField(lessoncontent.FieldModuleOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedModuleOrder(); ok {
		_spec.AddField(lessoncontent.FieldModuleOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SubtopicOrder(); ok {
		_spec.SetField(lessoncontent.FieldSubtopicOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedSubtopicOrder(); ok {
		_spec.AddField(lessoncontent.FieldSubtopicOrder, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(lessoncontent.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(lessoncontent.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.EstimatedReadTimeMin(); ok {
		_spec.SetField(lessoncontent.FieldEstimatedReadTimeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedEstimatedReadTimeMin(); ok {
		_spec.AddField(lessoncontent.FieldEstimatedReadTimeMin, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Model(); ok {
		_spec.SetField(lessoncontent.FieldModel, field.TypeString, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(lessoncontent.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &LessonContent{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{lessoncontent.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
