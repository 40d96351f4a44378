// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/subtopic"
)

// Subtopic is the model entity for the Subtopic schema.
type Subtopic struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID string `json:"course_id,omitempty"`
	// ModuleOrder holds the value of the "module_order" field.
	ModuleOrder int `json:"module_order,omitempty"`
	// 1-based position within the module
	SubtopicOrder int `json:"subtopic_order,omitempty"`
	// Title holds the value of the "title" field.
	Title        string `json:"title,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Subtopic) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case subtopic.FieldID, subtopic.FieldModuleOrder, subtopic.FieldSubtopicOrder:
			values[i] = new(sql.NullInt64)
		case subtopic.FieldCourseID, subtopic.FieldTitle:
			values[i] = new(sql.NullString)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Subtopic fields.
func (_m *Subtopic) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case subtopic.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case subtopic.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = value.String
			}
		case subtopic.FieldModuleOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field module_order", values[i])
			} else if value.Valid {
				_m.ModuleOrder = int(value.Int64)
			}
		case subtopic.FieldSubtopicOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_order", values[i])
			} else if value.Valid {
				_m.SubtopicOrder = int(value.Int64)
			}
		case subtopic.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Subtopic.
// This includes values selected through modifiers, order, etc.
func (_m *Subtopic) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this Subtopic.
// Note that you need to call Subtopic.Unwrap() before calling this method if this Subtopic
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Subtopic) Update() *SubtopicUpdateOne {
	return NewSubtopicClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Subtopic entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Subtopic) Unwrap() *Subtopic {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Subtopic is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Subtopic) String() string {
	var builder strings.Builder
	builder.WriteString("Subtopic(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("course_id=")
	builder.WriteString(_m.CourseID)
	builder.WriteString(", ")
	builder.WriteString("module_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.ModuleOrder))
	builder.WriteString(", ")
	builder.WriteString("subtopic_order=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubtopicOrder))
	builder.WriteString(", ")
	builder.WriteString("title=")
	builder.WriteString(_m.Title)
	builder.WriteByte(')')
	return builder.String()
}

// Subtopics is a parsable slice of Subtopic.
type Subtopics []*Subtopic
