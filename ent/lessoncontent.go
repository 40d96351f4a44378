// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/abhisek/coursegen/ent/lessoncontent"
)

// LessonContent is the model entity for the LessonContent schema.
type LessonContent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// CourseID holds the value of the "course_id" field.
	CourseID string `json:"course_id,omitempty"`
	// ModuleOrder holds the value of the "module_order" field.
	ModuleOrder int `json:"module_order,omitempty"`
	// SubtopicOrder holds the value of the "subtopic_order" field.
	SubtopicOrder int `json:"subtopic_order,omitempty"`
	// Title holds the value of the "title" field.
	Title string `json:"title,omitempty"`
	// Content holds the value of the "content" field.
	Content string `json:"content,omitempty"`
	// Minutes, 0 when the model omitted it
	EstimatedReadTimeMin int `json:"estimated_read_time_min,omitempty"`
	// Model ID that produced the content
	Model string `json:"model,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*LessonContent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case lessoncontent.FieldID, lessoncontent.FieldModuleOrder, lessoncontent.FieldSubtopicOrder, lessoncontent.FieldEstimatedReadTimeMin:
			values[i] = new(sql.NullInt64)
		case lessoncontent.FieldCourseID, lessoncontent.FieldTitle, lessoncontent.FieldContent, lessoncontent.FieldModel:
			values[i] = new(sql.NullString)
		case lessoncontent.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the LessonContent fields.
func (_m *LessonContent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case lessoncontent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int(value.Int64)
		case lessoncontent.FieldCourseID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field course_id", values[i])
			} else if value.Valid {
				_m.CourseID = value.String
			}
		case lessoncontent.FieldModuleOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field module_order", values[i])
			} else if value.Valid {
				_m.ModuleOrder = int(value.Int64)
			}
		case lessoncontent.FieldSubtopicOrder:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field subtopic_order", values[i])
			} else if value.Valid {
				_m.SubtopicOrder = int(value.Int64)
			}
		case lessoncontent.FieldTitle:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field title", values[i])
			} else if value.Valid {
				_m.Title = value.String
			}
		case lessoncontent.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case lessoncontent.FieldEstimatedReadTimeMin:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_read_time_min", values[i])
			} else if value.Valid {
				_m.EstimatedReadTimeMin = int(value.Int64)
			}
		case lessoncontent.FieldModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field model", values[i])
			} else if value.Valid {
				_m.Model = value.String
			}
		case lessoncontent.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the LessonContent.
// This includes values selected through modifiers, order, etc.
func (_m *LessonContent) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this LessonContent.
// Note that you need to call LessonContent.Unwrap() before calling this method if this LessonContent
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *LessonContent) Update() *LessonContentUpdateOne {
	return NewLessonContentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the LessonContent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *LessonContent) Unwrap() *LessonContent {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: LessonContent is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *LessonContent) String() string {
	var builder strings.Builder
	builder.WriteString("LessonContent(")
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
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	builder.WriteString("estimated_read_time_min=")
	builder.WriteString(fmt.Sprintf("%v", _m.EstimatedReadTimeMin))
	builder.WriteString(", ")
	builder.WriteString("model=")
	builder.WriteString(_m.Model)
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// LessonContents is a parsable slice of LessonContent.
type LessonContents []*LessonContent
