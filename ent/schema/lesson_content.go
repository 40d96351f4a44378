package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// LessonContent stores the generated lesson for one subtopic. Regenerating
// a lesson replaces the previous row for the same coordinates.
type LessonContent struct {
	ent.Schema
}

func (LessonContent) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			NotEmpty(),
		field.Int("module_order").
			Positive(),
		field.Int("subtopic_order").
			Positive(),
		field.String("title").
			NotEmpty(),
		field.Text("content").
			NotEmpty(),
		field.Int("estimated_read_time_min").
			Default(0).
			Comment("Minutes, 0 when the model omitted it"),
		field.String("model").
			Default("").
			Comment("Model ID that produced the content"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

func (LessonContent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("course_id", "module_order", "subtopic_order").
			Unique(),
	}
}
