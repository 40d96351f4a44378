package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CourseModule is one ordered module within a course outline.
type CourseModule struct {
	ent.Schema
}

func (CourseModule) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			NotEmpty().
			Immutable(),
		field.Int("module_order").
			Positive().
			Comment("1-based position within the course"),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Default(""),
	}
}

func (CourseModule) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("course_id", "module_order").
			Unique(),
	}
}
