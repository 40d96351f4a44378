package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Subtopic is one ordered subtopic within a course module. Each subtopic
// is the unit a lesson is generated for.
type Subtopic struct {
	ent.Schema
}

func (Subtopic) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			NotEmpty().
			Immutable(),
		field.Int("module_order").
			Positive(),
		field.Int("subtopic_order").
			Positive().
			Comment("1-based position within the module"),
		field.String("title").
			NotEmpty(),
	}
}

func (Subtopic) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("course_id", "module_order", "subtopic_order").
			Unique(),
	}
}
