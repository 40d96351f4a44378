package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Course is a generated course outline: the root record that modules,
// subtopics, and lesson content hang off by course_id.
type Course struct {
	ent.Schema
}

func (Course) Fields() []ent.Field {
	return []ent.Field{
		field.String("course_id").
			Unique().
			Immutable().
			Comment("UUID assigned at planning time"),
		field.String("goal").
			NotEmpty().
			Comment("Learning goal the course was planned from"),
		field.String("knowledge_profile").
			Default("").
			Comment("Free-text description of the learner's prior knowledge"),
		field.String("title").
			NotEmpty(),
		field.String("description").
			Default(""),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

func (Course) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("course_id"),
		index.Fields("created_at"),
	}
}
