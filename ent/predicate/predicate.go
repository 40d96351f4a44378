// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Course is the predicate function for course builders.
type Course func(*sql.Selector)

// CourseModule is the predicate function for coursemodule builders.
type CourseModule func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// LessonContent is the predicate function for lessoncontent builders.
type LessonContent func(*sql.Selector)

// Subtopic is the predicate function for subtopic builders.
type Subtopic func(*sql.Selector)
