// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// CoursesColumns holds the columns for the "courses" table.
	CoursesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString, Unique: true},
		{Name: "goal", Type: field.TypeString},
		{Name: "knowledge_profile", Type: field.TypeString, Default: ""},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
		{Name: "created_at", Type: field.TypeTime},
	}
	// CoursesTable holds the schema information for the "courses" table.
	CoursesTable = &schema.Table{
		Name:       "courses",
		Columns:    CoursesColumns,
		PrimaryKey: []*schema.Column{CoursesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "course_course_id",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[1]},
			},
			{
				Name:    "course_created_at",
				Unique:  false,
				Columns: []*schema.Column{CoursesColumns[6]},
			},
		},
	}
	// CourseModulesColumns holds the columns for the "course_modules" table.
	CourseModulesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString},
		{Name: "module_order", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "description", Type: field.TypeString, Default: ""},
	}
	// CourseModulesTable holds the schema information for the "course_modules" table.
	CourseModulesTable = &schema.Table{
		Name:       "course_modules",
		Columns:    CourseModulesColumns,
		PrimaryKey: []*schema.Column{CourseModulesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "coursemodule_course_id",
				Unique:  false,
				Columns: []*schema.Column{CourseModulesColumns[1]},
			},
			{
				Name:    "coursemodule_course_id_module_order",
				Unique:  true,
				Columns: []*schema.Column{CourseModulesColumns[1], CourseModulesColumns[2]},
			},
		},
	}
	// LlmRequestEventsColumns holds the columns for the "llm_request_events" table.
	LlmRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "model", Type: field.TypeString},
		{Name: "purpose", Type: field.TypeString},
		{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Default: ""},
		{Name: "request_body", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "response_body", Type: field.TypeString, Size: 2147483647, Default: ""},
	}
	// LlmRequestEventsTable holds the schema information for the "llm_request_events" table.
	LlmRequestEventsTable = &schema.Table{
		Name:       "llm_request_events",
		Columns:    LlmRequestEventsColumns,
		PrimaryKey: []*schema.Column{LlmRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "llmrequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[1]},
			},
			{
				Name:    "llmrequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[2]},
			},
			{
				Name:    "llmrequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[3]},
			},
			{
				Name:    "llmrequestevent_purpose",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[5]},
			},
			{
				Name:    "llmrequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{LlmRequestEventsColumns[9]},
			},
		},
	}
	// LessonContentsColumns holds the columns for the "lesson_contents" table.
	LessonContentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString},
		{Name: "module_order", Type: field.TypeInt},
		{Name: "subtopic_order", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "estimated_read_time_min", Type: field.TypeInt, Default: 0},
		{Name: "model", Type: field.TypeString, Default: ""},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// LessonContentsTable holds the schema information for the "lesson_contents" table.
	LessonContentsTable = &schema.Table{
		Name:       "lesson_contents",
		Columns:    LessonContentsColumns,
		PrimaryKey: []*schema.Column{LessonContentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "lessoncontent_course_id",
				Unique:  false,
				Columns: []*schema.Column{LessonContentsColumns[1]},
			},
			{
				Name:    "lessoncontent_course_id_module_order_subtopic_order",
				Unique:  true,
				Columns: []*schema.Column{LessonContentsColumns[1], LessonContentsColumns[2], LessonContentsColumns[3]},
			},
		},
	}
	// SubtopicsColumns holds the columns for the "subtopics" table.
	SubtopicsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "course_id", Type: field.TypeString},
		{Name: "module_order", Type: field.TypeInt},
		{Name: "subtopic_order", Type: field.TypeInt},
		{Name: "title", Type: field.TypeString},
	}
	// SubtopicsTable holds the schema information for the "subtopics" table.
	SubtopicsTable = &schema.Table{
		Name:       "subtopics",
		Columns:    SubtopicsColumns,
		PrimaryKey: []*schema.Column{SubtopicsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "subtopic_course_id",
				Unique:  false,
				Columns: []*schema.Column{SubtopicsColumns[1]},
			},
			{
				Name:    "subtopic_course_id_module_order_subtopic_order",
				Unique:  true,
				Columns: []*schema.Column{SubtopicsColumns[1], SubtopicsColumns[2], SubtopicsColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		CoursesTable,
		CourseModulesTable,
		LlmRequestEventsTable,
		LessonContentsTable,
		SubtopicsTable,
	}
)

func init() {
}
