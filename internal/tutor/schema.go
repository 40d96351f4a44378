package tutor

import "github.com/abhisek/coursegen/internal/llm"

// LessonSchema defines the JSON schema for lesson content generation.
var LessonSchema = &llm.Schema{
	Name:        "lesson-content",
	Description: "A complete prose lesson for one course subtopic",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Lesson title",
				"minLength":   10,
				"maxLength":   150,
			},
			"content": map[string]any{
				"type":        "string",
				"description": "The full lesson text in markdown, readable in one sitting",
				"minLength":   800,
				"maxLength":   6000,
			},
			"estimated_read_time_min": map[string]any{
				"type":        "integer",
				"description": "Estimated minutes to read the lesson",
				"minimum":     1,
				"maximum":     30,
			},
		},
		"required":             []any{"title", "content"},
		"additionalProperties": false,
	},
}
