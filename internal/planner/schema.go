package planner

import "github.com/abhisek/coursegen/internal/llm"

// OutlineSchema defines the JSON schema for course outline generation.
var OutlineSchema = &llm.Schema{
	Name:        "course-outline",
	Description: "A structured course outline with ordered modules and subtopics",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"title": map[string]any{
				"type":        "string",
				"description": "Course title (4-10 words)",
				"minLength":   10,
				"maxLength":   150,
			},
			"description": map[string]any{
				"type":        "string",
				"description": "One-paragraph overview of the course",
			},
			"modules": map[string]any{
				"type":        "array",
				"description": "3-8 modules in learning order",
				"minItems":    1,
				"maxItems":    12,
				"items": map[string]any{
					"type": "object",
					"properties": map[string]any{
						"title": map[string]any{
							"type":        "string",
							"description": "Module title",
						},
						"description": map[string]any{
							"type":        "string",
							"description": "What this module covers",
						},
						"subtopics": map[string]any{
							"type":        "array",
							"description": "2-6 lesson-sized subtopics in order",
							"minItems":    1,
							"maxItems":    10,
							"items":       map[string]any{"type": "string"},
						},
					},
					"required":             []any{"title", "description", "subtopics"},
					"additionalProperties": false,
				},
			},
		},
		"required":             []any{"title", "description", "modules"},
		"additionalProperties": false,
	},
}
