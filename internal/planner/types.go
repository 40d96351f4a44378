package planner

// Outline is the LLM-generated course structure before persistence.
type Outline struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Modules     []OutlineModule `json:"modules"`
}

// OutlineModule is one module of a planned course.
type OutlineModule struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Subtopics   []string `json:"subtopics"`
}

// PlanInput holds all context needed to plan a course.
type PlanInput struct {
	// Goal is what the learner wants to achieve.
	Goal string
	// KnowledgeProfile describes what the learner already knows.
	KnowledgeProfile string
}
