package planner

import (
	"fmt"
	"strings"
)

const planSystemPrompt = `You are an experienced curriculum designer. You turn a learner's goal into a practical, well-ordered course outline.`

func buildPlanUserMessage(input PlanInput) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Learning goal: %s\n", input.Goal))

	b.WriteString("\nLearner background:\n")
	if input.KnowledgeProfile == "" {
		b.WriteString("Unknown. Assume a motivated beginner.\n")
	} else {
		b.WriteString(input.KnowledgeProfile)
		b.WriteString("\n")
	}

	b.WriteString(`
Instructions:
Design a course outline that:
1. Starts from what the learner already knows and builds toward the goal. Skip material the background makes redundant.
2. Uses 3-8 modules, each a coherent theme, ordered so every module only depends on earlier ones.
3. Breaks each module into 2-6 subtopics. Each subtopic should be learnable in one sitting of 5-20 minutes.
4. Gives the course a clear, specific title and a one-paragraph description of what the learner will be able to do afterwards.
5. Keeps subtopic titles concrete ("Reading WAL checkpoints", not "Advanced topics").`)

	return b.String()
}
