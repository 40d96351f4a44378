package tutor

import (
	"fmt"
	"strings"

	"github.com/abhisek/coursegen/internal/store"
)

const lessonSystemPrompt = `You are a clear, engaging teacher writing a self-contained lesson for one subtopic of a course. The reader works through the course alone, so the lesson must stand on its own.`

// LessonInput holds all context needed to generate a lesson.
type LessonInput struct {
	Course        *store.Course
	ModuleOrder   int
	SubtopicOrder int
}

// subtopicTitle resolves the requested subtopic from the course outline.
// Returns an error when the coordinates fall outside the outline.
func (in LessonInput) subtopicTitle() (string, error) {
	for _, m := range in.Course.Modules {
		if m.Order != in.ModuleOrder {
			continue
		}
		for _, st := range m.Subtopics {
			if st.Order == in.SubtopicOrder {
				return st.Title, nil
			}
		}
		return "", fmt.Errorf("module %d has no subtopic %d", in.ModuleOrder, in.SubtopicOrder)
	}
	return "", fmt.Errorf("course has no module %d", in.ModuleOrder)
}

func buildLessonUserMessage(in LessonInput, subtopic string) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("Course: %s\n", in.Course.Title))
	b.WriteString(fmt.Sprintf("Course goal: %s\n", in.Course.Goal))

	if in.Course.KnowledgeProfile != "" {
		b.WriteString(fmt.Sprintf("Learner background: %s\n", in.Course.KnowledgeProfile))
	}

	b.WriteString("\nCourse outline:\n")
	for _, m := range in.Course.Modules {
		marker := " "
		if m.Order == in.ModuleOrder {
			marker = "*"
		}
		b.WriteString(fmt.Sprintf("%s Module %d: %s\n", marker, m.Order, m.Title))
		for _, st := range m.Subtopics {
			stMarker := " "
			if m.Order == in.ModuleOrder && st.Order == in.SubtopicOrder {
				stMarker = ">"
			}
			b.WriteString(fmt.Sprintf("  %s %d.%d %s\n", stMarker, m.Order, st.Order, st.Title))
		}
	}

	b.WriteString(fmt.Sprintf("\nWrite the lesson for subtopic %d.%d: %s\n", in.ModuleOrder, in.SubtopicOrder, subtopic))

	b.WriteString(`
Instructions:
1. Cover exactly this subtopic. Assume earlier subtopics are known and later ones are not.
2. Open with why the subtopic matters for the course goal, then teach it with concrete examples.
3. Use markdown: short paragraphs, headings where they help, code blocks for any code.
4. Close with a two-or-three sentence summary of what was covered.
5. Match the depth to the learner background above.`)

	return b.String()
}
