package testgen

import (
	"fmt"
	"strings"

	"github.com/prepdeck/prepdeck/internal/exam"
)

const systemPrompt = `You are an experienced teacher writing a practice test.

Rules:
- Write questions strictly on the given subject and chapter.
- Use plain text. No markdown, no LaTeX.
- Every question gets a short, specific topic label naming the concept it tests.
- For multiple_choice, provide exactly 4 options where exactly one is correct. Distractors should reflect common mistakes, not random values.
- For short_answer and long_answer, provide a concise model answer and leave choices empty.
- Vary difficulty across the test: open easy, finish hard.
- Do not repeat a concept across questions unless the list of weak topics asks for it.`

// buildUserMessage constructs the user message for one test request.
func buildUserMessage(input GenerateInput) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Subject: %s\n", input.Subject)
	fmt.Fprintf(&b, "Chapter: %s\n", input.Chapter)
	fmt.Fprintf(&b, "Number of questions: %d\n", input.NumQuestions)
	fmt.Fprintf(&b, "Allowed question types: %s\n", typeList(input.Types))

	if len(input.WeakAreas) > 0 {
		b.WriteString("\nThe learner recently struggled with these topics; include questions on them:\n")
		for i, w := range input.WeakAreas {
			fmt.Fprintf(&b, "%d. %s\n", i+1, w)
		}
	}

	return b.String()
}

func typeList(types []exam.QuestionType) string {
	if len(types) == 0 {
		return string(exam.TypeMultipleChoice)
	}
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = string(t)
	}
	return strings.Join(parts, ", ")
}
