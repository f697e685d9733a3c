package grading

import (
	"fmt"
	"strings"

	"github.com/prepdeck/prepdeck/internal/exam"
)

const explanationSystemPrompt = `You are a patient tutor reviewing a student's test.

Rules:
- The student picked the wrong option on a multiple-choice question.
- Explain in 2-4 sentences why the correct option is right.
- If the student's choice reflects a common misconception, name it briefly.
- Use plain text. No markdown, no LaTeX.
- Address the student directly and keep an encouraging tone.`

// buildExplanationMessage constructs the user message for one incorrect
// multiple-choice answer.
func buildExplanationMessage(q exam.Question, a exam.Answer) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Question: %s\n", q.Text)
	for i, c := range q.Choices {
		fmt.Fprintf(&b, "  %c) %s\n", 'A'+i, c)
	}
	fmt.Fprintf(&b, "Correct option: %c\n", 'A'+q.CorrectOption)

	if a.SelectedOption != nil {
		fmt.Fprintf(&b, "Student picked: %c\n", 'A'+*a.SelectedOption)
	} else {
		b.WriteString("Student left the question unanswered.\n")
	}

	return b.String()
}
