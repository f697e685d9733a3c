package cmd

import (
	"fmt"
	"strings"

	"github.com/prepdeck/prepdeck/internal/achievements"
	"github.com/prepdeck/prepdeck/internal/exam"
)

// printReport renders a graded report to stdout.
func printReport(r *exam.Report) {
	sep := strings.Repeat("─", 60)

	fmt.Println()
	fmt.Println(sep)
	fmt.Printf("%s — %s\n", r.Subject, r.Topic)
	fmt.Println(sep)
	fmt.Printf("Score:      %.1f%%\n", r.Score)
	fmt.Printf("Marks:      %d / %d\n", r.MarksScored, r.TotalMarks)
	fmt.Printf("Correct:    %d / %d questions\n", r.CorrectCount, r.TotalQuestions)
	if r.TimeTakenSecs > 0 {
		fmt.Printf("Time:       %dm %ds\n", r.TimeTakenSecs/60, r.TimeTakenSecs%60)
	}
	if len(r.WeakAreas) > 0 {
		fmt.Printf("Weak areas: %s\n", strings.Join(r.WeakAreas, ", "))
	}

	for i, a := range r.Answers {
		if i >= len(r.Questions) {
			break
		}
		q := r.Questions[i]
		if !q.Gradable() {
			continue
		}

		mark := "✗"
		if a.Correct != nil && *a.Correct {
			mark = "✓"
		}
		fmt.Printf("\n%s Q%d. %s\n", mark, i+1, q.Text)
		if a.SelectedOption != nil {
			fmt.Printf("   Your answer:    %s\n", choiceLabel(q, *a.SelectedOption))
		} else {
			fmt.Println("   Your answer:    (unanswered)")
		}
		if a.Correct == nil || !*a.Correct {
			fmt.Printf("   Correct answer: %s\n", choiceLabel(q, q.CorrectOption))
		}
		if a.Solution != "" {
			fmt.Printf("   Explanation:    %s\n", a.Solution)
		}
	}

	fmt.Println()
	fmt.Printf("Report saved as %s\n", r.ID)
}

func choiceLabel(q exam.Question, idx int) string {
	if idx < 0 || idx >= len(q.Choices) {
		return "?"
	}
	return fmt.Sprintf("%c) %s", 'A'+idx, q.Choices[idx])
}

// printNewBadges announces freshly earned badges by name.
func printNewBadges(ids []string) {
	if len(ids) == 0 {
		return
	}
	byID := make(map[string]achievements.Badge)
	for _, b := range achievements.Catalog() {
		byID[b.ID] = b
	}
	fmt.Println()
	for _, id := range ids {
		if b, ok := byID[id]; ok {
			fmt.Printf("🎉 Badge earned: %s %s — %s\n", b.Icon, b.Name, b.Description)
		}
	}
}
