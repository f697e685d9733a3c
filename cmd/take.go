package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/exam"
	"github.com/prepdeck/prepdeck/internal/grading"
	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/progress"
	"github.com/prepdeck/prepdeck/internal/store"
	"github.com/prepdeck/prepdeck/internal/testgen"
)

var takeCmd = &cobra.Command{
	Use:   "take",
	Short: "Generate a practice test and take it in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		subject, _ := cmd.Flags().GetString("subject")
		chapter, _ := cmd.Flags().GetString("chapter")
		numQuestions, _ := cmd.Flags().GetInt("questions")
		typeNames, _ := cmd.Flags().GetStringSlice("types")
		summary, _ := cmd.Flags().GetBool("summary")

		if subject == "" || chapter == "" {
			return fmt.Errorf("--subject and --chapter are required")
		}

		types, err := parseQuestionTypes(typeNames)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("LLM configuration: %w", err)
		}

		ctx := cmd.Context()
		provider, err := llm.NewProvider(ctx, cfg, s.Events())
		if err != nil {
			return err
		}

		weakAreas, err := recentWeakAreas(ctx, s)
		if err != nil {
			return err
		}

		fmt.Printf("Generating a %d-question test on %s — %s...\n", numQuestions, subject, chapter)
		generator := testgen.NewGenerator(provider, testgen.DefaultConfig())
		test, err := generator.Generate(ctx, testgen.GenerateInput{
			Subject:      subject,
			Chapter:      chapter,
			NumQuestions: numQuestions,
			Types:        types,
			WeakAreas:    weakAreas,
		})
		if err != nil {
			return err
		}

		start := time.Now()
		answers := runSession(test)
		elapsed := time.Since(start)

		detail, err := detailLevel(ctx, s, summary)
		if err != nil {
			return err
		}

		fmt.Println("\nGrading...")
		grader := grading.NewGrader(provider, grading.DefaultConfig())
		report := grader.Grade(ctx, *test, answers, elapsed, detail)

		orch := progress.New(s.Reports(), s.Goals(), s.Profiles())
		fresh, err := orch.RecordReport(ctx, report)
		if err != nil {
			return err
		}

		printReport(report)
		printNewBadges(fresh)
		return nil
	},
}

func init() {
	takeCmd.Flags().StringP("subject", "s", "", "Subject of the test (e.g. Math)")
	takeCmd.Flags().StringP("chapter", "c", "", "Chapter or topic within the subject")
	takeCmd.Flags().IntP("questions", "n", 5, "Number of questions")
	takeCmd.Flags().StringSlice("types", nil, "Question types: mc, short, long (default mc)")
	takeCmd.Flags().Bool("summary", false, "Skip generated explanations for wrong answers")
}

func parseQuestionTypes(names []string) ([]exam.QuestionType, error) {
	var out []exam.QuestionType
	for _, n := range names {
		switch strings.ToLower(strings.TrimSpace(n)) {
		case "mc", "multiple_choice", "multiple-choice":
			out = append(out, exam.TypeMultipleChoice)
		case "short", "short_answer":
			out = append(out, exam.TypeShortAnswer)
		case "long", "long_answer":
			out = append(out, exam.TypeLongAnswer)
		default:
			return nil, fmt.Errorf("unknown question type %q (want mc, short, or long)", n)
		}
	}
	return out, nil
}

// recentWeakAreas collects weak-area topics from the latest few reports
// so generation can favor them. Deduplicated, newest report first.
func recentWeakAreas(ctx context.Context, s *store.Store) ([]string, error) {
	const lookback = 3

	history, err := s.Reports().All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load report history: %w", err)
	}

	var out []string
	seen := make(map[string]bool)
	for i := len(history) - 1; i >= 0 && i >= len(history)-lookback; i-- {
		for _, topic := range history[i].WeakAreas {
			if !seen[topic] {
				seen[topic] = true
				out = append(out, topic)
			}
		}
	}
	return out, nil
}

// runSession walks the learner through the test on stdin and collects
// their answers.
func runSession(test *exam.Test) []exam.Answer {
	reader := bufio.NewReader(os.Stdin)
	answers := make([]exam.Answer, 0, len(test.Questions))

	for i, q := range test.Questions {
		fmt.Printf("\nQ%d (%d marks). %s\n", i+1, q.Marks, q.Text)

		a := exam.Answer{QuestionIndex: i}
		switch q.Type {
		case exam.TypeMultipleChoice:
			for j, c := range q.Choices {
				fmt.Printf("  %c) %s\n", 'A'+j, c)
			}
			if idx, ok := readChoice(reader, len(q.Choices)); ok {
				a.SelectedOption = &idx
			}
		default:
			fmt.Print("Your answer: ")
			line, _ := reader.ReadString('\n')
			a.WrittenAnswer = strings.TrimSpace(line)
		}
		answers = append(answers, a)
	}
	return answers
}

// readChoice reads a choice as a letter (A-D) or a 1-based number. An
// empty line leaves the question unanswered.
func readChoice(reader *bufio.Reader, n int) (int, bool) {
	for {
		fmt.Print("Your answer (A-D, empty to skip): ")
		line, err := reader.ReadString('\n')
		if err != nil {
			return 0, false
		}
		line = strings.TrimSpace(line)
		if line == "" {
			return 0, false
		}

		if len(line) == 1 {
			c := strings.ToUpper(line)[0]
			if c >= 'A' && int(c-'A') < n {
				return int(c - 'A'), true
			}
		}
		if num, err := strconv.Atoi(line); err == nil && num >= 1 && num <= n {
			return num - 1, true
		}
		fmt.Println("Invalid choice, try again.")
	}
}

// detailLevel resolves feedback detail for this run: the --summary flag
// wins, otherwise the stored profile preference applies.
func detailLevel(ctx context.Context, s *store.Store, summary bool) (exam.DetailLevel, error) {
	if summary {
		return exam.DetailSummary, nil
	}
	prof, err := s.Profiles().Load(ctx)
	if err != nil {
		return exam.DetailFull, fmt.Errorf("load profile: %w", err)
	}
	return prof.DetailLevel, nil
}
