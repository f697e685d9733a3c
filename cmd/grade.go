package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/prepdeck/prepdeck/internal/exam"
	"github.com/prepdeck/prepdeck/internal/grading"
	"github.com/prepdeck/prepdeck/internal/llm"
	"github.com/prepdeck/prepdeck/internal/progress"
)

var gradeCmd = &cobra.Command{
	Use:   "grade",
	Short: "Grade a test submission from JSON files",
	Long: `Grade scores a test taken outside the interactive session. The test
and answer files use the same JSON shape the generation service produces.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		testPath, _ := cmd.Flags().GetString("test")
		answersPath, _ := cmd.Flags().GetString("answers")
		timeSecs, _ := cmd.Flags().GetInt("time")
		detailFlag, _ := cmd.Flags().GetString("detail")

		if testPath == "" || answersPath == "" {
			return fmt.Errorf("--test and --answers are required")
		}

		test, err := loadTestFile(testPath)
		if err != nil {
			return err
		}
		answers, err := loadAnswersFile(answersPath)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := cmd.Context()

		// --detail overrides the stored profile preference.
		var detail exam.DetailLevel
		switch detailFlag {
		case "":
			detail, err = detailLevel(ctx, s, false)
			if err != nil {
				return err
			}
		case "full":
			detail = exam.DetailFull
		case "summary":
			detail = exam.DetailSummary
		default:
			return fmt.Errorf("invalid detail level %q (want full or summary)", detailFlag)
		}

		// Explanations are best effort here: grading a file offline must
		// work without any API key configured.
		var provider llm.Provider
		if cfg := llm.ConfigFromEnv(); cfg.Validate() == nil {
			provider, err = llm.NewProvider(ctx, cfg, s.Events())
			if err != nil {
				return err
			}
		} else if detail == exam.DetailFull {
			fmt.Println("No LLM provider configured; grading without explanations.")
		}

		grader := grading.NewGrader(provider, grading.DefaultConfig())
		report := grader.Grade(ctx, *test, answers, time.Duration(timeSecs)*time.Second, detail)

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
	gradeCmd.Flags().String("test", "", "Path to the test JSON file")
	gradeCmd.Flags().String("answers", "", "Path to the answers JSON file")
	gradeCmd.Flags().Int("time", 0, "Time taken in seconds")
	gradeCmd.Flags().String("detail", "", "Feedback detail: full or summary (default: profile preference)")
}

// questionFile mirrors the generation-service question shape.
type questionFile struct {
	Text          string   `json:"text"`
	Type          string   `json:"type"`
	Marks         int      `json:"marks"`
	Topic         string   `json:"topic"`
	Choices       []string `json:"choices,omitempty"`
	CorrectOption int      `json:"correct_option,omitempty"`
	ModelAnswer   string   `json:"model_answer,omitempty"`
}

type testFile struct {
	Subject   string         `json:"subject"`
	Chapter   string         `json:"chapter"`
	Questions []questionFile `json:"questions"`
}

type answerFile struct {
	QuestionIndex  int    `json:"question_index"`
	SelectedOption *int   `json:"selected_option,omitempty"`
	WrittenAnswer  string `json:"written_answer,omitempty"`
}

func loadTestFile(path string) (*exam.Test, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read test file: %w", err)
	}

	var tf testFile
	if err := json.Unmarshal(data, &tf); err != nil {
		return nil, fmt.Errorf("parse test file: %w", err)
	}
	if len(tf.Questions) == 0 {
		return nil, fmt.Errorf("test file %s has no questions", path)
	}

	test := &exam.Test{Subject: tf.Subject, Chapter: tf.Chapter}
	for _, q := range tf.Questions {
		test.Questions = append(test.Questions, exam.Question{
			Text:          q.Text,
			Type:          exam.QuestionType(q.Type),
			Marks:         q.Marks,
			Topic:         q.Topic,
			Choices:       q.Choices,
			CorrectOption: q.CorrectOption,
			ModelAnswer:   q.ModelAnswer,
		})
	}
	return test, nil
}

func loadAnswersFile(path string) ([]exam.Answer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read answers file: %w", err)
	}

	var rows []answerFile
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, fmt.Errorf("parse answers file: %w", err)
	}

	answers := make([]exam.Answer, 0, len(rows))
	for _, r := range rows {
		answers = append(answers, exam.Answer{
			QuestionIndex:  r.QuestionIndex,
			SelectedOption: r.SelectedOption,
			WrittenAnswer:  r.WrittenAnswer,
		})
	}
	return answers, nil
}
