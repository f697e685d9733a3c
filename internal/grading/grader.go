package grading

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/prepdeck/prepdeck/internal/exam"
	"github.com/prepdeck/prepdeck/internal/llm"
)

// Grader converts a test submission into a Report. The provider is used
// only to request explanations for incorrect multiple-choice answers and
// may be nil, in which case no explanations are attached.
type Grader struct {
	provider llm.Provider
	config   Config
}

// Config controls explanation requests.
type Config struct {
	// MaxTokens is the token budget for a single explanation.
	MaxTokens int

	// Temperature controls explanation randomness (0.0-1.0).
	Temperature float64
}

// DefaultConfig returns the recommended explanation settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   256,
		Temperature: 0.3,
	}
}

// NewGrader creates a Grader. provider may be nil.
func NewGrader(provider llm.Provider, cfg Config) *Grader {
	return &Grader{provider: provider, config: cfg}
}

// Grade scores a submission and produces the Report.
//
// Multiple-choice questions are the only gradable type: each contributes
// its marks to the gradable total and, when answered correctly, to the
// earned total. Free-text questions are never auto-marked and contribute
// to neither. A short answer list is padded with unanswered entries
// rather than rejected, so a corrupted submission still grades.
func (g *Grader) Grade(ctx context.Context, test exam.Test, answers []exam.Answer, timeTaken time.Duration, detail exam.DetailLevel) *exam.Report {
	padded := alignAnswers(test.Questions, answers)

	marksEarned := 0
	gradableMarks := 0
	correctCount := 0
	var weakAreas []string
	seenWeak := make(map[string]bool)

	for i, q := range test.Questions {
		if !q.Gradable() {
			continue
		}
		gradableMarks += q.Marks

		correct := padded[i].SelectedOption != nil && *padded[i].SelectedOption == q.CorrectOption
		padded[i].Correct = &correct

		if correct {
			marksEarned += q.Marks
			correctCount++
		} else if !seenWeak[q.Topic] {
			seenWeak[q.Topic] = true
			weakAreas = append(weakAreas, q.Topic)
		}
	}

	// An all-free-text test has nothing to grade and scores 100 by
	// definition rather than dividing by zero.
	score := 100.0
	if gradableMarks > 0 {
		score = 100 * float64(marksEarned) / float64(gradableMarks)
	}

	if detail == exam.DetailFull {
		g.attachExplanations(ctx, test, padded)
	}

	return &exam.Report{
		ID:             uuid.NewString(),
		Subject:        test.Subject,
		Topic:          test.Chapter,
		Score:          score,
		TotalMarks:     test.TotalMarks(),
		MarksScored:    marksEarned,
		TotalQuestions: len(test.Questions),
		CorrectCount:   correctCount,
		TimeTakenSecs:  int(timeTaken / time.Second),
		CreatedAt:      time.Now().UTC(),
		WeakAreas:      weakAreas,
		Answers:        padded,
		Questions:      test.Questions,
		DetailLevel:    detail,
	}
}

// alignAnswers produces an answer slice positionally aligned with the
// question list. Missing entries become unanswered; extras are dropped.
func alignAnswers(questions []exam.Question, answers []exam.Answer) []exam.Answer {
	out := make([]exam.Answer, len(questions))
	for i := range out {
		out[i] = exam.Answer{QuestionIndex: i}
	}
	for _, a := range answers {
		if a.QuestionIndex >= 0 && a.QuestionIndex < len(out) {
			a.Correct = nil
			a.Solution = ""
			out[a.QuestionIndex] = a
		}
	}
	return out
}

// attachExplanations requests an explanation for every incorrect
// multiple-choice answer. Requests fan out concurrently and each result
// lands only in its own answer slot; a failed request leaves that slot's
// Solution empty and never fails the grade.
func (g *Grader) attachExplanations(ctx context.Context, test exam.Test, answers []exam.Answer) {
	if g.provider == nil {
		return
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeExplanation)

	var wg sync.WaitGroup
	for i := range answers {
		if answers[i].Correct == nil || *answers[i].Correct {
			continue
		}
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			answers[idx].Solution = g.explain(ctx, test.Questions[idx], answers[idx])
		}(i)
	}
	wg.Wait()
}

// explain makes a single explanation request. Returns "" on any failure.
func (g *Grader) explain(ctx context.Context, q exam.Question, a exam.Answer) string {
	resp, err := g.provider.Generate(ctx, llm.Request{
		System: explanationSystemPrompt,
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildExplanationMessage(q, a)},
		},
		MaxTokens:   g.config.MaxTokens,
		Temperature: g.config.Temperature,
	})
	if err != nil {
		return ""
	}
	return decodeText(resp.Content)
}

// decodeText unwraps a freeform response that may arrive either as raw
// text or as a JSON-encoded string.
func decodeText(raw json.RawMessage) string {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	return strings.TrimSpace(string(raw))
}
