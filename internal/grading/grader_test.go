package grading

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/exam"
	"github.com/prepdeck/prepdeck/internal/llm"
)

func intPtr(i int) *int { return &i }

func mcQuestion(text, topic string, marks, correct int) exam.Question {
	return exam.Question{
		Text:          text,
		Type:          exam.TypeMultipleChoice,
		Marks:         marks,
		Topic:         topic,
		Choices:       []string{"a", "b", "c", "d"},
		CorrectOption: correct,
	}
}

func shortQuestion(text, topic string, marks int) exam.Question {
	return exam.Question{
		Text:        text,
		Type:        exam.TypeShortAnswer,
		Marks:       marks,
		Topic:       topic,
		ModelAnswer: "model answer",
	}
}

func TestGradeMixedTest(t *testing.T) {
	test := exam.Test{
		Subject: "Math",
		Chapter: "Fractions",
		Questions: []exam.Question{
			mcQuestion("q1", "Addition", 2, 1),
			mcQuestion("q2", "Division", 3, 0),
			shortQuestion("q3", "Word Problems", 5),
		},
	}
	answers := []exam.Answer{
		{QuestionIndex: 0, SelectedOption: intPtr(1)}, // correct
		{QuestionIndex: 1, SelectedOption: intPtr(2)}, // wrong
		{QuestionIndex: 2, WrittenAnswer: "half"},
	}

	g := NewGrader(nil, DefaultConfig())
	r := g.Grade(context.Background(), test, answers, 90*time.Second, exam.DetailSummary)

	// Score is over gradable (multiple-choice) marks only: 2 of 5.
	if want := 40.0; r.Score != want {
		t.Errorf("Score = %g, want %g", r.Score, want)
	}
	if r.MarksScored != 2 {
		t.Errorf("MarksScored = %d, want 2", r.MarksScored)
	}
	if r.TotalMarks != 10 {
		t.Errorf("TotalMarks = %d, want 10", r.TotalMarks)
	}
	if r.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", r.CorrectCount)
	}
	if r.TotalQuestions != 3 {
		t.Errorf("TotalQuestions = %d, want 3", r.TotalQuestions)
	}
	if r.TimeTakenSecs != 90 {
		t.Errorf("TimeTakenSecs = %d, want 90", r.TimeTakenSecs)
	}
	if r.ID == "" {
		t.Error("expected a generated report ID")
	}

	if !slices.Equal(r.WeakAreas, []string{"Division"}) {
		t.Errorf("WeakAreas = %v, want [Division]", r.WeakAreas)
	}

	// MC answers are marked; the free-text answer stays unmarked.
	if r.Answers[0].Correct == nil || !*r.Answers[0].Correct {
		t.Error("answer 0 should be marked correct")
	}
	if r.Answers[1].Correct == nil || *r.Answers[1].Correct {
		t.Error("answer 1 should be marked incorrect")
	}
	if r.Answers[2].Correct != nil {
		t.Error("free-text answer should never be auto-marked")
	}
}

func TestGradeFourQuestionScenario(t *testing.T) {
	test := exam.Test{
		Subject: "Math",
		Chapter: "Mixed",
		Questions: []exam.Question{
			mcQuestion("q1", "Addition", 1, 0),
			mcQuestion("q2", "Subtraction", 1, 1),
			mcQuestion("q3", "Multiplication", 1, 2),
			mcQuestion("q4", "Division", 1, 3),
		},
	}
	// Correct, correct, incorrect, unanswered.
	answers := []exam.Answer{
		{QuestionIndex: 0, SelectedOption: intPtr(0)},
		{QuestionIndex: 1, SelectedOption: intPtr(1)},
		{QuestionIndex: 2, SelectedOption: intPtr(0)},
	}

	g := NewGrader(nil, DefaultConfig())
	r := g.Grade(context.Background(), test, answers, 0, exam.DetailSummary)

	if r.MarksScored != 2 {
		t.Errorf("MarksScored = %d, want 2", r.MarksScored)
	}
	if r.Score != 50 {
		t.Errorf("Score = %g, want 50", r.Score)
	}
	if r.CorrectCount != 2 {
		t.Errorf("CorrectCount = %d, want 2", r.CorrectCount)
	}
	// The unanswered question counts as incorrect; topics appear in
	// question order.
	if !slices.Equal(r.WeakAreas, []string{"Multiplication", "Division"}) {
		t.Errorf("WeakAreas = %v, want [Multiplication Division]", r.WeakAreas)
	}
}

func TestGradeNoGradableQuestions(t *testing.T) {
	test := exam.Test{
		Subject:   "English",
		Chapter:   "Essays",
		Questions: []exam.Question{shortQuestion("q1", "Writing", 10)},
	}

	g := NewGrader(nil, DefaultConfig())
	r := g.Grade(context.Background(), test, nil, 0, exam.DetailSummary)

	if r.Score != 100 {
		t.Errorf("Score = %g, want 100 for a test with nothing to grade", r.Score)
	}
	if r.MarksScored != 0 {
		t.Errorf("MarksScored = %d, want 0", r.MarksScored)
	}
}

func TestGradeWeakAreaDedup(t *testing.T) {
	test := exam.Test{
		Questions: []exam.Question{
			mcQuestion("q1", "Algebra", 1, 0),
			mcQuestion("q2", "Geometry", 1, 0),
			mcQuestion("q3", "Algebra", 1, 0),
			mcQuestion("q4", "Calculus", 1, 0),
		},
	}
	// Everything wrong: Algebra appears twice but is listed once, in
	// first-occurrence order.
	answers := []exam.Answer{
		{QuestionIndex: 0, SelectedOption: intPtr(1)},
		{QuestionIndex: 1, SelectedOption: intPtr(1)},
		{QuestionIndex: 2, SelectedOption: intPtr(1)},
		{QuestionIndex: 3, SelectedOption: intPtr(1)},
	}

	g := NewGrader(nil, DefaultConfig())
	r := g.Grade(context.Background(), test, answers, 0, exam.DetailSummary)

	want := []string{"Algebra", "Geometry", "Calculus"}
	if !slices.Equal(r.WeakAreas, want) {
		t.Errorf("WeakAreas = %v, want %v", r.WeakAreas, want)
	}
}

func TestGradeAlignsShortAnswerList(t *testing.T) {
	test := exam.Test{
		Questions: []exam.Question{
			mcQuestion("q1", "A", 1, 0),
			mcQuestion("q2", "B", 1, 0),
			mcQuestion("q3", "C", 1, 0),
		},
	}
	// Only the middle question answered; index 9 is out of range and
	// dropped. A submitter-set Correct flag is ignored.
	answers := []exam.Answer{
		{QuestionIndex: 1, SelectedOption: intPtr(0), Correct: boolPtr(false), Solution: "smuggled"},
		{QuestionIndex: 9, SelectedOption: intPtr(0)},
	}

	g := NewGrader(nil, DefaultConfig())
	r := g.Grade(context.Background(), test, answers, 0, exam.DetailSummary)

	if len(r.Answers) != 3 {
		t.Fatalf("len(Answers) = %d, want 3", len(r.Answers))
	}
	if r.Answers[0].Answered() {
		t.Error("answer 0 should be unanswered")
	}
	if r.Answers[1].Correct == nil || !*r.Answers[1].Correct {
		t.Error("answer 1 should be re-marked correct by grading")
	}
	if r.CorrectCount != 1 {
		t.Errorf("CorrectCount = %d, want 1", r.CorrectCount)
	}
	// Unanswered gradable questions count as wrong.
	if r.Score != 100.0/3 {
		t.Errorf("Score = %g, want %g", r.Score, 100.0/3)
	}
}

func boolPtr(b bool) *bool { return &b }

func TestGradeAttachesExplanations(t *testing.T) {
	test := exam.Test{
		Questions: []exam.Question{
			mcQuestion("q1", "A", 1, 0),
			mcQuestion("q2", "B", 1, 0),
			shortQuestion("q3", "C", 1),
		},
	}
	answers := []exam.Answer{
		{QuestionIndex: 0, SelectedOption: intPtr(0)}, // correct
		{QuestionIndex: 1, SelectedOption: intPtr(2)}, // wrong
		{QuestionIndex: 2, WrittenAnswer: "text"},
	}

	mock := llm.NewMockProvider(llm.MockResponse{
		Content: json.RawMessage(`"The answer is a because of the distributive law."`),
	})

	g := NewGrader(mock, DefaultConfig())
	r := g.Grade(context.Background(), test, answers, 0, exam.DetailFull)

	// Only the single wrong multiple-choice answer requests an explanation.
	if mock.CallCount() != 1 {
		t.Fatalf("CallCount = %d, want 1", mock.CallCount())
	}
	if want := "The answer is a because of the distributive law."; r.Answers[1].Solution != want {
		t.Errorf("Solution = %q, want %q", r.Answers[1].Solution, want)
	}
	if r.Answers[0].Solution != "" || r.Answers[2].Solution != "" {
		t.Error("correct and free-text answers must not carry explanations")
	}
}

func TestGradeExplanationFailureLeavesSolutionEmpty(t *testing.T) {
	test := exam.Test{
		Questions: []exam.Question{mcQuestion("q1", "A", 1, 0)},
	}
	answers := []exam.Answer{{QuestionIndex: 0, SelectedOption: intPtr(1)}}

	mock := llm.NewMockProvider(llm.MockResponse{Err: errors.New("boom")})

	g := NewGrader(mock, DefaultConfig())
	r := g.Grade(context.Background(), test, answers, 0, exam.DetailFull)

	// Grading never fails on explanation errors; the slot stays empty.
	if r.Answers[0].Solution != "" {
		t.Errorf("Solution = %q, want empty on provider failure", r.Answers[0].Solution)
	}
	if r.Score != 0 {
		t.Errorf("Score = %g, want 0", r.Score)
	}
}

func TestGradeSummaryDetailSkipsExplanations(t *testing.T) {
	test := exam.Test{
		Questions: []exam.Question{mcQuestion("q1", "A", 1, 0)},
	}
	answers := []exam.Answer{{QuestionIndex: 0, SelectedOption: intPtr(1)}}

	mock := llm.NewMockProvider()
	g := NewGrader(mock, DefaultConfig())
	g.Grade(context.Background(), test, answers, 0, exam.DetailSummary)

	if mock.CallCount() != 0 {
		t.Errorf("CallCount = %d, want 0 under summary detail", mock.CallCount())
	}
}

func TestDecodeText(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`"wrapped string"`, "wrapped string"},
		{`plain text`, "plain text"},
		{`"  padded  "`, "padded"},
	}
	for _, tt := range tests {
		if got := decodeText(json.RawMessage(tt.raw)); got != tt.want {
			t.Errorf("decodeText(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
