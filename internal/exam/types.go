package exam

import "time"

// QuestionType describes how a question is answered and graded.
type QuestionType string

const (
	// TypeMultipleChoice questions carry exactly 4 choices and are the
	// only type graded automatically.
	TypeMultipleChoice QuestionType = "multiple_choice"

	// TypeShortAnswer questions take a free-text response checked against
	// a model answer by the learner themselves.
	TypeShortAnswer QuestionType = "short_answer"

	// TypeLongAnswer questions take an extended free-text response.
	TypeLongAnswer QuestionType = "long_answer"
)

// MultipleChoiceCount is the number of choices every multiple-choice
// question carries.
const MultipleChoiceCount = 4

// Question is a single test question as produced by the generation
// service. Immutable once generated.
type Question struct {
	// Text is the question prompt displayed to the learner.
	Text string

	// Type indicates how the learner answers this question.
	Type QuestionType

	// Marks is the positive point value of the question.
	Marks int

	// Topic is the topic label used for weak-area extraction.
	Topic string

	// Choices is populated only for multiple-choice questions.
	// Contains exactly 4 non-empty options.
	Choices []string

	// CorrectOption is the zero-based index into Choices of the correct
	// answer. Meaningful only for multiple-choice questions.
	CorrectOption int

	// ModelAnswer is the reference answer for short/long-answer questions.
	ModelAnswer string
}

// Gradable reports whether the question contributes to automatic scoring.
func (q Question) Gradable() bool {
	return q.Type == TypeMultipleChoice
}

// Test is an ordered set of questions on one subject and chapter.
type Test struct {
	Subject   string
	Chapter   string
	Questions []Question
}

// TotalMarks returns the sum of marks over all questions, gradable or not.
func (t Test) TotalMarks() int {
	total := 0
	for _, q := range t.Questions {
		total += q.Marks
	}
	return total
}

// Answer is the learner's response to one question, positionally aligned
// with the test's question list. Correct and Solution are populated by the
// grading engine only, never by the submitter.
type Answer struct {
	// QuestionIndex is the position of the answered question in the test.
	QuestionIndex int

	// SelectedOption is the chosen choice index for multiple-choice
	// questions. Nil when the question was left unanswered.
	SelectedOption *int

	// WrittenAnswer is the free-text response for short/long-answer
	// questions. Empty when unanswered.
	WrittenAnswer string

	// Correct is set by grading for multiple-choice questions and stays
	// nil for free-text questions, which are never auto-marked.
	Correct *bool

	// Solution is an optional generated explanation attached to incorrect
	// multiple-choice answers when full feedback detail is active.
	Solution string
}

// Answered reports whether the learner provided any response.
func (a Answer) Answered() bool {
	return a.SelectedOption != nil || a.WrittenAnswer != ""
}

// DetailLevel controls how much feedback grading produces.
type DetailLevel string

const (
	// DetailFull requests a generated explanation for every incorrect
	// multiple-choice answer.
	DetailFull DetailLevel = "full"

	// DetailSummary skips explanation requests entirely.
	DetailSummary DetailLevel = "summary"
)

// Report is the durable record of one graded test submission.
// Immutable after creation; removable only as a whole.
type Report struct {
	ID             string
	Subject        string
	Topic          string
	Score          float64 // percentage over gradable marks, 0-100
	TotalMarks     int     // sum of marks over all questions
	MarksScored    int     // marks earned on correct answers
	TotalQuestions int
	CorrectCount   int
	TimeTakenSecs  int
	CreatedAt      time.Time
	WeakAreas      []string
	Answers        []Answer
	Questions      []Question
	DetailLevel    DetailLevel
}
