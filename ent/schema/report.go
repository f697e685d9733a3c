package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Report records one graded test submission. Rows are immutable after
// creation; the only mutation is deletion by the user.
type Report struct {
	ent.Schema
}

// ReportAnswer is the serialized form of a submitted answer.
type ReportAnswer struct {
	QuestionIndex  int    `json:"question_index"`
	SelectedOption *int   `json:"selected_option,omitempty"`
	WrittenAnswer  string `json:"written_answer,omitempty"`
	Correct        *bool  `json:"correct,omitempty"`
	Solution       string `json:"solution,omitempty"`
}

// ReportQuestion is the serialized form of a question, retained on the
// report so past tests can be reviewed after the source test is gone.
type ReportQuestion struct {
	Text          string   `json:"text"`
	Type          string   `json:"type"`
	Marks         int      `json:"marks"`
	Topic         string   `json:"topic"`
	Choices       []string `json:"choices,omitempty"`
	CorrectOption int      `json:"correct_option"`
	ModelAnswer   string   `json:"model_answer,omitempty"`
}

func (Report) Fields() []ent.Field {
	return []ent.Field{
		field.String("report_id").
			Unique().
			Immutable().
			Comment("UUID assigned at grading time"),
		field.String("subject").
			NotEmpty().
			Immutable(),
		field.String("topic").
			Immutable().
			Comment("Chapter or topic label"),
		field.Float("score").
			Immutable().
			Comment("Percentage score over gradable marks, 0-100"),
		field.Int("total_marks").
			Immutable().
			Comment("Sum of marks over all questions"),
		field.Int("marks_scored").
			Immutable().
			Comment("Marks earned on correctly answered questions"),
		field.Int("total_questions").
			Immutable(),
		field.Int("correct_answers").
			Immutable(),
		field.Int("time_taken_secs").
			Immutable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("UTC wall-clock time of grading"),
		field.JSON("weak_areas", []string{}).
			Optional().
			Comment("Distinct topics of incorrectly answered questions, first-occurrence order"),
		field.JSON("answers", []ReportAnswer{}).
			Optional(),
		field.JSON("questions", []ReportQuestion{}).
			Optional(),
		field.String("detail_level").
			Default("summary").
			Immutable().
			Comment("Feedback detail in effect at grading time: full or summary"),
	}
}

func (Report) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("report_id"),
		index.Fields("subject"),
		index.Fields("created_at"),
	}
}
