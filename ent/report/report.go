// Code generated by ent, DO NOT EDIT.

package report

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the report type in the database.
	Label = "report"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldReportID holds the string denoting the report_id field in the database.
	FieldReportID = "report_id"
	// FieldSubject holds the string denoting the subject field in the database.
	FieldSubject = "subject"
	// FieldTopic holds the string denoting the topic field in the database.
	FieldTopic = "topic"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldTotalMarks holds the string denoting the total_marks field in the database.
	FieldTotalMarks = "total_marks"
	// FieldMarksScored holds the string denoting the marks_scored field in the database.
	FieldMarksScored = "marks_scored"
	// FieldTotalQuestions holds the string denoting the total_questions field in the database.
	FieldTotalQuestions = "total_questions"
	// FieldCorrectAnswers holds the string denoting the correct_answers field in the database.
	FieldCorrectAnswers = "correct_answers"
	// FieldTimeTakenSecs holds the string denoting the time_taken_secs field in the database.
	FieldTimeTakenSecs = "time_taken_secs"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldWeakAreas holds the string denoting the weak_areas field in the database.
	FieldWeakAreas = "weak_areas"
	// FieldAnswers holds the string denoting the answers field in the database.
	FieldAnswers = "answers"
	// FieldQuestions holds the string denoting the questions field in the database.
	FieldQuestions = "questions"
	// FieldDetailLevel holds the string denoting the detail_level field in the database.
	FieldDetailLevel = "detail_level"
	// Table holds the table name of the report in the database.
	Table = "reports"
)

// Columns holds all SQL columns for report fields.
var Columns = []string{
	FieldID,
	FieldReportID,
	FieldSubject,
	FieldTopic,
	FieldScore,
	FieldTotalMarks,
	FieldMarksScored,
	FieldTotalQuestions,
	FieldCorrectAnswers,
	FieldTimeTakenSecs,
	FieldCreatedAt,
	FieldWeakAreas,
	FieldAnswers,
	FieldQuestions,
	FieldDetailLevel,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// SubjectValidator is a validator for the "subject" field. It is called by the builders before save.
	SubjectValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultDetailLevel holds the default value on creation for the "detail_level" field.
	DefaultDetailLevel string
)

// OrderOption defines the ordering options for the Report queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByReportID orders the results by the report_id field.
func ByReportID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReportID, opts...).ToFunc()
}

// BySubject orders the results by the subject field.
func BySubject(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSubject, opts...).ToFunc()
}

// ByTopic orders the results by the topic field.
func ByTopic(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTopic, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByTotalMarks orders the results by the total_marks field.
func ByTotalMarks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalMarks, opts...).ToFunc()
}

// ByMarksScored orders the results by the marks_scored field.
func ByMarksScored(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarksScored, opts...).ToFunc()
}

// ByTotalQuestions orders the results by the total_questions field.
func ByTotalQuestions(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalQuestions, opts...).ToFunc()
}

// ByCorrectAnswers orders the results by the correct_answers field.
func ByCorrectAnswers(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrectAnswers, opts...).ToFunc()
}

// ByTimeTakenSecs orders the results by the time_taken_secs field.
func ByTimeTakenSecs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeTakenSecs, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDetailLevel orders the results by the detail_level field.
func ByDetailLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetailLevel, opts...).ToFunc()
}
