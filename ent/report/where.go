// Code generated by ent, DO NOT EDIT.

package report

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/prepdeck/prepdeck/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldID, id))
}

// ReportID applies equality check predicate on the "report_id" field. It's identical to ReportIDEQ.
func ReportID(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReportID, v))
}

// Subject applies equality check predicate on the "subject" field. It's identical to SubjectEQ.
func Subject(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSubject, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTopic, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldScore, v))
}

// TotalMarks applies equality check predicate on the "total_marks" field. It's identical to TotalMarksEQ.
func TotalMarks(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTotalMarks, v))
}

// MarksScored applies equality check predicate on the "marks_scored" field. It's identical to MarksScoredEQ.
func MarksScored(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldMarksScored, v))
}

// TotalQuestions applies equality check predicate on the "total_questions" field. It's identical to TotalQuestionsEQ.
func TotalQuestions(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTotalQuestions, v))
}

// CorrectAnswers applies equality check predicate on the "correct_answers" field. It's identical to CorrectAnswersEQ.
func CorrectAnswers(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCorrectAnswers, v))
}

// TimeTakenSecs applies equality check predicate on the "time_taken_secs" field. It's identical to TimeTakenSecsEQ.
func TimeTakenSecs(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTimeTakenSecs, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// DetailLevel applies equality check predicate on the "detail_level" field. It's identical to DetailLevelEQ.
func DetailLevel(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDetailLevel, v))
}

// ReportIDEQ applies the EQ predicate on the "report_id" field.
func ReportIDEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldReportID, v))
}

// ReportIDNEQ applies the NEQ predicate on the "report_id" field.
func ReportIDNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldReportID, v))
}

// ReportIDIn applies the In predicate on the "report_id" field.
func ReportIDIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldReportID, vs...))
}

// ReportIDNotIn applies the NotIn predicate on the "report_id" field.
func ReportIDNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldReportID, vs...))
}

// ReportIDGT applies the GT predicate on the "report_id" field.
func ReportIDGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldReportID, v))
}

// ReportIDGTE applies the GTE predicate on the "report_id" field.
func ReportIDGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldReportID, v))
}

// ReportIDLT applies the LT predicate on the "report_id" field.
func ReportIDLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldReportID, v))
}

// ReportIDLTE applies the LTE predicate on the "report_id" field.
func ReportIDLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldReportID, v))
}

// ReportIDContains applies the Contains predicate on the "report_id" field.
func ReportIDContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldReportID, v))
}

// ReportIDHasPrefix applies the HasPrefix predicate on the "report_id" field.
func ReportIDHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldReportID, v))
}

// ReportIDHasSuffix applies the HasSuffix predicate on the "report_id" field.
func ReportIDHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldReportID, v))
}

// ReportIDEqualFold applies the EqualFold predicate on the "report_id" field.
func ReportIDEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldReportID, v))
}

// ReportIDContainsFold applies the ContainsFold predicate on the "report_id" field.
func ReportIDContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldReportID, v))
}

// SubjectEQ applies the EQ predicate on the "subject" field.
func SubjectEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldSubject, v))
}

// SubjectNEQ applies the NEQ predicate on the "subject" field.
func SubjectNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldSubject, v))
}

// SubjectIn applies the In predicate on the "subject" field.
func SubjectIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldSubject, vs...))
}

// SubjectNotIn applies the NotIn predicate on the "subject" field.
func SubjectNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldSubject, vs...))
}

// SubjectGT applies the GT predicate on the "subject" field.
func SubjectGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldSubject, v))
}

// SubjectGTE applies the GTE predicate on the "subject" field.
func SubjectGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldSubject, v))
}

// SubjectLT applies the LT predicate on the "subject" field.
func SubjectLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldSubject, v))
}

// SubjectLTE applies the LTE predicate on the "subject" field.
func SubjectLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldSubject, v))
}

// SubjectContains applies the Contains predicate on the "subject" field.
func SubjectContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldSubject, v))
}

// SubjectHasPrefix applies the HasPrefix predicate on the "subject" field.
func SubjectHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldSubject, v))
}

// SubjectHasSuffix applies the HasSuffix predicate on the "subject" field.
func SubjectHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldSubject, v))
}

// SubjectEqualFold applies the EqualFold predicate on the "subject" field.
func SubjectEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldSubject, v))
}

// SubjectContainsFold applies the ContainsFold predicate on the "subject" field.
func SubjectContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldSubject, v))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldTopic, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldScore, v))
}

// TotalMarksEQ applies the EQ predicate on the "total_marks" field.
func TotalMarksEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTotalMarks, v))
}

// TotalMarksNEQ applies the NEQ predicate on the "total_marks" field.
func TotalMarksNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldTotalMarks, v))
}

// TotalMarksIn applies the In predicate on the "total_marks" field.
func TotalMarksIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldTotalMarks, vs...))
}

// TotalMarksNotIn applies the NotIn predicate on the "total_marks" field.
func TotalMarksNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldTotalMarks, vs...))
}

// TotalMarksGT applies the GT predicate on the "total_marks" field.
func TotalMarksGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldTotalMarks, v))
}

// TotalMarksGTE applies the GTE predicate on the "total_marks" field.
func TotalMarksGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldTotalMarks, v))
}

// TotalMarksLT applies the LT predicate on the "total_marks" field.
func TotalMarksLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldTotalMarks, v))
}

// TotalMarksLTE applies the LTE predicate on the "total_marks" field.
func TotalMarksLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldTotalMarks, v))
}

// MarksScoredEQ applies the EQ predicate on the "marks_scored" field.
func MarksScoredEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldMarksScored, v))
}

// MarksScoredNEQ applies the NEQ predicate on the "marks_scored" field.
func MarksScoredNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldMarksScored, v))
}

// MarksScoredIn applies the In predicate on the "marks_scored" field.
func MarksScoredIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldMarksScored, vs...))
}

// MarksScoredNotIn applies the NotIn predicate on the "marks_scored" field.
func MarksScoredNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldMarksScored, vs...))
}

// MarksScoredGT applies the GT predicate on the "marks_scored" field.
func MarksScoredGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldMarksScored, v))
}

// MarksScoredGTE applies the GTE predicate on the "marks_scored" field.
func MarksScoredGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldMarksScored, v))
}

// MarksScoredLT applies the LT predicate on the "marks_scored" field.
func MarksScoredLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldMarksScored, v))
}

// MarksScoredLTE applies the LTE predicate on the "marks_scored" field.
func MarksScoredLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldMarksScored, v))
}

// TotalQuestionsEQ applies the EQ predicate on the "total_questions" field.
func TotalQuestionsEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTotalQuestions, v))
}

// TotalQuestionsNEQ applies the NEQ predicate on the "total_questions" field.
func TotalQuestionsNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldTotalQuestions, v))
}

// TotalQuestionsIn applies the In predicate on the "total_questions" field.
func TotalQuestionsIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsNotIn applies the NotIn predicate on the "total_questions" field.
func TotalQuestionsNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldTotalQuestions, vs...))
}

// TotalQuestionsGT applies the GT predicate on the "total_questions" field.
func TotalQuestionsGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldTotalQuestions, v))
}

// TotalQuestionsGTE applies the GTE predicate on the "total_questions" field.
func TotalQuestionsGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldTotalQuestions, v))
}

// TotalQuestionsLT applies the LT predicate on the "total_questions" field.
func TotalQuestionsLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldTotalQuestions, v))
}

// TotalQuestionsLTE applies the LTE predicate on the "total_questions" field.
func TotalQuestionsLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldTotalQuestions, v))
}

// CorrectAnswersEQ applies the EQ predicate on the "correct_answers" field.
func CorrectAnswersEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersNEQ applies the NEQ predicate on the "correct_answers" field.
func CorrectAnswersNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCorrectAnswers, v))
}

// CorrectAnswersIn applies the In predicate on the "correct_answers" field.
func CorrectAnswersIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersNotIn applies the NotIn predicate on the "correct_answers" field.
func CorrectAnswersNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCorrectAnswers, vs...))
}

// CorrectAnswersGT applies the GT predicate on the "correct_answers" field.
func CorrectAnswersGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCorrectAnswers, v))
}

// CorrectAnswersGTE applies the GTE predicate on the "correct_answers" field.
func CorrectAnswersGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCorrectAnswers, v))
}

// CorrectAnswersLT applies the LT predicate on the "correct_answers" field.
func CorrectAnswersLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCorrectAnswers, v))
}

// CorrectAnswersLTE applies the LTE predicate on the "correct_answers" field.
func CorrectAnswersLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCorrectAnswers, v))
}

// TimeTakenSecsEQ applies the EQ predicate on the "time_taken_secs" field.
func TimeTakenSecsEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldTimeTakenSecs, v))
}

// TimeTakenSecsNEQ applies the NEQ predicate on the "time_taken_secs" field.
func TimeTakenSecsNEQ(v int) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldTimeTakenSecs, v))
}

// TimeTakenSecsIn applies the In predicate on the "time_taken_secs" field.
func TimeTakenSecsIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldTimeTakenSecs, vs...))
}

// TimeTakenSecsNotIn applies the NotIn predicate on the "time_taken_secs" field.
func TimeTakenSecsNotIn(vs ...int) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldTimeTakenSecs, vs...))
}

// TimeTakenSecsGT applies the GT predicate on the "time_taken_secs" field.
func TimeTakenSecsGT(v int) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldTimeTakenSecs, v))
}

// TimeTakenSecsGTE applies the GTE predicate on the "time_taken_secs" field.
func TimeTakenSecsGTE(v int) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldTimeTakenSecs, v))
}

// TimeTakenSecsLT applies the LT predicate on the "time_taken_secs" field.
func TimeTakenSecsLT(v int) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldTimeTakenSecs, v))
}

// TimeTakenSecsLTE applies the LTE predicate on the "time_taken_secs" field.
func TimeTakenSecsLTE(v int) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldTimeTakenSecs, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldCreatedAt, v))
}

// WeakAreasIsNil applies the IsNil predicate on the "weak_areas" field.
func WeakAreasIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldWeakAreas))
}

// WeakAreasNotNil applies the NotNil predicate on the "weak_areas" field.
func WeakAreasNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldWeakAreas))
}

// AnswersIsNil applies the IsNil predicate on the "answers" field.
func AnswersIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldAnswers))
}

// AnswersNotNil applies the NotNil predicate on the "answers" field.
func AnswersNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldAnswers))
}

// QuestionsIsNil applies the IsNil predicate on the "questions" field.
func QuestionsIsNil() predicate.Report {
	return predicate.Report(sql.FieldIsNull(FieldQuestions))
}

// QuestionsNotNil applies the NotNil predicate on the "questions" field.
func QuestionsNotNil() predicate.Report {
	return predicate.Report(sql.FieldNotNull(FieldQuestions))
}

// DetailLevelEQ applies the EQ predicate on the "detail_level" field.
func DetailLevelEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldEQ(FieldDetailLevel, v))
}

// DetailLevelNEQ applies the NEQ predicate on the "detail_level" field.
func DetailLevelNEQ(v string) predicate.Report {
	return predicate.Report(sql.FieldNEQ(FieldDetailLevel, v))
}

// DetailLevelIn applies the In predicate on the "detail_level" field.
func DetailLevelIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldIn(FieldDetailLevel, vs...))
}

// DetailLevelNotIn applies the NotIn predicate on the "detail_level" field.
func DetailLevelNotIn(vs ...string) predicate.Report {
	return predicate.Report(sql.FieldNotIn(FieldDetailLevel, vs...))
}

// DetailLevelGT applies the GT predicate on the "detail_level" field.
func DetailLevelGT(v string) predicate.Report {
	return predicate.Report(sql.FieldGT(FieldDetailLevel, v))
}

// DetailLevelGTE applies the GTE predicate on the "detail_level" field.
func DetailLevelGTE(v string) predicate.Report {
	return predicate.Report(sql.FieldGTE(FieldDetailLevel, v))
}

// DetailLevelLT applies the LT predicate on the "detail_level" field.
func DetailLevelLT(v string) predicate.Report {
	return predicate.Report(sql.FieldLT(FieldDetailLevel, v))
}

// DetailLevelLTE applies the LTE predicate on the "detail_level" field.
func DetailLevelLTE(v string) predicate.Report {
	return predicate.Report(sql.FieldLTE(FieldDetailLevel, v))
}

// DetailLevelContains applies the Contains predicate on the "detail_level" field.
func DetailLevelContains(v string) predicate.Report {
	return predicate.Report(sql.FieldContains(FieldDetailLevel, v))
}

// DetailLevelHasPrefix applies the HasPrefix predicate on the "detail_level" field.
func DetailLevelHasPrefix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasPrefix(FieldDetailLevel, v))
}

// DetailLevelHasSuffix applies the HasSuffix predicate on the "detail_level" field.
func DetailLevelHasSuffix(v string) predicate.Report {
	return predicate.Report(sql.FieldHasSuffix(FieldDetailLevel, v))
}

// DetailLevelEqualFold applies the EqualFold predicate on the "detail_level" field.
func DetailLevelEqualFold(v string) predicate.Report {
	return predicate.Report(sql.FieldEqualFold(FieldDetailLevel, v))
}

// DetailLevelContainsFold applies the ContainsFold predicate on the "detail_level" field.
func DetailLevelContainsFold(v string) predicate.Report {
	return predicate.Report(sql.FieldContainsFold(FieldDetailLevel, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Report) predicate.Report {
	return predicate.Report(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Report) predicate.Report {
	return predicate.Report(sql.NotPredicates(p))
}
