package store

import (
	"context"
	"fmt"

	"github.com/prepdeck/prepdeck/ent"
	"github.com/prepdeck/prepdeck/ent/report"
	entschema "github.com/prepdeck/prepdeck/ent/schema"
	"github.com/prepdeck/prepdeck/internal/exam"
)

// reportRepo implements ReportRepo using the ent client.
type reportRepo struct {
	client *ent.Client
}

func (r *reportRepo) Append(ctx context.Context, rep *exam.Report) error {
	_, err := r.client.Report.Create().
		SetReportID(rep.ID).
		SetSubject(rep.Subject).
		SetTopic(rep.Topic).
		SetScore(rep.Score).
		SetTotalMarks(rep.TotalMarks).
		SetMarksScored(rep.MarksScored).
		SetTotalQuestions(rep.TotalQuestions).
		SetCorrectAnswers(rep.CorrectCount).
		SetTimeTakenSecs(rep.TimeTakenSecs).
		SetCreatedAt(rep.CreatedAt).
		SetWeakAreas(rep.WeakAreas).
		SetAnswers(answersToRows(rep.Answers)).
		SetQuestions(questionsToRows(rep.Questions)).
		SetDetailLevel(string(rep.DetailLevel)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save report: %w", err)
	}
	return nil
}

func (r *reportRepo) All(ctx context.Context) ([]exam.Report, error) {
	rows, err := r.client.Report.Query().
		Order(ent.Asc(report.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query reports: %w", err)
	}

	out := make([]exam.Report, 0, len(rows))
	for _, row := range rows {
		out = append(out, *rowToReport(row))
	}
	return out, nil
}

func (r *reportRepo) Get(ctx context.Context, reportID string) (*exam.Report, error) {
	row, err := r.client.Report.Query().
		Where(report.ReportID(reportID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("query report %s: %w", reportID, err)
	}
	return rowToReport(row), nil
}

func (r *reportRepo) Delete(ctx context.Context, reportID string) error {
	n, err := r.client.Report.Delete().
		Where(report.ReportID(reportID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete report %s: %w", reportID, err)
	}
	if n == 0 {
		return fmt.Errorf("report %s not found", reportID)
	}
	return nil
}

func rowToReport(row *ent.Report) *exam.Report {
	return &exam.Report{
		ID:             row.ReportID,
		Subject:        row.Subject,
		Topic:          row.Topic,
		Score:          row.Score,
		TotalMarks:     row.TotalMarks,
		MarksScored:    row.MarksScored,
		TotalQuestions: row.TotalQuestions,
		CorrectCount:   row.CorrectAnswers,
		TimeTakenSecs:  row.TimeTakenSecs,
		CreatedAt:      row.CreatedAt,
		WeakAreas:      row.WeakAreas,
		Answers:        rowsToAnswers(row.Answers),
		Questions:      rowsToQuestions(row.Questions),
		DetailLevel:    exam.DetailLevel(row.DetailLevel),
	}
}

func answersToRows(answers []exam.Answer) []entschema.ReportAnswer {
	out := make([]entschema.ReportAnswer, len(answers))
	for i, a := range answers {
		out[i] = entschema.ReportAnswer{
			QuestionIndex:  a.QuestionIndex,
			SelectedOption: a.SelectedOption,
			WrittenAnswer:  a.WrittenAnswer,
			Correct:        a.Correct,
			Solution:       a.Solution,
		}
	}
	return out
}

func rowsToAnswers(rows []entschema.ReportAnswer) []exam.Answer {
	out := make([]exam.Answer, len(rows))
	for i, row := range rows {
		out[i] = exam.Answer{
			QuestionIndex:  row.QuestionIndex,
			SelectedOption: row.SelectedOption,
			WrittenAnswer:  row.WrittenAnswer,
			Correct:        row.Correct,
			Solution:       row.Solution,
		}
	}
	return out
}

func questionsToRows(questions []exam.Question) []entschema.ReportQuestion {
	out := make([]entschema.ReportQuestion, len(questions))
	for i, q := range questions {
		out[i] = entschema.ReportQuestion{
			Text:          q.Text,
			Type:          string(q.Type),
			Marks:         q.Marks,
			Topic:         q.Topic,
			Choices:       q.Choices,
			CorrectOption: q.CorrectOption,
			ModelAnswer:   q.ModelAnswer,
		}
	}
	return out
}

func rowsToQuestions(rows []entschema.ReportQuestion) []exam.Question {
	out := make([]exam.Question, len(rows))
	for i, row := range rows {
		out[i] = exam.Question{
			Text:          row.Text,
			Type:          exam.QuestionType(row.Type),
			Marks:         row.Marks,
			Topic:         row.Topic,
			Choices:       row.Choices,
			CorrectOption: row.CorrectOption,
			ModelAnswer:   row.ModelAnswer,
		}
	}
	return out
}
