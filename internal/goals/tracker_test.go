package goals

import (
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/exam"
)

func report(subject string, score float64, at time.Time) exam.Report {
	return exam.Report{Subject: subject, Score: score, CreatedAt: at}
}

func TestEvaluateCompletionCountsWindowReports(t *testing.T) {
	// Goal created Wednesday June 11th; its week runs Sun 8th to Sun 15th.
	g := Goal{
		Type:        TypeCompletion,
		Subject:     "math",
		TargetValue: 3,
		Timeframe:   TimeframeWeek,
		StartDate:   date(2025, 6, 11),
		Status:      StatusActive,
	}

	history := []exam.Report{
		report("Math", 80, date(2025, 6, 9)),  // in window, before goal creation
		report("Math", 90, date(2025, 6, 12)), // in window
		report("Science", 90, date(2025, 6, 12)),
		report("Math", 70, date(2025, 6, 16)), // after window
	}

	got := Evaluate(g, history, date(2025, 6, 13))
	if got.CurrentValue != 2 {
		t.Errorf("CurrentValue = %g, want 2", got.CurrentValue)
	}
	if got.Status != StatusActive {
		t.Errorf("Status = %s, want active", got.Status)
	}
}

func TestEvaluateCompletionReachesTarget(t *testing.T) {
	g := Goal{
		Type:        TypeCompletion,
		TargetValue: 2,
		Timeframe:   TimeframeWeek,
		StartDate:   date(2025, 6, 11),
		Status:      StatusActive,
	}

	history := []exam.Report{
		report("Math", 80, date(2025, 6, 9)),
		report("Science", 90, date(2025, 6, 12)),
	}

	got := Evaluate(g, history, date(2025, 6, 13))
	if got.CurrentValue != 2 {
		t.Errorf("CurrentValue = %g, want 2", got.CurrentValue)
	}
	if got.Status != StatusCompleted {
		t.Errorf("Status = %s, want completed", got.Status)
	}
}

func TestEvaluateCompletionWeekScenario(t *testing.T) {
	// Goal created Wednesday June 11th with target 3; three Math reports
	// land Tuesday through Thursday of the same calendar week.
	g := Goal{
		Type:        TypeCompletion,
		Subject:     "Math",
		TargetValue: 3,
		Timeframe:   TimeframeWeek,
		StartDate:   date(2025, 6, 11),
		Status:      StatusActive,
	}
	history := []exam.Report{
		report("Math", 80, date(2025, 6, 10)), // Tuesday
		report("Math", 85, date(2025, 6, 11)), // Wednesday
		report("Math", 90, date(2025, 6, 12)), // Thursday
	}

	got := Evaluate(g, history, date(2025, 6, 12))
	if got.CurrentValue != 3 {
		t.Errorf("CurrentValue = %g, want 3", got.CurrentValue)
	}
	if got.Status != StatusCompleted {
		t.Errorf("Status = %s, want completed", got.Status)
	}

	// A fourth report the following week never moves the fixed window.
	history = append(history, report("Math", 95, date(2025, 6, 17)))
	again := Evaluate(got, history, date(2025, 6, 17))
	if again.CurrentValue != 3 {
		t.Errorf("CurrentValue after next-week report = %g, want 3", again.CurrentValue)
	}
	if again.Status != StatusCompleted {
		t.Errorf("Status = %s, want completed", again.Status)
	}
}

func TestEvaluateExpiredWindowCompletes(t *testing.T) {
	g := Goal{
		Type:        TypeCompletion,
		TargetValue: 5,
		Timeframe:   TimeframeWeek,
		StartDate:   date(2025, 6, 11),
		Status:      StatusActive,
	}

	// One report, target 5, but the window closed on the 15th.
	history := []exam.Report{report("Math", 80, date(2025, 6, 12))}

	got := Evaluate(g, history, date(2025, 6, 15))
	if got.Status != StatusCompleted {
		t.Errorf("Status = %s, want completed after window expiry", got.Status)
	}
	if got.CurrentValue != 1 {
		t.Errorf("CurrentValue = %g, want 1", got.CurrentValue)
	}
}

func TestEvaluateStatusNeverReverts(t *testing.T) {
	g := Goal{
		Type:        TypeCompletion,
		TargetValue: 3,
		Timeframe:   TimeframeWeek,
		StartDate:   date(2025, 6, 11),
		Status:      StatusCompleted,
	}

	// History shrank below the target; status must stay completed.
	got := Evaluate(g, nil, date(2025, 6, 12))
	if got.Status != StatusCompleted {
		t.Errorf("Status = %s, want completed", got.Status)
	}
	if got.CurrentValue != 0 {
		t.Errorf("CurrentValue = %g, want 0", got.CurrentValue)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	g := Goal{
		Type:        TypeCompletion,
		TargetValue: 3,
		Timeframe:   TimeframeWeek,
		StartDate:   date(2025, 6, 11),
		Status:      StatusActive,
	}
	history := []exam.Report{
		report("Math", 80, date(2025, 6, 12)),
		report("Math", 60, date(2025, 6, 13)),
	}
	now := date(2025, 6, 13)

	first := Evaluate(g, history, now)
	second := Evaluate(first, history, now)
	if first != second {
		t.Errorf("repeated evaluation changed the goal: %+v vs %+v", first, second)
	}
}

func TestEvaluateImprovement(t *testing.T) {
	base := Goal{
		Type:        TypeImprovement,
		Subject:     "math",
		TargetValue: 10,
		Timeframe:   TimeframeWeek,
		StartDate:   date(2025, 6, 11),
		Status:      StatusActive,
	}

	tests := []struct {
		name    string
		history []exam.Report
		want    float64
	}{
		{
			name: "window average above baseline",
			history: []exam.Report{
				report("Math", 60, date(2025, 6, 1)), // baseline
				report("Math", 70, date(2025, 6, 5)), // baseline
				report("Math", 80, date(2025, 6, 12)),
				report("Math", 90, date(2025, 6, 13)),
			},
			want: 20, // window avg 85 - baseline avg 65
		},
		{
			name: "regression clamps to zero",
			history: []exam.Report{
				report("Math", 90, date(2025, 6, 5)),
				report("Math", 50, date(2025, 6, 12)),
			},
			want: 0,
		},
		{
			name: "empty window stays at zero",
			history: []exam.Report{
				report("Math", 90, date(2025, 6, 5)),
			},
			want: 0,
		},
		{
			name: "no baseline compares against zero",
			history: []exam.Report{
				report("Math", 75, date(2025, 6, 12)),
			},
			want: 75,
		},
		{
			name: "other subjects ignored",
			history: []exam.Report{
				report("Science", 10, date(2025, 6, 5)),
				report("Math", 50, date(2025, 6, 5)),
				report("Math", 80, date(2025, 6, 12)),
				report("Science", 100, date(2025, 6, 13)),
			},
			want: 30,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(base, tt.history, date(2025, 6, 13))
			if got.CurrentValue != tt.want {
				t.Errorf("CurrentValue = %g, want %g", got.CurrentValue, tt.want)
			}
		})
	}
}

func TestEvaluateImprovementBaselineExcludesWindowPreGoalReports(t *testing.T) {
	// A report inside the calendar window but before the goal's creation
	// belongs to the baseline, not the window sample.
	g := Goal{
		Type:        TypeImprovement,
		TargetValue: 10,
		Timeframe:   TimeframeWeek,
		StartDate:   time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC),
		Status:      StatusActive,
	}

	history := []exam.Report{
		report("Math", 50, date(2025, 6, 9)),                               // in window, pre-goal: baseline
		report("Math", 80, time.Date(2025, 6, 12, 9, 0, 0, 0, time.UTC)), // window
	}

	got := Evaluate(g, history, date(2025, 6, 13))
	if got.CurrentValue != 30 {
		t.Errorf("CurrentValue = %g, want 30", got.CurrentValue)
	}
}

func TestEvaluateDoesNotMutateInput(t *testing.T) {
	g := Goal{
		Type:        TypeCompletion,
		TargetValue: 1,
		Timeframe:   TimeframeWeek,
		StartDate:   date(2025, 6, 11),
		Status:      StatusActive,
	}
	history := []exam.Report{report("Math", 80, date(2025, 6, 12))}

	_ = Evaluate(g, history, date(2025, 6, 13))
	if g.CurrentValue != 0 || g.Status != StatusActive {
		t.Errorf("input goal mutated: %+v", g)
	}
}
