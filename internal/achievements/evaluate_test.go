package achievements

import (
	"slices"
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/exam"
)

func reportOn(subject string, score float64, day time.Time) exam.Report {
	return exam.Report{Subject: subject, Score: score, CreatedAt: day}
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 10, 0, 0, 0, time.UTC)
}

func TestEvaluateEmptyHistory(t *testing.T) {
	if got := Evaluate(nil); len(got) != 0 {
		t.Errorf("Evaluate(nil) = %v, want empty", got)
	}
}

func TestEvaluateFirstTest(t *testing.T) {
	got := Evaluate([]exam.Report{reportOn("Math", 40, day(2025, 1, 1))})
	if !slices.Contains(got, BadgeFirstTest) {
		t.Errorf("expected %s in %v", BadgeFirstTest, got)
	}
	if slices.Contains(got, BadgePerfectScore) {
		t.Errorf("unexpected %s in %v", BadgePerfectScore, got)
	}
}

func TestEvaluatePerfectScore(t *testing.T) {
	history := []exam.Report{
		reportOn("Math", 99.9, day(2025, 1, 1)),
		reportOn("Math", 100, day(2025, 1, 2)),
	}
	if got := Evaluate(history); !slices.Contains(got, BadgePerfectScore) {
		t.Errorf("expected %s in %v", BadgePerfectScore, got)
	}
}

func TestEvaluateCatalogOrder(t *testing.T) {
	// A history satisfying everything returns ids in catalog order.
	var history []exam.Report
	for i := range 5 {
		history = append(history, reportOn("Math", 100, day(2025, 1, 1+i)))
	}
	history = append(history,
		reportOn("Science", 80, day(2025, 1, 1)),
		reportOn("Science", 80, day(2025, 1, 2)),
		reportOn("Science", 80, day(2025, 1, 3)),
	)

	want := []string{BadgeFirstTest, BadgePerfectScore, BadgeStreak, BadgeMathWhiz, BadgeSciencePro}
	got := Evaluate(history)
	if !slices.Equal(got, want) {
		t.Errorf("Evaluate = %v, want %v", got, want)
	}
}

func TestSubjectMastery(t *testing.T) {
	tests := []struct {
		name     string
		subjects []string
		want     bool
	}{
		{"three math tests", []string{"Math", "math", "MATHEMATICS"}, true},
		{"two math tests", []string{"Math", "Math"}, false},
		{"substring match", []string{"Applied Math", "Math I", "Math II"}, true},
		{"other subject", []string{"Science", "Science", "Science"}, false},
	}

	rule := subjectMastery("math")
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var history []exam.Report
			for i, s := range tt.subjects {
				history = append(history, reportOn(s, 50, day(2025, 1, 1+i)))
			}
			if got := rule(history); got != tt.want {
				t.Errorf("subjectMastery = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestLongestDayStreak(t *testing.T) {
	tests := []struct {
		name string
		days []time.Time
		want int
	}{
		{"empty", nil, 0},
		{"single day", []time.Time{day(2025, 1, 1)}, 1},
		{
			"gap resets the run",
			[]time.Time{
				day(2025, 1, 1), day(2025, 1, 2), day(2025, 1, 3),
				day(2025, 1, 5), day(2025, 1, 6), day(2025, 1, 7), day(2025, 1, 8),
			},
			4,
		},
		{
			"filling the gap joins the runs",
			[]time.Time{
				day(2025, 1, 1), day(2025, 1, 2), day(2025, 1, 3), day(2025, 1, 4),
				day(2025, 1, 5), day(2025, 1, 6), day(2025, 1, 7), day(2025, 1, 8),
			},
			8,
		},
		{
			"same day counts once",
			[]time.Time{
				day(2025, 1, 1),
				time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
				day(2025, 1, 2),
			},
			2,
		},
		{
			"month boundary",
			[]time.Time{day(2025, 1, 31), day(2025, 2, 1)},
			2,
		},
		{
			"unsorted input",
			[]time.Time{day(2025, 1, 3), day(2025, 1, 1), day(2025, 1, 2)},
			3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var history []exam.Report
			for _, d := range tt.days {
				history = append(history, reportOn("Math", 50, d))
			}
			if got := longestDayStreak(history); got != tt.want {
				t.Errorf("longestDayStreak = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestStreakBadgeThreshold(t *testing.T) {
	// Four consecutive days: no badge. A fifth earns it.
	var history []exam.Report
	for i := range 4 {
		history = append(history, reportOn("History", 50, day(2025, 1, 1+i)))
	}
	if got := Evaluate(history); slices.Contains(got, BadgeStreak) {
		t.Errorf("unexpected streak badge after 4 days: %v", got)
	}

	history = append(history, reportOn("History", 50, day(2025, 1, 5)))
	if got := Evaluate(history); !slices.Contains(got, BadgeStreak) {
		t.Errorf("expected streak badge after 5 days: %v", got)
	}
}
