package achievements

import "github.com/prepdeck/prepdeck/internal/exam"

// Badge ids. Stable: they are persisted on the profile.
const (
	BadgeFirstTest    = "first-test"
	BadgePerfectScore = "perfect-score"
	BadgeStreak       = "streak"
	BadgeMathWhiz     = "math-whiz"
	BadgeSciencePro   = "science-pro"
)

// StreakThreshold is the consecutive-day run that earns the streak badge.
const StreakThreshold = 5

// MasteryReportCount is how many reports in a subject earn its mastery badge.
const MasteryReportCount = 3

// Rule is a pure predicate over the full report history.
type Rule func(history []exam.Report) bool

// Badge is one entry in the static achievement catalog.
type Badge struct {
	ID          string
	Name        string
	Icon        string
	Description string
	Rule        Rule
}

// Catalog returns the full badge catalog in display order. The catalog is
// static; the per-user earned set lives on the profile.
func Catalog() []Badge {
	return []Badge{
		{
			ID:          BadgeFirstTest,
			Name:        "First Steps",
			Icon:        "🎯",
			Description: "Complete your first test",
			Rule: func(history []exam.Report) bool {
				return len(history) > 0
			},
		},
		{
			ID:          BadgePerfectScore,
			Name:        "Perfectionist",
			Icon:        "💯",
			Description: "Score 100% on any test",
			Rule: func(history []exam.Report) bool {
				for _, r := range history {
					if r.Score == 100 {
						return true
					}
				}
				return false
			},
		},
		{
			ID:          BadgeStreak,
			Name:        "On Fire",
			Icon:        "🔥",
			Description: "Take tests on 5 days in a row",
			Rule: func(history []exam.Report) bool {
				return longestDayStreak(history) >= StreakThreshold
			},
		},
		{
			ID:          BadgeMathWhiz,
			Name:        "Math Whiz",
			Icon:        "🧮",
			Description: "Complete 3 math tests",
			Rule:        subjectMastery("math"),
		},
		{
			ID:          BadgeSciencePro,
			Name:        "Science Pro",
			Icon:        "🔬",
			Description: "Complete 3 science tests",
			Rule:        subjectMastery("science"),
		},
	}
}
