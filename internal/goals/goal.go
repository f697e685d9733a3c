package goals

import (
	"strings"
	"time"
)

// GoalType identifies how progress toward a goal is measured.
type GoalType string

const (
	// TypeCompletion counts matching reports inside the goal's window.
	TypeCompletion GoalType = "completion"

	// TypeImprovement measures the average-score delta between reports
	// inside the window and the baseline before the goal was created.
	TypeImprovement GoalType = "improvement"
)

// Timeframe is the calendar period a goal is measured against.
type Timeframe string

const (
	TimeframeWeek  Timeframe = "week"
	TimeframeMonth Timeframe = "month"
)

// Status is the goal lifecycle state. Monotonic: once completed a goal
// never returns to active, whether the target was reached or the window
// simply ran out.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
)

// SubjectAll is the wildcard subject filter. An empty subject behaves
// the same way.
const SubjectAll = "all"

// Goal is a user-defined study target. CurrentValue and Status are
// derived by the tracker; every other field is fixed at creation.
type Goal struct {
	ID           string
	Description  string
	Type         GoalType
	Subject      string
	TargetValue  float64
	CurrentValue float64
	Timeframe    Timeframe
	StartDate    time.Time
	Status       Status
}

// MatchesSubject reports whether a report subject satisfies the goal's
// subject filter: wildcard matches everything, otherwise the goal subject
// must appear in the report subject, case-insensitively.
func (g Goal) MatchesSubject(reportSubject string) bool {
	s := strings.TrimSpace(g.Subject)
	if s == "" || strings.EqualFold(s, SubjectAll) {
		return true
	}
	return strings.Contains(strings.ToLower(reportSubject), strings.ToLower(s))
}
