package goals

import (
	"sort"
	"time"

	"github.com/prepdeck/prepdeck/internal/exam"
)

// Evaluate recomputes a goal's current value and status against the full
// report history. Pure: the input goal and history are not mutated, and
// repeated calls with the same history and now yield identical output.
//
// Note: a goal whose window expires without reaching its target also ends
// up completed — the model has a single terminal status and cannot tell
// success from expiry after the fact.
func Evaluate(g Goal, history []exam.Report, now time.Time) Goal {
	out := g
	start, end := WindowFor(g.StartDate, g.Timeframe)

	switch g.Type {
	case TypeImprovement:
		out.CurrentValue = improvementValue(g, history, start, end)
	default:
		out.CurrentValue = completionValue(g, history, start, end)
	}

	// Status never reverts once terminal.
	if out.Status == StatusCompleted {
		return out
	}
	if !now.Before(end) || out.CurrentValue >= g.TargetValue {
		out.Status = StatusCompleted
	}
	return out
}

// completionValue counts subject-matching reports inside the window.
func completionValue(g Goal, history []exam.Report, start, end time.Time) float64 {
	count := 0
	for _, r := range history {
		if g.MatchesSubject(r.Subject) && inWindow(r.CreatedAt, start, end) {
			count++
		}
	}
	return float64(count)
}

// improvementValue measures the score delta between the window average
// and the pre-goal baseline average. Stays 0 while the window holds no
// matching reports so an empty sample never reports a misleading delta,
// and clamps at 0 so regressions don't surface as negative progress.
func improvementValue(g Goal, history []exam.Report, start, end time.Time) float64 {
	matching := make([]exam.Report, 0, len(history))
	for _, r := range history {
		if g.MatchesSubject(r.Subject) {
			matching = append(matching, r)
		}
	}
	sort.Slice(matching, func(i, j int) bool {
		return matching[i].CreatedAt.Before(matching[j].CreatedAt)
	})

	var baselineSum, windowSum float64
	var baselineN, windowN int
	for _, r := range matching {
		switch {
		case r.CreatedAt.Before(g.StartDate):
			baselineSum += r.Score
			baselineN++
		case inWindow(r.CreatedAt, start, end):
			windowSum += r.Score
			windowN++
		}
	}

	if windowN == 0 {
		return 0
	}

	var baselineAvg float64
	if baselineN > 0 {
		baselineAvg = baselineSum / float64(baselineN)
	}
	delta := windowSum/float64(windowN) - baselineAvg
	if delta < 0 {
		return 0
	}
	return delta
}
