package achievements

import (
	"sort"
	"strings"
	"time"

	"github.com/prepdeck/prepdeck/internal/exam"
)

// Evaluate returns the ids of every badge the history currently
// satisfies, in catalog order. The result is the complete qualifying set,
// not a delta; the caller diffs against previously granted ids. An empty
// history yields an empty set.
func Evaluate(history []exam.Report) []string {
	var earned []string
	for _, b := range Catalog() {
		if b.Rule(history) {
			earned = append(earned, b.ID)
		}
	}
	return earned
}

// subjectMastery builds a rule satisfied once enough reports mention the
// subject keyword, case-insensitively.
func subjectMastery(keyword string) Rule {
	return func(history []exam.Report) bool {
		count := 0
		for _, r := range history {
			if strings.Contains(strings.ToLower(r.Subject), keyword) {
				count++
			}
		}
		return count >= MasteryReportCount
	}
}

// longestDayStreak finds the longest run of consecutive calendar days on
// which at least one test was taken. Multiple tests on the same day count
// once; any gap larger than one day resets the run.
func longestDayStreak(history []exam.Report) int {
	if len(history) == 0 {
		return 0
	}

	seen := make(map[time.Time]bool, len(history))
	days := make([]time.Time, 0, len(history))
	for _, r := range history {
		d := dayOf(r.CreatedAt)
		if !seen[d] {
			seen[d] = true
			days = append(days, d)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// dayOf collapses a timestamp to midnight of its calendar day.
func dayOf(ts time.Time) time.Time {
	return time.Date(ts.Year(), ts.Month(), ts.Day(), 0, 0, 0, 0, ts.Location())
}
