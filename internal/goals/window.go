package goals

import "time"

// WindowFor returns the half-open evaluation interval [start, end) for a
// goal anchored at anchor. The window is a pure function of the anchor
// and timeframe: the calendar week (starting Sunday) or calendar month
// containing the anchor. It never shifts as time passes.
func WindowFor(anchor time.Time, tf Timeframe) (time.Time, time.Time) {
	switch tf {
	case TimeframeMonth:
		start := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, anchor.Location())
		return start, start.AddDate(0, 1, 0)
	default: // week
		day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, anchor.Location())
		start := day.AddDate(0, 0, -int(day.Weekday()))
		return start, start.AddDate(0, 0, 7)
	}
}

// inWindow reports whether ts falls inside [start, end).
func inWindow(ts, start, end time.Time) bool {
	return !ts.Before(start) && ts.Before(end)
}
