package goals

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestWindowForWeek(t *testing.T) {
	tests := []struct {
		name      string
		anchor    time.Time
		wantStart time.Time
		wantEnd   time.Time
	}{
		{
			// 2025-06-11 is a Wednesday; its week runs Sun 8th to Sun 15th.
			name:      "midweek anchor",
			anchor:    time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC),
			wantStart: date(2025, 6, 8),
			wantEnd:   date(2025, 6, 15),
		},
		{
			name:      "sunday anchor starts its own week",
			anchor:    date(2025, 6, 8),
			wantStart: date(2025, 6, 8),
			wantEnd:   date(2025, 6, 15),
		},
		{
			name:      "saturday anchor is the last day of the week",
			anchor:    time.Date(2025, 6, 14, 23, 59, 0, 0, time.UTC),
			wantStart: date(2025, 6, 8),
			wantEnd:   date(2025, 6, 15),
		},
		{
			name:      "week spanning a month boundary",
			anchor:    date(2025, 7, 1), // Tuesday
			wantStart: date(2025, 6, 29),
			wantEnd:   date(2025, 7, 6),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := WindowFor(tt.anchor, TimeframeWeek)
			if !start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", start, tt.wantStart)
			}
			if !end.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", end, tt.wantEnd)
			}
		})
	}
}

func TestWindowForMonth(t *testing.T) {
	start, end := WindowFor(time.Date(2025, 6, 11, 15, 30, 0, 0, time.UTC), TimeframeMonth)
	if !start.Equal(date(2025, 6, 1)) {
		t.Errorf("start = %v, want %v", start, date(2025, 6, 1))
	}
	if !end.Equal(date(2025, 7, 1)) {
		t.Errorf("end = %v, want %v", end, date(2025, 7, 1))
	}
}

func TestWindowForIsStable(t *testing.T) {
	// Two anchors in the same week produce the same window.
	a, aEnd := WindowFor(date(2025, 6, 9), TimeframeWeek)  // Monday
	b, bEnd := WindowFor(date(2025, 6, 13), TimeframeWeek) // Friday
	if !a.Equal(b) || !aEnd.Equal(bEnd) {
		t.Errorf("same-week anchors produced different windows: [%v, %v) vs [%v, %v)", a, aEnd, b, bEnd)
	}
}

func TestInWindowHalfOpen(t *testing.T) {
	start, end := date(2025, 6, 8), date(2025, 6, 15)

	if !inWindow(start, start, end) {
		t.Error("start boundary should be inside the window")
	}
	if inWindow(end, start, end) {
		t.Error("end boundary should be outside the window")
	}
	if inWindow(end.Add(-time.Nanosecond), start, end) != true {
		t.Error("instant before end should be inside the window")
	}
}
