package goals

import "testing"

func TestMatchesSubject(t *testing.T) {
	tests := []struct {
		goalSubject   string
		reportSubject string
		want          bool
	}{
		{"", "Math", true},
		{"all", "Math", true},
		{"All", "Science", true},
		{"math", "Math", true},
		{"math", "Mathematics", true},
		{"Math", "advanced math", true},
		{"math", "Science", false},
		{"  ", "Science", true}, // whitespace-only is the wildcard
		{"physics", "Physics II", true},
	}

	for _, tt := range tests {
		g := Goal{Subject: tt.goalSubject}
		if got := g.MatchesSubject(tt.reportSubject); got != tt.want {
			t.Errorf("Goal{Subject: %q}.MatchesSubject(%q) = %v, want %v",
				tt.goalSubject, tt.reportSubject, got, tt.want)
		}
	}
}
