package store

import (
	"context"
	"path/filepath"
	"slices"
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/exam"
	"github.com/prepdeck/prepdeck/internal/goals"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestReportRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.Reports()
	ctx := context.Background()

	correct := true
	opt := 2
	in := &exam.Report{
		ID:             "r1",
		Subject:        "Math",
		Topic:          "Fractions",
		Score:          66.7,
		TotalMarks:     6,
		MarksScored:    4,
		TotalQuestions: 3,
		CorrectCount:   2,
		TimeTakenSecs:  120,
		CreatedAt:      time.Now().UTC().Truncate(time.Second),
		WeakAreas:      []string{"Division"},
		Answers: []exam.Answer{
			{QuestionIndex: 0, SelectedOption: &opt, Correct: &correct, Solution: "because"},
		},
		Questions: []exam.Question{
			{
				Text:          "q1",
				Type:          exam.TypeMultipleChoice,
				Marks:         2,
				Topic:         "Division",
				Choices:       []string{"a", "b", "c", "d"},
				CorrectOption: 2,
			},
		},
		DetailLevel: exam.DetailFull,
	}

	if err := repo.Append(ctx, in); err != nil {
		t.Fatalf("append: %v", err)
	}

	got, err := repo.Get(ctx, "r1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a stored report")
	}

	if got.Subject != in.Subject || got.Topic != in.Topic {
		t.Errorf("subject/topic = %s/%s, want %s/%s", got.Subject, got.Topic, in.Subject, in.Topic)
	}
	if got.Score != in.Score {
		t.Errorf("score = %g, want %g", got.Score, in.Score)
	}
	if !slices.Equal(got.WeakAreas, in.WeakAreas) {
		t.Errorf("weak areas = %v, want %v", got.WeakAreas, in.WeakAreas)
	}
	if len(got.Answers) != 1 || got.Answers[0].SelectedOption == nil || *got.Answers[0].SelectedOption != 2 {
		t.Errorf("answers = %+v, want selected option 2", got.Answers)
	}
	if got.Answers[0].Correct == nil || !*got.Answers[0].Correct {
		t.Error("answer correctness lost in round trip")
	}
	if got.Answers[0].Solution != "because" {
		t.Errorf("solution = %q, want %q", got.Answers[0].Solution, "because")
	}
	if len(got.Questions) != 1 || got.Questions[0].CorrectOption != 2 {
		t.Errorf("questions = %+v, want correct option 2", got.Questions)
	}
	if got.DetailLevel != exam.DetailFull {
		t.Errorf("detail level = %s, want full", got.DetailLevel)
	}
}

func TestReportAllOrderedOldestFirst(t *testing.T) {
	s := openTestStore(t)
	repo := s.Reports()
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, id := range []string{"r2", "r1", "r3"} {
		offsets := map[string]time.Duration{"r1": 0, "r2": time.Minute, "r3": 2 * time.Minute}
		err := repo.Append(ctx, &exam.Report{
			ID:        id,
			Subject:   "Math",
			CreatedAt: base.Add(offsets[id]),
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	for i, want := range []string{"r1", "r2", "r3"} {
		if all[i].ID != want {
			t.Errorf("all[%d].ID = %s, want %s", i, all[i].ID, want)
		}
	}
}

func TestReportGetMissing(t *testing.T) {
	s := openTestStore(t)

	got, err := s.Reports().Get(context.Background(), "nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got != nil {
		t.Errorf("got %+v, want nil for a missing report", got)
	}
}

func TestReportDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Reports()
	ctx := context.Background()

	if err := repo.Append(ctx, &exam.Report{ID: "r1", Subject: "Math", CreatedAt: time.Now()}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if err := repo.Delete(ctx, "r1"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Delete(ctx, "r1"); err == nil {
		t.Error("expected an error deleting a missing report")
	}
}

func TestGoalSaveUpdateAll(t *testing.T) {
	s := openTestStore(t)
	repo := s.Goals()
	ctx := context.Background()

	g := goals.Goal{
		ID:          "g1",
		Description: "two math tests a week",
		Type:        goals.TypeCompletion,
		Subject:     "math",
		TargetValue: 2,
		Timeframe:   goals.TimeframeWeek,
		StartDate:   time.Now().UTC().Truncate(time.Second),
		Status:      goals.StatusActive,
	}
	if err := repo.Save(ctx, g); err != nil {
		t.Fatalf("save: %v", err)
	}

	g.CurrentValue = 1
	if err := repo.Update(ctx, g); err != nil {
		t.Fatalf("update: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 1 {
		t.Fatalf("len = %d, want 1", len(all))
	}
	if all[0].CurrentValue != 1 || all[0].Status != goals.StatusActive {
		t.Errorf("goal = %+v, want CurrentValue 1, active", all[0])
	}
}

func TestGoalStatusMonotonicAtWriteBoundary(t *testing.T) {
	s := openTestStore(t)
	repo := s.Goals()
	ctx := context.Background()

	g := goals.Goal{
		ID:          "g1",
		Type:        goals.TypeCompletion,
		TargetValue: 1,
		Timeframe:   goals.TimeframeWeek,
		StartDate:   time.Now().UTC().Truncate(time.Second),
		Status:      goals.StatusActive,
	}
	if err := repo.Save(ctx, g); err != nil {
		t.Fatalf("save: %v", err)
	}

	g.Status = goals.StatusCompleted
	g.CurrentValue = 1
	if err := repo.Update(ctx, g); err != nil {
		t.Fatalf("complete: %v", err)
	}

	// An attempt to write active over completed is ignored.
	g.Status = goals.StatusActive
	g.CurrentValue = 0
	if err := repo.Update(ctx, g); err != nil {
		t.Fatalf("revert attempt: %v", err)
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if all[0].Status != goals.StatusCompleted {
		t.Errorf("status = %s, want completed", all[0].Status)
	}
	if all[0].CurrentValue != 0 {
		t.Errorf("current value = %g, want 0 (value writes still apply)", all[0].CurrentValue)
	}
}

func TestGoalDelete(t *testing.T) {
	s := openTestStore(t)
	repo := s.Goals()
	ctx := context.Background()

	if err := repo.Delete(ctx, "missing"); err == nil {
		t.Error("expected an error deleting a missing goal")
	}
}

func TestProfileLazyCreateAndBadges(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	prof, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if prof.Name != "Learner" {
		t.Errorf("name = %q, want default Learner", prof.Name)
	}
	if prof.DetailLevel != exam.DetailFull {
		t.Errorf("detail level = %s, want full", prof.DetailLevel)
	}
	if len(prof.BadgeIDs) != 0 {
		t.Errorf("badges = %v, want empty", prof.BadgeIDs)
	}

	if err := repo.GrantBadges(ctx, []string{"first-test", "streak"}); err != nil {
		t.Fatalf("grant: %v", err)
	}
	// Re-granting plus one new id unions without duplicates.
	if err := repo.GrantBadges(ctx, []string{"first-test", "perfect-score"}); err != nil {
		t.Fatalf("re-grant: %v", err)
	}

	prof, err = repo.Load(ctx)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	want := []string{"first-test", "streak", "perfect-score"}
	if !slices.Equal(prof.BadgeIDs, want) {
		t.Errorf("badges = %v, want %v", prof.BadgeIDs, want)
	}
}

func TestProfileSetDetailLevel(t *testing.T) {
	s := openTestStore(t)
	repo := s.Profiles()
	ctx := context.Background()

	if err := repo.SetDetailLevel(ctx, exam.DetailSummary); err != nil {
		t.Fatalf("set detail level: %v", err)
	}
	prof, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if prof.DetailLevel != exam.DetailSummary {
		t.Errorf("detail level = %s, want summary", prof.DetailLevel)
	}
}

func TestLLMEventAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.Events()
	ctx := context.Background()

	purposes := []string{"test-generation", "explanation", "explanation"}
	for i, p := range purposes {
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock-1",
			Purpose:      p,
			InputTokens:  100 + i,
			OutputTokens: 50,
			LatencyMs:    int64(10 * (i + 1)),
			Success:      true,
			RequestBody:  `{"messages":[]}`,
			ResponseBody: `{"ok":true}`,
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "explanation"})
	if err != nil {
		t.Fatalf("query filtered: %v", err)
	}
	if len(filtered) != 2 {
		t.Errorf("filtered len = %d, want 2", len(filtered))
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited len = %d, want 1", len(limited))
	}

	got, err := repo.GetLLMEvent(ctx, all[0].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected a stored event")
	}
	if got.RequestBody != `{"messages":[]}` {
		t.Errorf("request body = %q", got.RequestBody)
	}

	missing, err := repo.GetLLMEvent(ctx, 99999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Errorf("got %+v, want nil for a missing event", missing)
	}
}
