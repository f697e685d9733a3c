package progress

import (
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/prepdeck/prepdeck/internal/exam"
	"github.com/prepdeck/prepdeck/internal/goals"
	"github.com/prepdeck/prepdeck/internal/store"
)

type fakeReports struct {
	reports []exam.Report
}

func (f *fakeReports) Append(_ context.Context, r *exam.Report) error {
	f.reports = append(f.reports, *r)
	return nil
}

func (f *fakeReports) All(context.Context) ([]exam.Report, error) {
	return slices.Clone(f.reports), nil
}

func (f *fakeReports) Get(_ context.Context, id string) (*exam.Report, error) {
	for _, r := range f.reports {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, nil
}

func (f *fakeReports) Delete(_ context.Context, id string) error {
	for i, r := range f.reports {
		if r.ID == id {
			f.reports = slices.Delete(f.reports, i, i+1)
			return nil
		}
	}
	return fmt.Errorf("report %s not found", id)
}

type fakeGoals struct {
	goals   map[string]goals.Goal
	updates int
}

func newFakeGoals() *fakeGoals {
	return &fakeGoals{goals: make(map[string]goals.Goal)}
}

func (f *fakeGoals) Save(_ context.Context, g goals.Goal) error {
	f.goals[g.ID] = g
	return nil
}

func (f *fakeGoals) All(context.Context) ([]goals.Goal, error) {
	var out []goals.Goal
	for _, g := range f.goals {
		out = append(out, g)
	}
	return out, nil
}

func (f *fakeGoals) Update(_ context.Context, g goals.Goal) error {
	// Completed status is terminal at the write boundary.
	if stored, ok := f.goals[g.ID]; ok && stored.Status == goals.StatusCompleted {
		g.Status = goals.StatusCompleted
	}
	f.goals[g.ID] = g
	f.updates++
	return nil
}

func (f *fakeGoals) Delete(_ context.Context, id string) error {
	delete(f.goals, id)
	return nil
}

type fakeProfiles struct {
	profile store.Profile
	grants  int
}

func (f *fakeProfiles) Load(context.Context) (*store.Profile, error) {
	p := f.profile
	p.BadgeIDs = slices.Clone(f.profile.BadgeIDs)
	return &p, nil
}

func (f *fakeProfiles) SetDetailLevel(_ context.Context, level exam.DetailLevel) error {
	f.profile.DetailLevel = level
	return nil
}

func (f *fakeProfiles) GrantBadges(_ context.Context, ids []string) error {
	for _, id := range ids {
		if !slices.Contains(f.profile.BadgeIDs, id) {
			f.profile.BadgeIDs = append(f.profile.BadgeIDs, id)
		}
	}
	f.grants++
	return nil
}

func testOrchestrator() (*Orchestrator, *fakeReports, *fakeGoals, *fakeProfiles) {
	reports := &fakeReports{}
	goalRepo := newFakeGoals()
	profiles := &fakeProfiles{}
	o := New(reports, goalRepo, profiles)
	return o, reports, goalRepo, profiles
}

func mathReport(id string, score float64, at time.Time) *exam.Report {
	return &exam.Report{ID: id, Subject: "Math", Score: score, CreatedAt: at}
}

func TestRecordReportUpdatesGoalAndBadges(t *testing.T) {
	o, _, goalRepo, profiles := testOrchestrator()

	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	o.now = func() time.Time { return now }

	goalRepo.goals["g1"] = goals.Goal{
		ID:          "g1",
		Type:        goals.TypeCompletion,
		Subject:     "math",
		TargetValue: 2,
		Timeframe:   goals.TimeframeWeek,
		StartDate:   now,
		Status:      goals.StatusActive,
	}

	fresh, err := o.RecordReport(context.Background(), mathReport("r1", 80, now))
	if err != nil {
		t.Fatalf("record report: %v", err)
	}

	if g := goalRepo.goals["g1"]; g.CurrentValue != 1 || g.Status != goals.StatusActive {
		t.Errorf("goal after first report = %+v, want CurrentValue 1, active", g)
	}
	if !slices.Contains(fresh, "first-test") {
		t.Errorf("fresh badges = %v, want first-test", fresh)
	}
	if !slices.Contains(profiles.profile.BadgeIDs, "first-test") {
		t.Errorf("profile badges = %v, want first-test granted", profiles.profile.BadgeIDs)
	}

	// Second report reaches the target.
	fresh, err = o.RecordReport(context.Background(), mathReport("r2", 90, now.Add(time.Hour)))
	if err != nil {
		t.Fatalf("record second report: %v", err)
	}
	if g := goalRepo.goals["g1"]; g.CurrentValue != 2 || g.Status != goals.StatusCompleted {
		t.Errorf("goal after second report = %+v, want CurrentValue 2, completed", g)
	}
	if slices.Contains(fresh, "first-test") {
		t.Errorf("first-test reported fresh twice: %v", fresh)
	}
}

func TestReevaluateIsIdempotent(t *testing.T) {
	o, _, goalRepo, profiles := testOrchestrator()

	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	o.now = func() time.Time { return now }

	goalRepo.goals["g1"] = goals.Goal{
		ID:          "g1",
		Type:        goals.TypeCompletion,
		TargetValue: 5,
		Timeframe:   goals.TimeframeWeek,
		StartDate:   now,
		Status:      goals.StatusActive,
	}

	if _, err := o.RecordReport(context.Background(), mathReport("r1", 80, now)); err != nil {
		t.Fatalf("record report: %v", err)
	}
	updatesAfterRecord := goalRepo.updates
	grantsAfterRecord := profiles.grants

	// Re-running over unchanged history writes nothing.
	fresh, err := o.Reevaluate(context.Background())
	if err != nil {
		t.Fatalf("reevaluate: %v", err)
	}
	if len(fresh) != 0 {
		t.Errorf("fresh badges on re-run = %v, want none", fresh)
	}
	if goalRepo.updates != updatesAfterRecord {
		t.Errorf("goal updates = %d, want %d (no extra writes)", goalRepo.updates, updatesAfterRecord)
	}
	if profiles.grants != grantsAfterRecord {
		t.Errorf("badge grants = %d, want %d (no extra writes)", profiles.grants, grantsAfterRecord)
	}
}

func TestDeleteReportKeepsBadgesAndRecomputesGoals(t *testing.T) {
	o, reports, goalRepo, profiles := testOrchestrator()

	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	o.now = func() time.Time { return now }

	goalRepo.goals["g1"] = goals.Goal{
		ID:          "g1",
		Type:        goals.TypeCompletion,
		TargetValue: 5,
		Timeframe:   goals.TimeframeWeek,
		StartDate:   now,
		Status:      goals.StatusActive,
	}

	if _, err := o.RecordReport(context.Background(), mathReport("r1", 80, now)); err != nil {
		t.Fatalf("record report: %v", err)
	}
	if !slices.Contains(profiles.profile.BadgeIDs, "first-test") {
		t.Fatal("expected first-test badge before deletion")
	}

	if err := o.DeleteReport(context.Background(), "r1"); err != nil {
		t.Fatalf("delete report: %v", err)
	}

	if len(reports.reports) != 0 {
		t.Errorf("reports after delete = %d, want 0", len(reports.reports))
	}
	// Goal progress drops with the history; the badge survives.
	if g := goalRepo.goals["g1"]; g.CurrentValue != 0 {
		t.Errorf("goal CurrentValue after delete = %g, want 0", g.CurrentValue)
	}
	if !slices.Contains(profiles.profile.BadgeIDs, "first-test") {
		t.Error("badge lost after report deletion")
	}
}

func TestCompletedGoalStaysCompletedAfterDeletion(t *testing.T) {
	o, _, goalRepo, _ := testOrchestrator()

	now := time.Date(2025, 6, 11, 12, 0, 0, 0, time.UTC)
	o.now = func() time.Time { return now }

	goalRepo.goals["g1"] = goals.Goal{
		ID:          "g1",
		Type:        goals.TypeCompletion,
		TargetValue: 1,
		Timeframe:   goals.TimeframeWeek,
		StartDate:   now,
		Status:      goals.StatusActive,
	}

	if _, err := o.RecordReport(context.Background(), mathReport("r1", 80, now)); err != nil {
		t.Fatalf("record report: %v", err)
	}
	if g := goalRepo.goals["g1"]; g.Status != goals.StatusCompleted {
		t.Fatalf("goal = %+v, want completed", g)
	}

	if err := o.DeleteReport(context.Background(), "r1"); err != nil {
		t.Fatalf("delete report: %v", err)
	}
	if g := goalRepo.goals["g1"]; g.Status != goals.StatusCompleted {
		t.Errorf("goal status after deletion = %s, want completed", g.Status)
	}
}
