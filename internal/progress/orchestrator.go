package progress

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/prepdeck/prepdeck/internal/achievements"
	"github.com/prepdeck/prepdeck/internal/exam"
	"github.com/prepdeck/prepdeck/internal/goals"
	"github.com/prepdeck/prepdeck/internal/store"
)

// Orchestrator reconciles derived progress state after report history
// changes: every goal is re-run through the tracker and the achievement
// evaluator runs once, with results diffed against stored state so a
// re-run over unchanged inputs writes nothing.
type Orchestrator struct {
	reports  store.ReportRepo
	goalRepo store.GoalRepo
	profiles store.ProfileRepo

	// now is stubbed in tests.
	now func() time.Time
}

// New creates an Orchestrator over the given repositories.
func New(reports store.ReportRepo, goalRepo store.GoalRepo, profiles store.ProfileRepo) *Orchestrator {
	return &Orchestrator{
		reports:  reports,
		goalRepo: goalRepo,
		profiles: profiles,
		now:      time.Now,
	}
}

// RecordReport appends a freshly graded report and re-evaluates all
// derived state. Returns the ids of badges earned by this report.
func (o *Orchestrator) RecordReport(ctx context.Context, r *exam.Report) ([]string, error) {
	if err := o.reports.Append(ctx, r); err != nil {
		return nil, fmt.Errorf("append report: %w", err)
	}
	return o.Reevaluate(ctx)
}

// DeleteReport removes a report and re-evaluates all derived state.
// Goals recompute against the trimmed history; earned badges stay.
func (o *Orchestrator) DeleteReport(ctx context.Context, reportID string) error {
	if err := o.reports.Delete(ctx, reportID); err != nil {
		return err
	}
	_, err := o.Reevaluate(ctx)
	return err
}

// Reevaluate recomputes every goal and the achievement set from the full
// report history, persisting only what changed. Returns newly earned
// badge ids.
func (o *Orchestrator) Reevaluate(ctx context.Context) ([]string, error) {
	history, err := o.reports.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("load report history: %w", err)
	}

	if err := o.updateGoals(ctx, history); err != nil {
		return nil, err
	}
	return o.updateBadges(ctx, history)
}

func (o *Orchestrator) updateGoals(ctx context.Context, history []exam.Report) error {
	all, err := o.goalRepo.All(ctx)
	if err != nil {
		return fmt.Errorf("load goals: %w", err)
	}

	now := o.now()
	for _, g := range all {
		updated := goals.Evaluate(g, history, now)
		if updated.CurrentValue == g.CurrentValue && updated.Status == g.Status {
			continue
		}
		if err := o.goalRepo.Update(ctx, updated); err != nil {
			return fmt.Errorf("update goal %s: %w", g.ID, err)
		}
	}
	return nil
}

func (o *Orchestrator) updateBadges(ctx context.Context, history []exam.Report) ([]string, error) {
	earned := achievements.Evaluate(history)

	prof, err := o.profiles.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load profile: %w", err)
	}

	var fresh []string
	for _, id := range earned {
		if !slices.Contains(prof.BadgeIDs, id) {
			fresh = append(fresh, id)
		}
	}
	if len(fresh) == 0 {
		return nil, nil
	}

	if err := o.profiles.GrantBadges(ctx, fresh); err != nil {
		return nil, fmt.Errorf("grant badges: %w", err)
	}
	return fresh, nil
}
