package store

import (
	"context"
	"fmt"

	"github.com/prepdeck/prepdeck/ent"
	"github.com/prepdeck/prepdeck/ent/goal"
	"github.com/prepdeck/prepdeck/internal/goals"
)

// goalRepo implements GoalRepo using the ent client.
type goalRepo struct {
	client *ent.Client
}

func (r *goalRepo) Save(ctx context.Context, g goals.Goal) error {
	_, err := r.client.Goal.Create().
		SetGoalID(g.ID).
		SetDescription(g.Description).
		SetType(string(g.Type)).
		SetSubject(g.Subject).
		SetTargetValue(g.TargetValue).
		SetCurrentValue(g.CurrentValue).
		SetTimeframe(string(g.Timeframe)).
		SetStartDate(g.StartDate).
		SetStatus(string(g.Status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("save goal: %w", err)
	}
	return nil
}

func (r *goalRepo) All(ctx context.Context) ([]goals.Goal, error) {
	rows, err := r.client.Goal.Query().
		Order(ent.Asc(goal.FieldStartDate)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("query goals: %w", err)
	}

	out := make([]goals.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, rowToGoal(row))
	}
	return out, nil
}

func (r *goalRepo) Update(ctx context.Context, g goals.Goal) error {
	row, err := r.client.Goal.Query().
		Where(goal.GoalID(g.ID)).
		Only(ctx)
	if err != nil {
		return fmt.Errorf("query goal %s: %w", g.ID, err)
	}

	status := g.Status
	// Monotonic at the write boundary: completed never reverts.
	if row.Status == string(goals.StatusCompleted) {
		status = goals.StatusCompleted
	}

	_, err = row.Update().
		SetCurrentValue(g.CurrentValue).
		SetStatus(string(status)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update goal %s: %w", g.ID, err)
	}
	return nil
}

func (r *goalRepo) Delete(ctx context.Context, goalID string) error {
	n, err := r.client.Goal.Delete().
		Where(goal.GoalID(goalID)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("delete goal %s: %w", goalID, err)
	}
	if n == 0 {
		return fmt.Errorf("goal %s not found", goalID)
	}
	return nil
}

func rowToGoal(row *ent.Goal) goals.Goal {
	return goals.Goal{
		ID:           row.GoalID,
		Description:  row.Description,
		Type:         goals.GoalType(row.Type),
		Subject:      row.Subject,
		TargetValue:  row.TargetValue,
		CurrentValue: row.CurrentValue,
		Timeframe:    goals.Timeframe(row.Timeframe),
		StartDate:    row.StartDate,
		Status:       goals.Status(row.Status),
	}
}
