package store

import (
	"context"
	"fmt"
	"slices"

	"github.com/prepdeck/prepdeck/ent"
	"github.com/prepdeck/prepdeck/internal/exam"
)

// profileRepo implements ProfileRepo using the ent client.
// A single row holds the local profile; it is created lazily.
type profileRepo struct {
	client *ent.Client
}

func (r *profileRepo) Load(ctx context.Context) (*Profile, error) {
	row, err := r.loadOrCreate(ctx)
	if err != nil {
		return nil, err
	}
	return &Profile{
		Name:        row.Name,
		DetailLevel: exam.DetailLevel(row.DetailLevel),
		BadgeIDs:    row.BadgeIds,
	}, nil
}

func (r *profileRepo) SetDetailLevel(ctx context.Context, level exam.DetailLevel) error {
	row, err := r.loadOrCreate(ctx)
	if err != nil {
		return err
	}
	_, err = row.Update().
		SetDetailLevel(string(level)).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update detail level: %w", err)
	}
	return nil
}

func (r *profileRepo) GrantBadges(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}
	row, err := r.loadOrCreate(ctx)
	if err != nil {
		return err
	}

	// Union only. Earned badges are milestones and never come back off,
	// even when a trimmed history would no longer qualify.
	merged := slices.Clone(row.BadgeIds)
	for _, id := range ids {
		if !slices.Contains(merged, id) {
			merged = append(merged, id)
		}
	}
	if len(merged) == len(row.BadgeIds) {
		return nil
	}

	_, err = row.Update().
		SetBadgeIds(merged).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("update badges: %w", err)
	}
	return nil
}

func (r *profileRepo) loadOrCreate(ctx context.Context) (*ent.Profile, error) {
	row, err := r.client.Profile.Query().First(ctx)
	if err == nil {
		return row, nil
	}
	if !ent.IsNotFound(err) {
		return nil, fmt.Errorf("query profile: %w", err)
	}

	row, err = r.client.Profile.Create().Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return row, nil
}
