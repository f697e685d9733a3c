package store

import (
	"context"
	"time"

	"github.com/prepdeck/prepdeck/internal/exam"
	"github.com/prepdeck/prepdeck/internal/goals"
)

// ReportRepo owns the report history collection. Reports are append-only
// and deletable; nothing updates a stored report.
type ReportRepo interface {
	// Append stores a new report.
	Append(ctx context.Context, r *exam.Report) error

	// All returns the full report history, oldest first.
	All(ctx context.Context) ([]exam.Report, error)

	// Get returns the report with the given id, or nil if absent.
	Get(ctx context.Context, reportID string) (*exam.Report, error)

	// Delete removes a report. The caller must re-run progress
	// evaluation afterwards: goals and achievements are derived views
	// over this collection.
	Delete(ctx context.Context, reportID string) error
}

// GoalRepo owns the goal collection.
type GoalRepo interface {
	// Save stores a newly created goal.
	Save(ctx context.Context, g goals.Goal) error

	// All returns every goal.
	All(ctx context.Context) ([]goals.Goal, error)

	// Update persists tracker output: current value and status. Status
	// writes are monotonic — a completed goal is never set back to
	// active regardless of the value passed in.
	Update(ctx context.Context, g goals.Goal) error

	// Delete removes a goal.
	Delete(ctx context.Context, goalID string) error
}

// Profile is the single local user profile.
type Profile struct {
	Name        string
	DetailLevel exam.DetailLevel
	BadgeIDs    []string
}

// ProfileRepo owns the profile row.
type ProfileRepo interface {
	// Load returns the profile, creating the default row on first use.
	Load(ctx context.Context) (*Profile, error)

	// SetDetailLevel stores the preferred feedback detail level.
	SetDetailLevel(ctx context.Context, level exam.DetailLevel) error

	// GrantBadges unions the given ids into the earned set. Ids are
	// never removed: badges mark milestones already reached, and must
	// survive report deletion.
	GrantBadges(ctx context.Context, ids []string) error
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string
	Model        string
	Purpose      string
	InputTokens  int
	OutputTokens int
	LatencyMs    int64
	Success      bool
	ErrorMessage string
	RequestBody  string
	ResponseBody string
}

// LLMRequestEvent is a stored generation-service call record.
type LLMRequestEvent struct {
	ID        int
	Timestamp time.Time
	LLMRequestEventData
}

// QueryOpts configures event queries.
type QueryOpts struct {
	Limit   int    // max results (0 = unlimited)
	Purpose string // filter by purpose when non-empty
}

// EventRepo provides access to the LLM request log.
type EventRepo interface {
	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns recent events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one event by id, or nil if absent.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)
}
