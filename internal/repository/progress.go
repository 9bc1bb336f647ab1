package repository

import (
	"context"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
)

// ProgressRepository persists the per-user word-progress map. Saves always
// write the full snapshot, never a delta, so a partial write failure is
// self-correcting on the next successful save.
type ProgressRepository interface {
	Load(ctx context.Context, userID string) (entity.ProgressMap, error)
	Save(ctx context.Context, userID string, progress entity.ProgressMap) error
	Clear(ctx context.Context, userID string) error
	// Users lists every user id with a persisted snapshot. Read-only
	// cross-user access, for the leaderboard aggregator only.
	Users(ctx context.Context) ([]string, error)
}

// PlanRepository persists the active plan settings and the calendar-day
// counters, both keyed by user.
type PlanRepository interface {
	// GetSettings returns (nil, nil) when the user has no active plan.
	GetSettings(ctx context.Context, userID string) (*entity.PlanSettings, error)
	SaveSettings(ctx context.Context, userID string, settings *entity.PlanSettings) error
	// GetDayState returns (nil, nil) when no record exists yet.
	GetDayState(ctx context.Context, userID string) (*entity.PlanDayState, error)
	SaveDayState(ctx context.Context, userID string, state *entity.PlanDayState) error
}

// HistoryRepository is the append-only per-user test history.
type HistoryRepository interface {
	Append(ctx context.Context, userID string, record *entity.TestRecord) error
	// List returns records newest first.
	List(ctx context.Context, userID string) ([]*entity.TestRecord, error)
	Clear(ctx context.Context, userID string) error
}
