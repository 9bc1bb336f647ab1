package repository

import (
	"context"
	"time"
)

// TimeOffsetRepository persists the simulated-clock offset so that time
// travel survives process restarts. Process-wide, not per user.
type TimeOffsetRepository interface {
	// Offset returns the stored offset and whether one exists.
	Offset(ctx context.Context) (time.Duration, bool, error)
	SaveOffset(ctx context.Context, offset time.Duration) error
	ClearOffset(ctx context.Context) error
}
