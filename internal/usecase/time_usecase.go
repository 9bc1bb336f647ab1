package usecase

import (
	"context"
	"time"

	"github.com/zmz-dd/kids-vocab-learning/internal/repository"
	"github.com/zmz-dd/kids-vocab-learning/pkg/clock"
)

// TimeStatus is the current state of the logical clock.
type TimeStatus struct {
	Now       time.Time     `json:"now"`
	Offset    time.Duration `json:"offset"`
	Simulated bool          `json:"simulated"`
}

// TimeUsecase controls the process-wide logical clock and persists its offset
// so a simulated date survives restarts. It is deliberately global, not per
// user: every scheduling decision in the engine shares one "now".
type TimeUsecase interface {
	Status(ctx context.Context) (*TimeStatus, error)
	// SetOffset shifts the clock by a fixed duration from the wall clock.
	SetOffset(ctx context.Context, offset time.Duration) (*TimeStatus, error)
	// Travel shifts the clock so Now() lands on target, then keeps ticking.
	Travel(ctx context.Context, target time.Time) (*TimeStatus, error)
	// Reset returns to real time and drops the stored offset.
	Reset(ctx context.Context) (*TimeStatus, error)
	// Restore reapplies a previously persisted offset, if any. Called once
	// at startup.
	Restore(ctx context.Context) error
}

// NewTimeUsecase wires the shared simulated clock with its offset store.
func NewTimeUsecase(clk *clock.Simulated, offsets repository.TimeOffsetRepository) TimeUsecase {
	return &timeUsecase{clock: clk, offsets: offsets}
}

type timeUsecase struct {
	clock   *clock.Simulated
	offsets repository.TimeOffsetRepository
}

func (u *timeUsecase) Status(context.Context) (*TimeStatus, error) {
	return u.status(), nil
}

func (u *timeUsecase) SetOffset(ctx context.Context, offset time.Duration) (*TimeStatus, error) {
	u.clock.SetOffset(offset)
	if err := u.offsets.SaveOffset(ctx, offset); err != nil {
		return u.status(), err
	}
	return u.status(), nil
}

func (u *timeUsecase) Travel(ctx context.Context, target time.Time) (*TimeStatus, error) {
	u.clock.Travel(target)
	if err := u.offsets.SaveOffset(ctx, u.clock.Offset()); err != nil {
		return u.status(), err
	}
	return u.status(), nil
}

func (u *timeUsecase) Reset(ctx context.Context) (*TimeStatus, error) {
	u.clock.Reset()
	if err := u.offsets.ClearOffset(ctx); err != nil {
		return u.status(), err
	}
	return u.status(), nil
}

func (u *timeUsecase) Restore(ctx context.Context) error {
	offset, ok, err := u.offsets.Offset(ctx)
	if err != nil {
		return err
	}
	if ok {
		u.clock.SetOffset(offset)
	}
	return nil
}

func (u *timeUsecase) status() *TimeStatus {
	return &TimeStatus{
		Now:       u.clock.Now(),
		Offset:    u.clock.Offset(),
		Simulated: u.clock.IsSimulated(),
	}
}
