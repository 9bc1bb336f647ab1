package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/internal/repository"
	"github.com/zmz-dd/kids-vocab-learning/pkg/clock"
)

// PlanUsecase owns the plan lifecycle: create, modify and reset semantics and
// the derived plan statistics.
type PlanUsecase interface {
	// CreateOrUpdatePlan applies new settings. With no active plan it
	// creates one; when a previously selected book was removed it performs a
	// destructive reset (the caller is expected to have confirmed via
	// WouldReset); otherwise it modifies the plan in place, preserving all
	// progress.
	CreateOrUpdatePlan(ctx context.Context, userID string, settings *entity.PlanSettings) (*entity.PlanSettings, error)
	// GetActivePlan returns (nil, nil) when no plan exists.
	GetActivePlan(ctx context.Context, userID string) (*entity.PlanSettings, error)
	// WouldReset reports whether applying newBooks would wipe progress.
	WouldReset(ctx context.Context, userID string, newBooks []string) (bool, error)
	Stats(ctx context.Context, userID string) (*entity.PlanStats, error)
	// AddBonusWords raises today's effective quota for explicit
	// "append more" requests.
	AddBonusWords(ctx context.Context, userID string, count int) error
	// DayState returns today's counters, rolled over if the calendar day
	// advanced since they were written.
	DayState(ctx context.Context, userID string) (*entity.PlanDayState, error)
}

// NewPlanUsecase wires the repositories with the shared logical clock.
func NewPlanUsecase(
	catalog repository.CatalogRepository,
	progress repository.ProgressRepository,
	plans repository.PlanRepository,
	history repository.HistoryRepository,
	clk clock.Clock,
) PlanUsecase {
	return &planUsecase{
		catalog:  catalog,
		progress: progress,
		plans:    plans,
		history:  history,
		clock:    clk,
	}
}

type planUsecase struct {
	catalog  repository.CatalogRepository
	progress repository.ProgressRepository
	plans    repository.PlanRepository
	history  repository.HistoryRepository
	clock    clock.Clock
}

func (u *planUsecase) CreateOrUpdatePlan(ctx context.Context, userID string, settings *entity.PlanSettings) (*entity.PlanSettings, error) {
	if userID == "" {
		return nil, nil
	}
	if settings == nil {
		return nil, entity.ErrInvalidPlanSettings
	}
	applied := settings.Clone()
	if applied.Order == "" {
		applied.Order = entity.OrderAlphabetical
	}
	if err := applied.Validate(); err != nil {
		return nil, err
	}

	total, err := u.scopedWordCount(ctx, applied.SelectedBooks)
	if err != nil {
		return nil, err
	}
	deriveQuota(applied, total)

	current, err := u.plans.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := u.clock.Now()
	switch {
	case current == nil:
		applied.ID = uuid.NewString()
		applied.CreatedAt = now
		if err := u.wipe(ctx, userID); err != nil {
			return nil, err
		}
	case entity.WouldResetPlan(current.SelectedBooks, applied.SelectedBooks):
		// Destructive: a previously selected book disappeared. Caller-side
		// confirmation happens before we get here.
		applied.ID = uuid.NewString()
		applied.CreatedAt = now
		if err := u.wipe(ctx, userID); err != nil {
			return nil, err
		}
	default:
		// Same or superset of books, or only pacing/order changed: keep
		// identity and every progress record, restart today's counters.
		applied.ID = current.ID
		applied.CreatedAt = current.CreatedAt
		if err := u.plans.SaveDayState(ctx, userID, entity.NewPlanDayState(clock.DayKey(now))); err != nil {
			return nil, err
		}
	}

	if err := u.plans.SaveSettings(ctx, userID, applied); err != nil {
		return nil, err
	}
	return applied, nil
}

func (u *planUsecase) GetActivePlan(ctx context.Context, userID string) (*entity.PlanSettings, error) {
	if userID == "" {
		return nil, nil
	}
	return u.plans.GetSettings(ctx, userID)
}

func (u *planUsecase) WouldReset(ctx context.Context, userID string, newBooks []string) (bool, error) {
	current, err := u.plans.GetSettings(ctx, userID)
	if err != nil {
		return false, err
	}
	if current == nil {
		return false, nil
	}
	return entity.WouldResetPlan(current.SelectedBooks, newBooks), nil
}

func (u *planUsecase) Stats(ctx context.Context, userID string) (*entity.PlanStats, error) {
	plan, err := u.plans.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, entity.ErrNoPlanConfigured
	}

	words, err := u.catalog.ListWords(ctx)
	if err != nil {
		return nil, err
	}
	progress, err := u.progress.Load(ctx, userID)
	if err != nil {
		return nil, err
	}
	day, err := u.DayState(ctx, userID)
	if err != nil {
		return nil, err
	}

	scoped := lo.Filter(words, func(w entity.Word, _ int) bool {
		return plan.InScope(w.BookID)
	})
	learned, mastered := 0, 0
	for _, w := range scoped {
		p := progress[w.Word]
		if p == nil || p.Status == entity.StatusNew {
			continue
		}
		learned++
		if p.Status == entity.StatusMastered {
			mastered++
		}
	}

	now := u.clock.Now()
	return &entity.PlanStats{
		TotalScoped:    len(scoped),
		Learned:        learned,
		Mastered:       mastered,
		Remaining:      len(scoped) - learned,
		DailyGoal:      plan.DailyLimit,
		BonusWords:     day.BonusWords,
		EffectiveGoal:  plan.DailyLimit + day.BonusWords,
		TodayNewWords:  day.NewWordsLearned,
		DaysSinceStart: clock.DaysBetween(plan.CreatedAt, now) + 1,
		TargetDays:     plan.TargetDays,
	}, nil
}

func (u *planUsecase) AddBonusWords(ctx context.Context, userID string, count int) error {
	if userID == "" || count <= 0 {
		return nil
	}
	plan, err := u.plans.GetSettings(ctx, userID)
	if err != nil {
		return err
	}
	if plan == nil {
		return entity.ErrNoPlanConfigured
	}
	day, err := u.DayState(ctx, userID)
	if err != nil {
		return err
	}
	day.BonusWords += count
	return u.plans.SaveDayState(ctx, userID, day)
}

func (u *planUsecase) DayState(ctx context.Context, userID string) (*entity.PlanDayState, error) {
	return currentDayState(ctx, u.plans, userID, u.clock.Now())
}

// deriveQuota recomputes the non-authoritative pacing field. DailyLimit is
// always kept as the operative per-day quota, derived from TargetDays when
// pacing by days.
func deriveQuota(s *entity.PlanSettings, totalScoped int) {
	switch s.PacingMode {
	case entity.PaceByTargetDays:
		s.DailyLimit = ceilDiv(totalScoped, s.TargetDays)
		if s.DailyLimit < 1 {
			s.DailyLimit = 1
		}
	case entity.PaceByDailyCount:
		s.TargetDays = ceilDiv(totalScoped, s.DailyLimit)
	}
}

func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// wipe clears everything a plan create/reset destroys: progress, day
// counters and test history.
func (u *planUsecase) wipe(ctx context.Context, userID string) error {
	if err := u.progress.Clear(ctx, userID); err != nil {
		return err
	}
	if err := u.history.Clear(ctx, userID); err != nil {
		return err
	}
	return u.plans.SaveDayState(ctx, userID, entity.NewPlanDayState(clock.DayKey(u.clock.Now())))
}

func (u *planUsecase) scopedWordCount(ctx context.Context, bookIDs []string) (int, error) {
	words, err := u.catalog.ListWords(ctx)
	if err != nil {
		return 0, err
	}
	return lo.CountBy(words, func(w entity.Word) bool {
		return lo.Contains(bookIDs, w.BookID)
	}), nil
}

// currentDayState returns the stored day record, replacing it with a zeroed
// one when the logical clock's calendar day has advanced past its DayKey.
// The fresh record is not persisted here; the next mutation writes it.
func currentDayState(ctx context.Context, plans repository.PlanRepository, userID string, now time.Time) (*entity.PlanDayState, error) {
	state, err := plans.GetDayState(ctx, userID)
	if err != nil {
		return nil, err
	}
	today := clock.DayKey(now)
	if state == nil || state.DayKey != today {
		return entity.NewPlanDayState(today), nil
	}
	return state, nil
}
