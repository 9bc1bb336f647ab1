package entity

import (
	"time"

	"github.com/samber/lo"
)

// PacingMode selects which pacing field of a plan is authoritative.
type PacingMode string

const (
	// PaceByDailyCount: dailyLimit is authoritative, targetDays is derived.
	PaceByDailyCount PacingMode = "daily-count"
	// PaceByTargetDays: targetDays is authoritative, dailyLimit is derived.
	PaceByTargetDays PacingMode = "target-days"
)

// LearnOrder determines the draw order of new-word batches.
type LearnOrder string

const (
	OrderAlphabetical LearnOrder = "alphabetical"
	OrderRandom       LearnOrder = "random"
)

// PlanSettings is a user's active learning configuration. Exactly one of
// DailyLimit/TargetDays is authoritative depending on PacingMode; the other is
// recomputed whenever scope or the authoritative value changes.
type PlanSettings struct {
	ID            string     `json:"id"`
	CreatedAt     time.Time  `json:"created_at"`
	SelectedBooks []string   `json:"selected_books"`
	PacingMode    PacingMode `json:"pacing_mode"`
	DailyLimit    int        `json:"daily_limit"`
	TargetDays    int        `json:"target_days,omitempty"`
	Order         LearnOrder `json:"order"`
}

// Validate checks the invariants the plan manager enforces on save.
func (s *PlanSettings) Validate() error {
	if len(s.SelectedBooks) == 0 {
		return ErrInvalidPlanSettings
	}
	switch s.PacingMode {
	case PaceByDailyCount:
		if s.DailyLimit < 1 {
			return ErrInvalidPlanSettings
		}
	case PaceByTargetDays:
		if s.TargetDays < 1 {
			return ErrInvalidPlanSettings
		}
	default:
		return ErrInvalidPlanSettings
	}
	switch s.Order {
	case OrderAlphabetical, OrderRandom, "":
	default:
		return ErrInvalidPlanSettings
	}
	return nil
}

// InScope reports whether the book is selected by this plan.
func (s *PlanSettings) InScope(bookID string) bool {
	return lo.Contains(s.SelectedBooks, bookID)
}

// Clone returns a copy safe to hand across the repository boundary.
func (s *PlanSettings) Clone() *PlanSettings {
	if s == nil {
		return nil
	}
	copy := *s
	copy.SelectedBooks = append([]string(nil), s.SelectedBooks...)
	return &copy
}

// WouldResetPlan reports whether switching from oldBooks to newBooks is a
// destructive reset: true when any previously selected book disappears from
// the new selection. Adding books or changing pacing never resets.
func WouldResetPlan(oldBooks, newBooks []string) bool {
	removed, _ := lo.Difference(oldBooks, newBooks)
	return len(removed) > 0
}

// PlanDayState resets every calendar day. DayKey identifies the calendar day
// (under the logical clock) the counters belong to; a stale record must be
// replaced with a zeroed one, never carried across the boundary.
type PlanDayState struct {
	DayKey          string   `json:"day_key"`
	NewWordsLearned int      `json:"new_words_learned"`
	BonusWords      int      `json:"bonus_words"`
	TodaysMistakes  []string `json:"todays_mistakes"`
}

// NewPlanDayState returns a zeroed record for the given calendar day.
func NewPlanDayState(dayKey string) *PlanDayState {
	return &PlanDayState{DayKey: dayKey}
}

// HasMistake reports whether the word was flagged incorrect since day start.
func (d *PlanDayState) HasMistake(word string) bool {
	return d != nil && lo.Contains(d.TodaysMistakes, word)
}

// AddMistake records a word as missed today, once.
func (d *PlanDayState) AddMistake(word string) {
	if !d.HasMistake(word) {
		d.TodaysMistakes = append(d.TodaysMistakes, word)
	}
}

// Clone returns a copy safe to hand across the repository boundary.
func (d *PlanDayState) Clone() *PlanDayState {
	if d == nil {
		return nil
	}
	copy := *d
	copy.TodaysMistakes = append([]string(nil), d.TodaysMistakes...)
	return &copy
}

// PlanStats is the derived snapshot reported to the caller.
type PlanStats struct {
	TotalScoped    int `json:"total_scoped"`
	Learned        int `json:"learned"`
	Mastered       int `json:"mastered"`
	Remaining      int `json:"remaining"`
	DailyGoal      int `json:"daily_goal"`
	BonusWords     int `json:"bonus_words"`
	EffectiveGoal  int `json:"effective_goal"`
	TodayNewWords  int `json:"today_new_words"`
	DaysSinceStart int `json:"days_since_start"`
	TargetDays     int `json:"target_days"`
}
