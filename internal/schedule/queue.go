package schedule

import (
	"fmt"
	"math/rand/v2"
	"sort"
	"time"

	"github.com/samber/lo"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/pkg/clock"
)

// ScopedWords narrows the catalog to the plan's selected books, preserving
// catalog order.
func ScopedWords(catalog []entity.Word, plan *entity.PlanSettings) []entity.Word {
	if plan == nil {
		return nil
	}
	return lo.Filter(catalog, func(w entity.Word, _ int) bool {
		return plan.InScope(w.BookID)
	})
}

// RemainingQuota is how many new words the user may still draw today:
// the plan's daily limit plus any explicitly appended bonus, minus what was
// already learned, floored at zero.
func RemainingQuota(plan *entity.PlanSettings, day *entity.PlanDayState) int {
	quota := plan.DailyLimit
	if day != nil {
		quota += day.BonusWords - day.NewWordsLearned
	}
	if quota < 0 {
		return 0
	}
	return quota
}

// NewWordBatch returns today's batch of unseen words, capped by the remaining
// daily quota. Words with any progress beyond the implicit "new" state are
// never included.
func NewWordBatch(scoped []entity.Word, progress entity.ProgressMap, plan *entity.PlanSettings, day *entity.PlanDayState) []entity.Word {
	return RawNewWords(scoped, progress, plan.Order, RemainingQuota(plan, day))
}

// RawNewWords is the quota-free variant used for explicit "append more"
// requests: same filter and ordering, arbitrary count, no counter semantics.
func RawNewWords(scoped []entity.Word, progress entity.ProgressMap, order entity.LearnOrder, count int) []entity.Word {
	if count <= 0 {
		return nil
	}
	unseen := lo.Filter(scoped, func(w entity.Word, _ int) bool {
		return progress[w.Word].Untouched()
	})
	switch order {
	case entity.OrderRandom:
		rand.Shuffle(len(unseen), func(i, j int) {
			unseen[i], unseen[j] = unseen[j], unseen[i]
		})
	default:
		sort.SliceStable(unseen, func(i, j int) bool {
			return unseen[i].Word < unseen[j].Word
		})
	}
	if len(unseen) > count {
		unseen = unseen[:count]
	}
	return unseen
}

// ReviewQueue returns the scientifically due words: status "learning" with
// nextReviewAt at or before now, ordered most overdue first. Mastered words
// are never due again.
func ReviewQueue(scoped []entity.Word, progress entity.ProgressMap, now time.Time) []entity.Word {
	due := lo.Filter(scoped, func(w entity.Word, _ int) bool {
		p := progress[w.Word]
		return p != nil && p.Status == entity.StatusLearning && !p.NextReviewAt.After(now)
	})
	sort.SliceStable(due, func(i, j int) bool {
		return progress[due[i].Word].NextReviewAt.Before(progress[due[j].Word].NextReviewAt)
	})
	return due
}

// SameDayQueue returns every scoped word touched during the current calendar
// day, regardless of due time. This backs the "immediate recap" mode, which
// is distinct from scientific due review.
func SameDayQueue(scoped []entity.Word, progress entity.ProgressMap, now time.Time) []entity.Word {
	today := clock.DayKey(now)
	return lo.Filter(scoped, func(w entity.Word, _ int) bool {
		p := progress[w.Word]
		return p != nil && !p.LastInteractionAt.IsZero() && clock.DayKey(p.LastInteractionAt) == today
	})
}

// MistakeFilter narrows the mistake list.
type MistakeFilter string

const (
	MistakesAll MistakeFilter = "all"
	// MistakesToday keeps only words flagged incorrect since day start.
	MistakesToday MistakeFilter = "today"
	// MistakesHighFreq keeps words missed at least twice overall.
	MistakesHighFreq MistakeFilter = "high-freq"
)

const highFreqThreshold = 2

// ParseMistakeFilter validates a wire-level filter string. Empty defaults to
// MistakesAll.
func ParseMistakeFilter(s string) (MistakeFilter, error) {
	switch MistakeFilter(s) {
	case MistakesAll, MistakesToday, MistakesHighFreq:
		return MistakeFilter(s), nil
	case "":
		return MistakesAll, nil
	}
	return "", fmt.Errorf("%w: mistake filter %q", entity.ErrInvalidArgument, s)
}

// MistakeList returns scoped words with at least one recorded failure,
// descending by error count. Equal counts keep a stable relative order across
// repeated calls on the same state.
func MistakeList(scoped []entity.Word, progress entity.ProgressMap, day *entity.PlanDayState, filter MistakeFilter) []entity.Word {
	missed := lo.Filter(scoped, func(w entity.Word, _ int) bool {
		p := progress[w.Word]
		if p == nil || p.ErrorCount == 0 {
			return false
		}
		switch filter {
		case MistakesToday:
			return day.HasMistake(w.Word)
		case MistakesHighFreq:
			return p.ErrorCount >= highFreqThreshold
		default:
			return true
		}
	})
	sort.SliceStable(missed, func(i, j int) bool {
		return progress[missed[i].Word].ErrorCount > progress[missed[j].Word].ErrorCount
	})
	return missed
}

// QuizRange selects the pool a test draws from.
type QuizRange string

const (
	QuizAllLearned    QuizRange = "all-learned"
	QuizTodayLearned  QuizRange = "today-learned"
	QuizBook          QuizRange = "book"
	QuizAllMistakes   QuizRange = "all-mistakes"
	QuizTodayMistakes QuizRange = "today-mistakes"
)

// ParseQuizRange validates a wire-level range string.
func ParseQuizRange(s string) (QuizRange, error) {
	switch QuizRange(s) {
	case QuizAllLearned, QuizTodayLearned, QuizBook, QuizAllMistakes, QuizTodayMistakes:
		return QuizRange(s), nil
	}
	return "", fmt.Errorf("%w: quiz range %q", entity.ErrInvalidArgument, s)
}

// QuizPool assembles the candidate words for a test over the given range.
// The bookID argument only applies to QuizBook.
func QuizPool(scoped []entity.Word, progress entity.ProgressMap, day *entity.PlanDayState, rng QuizRange, bookID string, now time.Time) []entity.Word {
	switch rng {
	case QuizAllLearned:
		return lo.Filter(scoped, func(w entity.Word, _ int) bool {
			p := progress[w.Word]
			return p != nil && p.Status != entity.StatusNew
		})
	case QuizTodayLearned:
		return SameDayQueue(scoped, progress, now)
	case QuizBook:
		return lo.Filter(scoped, func(w entity.Word, _ int) bool {
			return w.BookID == bookID
		})
	case QuizAllMistakes:
		return MistakeList(scoped, progress, day, MistakesAll)
	case QuizTodayMistakes:
		return MistakeList(scoped, progress, day, MistakesToday)
	default:
		return scoped
	}
}
