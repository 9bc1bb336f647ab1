package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/internal/repository"
	"github.com/zmz-dd/kids-vocab-learning/internal/schedule"
	"github.com/zmz-dd/kids-vocab-learning/pkg/clock"
)

// ReviewMode distinguishes the two review surfaces.
type ReviewMode string

const (
	// ReviewScientific follows the interval table: only due words.
	ReviewScientific ReviewMode = "scientific"
	// ReviewSameDay recaps everything touched today regardless of due time.
	ReviewSameDay ReviewMode = "same-day"
)

// ParseReviewMode validates a wire-level mode string. Empty defaults to
// scientific.
func ParseReviewMode(s string) (ReviewMode, error) {
	switch ReviewMode(s) {
	case ReviewScientific, ReviewSameDay:
		return ReviewMode(s), nil
	case "":
		return ReviewScientific, nil
	}
	return "", fmt.Errorf("%w: review mode %q", entity.ErrInvalidArgument, s)
}

// StudyUsecase is the interaction engine: queue assembly and outcome
// recording. Every method resolves "today" through the injected logical
// clock, so simulated time travel changes queue contents without any
// background job.
type StudyUsecase interface {
	// NewWordBatch returns today's unseen words, capped by the remaining
	// daily quota.
	NewWordBatch(ctx context.Context, userID string) ([]entity.Word, error)
	// RawNewWords is the quota-free preview used by "append more": the next
	// count unseen words in plan order, without touching any counter.
	RawNewWords(ctx context.Context, userID string, count int) ([]entity.Word, error)
	ReviewQueue(ctx context.Context, userID string, mode ReviewMode) ([]entity.Word, error)
	MistakeList(ctx context.Context, userID string, filter schedule.MistakeFilter) ([]entity.Word, error)
	QuizPool(ctx context.Context, userID string, rng schedule.QuizRange, bookID string) ([]entity.Word, error)
	// RecordLearnOutcome applies a first-pass learning interaction.
	RecordLearnOutcome(ctx context.Context, userID, word string, outcome entity.Outcome) error
	// RecordReviewOutcome applies a review interaction. The mode only names
	// the surface the outcome came from; the transition rules are identical.
	RecordReviewOutcome(ctx context.Context, userID, word string, outcome entity.Outcome, mode ReviewMode) error
	// RecordTestOutcome folds a per-word quiz answer into the same state
	// machine: correct behaves like "know", incorrect like "don't know".
	RecordTestOutcome(ctx context.Context, userID, word string, correct bool) error
	// LogTestRecord appends one finished test to the user's history.
	LogTestRecord(ctx context.Context, userID, scope string, wordCount, score int, missed []string) (*entity.TestRecord, error)
	// TestHistory returns past test records, newest first.
	TestHistory(ctx context.Context, userID string) ([]*entity.TestRecord, error)
}

// NewStudyUsecase wires the repositories with the shared logical clock. The
// default interval table applies; tests swap it on the concrete type.
func NewStudyUsecase(
	catalog repository.CatalogRepository,
	progress repository.ProgressRepository,
	plans repository.PlanRepository,
	history repository.HistoryRepository,
	clk clock.Clock,
) StudyUsecase {
	return &studyUsecase{
		catalog:   catalog,
		progress:  progress,
		plans:     plans,
		history:   history,
		clock:     clk,
		intervals: schedule.DefaultIntervals(),
	}
}

type studyUsecase struct {
	catalog   repository.CatalogRepository
	progress  repository.ProgressRepository
	plans     repository.PlanRepository
	history   repository.HistoryRepository
	clock     clock.Clock
	intervals schedule.IntervalTable
}

// session is the loaded per-request view every queue and record path needs.
type session struct {
	plan     *entity.PlanSettings
	scoped   []entity.Word
	progress entity.ProgressMap
	day      *entity.PlanDayState
}

func (u *studyUsecase) load(ctx context.Context, userID string) (*session, error) {
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
	day, err := currentDayState(ctx, u.plans, userID, u.clock.Now())
	if err != nil {
		return nil, err
	}
	return &session{
		plan:     plan,
		scoped:   schedule.ScopedWords(words, plan),
		progress: progress,
		day:      day,
	}, nil
}

func (u *studyUsecase) NewWordBatch(ctx context.Context, userID string) ([]entity.Word, error) {
	s, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return schedule.NewWordBatch(s.scoped, s.progress, s.plan, s.day), nil
}

func (u *studyUsecase) RawNewWords(ctx context.Context, userID string, count int) ([]entity.Word, error) {
	s, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return schedule.RawNewWords(s.scoped, s.progress, s.plan.Order, count), nil
}

func (u *studyUsecase) ReviewQueue(ctx context.Context, userID string, mode ReviewMode) ([]entity.Word, error) {
	s, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	if mode == ReviewSameDay {
		return schedule.SameDayQueue(s.scoped, s.progress, u.clock.Now()), nil
	}
	return schedule.ReviewQueue(s.scoped, s.progress, u.clock.Now()), nil
}

func (u *studyUsecase) MistakeList(ctx context.Context, userID string, filter schedule.MistakeFilter) ([]entity.Word, error) {
	s, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return schedule.MistakeList(s.scoped, s.progress, s.day, filter), nil
}

func (u *studyUsecase) QuizPool(ctx context.Context, userID string, rng schedule.QuizRange, bookID string) ([]entity.Word, error) {
	s, err := u.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return schedule.QuizPool(s.scoped, s.progress, s.day, rng, bookID, u.clock.Now()), nil
}

func (u *studyUsecase) RecordLearnOutcome(ctx context.Context, userID, word string, outcome entity.Outcome) error {
	return u.record(ctx, userID, word, outcome)
}

func (u *studyUsecase) RecordReviewOutcome(ctx context.Context, userID, word string, outcome entity.Outcome, mode ReviewMode) error {
	if _, err := ParseReviewMode(string(mode)); err != nil {
		return err
	}
	return u.record(ctx, userID, word, outcome)
}

func (u *studyUsecase) RecordTestOutcome(ctx context.Context, userID, word string, correct bool) error {
	outcome := entity.OutcomeDontKnow
	if correct {
		outcome = entity.OutcomeKnow
	}
	return u.record(ctx, userID, word, outcome)
}

// record is the single write path for all three surfaces. An empty user id is
// a silent no-op: anonymous interactions are legal and simply not tracked.
// The in-memory mutation always stands; a failed persist surfaces as
// ErrPersistence and the next successful snapshot write self-corrects.
func (u *studyUsecase) record(ctx context.Context, userID, word string, outcome entity.Outcome) error {
	if userID == "" {
		return nil
	}
	word = entity.NormalizeWordText(word)
	known, err := u.inCatalog(ctx, word)
	if err != nil {
		return err
	}
	if !known {
		return fmt.Errorf("%w: %q", entity.ErrUnknownWord, word)
	}

	progress, err := u.progress.Load(ctx, userID)
	if err != nil {
		return err
	}
	p := progress[word]
	if p == nil {
		p = entity.NewWordProgress()
		progress[word] = p
	}

	now := u.clock.Now()
	res := schedule.Apply(p, outcome, u.intervals, now)
	// A failed snapshot write must not stop the counter update; the
	// write-through caches hold the mutation either way. Surface the first
	// error once both writes were attempted.
	saveErr := u.progress.Save(ctx, userID, progress)

	if res.NewlyLearned || res.Mistake {
		day, err := currentDayState(ctx, u.plans, userID, now)
		if err != nil {
			return err
		}
		if res.NewlyLearned {
			day.NewWordsLearned++
		}
		if res.Mistake {
			day.AddMistake(word)
		}
		if err := u.plans.SaveDayState(ctx, userID, day); err != nil && saveErr == nil {
			saveErr = err
		}
	}
	return saveErr
}

func (u *studyUsecase) LogTestRecord(ctx context.Context, userID, scope string, wordCount, score int, missed []string) (*entity.TestRecord, error) {
	if userID == "" {
		return nil, nil
	}
	record := &entity.TestRecord{
		ID:        uuid.NewString(),
		CreatedAt: u.clock.Now(),
		Scope:     scope,
		WordCount: wordCount,
		Score:     score,
		Missed:    append([]string(nil), missed...),
	}
	if err := u.history.Append(ctx, userID, record); err != nil {
		return nil, err
	}
	return record, nil
}

func (u *studyUsecase) TestHistory(ctx context.Context, userID string) ([]*entity.TestRecord, error) {
	return u.history.List(ctx, userID)
}

func (u *studyUsecase) inCatalog(ctx context.Context, word string) (bool, error) {
	words, err := u.catalog.ListWords(ctx)
	if err != nil {
		return false, err
	}
	return lo.ContainsBy(words, func(w entity.Word) bool {
		return w.Word == word
	}), nil
}
