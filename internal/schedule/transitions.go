package schedule

import (
	"time"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/pkg/clock"
)

// Result reports the side effects of applying one outcome, so the caller can
// maintain the daily counters without re-deriving the transition.
type Result struct {
	// NewlyLearned is true when the word's status left "new" on this
	// interaction. The daily new-word counter increments exactly once per
	// such transition; re-presenting the word later the same day never sets
	// this again.
	NewlyLearned bool
	// Mistake is true when the outcome was a failure and the word belongs in
	// today's mistake set.
	Mistake bool
}

// Apply runs the word-progress state machine for a single interaction,
// mutating p in place. First exposure and later-stage transitions follow
// distinct rules on purpose; do not try to unify them.
//
// Failures never make a word due again within the same calendar day: the next
// eligibility is midnight after now, so a failed item cannot reappear in the
// same due-queue pass.
func Apply(p *entity.WordProgress, outcome entity.Outcome, table IntervalTable, now time.Time) Result {
	firstExposure := p.Untouched()
	p.LastInteractionAt = now

	if outcome == entity.OutcomeSkip {
		// "I already know this": master immediately, bypassing the stages.
		master(p, table)
		if firstExposure {
			p.FirstLearnedAt = now
		}
		return Result{NewlyLearned: firstExposure}
	}

	if firstExposure {
		p.Status = entity.StatusLearning
		p.FirstLearnedAt = now
		switch outcome {
		case entity.OutcomeKnow:
			p.Stage = 1
			p.NextReviewAt = now.Add(table.At(p.Stage))
		case entity.OutcomeDontKnow:
			p.Stage = 0
			p.ErrorCount++
			p.NextReviewAt = clock.NextDay(now)
			return Result{NewlyLearned: true, Mistake: true}
		}
		return Result{NewlyLearned: true}
	}

	switch outcome {
	case entity.OutcomeKnow:
		p.Stage++
		if p.Stage >= table.TerminalStage() {
			master(p, table)
			return Result{}
		}
		p.Status = entity.StatusLearning
		p.NextReviewAt = now.Add(table.At(p.Stage))
	case entity.OutcomeDontKnow:
		// A failed review resets the stage but never regresses status to
		// "new"; a mastered word drops back into the learning cycle.
		p.Status = entity.StatusLearning
		p.Stage = 0
		p.ErrorCount++
		p.NextReviewAt = clock.NextDay(now)
		return Result{Mistake: true}
	}
	return Result{}
}

func master(p *entity.WordProgress, table IntervalTable) {
	p.Status = entity.StatusMastered
	p.Stage = table.TerminalStage()
	p.NextReviewAt = entity.MasteredSentinel
}
