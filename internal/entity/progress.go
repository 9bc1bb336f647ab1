package entity

import (
	"fmt"
	"time"
)

// WordStatus tracks where a word sits in the learning lifecycle.
type WordStatus string

const (
	StatusNew      WordStatus = "new"
	StatusLearning WordStatus = "learning"
	StatusMastered WordStatus = "mastered"
)

// Valid reports whether the status is one of the known lifecycle values.
func (s WordStatus) Valid() bool {
	switch s {
	case StatusNew, StatusLearning, StatusMastered:
		return true
	}
	return false
}

// Outcome is the result of a single learning or review interaction.
type Outcome string

const (
	OutcomeKnow     Outcome = "know"
	OutcomeDontKnow Outcome = "dont-know"
	// OutcomeSkip means "I already know this": masters the word immediately.
	OutcomeSkip Outcome = "skip"
)

// ParseOutcome validates a wire-level outcome string.
func ParseOutcome(s string) (Outcome, error) {
	switch Outcome(s) {
	case OutcomeKnow, OutcomeDontKnow, OutcomeSkip:
		return Outcome(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidOutcome, s)
}

// MasteredSentinel is the nextReviewAt value for mastered words: effectively
// "never due again" for any clock value the engine will ever see.
var MasteredSentinel = time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)

// WordProgress is the per-user mastery state of one word. A word with no
// record is implicitly StatusNew; the engine treats "absent" and
// "present-but-untouched" identically.
type WordProgress struct {
	Status            WordStatus `json:"status"`
	Stage             int        `json:"stage"`
	NextReviewAt      time.Time  `json:"next_review_at"`
	LastInteractionAt time.Time  `json:"last_interaction_at"`
	FirstLearnedAt    time.Time  `json:"first_learned_at,omitempty"`
	ErrorCount        int        `json:"error_count"`
}

// NewWordProgress returns the implicit zero state of an untouched word.
func NewWordProgress() *WordProgress {
	return &WordProgress{Status: StatusNew}
}

// Untouched reports whether the record is indistinguishable from no record.
func (p *WordProgress) Untouched() bool {
	return p == nil || (p.Status == StatusNew && p.Stage == 0 && p.LastInteractionAt.IsZero())
}

// Clone returns a copy safe to hand across the repository boundary.
func (p *WordProgress) Clone() *WordProgress {
	if p == nil {
		return nil
	}
	copy := *p
	return &copy
}

// ProgressMap holds all of one user's word progress, keyed by word text.
type ProgressMap map[string]*WordProgress

// Clone deep-copies the map so callers cannot alias repository state.
func (m ProgressMap) Clone() ProgressMap {
	out := make(ProgressMap, len(m))
	for word, p := range m {
		out[word] = p.Clone()
	}
	return out
}
