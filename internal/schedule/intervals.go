// Package schedule holds the pure scheduling core of the learning engine:
// the spaced-repetition interval table, the word-progress state machine, and
// the queue builders. Nothing in this package reads the wall clock or touches
// storage; callers pass state in and an explicit "now".
package schedule

import "time"

// IntervalTable is the ordered sequence of delays before a word becomes due
// again after a successful outcome at each stage. The table length defines the
// number of stages to mastery; it is configuration, not computed.
type IntervalTable []time.Duration

// DefaultIntervals is the stock Ebbinghaus-style table: two same-day recaps,
// then roughly doubling day intervals out to two weeks.
func DefaultIntervals() IntervalTable {
	return IntervalTable{
		5 * time.Minute,
		30 * time.Minute,
		12 * time.Hour,
		24 * time.Hour,
		48 * time.Hour,
		96 * time.Hour,
		7 * 24 * time.Hour,
		15 * 24 * time.Hour,
	}
}

// TerminalStage is the stage index at which a word is mastered.
func (t IntervalTable) TerminalStage() int { return len(t) }

// At returns the delay for the given stage, clamping out-of-range stages to
// the table bounds.
func (t IntervalTable) At(stage int) time.Duration {
	if len(t) == 0 {
		return 0
	}
	if stage < 0 {
		stage = 0
	}
	if stage >= len(t) {
		stage = len(t) - 1
	}
	return t[stage]
}
