package entity

import "time"

// TestRecord is one append-only test-history entry. Records are never mutated
// after creation; they exist for history display only.
type TestRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Scope     string    `json:"scope"`
	WordCount int       `json:"word_count"`
	Score     int       `json:"score"`
	Missed    []string  `json:"missed,omitempty"`
}

// Clone returns a copy safe to hand across the repository boundary.
func (r *TestRecord) Clone() *TestRecord {
	if r == nil {
		return nil
	}
	copy := *r
	copy.Missed = append([]string(nil), r.Missed...)
	return &copy
}
