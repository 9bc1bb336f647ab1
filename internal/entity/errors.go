package entity

import "errors"

// Domain errors for the learning engine. All are recoverable by the caller;
// use errors.Is to check.
var (
	ErrUnknownWord         = errors.New("word not found in catalog scope")
	ErrNoPlanConfigured    = errors.New("no active learning plan configured")
	ErrInvalidPlanSettings = errors.New("invalid plan settings")
	ErrInvalidOutcome      = errors.New("invalid outcome")
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrBookNotFound        = errors.New("book not found")
	ErrDuplicateBook       = errors.New("book already exists")

	// ErrPersistence signals that the in-memory mutation succeeded but the
	// write-through to the store failed. The next successful save writes the
	// full snapshot, so the caller only needs to retry.
	ErrPersistence = errors.New("persistence failure")
)
