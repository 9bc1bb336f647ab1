// Package storage implements the blob store the engine persists through.
// The contract is deliberately tiny: load, save, delete, and prefix listing
// over opaque values. Everything above this layer is storage agnostic.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// Store is the key/value blob contract.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	// Keys lists every stored key with the given prefix, in unspecified order.
	Keys(ctx context.Context, prefix string) ([]string, error)
}
