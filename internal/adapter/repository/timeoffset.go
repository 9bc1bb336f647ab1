package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/storage"
	"github.com/zmz-dd/kids-vocab-learning/internal/repository"
)

type timeOffsetRepository struct {
	store storage.Store
}

// NewTimeOffsetRepository constructs the store-backed clock-offset repository.
func NewTimeOffsetRepository(store storage.Store) repository.TimeOffsetRepository {
	return &timeOffsetRepository{store: store}
}

func (r *timeOffsetRepository) Offset(ctx context.Context) (time.Duration, bool, error) {
	raw, err := r.store.Load(ctx, timeOffsetKey)
	if errors.Is(err, storage.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("load time offset: %w", err)
	}
	ns, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("decode time offset: %w", err)
	}
	return time.Duration(ns), true, nil
}

func (r *timeOffsetRepository) SaveOffset(ctx context.Context, offset time.Duration) error {
	raw := []byte(strconv.FormatInt(int64(offset), 10))
	if err := r.store.Save(ctx, timeOffsetKey, raw); err != nil {
		return persistErr(err)
	}
	return nil
}

func (r *timeOffsetRepository) ClearOffset(ctx context.Context) error {
	if err := r.store.Delete(ctx, timeOffsetKey); err != nil {
		return persistErr(err)
	}
	return nil
}
