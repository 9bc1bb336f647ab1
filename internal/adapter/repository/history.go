package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/samber/lo"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/storage"
	"github.com/zmz-dd/kids-vocab-learning/internal/repository"
)

type historyRepository struct {
	store storage.Store

	mu    sync.Mutex
	cache map[string][]*entity.TestRecord
}

// NewHistoryRepository constructs a store-backed test-history repository.
func NewHistoryRepository(store storage.Store) repository.HistoryRepository {
	return &historyRepository{
		store: store,
		cache: make(map[string][]*entity.TestRecord),
	}
}

func (r *historyRepository) Append(ctx context.Context, userID string, record *entity.TestRecord) error {
	r.mu.Lock()
	records, ok := r.cache[userID]
	r.mu.Unlock()
	if !ok {
		loaded, err := r.load(ctx, userID)
		if err != nil {
			return err
		}
		records = loaded
	}

	records = append(records, record.Clone())

	r.mu.Lock()
	r.cache[userID] = records
	r.mu.Unlock()

	raw, err := json.Marshal(records)
	if err != nil {
		return persistErr(err)
	}
	if err := r.store.Save(ctx, historyKey(userID), raw); err != nil {
		return persistErr(err)
	}
	return nil
}

func (r *historyRepository) List(ctx context.Context, userID string) ([]*entity.TestRecord, error) {
	r.mu.Lock()
	records, ok := r.cache[userID]
	r.mu.Unlock()
	if !ok {
		loaded, err := r.load(ctx, userID)
		if err != nil {
			return nil, err
		}
		records = loaded
		r.mu.Lock()
		r.cache[userID] = records
		r.mu.Unlock()
	}

	out := lo.Map(records, func(rec *entity.TestRecord, _ int) *entity.TestRecord {
		return rec.Clone()
	})
	// Newest first; records are stored in append order.
	lo.Reverse(out)
	return out, nil
}

func (r *historyRepository) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	r.cache[userID] = nil
	r.mu.Unlock()

	if err := r.store.Delete(ctx, historyKey(userID)); err != nil {
		return persistErr(err)
	}
	return nil
}

func (r *historyRepository) load(ctx context.Context, userID string) ([]*entity.TestRecord, error) {
	raw, err := r.store.Load(ctx, historyKey(userID))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load test history: %w", err)
	}
	var records []*entity.TestRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode test history: %w", err)
	}
	return records, nil
}
