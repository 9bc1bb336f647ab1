package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/storage"
	"github.com/zmz-dd/kids-vocab-learning/internal/repository"
)

type progressRepository struct {
	store storage.Store

	mu    sync.Mutex
	cache map[string]entity.ProgressMap
}

// NewProgressRepository constructs a store-backed progress repository.
func NewProgressRepository(store storage.Store) repository.ProgressRepository {
	return &progressRepository{
		store: store,
		cache: make(map[string]entity.ProgressMap),
	}
}

func (r *progressRepository) Load(ctx context.Context, userID string) (entity.ProgressMap, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.cache[userID]; ok {
		return cached.Clone(), nil
	}

	raw, err := r.store.Load(ctx, progressKey(userID))
	if errors.Is(err, storage.ErrNotFound) {
		return entity.ProgressMap{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load progress: %w", err)
	}
	var progress entity.ProgressMap
	if err := json.Unmarshal(raw, &progress); err != nil {
		return nil, fmt.Errorf("decode progress: %w", err)
	}
	r.cache[userID] = progress.Clone()
	return progress, nil
}

func (r *progressRepository) Save(ctx context.Context, userID string, progress entity.ProgressMap) error {
	r.mu.Lock()
	r.cache[userID] = progress.Clone()
	r.mu.Unlock()

	raw, err := json.Marshal(progress)
	if err != nil {
		return persistErr(err)
	}
	if err := r.store.Save(ctx, progressKey(userID), raw); err != nil {
		return persistErr(err)
	}
	return nil
}

func (r *progressRepository) Clear(ctx context.Context, userID string) error {
	r.mu.Lock()
	r.cache[userID] = entity.ProgressMap{}
	r.mu.Unlock()

	if err := r.store.Delete(ctx, progressKey(userID)); err != nil {
		return persistErr(err)
	}
	return nil
}

func (r *progressRepository) Users(ctx context.Context) ([]string, error) {
	keys, err := r.store.Keys(ctx, userPrefix)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	seen := make(map[string]bool)
	var users []string
	for _, key := range keys {
		rest, ok := strings.CutPrefix(key, userPrefix)
		if !ok {
			continue
		}
		userID, ok := strings.CutSuffix(rest, "/progress")
		if !ok || userID == "" || seen[userID] {
			continue
		}
		seen[userID] = true
		users = append(users, userID)
	}
	return users, nil
}
