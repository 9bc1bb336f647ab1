package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/zmz-dd/kids-vocab-learning/internal/entity"
	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/storage"
	"github.com/zmz-dd/kids-vocab-learning/internal/repository"
)

type planRepository struct {
	store storage.Store

	mu       sync.Mutex
	settings map[string]*entity.PlanSettings
	days     map[string]*entity.PlanDayState
}

// NewPlanRepository constructs a store-backed plan repository.
func NewPlanRepository(store storage.Store) repository.PlanRepository {
	return &planRepository{
		store:    store,
		settings: make(map[string]*entity.PlanSettings),
		days:     make(map[string]*entity.PlanDayState),
	}
}

func (r *planRepository) GetSettings(ctx context.Context, userID string) (*entity.PlanSettings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.settings[userID]; ok {
		return cached.Clone(), nil
	}

	raw, err := r.store.Load(ctx, planKey(userID))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load plan settings: %w", err)
	}
	var settings entity.PlanSettings
	if err := json.Unmarshal(raw, &settings); err != nil {
		return nil, fmt.Errorf("decode plan settings: %w", err)
	}
	r.settings[userID] = settings.Clone()
	return &settings, nil
}

func (r *planRepository) SaveSettings(ctx context.Context, userID string, settings *entity.PlanSettings) error {
	r.mu.Lock()
	r.settings[userID] = settings.Clone()
	r.mu.Unlock()

	raw, err := json.Marshal(settings)
	if err != nil {
		return persistErr(err)
	}
	if err := r.store.Save(ctx, planKey(userID), raw); err != nil {
		return persistErr(err)
	}
	return nil
}

func (r *planRepository) GetDayState(ctx context.Context, userID string) (*entity.PlanDayState, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if cached, ok := r.days[userID]; ok {
		return cached.Clone(), nil
	}

	raw, err := r.store.Load(ctx, dayStateKey(userID))
	if errors.Is(err, storage.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load day state: %w", err)
	}
	var state entity.PlanDayState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("decode day state: %w", err)
	}
	r.days[userID] = state.Clone()
	return &state, nil
}

func (r *planRepository) SaveDayState(ctx context.Context, userID string, state *entity.PlanDayState) error {
	r.mu.Lock()
	r.days[userID] = state.Clone()
	r.mu.Unlock()

	raw, err := json.Marshal(state)
	if err != nil {
		return persistErr(err)
	}
	if err := r.store.Save(ctx, dayStateKey(userID), raw); err != nil {
		return persistErr(err)
	}
	return nil
}
