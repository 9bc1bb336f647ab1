package app

import (
	"github.com/sirupsen/logrus"

	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/config"
	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/server"
	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/storage"
	"github.com/zmz-dd/kids-vocab-learning/internal/usecase"
	"github.com/zmz-dd/kids-vocab-learning/pkg/clock"
)

// Container aggregates the application dependencies produced by Wire.
type Container struct {
	Logger *logrus.Logger
	Server *server.Server
	Time   usecase.TimeUsecase
}

// NewStore opens the configured blob store backend.
func NewStore(cfg *config.Config) (storage.Store, func(), error) {
	if cfg.Database.Driver == "memory" {
		return storage.NewMemoryStore(), func() {}, nil
	}
	store, cleanup, err := storage.NewSQLStore(cfg.Database.Driver, cfg.Database.DSN)
	if err != nil {
		return nil, nil, err
	}
	return store, cleanup, nil
}

// NewClock builds the process-wide logical clock.
func NewClock() *clock.Simulated {
	return clock.NewSimulated()
}
