//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"

	"github.com/zmz-dd/kids-vocab-learning/internal/adapter/httpapi"
	"github.com/zmz-dd/kids-vocab-learning/internal/adapter/repository"
	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/config"
	"github.com/zmz-dd/kids-vocab-learning/internal/infrastructure/server"
	"github.com/zmz-dd/kids-vocab-learning/internal/usecase"
	"github.com/zmz-dd/kids-vocab-learning/pkg/clock"
)

var configSet = wire.NewSet(
	config.Load,
)

var storageSet = wire.NewSet(
	NewStore,
	NewClock,
	wire.Bind(new(clock.Clock), new(*clock.Simulated)),
)

var repositorySet = wire.NewSet(
	repository.NewCatalogRepository,
	repository.NewProgressRepository,
	repository.NewPlanRepository,
	repository.NewHistoryRepository,
	repository.NewTimeOffsetRepository,
)

var usecaseSet = wire.NewSet(
	usecase.NewPlanUsecase,
	usecase.NewStudyUsecase,
	usecase.NewLeaderboardUsecase,
	usecase.NewTimeUsecase,
)

var handlerSet = wire.NewSet(
	httpapi.NewPlanHandler,
	httpapi.NewStudyHandler,
	httpapi.NewSystemHandler,
	wire.Struct(new(httpapi.RouterConfig), "*"),
	httpapi.NewRouter,
)

var serverSet = wire.NewSet(
	server.NewLogger,
	server.NewServer,
)

// Initialize builds the application container using Wire.
func Initialize() (*Container, func(), error) {
	wire.Build(
		configSet,
		storageSet,
		repositorySet,
		usecaseSet,
		handlerSet,
		serverSet,
		wire.Struct(new(Container), "Logger", "Server", "Time"),
	)
	return nil, nil, nil
}
