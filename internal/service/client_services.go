package service

import (
	"context"

	"github.com/jeremy-dai/hi-time-sub000/internal/adapter"
	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/internal/syncer"
	"github.com/jeremy-dai/hi-time-sub000/internal/validators"
)

type ClientServices struct {
	AuthService     ClientAuthService
	WeekService     ClientWeekService
	SettingsService ClientSettingsService
	PlanService     ClientPlanService
	ShippingService ClientShippingService
	ReviewService   ClientReviewService
	MemoriesService ClientMemoriesService
	GoalService     ClientGoalService
	HealthJob       ClientHealthJob

	// Registry holds every engine opened through the services above.
	Registry *syncer.Registry

	deps *clientDeps
}

func NewClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.Sync, logger *logger.Logger) *ClientServices {
	return newClientServices(storages, serverAdapter, cfg, syncer.RealClock(), logger)
}

func newClientServices(storages *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.Sync, clock syncer.Clock, logger *logger.Logger) *ClientServices {
	validator := validators.NewResourceValidator()
	registry := syncer.NewRegistry(logger)

	authSvc := newClientAuthService(storages.Sessions, serverAdapter, validator, logger)
	serverAdapter.SetTokenSource(authSvc)

	deps := &clientDeps{
		adapter:  serverAdapter,
		cache:    store.NewScopedCache(storages.Cache, authSvc.owner),
		registry: registry,
		clock:    clock,
		cfg:      cfg,
		logger:   logger,
	}

	return &ClientServices{
		AuthService:     authSvc,
		WeekService:     newClientWeekService(deps),
		SettingsService: newClientSettingsService(deps),
		PlanService:     newClientPlanService(deps, validator),
		ShippingService: newClientShippingService(deps),
		ReviewService:   newClientReviewService(deps),
		MemoriesService: newClientMemoriesService(deps),
		GoalService:     NewClientGoalService(serverAdapter, validator, logger),
		HealthJob:       NewClientHealthJob(serverAdapter, registry, logger),
		Registry:        registry,
		deps:            deps,
	}
}

// SignOut closes every engine of the signed-in user, waiting for the final
// flushes, then clears the session. The next Open of any resource mounts a
// fresh engine. Changes that could not be pushed stay in the cache namespace
// of the user who made them.
func (s *ClientServices) SignOut(ctx context.Context) error {
	s.HealthJob.Stop()
	s.Registry.CloseAll()
	if s.deps != nil {
		s.deps.forgetEngines()
	}
	return s.AuthService.Logout(ctx)
}

// Close stops the health job, then closes every engine and waits for the
// final flushes.
func (s *ClientServices) Close() {
	s.HealthJob.Stop()
	s.Registry.CloseAll()
}
