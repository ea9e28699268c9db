package service

import (
	"fmt"

	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/crypto"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/internal/store"
	"github.com/jeremy-dai/hi-time-sub000/internal/validators"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

type Services struct {
	AuthService     AuthService
	ResourceService ResourceService
	AppInfoService  AppInfoService
}

func NewServices(storages *store.Storages, cfg config.ServerApp, build models.AppBuildInfo, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg, build, logger)
	if err != nil {
		return nil, fmt.Errorf("app info service: %w", err)
	}

	resources := NewResourceService(storages.ResourceRepository, logger)
	resources = NewResourceValidationService(validators.NewResourceValidator(), logger).Wrap(resources)

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, crypto.NewPasswordHasher(), cfg, logger),
		ResourceService: resources,
		AppInfoService:  appInfo,
	}, nil
}

// ResourceServiceWrapper defines middleware composition for ResourceService.
// Implementations wrap an existing ResourceService to add behavior such as
// validation.
type ResourceServiceWrapper interface {
	Wrap(ResourceService) ResourceService // returns a decorated ResourceService applying additional behavior
}
