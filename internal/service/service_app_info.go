package service

import (
	"context"

	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/models"
)

type appInfoService struct {
	appVersion string
	build      models.AppBuildInfo

	logger *logger.Logger
}

// NewAppInfoService reports cfg.Version as the application version. The
// linker-injected build info fills the date and commit of /api/version.
func NewAppInfoService(cfg config.ServerApp, build models.AppBuildInfo, logger *logger.Logger) (AppInfoService, error) {
	if cfg.Version == "" {
		return nil, ErrVersionIsNotSpecified
	}

	build.Version = cfg.Version

	return &appInfoService{
		appVersion: cfg.Version,
		build:      build,
		logger:     logger,
	}, nil
}

func (s *appInfoService) GetAppVersion(ctx context.Context) string {
	return s.appVersion
}

func (s *appInfoService) GetBuildInfo(ctx context.Context) models.AppBuildInfo {
	return s.build
}
