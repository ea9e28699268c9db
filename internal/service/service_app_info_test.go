package service

import (
	"context"
	"testing"

	"github.com/jeremy-dai/hi-time-sub000/internal/config"
	"github.com/jeremy-dai/hi-time-sub000/internal/logger"
	"github.com/jeremy-dai/hi-time-sub000/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppInfoService_RequiresVersion(t *testing.T) {
	svc, err := NewAppInfoService(config.ServerApp{}, models.NewAppBuildInfo("0.9.0", "", ""), logger.Nop())

	assert.Nil(t, svc)
	assert.ErrorIs(t, err, ErrVersionIsNotSpecified)
}

func TestAppInfoService_ConfiguredVersionWins(t *testing.T) {
	build := models.NewAppBuildInfo("0.9.0", "2026-01-02", "abc123")
	svc, err := NewAppInfoService(config.ServerApp{Version: "v1.4.0-rc.1"}, build, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.Equal(t, "v1.4.0-rc.1", svc.GetAppVersion(ctx))
	assert.Equal(t, models.AppBuildInfo{Version: "v1.4.0-rc.1", Date: "2026-01-02", Commit: "abc123"}, svc.GetBuildInfo(ctx))
}
