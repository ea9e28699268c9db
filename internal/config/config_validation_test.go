package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     StructuredConfig
		wantErr error
	}{
		{name: "empty is valid", cfg: StructuredConfig{}},
		{name: "known log level", cfg: StructuredConfig{App: App{LogLevel: "info"}}},
		{
			name:    "unknown log level",
			cfg:     StructuredConfig{App: App{LogLevel: "loud"}},
			wantErr: ErrInvalidLogLevel,
		},
		{
			name: "valid encryption key",
			cfg:  StructuredConfig{Backup: Backup{EncryptionKey: strings.Repeat("ab", 32)}},
		},
		{
			name:    "short encryption key",
			cfg:     StructuredConfig{Backup: Backup{EncryptionKey: "abcd"}},
			wantErr: ErrInvalidBackupConfigs,
		},
		{
			name:    "non hex encryption key",
			cfg:     StructuredConfig{Backup: Backup{EncryptionKey: strings.Repeat("zz", 32)}},
			wantErr: ErrInvalidBackupConfigs,
		},
		{
			name:    "negative lookback",
			cfg:     StructuredConfig{Backup: Backup{Lookbacks: map[string]time.Duration{"weeks": -time.Hour}}},
			wantErr: ErrInvalidBackupConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGetServerConfig(t *testing.T) {
	clearEnvVars(t)

	_, err := GetServerConfig(nil)
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)

	_, err = GetServerConfig([]string{"-d", "postgres://localhost/hitime"})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)

	cfg, err := GetServerConfig([]string{
		"-d", "postgres://localhost/hitime",
		"-token-sign-key", "secret",
		"-a", ":9000",
	})
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultTokenIssuer, cfg.App.TokenIssuer)
	assert.Equal(t, DefaultTokenDuration, cfg.App.TokenDuration)
}

func TestGetClientConfig(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig([]string{"-cache", "memory", "-server", "http://hi-time.local"})
	require.NoError(t, err)

	assert.Empty(t, cfg.Storage.DB.DSN)
	assert.Equal(t, "http://hi-time.local", cfg.Adapter.HTTPAddress)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDebounce, cfg.Sync.Debounce)
	assert.Equal(t, DefaultSettingsDebounce, cfg.Sync.SettingsDebounce)
	assert.False(t, cfg.Sync.ShippingInline)
}

func TestGetClientConfig_DefaultCacheFile(t *testing.T) {
	clearEnvVars(t)

	cfg, err := GetClientConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "hitime-cache.db", cfg.Storage.DB.DSN)
}

func TestGetBackupConfig(t *testing.T) {
	clearEnvVars(t)

	_, err := GetBackupConfig("")
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)

	path := writeTempConfig(t, "backup-*.toml", `
[storage.db]
dsn = "postgres://localhost/hitime"

[backup]
dir = "/srv/backups"
retries = 2
`)

	cfg, err := GetBackupConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/backups", cfg.Backup.Dir)
	assert.Equal(t, 2, cfg.Backup.Retries)
	assert.Equal(t, DefaultBackupBackoff, cfg.Backup.BaseBackoff)
	assert.Len(t, cfg.Backup.Lookbacks, len(DefaultLookbacks()))
}
