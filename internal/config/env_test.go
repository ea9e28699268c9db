package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	tests := []struct {
		name  string
		env   map[string]string
		check func(t *testing.T, cfg *StructuredConfig)
	}{
		{
			name: "server deployment",
			env: map[string]string{
				"CONFIG":                  "/etc/hitime/server.yaml",
				"APP_TOKEN_SIGN_KEY":      "jwt_secret",
				"APP_TOKEN_ISSUER":        "hi-time",
				"APP_TOKEN_DURATION":      "24h",
				"APP_VERSION":             "1.4.0",
				"APP_LOG_LEVEL":           "warn",
				"SERVER_ADDRESS":          "0.0.0.0:8080",
				"SERVER_REQUEST_TIMEOUT":  "30s",
				"SERVER_SHUTDOWN_TIMEOUT": "5s",
				"STORAGE_DB_DATABASE_URI": "postgres://hitime:pass@db/hitime",
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/etc/hitime/server.yaml", cfg.ConfigFilePath)
				assert.Equal(t, App{
					TokenSignKey:  "jwt_secret",
					TokenIssuer:   "hi-time",
					TokenDuration: 24 * time.Hour,
					Version:       "1.4.0",
					LogLevel:      "warn",
				}, cfg.App)
				assert.Equal(t, Server{
					HTTPAddress:     "0.0.0.0:8080",
					RequestTimeout:  30 * time.Second,
					ShutdownTimeout: 5 * time.Second,
				}, cfg.Server)
				assert.Equal(t, "postgres://hitime:pass@db/hitime", cfg.Storage.DB.DSN)
				assert.Equal(t, Client{}, cfg.Client)
			},
		},
		{
			name: "terminal client",
			env: map[string]string{
				"ADAPTER_ADDRESS":         "https://hitime.example.com",
				"ADAPTER_REQUEST_TIMEOUT": "10s",
				"CLIENT_CACHE_DSN":        "/tmp/cache.db",
				"CLIENT_LOG_FILE":         "/tmp/client.log",
				"SYNC_DEBOUNCE":           "1h30m",
				"SYNC_SETTINGS_DEBOUNCE":  "20s",
				"SYNC_FLUSH_TIMEOUT":      "3s",
				"SYNC_SHIPPING_INLINE":    "true",
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, Adapter{HTTPAddress: "https://hitime.example.com", RequestTimeout: 10 * time.Second}, cfg.Adapter)
				assert.Equal(t, Client{CacheDSN: "/tmp/cache.db", LogFile: "/tmp/client.log"}, cfg.Client)
				assert.Equal(t, Sync{
					Debounce:         90 * time.Minute,
					SettingsDebounce: 20 * time.Second,
					FlushTimeout:     3 * time.Second,
					ShippingInline:   true,
				}, cfg.Sync)
				assert.Equal(t, App{}, cfg.App)
				assert.Empty(t, cfg.Storage.DB.DSN)
			},
		},
		{
			name: "backup job",
			env: map[string]string{
				"BACKUP_DIR":          "/var/backups",
				"BACKUP_RETRIES":      "5",
				"BACKUP_BASE_BACKOFF": "2s",
				"BACKUP_LOOKBACKS":    "shipping:48h,weeks:72h",
			},
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, "/var/backups", cfg.Backup.Dir)
				assert.Equal(t, 5, cfg.Backup.Retries)
				assert.Equal(t, 2*time.Second, cfg.Backup.BaseBackoff)
				assert.Equal(t, map[string]time.Duration{
					"shipping": 48 * time.Hour,
					"weeks":    72 * time.Hour,
				}, cfg.Backup.Lookbacks)
				assert.Equal(t, Sync{}, cfg.Sync)
			},
		},
		{
			name: "nothing set",
			check: func(t *testing.T, cfg *StructuredConfig) {
				assert.Equal(t, &StructuredConfig{}, cfg)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setEnvVars(t, tt.env)

			cfg := &StructuredConfig{}
			require.NoError(t, parseEnv(cfg))
			tt.check(t, cfg)
		})
	}
}

func TestParseEnv_Malformed(t *testing.T) {
	for key, value := range map[string]string{
		"APP_TOKEN_DURATION":   "a day",
		"SYNC_SHIPPING_INLINE": "sometimes",
		"BACKUP_RETRIES":       "many",
		"BACKUP_LOOKBACKS":     "shipping=48h",
	} {
		t.Run(key, func(t *testing.T) {
			setEnvVars(t, map[string]string{key: value})

			err := parseEnv(&StructuredConfig{})
			assert.ErrorContains(t, err, "error getting env configs")
		})
	}
}

func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	clearEnvVars(t)
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func clearEnvVars(t *testing.T) {
	t.Helper()
	for _, k := range configEnvKeys {
		if _, ok := os.LookupEnv(k); ok {
			t.Setenv(k, "")
			require.NoError(t, os.Unsetenv(k))
		}
	}
}

var configEnvKeys = []string{
	"CONFIG",
	"APP_TOKEN_SIGN_KEY", "APP_TOKEN_ISSUER", "APP_TOKEN_DURATION", "APP_VERSION", "APP_LOG_LEVEL",
	"SERVER_ADDRESS", "SERVER_REQUEST_TIMEOUT", "SERVER_SHUTDOWN_TIMEOUT",
	"ADAPTER_ADDRESS", "ADAPTER_REQUEST_TIMEOUT",
	"CLIENT_CACHE_DSN", "CLIENT_LOG_FILE",
	"SYNC_DEBOUNCE", "SYNC_SETTINGS_DEBOUNCE", "SYNC_FLUSH_TIMEOUT", "SYNC_SHIPPING_INLINE",
	"BACKUP_DIR", "BACKUP_ENCRYPTION_KEY", "BACKUP_RETRIES", "BACKUP_BASE_BACKOFF", "BACKUP_LOOKBACKS",
	"STORAGE_DB_DATABASE_URI",
}
