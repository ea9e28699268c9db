package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigBuilder_BuildMergesInOrder(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{Sync: Sync{Debounce: time.Second}},
		&StructuredConfig{Sync: Sync{Debounce: 5 * time.Second, FlushTimeout: 2 * time.Second}},
		&StructuredConfig{Backup: Backup{Lookbacks: map[string]time.Duration{"weeks": time.Hour}}},
		&StructuredConfig{Backup: Backup{Lookbacks: map[string]time.Duration{"weeks": 2 * time.Hour, "goals": 3 * time.Hour}}},
	)

	cfg, err := b.build()
	require.NoError(t, err)

	// earlier sources win, later ones only fill gaps
	assert.Equal(t, time.Second, cfg.Sync.Debounce)
	assert.Equal(t, 2*time.Second, cfg.Sync.FlushTimeout)
	assert.Equal(t, map[string]time.Duration{"weeks": time.Hour, "goals": 3 * time.Hour}, cfg.Backup.Lookbacks)
}

func TestConfigBuilder_BuildFailures(t *testing.T) {
	t.Run("earlier step failed", func(t *testing.T) {
		b := newConfigBuilder()
		b.err = assert.AnError

		cfg, err := b.build()
		assert.Nil(t, cfg)
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("merged config is invalid", func(t *testing.T) {
		b := newConfigBuilder()
		b.configs = append(b.configs, &StructuredConfig{App: App{LogLevel: "chatty"}})

		_, err := b.build()
		assert.ErrorIs(t, err, ErrInvalidLogLevel)
	})

	t.Run("unknown flag is kept on the builder", func(t *testing.T) {
		b := newConfigBuilder().withFlags([]string{"-debounce", "1s"})

		assert.Error(t, b.err)
		assert.Empty(t, b.configs)
	})
}

func TestConfigBuilder_WithEnv(t *testing.T) {
	setEnvVars(t, map[string]string{
		"SYNC_DEBOUNCE":    "750ms",
		"CLIENT_CACHE_DSN": "/home/me/.hi-time/cache.db",
	})

	b := newConfigBuilder().withEnv()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 1)
	assert.Equal(t, 750*time.Millisecond, b.configs[0].Sync.Debounce)
	assert.Equal(t, "/home/me/.hi-time/cache.db", b.configs[0].Client.CacheDSN)
}

func TestConfigBuilder_WithFile(t *testing.T) {
	first := writeTempConfig(t, "first-*.yaml", "sync:\n  debounce: 4s\n")
	second := writeTempConfig(t, "second-*.json", `{"sync":{"debounce":"8s"}}`)

	tests := []struct {
		name      string
		err       error
		paths     []string
		wantErr   bool
		wantLen   int
		wantDelay time.Duration
	}{
		{name: "no path is a no-op", paths: []string{""}, wantLen: 1},
		{name: "first non-empty path wins", paths: []string{"", first, second}, wantLen: 4, wantDelay: 4 * time.Second},
		{name: "missing file", paths: []string{"/nonexistent/hitime.yaml"}, wantErr: true, wantLen: 1},
		{name: "earlier failure skips reading", err: assert.AnError, paths: []string{first}, wantErr: true, wantLen: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newConfigBuilder()
			b.err = tt.err
			for _, p := range tt.paths {
				b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: p})
			}

			b.withFile()

			if tt.wantErr {
				assert.Error(t, b.err)
			} else {
				assert.NoError(t, b.err)
			}
			require.Len(t, b.configs, tt.wantLen)
			if tt.wantDelay != 0 {
				assert.Equal(t, tt.wantDelay, b.configs[len(b.configs)-1].Sync.Debounce)
			}
		})
	}
}

func TestConfigBuilder_WithConfigPath(t *testing.T) {
	b := newConfigBuilder().withConfigPath("")
	assert.Empty(t, b.configs)

	b.withConfigPath("/etc/hitime.toml")
	require.Len(t, b.configs, 1)
	assert.Equal(t, "/etc/hitime.toml", b.configs[0].ConfigFilePath)
}

// env > flags > file > defaults
func TestGetStructuredConfig_Priority(t *testing.T) {
	clearEnvVars(t)
	path := writeTempConfig(t, "config-*.yaml", `
app:
  version: file-version
  token_issuer: file-issuer
sync:
  debounce: 9s
`)
	t.Setenv("APP_VERSION", "env-version")

	cfg, err := GetStructuredConfig([]string{
		"-c", path,
		"-token-issuer", "flag-issuer",
	})
	require.NoError(t, err)

	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, "flag-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 9*time.Second, cfg.Sync.Debounce)
	assert.Equal(t, DefaultSettingsDebounce, cfg.Sync.SettingsDebounce)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
}

func TestGetStructuredConfig_LookbacksMergeByKey(t *testing.T) {
	clearEnvVars(t)
	t.Setenv("BACKUP_LOOKBACKS", "shipping:48h")

	cfg, err := GetStructuredConfig(nil)
	require.NoError(t, err)

	assert.Equal(t, 48*time.Hour, cfg.Backup.Lookbacks["shipping"])
	assert.Equal(t, DefaultLookbacks()["weeks"], cfg.Backup.Lookbacks["weeks"])
}

func writeTempConfig(t *testing.T, pattern, content string) string {
	t.Helper()
	f, err := os.CreateTemp(t.TempDir(), pattern)
	require.NoError(t, err)
	_, err = f.WriteString(content)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}
