package config

import "time"

// Default values applied when no source sets a field.
const (
	DefaultServerAddress    = "localhost:8080"
	DefaultRequestTimeout   = 15 * time.Second
	DefaultShutdownTimeout  = 10 * time.Second
	DefaultTokenIssuer      = "hi-time"
	DefaultTokenDuration    = 24 * time.Hour
	DefaultDebounce         = 5 * time.Second
	DefaultSettingsDebounce = 30 * time.Second
	DefaultFlushTimeout     = 5 * time.Second
	DefaultBackupDir        = "backups"
	DefaultBackupRetries    = 3
	DefaultBackupBackoff    = time.Second
)

// DefaultLookbacks are the incremental backup windows per table.
func DefaultLookbacks() map[string]time.Duration {
	day := 24 * time.Hour
	return map[string]time.Duration{
		"users":    30 * day,
		"weeks":    14 * day,
		"settings": 30 * day,
		"goals":    30 * day,
		"plans":    30 * day,
		"shipping": 7 * day,
		"reviews":  30 * day,
		"memories": 30 * day,
	}
}

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			TokenIssuer:   DefaultTokenIssuer,
			TokenDuration: DefaultTokenDuration,
			Version:       "dev",
			LogLevel:      "debug",
		},
		Server: Server{
			HTTPAddress:     DefaultServerAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Client: Client{
			CacheDSN: "hitime-cache.db",
			LogFile:  "hitime-client.log",
		},
		Sync: Sync{
			Debounce:         DefaultDebounce,
			SettingsDebounce: DefaultSettingsDebounce,
			FlushTimeout:     DefaultFlushTimeout,
		},
		Backup: Backup{
			Dir:         DefaultBackupDir,
			Retries:     DefaultBackupRetries,
			BaseBackoff: DefaultBackupBackoff,
			Lookbacks:   DefaultLookbacks(),
		},
	}
}
