// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/hex"
	"fmt"
	"time"

	"github.com/rs/zerolog"
)

// validate checks the rules shared by every binary on the merged
// [StructuredConfig]. Role-specific requirements live in the views.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			return fmt.Errorf("%w: %q", ErrInvalidLogLevel, cfg.App.LogLevel)
		}
	}

	if cfg.Backup.EncryptionKey != "" {
		key, err := hex.DecodeString(cfg.Backup.EncryptionKey)
		if err != nil || len(key) != 32 {
			return fmt.Errorf("%w: encryption key must be 64 hex characters", ErrInvalidBackupConfigs)
		}
	}

	for table, lookback := range cfg.Backup.Lookbacks {
		if lookback <= 0 {
			return fmt.Errorf("%w: lookback of %q must be positive", ErrInvalidBackupConfigs, table)
		}
	}

	return nil
}

// ServerApp holds the token and logging settings of the REST server.
type ServerApp struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
	Version       string
	LogLevel      string
}

// ServerConfig is the validated configuration of cmd/server.
type ServerConfig struct {
	App     ServerApp
	Storage Storage
	Server  Server
}

// GetServerConfig builds the server view from args and the environment.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			TokenSignKey:  cfg.App.TokenSignKey,
			TokenIssuer:   cfg.App.TokenIssuer,
			TokenDuration: cfg.App.TokenDuration,
			Version:       cfg.App.Version,
			LogLevel:      cfg.App.LogLevel,
		},
		Storage: cfg.Storage,
		Server:  cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}

func (cfg *ServerConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.App.TokenSignKey == "" || cfg.App.TokenIssuer == "" || cfg.App.TokenDuration <= 0 {
		return fmt.Errorf("%w: token sign key, issuer and duration are required", ErrInvalidAppConfigs)
	}

	return nil
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the server base URL or host:port.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file of the cache. Empty keeps the cache in memory.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientConfig is the validated configuration of cmd/client.
type ClientConfig struct {
	Adapter  ClientAdapter
	Storage  ClientStorage
	Sync     Sync
	LogFile  string
	LogLevel string
	Version  string
}

// GetClientConfig builds the client view from args and the environment.
// A cache DSN of "memory" selects the in-process cache.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(args)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	dsn := cfg.Client.CacheDSN
	if dsn == "memory" {
		dsn = ""
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage:  ClientStorage{DB: ClientDB{DSN: dsn}},
		Sync:     cfg.Sync,
		LogFile:  cfg.Client.LogFile,
		LogLevel: cfg.App.LogLevel,
		Version:  cfg.App.Version,
	}

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) validate() error {
	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Sync.Debounce <= 0 || cfg.Sync.SettingsDebounce <= 0 || cfg.Sync.FlushTimeout <= 0 {
		return ErrInvalidSyncConfigs
	}

	return nil
}

// BackupConfig is the validated configuration of the backup job.
type BackupConfig struct {
	Storage  Storage
	Backup   Backup
	LogLevel string
}

// GetBackupConfig builds the backup view from the environment and the
// optional config file at configPath. Command flags are owned by cobra and
// applied by the caller.
func GetBackupConfig(configPath string) (*BackupConfig, error) {
	cfg, err := newConfigBuilder().
		withConfigPath(configPath).
		withEnv().
		withFile().
		withDefaults().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	backupCfg := &BackupConfig{
		Storage:  cfg.Storage,
		Backup:   cfg.Backup,
		LogLevel: cfg.App.LogLevel,
	}

	return backupCfg, backupCfg.validate()
}

func (cfg *BackupConfig) validate() error {
	if cfg.Storage.DB.DSN == "" {
		return fmt.Errorf("%w: database DSN is required", ErrInvalidStorageConfigs)
	}

	if cfg.Backup.Dir == "" || cfg.Backup.Retries < 0 || cfg.Backup.BaseBackoff <= 0 {
		return fmt.Errorf("%w: dir, retries and base backoff are required", ErrInvalidBackupConfigs)
	}

	return nil
}
