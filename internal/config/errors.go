package config

import "errors"

// Validation errors returned by the config views when required settings are
// missing or malformed.
var (
	// ErrUnsupportedConfigFormat is returned for config files whose extension
	// is not .json, .yaml, .yml or .toml.
	ErrUnsupportedConfigFormat = errors.New("unsupported config file format")
	// ErrInvalidAddress is returned by the -a flag for a malformed listen
	// address.
	ErrInvalidAddress = errors.New("invalid listen address")
	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
	// ErrInvalidStorageConfigs indicates a missing server database DSN.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidAppConfigs indicates missing token settings.
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidAdapterConfigs indicates a missing server URL or timeout on
	// the client.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidSyncConfigs indicates non-positive debounce intervals.
	ErrInvalidSyncConfigs = errors.New("invalid sync configuration")
	// ErrInvalidBackupConfigs indicates malformed backup settings.
	ErrInvalidBackupConfigs = errors.New("invalid backup configuration")
)
