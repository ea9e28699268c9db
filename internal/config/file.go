package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Duration is a time.Duration that decodes from a string such as "30s" in
// every supported config file format.
type Duration time.Duration

// UnmarshalText implements encoding.TextUnmarshaler (TOML).
func (d *Duration) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = 0
		return nil
	}

	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}

	*d = Duration(parsed)
	return nil
}

// UnmarshalJSON accepts a duration string.
func (d *Duration) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}

	return d.UnmarshalText([]byte(s))
}

// UnmarshalYAML accepts a duration scalar.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	return d.UnmarshalText([]byte(value.Value))
}

// fileConfig mirrors StructuredConfig in the on-disk layout.
type fileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key" toml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer" toml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration" toml:"token_duration"`
		Version       string   `json:"version" yaml:"version" toml:"version"`
		LogLevel      string   `json:"log_level" yaml:"log_level" toml:"log_level"`
	} `json:"app" yaml:"app" toml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn" toml:"dsn"`
		} `json:"db" yaml:"db" toml:"db"`
	} `json:"storage" yaml:"storage" toml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address" toml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout" toml:"shutdown_timeout"`
	} `json:"server" yaml:"server" toml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address" toml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout" toml:"request_timeout"`
	} `json:"adapter" yaml:"adapter" toml:"adapter"`

	Client struct {
		CacheDSN string `json:"cache_dsn" yaml:"cache_dsn" toml:"cache_dsn"`
		LogFile  string `json:"log_file" yaml:"log_file" toml:"log_file"`
	} `json:"client" yaml:"client" toml:"client"`

	Sync struct {
		Debounce         Duration `json:"debounce" yaml:"debounce" toml:"debounce"`
		SettingsDebounce Duration `json:"settings_debounce" yaml:"settings_debounce" toml:"settings_debounce"`
		FlushTimeout     Duration `json:"flush_timeout" yaml:"flush_timeout" toml:"flush_timeout"`
		ShippingInline   bool     `json:"shipping_inline" yaml:"shipping_inline" toml:"shipping_inline"`
	} `json:"sync" yaml:"sync" toml:"sync"`

	Backup struct {
		Dir           string              `json:"dir" yaml:"dir" toml:"dir"`
		EncryptionKey string              `json:"encryption_key" yaml:"encryption_key" toml:"encryption_key"`
		Retries       int                 `json:"retries" yaml:"retries" toml:"retries"`
		BaseBackoff   Duration            `json:"base_backoff" yaml:"base_backoff" toml:"base_backoff"`
		Lookbacks     map[string]Duration `json:"lookbacks" yaml:"lookbacks" toml:"lookbacks"`
	} `json:"backup" yaml:"backup" toml:"backup"`
}

// parseFile reads the config file at path and decodes it according to its
// extension.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &fc)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &fc)
	case ".toml":
		err = toml.Unmarshal(data, &fc)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	return fc.toStructured(), nil
}

func (fc *fileConfig) toStructured() *StructuredConfig {
	cfg := &StructuredConfig{
		App: App{
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			Version:       fc.App.Version,
			LogLevel:      fc.App.LogLevel,
		},
		Storage: Storage{
			DB: DB{DSN: fc.Storage.DB.DSN},
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
		},
		Client: Client{
			CacheDSN: fc.Client.CacheDSN,
			LogFile:  fc.Client.LogFile,
		},
		Sync: Sync{
			Debounce:         time.Duration(fc.Sync.Debounce),
			SettingsDebounce: time.Duration(fc.Sync.SettingsDebounce),
			FlushTimeout:     time.Duration(fc.Sync.FlushTimeout),
			ShippingInline:   fc.Sync.ShippingInline,
		},
		Backup: Backup{
			Dir:           fc.Backup.Dir,
			EncryptionKey: fc.Backup.EncryptionKey,
			Retries:       fc.Backup.Retries,
			BaseBackoff:   time.Duration(fc.Backup.BaseBackoff),
		},
	}

	if len(fc.Backup.Lookbacks) > 0 {
		cfg.Backup.Lookbacks = make(map[string]time.Duration, len(fc.Backup.Lookbacks))
		for table, d := range fc.Backup.Lookbacks {
			cfg.Backup.Lookbacks[table] = time.Duration(d)
		}
	}

	return cfg
}
