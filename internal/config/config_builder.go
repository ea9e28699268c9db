package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder collects configs from every source in priority order and
// merges them once all sources were read.
type configBuilder struct {
	configs []*StructuredConfig
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{configs: make([]*StructuredConfig, 0, 4)}
}

func (b *configBuilder) add(cfg *StructuredConfig, err error) *configBuilder {
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}
	b.configs = append(b.configs, cfg)
	return b
}

// build merges the collected configs; a field set by an earlier source is
// never overwritten by a later one. Lookback maps are merged key by key.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	merged := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(merged, cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}
	return merged, merged.validate()
}

func (b *configBuilder) withEnv() *configBuilder {
	cfg := &StructuredConfig{}
	return b.add(cfg, parseEnv(cfg))
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	return b.add(parseFlags(args))
}

// withConfigPath registers path as if it had been passed with -config.
// The ops CLI uses it because cobra owns its flags.
func (b *configBuilder) withConfigPath(path string) *configBuilder {
	if path == "" {
		return b
	}
	return b.add(&StructuredConfig{ConfigFilePath: path}, nil)
}

// withFile reads the file named by the first source that set one.
func (b *configBuilder) withFile() *configBuilder {
	if b.err != nil {
		return b
	}

	for _, cfg := range b.configs {
		if cfg.ConfigFilePath != "" {
			return b.add(parseFile(cfg.ConfigFilePath))
		}
	}
	return b
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaultConfig(), nil)
}
