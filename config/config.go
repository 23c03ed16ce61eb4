package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"fleetpredict/core/metrics"
	"fleetpredict/core/rules"
)

// Config is the root configuration for the prediction service.
type Config struct {
	Rules   rules.Config   `json:"rules"`
	Metrics metrics.Config `json:"metrics"`
}

// Default returns a configuration with all defaults applied and no sinks.
func Default() *Config {
	var cfg Config
	cfg.Rules.SetDefaults()
	return &cfg
}

// Load reads the configuration file at path. JSON and YAML are supported,
// selected by extension. Environment variables prefixed with FP_ override
// file values, with __ separating nesting levels.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("FP_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "fp_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Rules.SetDefaults()
	if err := cfg.Rules.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
