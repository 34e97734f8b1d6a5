package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"
	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Config holds runtime parameters for the service.
// Zero values mean "unspecified" and are replaced by WithDefaults.
type Config struct {
	Addr      string `json:"addr" yaml:"addr" toml:"addr"`
	ModelsDir string `json:"models_dir" yaml:"models_dir" toml:"models_dir"`
	LogLevel  string `json:"log_level" yaml:"log_level" toml:"log_level" validate:"omitempty,oneof=trace debug info warn error off"`
	LogFormat string `json:"log_format" yaml:"log_format" toml:"log_format" validate:"omitempty,oneof=json console"`

	MaxBodyBytes           int64 `json:"max_body_bytes" yaml:"max_body_bytes" toml:"max_body_bytes" validate:"gte=0"`
	PredictTimeoutSeconds  int   `json:"predict_timeout_seconds" yaml:"predict_timeout_seconds" toml:"predict_timeout_seconds" validate:"gte=0"`
	ShutdownTimeoutSeconds int   `json:"shutdown_timeout_seconds" yaml:"shutdown_timeout_seconds" toml:"shutdown_timeout_seconds" validate:"gte=0"`

	Store StoreConfig `json:"store" yaml:"store" toml:"store"`
	CORS  CORSConfig  `json:"cors" yaml:"cors" toml:"cors"`
}

// StoreConfig selects where prediction records go.
type StoreConfig struct {
	// Backend: mongo, sqlite, badger, memory or none. Empty means mongo when
	// MongoURI is set, none otherwise.
	Backend    string `json:"backend" yaml:"backend" toml:"backend" validate:"omitempty,oneof=mongo sqlite badger memory none"`
	MongoURI   string `json:"mongo_uri" yaml:"mongo_uri" toml:"mongo_uri"`
	Database   string `json:"database" yaml:"database" toml:"database"`
	Collection string `json:"collection" yaml:"collection" toml:"collection"`
	// Path is the sqlite file or badger directory.
	Path string `json:"path" yaml:"path" toml:"path"`

	WriteTimeoutMS         int `json:"write_timeout_ms" yaml:"write_timeout_ms" toml:"write_timeout_ms" validate:"gte=0"`
	BreakerFailures        int `json:"breaker_failures" yaml:"breaker_failures" toml:"breaker_failures" validate:"gte=0"`
	BreakerCooldownSeconds int `json:"breaker_cooldown_seconds" yaml:"breaker_cooldown_seconds" toml:"breaker_cooldown_seconds" validate:"gte=0"`
}

// CORSConfig controls cross-origin access. CORS is on for every origin
// unless disabled.
type CORSConfig struct {
	Disabled bool     `json:"disabled" yaml:"disabled" toml:"disabled"`
	Origins  []string `json:"origins" yaml:"origins" toml:"origins"`
}

// Load reads a configuration file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (Config, error) {
	var cfg Config
	if path == "" {
		return cfg, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".json":
		if err := json.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	case ".toml":
		if err := toml.Unmarshal(b, &cfg); err != nil {
			return cfg, err
		}
	default:
		return cfg, fmt.Errorf("unsupported config extension: %s", ext)
	}
	return cfg, nil
}
