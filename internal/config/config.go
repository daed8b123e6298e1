// Package config loads the tmsim configuration file.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/tmsim/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// DefaultPath is the configuration file looked up when none is given.
const DefaultPath = "tmsim.yaml"

// Store backends.
const (
	BackendFile   = "file"
	BackendRedis  = "redis"
	BackendMemory = "memory"
	BackendNone   = "none"
)

// Config is the complete application configuration.
type Config struct {
	Log    LogConfig    `mapstructure:"log"`
	Store  StoreConfig  `mapstructure:"store"`
	Server ServerConfig `mapstructure:"server"`
}

// LogConfig controls the application logger.
type LogConfig struct {
	Level string `mapstructure:"level"`
	// File, when set, receives a JSON copy of every log record.
	File string `mapstructure:"file"`
}

// StoreConfig selects where simulation records are persisted.
type StoreConfig struct {
	Backend string      `mapstructure:"backend"`
	Dir     string      `mapstructure:"dir"`
	Redis   RedisConfig `mapstructure:"redis"`
}

// RedisConfig holds the redis store options.
type RedisConfig struct {
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	Prefix   string        `mapstructure:"prefix"`
	TTL      time.Duration `mapstructure:"ttl"`
}

// ServerConfig holds the options of the HTTP and MCP servers.
type ServerConfig struct {
	Addr         string        `mapstructure:"addr"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	// MaxValue bounds the operands and exact result of a served simulation.
	// 0 disables the bound.
	MaxValue uint64 `mapstructure:"max_value"`
	// MaxCells bounds the length of a tape posted to a server. 0 disables it.
	MaxCells int `mapstructure:"max_cells"`
}

// Limit returns the simulation limit applied by the servers.
func (s ServerConfig) Limit() domain.Limit {
	return domain.Limit{MaxValue: s.MaxValue, MaxCells: s.MaxCells}
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info"},
		Store: StoreConfig{
			Backend: BackendFile,
			Dir:     ".",
			Redis: RedisConfig{
				Addr:   "localhost:6379",
				Prefix: "tmsim:record:",
			},
		},
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			MaxValue:     1 << 16,
			MaxCells:     512,
		},
	}
}

// Load reads a configuration file (YAML or JSON) on top of the defaults.
// A missing file is not an error: the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}

	raw := map[string]any{}
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return cfg, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	if err := decode(raw, &cfg); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

func decode(raw map[string]any, cfg *Config) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           cfg,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(raw); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Validate checks the values that cannot be caught while decoding.
func (c Config) Validate() error {
	switch c.Store.Backend {
	case BackendFile, BackendRedis, BackendMemory, BackendNone:
	default:
		return fmt.Errorf("invalid config: unknown store backend %q", c.Store.Backend)
	}
	if c.Server.MaxCells < 0 {
		return fmt.Errorf("invalid config: negative server max_cells %d", c.Server.MaxCells)
	}
	if c.Store.Redis.TTL < 0 {
		return fmt.Errorf("invalid config: negative redis ttl %s", c.Store.Redis.TTL)
	}
	return nil
}
