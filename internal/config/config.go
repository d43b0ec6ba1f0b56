package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Env var overrides applied after the file is loaded
const (
	EnvConfigPath  = "MSWEEP_CONFIG"
	EnvStorageType = "MSWEEP_STORAGE_TYPE"
	EnvRedisURL    = "MSWEEP_REDIS_URL"
	EnvListenAddr  = "MSWEEP_LISTEN_ADDR"
)

// Preset is a named board difficulty
type Preset struct {
	Height int `yaml:"height"`
	Width  int `yaml:"width"`
	Mines  int `yaml:"mines"`
}

// ServerConfig holds HTTP server settings. Durations are strings in
// time.ParseDuration syntax.
type ServerConfig struct {
	ListenAddr      string `yaml:"listen_addr"`
	ShutdownTimeout string `yaml:"shutdown_timeout"`
}

// StorageConfig selects and configures the storage backend
type StorageConfig struct {
	Type     string `yaml:"type"` // "memory" or "redis"
	RedisURL string `yaml:"redis_url"`
	GameTTL  string `yaml:"game_ttl"`
}

// Config is the full application configuration
type Config struct {
	Server        ServerConfig      `yaml:"server"`
	Storage       StorageConfig     `yaml:"storage"`
	Presets       map[string]Preset `yaml:"presets"`
	DefaultPreset string            `yaml:"default_preset"`
}

// Default returns the configuration used when no file is provided
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			ListenAddr:      ":8080",
			ShutdownTimeout: "10s",
		},
		Storage: StorageConfig{
			Type:    "memory",
			GameTTL: "24h",
		},
		Presets: map[string]Preset{
			"beginner":     {Height: 9, Width: 9, Mines: 10},
			"intermediate": {Height: 16, Width: 16, Mines: 40},
			"expert":       {Height: 16, Width: 30, Mines: 99},
		},
		DefaultPreset: "beginner",
	}
}

// Load reads configuration from the given YAML file, merging it over the
// defaults. An empty path returns the defaults. Environment variables
// override file values either way.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if v := os.Getenv(EnvStorageType); v != "" {
		cfg.Storage.Type = v
	}
	if v := os.Getenv(EnvRedisURL); v != "" {
		cfg.Storage.RedisURL = v
	}
	if v := os.Getenv(EnvListenAddr); v != "" {
		cfg.Server.ListenAddr = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromEnv loads configuration from the path in MSWEEP_CONFIG, or the
// defaults when it is unset
func LoadFromEnv() (*Config, error) {
	return Load(os.Getenv(EnvConfigPath))
}

// GetShutdownTimeout returns the server shutdown timeout as a duration
func (c *Config) GetShutdownTimeout() time.Duration {
	d, err := time.ParseDuration(c.Server.ShutdownTimeout)
	if err != nil {
		return 10 * time.Second
	}
	return d
}

// GetGameTTL returns the stored game expiry as a duration
func (c *Config) GetGameTTL() time.Duration {
	d, err := time.ParseDuration(c.Storage.GameTTL)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

// Validate checks the configuration for internal consistency
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case "memory":
	case "redis":
		if c.Storage.RedisURL == "" {
			return fmt.Errorf("storage.redis_url required when storage.type is redis")
		}
	default:
		return fmt.Errorf("unknown storage.type %q", c.Storage.Type)
	}

	if c.DefaultPreset != "" {
		if _, ok := c.Presets[c.DefaultPreset]; !ok {
			return fmt.Errorf("default_preset %q not defined in presets", c.DefaultPreset)
		}
	}

	for name, p := range c.Presets {
		if p.Height <= 0 || p.Width <= 0 {
			return fmt.Errorf("preset %q has non-positive dimensions", name)
		}
		if p.Mines < 0 || p.Mines > p.Height*p.Width {
			return fmt.Errorf("preset %q mine count out of range", name)
		}
	}

	return nil
}
