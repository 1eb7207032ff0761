package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	defaultListen   = "127.0.0.1:8080"
	defaultLogLevel = "info"
	defaultCacheTTL = 300
)

// Environment variables that override values from the config file.
const (
	EnvListen   = "HISTCAL_LISTEN"
	EnvLogLevel = "HISTCAL_LOG_LEVEL"
	EnvCacheTTL = "HISTCAL_CACHE_TTL"
)

// BasicAuthConfig holds HTTP Basic Auth credentials for the API.
type BasicAuthConfig struct {
	Username string `yaml:"username" json:"username"`
	Password string `yaml:"password" json:"password"`
}

// Config is the top-level application configuration.
type Config struct {
	// Listen is the HTTP listen address for the API.
	Listen string `yaml:"listen" json:"listen"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" json:"log_level"`

	// CacheTTLSeconds bounds how long computed durations are memoised by
	// the API. Zero disables the cache; negative values are reset to the
	// default.
	CacheTTLSeconds int `yaml:"cache_ttl_seconds" json:"cache_ttl_seconds"`

	// BasicAuth, if set with a non-empty username and password, protects
	// every endpoint except /health.
	BasicAuth *BasicAuthConfig `yaml:"basic_auth,omitempty" json:"basic_auth,omitempty"`
}

// DefaultConfig returns an in-memory default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:          defaultListen,
		LogLevel:        defaultLogLevel,
		CacheTTLSeconds: defaultCacheTTL,
	}
}

// Normalize fills in missing values with defaults so that partially
// written files still behave.
func (c *Config) Normalize() {
	if c.Listen == "" {
		c.Listen = defaultListen
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.CacheTTLSeconds < 0 {
		c.CacheTTLSeconds = defaultCacheTTL
	}
}

// ApplyEnv overrides fields from HISTCAL_* environment variables. A
// malformed HISTCAL_CACHE_TTL is reported and leaves the field unchanged.
func (c *Config) ApplyEnv() error {
	if v := os.Getenv(EnvListen); v != "" {
		c.Listen = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv(EnvCacheTTL); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return errors.New("config: " + EnvCacheTTL + " is not an integer: " + v)
		}
		c.CacheTTLSeconds = n
	}
	c.Normalize()
	return nil
}

// Load loads configuration from the given YAML path.
//
// If the file does not exist a default config is written there with 0600
// permissions and returned. Otherwise the file is decoded and normalised.
func Load(path string) (*Config, error) {
	if path == "" {
		return nil, errors.New("config path is empty")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			cfg := DefaultConfig()
			if err := Save(path, cfg); err != nil {
				return cfg, err
			}
			return cfg, nil
		}
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()
	return &cfg, nil
}

// Save writes cfg to path atomically (temp file in the same directory, then
// rename) with 0600 permissions, creating the parent directory as 0700.
func Save(path string, cfg *Config) error {
	if path == "" {
		return errors.New("config path is empty")
	}
	if cfg == nil {
		return errors.New("config is nil")
	}

	cfg.Normalize()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, ".histcal-config-*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpName, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
