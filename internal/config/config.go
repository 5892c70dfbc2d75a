package config

import (
	"os"
	"path/filepath"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/finovahq/agentdesk/internal/errors"
)

// APIBasePath is the versioned prefix every backend endpoint lives under
const APIBasePath = "/agent/api/v1"

// DefaultBackendHost is used when no environment or file config is present
const DefaultBackendHost = "http://localhost:8080"

// Config holds the resolved client configuration.
// Environment wins over the config file, which wins over defaults.
type Config struct {
	BackendHost string `env:"AGENTDESK_API_URL" yaml:"backend_host"`
	LogLevel    string `env:"AGENTDESK_LOG_LEVEL" yaml:"log_level"`
	LogFormat   string `env:"AGENTDESK_LOG_FORMAT" yaml:"log_format"`
}

// BaseURL returns the full API base URL (host + versioned prefix)
func (c *Config) BaseURL() string {
	return c.BackendHost + APIBasePath
}

// Dir returns the agentdesk state directory (~/.agentdesk)
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigLoad, "cannot resolve home directory", err)
	}
	return filepath.Join(home, ".agentdesk"), nil
}

// Path returns the config file location (~/.agentdesk/config.yaml)
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// Load resolves configuration: defaults, then the yaml file, then environment.
// A .env file in the working directory is honored if present.
func Load() (*Config, error) {
	// Missing .env is not an error
	_ = godotenv.Load()

	cfg := &Config{
		BackendHost: DefaultBackendHost,
		LogLevel:    "info",
		LogFormat:   "text",
	}

	if path, err := Path(); err == nil {
		if err := loadFile(path, cfg); err != nil {
			return nil, err
		}
	}

	if err := envdecode.Decode(cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return nil, errors.Wrap(errors.ErrCodeConfigLoad, "cannot decode environment", err)
	}

	return cfg, nil
}

// loadFile overlays values from a yaml config file onto cfg.
// A missing file is fine; a malformed one is not.
func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(errors.ErrCodeConfigLoad, "cannot read config file", err)
	}

	var file Config
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "malformed config file", err).
			WithSuggestion("Fix or delete " + path)
	}

	if file.BackendHost != "" {
		cfg.BackendHost = file.BackendHost
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.LogFormat != "" {
		cfg.LogFormat = file.LogFormat
	}
	return nil
}

// Save writes cfg to the config file, creating ~/.agentdesk if needed
func Save(cfg *Config) error {
	dir, err := Dir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "cannot create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "cannot marshal config", err)
	}

	path := filepath.Join(dir, "config.yaml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeConfigWrite, "cannot write config file", err)
	}
	return nil
}
