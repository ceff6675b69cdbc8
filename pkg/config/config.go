package config

import (
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// ExchangerConfig carries the userapi credentials and connection settings.
type ExchangerConfig struct {
	Login          string `yaml:"login"`
	Key            string `yaml:"key"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Lang           string `yaml:"lang"`
}

// Timeout returns the per-call timeout as a duration.
func (e ExchangerConfig) Timeout() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

// LogConfig mirrors pkg/logger.Config in YAML form.
type LogConfig struct {
	Level      string `yaml:"level"`
	OutputFile string `yaml:"output_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Config is the application configuration.
type Config struct {
	Exchanger ExchangerConfig `yaml:"exchanger"`
	Log       LogConfig       `yaml:"log"`
}

// Load reads the YAML config file when a path is given and applies
// environment overrides on top. Environment wins over file; credentials may
// come from the environment alone.
func Load(path string) (*Config, error) {
	cfg := &Config{
		Exchanger: ExchangerConfig{TimeoutSeconds: 30},
		Log:       LogConfig{Level: "info"},
	}

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(raw, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	applyEnv(cfg)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) {
	setString(&cfg.Exchanger.Login, "EXCHANGER_LOGIN")
	setString(&cfg.Exchanger.Key, "EXCHANGER_KEY")
	setString(&cfg.Exchanger.BaseURL, "EXCHANGER_BASE_URL")
	setString(&cfg.Exchanger.Lang, "EXCHANGER_LANG")
	setInt(&cfg.Exchanger.TimeoutSeconds, "EXCHANGER_TIMEOUT_SECONDS")
	setString(&cfg.Log.Level, "LOG_LEVEL")
	setString(&cfg.Log.OutputFile, "LOG_FILE")
}

func setString(dst *string, key string) {
	if value := os.Getenv(key); value != "" {
		*dst = value
	}
}

func setInt(dst *int, key string) {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			*dst = n
		}
	}
}

func (c *Config) validate() error {
	switch {
	case c.Exchanger.Login == "":
		return errors.New("exchanger.login is required (or EXCHANGER_LOGIN)")
	case c.Exchanger.Key == "":
		return errors.New("exchanger.key is required (or EXCHANGER_KEY)")
	case c.Exchanger.BaseURL == "":
		return errors.New("exchanger.base_url is required (or EXCHANGER_BASE_URL)")
	}
	return nil
}
