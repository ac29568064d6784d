package app

import (
	"errors"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/maxbolgarin/errm"
)

const defaultConcurrency = 4

var ErrMissingToken = errors.New("Diffbot API token is required")

// Config is the CLI configuration, read from a YAML file and environment.
type Config struct {
	Token       string        `yaml:"token" env:"DIFFBOT_TOKEN"`
	Version     string        `yaml:"version" env:"DIFFBOT_VERSION"`
	BaseURL     string        `yaml:"base_url" env:"DIFFBOT_BASE_URL"`
	UserAgent   string        `yaml:"user_agent" env:"DIFFBOT_USER_AGENT"`
	ProxyURL    string        `yaml:"proxy_url" env:"DIFFBOT_PROXY_URL"`
	Timeout     time.Duration `yaml:"timeout" env:"DIFFBOT_TIMEOUT"`
	Concurrency int           `yaml:"concurrency" env:"DIFFBOT_CONCURRENCY"`
}

// LoadConfig reads configuration from the given file, or from the
// environment alone when path is empty.
func LoadConfig(path string) (Config, error) {
	var cfg Config
	if path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return cfg, errm.Wrap(err, "read config file")
		}
	} else {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return cfg, errm.Wrap(err, "read environment")
		}
	}

	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Token == "" {
		return ErrMissingToken
	}
	return nil
}

// SetDefaults sets default values for configuration. Client-level
// defaults (version, base URL, timeout) are left to the library.
func (c *Config) SetDefaults() {
	if c.Concurrency <= 0 {
		c.Concurrency = defaultConcurrency
	}
}
