package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the on-disk configuration shape (YAML).
type Config struct {
	Feed FeedConfig `yaml:"feed"`
	API  APIConfig  `yaml:"api"`
}

type FeedConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	Country        string `yaml:"country"`
	DefaultRegion  string `yaml:"default_region"`
}

type APIConfig struct {
	Port string `yaml:"port"`
}

// Load reads, defaults and validates a config file.
func Load(path string) (*Config, error) {
	c, err := LoadUnchecked(path)
	if err != nil {
		return nil, err
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// LoadUnchecked loads config without defaulting or validating it.
// Useful for debugging/printing partial configs.
func LoadUnchecked(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Config) applyDefaults() {
	if c.Feed.TimeoutSeconds == 0 {
		c.Feed.TimeoutSeconds = 30
	}
	if c.API.Port == "" {
		c.API.Port = "8080"
	}
}

func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	if c.Feed.Country == "" {
		return errors.New("feed.country is required")
	}
	if len(c.Feed.Country) != 2 {
		return fmt.Errorf("feed.country must be a 2-letter country code, got %q", c.Feed.Country)
	}
	if c.Feed.TimeoutSeconds < 0 {
		return fmt.Errorf("feed.timeout_seconds must be >= 0, got %d", c.Feed.TimeoutSeconds)
	}
	return nil
}
