package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/unitlab/internal/conversion"
	"github.com/san-kum/unitlab/internal/logging"
)

const (
	DefaultRepresentation = "float64"
	DefaultBound          = conversion.DefaultBound
)

// Config drives the CLI: which representation conversions are planned for,
// which extra unit files are loaded and how logs are written.
type Config struct {
	Representation string         `yaml:"representation"`
	Bound          uint64         `yaml:"bound"`
	Lossy          bool           `yaml:"lossy"`
	Catalogs       []string       `yaml:"catalogs"`
	Logging        logging.Config `yaml:"logging"`
}

func DefaultConfig() *Config {
	return &Config{
		Representation: DefaultRepresentation,
		Bound:          DefaultBound,
		Logging:        logging.DefaultConfig(),
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	_, err := conversion.ParseRep(c.Representation)
	return err
}

// Rep returns the configured representation with its declared bound.
func (c *Config) Rep() (conversion.Rep, error) {
	rep, err := conversion.ParseRep(c.Representation)
	if err != nil {
		return rep, err
	}
	return rep.WithBound(c.Bound), nil
}
