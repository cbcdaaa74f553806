package app

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"scaffolding/internal/logging"
	"scaffolding/internal/services/home"
)

// Producer modes for the home screen.
const (
	ProducersFailing = "failing"
	ProducersDelayed = "delayed"
)

// ErrInvalidProducers is returned for an unknown home.producers value.
var ErrInvalidProducers = errors.New("invalid producers mode")

// Config holds runtime wiring options for building the app.
type Config struct {
	Log  LogConfig  `yaml:"log"`
	Home HomeConfig `yaml:"home"`
}

// LogConfig selects logger level and format.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // text or json
}

// HomeConfig drives the home screen's producers.
type HomeConfig struct {
	Launch        string        `yaml:"launch"`         // sequential or parallel
	Producers     string        `yaml:"producers"`      // failing or delayed
	Greeting      string        `yaml:"greeting"`       // delayed mode greeting
	GreetingDelay time.Duration `yaml:"greeting_delay"` // e.g. 1s
	RecordsDelay  time.Duration `yaml:"records_delay"`  // e.g. 3s
}

// DefaultConfig reproduces the stock behavior: sequential launch, producers
// that always fail.
func DefaultConfig() Config {
	return Config{
		Log: LogConfig{Level: "info", Format: "text"},
		Home: HomeConfig{
			Launch:        home.LaunchSequential.String(),
			Producers:     ProducersFailing,
			Greeting:      home.DefaultGreeting,
			GreetingDelay: time.Second,
			RecordsDelay:  3 * time.Second,
		},
	}
}

// LoadConfig reads path over DefaultConfig. An empty path returns the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read the config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse the config file %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate checks enumerated values and delays.
func (c Config) Validate() error {
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	if _, err := home.ParseLaunch(c.Home.Launch); err != nil {
		return err
	}
	switch c.Home.Producers {
	case "", ProducersFailing, ProducersDelayed:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidProducers, c.Home.Producers)
	}
	if c.Home.GreetingDelay < 0 || c.Home.RecordsDelay < 0 {
		return errors.New("home delays must not be negative")
	}
	return nil
}
