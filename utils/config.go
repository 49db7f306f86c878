package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned by Validate for unusable settings.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for a run
type Config struct {
	Height           int      `json:"height"`
	Width            int      `json:"width"`
	TickInterval     Duration `json:"tick_interval"`
	MaxGenerations   int      `json:"max_generations"`
	Parallel         bool     `json:"parallel"`
	Workers          int      `json:"workers"`
	UseMemoryPool    bool     `json:"use_memory_pool"`
	ClearScreen      bool     `json:"clear_screen"`
	StopWhenExtinct  bool     `json:"stop_when_extinct"`
	StopWhenStagnant bool     `json:"stop_when_stagnant"`
	StagnationWindow int      `json:"stagnation_window"`
	RandomDensity    float64  `json:"random_density"`
	Seed             int64    `json:"seed"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		TickInterval:     Duration{500 * time.Millisecond},
		MaxGenerations:   0, // run until interrupted
		Parallel:         false,
		UseMemoryPool:    true,
		StagnationWindow: 3,
		Seed:             1,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// LoadConfigOrDefault is LoadConfig, except that a missing file yields the defaults.
func LoadConfigOrDefault(filename string) (Config, error) {
	config, err := LoadConfig(filename)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return config, err
}

// Validate checks the settings a run depends on
func (c Config) Validate() error {
	switch {
	case c.Height < 1 || c.Width < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] dimensions %dx%d must be positive", c.Height, c.Width)
	case c.TickInterval.Duration < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative tick interval %v", c.TickInterval)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative max generations %d", c.MaxGenerations)
	case c.Workers < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] negative worker count %d", c.Workers)
	case c.StagnationWindow < 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] stagnation window %d must be positive", c.StagnationWindow)
	case c.RandomDensity < 0 || c.RandomDensity > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] random density %v outside [0,1]", c.RandomDensity)
	}
	return nil
}

// Duration is a time.Duration that reads from JSON as either a duration
// string ("500ms") or an integer count of nanoseconds.
type Duration struct {
	time.Duration
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "[Duration] failed to unmarshal")
	}

	switch v := raw.(type) {
	case float64:
		d.Duration = time.Duration(v)
	case string:
		parsed, err := time.ParseDuration(v)
		if err != nil {
			return errors.Wrapf(err, "[Duration] invalid duration %q", v)
		}
		d.Duration = parsed
	default:
		return errors.Errorf("[Duration] unsupported value %s", data)
	}
	return nil
}
