package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"height": 5, "width": 7, "tick_interval": "250ms", "parallel": true}`)

	config, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if config.Height != 5 || config.Width != 7 || !config.Parallel {
		t.Fatalf("unexpected config %+v", config)
	}
	if config.TickInterval.Duration != 250*time.Millisecond {
		t.Fatalf("tick interval = %v", config.TickInterval)
	}
	// Fields absent from the file keep their defaults.
	if !config.UseMemoryPool || config.StagnationWindow != 3 {
		t.Fatalf("defaults lost: %+v", config)
	}
}

func TestLoadConfigNanosecondTick(t *testing.T) {
	config, err := LoadConfig(writeConfig(t, `{"tick_interval": 1000000}`))
	if err != nil {
		t.Fatal(err)
	}
	if config.TickInterval.Duration != time.Millisecond {
		t.Fatalf("tick interval = %v, want 1ms", config.TickInterval)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "nope.json")
	if _, err := LoadConfig(missing); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
	if _, err := LoadConfig(writeConfig(t, `{"height": `)); err == nil {
		t.Fatal("expected error for truncated JSON")
	}
	if _, err := LoadConfig(writeConfig(t, `{"tick_interval": "soon"}`)); err == nil {
		t.Fatal("expected error for bad duration")
	}
	if _, err := LoadConfig(writeConfig(t, `{"tick_interval": true}`)); err == nil {
		t.Fatal("expected error for boolean duration")
	}
}

func TestLoadConfigOrDefault(t *testing.T) {
	config, err := LoadConfigOrDefault(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatal(err)
	}
	if config != DefaultConfig() {
		t.Fatalf("expected defaults, got %+v", config)
	}

	if _, err := LoadConfigOrDefault(writeConfig(t, `not json`)); err == nil {
		t.Fatal("expected error for invalid file")
	}
}

func TestValidate(t *testing.T) {
	valid := DefaultConfig()
	valid.Height, valid.Width = 5, 5
	if err := valid.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	tests := []struct {
		name   string
		modify func(c *Config)
	}{
		{"zero height", func(c *Config) { c.Height = 0 }},
		{"negative width", func(c *Config) { c.Width = -3 }},
		{"negative tick", func(c *Config) { c.TickInterval.Duration = -time.Second }},
		{"negative generations", func(c *Config) { c.MaxGenerations = -1 }},
		{"negative workers", func(c *Config) { c.Workers = -2 }},
		{"zero window", func(c *Config) { c.StagnationWindow = 0 }},
		{"density above one", func(c *Config) { c.RandomDensity = 1.5 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.modify(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}

func TestDurationMarshal(t *testing.T) {
	data, err := Duration{1500 * time.Millisecond}.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"1.5s"` {
		t.Fatalf("marshalled %s", data)
	}
}
