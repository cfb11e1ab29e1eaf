package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/shuttle-vfd/vfd-go/pkg/model"
	"github.com/shuttle-vfd/vfd-go/pkg/wire"
)

// FileConfig is the optional vfdctl configuration file.
type FileConfig struct {
	// DelayMS overrides the inter-packet pacing delay, in milliseconds.
	// Zero keeps the driver default (24ms).
	DelayMS int `yaml:"delay_ms"`

	// TracePath enables CBOR packet tracing to this file.
	TracePath string `yaml:"trace_path"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level"`

	// StartupText is written to the display on startup.
	StartupText string `yaml:"startup_text"`

	// StartupIcons maps light names to levels applied on startup.
	StartupIcons map[string]int `yaml:"startup_icons"`
}

// loadFileConfig reads and validates a YAML configuration file.
func loadFileConfig(path string) (FileConfig, error) {
	var cfg FileConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c FileConfig) validate() error {
	if c.DelayMS < 0 {
		return fmt.Errorf("delay_ms must not be negative, got %d", c.DelayMS)
	}
	switch c.LogLevel {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log_level %q", c.LogLevel)
	}
	if len(c.StartupText) > wire.TextWidth {
		return fmt.Errorf("startup_text longer than %d characters", wire.TextWidth)
	}
	for name, level := range c.StartupIcons {
		icon, err := model.ParseIcon(name)
		if err != nil {
			return err
		}
		if level < 0 || level > icon.MaxBrightness() {
			return fmt.Errorf("startup level %d out of range for %q (max %d)",
				level, name, icon.MaxBrightness())
		}
	}
	return nil
}

// delay returns the configured pacing delay, or zero for the default.
func (c FileConfig) delay() time.Duration {
	return time.Duration(c.DelayMS) * time.Millisecond
}
