// Package config handles meshgen configuration loading and management.
package config

import (
	"errors"
	"fmt"
	"runtime"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds all meshgen settings.
type Config struct {
	Scene   SceneConfig   `yaml:"scene"`
	Export  ExportConfig  `yaml:"export"`
	Logging LoggingConfig `yaml:"logging"`
}

// SceneConfig selects the scene to bake.
type SceneConfig struct {
	Path    string `yaml:"path"`    // YAML or TOML scene file; empty means the built-in desk
	Workers int    `yaml:"workers"` // concurrent mesh builds; 0 means unlimited
}

// ExportConfig controls mesh output.
type ExportConfig struct {
	Dir      string `yaml:"dir"`
	Format   string `yaml:"format"` // obj or dmsh
	World    bool   `yaml:"world"`
	Combined bool   `yaml:"combined"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Scene: SceneConfig{
			Path:    "",
			Workers: runtime.NumCPU(),
		},
		Export: ExportConfig{
			Dir:    "out",
			Format: "obj",
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Validate checks values that flags and files can get wrong.
func (c *Config) Validate() error {
	var errs []error
	if c.Scene.Workers < 0 {
		errs = append(errs, fmt.Errorf("%w: scene.workers must not be negative, got %d", ErrInvalidConfig, c.Scene.Workers))
	}
	switch c.Export.Format {
	case "obj", "dmsh":
	default:
		errs = append(errs, fmt.Errorf("%w: export.format %q (want obj or dmsh)", ErrInvalidConfig, c.Export.Format))
	}
	if c.Export.Combined && c.Export.Format != "obj" {
		errs = append(errs, fmt.Errorf("%w: export.combined needs obj format", ErrInvalidConfig))
	}
	if c.Export.Dir == "" {
		errs = append(errs, fmt.Errorf("%w: export.dir is empty", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}
