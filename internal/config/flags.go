package config

import "flag"

// Flags holds command-line overrides registered on a FlagSet.
type Flags struct {
	config   *string
	debug    *bool
	scene    *string
	workers  *int
	out      *string
	format   *string
	world    *bool
	combined *bool
	logFile  *string
}

// RegisterFlags adds the shared meshgen flags to fs.
func RegisterFlags(fs *flag.FlagSet) *Flags {
	return &Flags{
		config:   fs.String("config", "", "Path to config file"),
		debug:    fs.Bool("debug", false, "Enable debug logging"),
		scene:    fs.String("scene", "", "Scene file (.yaml, .yml or .toml); default is the built-in desk"),
		workers:  fs.Int("workers", -1, "Concurrent mesh builds (0 = unlimited)"),
		out:      fs.String("out", "", "Output directory"),
		format:   fs.String("format", "", "Output format: obj or dmsh"),
		world:    fs.Bool("world", false, "Write world-space geometry"),
		combined: fs.Bool("combined", false, "Write a single scene.obj"),
		logFile:  fs.String("log", "", "Also log to this file"),
	}
}

// ConfigPath returns the explicit config path if provided via -config.
func (f *Flags) ConfigPath() string {
	if f == nil {
		return ""
	}
	return *f.config
}

// apply applies CLI flag overrides to the config.
func (f *Flags) apply(cfg *Config) {
	if f == nil {
		return
	}
	if *f.debug {
		cfg.Logging.Level = "debug"
	}
	if *f.scene != "" {
		cfg.Scene.Path = *f.scene
	}
	if *f.workers >= 0 {
		cfg.Scene.Workers = *f.workers
	}
	if *f.out != "" {
		cfg.Export.Dir = *f.out
	}
	if *f.format != "" {
		cfg.Export.Format = *f.format
	}
	if *f.world {
		cfg.Export.World = true
	}
	if *f.combined {
		cfg.Export.Combined = true
	}
	if *f.logFile != "" {
		cfg.Logging.LogFile = *f.logFile
	}
}
