// Package config defines the comux configuration, loaded via viper from
// defaults, an optional config file, command-line flags, and COMUX_*
// environment variables.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

// Config represents the complete comux configuration.
type Config struct {
	Run     RunConfig     `mapstructure:"run"`
	Output  OutputConfig  `mapstructure:"output"`
	TUI     TUIConfig     `mapstructure:"tui"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// RunConfig controls how child processes are spawned and shut down.
type RunConfig struct {
	// Program is the shell indirection used to execute each command,
	// split on whitespace (default: "/bin/sh -c"). The command text is
	// appended as the final argument, so compound shell syntax works.
	Program string `mapstructure:"program"`
	// GracePeriodMs is how long children get to exit after an interrupt
	// before they are force-killed (in milliseconds).
	GracePeriodMs int `mapstructure:"grace_period_ms"`
}

// OutputConfig controls output capture and propagation.
type OutputConfig struct {
	// Propagate forwards captured output to stdout instead of rendering
	// the dashboard.
	Propagate bool `mapstructure:"propagate"`
	// Format is the record format used in propagation mode.
	// Options: "raw", "json", "yaml".
	Format string `mapstructure:"format"`
	// ScrollbackLines is the number of recent output lines retained per
	// process for the dashboard.
	ScrollbackLines int `mapstructure:"scrollback_lines"`
	// MaxLineBytes caps the length of a single captured line.
	MaxLineBytes int `mapstructure:"max_line_bytes"`
}

// TUIConfig controls the dashboard renderer.
type TUIConfig struct {
	// RedrawIntervalMs is the dashboard refresh tick interval (in
	// milliseconds). Updates arriving between ticks are coalesced into
	// one redraw.
	RedrawIntervalMs int `mapstructure:"redraw_interval_ms"`
	// MaxLabelWidth is the widest a command label may render before
	// truncation.
	MaxLabelWidth int `mapstructure:"max_label_width"`
}

// LoggingConfig controls structured logging.
type LoggingConfig struct {
	// Level is the minimum log level: "debug", "info", "warn", "error".
	Level string `mapstructure:"level"`
	// File is the path logs are written to. Empty means stderr in
	// propagation mode and discard in dashboard mode (the dashboard owns
	// the terminal).
	File string `mapstructure:"file"`
}

// Default returns a Config populated with default values.
func Default() *Config {
	return &Config{
		Run: RunConfig{
			Program:       "/bin/sh -c",
			GracePeriodMs: 5000,
		},
		Output: OutputConfig{
			Propagate:       false,
			Format:          "raw",
			ScrollbackLines: 3,
			MaxLineBytes:    1024 * 1024,
		},
		TUI: TUIConfig{
			RedrawIntervalMs: 100,
			MaxLabelWidth:    60,
		},
		Logging: LoggingConfig{
			Level: "info",
			File:  "",
		},
	}
}

// GracePeriod returns the shutdown grace period as a time.Duration.
func (c *RunConfig) GracePeriod() time.Duration {
	return time.Duration(c.GracePeriodMs) * time.Millisecond
}

// RedrawInterval returns the dashboard tick interval as a time.Duration.
func (c *TUIConfig) RedrawInterval() time.Duration {
	return time.Duration(c.RedrawIntervalMs) * time.Millisecond
}

// SetDefaults registers all default values with viper.
// Must be called before viper.ReadInConfig so defaults are available
// even without a config file.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("run.program", defaults.Run.Program)
	viper.SetDefault("run.grace_period_ms", defaults.Run.GracePeriodMs)

	viper.SetDefault("output.propagate", defaults.Output.Propagate)
	viper.SetDefault("output.format", defaults.Output.Format)
	viper.SetDefault("output.scrollback_lines", defaults.Output.ScrollbackLines)
	viper.SetDefault("output.max_line_bytes", defaults.Output.MaxLineBytes)

	viper.SetDefault("tui.redraw_interval_ms", defaults.TUI.RedrawIntervalMs)
	viper.SetDefault("tui.max_label_width", defaults.TUI.MaxLabelWidth)

	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.file", defaults.Logging.File)
}

// Load unmarshals and validates the current viper state into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if errs := cfg.Validate(); len(errs) > 0 {
		return nil, ValidationErrors(errs)
	}

	return &cfg, nil
}

// ConfigDir returns the directory where the comux config file lives.
func ConfigDir() string {
	// Check XDG_CONFIG_HOME first
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "comux")
	}
	// Fall back to ~/.config/comux
	home, err := os.UserHomeDir()
	if err != nil {
		return ".comux"
	}
	return filepath.Join(home, ".config", "comux")
}
