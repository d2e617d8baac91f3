// Package config loads the command line configuration.
//
// Values come from, in increasing precedence: defaults, an optional YAML
// file, CYCLES_* environment variables. Flags are applied by the caller.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/cycles/chart"
)

// ErrInvalid is returned for configuration values that cannot be used.
var ErrInvalid = errors.New("config: invalid")

// Frame table names.
const (
	FramesLegacy    = "legacy"
	FramesCorrected = "corrected"
	FramesNone      = "none"
)

// Config is the command line configuration.
type Config struct {
	Document  string `yaml:"document" env:"CYCLES_DOCUMENT"`
	Output    string `yaml:"output" env:"CYCLES_OUTPUT"`
	Workers   int    `yaml:"workers" env:"CYCLES_WORKERS"`
	Frames    string `yaml:"frames" env:"CYCLES_FRAMES"`
	LogLevel  string `yaml:"log_level" env:"CYCLES_LOG_LEVEL"`
	LogFormat string `yaml:"log_format" env:"CYCLES_LOG_FORMAT"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:    "cycles.png",
		Workers:   1,
		Frames:    FramesLegacy,
		LogLevel:  "info",
		LogFormat: "text",
	}
}

// Load builds the configuration from the YAML file at path, if any, and the
// environment.
func Load(path string) (Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(filepath.Clean(path))
		if err != nil {
			return Config{}, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %q: %w", path, err)
		}
	}
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("config: parse env: %w", err)
	}
	return nil
}

// Validate reports unusable values.
func (c Config) Validate() error {
	if c.Document == "" {
		return fmt.Errorf("%w: no document", ErrInvalid)
	}
	if c.Output == "" {
		return fmt.Errorf("%w: no output", ErrInvalid)
	}
	if _, err := c.FrameTable(); err != nil {
		return err
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalid, c.LogFormat)
	}
	return nil
}

// FrameTable returns the frame table named by Frames.
func (c Config) FrameTable() (chart.FrameTable, error) {
	switch strings.ToLower(c.Frames) {
	case FramesLegacy, "":
		return chart.LegacyFrames, nil
	case FramesCorrected:
		return chart.CorrectedFrames, nil
	case FramesNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("%w: frames %q", ErrInvalid, c.Frames)
	}
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log level %q", ErrInvalid, c.LogLevel)
	}
	return l, nil
}

// NewLogger builds a logger writing to w.
func (c Config) NewLogger(w io.Writer) (*slog.Logger, error) {
	level, err := c.Level()
	if err != nil {
		return nil, err
	}
	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return slog.New(slog.NewTextHandler(w, opts)), nil
}
