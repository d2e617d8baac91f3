package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gogpu/cycles"
	"github.com/gogpu/cycles/chart"
	"github.com/gogpu/cycles/internal/config"
)

type renderOptions struct {
	in         chart.BirthInputs
	configPath string
	document   string
	output     string
	workers    int
	frames     string
	logLevel   string
}

func newRenderCmd() *cobra.Command {
	var o renderOptions
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a chart to PNG",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRender(cmd, &o)
		},
	}
	addInputFlags(cmd, &o.in)
	f := cmd.Flags()
	f.StringVar(&o.configPath, "config", "", "YAML configuration file")
	f.StringVar(&o.document, "document", "", "layered source document (PSD)")
	f.StringVar(&o.output, "output", "", "output PNG path")
	f.IntVar(&o.workers, "workers", 1, "blend workers, 0 for one per CPU")
	f.StringVar(&o.frames, "frames", "", "frame table: legacy, corrected or none")
	f.StringVar(&o.logLevel, "log-level", "", "log level: debug, info, warn, error")
	return cmd
}

// resolve merges flags that were set over the loaded configuration.
func (o *renderOptions) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(o.configPath)
	if err != nil {
		return config.Config{}, err
	}
	f := cmd.Flags()
	if f.Changed("document") {
		cfg.Document = o.document
	}
	if f.Changed("output") {
		cfg.Output = o.output
	}
	if f.Changed("workers") {
		cfg.Workers = o.workers
	}
	if f.Changed("frames") {
		cfg.Frames = o.frames
	}
	if f.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}
	return cfg, cfg.Validate()
}

func runRender(cmd *cobra.Command, o *renderOptions) error {
	cfg, err := o.resolve(cmd)
	if err != nil {
		return err
	}
	logger, err := cfg.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	cycles.SetLogger(logger)
	defer cycles.SetLogger(nil)

	frames, err := cfg.FrameTable()
	if err != nil {
		return err
	}

	data, err := cycles.GenerateFile(o.in, cfg.Document,
		cycles.WithWorkers(cfg.Workers),
		cycles.WithFrames(frames),
	)
	if err != nil {
		return fmt.Errorf("render %s: %w", cfg.Document, err)
	}

	if dir := filepath.Dir(cfg.Output); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	logger.Info("chart written", "path", cfg.Output, "bytes", len(data))
	return nil
}
