// SPDX-License-Identifier: MIT
// File: app.go
// Role: Config resolution and engine construction shared by all commands.

package main

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordgraph"
	"github.com/katalvlaran/wordgraph/internal/config"
	"github.com/katalvlaran/wordgraph/internal/corpus"
	"github.com/katalvlaran/wordgraph/internal/dispatch"
	"github.com/katalvlaran/wordgraph/internal/logger"
	"github.com/katalvlaran/wordgraph/internal/metrics"
)

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath  string
	logLevel    string
	logFormat   string
	seed        int64
	metrics     bool
	metricsAddr string
}

// app is everything a command needs once the corpus is loaded.
type app struct {
	cfg      *config.Config
	log      *slog.Logger
	metrics  *metrics.Metrics
	engine   *wordgraph.Engine
	dispatch *dispatch.Dispatcher
}

// resolveConfig loads the config file and applies explicitly set flags on top.
func resolveConfig(cmd *cobra.Command, f *globalFlags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if flags.Changed("log-format") {
		cfg.Logging.Format = f.logFormat
	}
	if flags.Changed("seed") {
		cfg.Walk.Seed = f.seed
	}
	if flags.Changed("metrics") {
		cfg.Metrics.Enabled = f.metrics
	}
	if flags.Changed("metrics-addr") {
		cfg.Metrics.Addr = f.metricsAddr
	}
	return cfg, cfg.Validate()
}

// newApp reads the corpus at path and builds the engine.
func newApp(cmd *cobra.Command, f *globalFlags, path string) (*app, error) {
	cfg, err := resolveConfig(cmd, f)
	if err != nil {
		return nil, err
	}
	logger.Setup(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	log := logger.WithComponent("wordgraph")

	lines, err := corpus.Load(path)
	if err != nil {
		return nil, err
	}
	eng, err := wordgraph.FromText(slices.Values(lines),
		wordgraph.WithSeed(cfg.Walk.Seed),
		wordgraph.WithLogger(logger.WithComponent("engine")),
	)
	if err != nil {
		return nil, fmt.Errorf("building graph from %s: %w", path, err)
	}
	log.Info("corpus loaded", "path", path, "lines", len(lines), "words", eng.Len())

	m := metrics.New()
	return &app{
		cfg:      cfg,
		log:      log,
		metrics:  m,
		engine:   eng,
		dispatch: dispatch.New(eng, m, logger.WithComponent("dispatch")),
	}, nil
}
