package main

import (
	"context"
	"encoding/json"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/questx-lab/reactionmap/config"
	"github.com/questx-lab/reactionmap/internal/common"
	"github.com/questx-lab/reactionmap/pkg/logger"
	"github.com/questx-lab/reactionmap/pkg/xcontext"
	"github.com/urfave/cli/v2"
)

type reactionctl struct {
	app *cli.App

	ctx      context.Context
	configs  config.Configs
	logger   logger.Logger
	registry *prometheus.Registry
}

func (s *reactionctl) loadConfig(c *cli.Context) error {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return err
	}

	if level := c.String("log-level"); level != "" {
		cfg.Log.Level = level
	}

	if path := c.String("metrics-file"); path != "" {
		cfg.Metrics.TextfilePath = path
	}

	s.configs = cfg
	return nil
}

func (s *reactionctl) loadLogger() {
	s.logger = logger.NewLogger(logger.ParseLevel(s.configs.Log.Level))
}

func (s *reactionctl) loadContext() {
	s.ctx = context.Background()
	s.ctx = xcontext.WithConfigs(s.ctx, s.configs)
	s.ctx = xcontext.WithLogger(s.ctx, s.logger)
}

func (s *reactionctl) before(c *cli.Context) error {
	if err := s.loadConfig(c); err != nil {
		return err
	}

	s.loadLogger()
	s.loadContext()
	s.registry = common.NewRegistry()
	return nil
}

// after dumps the counters in the node exporter textfile format.
func (s *reactionctl) after(*cli.Context) error {
	if s.configs.Metrics.TextfilePath == "" || s.registry == nil {
		return nil
	}

	return prometheus.WriteToTextfile(s.configs.Metrics.TextfilePath, s.registry)
}

func (s *reactionctl) readInput(c *cli.Context) ([]byte, error) {
	path := c.Args().First()
	if path == "" || path == "-" {
		return io.ReadAll(c.App.Reader)
	}

	return os.ReadFile(path)
}

func (s *reactionctl) writeJSON(c *cli.Context, v any) error {
	encoder := json.NewEncoder(c.App.Writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
