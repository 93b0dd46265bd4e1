package cmd

import (
	"fmt"

	"github.com/Iron-Ham/planner/internal/apiclient"
	"github.com/Iron-Ham/planner/internal/artifact"
	"github.com/Iron-Ham/planner/internal/catalog"
	"github.com/Iron-Ham/planner/internal/config"
	"github.com/Iron-Ham/planner/internal/controller"
	"github.com/Iron-Ham/planner/internal/logging"
)

// services is the object graph shared by the TUI and the non-interactive
// commands. The base URL flows from config into the client and the two
// state holders; nothing reads it globally.
type services struct {
	cfg     *config.Config
	logger  *logging.Logger
	client  *apiclient.Client
	ctrl    *controller.Controller
	catalog *catalog.Catalog
	sink    *artifact.Sink
}

// newServices loads the configuration and wires the client stack.
func newServices() (*services, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := newLogger(cfg.Logging)
	if err != nil {
		return nil, err
	}

	baseURL := cfg.API.NormalizedBaseURL()
	client := apiclient.NewClient(baseURL, cfg.API.Timeout(), logger)

	return &services{
		cfg:     cfg,
		logger:  logger,
		client:  client,
		ctrl:    controller.New(client, baseURL, logger),
		catalog: catalog.New(client, baseURL, logger),
		sink:    artifact.NewSink(cfg.Export, logger),
	}, nil
}

// newLogger opens the rotating log file, or returns a Nop logger when
// logging is disabled.
func newLogger(cfg config.LoggingConfig) (*logging.Logger, error) {
	if !cfg.Enabled {
		return logging.NopLogger(), nil
	}
	logger, err := logging.NewLogger(config.LogDir(), cfg.Level, logging.RotationConfig{
		MaxSizeMB:  cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return logger, nil
}

// Close flushes the log file.
func (s *services) Close() {
	_ = s.logger.Close()
}
