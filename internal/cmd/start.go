package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/planner/internal/tui"
)

func runTUI(cmd *cobra.Command, args []string) error {
	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	svc.logger.Info("starting TUI", "base_url", svc.client.BaseURL(), "theme", svc.cfg.TUI.Theme)

	app := tui.New(ctx, svc.cfg, svc.ctrl, svc.catalog, svc.sink, svc.logger)
	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
