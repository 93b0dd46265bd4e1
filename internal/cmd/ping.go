package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/Iron-Ham/planner/internal/errors"
)

var pingCmd = &cobra.Command{
	Use:   "ping",
	Short: "Check that the planning service is reachable",
	Args:  cobra.NoArgs,
	RunE:  runPing,
}

var pingTimeout time.Duration

func init() {
	rootCmd.AddCommand(pingCmd)
	pingCmd.Flags().DurationVar(&pingTimeout, "timeout", 5*time.Second, "How long to wait for a response")
}

func runPing(cmd *cobra.Command, args []string) error {
	svc, err := newServices()
	if err != nil {
		return err
	}
	defer svc.Close()

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	start := time.Now()
	if err := svc.client.Ping(ctx); err != nil {
		return errors.New(errors.UserMessage(err, svc.client.BaseURL()))
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s is reachable (%s)\n", svc.client.BaseURL(), time.Since(start).Round(time.Millisecond))
	return nil
}
