package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/meyrevived/deploy-dashboard/internal/client"
	"github.com/meyrevived/deploy-dashboard/internal/daemon/state"
	"github.com/meyrevived/deploy-dashboard/internal/render"
)

type statusOptions struct {
	apiURL  string
	timeout time.Duration
}

func newStatusCommand(configPath *string) *cobra.Command {
	opts := &statusOptions{}

	cmd := &cobra.Command{
		Use:     "status",
		Short:   "Fetches the worker statuses once and prints them as a table",
		Aliases: []string{"st"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus(cmd, *configPath, opts)
		},
	}
	cmd.Flags().StringVar(&opts.apiURL, "api-url", "", "worker status endpoint, overrides the configuration")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")
	return cmd
}

func runStatus(cmd *cobra.Command, configPath string, opts *statusOptions) error {
	apiURL := opts.apiURL
	if apiURL == "" {
		cfg, err := loadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		apiURL = cfg.GetAPIURL()
	}

	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithTimeout(parent, opts.timeout)
	defer cancel()

	statuses, err := client.New(apiURL).WorkerStatus().List(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch worker statuses from %s: %w", apiURL, err)
	}

	rows := make([]state.WorkerRow, 0, len(statuses))
	for _, status := range statuses {
		rows = append(rows, state.NewWorkerRow(status))
	}
	render.Table(cmd.OutOrStdout(), rows, time.Now())
	return nil
}
