// Package main implements the deploy-dashboard daemon and CLI.
//
// The daemon polls a deployment backend's worker status endpoint on a fixed
// interval and serves the result as a self-refreshing HTML page (port 8765
// by default). It handles:
//   - Periodic worker status polling
//   - Dashboard page and JSON state over HTTP
//   - Preflight checks of the configuration and endpoint
//   - Configuration hot reload when the config file changes
//   - Prometheus metrics for the poller
//
// The status command performs a single fetch and prints a table instead.
package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/meyrevived/deploy-dashboard/internal/config"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

// newRootCommand returns the root command. Without a subcommand it runs the
// daemon, same as "serve".
func newRootCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:          "deploy-dashboard",
		Short:        "Worker status dashboard for the deployment backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), configPath)
		},
	}
	cmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a YAML configuration file (defaults to $DASHBOARD_CONFIG)")

	cmd.AddCommand(
		newServeCommand(&configPath),
		newStatusCommand(&configPath),
	)
	return cmd
}

// loadConfig reads the configuration from path, or from DASHBOARD_CONFIG and
// the environment when path is empty.
func loadConfig(path string) (*config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	return config.LoadConfig()
}
