package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/meyrevived/deploy-dashboard/internal/client"
	"github.com/meyrevived/deploy-dashboard/internal/config"
	"github.com/meyrevived/deploy-dashboard/internal/daemon/api"
	"github.com/meyrevived/deploy-dashboard/internal/daemon/state"
	"github.com/meyrevived/deploy-dashboard/internal/dashboard"
	"github.com/meyrevived/deploy-dashboard/internal/logging"
	"github.com/meyrevived/deploy-dashboard/internal/metrics"
	"github.com/meyrevived/deploy-dashboard/internal/preflight"
)

const (
	shutdownTimeout  = 10 * time.Second
	reloadDebounce   = 500 * time.Millisecond
	preflightTimeout = 10 * time.Second
)

func newServeCommand(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Runs the dashboard daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), *configPath)
		},
	}
}

// newFetcher builds the worker status fetcher for an endpoint URL.
func newFetcher(apiURL string) dashboard.Fetcher {
	return client.New(apiURL).WorkerStatus()
}

func runServe(parent context.Context, configPath string) error {
	if parent == nil {
		parent = context.Background()
	}

	// Load configuration early in startup
	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := logging.New(cfg.Debug)
	if err != nil {
		return err
	}
	defer func() {
		_ = logger.Sync()
	}()

	logger.Info("starting deploy-dashboard daemon",
		zap.String("apiURL", cfg.GetAPIURL()),
		zap.Duration("refreshInterval", cfg.GetRefreshInterval()),
		zap.String("listenAddr", cfg.GetListenAddr()),
		zap.String("configPath", cfg.GetPath()),
		zap.Bool("mock", cfg.Mock.Enabled))

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	stateManager := state.NewStateManager()
	poller, err := dashboard.NewPoller(dashboard.Config{
		Interval: cfg.GetRefreshInterval(),
		Fetcher:  newFetcher(cfg.GetAPIURL()),
		Renderer: stateManager,
		Logger:   logger.Named("poller"),
		Metrics:  metrics.New(registry),
	})
	if err != nil {
		return fmt.Errorf("failed to create poller: %w", err)
	}

	handlers := api.NewHandlers(stateManager, cfg, logger.Named("api"))
	handlers.Metrics = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	currentConfig := func() *config.Config { return cfg }
	var reloader *dashboard.Reloader
	if cfg.GetPath() != "" {
		reloader = dashboard.NewReloader(cfg, poller, newFetcher, logger.Named("reload"))
		handlers.Reloader = reloader
		currentConfig = reloader.Current
	}

	checker := preflight.NewChecker(currentConfig, poller.Fetcher)
	handlers.Preflight = checker

	router := api.NewRouter(handlers)

	// Bind before polling so that a mock-mode poller finds its own endpoint
	listener, err := net.Listen("tcp", cfg.GetListenAddr())
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", cfg.GetListenAddr(), err)
	}

	server := &http.Server{
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("HTTP server listening", zap.String("addr", listener.Addr().String()))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	go runPreflight(ctx, checker, logger)
	go poller.Run(ctx)

	if reloader != nil {
		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			logger.Warn("failed to create config file watcher", zap.Error(err))
		} else {
			defer func() {
				_ = watcher.Close()
			}()
			if err := watchConfig(watcher, reloader.Path()); err != nil {
				logger.Warn("failed to watch config file", zap.String("path", reloader.Path()), zap.Error(err))
			} else {
				logger.Info("config hot reload active", zap.String("path", reloader.Path()))
				go fileWatcherLoop(ctx, watcher, reloader.Path(), func() {
					triggerReload(reloader, logger)
				}, reloadDebounce, logger)
			}
		}
	}

	// Block until we receive a signal or the server fails
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	var runErr error
	select {
	case sig := <-quit:
		logger.Info("received signal, shutting down gracefully", zap.String("signal", sig.String()))
	case <-parent.Done():
		logger.Info("context done, shutting down")
	case runErr = <-serverErr:
		logging.Error(logger, "HTTP server failed", runErr)
	}

	// Stops the poller and the watcher loop
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Warn("server forced to shutdown", zap.Error(err))
	} else {
		logger.Info("server shutdown complete")
	}

	logger.Info("deploy-dashboard daemon stopped")
	return runErr
}

// runPreflight logs the preflight results. Failed checks are warnings only.
func runPreflight(ctx context.Context, checker *preflight.Checker, logger *zap.Logger) {
	ctx, cancel := context.WithTimeout(ctx, preflightTimeout)
	defer cancel()

	result := checker.CheckAll(ctx)
	if result.AllMet {
		logger.Info("preflight checks passed")
		return
	}
	for _, msg := range result.Errors {
		logger.Warn("preflight check failed", zap.String("detail", msg))
	}
}

// triggerReload reloads the configuration file. It is used by the file
// watcher; POST /api/reload calls the same Reloader.
func triggerReload(reloader *dashboard.Reloader, logger *zap.Logger) {
	apiURL, err := reloader.Reload()
	if err != nil {
		logger.Warn("configuration reload failed, keeping previous settings", zap.Error(err))
		return
	}
	logger.Info("configuration reloaded", zap.String("apiURL", apiURL))
}
