package api

import (
	"net/http"

	"github.com/meyrevived/deploy-dashboard/internal/config"
)

// NewRouter creates and configures a new HTTP router with all daemon endpoints.
//
// The mock worker status endpoint is registered only when mock mode is
// enabled in the handlers' configuration.
//
// Example:
//
//	handlers := NewHandlers(stateManager, cfg, logger)
//	router := NewRouter(handlers)
//	http.ListenAndServe(cfg.GetListenAddr(), router)
func NewRouter(handlers *Handlers) *http.ServeMux {
	mux := http.NewServeMux()

	// GET / - Rendered dashboard page
	mux.HandleFunc("/", handlers.IndexHandler)

	// GET /api/status - Dashboard state as JSON
	mux.HandleFunc("/api/status", handlers.StatusHandler)

	// GET /api/preflight - Preflight check results
	mux.HandleFunc("/api/preflight", handlers.PreflightHandler)

	// POST /api/reload - Re-reads the configuration file
	mux.HandleFunc("/api/reload", handlers.ReloadHandler)

	// GET /metrics - Prometheus metrics
	mux.HandleFunc("/metrics", handlers.MetricsHandler)

	if handlers.Config != nil && handlers.Config.Mock.Enabled {
		mux.HandleFunc(config.MockWorkerStatusPath, handlers.MockWorkerStatusHandler)
	}

	return mux
}
