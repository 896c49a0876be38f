// Package api provides HTTP handlers for the dashboard daemon.
//
// The daemon serves the rendered dashboard page, the same state as JSON,
// preflight results, a manual configuration reload and Prometheus metrics.
// In mock mode it also serves a static worker status list so that the
// poller has something to fetch without a backend.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/meyrevived/deploy-dashboard/internal/api"
	"github.com/meyrevived/deploy-dashboard/internal/api/v2/body"
	"github.com/meyrevived/deploy-dashboard/internal/config"
	"github.com/meyrevived/deploy-dashboard/internal/daemon/state"
	"github.com/meyrevived/deploy-dashboard/internal/dashboard"
	"github.com/meyrevived/deploy-dashboard/internal/logging"
	"github.com/meyrevived/deploy-dashboard/internal/preflight"
	"github.com/meyrevived/deploy-dashboard/internal/render"
)

// StateManager abstracts read access to the dashboard state.
//
// Handlers never modify the state; only the poller renders into it.
type StateManager interface {
	GetState() state.Dashboard
}

// PreflightChecker runs the daemon's preflight checks.
type PreflightChecker interface {
	CheckAll(ctx context.Context) *preflight.CheckResult
}

// ConfigReloader re-reads the configuration file and exposes the
// configuration in effect.
type ConfigReloader interface {
	Reload() (string, error)
	Current() *config.Config
}

// Handlers holds dependencies for all HTTP handlers.
//
// Preflight, Reloader and Metrics are optional; the matching endpoints
// answer 501 Not Implemented when they are nil.
type Handlers struct {
	StateManager StateManager
	Config       *config.Config
	Preflight    PreflightChecker
	Reloader     ConfigReloader
	Metrics      http.Handler
	Logger       *zap.Logger

	now func() time.Time
}

// NewHandlers creates a Handlers instance with the required dependencies.
func NewHandlers(stateManager StateManager, cfg *config.Config, logger *zap.Logger) *Handlers {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handlers{
		StateManager: stateManager,
		Config:       cfg,
		Logger:       logger,
		now:          time.Now,
	}
}

// IndexHandler handles GET / requests.
// It renders the dashboard page; any other path under / is not found.
func (h *Handlers) IndexHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.HTML(w, h.StateManager.GetState(), h.Config.GetRefreshInterval(), h.now()); err != nil {
		logging.Error(h.Logger, "failed to render dashboard", err)
	}
}

// StatusHandler handles GET /api/status requests.
// It returns the current dashboard state as JSON.
func (h *Handlers) StatusHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, h.StateManager.GetState())
}

// PreflightHandler handles GET /api/preflight requests.
// It answers 200 when every check passes and 503 otherwise, with the
// results as the body in both cases.
func (h *Handlers) PreflightHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.Preflight == nil {
		h.writeJSON(w, http.StatusNotImplemented, api.ErrorResponse{
			Status: "not_implemented",
			Error:  "preflight checks are not configured",
		})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	result := h.Preflight.CheckAll(ctx)
	status := http.StatusOK
	if !result.AllMet {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, result)
}

// ReloadHandler handles POST /api/reload requests.
// It re-reads the configuration file and reports the endpoint now polled.
func (h *Handlers) ReloadHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.Reloader == nil {
		h.writeJSON(w, http.StatusNotImplemented, api.ErrorResponse{
			Status: "not_implemented",
			Error:  dashboard.ErrNoConfigFile.Error(),
		})
		return
	}

	apiURL, err := h.Reloader.Reload()
	switch {
	case errors.Is(err, dashboard.ErrNoConfigFile):
		h.writeJSON(w, http.StatusNotImplemented, api.ErrorResponse{
			Status: "not_implemented",
			Error:  err.Error(),
		})
	case err != nil:
		h.Logger.Warn("configuration reload failed", zap.Error(err))
		h.writeJSON(w, http.StatusUnprocessableEntity, api.ErrorResponse{
			Status: "invalid",
			Error:  err.Error(),
		})
	default:
		h.writeJSON(w, http.StatusOK, api.ReloadResponse{
			Status: "reloaded",
			APIURL: apiURL,
		})
	}
}

// MetricsHandler handles GET /metrics requests by delegating to Metrics.
func (h *Handlers) MetricsHandler(w http.ResponseWriter, r *http.Request) {
	if h.Metrics == nil {
		http.Error(w, "Metrics are not enabled", http.StatusNotImplemented)
		return
	}
	h.Metrics.ServeHTTP(w, r)
}

// MockWorkerStatusHandler handles GET requests for the static worker status
// list configured in mock mode. Every record reports the current time.
// The list follows reloads; the route itself is only registered when mock
// mode is on at startup.
func (h *Handlers) MockWorkerStatusHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	reportedAt := h.now().UTC()
	workers := h.currentConfig().Mock.Workers
	statuses := make([]body.WorkerStatusRead, 0, len(workers))
	for _, worker := range workers {
		statuses = append(statuses, body.WorkerStatusRead{
			Name:       worker.Name,
			Status:     worker.Status,
			ReportedAt: reportedAt,
		})
	}
	h.writeJSON(w, http.StatusOK, statuses)
}

// currentConfig returns the reloaded configuration when there is one and the
// startup configuration otherwise.
func (h *Handlers) currentConfig() *config.Config {
	if h.Reloader != nil {
		if cfg := h.Reloader.Current(); cfg != nil {
			return cfg
		}
	}
	return h.Config
}

func (h *Handlers) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.Logger.Warn("failed to encode response", zap.Error(err))
	}
}
