package dashboard

import (
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/meyrevived/deploy-dashboard/internal/config"
)

// ErrNoConfigFile is returned by Reload when the daemon was started without
// a configuration file.
var ErrNoConfigFile = errors.New("no configuration file to reload")

// FetcherFactory builds a Fetcher for an endpoint URL.
type FetcherFactory func(apiURL string) Fetcher

// Reloader re-reads the configuration file and points the Poller at the
// endpoint it names.
//
// Only the endpoint is reloadable. Changes to the interval or the listen
// address are logged and take effect on the next restart.
type Reloader struct {
	mu sync.Mutex

	current    *config.Config
	poller     *Poller
	newFetcher FetcherFactory
	logger     *zap.Logger
}

// NewReloader returns a Reloader starting from the already loaded cfg.
func NewReloader(cfg *config.Config, poller *Poller, newFetcher FetcherFactory, logger *zap.Logger) *Reloader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reloader{
		current:    cfg,
		poller:     poller,
		newFetcher: newFetcher,
		logger:     logger,
	}
}

// Path returns the configuration file being reloaded.
func (r *Reloader) Path() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current.GetPath()
}

// Current returns the configuration that is in effect, which is the one most
// recently loaded successfully.
func (r *Reloader) Current() *config.Config {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.current
}

// Reload reads the configuration file again and returns the endpoint the
// poller uses afterwards. On error the previous configuration stays active.
func (r *Reloader) Reload() (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	path := r.current.GetPath()
	if path == "" {
		return r.current.GetAPIURL(), ErrNoConfigFile
	}

	next, err := config.Load(path)
	if err != nil {
		return r.current.GetAPIURL(), fmt.Errorf("failed to reload configuration: %w", err)
	}

	if next.GetRefreshInterval() != r.current.GetRefreshInterval() {
		r.logger.Warn("refresh interval change requires a restart",
			zap.Duration("current", r.current.GetRefreshInterval()),
			zap.Duration("configured", next.GetRefreshInterval()))
	}
	if next.GetListenAddr() != r.current.GetListenAddr() {
		r.logger.Warn("listen address change requires a restart",
			zap.String("current", r.current.GetListenAddr()),
			zap.String("configured", next.GetListenAddr()))
	}

	if next.GetAPIURL() != r.current.GetAPIURL() {
		r.poller.SetFetcher(r.newFetcher(next.GetAPIURL()))
		r.logger.Info("worker status endpoint changed",
			zap.String("from", r.current.GetAPIURL()),
			zap.String("to", next.GetAPIURL()))
	}

	r.current = next
	return next.GetAPIURL(), nil
}
