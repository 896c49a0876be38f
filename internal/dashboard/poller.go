// Package dashboard drives the periodic refresh of the worker status view.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
	"k8s.io/apimachinery/pkg/util/wait"

	"github.com/meyrevived/deploy-dashboard/internal/api/v2/body"
	"github.com/meyrevived/deploy-dashboard/internal/metrics"
)

// Fetcher retrieves the current list of worker statuses.
type Fetcher interface {
	List(ctx context.Context) ([]body.WorkerStatusRead, error)
}

// Renderer replaces the displayed rows with the given statuses.
type Renderer interface {
	Render(statuses []body.WorkerStatusRead)
}

// Config holds the dependencies of a Poller.
type Config struct {
	Interval time.Duration
	Fetcher  Fetcher
	Renderer Renderer
	Logger   *zap.Logger
	Metrics  *metrics.Collector
}

// Poller fetches worker statuses on a fixed interval and hands every
// successful result to its Renderer.
type Poller struct {
	mu      sync.RWMutex
	fetcher Fetcher

	interval time.Duration
	renderer Renderer
	logger   *zap.Logger
	metrics  *metrics.Collector
}

// NewPoller validates cfg and returns a Poller. A nil Logger is replaced
// with a no-op logger and a nil Metrics collector records nothing.
func NewPoller(cfg Config) (*Poller, error) {
	if cfg.Interval <= 0 {
		return nil, fmt.Errorf("refresh interval must be positive, got %s", cfg.Interval)
	}
	if cfg.Fetcher == nil {
		return nil, errors.New("fetcher is required")
	}
	if cfg.Renderer == nil {
		return nil, errors.New("renderer is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Poller{
		fetcher:  cfg.Fetcher,
		interval: cfg.Interval,
		renderer: cfg.Renderer,
		logger:   logger,
		metrics:  cfg.Metrics,
	}, nil
}

// Interval returns the time between two ticks.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

// Fetcher returns the fetcher used by the next refresh.
func (p *Poller) Fetcher() Fetcher {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.fetcher
}

// SetFetcher swaps the fetcher. Refreshes already in flight finish against
// the old one.
func (p *Poller) SetFetcher(f Fetcher) {
	if f == nil {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	p.fetcher = f
}

// Refresh performs one fetch and, when it succeeds, renders the result.
//
// A failed fetch leaves the view exactly as it was. The error is returned to
// direct callers but the view itself never shows it.
func (p *Poller) Refresh(ctx context.Context) error {
	statuses, err := p.Fetcher().List(ctx)
	if err != nil {
		p.logger.Debug("worker status refresh failed", zap.Error(err))
		p.metrics.ObserveFailure()
		return err
	}

	p.renderer.Render(statuses)
	p.metrics.ObserveSuccess(len(statuses), time.Now())
	p.logger.Debug("worker status refreshed", zap.Int("rows", len(statuses)))
	return nil
}

// Run refreshes immediately and then once per interval until ctx is done.
//
// Each tick starts its refresh in its own goroutine without waiting for the
// previous one, so a slow endpoint can have several requests outstanding.
// Whichever response arrives last wins.
func (p *Poller) Run(ctx context.Context) {
	p.logger.Info("starting worker status poller", zap.Duration("interval", p.interval))

	wait.UntilWithContext(ctx, func(ctx context.Context) {
		go func() {
			_ = p.Refresh(ctx)
		}()
	}, p.interval)

	p.logger.Info("worker status poller stopped")
}
