// Package preflight checks that the daemon can do useful work before it
// starts serving the dashboard.
//
// It validates the configuration and performs one fetch against the worker
// status endpoint. Failures are reported, never fatal: the poller keeps
// trying on its own schedule.
package preflight

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meyrevived/deploy-dashboard/internal/client"
	"github.com/meyrevived/deploy-dashboard/internal/config"
	"github.com/meyrevived/deploy-dashboard/internal/dashboard"
)

// Check status values.
const (
	StatusOK               = "ok"
	StatusInvalid          = "invalid"
	StatusUnreachable      = "unreachable"
	StatusUnexpectedStatus = "unexpected_status"
)

// DefaultEndpointTimeout bounds the endpoint check.
const DefaultEndpointTimeout = 5 * time.Second

// Check represents the result of a single preflight check.
type Check struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Detail  string `json:"detail,omitempty"`
	Workers int    `json:"workers,omitempty"`
}

// CheckResult aggregates all checks. AllMet is true only when every check
// reports StatusOK.
type CheckResult struct {
	Checks map[string]Check `json:"checks"`
	AllMet bool             `json:"all_met"`
	Errors []string         `json:"errors,omitempty"`
}

// Checker runs the preflight checks.
type Checker struct {
	config  func() *config.Config
	fetcher func() dashboard.Fetcher
	timeout time.Duration
}

// NewChecker returns a Checker. cfg and fetcher are called on every run so
// that a reloaded configuration and endpoint are checked rather than the
// startup ones.
func NewChecker(cfg func() *config.Config, fetcher func() dashboard.Fetcher) *Checker {
	return &Checker{
		config:  cfg,
		fetcher: fetcher,
		timeout: DefaultEndpointTimeout,
	}
}

// CheckAll runs the config check and the endpoint check.
func (c *Checker) CheckAll(ctx context.Context) *CheckResult {
	result := &CheckResult{
		Checks: make(map[string]Check),
		AllMet: true,
		Errors: []string{},
	}

	for _, check := range []Check{c.checkConfig(), c.checkEndpoint(ctx)} {
		result.Checks[check.Name] = check
		if check.Status != StatusOK {
			result.AllMet = false
			result.Errors = append(result.Errors, fmt.Sprintf("%s: %s", check.Name, check.Detail))
		}
	}

	return result
}

func (c *Checker) checkConfig() Check {
	check := Check{Name: "config", Status: StatusOK}

	var cfg *config.Config
	if c.config != nil {
		cfg = c.config()
	}
	if cfg == nil {
		check.Status = StatusInvalid
		check.Detail = "no configuration loaded"
		return check
	}
	if err := cfg.Validate(); err != nil {
		check.Status = StatusInvalid
		check.Detail = err.Error()
	}
	return check
}

func (c *Checker) checkEndpoint(ctx context.Context) Check {
	check := Check{Name: "endpoint", Status: StatusOK}

	var fetcher dashboard.Fetcher
	if c.fetcher != nil {
		fetcher = c.fetcher()
	}
	if fetcher == nil {
		check.Status = StatusUnreachable
		check.Detail = "no endpoint configured"
		return check
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	statuses, err := fetcher.List(ctx)
	switch {
	case err == nil:
		check.Workers = len(statuses)
	case errors.Is(err, client.ErrUnexpectedStatus):
		check.Status = StatusUnexpectedStatus
		check.Detail = err.Error()
	default:
		check.Status = StatusUnreachable
		check.Detail = err.Error()
	}
	return check
}
