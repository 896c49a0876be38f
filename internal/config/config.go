// Package config provides configuration management for the status dashboard daemon.
//
// Configuration comes from an optional YAML file and from environment variables,
// with environment variables taking precedence. The refresh interval is always an
// explicit setting; it defaults to two seconds when neither source sets it.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v2"
)

const (
	// DefaultRefreshInterval is the polling interval used when none is configured.
	DefaultRefreshInterval = 2 * time.Second

	// DefaultListenAddr is where the daemon serves the dashboard.
	DefaultListenAddr = "localhost:8765"

	// MockWorkerStatusPath is the path the daemon serves static worker
	// statuses on when mock mode is enabled.
	MockWorkerStatusPath = "/v2/workerStatus"
)

// Config holds all settings required by the status dashboard daemon.
type Config struct {
	// APIURL is the endpoint polled for the worker status list
	APIURL string `yaml:"apiURL"`

	// RefreshInterval is the time between two polls of APIURL
	RefreshInterval time.Duration `yaml:"refreshInterval"`

	// ListenAddr is the address the daemon's HTTP server binds to
	ListenAddr string `yaml:"listenAddr"`

	// Debug switches logging to development mode
	Debug bool `yaml:"debug"`

	// Mock configures the static worker status source served by the daemon
	Mock MockConfig `yaml:"mock"`

	// Path is the configuration file the settings were read from, if any
	Path string `yaml:"-"`
}

// MockConfig configures the daemon's built-in static status source.
type MockConfig struct {
	Enabled bool         `yaml:"enabled"`
	Workers []MockWorker `yaml:"workers"`
}

// MockWorker is one static worker status served in mock mode.
type MockWorker struct {
	Name   string `yaml:"name"`
	Status string `yaml:"status"`
}

// DefaultMockWorkers are served in mock mode when no workers are configured.
var DefaultMockWorkers = []MockWorker{
	{Name: "confirmer", Status: "running"},
	{Name: "repairer", Status: "running"},
	{Name: "statusUpdater", Status: "running"},
	{Name: "snapshotter", Status: "stopped"},
}

// LoadConfig reads the file named by DASHBOARD_CONFIG (if set) and the
// environment, and constructs the Config struct.
//
// Environment variables:
//   - DASHBOARD_CONFIG: Path to a YAML configuration file (optional)
//   - DASHBOARD_API_URL: Endpoint to poll
//   - DASHBOARD_REFRESH_INTERVAL: Poll interval as a Go duration, e.g. "2s"
//   - DASHBOARD_LISTEN_ADDR: Address for the daemon's HTTP server
//   - DASHBOARD_MOCK: "true" to serve static worker statuses
func LoadConfig() (*Config, error) {
	return Load(os.Getenv("DASHBOARD_CONFIG"))
}

// Load constructs the Config from the YAML file at path (skipped when path is
// empty) overlaid with environment variables, and validates it.
func Load(path string) (*Config, error) {
	cfg := &Config{
		RefreshInterval: DefaultRefreshInterval,
		ListenAddr:      DefaultListenAddr,
	}

	if path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve config path %s: %w", path, err)
		}

		data, err := os.ReadFile(absPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.UnmarshalStrict(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", absPath, err)
		}
		cfg.Path = absPath
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if cfg.Mock.Enabled {
		if len(cfg.Mock.Workers) == 0 {
			cfg.Mock.Workers = append([]MockWorker(nil), DefaultMockWorkers...)
		}
		// Poll the daemon's own mock endpoint unless told otherwise
		if cfg.APIURL == "" {
			cfg.APIURL = "http://" + cfg.ListenAddr + MockWorkerStatusPath
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if apiURL := os.Getenv("DASHBOARD_API_URL"); apiURL != "" {
		c.APIURL = apiURL
	}

	if interval := os.Getenv("DASHBOARD_REFRESH_INTERVAL"); interval != "" {
		parsed, err := time.ParseDuration(interval)
		if err != nil {
			return fmt.Errorf("invalid DASHBOARD_REFRESH_INTERVAL %q: %w", interval, err)
		}
		c.RefreshInterval = parsed
	}

	if listenAddr := os.Getenv("DASHBOARD_LISTEN_ADDR"); listenAddr != "" {
		c.ListenAddr = listenAddr
	}

	if mock := os.Getenv("DASHBOARD_MOCK"); mock != "" {
		enabled, err := strconv.ParseBool(mock)
		if err != nil {
			return fmt.Errorf("invalid DASHBOARD_MOCK %q: %w", mock, err)
		}
		c.Mock.Enabled = enabled
	}

	return nil
}

// Validate checks that the endpoint is an absolute http(s) URL, that the
// refresh interval is positive and that a listen address is set.
func (c *Config) Validate() error {
	if c.APIURL == "" {
		return errors.New("apiURL is not set")
	}

	parsed, err := url.Parse(c.APIURL)
	if err != nil {
		return fmt.Errorf("apiURL is not a valid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("apiURL must use http or https: %s", c.APIURL)
	}
	if parsed.Host == "" {
		return fmt.Errorf("apiURL has no host: %s", c.APIURL)
	}

	if c.RefreshInterval <= 0 {
		return fmt.Errorf("refreshInterval must be positive, got %s", c.RefreshInterval)
	}

	if c.ListenAddr == "" {
		return errors.New("listenAddr is not set")
	}

	return nil
}

// GetAPIURL returns the endpoint polled for worker statuses.
func (c *Config) GetAPIURL() string {
	return c.APIURL
}

// GetRefreshInterval returns the time between two polls.
func (c *Config) GetRefreshInterval() time.Duration {
	return c.RefreshInterval
}

// GetListenAddr returns the daemon's HTTP listen address.
func (c *Config) GetListenAddr() string {
	return c.ListenAddr
}

// GetPath returns the configuration file path, or "" when none was used.
func (c *Config) GetPath() string {
	return c.Path
}
