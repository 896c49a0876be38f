// Package metrics exposes Prometheus collectors for the dashboard poller.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "dashboard"

// Result label values of the refresh counter.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

// Collector records the outcome of every dashboard refresh.
// A nil *Collector is valid and records nothing.
type Collector struct {
	refreshes   *prometheus.CounterVec
	rows        prometheus.Gauge
	lastSuccess prometheus.Gauge
}

// New creates the collectors and registers them on reg.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		refreshes: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "refresh_total",
				Help:      "Number of worker status refreshes by result.",
			},
			[]string{"result"},
		),
		rows: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "rows",
				Help:      "Number of worker rows currently displayed.",
			},
		),
		lastSuccess: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "last_success_timestamp_seconds",
				Help:      "Unix time of the last successful refresh.",
			},
		),
	}

	reg.MustRegister(c.refreshes, c.rows, c.lastSuccess)
	return c
}

// ObserveSuccess records a successful refresh that rendered rows at the given time.
func (c *Collector) ObserveSuccess(rows int, at time.Time) {
	if c == nil {
		return
	}
	c.refreshes.WithLabelValues(ResultSuccess).Inc()
	c.rows.Set(float64(rows))
	c.lastSuccess.Set(float64(at.Unix()))
}

// ObserveFailure records a refresh whose fetch failed.
func (c *Collector) ObserveFailure() {
	if c == nil {
		return
	}
	c.refreshes.WithLabelValues(ResultFailure).Inc()
}
