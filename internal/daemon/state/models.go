// Package state defines the view model of the worker status dashboard.
//
// The Dashboard struct is the root state object: the ordered list of worker
// rows last rendered from the status endpoint, plus the phase of the
// dashboard. It is exposed via the /api/status endpoint and rendered into the
// HTML page and the CLI table.
package state

import "time"

// Phase is the lifecycle phase of the dashboard.
//
// The dashboard starts in PhaseIdle and moves to PhaseDisplaying on the first
// successful render. There is no terminal phase.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseDisplaying Phase = "displaying"
)

// WorkerRow is one rendered line of the dashboard.
//
// NameLabel and StatusLabel are the display forms produced by Label.
// StatusClass is the raw, untransformed status and is what styling keys on.
type WorkerRow struct {
	Name        string     `json:"name"`
	Status      string     `json:"status"`
	NameLabel   string     `json:"name_label"`
	StatusLabel string     `json:"status_label"`
	StatusClass string     `json:"status_class"`
	ReportedAt  *time.Time `json:"reported_at,omitempty"`
}

// Dashboard represents the complete dashboard state.
//
// Rows keeps the order in which the endpoint returned the records; it is
// never sorted. RefreshedAt is absent until the first successful render.
type Dashboard struct {
	SessionID   string      `json:"session_id"`
	CreatedAt   time.Time   `json:"created_at"`
	RefreshedAt *time.Time  `json:"refreshed_at,omitempty"`
	Phase       Phase       `json:"phase"`
	Rows        []WorkerRow `json:"rows"`
}
