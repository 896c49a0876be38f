package state

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/meyrevived/deploy-dashboard/internal/api/v2/body"
)

// StateManager holds the in-memory dashboard state.
//
// Every successful refresh replaces the row list wholesale through Render;
// rows are never patched in place, so a reader always sees either the whole
// previous list or the whole new one. The mutex makes that replacement safe
// when refreshes overlap.
type StateManager struct {
	mu sync.RWMutex

	state Dashboard

	now func() time.Time
}

// NewStateManager creates a StateManager in the idle phase with a fresh
// session ID and an empty row list.
func NewStateManager() *StateManager {
	return newStateManager(time.Now)
}

func newStateManager(now func() time.Time) *StateManager {
	return &StateManager{
		state: Dashboard{
			SessionID: uuid.New().String(),
			CreatedAt: now(),
			Phase:     PhaseIdle,
			Rows:      []WorkerRow{},
		},
		now: now,
	}
}

// GetState returns a copy of the current Dashboard state.
// The returned row slice is not shared with the manager.
func (m *StateManager) GetState() Dashboard {
	m.mu.RLock()
	defer m.mu.RUnlock()

	current := m.state
	current.Rows = make([]WorkerRow, len(m.state.Rows))
	copy(current.Rows, m.state.Rows)
	return current
}

// Render replaces the displayed rows with one row per status, in the order
// given, and moves the dashboard to PhaseDisplaying.
func (m *StateManager) Render(statuses []body.WorkerStatusRead) {
	rows := make([]WorkerRow, 0, len(statuses))
	for _, status := range statuses {
		rows = append(rows, NewWorkerRow(status))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	refreshedAt := m.now()
	m.state.Rows = rows
	m.state.RefreshedAt = &refreshedAt
	m.state.Phase = PhaseDisplaying
}

// NewWorkerRow derives the display row for one worker status record.
func NewWorkerRow(status body.WorkerStatusRead) WorkerRow {
	row := WorkerRow{
		Name:        status.Name,
		Status:      status.Status,
		NameLabel:   Label(status.Name),
		StatusLabel: Label(status.Status),
		StatusClass: status.Status,
	}
	if !status.ReportedAt.IsZero() {
		reportedAt := status.ReportedAt
		row.ReportedAt = &reportedAt
	}
	return row
}
