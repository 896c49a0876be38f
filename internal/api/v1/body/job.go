package body

import (
	"time"

	"github.com/meyrevived/deploy-dashboard/internal/api/common"
)

type JobRead struct {
	ID         string     `json:"id"`
	UserID     string     `json:"userId"`
	Type       string     `json:"type"`
	Status     string     `json:"status"`
	LastError  *string    `json:"lastError,omitempty"`
	CreatedAt  time.Time  `json:"createdAt"`
	LastRunAt  *time.Time `json:"lastRunAt,omitempty"`
	FinishedAt *time.Time `json:"finishedAt,omitempty"`
	RunAfter   *time.Time `json:"runAfter,omitempty"`
}

type JobUpdate struct {
	Status *string `json:"status,omitempty"`
}

type NotificationRead struct {
	ID          string                 `json:"id"`
	UserID      string                 `json:"userId"`
	Type        string                 `json:"type"`
	Content     map[string]common.JSON `json:"content"`
	CreatedAt   time.Time              `json:"createdAt"`
	ReadAt      *time.Time             `json:"readAt,omitempty"`
	CompletedAt *time.Time             `json:"completedAt,omitempty"`
}

type NotificationUpdate struct {
	Read bool `json:"read"`
}

type WorkerStatusRead struct {
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	ReportedAt time.Time `json:"reported_at"`
}
