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
	ToastedAt   *time.Time             `json:"toastedAt,omitempty"`
	CompletedAt *time.Time             `json:"completedAt,omitempty"`
}

type NotificationUpdate struct {
	Read    bool `json:"read"`
	Toasted bool `json:"toasted"`
}

// WorkerStatusRead is one entry of the worker status list polled by the
// status dashboard.
type WorkerStatusRead struct {
	Name       string    `json:"name"`
	Status     string    `json:"status"`
	ReportedAt time.Time `json:"reportedAt"`
}

// UpdateOwnerParams carries the parameters of an updateOwner migration.
type UpdateOwnerParams struct {
	OwnerID string `json:"ownerId"`
}

type ResourceMigrationRead struct {
	ID string `json:"id"`
	// ResourceID is a VM ID, deployment ID, etc. depending on ResourceType.
	ResourceID string `json:"resourceId"`
	// UserID is the user who initiated the migration.
	UserID string `json:"userId"`
	// Type is one of: updateOwner.
	Type string `json:"type"`
	// ResourceType is one of: vm, deployment.
	ResourceType string `json:"resourceType"`
	// Status 'accepted' makes the migration run and then be deleted.
	Status string `json:"status"`
	// UpdateOwner is only present for updateOwner migrations.
	UpdateOwner *UpdateOwnerParams `json:"updateOwner,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}

type ResourceMigrationCreate struct {
	Type       string `json:"type"`
	ResourceID string `json:"resourceId"`
	// Status is honoured for admins only: accepted or pending.
	Status      *string            `json:"status,omitempty"`
	UpdateOwner *UpdateOwnerParams `json:"updateOwner,omitempty"`
}

type ResourceMigrationUpdate struct {
	Status string `json:"status"`
	// Code must accompany an acceptance by a non-admin. It is delivered to
	// the acceptor through a notification.
	Code *string `json:"code,omitempty"`
}

type ResourceMigrationCreated struct {
	ResourceMigrationRead

	// JobID is only set when the migration was created as accepted.
	JobID *string `json:"jobId,omitempty"`
}

type ResourceMigrationUpdated struct {
	ResourceMigrationRead

	// JobID is only set when the migration was updated to accepted.
	JobID *string `json:"jobId,omitempty"`
}
