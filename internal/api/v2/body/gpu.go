package body

import "time"

type GpuGroupRead struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Zone        string `json:"zone"`
	Vendor      string `json:"vendor"`
	Total       int    `json:"total"`
	Available   int    `json:"available"`
}

type GpuLeaseGpuGroup struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type GpuLeaseRead struct {
	ID         string `json:"id"`
	GpuGroupID string `json:"gpuGroupId"`
	Active     bool   `json:"active"`
	UserID     string `json:"userId"`
	// VmID is set when the lease is attached to a VM.
	VmID          *string `json:"vmId,omitempty"`
	QueuePosition int     `json:"queuePosition"`
	LeaseDuration float64 `json:"leaseDuration"`

	ActivatedAt *time.Time `json:"activatedAt,omitempty"`
	AssignedAt  *time.Time `json:"assignedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	ExpiredAt   *time.Time `json:"expiredAt,omitempty"`
}

type GpuLeaseCreate struct {
	// GpuGroupID selects the kind of GPU to lease, not a specific card.
	GpuGroupID   string `json:"gpuGroupId"`
	LeaseForever bool   `json:"leaseForever"`
}

type GpuLeaseUpdate struct {
	// VmID attaches the lease to a VM, detaching it from any previous one.
	VmID *string `json:"vmId,omitempty"`
}

type GpuLeaseCreated struct {
	ID    string `json:"id"`
	JobID string `json:"jobId"`
}

type GpuLeaseUpdated struct {
	ID    string `json:"id"`
	JobID string `json:"jobId"`
}

type GpuLeaseDeleted struct {
	ID    string `json:"id"`
	JobID string `json:"jobId"`
}
