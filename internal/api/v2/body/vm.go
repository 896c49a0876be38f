package body

import "time"

type VmRead struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	InternalName *string `json:"internalName,omitempty"`
	OwnerID      string  `json:"ownerId"`
	Zone         string  `json:"zone"`
	Host         *string `json:"host,omitempty"`

	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
	RepairedAt *time.Time `json:"repairedAt,omitempty"`
	AccessedAt time.Time  `json:"accessedAt"`

	NeverStale bool `json:"neverStale"`

	Specs        VmSpecs     `json:"specs"`
	Ports        []PortRead  `json:"ports"`
	GPU          *VmGpuLease `json:"gpu,omitempty"`
	SshPublicKey string      `json:"sshPublicKey"`

	Teams []string `json:"teams"`

	Status              string  `json:"status"`
	SshConnectionString *string `json:"sshConnectionString,omitempty"`
}

type VmCreate struct {
	Name         string       `json:"name"`
	SshPublicKey string       `json:"sshPublicKey"`
	Ports        []PortCreate `json:"ports"`

	CpuCores int `json:"cpuCores"`
	RAM      int `json:"ram"`
	DiskSize int `json:"diskSize"`

	Zone *string `json:"zone,omitempty"`

	NeverStale bool `json:"neverStale"`
}

type VmUpdate struct {
	Name       *string       `json:"name,omitempty"`
	Ports      *[]PortUpdate `json:"ports,omitempty"`
	CpuCores   *int          `json:"cpuCores,omitempty"`
	RAM        *int          `json:"ram,omitempty"`
	NeverStale *bool         `json:"neverStale,omitempty"`
}

type VmUpdateOwner struct {
	NewOwnerID string `json:"newOwnerId"`
	OldOwnerID string `json:"oldOwnerId"`
}

type VmGpuLease struct {
	ID            string  `json:"id"`
	GpuGroupID    string  `json:"gpuGroupId"`
	LeaseDuration float64 `json:"leaseDuration"`
	// ActivatedAt is when the user first attached the GPU, or one day after
	// the lease was created if it was never attached.
	ActivatedAt *time.Time `json:"activatedAt,omitempty"`
	AssignedAt  *time.Time `json:"assignedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	// ExpiresAt is only present while the lease is active.
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
	// ExpiredAt is only present once the lease has expired.
	ExpiredAt *time.Time `json:"expiredAt,omitempty"`
}

type VmSpecs struct {
	CpuCores *int `json:"cpuCores,omitempty"`
	RAM      *int `json:"ram,omitempty"`
	DiskSize *int `json:"diskSize,omitempty"`
}

type VmCreated struct {
	ID    string `json:"id"`
	JobID string `json:"jobId"`
}

type VmDeleted struct {
	ID    string `json:"id"`
	JobID string `json:"jobId"`
}

type VmUpdated struct {
	ID    string  `json:"id"`
	JobID *string `json:"jobId,omitempty"`
}

type VmActionCreate struct {
	Action string `json:"action"`
}

type VmActionCreated struct {
	ID    string `json:"id"`
	JobID string `json:"jobId"`
}

type PortRead struct {
	Name         *string        `json:"name,omitempty"`
	Port         *int           `json:"port,omitempty"`
	ExternalPort *int           `json:"externalPort,omitempty"`
	Protocol     *string        `json:"protocol,omitempty"`
	HttpProxy    *HttpProxyRead `json:"httpProxy,omitempty"`
}

type PortCreate struct {
	Name      string           `json:"name"`
	Port      int              `json:"port"`
	Protocol  string           `json:"protocol"`
	HttpProxy *HttpProxyCreate `json:"httpProxy,omitempty"`
}

type PortUpdate struct {
	Name      *string          `json:"name,omitempty"`
	Port      *int             `json:"port,omitempty"`
	Protocol  *string          `json:"protocol,omitempty"`
	HttpProxy *HttpProxyUpdate `json:"httpProxy,omitempty"`
}

type CustomDomainRead struct {
	Domain string `json:"domain"`
	URL    string `json:"url"`
	Status string `json:"status"`
	Secret string `json:"secret"`
}

type HttpProxyRead struct {
	Name         string            `json:"name"`
	URL          *string           `json:"url,omitempty"`
	CustomDomain *CustomDomainRead `json:"customDomain,omitempty"`
}

type HttpProxyCreate struct {
	Name         string  `json:"name"`
	CustomDomain *string `json:"customDomain,omitempty"`
}

type HttpProxyUpdate struct {
	Name         *string `json:"name,omitempty"`
	CustomDomain *string `json:"customDomain,omitempty"`
}

type VmSnapshotRead struct {
	ID      string    `json:"id"`
	Name    string    `json:"name"`
	Status  string    `json:"status"`
	Created time.Time `json:"created"`
}

type VmSnapshotCreate struct {
	Name string `json:"name"`
}

type VmSnapshotCreated struct {
	ID    string `json:"id"`
	JobID string `json:"jobId"`
}

type VmSnapshotDeleted struct {
	ID    string `json:"id"`
	JobID string `json:"jobId"`
}
