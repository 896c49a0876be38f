package body

import "time"

type VmRead struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	OwnerID string  `json:"ownerId"`
	Zone    string  `json:"zone"`
	Host    *string `json:"host,omitempty"`

	CreatedAt  time.Time  `json:"createdAt"`
	UpdatedAt  *time.Time `json:"updatedAt,omitempty"`
	RepairedAt *time.Time `json:"repairedAt,omitempty"`

	Specs *Specs     `json:"specs,omitempty"`
	Ports []PortRead `json:"ports"`
	// The v1 API serves the lease under this key.
	GPU          *VmGpuLease `json:"gpu_repo,omitempty"`
	SshPublicKey string      `json:"sshPublicKey"`

	Teams []string `json:"teams"`

	Status           string  `json:"status"`
	ConnectionString *string `json:"connectionString,omitempty"`
}

type VmCreate struct {
	Name         string       `json:"name"`
	SshPublicKey string       `json:"sshPublicKey"`
	Ports        []PortCreate `json:"ports"`
	CpuCores     int          `json:"cpuCores"`
	RAM          int          `json:"ram"`
	DiskSize     int          `json:"diskSize"`
	Zone         *string      `json:"zone,omitempty"`
}

type VmUpdate struct {
	Name       *string       `json:"name,omitempty"`
	SnapshotID *string       `json:"snapshotId,omitempty"`
	Ports      *[]PortUpdate `json:"ports,omitempty"`
	CpuCores   *int          `json:"cpuCores,omitempty"`
	RAM        *int          `json:"ram,omitempty"`

	GpuID      *string `json:"gpuId,omitempty"`
	NoLeaseEnd *bool   `json:"noLeaseEnd,omitempty"`

	OwnerID      *string `json:"ownerId,omitempty"`
	TransferCode *string `json:"transferCode,omitempty"`
}

type VmUpdateOwner struct {
	NewOwnerID   string  `json:"newOwnerId"`
	OldOwnerID   string  `json:"oldOwnerId"`
	TransferCode *string `json:"transferCode,omitempty"`
}

type VmGpuLease struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	LeaseEnd time.Time `json:"leaseEnd"`
	Expired  bool      `json:"expired"`
}

type Specs struct {
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

type VmCommand struct {
	Command string `json:"command"`
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

type HttpProxyRead struct {
	Name               string  `json:"name"`
	URL                *string `json:"url,omitempty"`
	CustomDomain       *string `json:"customDomain,omitempty"`
	CustomDomainURL    *string `json:"customDomainUrl,omitempty"`
	CustomDomainStatus *string `json:"customDomainStatus,omitempty"`
	CustomDomainSecret *string `json:"customDomainSecret,omitempty"`
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
	ID          string    `json:"id"`
	VmID        string    `json:"vmId"`
	DisplayName string    `json:"displayName"`
	ParentName  *string   `json:"parentName,omitempty"`
	Created     time.Time `json:"created"`
	State       string    `json:"state"`
	Current     bool      `json:"current"`
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
