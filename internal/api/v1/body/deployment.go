package body

import "time"

type DeploymentRead struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Type    string `json:"type"`
	OwnerID string `json:"ownerId"`
	Zone    string `json:"zone"`

	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
	RepairedAt  *time.Time `json:"repairedAt,omitempty"`
	RestartedAt *time.Time `json:"restartedAt,omitempty"`

	URL             *string  `json:"url,omitempty"`
	Envs            []Env    `json:"envs"`
	Volumes         []Volume `json:"volumes"`
	InitCommands    []string `json:"initCommands"`
	Args            []string `json:"args"`
	Private         bool     `json:"private"`
	InternalPort    int      `json:"internalPort"`
	Image           *string  `json:"image,omitempty"`
	HealthCheckPath *string  `json:"healthCheckPath,omitempty"`
	Replicas        int      `json:"replicas"`

	CustomDomain       *string `json:"customDomain,omitempty"`
	CustomDomainURL    *string `json:"customDomainUrl,omitempty"`
	CustomDomainStatus *string `json:"customDomainStatus,omitempty"`
	CustomDomainSecret *string `json:"customDomainSecret,omitempty"`

	Status     string `json:"status"`
	PingResult *int   `json:"pingResult,omitempty"`

	// Integrations are currently not used, but could be used if we wanted to
	// add a list of integrations to the deployment, for example GitHub.
	Integrations []string `json:"integrations"`
	Teams        []string `json:"teams"`

	StorageURL *string `json:"storageUrl,omitempty"`
}

type DeploymentCreate struct {
	Name            string   `json:"name"`
	Image           *string  `json:"image,omitempty"`
	Private         bool     `json:"private"`
	Envs            []Env    `json:"envs"`
	Volumes         []Volume `json:"volumes"`
	InitCommands    []string `json:"initCommands"`
	Args            []string `json:"args"`
	HealthCheckPath *string  `json:"healthCheckPath,omitempty"`
	CustomDomain    *string  `json:"customDomain,omitempty"`
	Replicas        *int     `json:"replicas,omitempty"`
	Zone            *string  `json:"zone,omitempty"`
}

type DeploymentUpdate struct {
	Name            *string   `json:"name,omitempty"`
	Private         *bool     `json:"private,omitempty"`
	Envs            *[]Env    `json:"envs,omitempty"`
	Volumes         *[]Volume `json:"volumes,omitempty"`
	InitCommands    *[]string `json:"initCommands,omitempty"`
	Args            *[]string `json:"args,omitempty"`
	CustomDomain    *string   `json:"customDomain,omitempty"`
	Image           *string   `json:"image,omitempty"`
	HealthCheckPath *string   `json:"healthCheckPath,omitempty"`
	Replicas        *int      `json:"replicas,omitempty"`

	// update owner
	OwnerID      *string `json:"ownerId,omitempty"`
	TransferCode *string `json:"transferCode,omitempty"`
}

type Env struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type Volume struct {
	Name       string `json:"name"`
	AppPath    string `json:"appPath"`
	ServerPath string `json:"serverPath"`
}

type DeploymentUpdateOwner struct {
	NewOwnerID   string  `json:"newOwnerId"`
	OldOwnerID   string  `json:"oldOwnerId"`
	TransferCode *string `json:"transferCode,omitempty"`
}

type DeploymentBuild struct {
	Name      string `json:"Name"`
	Tag       string `json:"Tag"`
	Branch    string `json:"Branch"`
	ImportURL string `json:"ImportURL"`
}

type DeploymentCreated struct {
	ID    string `json:"id"`
	JobID string `json:"jobId"`
}

type DeploymentDeleted struct {
	ID    string `json:"id"`
	JobID string `json:"jobId"`
}

type DeploymentUpdated struct {
	ID    string  `json:"id"`
	JobID *string `json:"jobId,omitempty"`
}

type CiConfig struct {
	Config string `json:"config"`
}

type DeploymentCommand struct {
	Command string `json:"command"`
}

type LogMessage struct {
	Source    string    `json:"source"`
	Prefix    string    `json:"prefix"`
	Line      string    `json:"line"`
	CreatedAt time.Time `json:"createdAt"`
}
