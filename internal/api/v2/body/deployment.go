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
	AccessedAt  time.Time  `json:"accessedAt"`

	URL             *string           `json:"url,omitempty"`
	Specs           DeploymentSpecs   `json:"specs"`
	Envs            []Env             `json:"envs"`
	Volumes         []Volume          `json:"volumes"`
	InitCommands    []string          `json:"initCommands"`
	Args            []string          `json:"args"`
	InternalPort    int               `json:"internalPort"`
	Image           *string           `json:"image,omitempty"`
	HealthCheckPath *string           `json:"healthCheckPath,omitempty"`
	CustomDomain    *CustomDomainRead `json:"customDomain,omitempty"`
	Visibility      string            `json:"visibility"`
	NeverStale      bool              `json:"neverStale"`

	// Deprecated: Use Visibility instead.
	Private bool `json:"private"`

	Status        string         `json:"status"`
	Error         *string        `json:"error,omitempty"`
	ReplicaStatus *ReplicaStatus `json:"replicaStatus,omitempty"`
	PingResult    *int           `json:"pingResult,omitempty"`

	// Integrations are currently not used, but could be used if we wanted to
	// add a list of integrations to the deployment, for example GitHub.
	Integrations []string `json:"integrations"`
	Teams        []string `json:"teams"`

	StorageURL *string `json:"storageUrl,omitempty"`
}

type DeploymentCreate struct {
	Name     string   `json:"name"`
	CpuCores *float64 `json:"cpuCores,omitempty"`
	RAM      *float64 `json:"ram,omitempty"`
	Replicas *int     `json:"replicas,omitempty"`

	Envs         []Env    `json:"envs"`
	Volumes      []Volume `json:"volumes"`
	InitCommands []string `json:"initCommands"`
	Args         []string `json:"args"`
	Visibility   string   `json:"visibility"`
	// NeverStale keeps the deployment from being disabled when it is stale.
	NeverStale bool `json:"neverStale"`

	// Deprecated: Use Visibility instead.
	Private bool `json:"private"`

	Image           *string `json:"image,omitempty"`
	HealthCheckPath *string `json:"healthCheckPath,omitempty"`
	// CustomDomain is the domain that the deployment will be available on.
	CustomDomain *string `json:"customDomain,omitempty"`
	// Zone is the zone that the deployment will be created in. The backend
	// picks its default zone when absent.
	Zone *string `json:"zone,omitempty"`
}

type DeploymentUpdate struct {
	Name     *string  `json:"name,omitempty"`
	CpuCores *float64 `json:"cpuCores,omitempty"`
	RAM      *float64 `json:"ram,omitempty"`
	Replicas *int     `json:"replicas,omitempty"`

	Envs         *[]Env    `json:"envs,omitempty"`
	Volumes      *[]Volume `json:"volumes,omitempty"`
	InitCommands *[]string `json:"initCommands,omitempty"`
	Args         *[]string `json:"args,omitempty"`
	Visibility   *string   `json:"visibility,omitempty"`
	NeverStale   *bool     `json:"neverStale,omitempty"`

	// Deprecated: Use Visibility instead.
	Private *bool `json:"private,omitempty"`

	Image           *string `json:"image,omitempty"`
	HealthCheckPath *string `json:"healthCheckPath,omitempty"`
	CustomDomain    *string `json:"customDomain,omitempty"`
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

type DeploymentBuild struct {
	Name      string `json:"Name"`
	Tag       string `json:"Tag"`
	Branch    string `json:"Branch"`
	ImportURL string `json:"ImportURL"`
}

type ReplicaStatus struct {
	// DesiredReplicas is the number of replicas that the deployment should have.
	DesiredReplicas int `json:"desiredReplicas"`
	// ReadyReplicas is the number of replicas that are ready.
	ReadyReplicas int `json:"readyReplicas"`
	// AvailableReplicas is the number of replicas that are available.
	AvailableReplicas int `json:"availableReplicas"`
	// UnavailableReplicas is the number of replicas that are unavailable.
	UnavailableReplicas int `json:"unavailableReplicas"`
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

type DeploymentSpecs struct {
	CpuCores float64 `json:"cpuCores"`
	RAM      float64 `json:"ram"`
	Replicas int     `json:"replicas"`
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
