package body

type PublicKey struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

type Quota struct {
	Deployments int `json:"deployments"`
	CpuCores    int `json:"cpuCores"`
	RAM         int `json:"ram"`
	DiskSize    int `json:"diskSize"`
	Snapshots   int `json:"snapshots"`
	// GpuLeaseDuration is expressed in hours.
	GpuLeaseDuration float64 `json:"gpuLeaseDuration"`
}

type Usage struct {
	Deployments int `json:"deployments"`
	CpuCores    int `json:"cpuCores"`
	RAM         int `json:"ram"`
	DiskSize    int `json:"diskSize"`
	Snapshots   int `json:"snapshots"`
}

type SmallUserRead struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type UserRead struct {
	ID         string      `json:"id"`
	Username   string      `json:"username"`
	FirstName  string      `json:"firstName"`
	LastName   string      `json:"lastName"`
	Email      string      `json:"email"`
	PublicKeys []PublicKey `json:"publicKeys"`
	Onboarded  bool        `json:"onboarded"`
	Role       Role        `json:"role"`
	Admin      bool        `json:"admin"`
	Quota      Quota       `json:"quota"`
	Usage      Usage       `json:"usage"`
	StorageURL *string     `json:"storageUrl,omitempty"`
}

type UserReadDiscovery struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

type UserUpdate struct {
	PublicKeys *[]PublicKey `json:"publicKeys,omitempty"`
	Onboarded  *bool        `json:"onboarded,omitempty"`
}

type UserDataRead struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
	Data   string `json:"data"`
}

type UserDataCreate struct {
	ID   string `json:"id"`
	Data string `json:"data"`
}

type UserDataUpdate struct {
	Data string `json:"data"`
}

type Role struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
	Quota       *Quota   `json:"quota,omitempty"`
}

type DiscoverRead struct {
	Version string `json:"version"`
	Roles   []Role `json:"roles"`
}
