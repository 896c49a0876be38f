package body

import "time"

type UserRead struct {
	ID          string      `json:"id"`
	Username    string      `json:"username"`
	FirstName   string      `json:"firstName"`
	LastName    string      `json:"lastName"`
	Email       string      `json:"email"`
	PublicKeys  []PublicKey `json:"publicKeys"`
	ApiKeys     []ApiKey    `json:"apiKeys"`
	UserData    []UserData  `json:"userData"`
	Role        Role        `json:"role"`
	Admin       bool        `json:"admin"`
	Quota       Quota       `json:"quota"`
	Usage       Usage       `json:"usage"`
	StorageURL  *string     `json:"storageUrl,omitempty"`
	GravatarURL *string     `json:"gravatarUrl,omitempty"`
}

type UserReadDiscovery struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	FirstName   string  `json:"firstName"`
	LastName    string  `json:"lastName"`
	Email       string  `json:"email"`
	GravatarURL *string `json:"gravatarUrl,omitempty"`
}

type UserUpdate struct {
	PublicKeys *[]PublicKey `json:"publicKeys,omitempty"`
	// ApiKeys lists the keys that should remain; any other key is deleted.
	// Keys are created through the apiKeys endpoint, never here.
	ApiKeys  *[]ApiKey   `json:"apiKeys,omitempty"`
	UserData *[]UserData `json:"userData,omitempty"`
}

type UserData struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type PublicKey struct {
	Name string `json:"name"`
	Key  string `json:"key"`
}

type ApiKey struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ApiKeyCreate struct {
	Name      string    `json:"name"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type ApiKeyCreated struct {
	Name      string    `json:"name"`
	Key       string    `json:"key"`
	CreatedAt time.Time `json:"createdAt"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type Quota struct {
	CpuCores  float64 `json:"cpuCores"`
	RAM       float64 `json:"ram"`
	DiskSize  float64 `json:"diskSize"`
	Snapshots int     `json:"snapshots"`
	// GpuLeaseDuration is expressed in hours.
	GpuLeaseDuration float64 `json:"gpuLeaseDuration"`
}

type Usage struct {
	CpuCores float64 `json:"cpuCores"`
	RAM      float64 `json:"ram"`
	DiskSize int     `json:"diskSize"`
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
