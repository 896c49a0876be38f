// Package query contains the query-string shapes accepted by v2 list and get
// endpoints.
package query

// Sort orders accepted in SortBy.Order.
const (
	SortAscending  = 1
	SortDescending = -1
)

type Pagination struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

type SortBy struct {
	Field string `form:"sortBy"`
	Order int    `form:"sortOrder"`
}

type Env struct {
	Key string `json:"key" form:"key"`
	Val string `json:"val" form:"val"`
}

type DeploymentGet struct {
	// MigrationCode is used when fetching a deployment that is being
	// migrated. Only the user receiving the deployment knows it.
	MigrationCode *string `json:"migrationCode,omitempty" form:"migrationCode"`
}

type DeploymentList struct {
	*Pagination

	All    bool    `form:"all"`
	UserID *string `form:"userId"`
}

type DeploymentUpdate struct {
	Envs []map[string]string `json:"envs" form:"envs"`
}

type GpuGroupList struct {
	*Pagination
}

type GpuLeaseList struct {
	*Pagination

	All   bool     `form:"all"`
	VmIDs []string `form:"vmId"`
}

type GpuLeaseCreate struct{}

type JobList struct {
	*Pagination
	*SortBy

	All           bool     `form:"all"`
	Status        []string `form:"status"`
	ExcludeStatus []string `form:"excludeStatus"`
	Types         []string `form:"type"`
	ExcludeTypes  []string `form:"excludeType"`
	UserID        *string  `form:"userId"`
}

type NotificationList struct {
	*Pagination

	All    bool    `form:"all"`
	UserID *string `form:"userId"`
}

type ResourceMigrationList struct {
	*Pagination
}

type SmList struct {
	*Pagination

	All bool `form:"all"`
}

type VmSnapshotList struct {
	*Pagination
}

type StatusList struct{}

type TeamList struct {
	*Pagination

	UserID *string `form:"userId"`
	All    bool    `form:"all"`
}

// TimestampRequest limits timestamped system series to the N latest entries.
type TimestampRequest struct {
	N int `form:"n"`
}

type UserGet struct {
	Discover bool `form:"discover"`
}

type UserList struct {
	*Pagination

	All      bool    `form:"all"`
	Search   *string `form:"search"`
	Discover bool    `form:"discover"`
}

type VmGet struct {
	MigrationCode *string `json:"migrationCode,omitempty" form:"migrationCode"`
}

type VmList struct {
	*Pagination

	All    bool    `form:"all"`
	UserID *string `form:"userId"`
}

type VmActionCreate struct {
	VmID string `form:"vmId"`
}

type ZoneList struct{}
