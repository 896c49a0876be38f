// Package query contains the query-string shapes accepted by v1 list and get
// endpoints. Field names on the wire come from the form tags.
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

type DeploymentList struct {
	*Pagination

	All    bool    `form:"all"`
	UserID *string `form:"userId"`
	Shared bool    `form:"shared"`
}

type VmList struct {
	*Pagination

	All    bool    `form:"all"`
	UserID *string `form:"userId"`
	Shared bool    `form:"shared"`
}

type GpuList struct {
	*Pagination

	OnlyShowAvailable bool    `form:"available"`
	Zone              *string `form:"zone"`
}

type JobList struct {
	*Pagination

	All    bool    `form:"all"`
	UserID *string `form:"userId"`
	Type   *string `form:"type"`
	Status *string `form:"status"`
}

type NotificationList struct {
	*Pagination

	All    bool    `form:"all"`
	UserID *string `form:"userId"`
}

type TeamList struct {
	*Pagination

	All    bool    `form:"all"`
	UserID *string `form:"userId"`
}

type UserList struct {
	*Pagination

	All    bool    `form:"all"`
	Search *string `form:"search"`
}

type UserGet struct {
	Discover bool `form:"discover"`
}

type UserDataList struct {
	*Pagination
}

type SmList struct {
	*Pagination

	WantAll bool `form:"all"`
}

type VmSnapshotList struct {
	*Pagination
}

type ZoneList struct {
	Type *string `form:"type"`
}
