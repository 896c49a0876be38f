// Package uri contains the path parameter shapes of the v1 API.
package uri

type DeploymentGet struct {
	DeploymentID string `uri:"deploymentId"`
}

type DeploymentUpdate struct {
	DeploymentID string `uri:"deploymentId"`
}

type DeploymentDelete struct {
	DeploymentID string `uri:"deploymentId"`
}

type LogsGet struct {
	DeploymentID string `uri:"deploymentId"`
}

type VmGet struct {
	VmID string `uri:"vmId"`
}

type VmUpdate struct {
	VmID string `uri:"vmId"`
}

type VmDelete struct {
	VmID string `uri:"vmId"`
}

type VmSnapshotList struct {
	VmID string `uri:"vmId"`
}

type VmSnapshotCreate struct {
	VmID string `uri:"vmId"`
}

// VmSnapshotGet addresses one snapshot of one VM.
type VmSnapshotGet struct {
	VmID       string `uri:"vmId"`
	SnapshotID string `uri:"snapshotId"`
}

type VmSnapshotDelete struct {
	VmID       string `uri:"vmId"`
	SnapshotID string `uri:"snapshotId"`
}

type GpuGet struct {
	GpuID string `uri:"gpuId"`
}

type JobGet struct {
	JobID string `uri:"jobId"`
}

type JobUpdate struct {
	JobID string `uri:"jobId"`
}

type NotificationGet struct {
	NotificationID string `uri:"notificationId"`
}

type NotificationUpdate struct {
	NotificationID string `uri:"notificationId"`
}

type NotificationDelete struct {
	NotificationID string `uri:"notificationId"`
}

type TeamGet struct {
	TeamID string `uri:"teamId"`
}

type TeamUpdate struct {
	TeamID string `uri:"teamId"`
}

type UserGet struct {
	UserID string `uri:"userId"`
}

type UserUpdate struct {
	UserID string `uri:"userId"`
}

type UserDataGet struct {
	ID string `uri:"id"`
}

type UserDataUpdate struct {
	ID string `uri:"id"`
}

type SmGet struct {
	SmID string `uri:"storageManagerId"`
}

type SmDelete struct {
	SmID string `uri:"storageManagerId"`
}
