package body

import "time"

type HostBase struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	// Zone is the name of the zone where the host is located.
	Zone string `json:"zone"`
}

type HostRead struct {
	HostBase
}

type HostRegisterParams struct {
	Name string `json:"name"`
	// DisplayName defaults to Name on the backend when empty.
	DisplayName string `json:"displayName"`
	IP          string `json:"ip"`
	// Port is where the host listens for API requests.
	Port int    `json:"port"`
	Zone string `json:"zone"`
	// Token is the discovery token validated against the backend config.
	Token       string `json:"token"`
	Enabled     bool   `json:"enabled"`
	Schedulable bool   `json:"schedulable"`
}

type ClusterRegisterParams struct{}

type TimestampedSystemCapacities struct {
	Capacities SystemCapacities `json:"capacities"`
	Timestamp  time.Time        `json:"timestamp"`
}

type SystemCapacities struct {
	CpuCore  CpuCoreCapacities   `json:"cpuCore"`
	RAM      RamCapacities       `json:"ram"`
	GPU      GpuCapacities       `json:"gpu"`
	Hosts    []HostCapacities    `json:"hosts"`
	Clusters []ClusterCapacities `json:"clusters"`
}

type ClusterCapacities struct {
	Cluster string            `json:"cluster"`
	CpuCore CpuCoreCapacities `json:"cpuCore"`
	RAM     RamCapacities     `json:"ram"`
	GPU     GpuCapacities     `json:"gpu"`
}

type HostCapacities struct {
	HostBase

	CpuCore CpuCoreCapacities `json:"cpuCore"`
	RAM     RamCapacities     `json:"ram"`
	GPU     GpuCapacities     `json:"gpu"`
}

type CpuCoreCapacities struct {
	Total int `json:"total"`
}

type RamCapacities struct {
	Total int `json:"total"`
}

type GpuCapacities struct {
	Total int `json:"total"`
}

type SystemGpuInfo struct {
	Hosts []HostGpuInfo `json:"hosts"`
}

type TimestampedSystemGpuInfo struct {
	GpuInfo   SystemGpuInfo `json:"gpuInfo"`
	Timestamp time.Time     `json:"timestamp"`
}

type HostGpuInfo struct {
	HostBase

	GPUs []GpuInfo `json:"gpus"`
}

type GpuInfo struct {
	Name        string `json:"name"`
	Slot        string `json:"slot"`
	Vendor      string `json:"vendor"`
	VendorID    string `json:"vendorId"`
	Bus         string `json:"bus"`
	DeviceID    string `json:"deviceId"`
	Passthrough bool   `json:"passthrough"`
}

type SystemStats struct {
	K8s K8sStats `json:"k8s"`
}

type TimestampedSystemStats struct {
	Stats     SystemStats `json:"stats"`
	Timestamp time.Time   `json:"timestamp"`
}

type K8sStats struct {
	PodCount int            `json:"podCount"`
	Clusters []ClusterStats `json:"clusters"`
}

type ClusterStats struct {
	Cluster  string `json:"cluster"`
	PodCount int    `json:"podCount"`
}

type SystemStatus struct {
	Hosts []HostStatus `json:"hosts"`
}

type TimestampedSystemStatus struct {
	Status    SystemStatus `json:"status"`
	Timestamp time.Time    `json:"timestamp"`
}

type HostStatus struct {
	HostBase

	CPU CpuStatus  `json:"cpu"`
	RAM RamStatus  `json:"ram"`
	GPU *GpuStatus `json:"gpu,omitempty"`
}

type CpuStatus struct {
	Temp CpuStatusTemp `json:"temp"`
	Load CpuStatusLoad `json:"load"`
}

type CpuStatusTemp struct {
	Main  float64 `json:"main"`
	Cores []int   `json:"cores"`
	Max   float64 `json:"max"`
}

type CpuStatusLoad struct {
	Main  float64 `json:"main"`
	Cores []int   `json:"cores"`
	Max   float64 `json:"max"`
}

type RamStatus struct {
	Load RamStatusLoad `json:"load"`
}

type RamStatusLoad struct {
	Main float64 `json:"main"`
}

type GpuStatus struct {
	Temp []GpuStatusTemp `json:"temp"`
}

type GpuStatusTemp struct {
	Main float64 `json:"main"`
}
