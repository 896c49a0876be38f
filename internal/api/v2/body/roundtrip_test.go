package body_test

import (
	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meyrevived/deploy-dashboard/internal/api/apitest"
	"github.com/meyrevived/deploy-dashboard/internal/api/v2/body"
)

var _ = DescribeTable("every v2 body shape should survive a JSON round trip",
	func(shape any) {
		filler := apitest.NewFiller(GinkgoRandomSeed())

		for range 20 {
			in := apitest.Fill(filler, shape)

			out, _, err := apitest.JSON.RoundTrip(in)
			Expect(err).NotTo(HaveOccurred())
			Expect(cmp.Diff(in, out)).To(BeEmpty())
		}

		By("leaving absent optional fields out of the encoding")
		in := apitest.Fill(filler, shape)
		absent := apitest.JSON.ClearOptional(in)

		out, keys, err := apitest.JSON.RoundTrip(in)
		Expect(err).NotTo(HaveOccurred())
		Expect(cmp.Diff(in, out)).To(BeEmpty())
		for _, key := range absent {
			Expect(keys).NotTo(ContainElement(key), "optional field %q should not be encoded", key)
		}
	},
	Entry("DeploymentRead", &body.DeploymentRead{}),
	Entry("DeploymentCreate", &body.DeploymentCreate{}),
	Entry("DeploymentUpdate", &body.DeploymentUpdate{}),
	Entry("Env", &body.Env{}),
	Entry("Volume", &body.Volume{}),
	Entry("DeploymentBuild", &body.DeploymentBuild{}),
	Entry("ReplicaStatus", &body.ReplicaStatus{}),
	Entry("DeploymentCreated", &body.DeploymentCreated{}),
	Entry("DeploymentDeleted", &body.DeploymentDeleted{}),
	Entry("DeploymentUpdated", &body.DeploymentUpdated{}),
	Entry("DeploymentSpecs", &body.DeploymentSpecs{}),
	Entry("CiConfig", &body.CiConfig{}),
	Entry("DeploymentCommand", &body.DeploymentCommand{}),
	Entry("LogMessage", &body.LogMessage{}),
	Entry("GpuGroupRead", &body.GpuGroupRead{}),
	Entry("GpuLeaseGpuGroup", &body.GpuLeaseGpuGroup{}),
	Entry("GpuLeaseRead", &body.GpuLeaseRead{}),
	Entry("GpuLeaseCreate", &body.GpuLeaseCreate{}),
	Entry("GpuLeaseUpdate", &body.GpuLeaseUpdate{}),
	Entry("GpuLeaseCreated", &body.GpuLeaseCreated{}),
	Entry("GpuLeaseUpdated", &body.GpuLeaseUpdated{}),
	Entry("GpuLeaseDeleted", &body.GpuLeaseDeleted{}),
	Entry("JobRead", &body.JobRead{}),
	Entry("JobUpdate", &body.JobUpdate{}),
	Entry("NotificationRead", &body.NotificationRead{}),
	Entry("NotificationUpdate", &body.NotificationUpdate{}),
	Entry("WorkerStatusRead", &body.WorkerStatusRead{}),
	Entry("UpdateOwnerParams", &body.UpdateOwnerParams{}),
	Entry("ResourceMigrationRead", &body.ResourceMigrationRead{}),
	Entry("ResourceMigrationCreate", &body.ResourceMigrationCreate{}),
	Entry("ResourceMigrationUpdate", &body.ResourceMigrationUpdate{}),
	Entry("ResourceMigrationCreated", &body.ResourceMigrationCreated{}),
	Entry("ResourceMigrationUpdated", &body.ResourceMigrationUpdated{}),
	Entry("BindingError", &body.BindingError{}),
	Entry("SmDeleted", &body.SmDeleted{}),
	Entry("SmRead", &body.SmRead{}),
	Entry("ZoneEndpoints", &body.ZoneEndpoints{}),
	Entry("ZoneRead", &body.ZoneRead{}),
	Entry("HarborWebhook", &body.HarborWebhook{}),
	Entry("HostBase", &body.HostBase{}),
	Entry("HostRead", &body.HostRead{}),
	Entry("HostRegisterParams", &body.HostRegisterParams{}),
	Entry("ClusterRegisterParams", &body.ClusterRegisterParams{}),
	Entry("TimestampedSystemCapacities", &body.TimestampedSystemCapacities{}),
	Entry("SystemCapacities", &body.SystemCapacities{}),
	Entry("ClusterCapacities", &body.ClusterCapacities{}),
	Entry("HostCapacities", &body.HostCapacities{}),
	Entry("CpuCoreCapacities", &body.CpuCoreCapacities{}),
	Entry("RamCapacities", &body.RamCapacities{}),
	Entry("GpuCapacities", &body.GpuCapacities{}),
	Entry("SystemGpuInfo", &body.SystemGpuInfo{}),
	Entry("TimestampedSystemGpuInfo", &body.TimestampedSystemGpuInfo{}),
	Entry("HostGpuInfo", &body.HostGpuInfo{}),
	Entry("GpuInfo", &body.GpuInfo{}),
	Entry("SystemStats", &body.SystemStats{}),
	Entry("TimestampedSystemStats", &body.TimestampedSystemStats{}),
	Entry("K8sStats", &body.K8sStats{}),
	Entry("ClusterStats", &body.ClusterStats{}),
	Entry("SystemStatus", &body.SystemStatus{}),
	Entry("TimestampedSystemStatus", &body.TimestampedSystemStatus{}),
	Entry("HostStatus", &body.HostStatus{}),
	Entry("CpuStatus", &body.CpuStatus{}),
	Entry("CpuStatusTemp", &body.CpuStatusTemp{}),
	Entry("CpuStatusLoad", &body.CpuStatusLoad{}),
	Entry("RamStatus", &body.RamStatus{}),
	Entry("RamStatusLoad", &body.RamStatusLoad{}),
	Entry("GpuStatus", &body.GpuStatus{}),
	Entry("GpuStatusTemp", &body.GpuStatusTemp{}),
	Entry("TeamMember", &body.TeamMember{}),
	Entry("TeamResource", &body.TeamResource{}),
	Entry("TeamMemberCreate", &body.TeamMemberCreate{}),
	Entry("TeamMemberUpdate", &body.TeamMemberUpdate{}),
	Entry("TeamCreate", &body.TeamCreate{}),
	Entry("TeamJoin", &body.TeamJoin{}),
	Entry("TeamUpdate", &body.TeamUpdate{}),
	Entry("TeamRead", &body.TeamRead{}),
	Entry("UserRead", &body.UserRead{}),
	Entry("UserReadDiscovery", &body.UserReadDiscovery{}),
	Entry("UserUpdate", &body.UserUpdate{}),
	Entry("UserData", &body.UserData{}),
	Entry("PublicKey", &body.PublicKey{}),
	Entry("ApiKey", &body.ApiKey{}),
	Entry("ApiKeyCreate", &body.ApiKeyCreate{}),
	Entry("ApiKeyCreated", &body.ApiKeyCreated{}),
	Entry("Quota", &body.Quota{}),
	Entry("Usage", &body.Usage{}),
	Entry("Role", &body.Role{}),
	Entry("DiscoverRead", &body.DiscoverRead{}),
	Entry("VmRead", &body.VmRead{}),
	Entry("VmCreate", &body.VmCreate{}),
	Entry("VmUpdate", &body.VmUpdate{}),
	Entry("VmUpdateOwner", &body.VmUpdateOwner{}),
	Entry("VmGpuLease", &body.VmGpuLease{}),
	Entry("VmSpecs", &body.VmSpecs{}),
	Entry("VmCreated", &body.VmCreated{}),
	Entry("VmDeleted", &body.VmDeleted{}),
	Entry("VmUpdated", &body.VmUpdated{}),
	Entry("VmActionCreate", &body.VmActionCreate{}),
	Entry("VmActionCreated", &body.VmActionCreated{}),
	Entry("PortRead", &body.PortRead{}),
	Entry("PortCreate", &body.PortCreate{}),
	Entry("PortUpdate", &body.PortUpdate{}),
	Entry("CustomDomainRead", &body.CustomDomainRead{}),
	Entry("HttpProxyRead", &body.HttpProxyRead{}),
	Entry("HttpProxyCreate", &body.HttpProxyCreate{}),
	Entry("HttpProxyUpdate", &body.HttpProxyUpdate{}),
	Entry("VmSnapshotRead", &body.VmSnapshotRead{}),
	Entry("VmSnapshotCreate", &body.VmSnapshotCreate{}),
	Entry("VmSnapshotCreated", &body.VmSnapshotCreated{}),
	Entry("VmSnapshotDeleted", &body.VmSnapshotDeleted{}),
)
