package state_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meyrevived/deploy-dashboard/internal/daemon/state"
)

var _ = Describe("Label", func() {
	DescribeTable("should turn raw identifiers into display labels",
		func(raw, expected string) {
			Expect(state.Label(raw)).To(Equal(expected))
		},
		Entry("single lower-case word", "confirmer", "Confirmer"),
		Entry("status word", "running", "Running"),
		Entry("worker name", "repairer", "Repairer"),
		Entry("camel case", "camelCaseWord", "Camel case word"),
		Entry("two words", "highLoad", "High load"),
		Entry("backend worker name", "deploymentRepairer", "Deployment repairer"),
		Entry("already capitalised", "Stopped", "Stopped"),
		Entry("capital after a digit", "vm2Repairer", "Vm2 repairer"),
		Entry("leading digit", "2fa", "2fa"),
		Entry("hyphen kept", "deployment-repairer", "Deployment-repairer"),
		Entry("underscore kept", "deployment_repairer", "Deployment_repairer"),
		Entry("every capital of an acronym", "ABC", "A b c"),
		Entry("acronym inside a word", "getHTTPStatus", "Get h t t p status"),
		Entry("non-ASCII capital", "zoneÖst", "Zone öst"),
		Entry("empty string", "", ""),
	)

	It("should be stable when applied to a single word twice", func() {
		Expect(state.Label(state.Label("running"))).To(Equal("Running"))
	})
})
