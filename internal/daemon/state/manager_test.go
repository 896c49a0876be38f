package state_test

import (
	"sync"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/meyrevived/deploy-dashboard/internal/api/v2/body"
	"github.com/meyrevived/deploy-dashboard/internal/daemon/state"
)

var _ = Describe("StateManager", func() {
	var (
		manager *state.StateManager
		clock   time.Time
	)

	BeforeEach(func() {
		clock = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
		manager = state.NewStateManagerWithClock(func() time.Time { return clock })
	})

	Describe("NewStateManager", func() {
		It("should start idle with no rows", func() {
			current := state.NewStateManager().GetState()

			Expect(current.Phase).To(Equal(state.PhaseIdle))
			Expect(current.Rows).To(BeEmpty())
			Expect(current.RefreshedAt).To(BeNil())
			Expect(current.SessionID).NotTo(BeEmpty())
		})

		It("should give each manager its own session ID", func() {
			Expect(state.NewStateManager().GetState().SessionID).NotTo(Equal(state.NewStateManager().GetState().SessionID))
		})
	})

	Describe("Render", func() {
		It("should render one row per record in the order received", func() {
			manager.Render([]body.WorkerStatusRead{
				{Name: "confirmer", Status: "running"},
				{Name: "logger", Status: "stopped"},
			})

			current := manager.GetState()
			Expect(current.Phase).To(Equal(state.PhaseDisplaying))
			Expect(current.Rows).To(HaveLen(2))

			Expect(current.Rows[0].NameLabel).To(Equal("Confirmer"))
			Expect(current.Rows[0].StatusLabel).To(Equal("Running"))
			Expect(current.Rows[0].StatusClass).To(Equal("running"))

			Expect(current.Rows[1].NameLabel).To(Equal("Logger"))
			Expect(current.Rows[1].StatusLabel).To(Equal("Stopped"))
			Expect(current.Rows[1].StatusClass).To(Equal("stopped"))
		})

		It("should key the status class on the raw status", func() {
			manager.Render([]body.WorkerStatusRead{{Name: "gpuSynchronizer", Status: "highLoad"}})

			row := manager.GetState().Rows[0]
			Expect(row.StatusLabel).To(Equal("High load"))
			Expect(row.StatusClass).To(Equal("highLoad"))
			Expect(row.NameLabel).To(Equal("Gpu synchronizer"))
		})

		It("should not sort rows", func() {
			manager.Render([]body.WorkerStatusRead{
				{Name: "zeta", Status: "running"},
				{Name: "alpha", Status: "running"},
			})

			rows := manager.GetState().Rows
			Expect(rows[0].Name).To(Equal("zeta"))
			Expect(rows[1].Name).To(Equal("alpha"))
		})

		It("should fully replace the previous rows", func() {
			manager.Render([]body.WorkerStatusRead{
				{Name: "confirmer", Status: "running"},
				{Name: "logger", Status: "stopped"},
			})
			manager.Render([]body.WorkerStatusRead{
				{Name: "confirmer", Status: "stopped"},
			})

			rows := manager.GetState().Rows
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Name).To(Equal("confirmer"))
			Expect(rows[0].StatusClass).To(Equal("stopped"))
		})

		It("should stay displaying after rendering an empty list", func() {
			manager.Render([]body.WorkerStatusRead{{Name: "confirmer", Status: "running"}})
			manager.Render(nil)

			current := manager.GetState()
			Expect(current.Phase).To(Equal(state.PhaseDisplaying))
			Expect(current.Rows).To(BeEmpty())
		})

		It("should record the refresh time", func() {
			manager.Render([]body.WorkerStatusRead{{Name: "confirmer", Status: "running"}})

			current := manager.GetState()
			Expect(current.RefreshedAt).NotTo(BeNil())
			Expect(*current.RefreshedAt).To(Equal(clock))
		})

		It("should only carry reportedAt when the record has one", func() {
			reportedAt := clock.Add(-3 * time.Second)
			manager.Render([]body.WorkerStatusRead{
				{Name: "confirmer", Status: "running", ReportedAt: reportedAt},
				{Name: "logger", Status: "running"},
			})

			rows := manager.GetState().Rows
			Expect(rows[0].ReportedAt).NotTo(BeNil())
			Expect(rows[0].ReportedAt.Equal(reportedAt)).To(BeTrue())
			Expect(rows[1].ReportedAt).To(BeNil())
		})
	})

	Describe("GetState", func() {
		It("should return a copy that callers cannot mutate", func() {
			manager.Render([]body.WorkerStatusRead{{Name: "confirmer", Status: "running"}})

			snapshot := manager.GetState()
			snapshot.Rows[0].Name = "mutated"

			Expect(manager.GetState().Rows[0].Name).To(Equal("confirmer"))
		})

		It("should be safe for concurrent renders and reads", func() {
			var wg sync.WaitGroup
			for i := 0; i < 20; i++ {
				wg.Add(2)
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					manager.Render([]body.WorkerStatusRead{
						{Name: "confirmer", Status: "running"},
						{Name: "logger", Status: "running"},
					})
				}()
				go func() {
					defer GinkgoRecover()
					defer wg.Done()
					rows := manager.GetState().Rows
					Expect(len(rows) == 0 || len(rows) == 2).To(BeTrue())
				}()
			}
			wg.Wait()
		})
	})
})
