package dashboard_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/meyrevived/deploy-dashboard/internal/api/v2/body"
	"github.com/meyrevived/deploy-dashboard/internal/client"
	"github.com/meyrevived/deploy-dashboard/internal/dashboard"
	"github.com/meyrevived/deploy-dashboard/internal/daemon/state"
	"github.com/meyrevived/deploy-dashboard/internal/metrics"
)

// endpoint is a worker status endpoint whose response can be changed
// between requests.
type endpoint struct {
	mu       sync.Mutex
	status   int
	payload  string
	requests int32
}

func (e *endpoint) set(status int, payload string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.status = status
	e.payload = payload
}

func (e *endpoint) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	atomic.AddInt32(&e.requests, 1)
	e.mu.Lock()
	status, payload := e.status, e.payload
	e.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(payload))
}

type stubFetcher struct {
	statuses []body.WorkerStatusRead
	err      error
}

func (s stubFetcher) List(context.Context) ([]body.WorkerStatusRead, error) {
	return s.statuses, s.err
}

var _ = Describe("Poller", func() {
	var (
		ep       *endpoint
		server   *httptest.Server
		manager  *state.StateManager
		registry *prometheus.Registry
		poller   *dashboard.Poller
	)

	BeforeEach(func() {
		ep = &endpoint{status: http.StatusOK, payload: `[]`}
		server = httptest.NewServer(ep)
		manager = state.NewStateManager()
		registry = prometheus.NewRegistry()

		var err error
		poller, err = dashboard.NewPoller(dashboard.Config{
			Interval: 20 * time.Millisecond,
			Fetcher:  client.New(server.URL).WorkerStatus(),
			Renderer: manager,
			Metrics:  metrics.New(registry),
		})
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		server.Close()
	})

	Describe("NewPoller", func() {
		It("should reject a non-positive interval", func() {
			_, err := dashboard.NewPoller(dashboard.Config{
				Fetcher:  stubFetcher{},
				Renderer: manager,
			})
			Expect(err).To(HaveOccurred())
			Expect(err.Error()).To(ContainSubstring("refresh interval must be positive"))
		})

		It("should require a fetcher and a renderer", func() {
			_, err := dashboard.NewPoller(dashboard.Config{Interval: time.Second, Renderer: manager})
			Expect(err).To(MatchError("fetcher is required"))

			_, err = dashboard.NewPoller(dashboard.Config{Interval: time.Second, Fetcher: stubFetcher{}})
			Expect(err).To(MatchError("renderer is required"))
		})
	})

	Describe("Refresh", func() {
		It("should render one row per record in endpoint order", func() {
			ep.set(http.StatusOK, `[{"name":"confirmer","status":"running"},{"name":"repairer","status":"highLoad"}]`)

			Expect(poller.Refresh(context.Background())).To(Succeed())

			dash := manager.GetState()
			Expect(dash.Phase).To(Equal(state.PhaseDisplaying))
			Expect(dash.Rows).To(HaveLen(2))

			Expect(dash.Rows[0].NameLabel).To(Equal("Confirmer"))
			Expect(dash.Rows[0].StatusLabel).To(Equal("Running"))
			Expect(dash.Rows[0].StatusClass).To(Equal("running"))

			Expect(dash.Rows[1].NameLabel).To(Equal("Repairer"))
			Expect(dash.Rows[1].StatusLabel).To(Equal("High load"))
			Expect(dash.Rows[1].StatusClass).To(Equal("highLoad"))

			Expect(testutil.GatherAndCompare(registry, strings.NewReader(`
# HELP dashboard_rows Number of worker rows currently displayed.
# TYPE dashboard_rows gauge
dashboard_rows 2
`), "dashboard_rows")).To(Succeed())
		})

		It("should replace the whole list when the next response is shorter", func() {
			ep.set(http.StatusOK, `[{"name":"confirmer","status":"running"},{"name":"repairer","status":"running"}]`)
			Expect(poller.Refresh(context.Background())).To(Succeed())

			ep.set(http.StatusOK, `[{"name":"logger","status":"stopped"}]`)
			Expect(poller.Refresh(context.Background())).To(Succeed())

			rows := manager.GetState().Rows
			Expect(rows).To(HaveLen(1))
			Expect(rows[0].Name).To(Equal("logger"))
			Expect(rows[0].StatusClass).To(Equal("stopped"))
		})

		It("should leave the list unchanged when the fetch fails", func() {
			ep.set(http.StatusOK, `[{"name":"confirmer","status":"running"}]`)
			Expect(poller.Refresh(context.Background())).To(Succeed())
			before := manager.GetState()

			ep.set(http.StatusInternalServerError, `boom`)
			err := poller.Refresh(context.Background())
			Expect(errors.Is(err, client.ErrUnexpectedStatus)).To(BeTrue())

			after := manager.GetState()
			Expect(after.Rows).To(Equal(before.Rows))
			Expect(after.RefreshedAt).To(Equal(before.RefreshedAt))
			Expect(after.Phase).To(Equal(state.PhaseDisplaying))
		})

		It("should stay idle when the first fetch fails", func() {
			ep.set(http.StatusOK, `not json`)

			Expect(poller.Refresh(context.Background())).NotTo(Succeed())

			dash := manager.GetState()
			Expect(dash.Phase).To(Equal(state.PhaseIdle))
			Expect(dash.Rows).To(BeEmpty())
		})

		It("should count successes and failures", func() {
			Expect(poller.Refresh(context.Background())).To(Succeed())
			ep.set(http.StatusBadGateway, ``)
			Expect(poller.Refresh(context.Background())).NotTo(Succeed())

			expected := `
# HELP dashboard_refresh_total Number of worker status refreshes by result.
# TYPE dashboard_refresh_total counter
dashboard_refresh_total{result="failure"} 1
dashboard_refresh_total{result="success"} 1
`
			Expect(testutil.GatherAndCompare(registry, strings.NewReader(expected), "dashboard_refresh_total")).To(Succeed())
		})
	})

	Describe("SetFetcher", func() {
		It("should use the new fetcher on the next refresh", func() {
			poller.SetFetcher(stubFetcher{statuses: []body.WorkerStatusRead{{Name: "gpuSynchronizer", Status: "running"}}})

			Expect(poller.Refresh(context.Background())).To(Succeed())
			Expect(manager.GetState().Rows[0].NameLabel).To(Equal("Gpu synchronizer"))
		})

		It("should ignore a nil fetcher", func() {
			before := poller.Fetcher()
			poller.SetFetcher(nil)
			Expect(poller.Fetcher()).To(BeIdenticalTo(before))
		})
	})

	Describe("Run", func() {
		It("should refresh immediately and keep polling until the context ends", func() {
			ep.set(http.StatusOK, `[{"name":"confirmer","status":"running"}]`)

			ctx, cancel := context.WithCancel(context.Background())
			done := make(chan struct{})
			go func() {
				defer GinkgoRecover()
				poller.Run(ctx)
				close(done)
			}()

			Eventually(func() state.Phase {
				return manager.GetState().Phase
			}).Should(Equal(state.PhaseDisplaying))

			Eventually(func() int32 {
				return atomic.LoadInt32(&ep.requests)
			}).Should(BeNumerically(">=", 3))

			cancel()
			Eventually(done).Should(BeClosed())
		})

		It("should not wait for a slow request before the next tick", func() {
			release := make(chan struct{})
			var inFlight int32
			slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				atomic.AddInt32(&inFlight, 1)
				select {
				case <-release:
				case <-r.Context().Done():
				}
				_, _ = w.Write([]byte(`[]`))
			}))
			defer slow.Close()
			defer close(release)

			poller.SetFetcher(client.New(slow.URL).WorkerStatus())

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go poller.Run(ctx)

			Eventually(func() int32 {
				return atomic.LoadInt32(&inFlight)
			}).Should(BeNumerically(">=", 2))
		})
	})
})
