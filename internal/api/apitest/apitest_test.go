package apitest_test

import (
	"encoding/json"
	"time"

	"github.com/google/go-cmp/cmp"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"k8s.io/utils/ptr"

	"github.com/meyrevived/deploy-dashboard/internal/api/apitest"
)

type Pagination struct {
	Page     int `form:"page"`
	PageSize int `form:"pageSize"`
}

type listQuery struct {
	*Pagination

	All    bool     `form:"all"`
	UserID *string  `form:"userId"`
	Status []string `form:"status"`
	Ratio  float64  `form:"ratio"`
}

type record struct {
	ID        string             `json:"id"`
	Note      *string            `json:"note,omitempty"`
	Tags      []string           `json:"tags,omitempty"`
	Envs      *[]string          `json:"envs,omitempty"`
	Nullable  *string            `json:"nullable"`
	Payload   json.RawMessage    `json:"payload"`
	Labels    map[string]string  `json:"labels,omitempty"`
	CreatedAt time.Time          `json:"createdAt"`
	Nested    map[string][]int64 `json:"nested"`
}

var _ = Describe("Codec", func() {
	Describe("Values", func() {
		It("should leave out nil pointers and repeat slice elements", func() {
			in := &listQuery{Pagination: &Pagination{Page: 2, PageSize: 10}, All: true, Status: []string{"a", "b"}, Ratio: 0.25}

			values, err := apitest.Query.Values(in)
			Expect(err).NotTo(HaveOccurred())

			Expect(values.Encode()).To(Equal("all=true&page=2&pageSize=10&ratio=0.25&status=a&status=b"))
		})
	})

	Describe("RoundTrip", func() {
		It("should bind a query string back into the same shape", func() {
			in := &listQuery{Pagination: &Pagination{Page: 3}, UserID: ptr.To(""), Status: []string{"x y", "&"}}

			out, keys, err := apitest.Query.RoundTrip(in)
			Expect(err).NotTo(HaveOccurred())

			Expect(keys).To(ConsistOf("page", "pageSize", "all", "userId", "status", "ratio"))
			Expect(cmp.Diff(in, out)).To(BeEmpty())
		})

		It("should keep an absent embedded pointer nil", func() {
			out, keys, err := apitest.Query.RoundTrip(&listQuery{})
			Expect(err).NotTo(HaveOccurred())

			Expect(keys).NotTo(ContainElement("page"))
			Expect(out.(*listQuery).Pagination).To(BeNil())
		})
	})

	Describe("ClearOptional", func() {
		It("should clear only omitempty fields for JSON", func() {
			in := &record{Note: ptr.To("n"), Tags: []string{"t"}, Envs: &[]string{"e"}, Nullable: ptr.To("v"), Labels: map[string]string{"k": "v"}}

			keys := apitest.JSON.ClearOptional(in)

			Expect(keys).To(ConsistOf("note", "tags", "envs", "labels"))
			Expect(in.Note).To(BeNil())
			Expect(in.Nullable).To(Equal(ptr.To("v")))
		})

		It("should clear embedded pointers as a whole for query strings", func() {
			in := &listQuery{Pagination: &Pagination{}, UserID: ptr.To("u"), Status: []string{"s"}}

			keys := apitest.Query.ClearOptional(in)

			Expect(keys).To(ConsistOf("page", "pageSize", "userId", "status"))
			Expect(in.Pagination).To(BeNil())
		})
	})

	Describe("NewFiller", func() {
		It("should fill values that survive a JSON round trip", func() {
			filler := apitest.NewFiller(GinkgoRandomSeed())

			for range 50 {
				in := apitest.Fill(filler, &record{}).(*record)
				Expect(in.CreatedAt.Nanosecond()).To(BeZero())
				Expect(json.Valid(in.Payload)).To(BeTrue())
				if in.Envs != nil {
					Expect(*in.Envs).NotTo(BeNil())
				}

				out, _, err := apitest.JSON.RoundTrip(in)
				Expect(err).NotTo(HaveOccurred())
				Expect(cmp.Diff(in, out)).To(BeEmpty())
			}
		})
	})
})
