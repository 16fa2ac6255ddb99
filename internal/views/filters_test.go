package views_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/f2fin/directory-dashboard/internal/views"
)

type banker struct {
	Name      string
	Locations []string
}

var (
	byName     = views.Field(func(b banker) string { return b.Name })
	byLocation = views.AnyOf(func(b banker) []string { return b.Locations })
)

func sampleBankers() []banker {
	return []banker{
		{Name: "Alpha", Locations: []string{"Mumbai", "Pune"}},
		{Name: "Beta", Locations: []string{"Delhi"}},
		{Name: "Gamma", Locations: []string{"Navi Mumbai"}},
	}
}

var _ = Describe("Filters", func() {
	It("should be the identity on an empty query", func() {
		all := sampleBankers()
		Expect(views.Apply(all, "", byLocation)).To(Equal(all))
	})

	It("should match any element of an array field", func() {
		Expect(views.Apply(sampleBankers(), "pun", byLocation)).To(Equal([]banker{
			{Name: "Alpha", Locations: []string{"Mumbai", "Pune"}},
		}))
	})

	It("should ignore case", func() {
		all := sampleBankers()
		Expect(views.Apply(all, "MUM", byLocation)).To(Equal(views.Apply(all, "mum", byLocation)))
		Expect(views.Apply(all, "MUM", byLocation)).To(HaveLen(2))
	})

	It("should narrow as the query grows", func() {
		all := sampleBankers()
		wide := views.Apply(all, "m", byLocation)
		narrow := views.Apply(all, "mumbai", byLocation)
		for _, b := range narrow {
			Expect(wide).To(ContainElement(b))
		}
		Expect(len(narrow)).To(BeNumerically("<=", len(wide)))
	})

	It("should keep the original order", func() {
		names := []string{}
		for _, b := range views.Apply(sampleBankers(), "a", byName) {
			names = append(names, b.Name)
		}
		Expect(names).To(Equal([]string{"Alpha", "Beta", "Gamma"}))
	})

	It("should fold non-ASCII case", func() {
		Expect(views.ContainsFold("ÉTIENNE", "étienne")).To(BeTrue())
		Expect(views.AnyContainsFold(nil, "x")).To(BeFalse())
	})
})
