package shell_test

import (
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/f2fin/directory-dashboard/internal/shell"
)

func TestShell(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Shell Suite")
}

var _ = Describe("Shell", func() {
	var s *shell.Shell

	BeforeEach(func() {
		s = shell.New(shell.DefaultTabs()...)
	})

	It("should start on the first tab", func() {
		Expect(s.Active().Key).To(Equal("bankers"))
		Expect(s.ActiveIndex()).To(BeZero())
	})

	It("should select tabs by key", func() {
		Expect(s.Select("lenders")).To(Succeed())
		Expect(s.Active().Label).To(Equal("Lenders"))
		Expect(s.Select("reports")).To(MatchError(shell.ErrUnknownTab))
		Expect(s.Active().Key).To(Equal("lenders"))
	})

	It("should cycle forwards and backwards", func() {
		Expect(s.Next().Key).To(Equal("banker-directory"))
		Expect(s.Next().Key).To(Equal("lenders"))
		Expect(s.Next().Key).To(Equal("bankers"))
		Expect(s.Prev().Key).To(Equal("lenders"))
	})

	It("should return a zero tab when empty", func() {
		empty := shell.New()
		Expect(empty.Active()).To(Equal(shell.Tab{}))
		Expect(empty.Next()).To(Equal(shell.Tab{}))
	})

	DescribeTable("form flavor by location",
		func(path, key string, ok bool) {
			got, found := s.FormFor(path)
			Expect(found).To(Equal(ok))
			Expect(got).To(Equal(key))
		},
		Entry("dashboards", "/dashboards", "bankers", true),
		Entry("dashboards detail", "/dashboards/665f", "bankers", true),
		Entry("banker directory", "/directory", "banker-directory", true),
		Entry("lenders", "/lender/list", "lenders", true),
		Entry("no partial segment", "/directoryx", "", false),
		Entry("unknown", "/settings", "", false),
	)

	It("should prefer the longest route", func() {
		nested := shell.New(
			shell.Tab{Key: "directory", Route: "/directory"},
			shell.Tab{Key: "banker-directory", Route: "/directory/bankers"},
		)
		key, ok := nested.FormFor("/directory/bankers/new")
		Expect(ok).To(BeTrue())
		Expect(key).To(Equal("banker-directory"))
	})
})
