package views_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/goleak"

	"github.com/f2fin/directory-dashboard/internal/views"
)

type sourceFunc func(ctx context.Context) ([]banker, error)

func (f sourceFunc) List(ctx context.Context) ([]banker, error) {
	return f(ctx)
}

func staticSource(records []banker, calls *int) sourceFunc {
	return func(ctx context.Context) ([]banker, error) {
		*calls++
		return records, nil
	}
}

var _ = Describe("ListView", func() {
	var (
		ctx   context.Context
		calls int
	)

	newView := func(src views.Source[banker], opts ...views.Option[banker]) *views.ListView[banker] {
		opts = append([]views.Option[banker]{
			views.WithFilters(
				views.Filter[banker]{Name: "location", Label: "Location", Match: byLocation},
				views.Filter[banker]{Name: "name", Label: "Name", Match: byName},
			),
			views.WithID(func(b banker) string { return b.Name }),
		}, opts...)
		v := views.NewListView("bankers", src, opts...)
		v.Mount(ctx)
		return v
	}

	BeforeEach(func() {
		ctx = context.Background()
		calls = 0
	})

	It("should refuse to fetch before mount", func() {
		v := views.NewListView[banker]("bankers", staticSource(sampleBankers(), &calls))
		Expect(v.Load()).To(MatchError(views.ErrNotMounted))
		Expect(calls).To(BeZero())
	})

	It("should fetch once per mount", func() {
		v := newView(staticSource(sampleBankers(), &calls))
		Expect(v.Load()).To(Succeed())
		Expect(v.Load()).To(Succeed())
		Expect(calls).To(Equal(1))
		Expect(v.Visible()).To(Equal(sampleBankers()))
	})

	It("should re-fetch the whole collection on refresh", func() {
		v := newView(staticSource(sampleBankers(), &calls))
		Expect(v.Load()).To(Succeed())
		Expect(v.Refresh()).To(Succeed())
		Expect(calls).To(Equal(2))
	})

	It("should filter and restore the collection when the query is cleared", func() {
		v := newView(staticSource(sampleBankers(), &calls))
		Expect(v.Load()).To(Succeed())

		Expect(v.SetQuery("location", "pun")).To(Succeed())
		Expect(v.Visible()).To(HaveLen(1))
		Expect(v.Visible()[0].Name).To(Equal("Alpha"))

		v.Clear("location")
		Expect(v.Query("location")).To(BeEmpty())
		Expect(v.Visible()).To(Equal(sampleBankers()))
	})

	It("should AND independent queries", func() {
		v := newView(staticSource(sampleBankers(), &calls))
		Expect(v.Load()).To(Succeed())

		Expect(v.SetQuery("location", "mumbai")).To(Succeed())
		Expect(v.SetQuery("name", "gam")).To(Succeed())
		Expect(v.Visible()).To(Equal([]banker{{Name: "Gamma", Locations: []string{"Navi Mumbai"}}}))
	})

	It("should clear the other query in exclusive mode", func() {
		v := newView(staticSource(sampleBankers(), &calls), views.Exclusive[banker]())
		Expect(v.Load()).To(Succeed())

		Expect(v.SetQuery("location", "delhi")).To(Succeed())
		Expect(v.SetQuery("name", "alp")).To(Succeed())
		Expect(v.Query("location")).To(BeEmpty())
		Expect(v.Visible()).To(HaveLen(1))
		Expect(v.Visible()[0].Name).To(Equal("Alpha"))
	})

	It("should reject unknown filters", func() {
		v := newView(staticSource(sampleBankers(), &calls))
		Expect(v.SetQuery("email", "x")).To(MatchError(views.ErrUnknownFilter))
	})

	It("should leave the view empty when the fetch fails", func() {
		boom := errors.New("boom")
		v := newView(sourceFunc(func(ctx context.Context) ([]banker, error) { return nil, boom }))

		Expect(v.Load()).To(MatchError(boom))
		Expect(v.Visible()).To(BeEmpty())
		Expect(v.Loaded()).To(BeFalse())
		Expect(v.Err()).To(MatchError(boom))
	})

	It("should find a fetched record by id", func() {
		v := newView(staticSource(sampleBankers(), &calls))
		Expect(v.Load()).To(Succeed())

		b, ok := v.Find("Beta")
		Expect(ok).To(BeTrue())
		Expect(b.Locations).To(Equal([]string{"Delhi"}))

		_, ok = v.Find("Omega")
		Expect(ok).To(BeFalse())
	})

	It("should not commit a fetch that completes after unmount", func() {
		defer goleak.VerifyNone(GinkgoT(), goleak.IgnoreCurrent())

		started := make(chan struct{})
		release := make(chan struct{})
		v := newView(sourceFunc(func(ctx context.Context) ([]banker, error) {
			close(started)
			<-release
			return sampleBankers(), nil
		}))

		done := make(chan error, 1)
		go func() { done <- v.Load() }()

		Eventually(started).Should(BeClosed())
		v.Unmount()
		close(release)

		Eventually(done).Should(Receive(MatchError(context.Canceled)))
		Expect(v.Loaded()).To(BeFalse())
		Expect(v.All()).To(BeEmpty())
	})

	It("should cancel the fetch context on unmount", func() {
		defer goleak.VerifyNone(GinkgoT(), goleak.IgnoreCurrent())

		started := make(chan struct{})
		v := newView(sourceFunc(func(ctx context.Context) ([]banker, error) {
			close(started)
			<-ctx.Done()
			return nil, ctx.Err()
		}))

		done := make(chan error, 1)
		go func() { done <- v.Load() }()

		Eventually(started).Should(BeClosed())
		v.Unmount()
		Eventually(done).Should(Receive(MatchError(context.Canceled)))
	})
})
