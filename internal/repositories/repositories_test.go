package repositories_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/f2fin/directory-dashboard/internal/models"
	"github.com/f2fin/directory-dashboard/internal/repositories"
)

func TestRepositories(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Repositories Suite")
}

var _ = Describe("REST repositories", func() {
	var (
		server   *httptest.Server
		handler  http.HandlerFunc
		client   *repositories.Client
		ctx      context.Context
		lastBody []byte
		lastAuth string
		lastPath string
		lastVerb string
	)

	BeforeEach(func() {
		ctx = context.Background()
		lastBody = nil
		lastAuth = ""
		server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lastBody, _ = io.ReadAll(r.Body)
			lastAuth = r.Header.Get("Authorization")
			lastPath = r.URL.Path
			lastVerb = r.Method
			handler(w, r)
		}))
		client = repositories.NewClient(server.URL + "/")
	})

	AfterEach(func() {
		server.Close()
	})

	respond := func(status int, body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(status)
			_, _ = io.WriteString(w, body)
		}
	}

	Describe("List", func() {
		paths := repositories.Paths{List: "/lenders/get-lenders", Create: "/lenders/create-lender"}

		It("should accept a bare array", func() {
			handler = respond(http.StatusOK, `[{"_id":"1","lenderName":"HDFC"},{"_id":"2","lenderName":"Axis"}]`)
			repo := repositories.NewRESTRepository[models.Lender](client, paths)

			lenders, err := repo.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(lastVerb).To(Equal(http.MethodGet))
			Expect(lastPath).To(Equal("/lenders/get-lenders"))
			Expect(lenders).To(HaveLen(2))
			Expect(lenders[1].LenderName).To(Equal("Axis"))
		})

		It("should accept a data envelope", func() {
			handler = respond(http.StatusOK, `{"data":[{"_id":"1","lenderName":"HDFC"}]}`)
			repo := repositories.NewRESTRepository[models.Lender](client, paths)

			lenders, err := repo.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(lenders).To(ConsistOf(models.Lender{ID: "1", LenderName: "HDFC"}))
		})

		It("should return an empty collection for an empty envelope", func() {
			handler = respond(http.StatusOK, `{"data":null}`)
			repo := repositories.NewRESTRepository[models.Lender](client, paths)

			lenders, err := repo.List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(lenders).To(BeEmpty())
		})

		It("should surface a non-2xx answer as an APIError", func() {
			handler = respond(http.StatusInternalServerError, `{"message":"boom"}`)
			repo := repositories.NewRESTRepository[models.Lender](client, paths)

			_, err := repo.List(ctx)
			var apiErr *repositories.APIError
			Expect(errors.As(err, &apiErr)).To(BeTrue())
			Expect(apiErr.StatusCode).To(Equal(http.StatusInternalServerError))
			Expect(apiErr.Error()).To(Equal("boom"))
		})

		It("should flag a malformed body", func() {
			handler = respond(http.StatusOK, `not json`)
			repo := repositories.NewRESTRepository[models.Lender](client, paths)

			_, err := repo.List(ctx)
			Expect(errors.Is(err, repositories.ErrInvalidResponse)).To(BeTrue())
		})
	})

	Describe("Create", func() {
		paths := repositories.Paths{List: "/banker-directory/get-directories", Create: "/banker-directory/create-directories"}

		It("should post the payload and decode the created record", func() {
			handler = respond(http.StatusCreated, `{"_id":"abc","bankerName":"Asha","locationCategories":["Pune"],"product":[]}`)
			repo := repositories.NewRESTRepository[models.BankerDirectory](client, paths)

			created, err := repo.Create(ctx, models.BankerDirectory{BankerName: "Asha", LocationCategories: []string{"Pune"}})
			Expect(err).NotTo(HaveOccurred())
			Expect(lastVerb).To(Equal(http.MethodPost))
			Expect(lastPath).To(Equal("/banker-directory/create-directories"))
			Expect(created.ID).To(Equal("abc"))

			var sent map[string]any
			Expect(json.Unmarshal(lastBody, &sent)).To(Succeed())
			Expect(sent).To(HaveKeyWithValue("bankerName", "Asha"))
			Expect(sent).NotTo(HaveKey("_id"))
		})

		It("should join a list of validation messages", func() {
			handler = respond(http.StatusBadRequest, `{"message":["A required","B required"]}`)
			repo := repositories.NewRESTRepository[models.BankerDirectory](client, paths)

			_, err := repo.Create(ctx, models.BankerDirectory{BankerName: "Asha"})
			Expect(err).To(HaveOccurred())
			Expect(repositories.ErrorMessage(err)).To(Equal("A required, B required"))
		})

		It("should fall back to a generic message when the body has none", func() {
			handler = respond(http.StatusBadRequest, ``)
			repo := repositories.NewRESTRepository[models.BankerDirectory](client, paths)

			_, err := repo.Create(ctx, models.BankerDirectory{BankerName: "Asha"})
			Expect(repositories.ErrorMessage(err)).To(Equal("Something went wrong"))
		})
	})

	Describe("Transport failures", func() {
		It("should report an unreachable backend", func() {
			handler = respond(http.StatusOK, `[]`)
			dead := repositories.NewClient("http://127.0.0.1:1")

			_, err := repositories.FetchCollection[models.Lender](ctx, dead, "/lenders/get-lenders")
			Expect(errors.Is(err, repositories.ErrTransport)).To(BeTrue())
			Expect(repositories.ErrorMessage(err)).To(Equal("Something went wrong"))
		})
	})

	Describe("Token source", func() {
		It("should attach the bearer token when one is available", func() {
			handler = respond(http.StatusOK, `[]`)
			authed := repositories.NewClient(server.URL, repositories.WithTokenSource(func() string { return "tkn" }))

			_, err := authed.Get(ctx, "/lenders/get-lenders")
			Expect(err).NotTo(HaveOccurred())
			Expect(lastAuth).To(Equal("Bearer tkn"))
		})

		It("should send no header when the source is empty", func() {
			handler = respond(http.StatusOK, `[]`)
			anon := repositories.NewClient(server.URL, repositories.WithTokenSource(func() string { return "" }))

			_, err := anon.Get(ctx, "/lenders/get-lenders")
			Expect(err).NotTo(HaveOccurred())
			Expect(lastAuth).To(BeEmpty())
		})
	})

	Describe("Login", func() {
		It("should return the access token", func() {
			handler = respond(http.StatusOK, `{"access_token":"jwt-value"}`)
			auth := repositories.NewAuthRepository(client)

			token, err := auth.Login(ctx, "ops@f2fin.in", "secret")
			Expect(err).NotTo(HaveOccurred())
			Expect(lastPath).To(Equal("/auth/login"))
			Expect(token).To(Equal("jwt-value"))

			var creds repositories.Credentials
			Expect(json.Unmarshal(lastBody, &creds)).To(Succeed())
			Expect(creds.Email).To(Equal("ops@f2fin.in"))
		})

		It("should reject an answer without a token", func() {
			handler = respond(http.StatusOK, `{}`)
			auth := repositories.NewAuthRepository(client)

			_, err := auth.Login(ctx, "ops@f2fin.in", "secret")
			Expect(errors.Is(err, repositories.ErrInvalidResponse)).To(BeTrue())
		})

		It("should pass through the backend message on bad credentials", func() {
			handler = respond(http.StatusUnauthorized, `{"message":"Invalid credentials"}`)
			auth := repositories.NewAuthRepository(client)

			_, err := auth.Login(ctx, "ops@f2fin.in", "wrong")
			Expect(repositories.ErrorMessage(err)).To(Equal("Invalid credentials"))
		})
	})
})
