package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	handlers "github.com/f2fin/directory-dashboard/internal/api/handlers"
	"github.com/f2fin/directory-dashboard/internal/models"
	repository "github.com/f2fin/directory-dashboard/internal/repositories"
	service "github.com/f2fin/directory-dashboard/internal/services"
	mocks "github.com/f2fin/directory-dashboard/tests/mocks"
)

func TestHandlers(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Handlers Suite")
}

// A helper to create a Fiber app with the lender handler mounted.
func setupApp(svc service.ResourceService[models.Lender]) *fiber.App {
	app := fiber.New()
	h := handlers.NewResourceHandler(svc, nil)
	app.Get("/lenders", h.List)
	app.Get("/lenders/:id", h.Get)
	app.Post("/lenders", h.Create)
	return app
}

func decodeMessage(resp *http.Response) string {
	var body map[string]any
	Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
	msg, _ := body["message"].(string)
	return msg
}

var _ = Describe("Resource Handler", func() {
	var mockSvc *mocks.MockResourceService[models.Lender]

	BeforeEach(func() {
		mockSvc = &mocks.MockResourceService[models.Lender]{KeyValue: "lenders"}
	})

	Describe("List", func() {
		It("should pass the filter and query to the service", func() {
			var gotFilter, gotQuery string
			mockSvc.ListFunc = func(ctx context.Context, filter, query string) ([]models.Lender, error) {
				gotFilter, gotQuery = filter, query
				return []models.Lender{{ID: "l1", LenderName: "HDFC"}}, nil
			}
			req := httptest.NewRequest(http.MethodGet, "/lenders?filter=location&q=pune", nil)
			resp, err := setupApp(mockSvc).Test(req, fiber.TestConfig{})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			Expect(gotFilter).To(Equal("location"))
			Expect(gotQuery).To(Equal("pune"))

			var body []models.Lender
			Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
			Expect(body).To(ConsistOf(models.Lender{ID: "l1", LenderName: "HDFC"}))
		})

		It("should answer 400 for an unknown filter", func() {
			mockSvc.ListFunc = func(ctx context.Context, filter, query string) ([]models.Lender, error) {
				return nil, fmt.Errorf("%w: %s", service.ErrUnknownFilter, filter)
			}
			req := httptest.NewRequest(http.MethodGet, "/lenders?filter=country&q=in", nil)
			resp, err := setupApp(mockSvc).Test(req, fiber.TestConfig{})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(decodeMessage(resp)).To(Equal("Unknown filter"))
		})

		It("should answer 502 with the backend message on upstream failure", func() {
			mockSvc.ListFunc = func(ctx context.Context, filter, query string) ([]models.Lender, error) {
				apiErr := &repository.APIError{StatusCode: 500, Messages: []string{"db down", "retry later"}}
				return nil, fmt.Errorf("%w: %w", service.ErrUpstream, apiErr)
			}
			req := httptest.NewRequest(http.MethodGet, "/lenders", nil)
			resp, err := setupApp(mockSvc).Test(req, fiber.TestConfig{})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusBadGateway))
			Expect(decodeMessage(resp)).To(Equal("db down, retry later"))
		})
	})

	Describe("Get", func() {
		It("should return 404 for an unknown id", func() {
			mockSvc.GetFunc = func(ctx context.Context, id string) (models.Lender, error) {
				return models.Lender{}, service.ErrNotFound
			}
			req := httptest.NewRequest(http.MethodGet, "/lenders/missing", nil)
			resp, err := setupApp(mockSvc).Test(req, fiber.TestConfig{})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusNotFound))
			Expect(decodeMessage(resp)).To(Equal("Record not found"))
		})

		It("should return the record", func() {
			mockSvc.GetFunc = func(ctx context.Context, id string) (models.Lender, error) {
				return models.Lender{ID: id, LenderName: "Axis"}, nil
			}
			req := httptest.NewRequest(http.MethodGet, "/lenders/l2", nil)
			resp, err := setupApp(mockSvc).Test(req, fiber.TestConfig{})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusOK))
			var got models.Lender
			Expect(json.NewDecoder(resp.Body).Decode(&got)).To(Succeed())
			Expect(got.ID).To(Equal("l2"))
		})
	})

	Describe("Create", func() {
		It("should create the record and answer 201", func() {
			mockSvc.CreateFunc = func(ctx context.Context, l models.Lender) (models.Lender, error) {
				l.ID = "new"
				return l, nil
			}
			payload, _ := json.Marshal(models.Lender{LenderName: "Kotak"})
			req := httptest.NewRequest(http.MethodPost, "/lenders", bytes.NewReader(payload))
			req.Header.Set("Content-Type", "application/json")
			resp, err := setupApp(mockSvc).Test(req, fiber.TestConfig{})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusCreated))
			var got models.Lender
			Expect(json.NewDecoder(resp.Body).Decode(&got)).To(Succeed())
			Expect(got).To(Equal(models.Lender{ID: "new", LenderName: "Kotak"}))
		})

		It("should surface validation messages as 400", func() {
			mockSvc.CreateFunc = func(ctx context.Context, l models.Lender) (models.Lender, error) {
				return models.Lender{}, fmt.Errorf("%w: %w", service.ErrInvalidInput, l.Validate())
			}
			req := httptest.NewRequest(http.MethodPost, "/lenders", bytes.NewReader([]byte(`{"city":"Pune"}`)))
			req.Header.Set("Content-Type", "application/json")
			resp, err := setupApp(mockSvc).Test(req, fiber.TestConfig{})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(decodeMessage(resp)).To(Equal("Lender Name is required."))
		})

		It("should reject a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/lenders", bytes.NewReader([]byte(`{"lenderName":`)))
			req.Header.Set("Content-Type", "application/json")
			resp, err := setupApp(mockSvc).Test(req, fiber.TestConfig{})
			Expect(err).NotTo(HaveOccurred())
			Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
			Expect(decodeMessage(resp)).To(Equal("Invalid request body"))
		})
	})
})

var _ = Describe("Summary Handler", func() {
	It("should return the counts", func() {
		svc := &mocks.MockSummaryService{
			SummarizeFunc: func(ctx context.Context) (service.Summary, error) {
				return service.Summary{Bankers: 3, Lenders: 1, Total: 4, LenderShare: 25}, nil
			},
		}
		app := fiber.New()
		app.Get("/summary", handlers.NewSummaryHandler(svc).Get)
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/summary", nil), fiber.TestConfig{})
		Expect(err).NotTo(HaveOccurred())
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		var got service.Summary
		Expect(json.NewDecoder(resp.Body).Decode(&got)).To(Succeed())
		Expect(got.LenderShare).To(Equal(25))
	})
})

var _ = Describe("Auth Handler", func() {
	post := func(auth *mocks.MockAuthRepository, body string) *http.Response {
		app := fiber.New()
		app.Post("/login", handlers.NewAuthHandler(auth, nil).Login)
		req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader([]byte(body)))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req, fiber.TestConfig{})
		Expect(err).NotTo(HaveOccurred())
		return resp
	}

	It("should return the backend token", func() {
		var gotEmail string
		auth := &mocks.MockAuthRepository{
			LoginFunc: func(ctx context.Context, email, password string) (string, error) {
				gotEmail = email
				return "tok", nil
			},
		}
		resp := post(auth, `{"email":" ops@f2fin.in ","password":"pw"}`)
		Expect(resp.StatusCode).To(Equal(http.StatusOK))
		Expect(gotEmail).To(Equal("ops@f2fin.in"))
		var body map[string]string
		Expect(json.NewDecoder(resp.Body).Decode(&body)).To(Succeed())
		Expect(body["access_token"]).To(Equal("tok"))
	})

	It("should require both credentials", func() {
		resp := post(&mocks.MockAuthRepository{}, `{"email":"ops@f2fin.in"}`)
		Expect(resp.StatusCode).To(Equal(http.StatusBadRequest))
	})

	It("should keep the backend 401", func() {
		auth := &mocks.MockAuthRepository{
			LoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", &repository.APIError{StatusCode: 401, Messages: []string{"Invalid credentials"}}
			},
		}
		resp := post(auth, `{"email":"ops@f2fin.in","password":"bad"}`)
		Expect(resp.StatusCode).To(Equal(http.StatusUnauthorized))
		Expect(decodeMessage(resp)).To(Equal("Invalid credentials"))
	})

	It("should answer 502 when the backend is unreachable", func() {
		auth := &mocks.MockAuthRepository{
			LoginFunc: func(ctx context.Context, email, password string) (string, error) {
				return "", repository.ErrTransport
			},
		}
		resp := post(auth, `{"email":"ops@f2fin.in","password":"pw"}`)
		Expect(resp.StatusCode).To(Equal(http.StatusBadGateway))
		Expect(decodeMessage(resp)).To(Equal("Something went wrong"))
	})
})
