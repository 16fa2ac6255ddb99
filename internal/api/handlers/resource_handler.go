package handlers

import (
	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	service "github.com/f2fin/directory-dashboard/internal/services"
)

// Routes is the set of endpoints mounted for one collection
type Routes interface {
	Key() string
	List(c fiber.Ctx) error
	Get(c fiber.Ctx) error
	Create(c fiber.Ctx) error
}

// ResourceHandler handles API requests for one collection
type ResourceHandler[T any] struct {
	service service.ResourceService[T]
	logger  *zap.Logger
}

// NewResourceHandler creates a new handler instance
func NewResourceHandler[T any](svc service.ResourceService[T], logger *zap.Logger) *ResourceHandler[T] {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ResourceHandler[T]{service: svc, logger: logger}
}

func (h *ResourceHandler[T]) Key() string {
	return h.service.Key()
}

// List handles ?filter=<name>&q=<text>
func (h *ResourceHandler[T]) List(c fiber.Ctx) error {
	filter := c.Query("filter")
	query := c.Query("q")

	records, err := h.service.List(c.Context(), filter, query)
	if err != nil {
		h.logger.Debug("list failed", zap.String("resource", h.Key()), zap.Error(err))
		return handleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(records)
}

// Get handles requests for a single record by backend id
func (h *ResourceHandler[T]) Get(c fiber.Ctx) error {
	record, err := h.service.Get(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(record)
}

// Create handles creation of a new record
func (h *ResourceHandler[T]) Create(c fiber.Ctx) error {
	var record T
	if err := c.Bind().Body(&record); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}

	created, err := h.service.Create(c.Context(), record)
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}
