package handlers

import (
	"github.com/gofiber/fiber/v3"

	service "github.com/f2fin/directory-dashboard/internal/services"
)

type SummaryHandler struct {
	service service.SummaryService
}

func NewSummaryHandler(svc service.SummaryService) *SummaryHandler {
	return &SummaryHandler{service: svc}
}

// Get returns the banker and lender counts
func (h *SummaryHandler) Get(c fiber.Ctx) error {
	summary, err := h.service.Summarize(c.Context())
	if err != nil {
		return handleError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(summary)
}

// Health reports liveness
func Health(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}
