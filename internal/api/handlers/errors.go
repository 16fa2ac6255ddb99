package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/f2fin/directory-dashboard/internal/models"
	repository "github.com/f2fin/directory-dashboard/internal/repositories"
	service "github.com/f2fin/directory-dashboard/internal/services"
)

// Helper function for error handling
func handleError(c fiber.Ctx, err error) error {
	var verr *models.ValidationError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "Record not found",
		})
	case errors.As(err, &verr):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": verr.Message,
			"field":   verr.Field,
		})
	case errors.Is(err, service.ErrUnknownFilter):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Unknown filter",
		})
	case errors.Is(err, service.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid input provided",
		})
	case errors.Is(err, service.ErrUpstream):
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"message": repository.ErrorMessage(err),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Internal server error",
		})
	}
}
