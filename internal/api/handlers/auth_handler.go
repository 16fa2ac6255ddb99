package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v3"
	"go.uber.org/zap"

	repository "github.com/f2fin/directory-dashboard/internal/repositories"
)

// AuthHandler relays sign-in to the backend
type AuthHandler struct {
	auth   repository.AuthRepository
	logger *zap.Logger
}

func NewAuthHandler(auth repository.AuthRepository, logger *zap.Logger) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{auth: auth, logger: logger}
}

// Login answers with the backend token. A 4xx from the backend keeps its
// status; anything else is a 502.
func (h *AuthHandler) Login(c fiber.Ctx) error {
	var creds repository.Credentials
	if err := c.Bind().Body(&creds); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
		})
	}
	if strings.TrimSpace(creds.Email) == "" || creds.Password == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Email and password are required",
		})
	}

	token, err := h.auth.Login(c.Context(), strings.TrimSpace(creds.Email), creds.Password)
	if err != nil {
		h.logger.Info("login rejected", zap.String("email", creds.Email), zap.Error(err))
		status := fiber.StatusBadGateway
		var apiErr *repository.APIError
		if errors.As(err, &apiErr) && apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			status = apiErr.StatusCode
		}
		return c.Status(status).JSON(fiber.Map{
			"message": repository.ErrorMessage(err),
		})
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"access_token": token})
}
