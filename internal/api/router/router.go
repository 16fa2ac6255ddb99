package router

import (
	"errors"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"go.uber.org/zap"

	handler "github.com/f2fin/directory-dashboard/internal/api/handlers"
	"github.com/f2fin/directory-dashboard/internal/api/middleware"
)

// Handlers groups everything the gateway mounts
type Handlers struct {
	Resources []handler.Routes
	Summary   *handler.SummaryHandler
	Auth      *handler.AuthHandler
}

// SetupRoutes configures all API routes
func SetupRoutes(h Handlers, logger *zap.Logger) *fiber.App {
	if logger == nil {
		logger = zap.NewNop()
	}
	app := fiber.New(fiber.Config{
		ErrorHandler: func(c fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			message := "Internal server error"

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
				message = e.Message
			} else {
				logger.Error("unhandled error", zap.String("path", c.Path()), zap.Error(err))
			}

			return c.Status(code).JSON(fiber.Map{
				"message": message,
			})
		},
	})

	// Add global middleware
	app.Use(middleware.RequestLogger(logger))
	app.Use(recover.New())

	// API versioning
	v1 := app.Group("/v1")
	v1.Get("/health", handler.Health)

	if h.Summary != nil {
		v1.Get("/summary", h.Summary.Get)
	}
	if h.Auth != nil {
		v1.Post("/auth/login", h.Auth.Login)
	}
	for _, r := range h.Resources {
		v1.Get("/"+r.Key(), r.List)
		v1.Get("/"+r.Key()+"/:id", r.Get)
		v1.Post("/"+r.Key(), r.Create)
	}

	return app
}
