package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/f2fin/directory-dashboard/internal/api/handlers"
	"github.com/f2fin/directory-dashboard/internal/api/router"
	service "github.com/f2fin/directory-dashboard/internal/services"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the dashboard gateway over HTTP",
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	store := openSession(cfg, logger)
	b := newBackend(cfg, store, logger)

	bankers := service.NewResourceService(b.bankersDesc, b.bankers, logger)
	directory := service.NewResourceService(b.directoryDesc, b.directory, logger)
	lenders := service.NewResourceService(b.lendersDesc, b.lenders, logger)

	app := router.SetupRoutes(router.Handlers{
		Resources: []handlers.Routes{
			handlers.NewResourceHandler(bankers, logger),
			handlers.NewResourceHandler(directory, logger),
			handlers.NewResourceHandler(lenders, logger),
		},
		Summary: handlers.NewSummaryHandler(service.NewSummaryService(b.bankers, b.lenders, logger)),
		Auth:    handlers.NewAuthHandler(b.auth, logger),
	}, logger)

	// Start server in a goroutine so we can handle graceful shutdown
	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server",
			zap.String("address", cfg.Server.Address),
			zap.String("backend", cfg.Backend.BaseURL),
		)
		errCh <- app.Listen(cfg.Server.Address)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}

	logger.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		return err
	}
	logger.Info("server exiting")
	return nil
}
