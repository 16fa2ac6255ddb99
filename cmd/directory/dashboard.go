package main

import (
	"context"
	"fmt"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/f2fin/directory-dashboard/internal/dashboard"
	"github.com/f2fin/directory-dashboard/internal/logging"
	service "github.com/f2fin/directory-dashboard/internal/services"
)

var (
	openPath string
	logFile  string
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Open the interactive terminal dashboard",
	Long: `Opens the dashboard with one tab per collection.

Use --open with a page path (/dashboards, /directory or /lender) to start on
that tab with its create form open.`,
	RunE: runDashboard,
}

func init() {
	dashboardCmd.Flags().StringVar(&openPath, "open", "", "Start on the tab for this path with its create form open")
	dashboardCmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file (default: next to the session file)")
}

func runDashboard(cmd *cobra.Command, args []string) error {
	if logFile == "" {
		logFile = filepath.Join(filepath.Dir(cfg.Session.File), "dashboard.log")
	}
	fileLogger, err := logging.New(cfg.Log.Level, cfg.Log.Format, logFile)
	if err != nil {
		return err
	}
	logger = fileLogger

	store := openSession(cfg, logger)
	b := newBackend(cfg, store, logger)

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	pages := []dashboard.Page{
		dashboard.NewPage(ctx, b.bankersDesc, b.bankers, logger),
		dashboard.NewPage(ctx, b.directoryDesc, b.directory, logger),
		dashboard.NewPage(ctx, b.lendersDesc, b.lenders, logger),
	}
	opts := []dashboard.Option{
		dashboard.WithSummary(service.NewSummaryService(b.bankers, b.lenders, logger)),
	}
	if openPath != "" {
		opts = append(opts, dashboard.OpenAt(openPath))
	}
	if sess, err := store.Current(); err == nil {
		opts = append(opts, dashboard.WithUser(displayName(sess.Email, sess.Subject)))
	}

	logger.Info("dashboard starting", zap.String("backend", cfg.Backend.BaseURL))
	program := tea.NewProgram(dashboard.New(ctx, pages, opts...), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("dashboard: %w", err)
	}
	return nil
}

func displayName(email, subject string) string {
	if email != "" {
		return email
	}
	if subject != "" {
		return subject
	}
	return "signed-in user"
}
