package main

import (
	"fmt"
	"os"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "github.com/f2fin/directory-dashboard/internal/configurations"
	"github.com/f2fin/directory-dashboard/internal/logging"
)

var (
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:           "directory",
	Short:         "Banker and lender directory dashboard",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `directory manages the banker, banker-directory and lender collections
held by the F2 Fintech backend.

Run "directory dashboard" for the interactive terminal dashboard or
"directory serve" to expose the same views as a JSON gateway.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		// The dashboard owns the terminal and builds its own file logger.
		if cmd.Name() == dashboardCmd.Name() {
			logger = zap.NewNop()
			return nil
		}
		logger, err = logging.New(cfg.Log.Level, cfg.Log.Format)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to configuration file")
	rootCmd.AddCommand(serveCmd, dashboardCmd, loginCmd, logoutCmd, whoamiCmd, importCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
