package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/offerwise/offeropt/internal/config"
)

var (
	logLevel   string
	configPath string
	logger     *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "offeropt",
	Short: "Offer selection and price optimization service",
	Long: `Offeropt picks the single best offer for a customer across all
candidate models and computes its optimal price against the customer's
COPCAR reference value.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogger(logLevel)
	},
}

// setupLogger installs a JSON slog handler at the given level.
func setupLogger(level string) {
	var l slog.Level
	switch level {
	case "debug":
		l = slog.LevelDebug
	case "info":
		l = slog.LevelInfo
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: l}
	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
}

// applyLoggingConfig re-levels the logger from the config file. The
// --log-level flag wins when set explicitly; otherwise the file value
// replaces the flag's default.
func applyLoggingConfig(cfg *config.Configuration) {
	if rootCmd.PersistentFlags().Changed("log-level") {
		return
	}
	setupLogger(cfg.Logging.Level)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to YAML config file (optional)")
}
