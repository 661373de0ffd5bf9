package main

import (
	"context"
	"log/slog"
	"testing"

	"github.com/offerwise/offeropt/internal/config"
)

func resetLogLevelFlag(t *testing.T) {
	t.Helper()
	flag := rootCmd.PersistentFlags().Lookup("log-level")
	if flag == nil {
		t.Fatal("log-level flag not registered")
	}
	changed := flag.Changed
	t.Cleanup(func() {
		flag.Changed = changed
		setupLogger("info")
	})
}

func TestApplyLoggingConfigUsesFileLevel(t *testing.T) {
	resetLogLevelFlag(t)
	rootCmd.PersistentFlags().Lookup("log-level").Changed = false

	setupLogger("info")
	applyLoggingConfig(&config.Configuration{Logging: config.LoggingConfig{Level: "debug"}})

	if !slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("File logging level should apply when the flag is left at its default")
	}
}

func TestApplyLoggingConfigFlagWins(t *testing.T) {
	resetLogLevelFlag(t)
	rootCmd.PersistentFlags().Lookup("log-level").Changed = true

	setupLogger("warn")
	applyLoggingConfig(&config.Configuration{Logging: config.LoggingConfig{Level: "debug"}})

	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("An explicit --log-level must not be overridden by the config file")
	}
}

func TestSetupLoggerLevels(t *testing.T) {
	resetLogLevelFlag(t)

	setupLogger("error")
	if slog.Default().Enabled(context.Background(), slog.LevelWarn) {
		t.Error("error level should suppress warn")
	}

	setupLogger("bogus")
	if !slog.Default().Enabled(context.Background(), slog.LevelInfo) {
		t.Error("Unknown level should fall back to info")
	}
	if slog.Default().Enabled(context.Background(), slog.LevelDebug) {
		t.Error("Fallback level should not enable debug")
	}
}
