package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"

	"github.com/offerwise/offeropt/internal/config"
	"github.com/offerwise/offeropt/internal/engine"
	"github.com/offerwise/offeropt/internal/opt"
)

var requestPath string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a single optimization from a request file",
	Long:  `Reads an optimization request from a JSON file, runs the engine once, and prints the result as JSON.`,
	RunE:  runOptimization,
}

func init() {
	runCmd.Flags().StringVar(&requestPath, "request", "", "Path to JSON request file (required)")

	runCmd.MarkFlagRequired("request")
	rootCmd.AddCommand(runCmd)
}

func runOptimization(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyLoggingConfig(cfg)

	data, err := os.ReadFile(requestPath)
	if err != nil {
		return fmt.Errorf("failed to read request: %w", err)
	}

	var req engine.OptimizationRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return fmt.Errorf("failed to parse request: %w", err)
	}

	if err := validator.New().Struct(&req); err != nil {
		return fmt.Errorf("invalid request: %w", err)
	}

	slog.Info("Starting optimization",
		"customer_id", req.CustomerID,
		"copcar", req.Copcar,
		"models", len(req.Models),
	)

	solver := cfg.EngineSolver()
	eng := engine.New(cfg.EngineScoring(), opt.NewMayfly(solver.MaxIterations, solver.PopulationSize, solver.Seed))

	start := time.Now()
	result, err := eng.Optimize(&req)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	slog.Info("Optimization complete",
		"elapsed", elapsed,
		"model", result.ModelName,
		"offer", result.OfferName,
		"offer_price", result.OfferPrice,
		"opt_profit", result.OptProfit,
	)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	fmt.Println(string(out))

	return nil
}
