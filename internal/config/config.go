// Package config loads the service configuration from an optional YAML file.
// Every setting has a working default, so the binary runs without a file.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/offerwise/offeropt/internal/engine"
)

// Configuration holds all configuration for offeropt.
type Configuration struct {
	Scoring ScoringConfig `mapstructure:"scoring"`
	Solver  SolverConfig  `mapstructure:"solver"`
	Server  ServerConfig  `mapstructure:"server"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ScoringConfig mirrors the engine scoring weights for file-based tuning.
type ScoringConfig struct {
	Steepness         float64 `mapstructure:"steepness"`
	ProfitWeight      float64 `mapstructure:"profitWeight"`
	RetentionWeight   float64 `mapstructure:"retentionWeight"`
	EfficiencyWeight  float64 `mapstructure:"efficiencyWeight"`
	ProbabilityWeight float64 `mapstructure:"probabilityWeight"`
}

// SolverConfig mirrors the engine solver settings.
type SolverConfig struct {
	MaxIterations  int   `mapstructure:"maxIterations"`
	PopulationSize int   `mapstructure:"populationSize"`
	Seed           int64 `mapstructure:"seed"`
}

// ServerConfig holds HTTP server options.
type ServerConfig struct {
	Addr string `mapstructure:"addr"`
}

// LoggingConfig holds logging options.
type LoggingConfig struct {
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Load reads the configuration file at configPath, falling back to defaults
// for anything unset. An empty path returns pure defaults.
func Load(configPath string) (*Configuration, error) {
	v := viper.New()

	scoring := engine.DefaultScoringConfig()
	solver := engine.DefaultSolverConfig()

	v.SetDefault("scoring.steepness", scoring.Steepness)
	v.SetDefault("scoring.profitWeight", scoring.ProfitWeight)
	v.SetDefault("scoring.retentionWeight", scoring.RetentionWeight)
	v.SetDefault("scoring.efficiencyWeight", scoring.EfficiencyWeight)
	v.SetDefault("scoring.probabilityWeight", scoring.ProbabilityWeight)
	v.SetDefault("solver.maxIterations", solver.MaxIterations)
	v.SetDefault("solver.populationSize", solver.PopulationSize)
	v.SetDefault("solver.seed", solver.Seed)
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("logging.level", "info")

	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file, %s", err)
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if err := configuration.validate(); err != nil {
		return nil, err
	}

	return &configuration, nil
}

func (c *Configuration) validate() error {
	if c.Scoring.Steepness <= 0 {
		return fmt.Errorf("scoring.steepness must be positive, got %f", c.Scoring.Steepness)
	}
	if c.Solver.MaxIterations <= 0 {
		return fmt.Errorf("solver.maxIterations must be positive, got %d", c.Solver.MaxIterations)
	}
	if c.Solver.PopulationSize < 20 {
		return fmt.Errorf("solver.populationSize must be at least 20, got %d", c.Solver.PopulationSize)
	}
	return nil
}

// EngineScoring converts the file representation to the engine's type.
func (c *Configuration) EngineScoring() engine.ScoringConfig {
	return engine.ScoringConfig{
		Steepness:         c.Scoring.Steepness,
		ProfitWeight:      c.Scoring.ProfitWeight,
		RetentionWeight:   c.Scoring.RetentionWeight,
		EfficiencyWeight:  c.Scoring.EfficiencyWeight,
		ProbabilityWeight: c.Scoring.ProbabilityWeight,
	}
}

// EngineSolver converts the file representation to the engine's type.
func (c *Configuration) EngineSolver() engine.SolverConfig {
	return engine.SolverConfig{
		MaxIterations:  c.Solver.MaxIterations,
		PopulationSize: c.Solver.PopulationSize,
		Seed:           c.Solver.Seed,
	}
}
