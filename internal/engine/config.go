package engine

// ScoringConfig holds the objective weights and the sigmoid steepness used by
// the category policies. The defaults reproduce the production scoring model;
// they are exposed as configuration so the weights can be tuned without a code
// change.
type ScoringConfig struct {
	// Steepness controls how sharply the retention score rewards larger
	// price dilution.
	Steepness float64
	// ProfitWeight scales the nominal margin term (copcar - price).
	ProfitWeight float64
	// RetentionWeight scales the sigmoid retention score (retention only).
	RetentionWeight float64
	// EfficiencyWeight scales the conversion-efficiency term.
	EfficiencyWeight float64
	// ProbabilityWeight scales the raw model probability term.
	ProbabilityWeight float64
}

// DefaultScoringConfig returns the standard scoring weights.
func DefaultScoringConfig() ScoringConfig {
	return ScoringConfig{
		Steepness:         5.0,
		ProfitWeight:      1.0,
		RetentionWeight:   1.5,
		EfficiencyWeight:  0.3,
		ProbabilityWeight: 0.5,
	}
}

// SolverConfig holds the settings of the bounded price solver.
type SolverConfig struct {
	// MaxIterations caps the solver's iteration count per candidate.
	MaxIterations int
	// PopulationSize is the solver population; the mayfly library requires
	// at least 20.
	PopulationSize int
	// Seed makes every candidate optimization deterministic.
	Seed int64
}

// DefaultSolverConfig returns the standard solver settings.
func DefaultSolverConfig() SolverConfig {
	return SolverConfig{
		MaxIterations:  100,
		PopulationSize: 24,
		Seed:           42,
	}
}
