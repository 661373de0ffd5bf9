package opt

// Optimizer defines a bounded optimization algorithm
type Optimizer interface {
	// Run executes the optimization
	// eval: objective function to minimize
	// lower, upper: parameter bounds (box constraints, enforced natively)
	// dim: dimensionality of parameter space
	// Returns: best parameters and best cost, or an error when the solver
	// could not produce a result
	Run(eval func([]float64) float64, lower, upper []float64, dim int) ([]float64, float64, error)
}
