package opt

import (
	"math"
	"testing"
)

// Sphere function: f(x) = sum(x_i^2), minimum at origin
func sphere(x []float64) float64 {
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return sum
}

func TestMayflyAdapterOnSphere(t *testing.T) {
	optimizer := NewMayfly(100, 20, 42) // maxIters, popSize, seed

	dim := 3
	lower := make([]float64, dim)
	upper := make([]float64, dim)
	for i := 0; i < dim; i++ {
		lower[i] = -10
		upper[i] = 10
	}

	best, cost, err := optimizer.Run(sphere, lower, upper, dim)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(best) != dim {
		t.Fatalf("Expected %d parameters, got %d", dim, len(best))
	}

	// Should converge close to zero
	if cost > 0.1 {
		t.Errorf("Expected cost near 0, got %f", cost)
	}

	for i, v := range best {
		if math.Abs(v) > 1.0 {
			t.Errorf("Parameter %d = %f, expected near 0", i, v)
		}
	}
}

func TestMayflyAdapterBounded1D(t *testing.T) {
	optimizer := NewMayfly(100, 20, 42)

	// Minimum of (x-3)^2 over [5, 10] sits on the lower bound.
	eval := func(x []float64) float64 {
		d := x[0] - 3
		return d * d
	}

	best, cost, err := optimizer.Run(eval, []float64{5}, []float64{10}, 1)
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if best[0] < 5 || best[0] > 10 {
		t.Errorf("Result %f escaped bounds [5, 10]", best[0])
	}
	if math.Abs(best[0]-5) > 0.1 {
		t.Errorf("Expected convergence to lower bound 5, got %f", best[0])
	}
	if math.Abs(cost-4) > 0.5 {
		t.Errorf("Expected cost near 4, got %f", cost)
	}
}

func TestMayflyAdapterDeterministic(t *testing.T) {
	dim := 2
	lower := []float64{-5, -5}
	upper := []float64{5, 5}

	// Run twice with same seed (popSize must be >=20 for mayfly v0.1.0)
	optimizer1 := NewMayfly(50, 20, 123)
	_, cost1, err := optimizer1.Run(sphere, lower, upper, dim)
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}

	optimizer2 := NewMayfly(50, 20, 123)
	_, cost2, err := optimizer2.Run(sphere, lower, upper, dim)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if cost1 != cost2 {
		t.Errorf("Non-deterministic: cost1=%f, cost2=%f", cost1, cost2)
	}
}

func TestMayflyAdapterReusableAcrossRuns(t *testing.T) {
	// The same adapter instance reseeds on every Run, so two identical
	// problems give identical answers.
	optimizer := NewMayfly(50, 20, 7)

	eval := func(x []float64) float64 { return (x[0] - 1) * (x[0] - 1) }

	best1, cost1, err := optimizer.Run(eval, []float64{-4}, []float64{4}, 1)
	if err != nil {
		t.Fatalf("First run failed: %v", err)
	}
	best2, cost2, err := optimizer.Run(eval, []float64{-4}, []float64{4}, 1)
	if err != nil {
		t.Fatalf("Second run failed: %v", err)
	}

	if best1[0] != best2[0] || cost1 != cost2 {
		t.Errorf("Adapter not reusable: (%f, %f) vs (%f, %f)", best1[0], cost1, best2[0], cost2)
	}
}
