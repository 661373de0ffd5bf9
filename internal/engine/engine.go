package engine

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/offerwise/offeropt/internal/opt"
)

// NoSuitableOfferError is returned when every (model, offer) candidate of a
// request was excluded, degenerate, or failed to optimize. It is the only
// engine-level failure; individual candidate failures are skipped silently.
type NoSuitableOfferError struct {
	CustomerID string
}

func (e *NoSuitableOfferError) Error() string {
	return fmt.Sprintf("no suitable offer found for customer %s", e.CustomerID)
}

// Engine selects the single best offer for a customer and computes its
// optimal price. It is stateless across calls and safe for concurrent use as
// long as the underlying optimizer is.
type Engine struct {
	scoring   ScoringConfig
	optimizer opt.Optimizer
}

// New creates an engine with the given scoring weights and bounded solver.
func New(scoring ScoringConfig, optimizer opt.Optimizer) *Engine {
	return &Engine{scoring: scoring, optimizer: optimizer}
}

// candidate is one successfully optimized (model, offer, price) triple.
type candidate struct {
	model *ModelInput
	offer *Offer
	price float64
	score float64
}

// Optimize evaluates every (model, offer) pair of the request, optimizes a
// price for each over its category bounds, and returns the globally
// best-scoring triple. Models and offers are visited in request order; ties
// keep the first candidate seen.
func (e *Engine) Optimize(req *OptimizationRequest) (*OptimizationResult, error) {
	slog.Debug("Starting optimization", "customer_id", req.CustomerID, "copcar", req.Copcar, "models", len(req.Models))

	var candidates []candidate
	for mi := range req.Models {
		model := &req.Models[mi]
		policy := PolicyFor(model.Category, req.Copcar, e.scoring)

		for oi := range model.Offers {
			offer := &model.Offers[oi]
			cand, ok := e.optimizeOffer(policy, model, offer, req.Copcar)
			if !ok {
				continue
			}
			candidates = append(candidates, cand)
		}
	}

	best, ok := selectBest(candidates)
	if !ok {
		slog.Info("No suitable offer", "customer_id", req.CustomerID, "copcar", req.Copcar)
		return nil, &NoSuitableOfferError{CustomerID: req.CustomerID}
	}

	slog.Info("Optimization complete",
		"customer_id", req.CustomerID,
		"model", best.model.Name,
		"offer", best.offer.Name,
		"price", best.price,
		"opt_profit", best.score,
	)

	// Expected profit is judged against the catalog price, not the
	// optimized one.
	return &OptimizationResult{
		CustomerID:       req.CustomerID,
		Copcar:           req.Copcar,
		OptProfit:        best.score,
		ExpectedProfit:   req.Copcar - best.offer.Price,
		ModelName:        best.model.Name,
		OfferName:        best.offer.Name,
		OfferPrice:       best.price,
		ActualOfferPrice: best.offer.Price,
		OfferVolume:      best.offer.Volume,
	}, nil
}

// optimizeOffer runs the bounded price search for one (model, offer) pair.
// It returns false for every skip condition: inadmissible offer, degenerate
// bounds, solver failure, or an objective that stayed infeasible everywhere.
func (e *Engine) optimizeOffer(policy CategoryPolicy, model *ModelInput, offer *Offer, copcar float64) (candidate, bool) {
	if !policy.Admissible(*offer) {
		slog.Debug("Offer excluded", "model", model.Name, "offer", offer.Name, "price", offer.Price, "copcar", copcar)
		return candidate{}, false
	}

	low, high := policy.Bounds(*offer)
	if low >= high {
		slog.Debug("Degenerate bounds", "model", model.Name, "offer", offer.Name, "low", low, "high", high)
		return candidate{}, false
	}

	// The solver minimizes, so the objective is negated.
	eval := func(x []float64) float64 {
		return -policy.Evaluate(x[0], *offer, *model)
	}

	pos, cost, err := e.optimizer.Run(eval, []float64{low}, []float64{high}, 1)
	if err != nil {
		slog.Debug("Solver failed", "model", model.Name, "offer", offer.Name, "error", err)
		return candidate{}, false
	}

	price := pos[0]
	score := -cost

	// The midpoint is the reference starting point; never return a result
	// worse than it.
	mid := (low + high) / 2
	if midScore := policy.Evaluate(mid, *offer, *model); midScore > score {
		price = mid
		score = midScore
	}

	if math.IsInf(score, -1) || math.IsNaN(score) {
		return candidate{}, false
	}

	return candidate{model: model, offer: offer, price: price, score: score}, true
}

// selectBest folds the candidate sequence down to the strictly
// greatest-scoring entry. Earlier candidates win ties, which makes request
// order part of the observable contract.
func selectBest(candidates []candidate) (candidate, bool) {
	if len(candidates) == 0 {
		return candidate{}, false
	}

	best := candidates[0]
	for _, c := range candidates[1:] {
		if c.score > best.score {
			best = c
		}
	}
	return best, true
}
