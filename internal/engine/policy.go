package engine

import "math"

// minPriceGuard keeps the efficiency term of the default policy from dividing
// by zero when a price near zero is probed.
const minPriceGuard = 0.01

// CategoryPolicy bundles the per-category behavior of the engine: which offers
// may be optimized at all, over which price interval, and how a candidate
// price is scored. A policy is bound to one optimization call's copcar.
type CategoryPolicy interface {
	// Admissible reports whether the offer may enter optimization at all.
	Admissible(offer Offer) bool
	// Bounds returns the price interval explored for the offer. The
	// formulas can produce low >= high for some price/copcar ratios; the
	// engine treats that as infeasible and skips the candidate.
	Bounds(offer Offer) (low, high float64)
	// Evaluate scores a candidate price. Returns -Inf when the price is
	// infeasible for the category, so a maximizer naturally avoids it.
	Evaluate(price float64, offer Offer, model ModelInput) float64
}

// PolicyFor selects the policy for a model category. Only retention has
// distinct behavior; growth, acquisition, and other share DefaultPolicy.
func PolicyFor(category ModelCategory, copcar float64, cfg ScoringConfig) CategoryPolicy {
	if category == CategoryRetention {
		return &RetentionPolicy{copcar: copcar, cfg: cfg}
	}
	return &DefaultPolicy{copcar: copcar, cfg: cfg}
}

// RetentionPolicy scores retention offers. A retention offer must dilute the
// customer's copcar, so any price at or above copcar is rejected, and offers
// whose catalog price already fails that are excluded before optimization.
type RetentionPolicy struct {
	copcar float64
	cfg    ScoringConfig
}

func (p *RetentionPolicy) Admissible(offer Offer) bool {
	return offer.Price < p.copcar
}

func (p *RetentionPolicy) Bounds(offer Offer) (float64, float64) {
	low := math.Min(0.3*p.copcar, 0.8*offer.Price)
	high := math.Min(0.9*p.copcar, offer.Price)
	return low, high
}

func (p *RetentionPolicy) Evaluate(price float64, offer Offer, model ModelInput) float64 {
	if price >= p.copcar {
		return math.Inf(-1)
	}

	dilutionRate := 1 - price/p.copcar
	churnProb := 1 - model.Probability
	retentionScore := (1 - churnProb) * sigmoid(p.cfg.Steepness*dilutionRate)

	return p.cfg.ProfitWeight*(p.copcar-price)*offer.ConversionRate +
		p.cfg.RetentionWeight*retentionScore*p.copcar +
		p.cfg.EfficiencyWeight*offer.ConversionRate*dilutionRate +
		p.cfg.ProbabilityWeight*model.Probability
}

// DefaultPolicy scores growth, acquisition, and other offers. The price must
// stay profitable (below copcar); the efficiency term rewards cheap offers
// with good conversion.
type DefaultPolicy struct {
	copcar float64
	cfg    ScoringConfig
}

func (p *DefaultPolicy) Admissible(Offer) bool {
	return true
}

func (p *DefaultPolicy) Bounds(offer Offer) (float64, float64) {
	low := math.Min(0.5*p.copcar, 0.8*offer.Price)
	high := math.Min(0.95*p.copcar, offer.Price)
	return low, high
}

func (p *DefaultPolicy) Evaluate(price float64, offer Offer, model ModelInput) float64 {
	if price >= p.copcar {
		return math.Inf(-1)
	}

	return p.cfg.ProfitWeight*(p.copcar-price)*offer.ConversionRate +
		p.cfg.EfficiencyWeight*offer.ConversionRate*p.copcar/math.Max(price, minPriceGuard) +
		p.cfg.ProbabilityWeight*model.Probability
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
