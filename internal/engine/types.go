package engine

// ModelCategory classifies a predictive model by the business motion it serves.
type ModelCategory string

const (
	CategoryRetention   ModelCategory = "retention"
	CategoryGrowth      ModelCategory = "growth"
	CategoryAcquisition ModelCategory = "acquisition"
	CategoryOther       ModelCategory = "other"
)

// Offer is one sellable product variant tied to a model.
type Offer struct {
	Name           string  `json:"offer_name" validate:"required"`
	Price          float64 `json:"price" validate:"gt=0"`
	Volume         float64 `json:"volume" validate:"gt=0"`
	ConversionRate float64 `json:"conversion_rate" validate:"gt=0,lte=1"`
}

// ModelInput carries one model's prediction and the offers it can propose.
// Offer order is preserved: it is part of the tie-break contract.
type ModelInput struct {
	Name        string        `json:"model_name" validate:"required"`
	Probability float64       `json:"model_probability" validate:"gte=0,lte=1"`
	Category    ModelCategory `json:"model_category" validate:"required,oneof=retention growth acquisition other"`
	Offers      []Offer       `json:"available_offers" validate:"required,min=1,dive"`
}

// OptimizationRequest is the input of one optimization call.
type OptimizationRequest struct {
	CustomerID string       `json:"customer_id" validate:"required"`
	Copcar     float64      `json:"copcar" validate:"gt=0"`
	Models     []ModelInput `json:"models" validate:"required,min=1,dive"`
}

// OptimizationResult is the single best (model, offer, price) triple of a call.
// OfferPrice is the optimized price; ActualOfferPrice is the catalog price the
// offer came in with, and ExpectedProfit is always copcar minus that catalog
// price.
type OptimizationResult struct {
	CustomerID       string  `json:"customer_id"`
	Copcar           float64 `json:"copcar"`
	OptProfit        float64 `json:"opt_profit"`
	ExpectedProfit   float64 `json:"expected_profit"`
	ModelName        string  `json:"model_name"`
	OfferName        string  `json:"offer_name"`
	OfferPrice       float64 `json:"offer_price"`
	ActualOfferPrice float64 `json:"actual_offer_price"`
	OfferVolume      float64 `json:"offer_volume"`
}
