package categorization

import "context"

// Prediction is a model's guess at a category, by name. Names come back
// free-form and are resolved against real categories by the engine.
type Prediction struct {
	CategoryName string  `json:"category"`
	Confidence   float64 `json:"confidence"`
}

// Predictor asks an external model to pick one of the given category names
// for a merchant. The engine supplies its cached display-name list, so
// implementations never need their own category lookup. Implementations must
// degrade gracefully: a zero-confidence prediction, not an error, when the
// model is unavailable or answers with garbage.
type Predictor interface {
	Predict(ctx context.Context, merchant string, categories []string) (*Prediction, error)
}
