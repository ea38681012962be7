package interfaces

import (
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/shopspring/decimal"
)

// IPricePredictor abstracts the learned pricing path backed by pre-fitted
// model/scaler artifacts.
//
// Failure semantics:
//   - construction fails when the artifacts are missing or corrupt (the path
//     is then disabled; the rule-based path stays usable)
//   - PredictPrice reports a soft failure when a given input cannot be
//     encoded, so callers fall back to the rule-based estimator.

type IPricePredictor interface {
	PredictPrice(input entities.EstimateInput) (decimal.Decimal, error)
}
