package request

import (
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// CalculatePriceRequest is the catalog-driven pricing payload used by the
// standalone price calculator flow.
type CalculatePriceRequest struct {
	ModelID   string      `json:"model_id" binding:"required"`
	Condition string      `json:"condition"`
	Age       json.Number `json:"age"`
}

func (r CalculatePriceRequest) ResolveModelID() string {
	return strings.TrimSpace(r.ModelID)
}

func (r CalculatePriceRequest) ResolveAge() (decimal.Decimal, error) {
	return parseAge(r.Age)
}
