package request

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidMaterialPrice = errors.New("invalid material price value")

// MaterialPriceRequest is the administrative payload for overriding one
// per-gram material price.
type MaterialPriceRequest struct {
	Material     string      `json:"material" binding:"required"`
	PricePerGram json.Number `json:"price_per_gram" binding:"required"`
}

func (r MaterialPriceRequest) ResolveMaterial() string {
	return strings.TrimSpace(r.Material)
}

func (r MaterialPriceRequest) ResolvePricePerGram() (decimal.Decimal, error) {
	s := strings.TrimSpace(r.PricePerGram.String())
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidMaterialPrice
	}
	return price, nil
}
