package request

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidBasePrice = errors.New("invalid base price value")

// UpdateBasePriceRequest is the administrative payload for changing a catalog
// model's base price.
type UpdateBasePriceRequest struct {
	BasePrice json.Number `json:"base_price" binding:"required"`
}

func (r UpdateBasePriceRequest) ResolveBasePrice() (decimal.Decimal, error) {
	s := strings.TrimSpace(r.BasePrice.String())
	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidBasePrice
	}
	return price, nil
}
