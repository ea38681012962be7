package request

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/shopspring/decimal"
)

var ErrInvalidAge = errors.New("invalid age value")

// EstimateRequest is the generic self-report estimation payload. Fields
// arrive loosely typed from forms/JSON; age is accepted as a JSON number or
// numeric string and parsed into an exact decimal.
type EstimateRequest struct {
	ItemType          string      `json:"item_type" binding:"required"`
	Brand             string      `json:"brand"`
	Model             string      `json:"model"`
	Age               json.Number `json:"age"`
	FunctionalStatus  string      `json:"functional_status"`
	BatteryStatus     string      `json:"battery_status"`
	ScreenCondition   string      `json:"screen_condition"`
	MotherboardStatus string      `json:"motherboard_status"`
	Basis             string      `json:"basis"`
}

func (r EstimateRequest) ToEstimateInput() (entities.EstimateInput, error) {
	age, err := parseAge(r.Age)
	if err != nil {
		return entities.EstimateInput{}, err
	}
	return entities.EstimateInput{
		ItemType:          strings.ToLower(strings.TrimSpace(r.ItemType)),
		Brand:             strings.TrimSpace(r.Brand),
		Model:             strings.TrimSpace(r.Model),
		AgeYears:          age,
		FunctionalStatus:  entities.ParseFunctionalStatus(r.FunctionalStatus),
		BatteryStatus:     entities.ParseComponentStatus(r.BatteryStatus),
		ScreenCondition:   entities.ParseComponentStatus(r.ScreenCondition),
		MotherboardStatus: entities.ParseComponentStatus(r.MotherboardStatus),
	}, nil
}

// ResolveBasis picks the estimation path; anything other than an explicit
// learned-model request uses the rule-based path.
func (r EstimateRequest) ResolveBasis() entities.EstimateBasis {
	if entities.EstimateBasis(strings.ToLower(strings.TrimSpace(r.Basis))) == entities.EstimateBasisLearnedModel {
		return entities.EstimateBasisLearnedModel
	}
	return entities.EstimateBasisRuleBased
}

func parseAge(raw json.Number) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw.String())
	if s == "" {
		return decimal.Decimal{}, nil
	}
	age, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, ErrInvalidAge
	}
	return age, nil
}
