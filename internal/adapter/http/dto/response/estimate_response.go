package response

import (
	"time"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase"
)

// EstimateResponse serializes a price estimate. Amounts are fixed-point
// strings with 2-digit precision; the currency is INR throughout.
type EstimateResponse struct {
	Amount               string `json:"amount"`
	Currency             string `json:"currency"`
	Basis                string `json:"basis"`
	MaterialFloorApplied bool   `json:"material_floor_applied"`
}

func FromPriceEstimate(e entities.PriceEstimate) EstimateResponse {
	return EstimateResponse{
		Amount:               e.Amount.StringFixed(2),
		Currency:             "INR",
		Basis:                string(e.Basis),
		MaterialFloorApplied: e.MaterialFloorUsed,
	}
}

// ModelPriceResponse is the catalog-path result: the estimate plus the model
// facts and the material breakdown that backed the floor decision.
type ModelPriceResponse struct {
	EstimateResponse
	ModelID            string            `json:"model_id"`
	ModelName          string            `json:"model_name"`
	BrandName          string            `json:"brand_name"`
	DeviceType         string            `json:"device_type"`
	BasePrice          string            `json:"base_price"`
	MaterialValueTotal string            `json:"material_value_total"`
	MaterialValues     map[string]string `json:"material_values"`
}

func FromModelPriceEstimate(m usecase.ModelPriceEstimate) ModelPriceResponse {
	values := make(map[string]string, len(m.MaterialValues))
	for material, value := range m.MaterialValues {
		values[string(material)] = value.StringFixed(2)
	}
	return ModelPriceResponse{
		EstimateResponse:   FromPriceEstimate(m.Estimate),
		ModelID:            m.Model.ID,
		ModelName:          m.Model.Name,
		BrandName:          m.Model.BrandName,
		DeviceType:         string(m.Model.DeviceType),
		BasePrice:          m.Model.BasePrice.StringFixed(2),
		MaterialValueTotal: m.Estimate.MaterialFloorValue.StringFixed(2),
		MaterialValues:     values,
	}
}

// MaterialValueResponse is the standalone material value breakdown.
type MaterialValueResponse struct {
	DeviceType string            `json:"device_type"`
	Currency   string            `json:"currency"`
	Values     map[string]string `json:"values"`
	Total      string            `json:"total"`
}

func FromMaterialValue(deviceType entities.DeviceType, v usecase.MaterialValue) MaterialValueResponse {
	values := make(map[string]string, len(v.Values))
	for material, value := range v.Values {
		values[string(material)] = value.StringFixed(2)
	}
	return MaterialValueResponse{
		DeviceType: string(deviceType),
		Currency:   "INR",
		Values:     values,
		Total:      v.Total.StringFixed(2),
	}
}

// ModelMaterialValueResponse is the per-model material value breakdown,
// driven by the persisted composition when the model has one.
type ModelMaterialValueResponse struct {
	ModelID  string            `json:"model_id"`
	Currency string            `json:"currency"`
	Values   map[string]string `json:"values"`
	Total    string            `json:"total"`
}

func FromModelMaterialValue(modelID string, v usecase.MaterialValue) ModelMaterialValueResponse {
	values := make(map[string]string, len(v.Values))
	for material, value := range v.Values {
		values[string(material)] = value.StringFixed(2)
	}
	return ModelMaterialValueResponse{
		ModelID:  modelID,
		Currency: "INR",
		Values:   values,
		Total:    v.Total.StringFixed(2),
	}
}

type MaterialPriceResponse struct {
	Material     string    `json:"material"`
	PricePerGram string    `json:"price_per_gram"`
	LastUpdated  time.Time `json:"last_updated"`
}

func FromMaterialPrice(p entities.MaterialPrice) MaterialPriceResponse {
	return MaterialPriceResponse{
		Material:     string(p.Material),
		PricePerGram: p.PricePerGram.String(),
		LastUpdated:  p.LastUpdated,
	}
}
