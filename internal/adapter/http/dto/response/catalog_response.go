package response

import (
	"time"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
)

type BrandResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	DeviceType string `json:"device_type"`
}

func FromBrands(brands []entities.DeviceBrand) []BrandResponse {
	out := make([]BrandResponse, 0, len(brands))
	for _, b := range brands {
		out = append(out, BrandResponse{ID: b.ID, Name: b.Name, DeviceType: string(b.DeviceType)})
	}
	return out
}

type ModelResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	BrandName   string `json:"brand_name"`
	DeviceType  string `json:"device_type"`
	BasePrice   string `json:"base_price"`
	ReleaseYear int    `json:"release_year"`
}

func FromModel(m entities.DeviceModel) ModelResponse {
	return ModelResponse{
		ID:          m.ID,
		Name:        m.Name,
		BrandName:   m.BrandName,
		DeviceType:  string(m.DeviceType),
		BasePrice:   m.BasePrice.StringFixed(2),
		ReleaseYear: m.ReleaseYear,
	}
}

func FromModels(models []entities.DeviceModel) []ModelResponse {
	out := make([]ModelResponse, 0, len(models))
	for _, m := range models {
		out = append(out, FromModel(m))
	}
	return out
}

type PriceHistoryResponse struct {
	ID              string    `json:"id"`
	DeviceModelID   string    `json:"device_model_id"`
	BasePrice       string    `json:"base_price"`
	MarketCondition string    `json:"market_condition"`
	Notes           string    `json:"notes"`
	RecordedAt      time.Time `json:"recorded_at"`
}

func FromPriceHistory(history []entities.PriceHistory) []PriceHistoryResponse {
	out := make([]PriceHistoryResponse, 0, len(history))
	for _, h := range history {
		out = append(out, PriceHistoryResponse{
			ID:              h.ID,
			DeviceModelID:   h.DeviceModelID,
			BasePrice:       h.BasePrice.StringFixed(2),
			MarketCondition: h.MarketCondition,
			Notes:           h.Notes,
			RecordedAt:      h.RecordedAt,
		})
	}
	return out
}
