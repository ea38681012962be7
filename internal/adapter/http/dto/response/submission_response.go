package response

import (
	"encoding/json"
	"time"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
)

// SubmissionResponse returns the persisted item together with its estimate.
type SubmissionResponse struct {
	ItemID    string           `json:"item_id"`
	ItemType  string           `json:"item_type"`
	Estimate  EstimateResponse `json:"estimate"`
	CreatedAt time.Time        `json:"created_at"`
}

func FromSubmission(item entities.EWasteItem, estimate entities.PriceEstimate) SubmissionResponse {
	return SubmissionResponse{
		ItemID:    item.ID,
		ItemType:  item.ItemType,
		Estimate:  FromPriceEstimate(estimate),
		CreatedAt: item.CreatedAt,
	}
}

// SubmissionDetailResponse is the full persisted item, served by the
// submission read endpoint.
type SubmissionDetailResponse struct {
	ItemID            string          `json:"item_id"`
	UserID            string          `json:"user_id"`
	ItemType          string          `json:"item_type"`
	Brand             string          `json:"brand"`
	Model             string          `json:"model"`
	AgeYears          string          `json:"age_years"`
	FunctionalStatus  string          `json:"functional_status"`
	BatteryStatus     string          `json:"battery_status"`
	ScreenCondition   string          `json:"screen_condition"`
	MotherboardStatus string          `json:"motherboard_status"`
	ImageRef          string          `json:"image_ref"`
	AnalysisResults   json.RawMessage `json:"analysis_results,omitempty"`
	PriceEstimation   string          `json:"price_estimation"`
	EstimateBasis     string          `json:"estimate_basis"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func FromSubmissionDetail(item entities.EWasteItem) SubmissionDetailResponse {
	return SubmissionDetailResponse{
		ItemID:            item.ID,
		UserID:            item.UserID,
		ItemType:          item.ItemType,
		Brand:             item.Brand,
		Model:             item.Model,
		AgeYears:          item.AgeYears.String(),
		FunctionalStatus:  string(item.FunctionalStatus),
		BatteryStatus:     string(item.BatteryStatus),
		ScreenCondition:   string(item.ScreenCondition),
		MotherboardStatus: string(item.MotherboardStatus),
		ImageRef:          item.ImageRef,
		AnalysisResults:   item.AnalysisResults,
		PriceEstimation:   item.PriceEstimation.StringFixed(2),
		EstimateBasis:     string(item.EstimateBasis),
		CreatedAt:         item.CreatedAt,
		UpdatedAt:         item.UpdatedAt,
	}
}
