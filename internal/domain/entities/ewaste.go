package entities

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FunctionalStatus is the overall working state of a submitted device, either
// self-reported or refined from image analysis.

type FunctionalStatus string

const (
	FunctionalStatusWorking          FunctionalStatus = "working"
	FunctionalStatusPartiallyWorking FunctionalStatus = "partially_working"
	FunctionalStatusDamaged          FunctionalStatus = "damaged"
	FunctionalStatusNotWorking       FunctionalStatus = "not_working"
)

// ComponentStatus is the condition of one subsystem (battery, screen,
// motherboard).

type ComponentStatus string

const (
	ComponentStatusGood ComponentStatus = "good"
	ComponentStatusFair ComponentStatus = "fair"
	ComponentStatusPoor ComponentStatus = "poor"
	ComponentStatusNA   ComponentStatus = "na"
)

// EstimateBasis identifies which pricing path produced an estimate.

type EstimateBasis string

const (
	EstimateBasisRuleBased    EstimateBasis = "rule-based"
	EstimateBasisLearnedModel EstimateBasis = "learned-model"
)

// EstimateInput carries the self-reported device facts consumed by the pricing
// paths. It is built per request and discarded after producing an estimate.
type EstimateInput struct {
	ItemType          string
	Brand             string
	Model             string
	AgeYears          decimal.Decimal
	FunctionalStatus  FunctionalStatus
	BatteryStatus     ComponentStatus
	ScreenCondition   ComponentStatus
	MotherboardStatus ComponentStatus
}

// PriceEstimate is the output of every pricing path.
//
// Monetary representation:
//   - Amount is INR, quantized to 2 decimal places, never negative.
type PriceEstimate struct {
	Amount             decimal.Decimal `json:"amount"`
	Basis              EstimateBasis   `json:"basis"`
	MaterialFloorValue decimal.Decimal `json:"material_floor_value"`
	MaterialFloorUsed  bool            `json:"material_floor_applied"`
}

// Detection is one defect/condition found by the image classifier.
type Detection struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Component  string  `json:"component,omitempty"`
}

// EWasteItem is a persisted submission with its analysis and estimate.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)

type EWasteItem struct {
	ID                string           `json:"id"`
	UserID            string           `json:"user_id"`
	ItemType          string           `json:"item_type"`
	Brand             string           `json:"brand"`
	Model             string           `json:"model"`
	AgeYears          decimal.Decimal  `json:"age_years"`
	FunctionalStatus  FunctionalStatus `json:"functional_status"`
	BatteryStatus     ComponentStatus  `json:"battery_status"`
	ScreenCondition   ComponentStatus  `json:"screen_condition"`
	MotherboardStatus ComponentStatus  `json:"motherboard_status"`
	ImageRef          string           `json:"image_ref"`
	AnalysisResults   json.RawMessage  `json:"analysis_results,omitempty"`
	PriceEstimation   decimal.Decimal  `json:"price_estimation"`
	EstimateBasis     EstimateBasis    `json:"estimate_basis"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// ParseFunctionalStatus normalizes a raw status; unknown values collapse to
// the empty status so the pricing tables apply their conservative defaults.
func ParseFunctionalStatus(raw string) FunctionalStatus {
	switch s := FunctionalStatus(strings.ToLower(strings.TrimSpace(raw))); s {
	case FunctionalStatusWorking, FunctionalStatusPartiallyWorking, FunctionalStatusDamaged, FunctionalStatusNotWorking:
		return s
	}
	return ""
}

// ParseComponentStatus normalizes a raw component condition. "average" and
// "bad" are accepted aliases seen in older submissions.
func ParseComponentStatus(raw string) ComponentStatus {
	switch s := strings.ToLower(strings.TrimSpace(raw)); s {
	case "good":
		return ComponentStatusGood
	case "fair", "average":
		return ComponentStatusFair
	case "poor", "bad":
		return ComponentStatusPoor
	case "na", "not_applicable":
		return ComponentStatusNA
	}
	return ""
}
