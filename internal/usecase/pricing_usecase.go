package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase/interfaces"
	"github.com/shopspring/decimal"
)

var (
	ErrNegativeAge            = errors.New("age must be non-negative")
	ErrModelNotFound          = errors.New("device model not found")
	ErrPredictorNotConfigured = errors.New("price predictor not configured")
)

// Generic-path base prices in INR, keyed by the self-reported item type.
var genericBasePrices = map[string]decimal.Decimal{
	"mobile": decimal.RequireFromString("2000.00"),
	"laptop": decimal.RequireFromString("5000.00"),
	"tablet": decimal.RequireFromString("1500.00"),
	"tv":     decimal.RequireFromString("3000.00"),
	"other":  decimal.RequireFromString("1000.00"),
}

// Functional status multipliers for the generic path. Unknown statuses apply
// the conservative 0.3 default.
var functionalMultipliers = map[entities.FunctionalStatus]decimal.Decimal{
	entities.FunctionalStatusWorking:          decimal.RequireFromString("0.8"),
	entities.FunctionalStatusPartiallyWorking: decimal.RequireFromString("0.5"),
	entities.FunctionalStatusDamaged:          decimal.RequireFromString("0.3"),
	entities.FunctionalStatusNotWorking:       decimal.RequireFromString("0.1"),
}

var defaultFunctionalMultiplier = decimal.RequireFromString("0.3")

// Component status multipliers, averaged over battery/screen/motherboard.
var componentMultipliers = map[entities.ComponentStatus]decimal.Decimal{
	entities.ComponentStatusGood: decimal.RequireFromString("1.0"),
	entities.ComponentStatusPoor: decimal.RequireFromString("0.5"),
	entities.ComponentStatusNA:   decimal.RequireFromString("0.7"),
}

var defaultComponentMultiplier = decimal.RequireFromString("0.7")

// Catalog-path condition multipliers.
var conditionMultipliers = map[entities.FunctionalStatus]decimal.Decimal{
	entities.FunctionalStatusWorking:          decimal.RequireFromString("1.00"),
	entities.FunctionalStatusPartiallyWorking: decimal.RequireFromString("0.60"),
	entities.FunctionalStatusNotWorking:       decimal.RequireFromString("0.30"),
}

var defaultConditionMultiplier = decimal.RequireFromString("0.30")

var (
	one   = decimal.NewFromInt(1)
	three = decimal.NewFromInt(3)

	// Generic path: 10% straight-line depreciation per year, floored at 0.3.
	genericAgeRate  = decimal.RequireFromString("0.1")
	genericAgeFloor = decimal.RequireFromString("0.3")

	// Catalog path: 80% max depreciation spread over 5 years.
	catalogAgeRate = decimal.RequireFromString("0.16")
	catalogAgeCap  = decimal.RequireFromString("0.80")
)

// ModelPriceEstimate is the catalog-path result, carrying the inputs of the
// final max(rule price, material value) decision for transparency.
type ModelPriceEstimate struct {
	Model          entities.DeviceModel
	Estimate       entities.PriceEstimate
	MaterialValues map[entities.Material]decimal.Decimal
}

// IPricingUseCase exposes the two deterministic pricing paths plus the
// learned alternative:
//   - EstimatePrice: generic self-report formula (no catalog entry needed)
//   - CalculateModelPrice: catalog formula with the material value floor
//   - PredictPrice: learned-model path; soft-fails so callers can fall back

type IPricingUseCase interface {
	EstimatePrice(input entities.EstimateInput) (entities.PriceEstimate, error)
	CalculateModelPrice(ctx context.Context, modelID, condition string, ageYears decimal.Decimal) (ModelPriceEstimate, error)
	PredictPrice(input entities.EstimateInput) (entities.PriceEstimate, error)
}

type PricingUseCase struct {
	catalog   interfaces.IDeviceCatalogRepository
	materials IMaterialValueUseCase
	predictor interfaces.IPricePredictor
}

var _ IPricingUseCase = (*PricingUseCase)(nil)

// NewPricingUseCase wires the pricing paths. predictor may be nil when the
// learned path is disabled (missing artifacts); the rule paths stay usable.
func NewPricingUseCase(catalog interfaces.IDeviceCatalogRepository, materials IMaterialValueUseCase, predictor interfaces.IPricePredictor) *PricingUseCase {
	return &PricingUseCase{catalog: catalog, materials: materials, predictor: predictor}
}

// EstimatePrice computes base * functional * component * age, quantized to
// 2 decimal places. Purely deterministic, no I/O.
func (u *PricingUseCase) EstimatePrice(input entities.EstimateInput) (entities.PriceEstimate, error) {
	if input.AgeYears.IsNegative() {
		return entities.PriceEstimate{}, ErrNegativeAge
	}

	basePrice, ok := genericBasePrices[strings.ToLower(strings.TrimSpace(input.ItemType))]
	if !ok {
		basePrice = genericBasePrices["other"]
	}

	functional, ok := functionalMultipliers[input.FunctionalStatus]
	if !ok {
		functional = defaultFunctionalMultiplier
	}

	component := lookupComponentMultiplier(input.BatteryStatus).
		Add(lookupComponentMultiplier(input.ScreenCondition)).
		Add(lookupComponentMultiplier(input.MotherboardStatus)).
		Div(three)

	age := one.Sub(input.AgeYears.Mul(genericAgeRate))
	if age.LessThan(genericAgeFloor) {
		age = genericAgeFloor
	}

	amount := basePrice.Mul(functional).Mul(component).Mul(age).Round(2)
	return entities.PriceEstimate{Amount: amount, Basis: entities.EstimateBasisRuleBased}, nil
}

// CalculateModelPrice prices a concrete catalog entry and enforces the
// material value floor: final = max(rule price, material value total).
func (u *PricingUseCase) CalculateModelPrice(ctx context.Context, modelID, condition string, ageYears decimal.Decimal) (ModelPriceEstimate, error) {
	modelID = strings.TrimSpace(modelID)
	if modelID == "" {
		return ModelPriceEstimate{}, ErrInvalidDeviceModelID
	}
	if ageYears.IsNegative() {
		return ModelPriceEstimate{}, ErrNegativeAge
	}

	model, err := u.catalog.GetModelByID(ctx, modelID)
	if err != nil {
		return ModelPriceEstimate{}, err
	}
	if model.ID == "" {
		return ModelPriceEstimate{}, ErrModelNotFound
	}

	conditionMultiplier, ok := conditionMultipliers[entities.ParseFunctionalStatus(condition)]
	if !ok {
		conditionMultiplier = defaultConditionMultiplier
	}

	depreciation := ageYears.Mul(catalogAgeRate)
	if depreciation.GreaterThan(catalogAgeCap) {
		depreciation = catalogAgeCap
	}
	age := one.Sub(depreciation)

	rulePrice := model.BasePrice.Mul(conditionMultiplier).Mul(age).Round(2)

	materialValue, err := u.materials.EstimateMaterialValue(ctx, model.DeviceType)
	if err != nil {
		return ModelPriceEstimate{}, err
	}
	floor := materialValue.Total.Round(2)

	estimate := entities.PriceEstimate{
		Amount:             rulePrice,
		Basis:              entities.EstimateBasisRuleBased,
		MaterialFloorValue: floor,
	}
	if floor.GreaterThan(rulePrice) {
		estimate.Amount = floor
		estimate.MaterialFloorUsed = true
	}

	return ModelPriceEstimate{Model: model, Estimate: estimate, MaterialValues: materialValue.Values}, nil
}

// PredictPrice runs the learned path. Encoding/scaling failures surface as-is
// so the caller can fall back to EstimatePrice.
func (u *PricingUseCase) PredictPrice(input entities.EstimateInput) (entities.PriceEstimate, error) {
	if input.AgeYears.IsNegative() {
		return entities.PriceEstimate{}, ErrNegativeAge
	}
	if u.predictor == nil {
		return entities.PriceEstimate{}, ErrPredictorNotConfigured
	}

	amount, err := u.predictor.PredictPrice(input)
	if err != nil {
		log.Printf("[pricing][usecase] learned prediction failed item_type=%s err=%v", input.ItemType, err)
		return entities.PriceEstimate{}, err
	}
	return entities.PriceEstimate{Amount: amount, Basis: entities.EstimateBasisLearnedModel}, nil
}

func lookupComponentMultiplier(status entities.ComponentStatus) decimal.Decimal {
	if m, ok := componentMultipliers[status]; ok {
		return m
	}
	return defaultComponentMultiplier
}
