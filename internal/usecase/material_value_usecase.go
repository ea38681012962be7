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
	ErrInvalidDeviceModelID = errors.New("invalid device model id")
	ErrUnknownMaterial      = errors.New("unknown material")
	ErrInvalidMaterialPrice = errors.New("material price must be positive")
)

// defaultMaterialPrices are the built-in per-gram prices in INR, used when the
// market feed has no row for a material.
var defaultMaterialPrices = map[entities.Material]decimal.Decimal{
	entities.MaterialGold:     decimal.RequireFromString("5000"),
	entities.MaterialSilver:   decimal.RequireFromString("75"),
	entities.MaterialCopper:   decimal.RequireFromString("0.8"),
	entities.MaterialAluminum: decimal.RequireFromString("0.2"),
	entities.MaterialPlastic:  decimal.RequireFromString("0.05"),
}

// materialWeightProfiles holds approximate per-type material weights in grams.
// Device types without their own profile (desktop included) use the console
// profile, matching the "other electronics" policy.
var materialWeightProfiles = map[entities.DeviceType]map[entities.Material]decimal.Decimal{
	entities.DeviceTypePhone: {
		entities.MaterialGold:     decimal.RequireFromString("0.034"),
		entities.MaterialSilver:   decimal.RequireFromString("0.34"),
		entities.MaterialCopper:   decimal.RequireFromString("9"),
		entities.MaterialAluminum: decimal.RequireFromString("25"),
		entities.MaterialPlastic:  decimal.RequireFromString("80"),
	},
	entities.DeviceTypeLaptop: {
		entities.MaterialGold:     decimal.RequireFromString("0.2"),
		entities.MaterialSilver:   decimal.RequireFromString("0.7"),
		entities.MaterialCopper:   decimal.RequireFromString("65"),
		entities.MaterialAluminum: decimal.RequireFromString("250"),
		entities.MaterialPlastic:  decimal.RequireFromString("500"),
	},
	entities.DeviceTypeTablet: {
		entities.MaterialGold:     decimal.RequireFromString("0.1"),
		entities.MaterialSilver:   decimal.RequireFromString("0.5"),
		entities.MaterialCopper:   decimal.RequireFromString("30"),
		entities.MaterialAluminum: decimal.RequireFromString("150"),
		entities.MaterialPlastic:  decimal.RequireFromString("200"),
	},
	entities.DeviceTypeTV: {
		entities.MaterialGold:     decimal.RequireFromString("0.1"),
		entities.MaterialSilver:   decimal.RequireFromString("0.5"),
		entities.MaterialCopper:   decimal.RequireFromString("450"),
		entities.MaterialAluminum: decimal.RequireFromString("700"),
		entities.MaterialPlastic:  decimal.RequireFromString("3000"),
	},
	entities.DeviceTypeConsole: {
		entities.MaterialGold:     decimal.RequireFromString("0.15"),
		entities.MaterialSilver:   decimal.RequireFromString("0.6"),
		entities.MaterialCopper:   decimal.RequireFromString("100"),
		entities.MaterialAluminum: decimal.RequireFromString("300"),
		entities.MaterialPlastic:  decimal.RequireFromString("1000"),
	},
}

// MaterialValue is a per-material monetary breakdown plus its total.
type MaterialValue struct {
	Values map[entities.Material]decimal.Decimal
	Total  decimal.Decimal
}

// IMaterialValueUseCase estimates the scrap value of a device's raw materials.
// The total acts as the price floor for the catalog pricing path.
// UpdateMaterialPrice lets an operator override the market feed snapshot.

type IMaterialValueUseCase interface {
	EstimateMaterialValue(ctx context.Context, deviceType entities.DeviceType) (MaterialValue, error)
	EstimateModelMaterialValue(ctx context.Context, deviceModelID string) (MaterialValue, error)
	UpdateMaterialPrice(ctx context.Context, material string, pricePerGram decimal.Decimal) (entities.MaterialPrice, error)
}

type MaterialValueUseCase struct {
	prices  interfaces.IMaterialPriceRepository
	catalog interfaces.IDeviceCatalogRepository
}

var _ IMaterialValueUseCase = (*MaterialValueUseCase)(nil)

func NewMaterialValueUseCase(prices interfaces.IMaterialPriceRepository, catalog interfaces.IDeviceCatalogRepository) *MaterialValueUseCase {
	return &MaterialValueUseCase{prices: prices, catalog: catalog}
}

// EstimateMaterialValue multiplies the per-type weight profile by current
// per-gram prices. Unknown device types use the console profile.
func (u *MaterialValueUseCase) EstimateMaterialValue(ctx context.Context, deviceType entities.DeviceType) (MaterialValue, error) {
	weights, ok := materialWeightProfiles[deviceType]
	if !ok {
		weights = materialWeightProfiles[entities.DeviceTypeConsole]
	}

	prices, err := u.currentPrices(ctx)
	if err != nil {
		return MaterialValue{}, err
	}
	return valueOf(weights, prices), nil
}

// EstimateModelMaterialValue computes the value from persisted per-component
// composition rows when the model has any; otherwise it falls back to the
// model's device-type profile.
func (u *MaterialValueUseCase) EstimateModelMaterialValue(ctx context.Context, deviceModelID string) (MaterialValue, error) {
	deviceModelID = strings.TrimSpace(deviceModelID)
	if deviceModelID == "" {
		return MaterialValue{}, ErrInvalidDeviceModelID
	}
	if u.catalog == nil {
		return MaterialValue{}, ErrModelNotFound
	}

	model, err := u.catalog.GetModelByID(ctx, deviceModelID)
	if err != nil {
		return MaterialValue{}, err
	}
	if model.ID == "" {
		return MaterialValue{}, ErrModelNotFound
	}

	components, err := u.catalog.ListComponents(ctx, deviceModelID)
	if err != nil {
		return MaterialValue{}, err
	}
	if len(components) == 0 {
		return u.EstimateMaterialValue(ctx, model.DeviceType)
	}
	if err := entities.ValidateComposition(components); err != nil {
		return MaterialValue{}, err
	}

	hundred := decimal.NewFromInt(100)
	weights := make(map[entities.Material]decimal.Decimal, len(entities.Materials()))
	for _, c := range components {
		grams := c.WeightGrams.Mul(c.Fraction).Div(hundred)
		weights[c.Material] = weights[c.Material].Add(grams)
	}

	prices, err := u.currentPrices(ctx)
	if err != nil {
		return MaterialValue{}, err
	}
	return valueOf(weights, prices), nil
}

// UpdateMaterialPrice upserts one per-gram price row. Only tracked materials
// with a positive price are accepted; later reads pick the new value up
// through the usual feed merge.
func (u *MaterialValueUseCase) UpdateMaterialPrice(ctx context.Context, material string, pricePerGram decimal.Decimal) (entities.MaterialPrice, error) {
	m, ok := entities.ParseMaterial(material)
	if !ok {
		return entities.MaterialPrice{}, ErrUnknownMaterial
	}
	if !pricePerGram.IsPositive() {
		return entities.MaterialPrice{}, ErrInvalidMaterialPrice
	}

	updated, err := u.prices.Upsert(ctx, entities.MaterialPrice{Material: m, PricePerGram: pricePerGram})
	if err != nil {
		return entities.MaterialPrice{}, err
	}
	log.Printf("[material][usecase] price updated material=%s price_per_gram=%s", m, pricePerGram.String())
	return updated, nil
}

// currentPrices merges the market feed snapshot over the built-in defaults.
func (u *MaterialValueUseCase) currentPrices(ctx context.Context) (map[entities.Material]decimal.Decimal, error) {
	prices := make(map[entities.Material]decimal.Decimal, len(defaultMaterialPrices))
	for m, p := range defaultMaterialPrices {
		prices[m] = p
	}
	if u.prices == nil {
		return prices, nil
	}

	rows, err := u.prices.GetAll(ctx)
	if err != nil {
		log.Printf("[material][usecase] market feed unavailable, using defaults err=%v", err)
		return prices, nil
	}
	for _, row := range rows {
		if row.PricePerGram.IsPositive() {
			prices[row.Material] = row.PricePerGram
		}
	}
	return prices, nil
}

func valueOf(weights, prices map[entities.Material]decimal.Decimal) MaterialValue {
	out := MaterialValue{Values: make(map[entities.Material]decimal.Decimal, len(weights))}
	for material, grams := range weights {
		value := grams.Mul(prices[material])
		out.Values[material] = value
		out.Total = out.Total.Add(value)
	}
	return out
}
