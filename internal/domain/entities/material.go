package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Material names the recyclable materials tracked per device.

type Material string

const (
	MaterialGold     Material = "gold"
	MaterialSilver   Material = "silver"
	MaterialCopper   Material = "copper"
	MaterialAluminum Material = "aluminum"
	MaterialPlastic  Material = "plastic"
)

// Materials lists every tracked material in a stable order.
func Materials() []Material {
	return []Material{MaterialGold, MaterialSilver, MaterialCopper, MaterialAluminum, MaterialPlastic}
}

// ParseMaterial normalizes a raw material name. The material catalog is
// closed, so unlike device types an unrecognized name reports false.
func ParseMaterial(raw string) (Material, bool) {
	m := Material(strings.ToLower(strings.TrimSpace(raw)))
	for _, known := range Materials() {
		if m == known {
			return m, true
		}
	}
	return "", false
}

// MaterialPrice is the current per-gram market price of one material.
//
// Storage model (DynamoDB):
//   - PK: material_name (string)
//
// Prices are maintained by an external market feed; readers treat a row as a
// snapshot and never mutate it.

type MaterialPrice struct {
	Material     Material        `json:"material_name"`
	PricePerGram decimal.Decimal `json:"price_per_gram"`
	LastUpdated  time.Time       `json:"last_updated"`
}

var ErrCompositionOverflow = errors.New("component material fractions exceed 100%")

// DeviceModelComponent describes how much of one material a named component of
// a catalog model contains. WeightGrams is the component weight; Fraction is
// the share of that weight made of Material, in percent.
//
// Storage model (DynamoDB):
//   - PK: id ("<device_model_id>#<component>#<material>")

type DeviceModelComponent struct {
	ID            string          `json:"id"`
	DeviceModelID string          `json:"device_model_id"`
	Component     string          `json:"component_name"`
	Material      Material        `json:"material_name"`
	WeightGrams   decimal.Decimal `json:"weight_grams"`
	Fraction      decimal.Decimal `json:"fraction"`
}

func ComponentKey(deviceModelID, component string, m Material) string {
	return deviceModelID + "#" + strings.ToLower(strings.TrimSpace(component)) + "#" + string(m)
}

// ValidateComposition checks that, per component, the material fractions of a
// model sum to at most 100%.
func ValidateComposition(components []DeviceModelComponent) error {
	hundred := decimal.NewFromInt(100)
	totals := make(map[string]decimal.Decimal)
	for _, c := range components {
		key := c.DeviceModelID + "#" + strings.ToLower(c.Component)
		totals[key] = totals[key].Add(c.Fraction)
	}
	for _, sum := range totals {
		if sum.GreaterThan(hundred) {
			return ErrCompositionOverflow
		}
	}
	return nil
}
