package entities

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestValidateComposition(t *testing.T) {
	t.Run("fractions within bounds", func(t *testing.T) {
		components := []DeviceModelComponent{
			{DeviceModelID: "m-1", Component: "body", Material: MaterialAluminum, Fraction: decimal.RequireFromString("60")},
			{DeviceModelID: "m-1", Component: "body", Material: MaterialPlastic, Fraction: decimal.RequireFromString("40")},
			{DeviceModelID: "m-1", Component: "board", Material: MaterialGold, Fraction: decimal.RequireFromString("1.5")},
		}
		if err := ValidateComposition(components); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("per-component overflow", func(t *testing.T) {
		components := []DeviceModelComponent{
			{DeviceModelID: "m-1", Component: "body", Material: MaterialAluminum, Fraction: decimal.RequireFromString("60")},
			{DeviceModelID: "m-1", Component: "Body", Material: MaterialPlastic, Fraction: decimal.RequireFromString("50")},
		}
		if err := ValidateComposition(components); !errors.Is(err, ErrCompositionOverflow) {
			t.Fatalf("expected ErrCompositionOverflow, got %v", err)
		}
	})

	t.Run("different components do not add up", func(t *testing.T) {
		components := []DeviceModelComponent{
			{DeviceModelID: "m-1", Component: "body", Material: MaterialAluminum, Fraction: decimal.RequireFromString("90")},
			{DeviceModelID: "m-1", Component: "board", Material: MaterialCopper, Fraction: decimal.RequireFromString("90")},
		}
		if err := ValidateComposition(components); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestParseMaterial(t *testing.T) {
	cases := []struct {
		raw  string
		want Material
		ok   bool
	}{
		{"gold", MaterialGold, true},
		{" Aluminum ", MaterialAluminum, true},
		{"PLASTIC", MaterialPlastic, true},
		{"vibranium", "", false},
		{"", "", false},
	}
	for _, tc := range cases {
		got, ok := ParseMaterial(tc.raw)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("ParseMaterial(%q) = (%q, %t), want (%q, %t)", tc.raw, got, ok, tc.want, tc.ok)
		}
	}
}

func TestComponentKey(t *testing.T) {
	if got := ComponentKey("m-1", " Body ", MaterialGold); got != "m-1#body#gold" {
		t.Fatalf("unexpected component key: %s", got)
	}
}
