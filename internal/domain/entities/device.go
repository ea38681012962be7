package entities

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DeviceType is the closed catalog of device categories.
//
// Domain notes:
//   - Every categorical lookup keyed by DeviceType must be a total function:
//     ParseDeviceType never fails, it falls back to DeviceTypeOther.

type DeviceType string

const (
	DeviceTypePhone      DeviceType = "phone"
	DeviceTypeLaptop     DeviceType = "laptop"
	DeviceTypeTablet     DeviceType = "tablet"
	DeviceTypeDesktop    DeviceType = "desktop"
	DeviceTypeTV         DeviceType = "tv"
	DeviceTypeConsole    DeviceType = "console"
	DeviceTypePrinter    DeviceType = "printer"
	DeviceTypeMonitor    DeviceType = "monitor"
	DeviceTypeCamera     DeviceType = "camera"
	DeviceTypeRouter     DeviceType = "router"
	DeviceTypeSpeaker    DeviceType = "speaker"
	DeviceTypeSmartwatch DeviceType = "smartwatch"
	DeviceTypeEarbuds    DeviceType = "earbuds"
	DeviceTypeKeyboard   DeviceType = "keyboard"
	DeviceTypeMouse      DeviceType = "mouse"
	DeviceTypeServer     DeviceType = "server"
	DeviceTypeUPS        DeviceType = "ups"
	DeviceTypeProjector  DeviceType = "projector"
	DeviceTypeScanner    DeviceType = "scanner"
	DeviceTypeOther      DeviceType = "other"
)

var deviceTypes = map[DeviceType]struct{}{
	DeviceTypePhone: {}, DeviceTypeLaptop: {}, DeviceTypeTablet: {},
	DeviceTypeDesktop: {}, DeviceTypeTV: {}, DeviceTypeConsole: {},
	DeviceTypePrinter: {}, DeviceTypeMonitor: {}, DeviceTypeCamera: {},
	DeviceTypeRouter: {}, DeviceTypeSpeaker: {}, DeviceTypeSmartwatch: {},
	DeviceTypeEarbuds: {}, DeviceTypeKeyboard: {}, DeviceTypeMouse: {},
	DeviceTypeServer: {}, DeviceTypeUPS: {}, DeviceTypeProjector: {},
	DeviceTypeScanner: {}, DeviceTypeOther: {},
}

// ParseDeviceType normalizes a raw type string. Unrecognized values map to
// DeviceTypeOther instead of failing.
func ParseDeviceType(raw string) DeviceType {
	dt := DeviceType(strings.ToLower(strings.TrimSpace(raw)))
	if _, ok := deviceTypes[dt]; ok {
		return dt
	}
	return DeviceTypeOther
}

// DeviceBrand is a brand within one device category.
//
// Storage model (DynamoDB):
//   - PK: id (string, "<device_type>#<lowercase name>")
//
// The composite PK makes brand creation idempotent under concurrent writers:
// a conditional put on id enforces uniqueness per (name, device_type).

type DeviceBrand struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	DeviceType DeviceType `json:"device_type"`
}

// BrandKey builds the natural key used as the DynamoDB PK for a brand.
func BrandKey(name string, dt DeviceType) string {
	return string(dt) + "#" + strings.ToLower(strings.TrimSpace(name))
}

// DeviceModel is a catalog entry: a concrete brand+model with its own base
// price, distinct from the generic per-type base price.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - model_key attribute ("<brand_id>#<lowercase name>") carries the natural
//     key; the repository puts a key marker item conditionally so duplicate
//     (brand, name) rows cannot be created concurrently.

type DeviceModel struct {
	ID          string          `json:"id"`
	BrandID     string          `json:"brand_id"`
	BrandName   string          `json:"brand_name"`
	Name        string          `json:"name"`
	DeviceType  DeviceType      `json:"device_type"`
	BasePrice   decimal.Decimal `json:"base_price"`
	ReleaseYear int             `json:"release_year"`
}

// ModelKey builds the natural key for a catalog model.
func ModelKey(brandID, name string) string {
	return brandID + "#" + strings.ToLower(strings.TrimSpace(name))
}

// PriceHistory records a base price change for a catalog model.
//
// Storage model (DynamoDB):
//   - PK: id (uuid)
//   - device_model_id attribute for per-model listing.

type PriceHistory struct {
	ID              string          `json:"id"`
	DeviceModelID   string          `json:"device_model_id"`
	BasePrice       decimal.Decimal `json:"base_price"`
	MarketCondition string          `json:"market_condition"`
	Notes           string          `json:"notes"`
	RecordedAt      time.Time       `json:"recorded_at"`
}
