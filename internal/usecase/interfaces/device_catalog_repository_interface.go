package interfaces

import (
	"context"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/shopspring/decimal"
)

// IDeviceCatalogRepository abstracts DynamoDB persistence for the device
// catalog (brands, models, composition, price history).
//
// The estimator must be able to:
//   - list brands/models for the catalog-driven pricing path
//   - resolve a model by id (zero value when missing)
//   - create reference rows idempotently (conditional put on the natural key,
//     never check-then-act)
//   - record a price history row when a base price changes

type IDeviceCatalogRepository interface {
	ListBrands(ctx context.Context, deviceType entities.DeviceType) ([]entities.DeviceBrand, error)
	EnsureBrand(ctx context.Context, brand entities.DeviceBrand) (entities.DeviceBrand, error)

	ListModels(ctx context.Context, deviceType entities.DeviceType, brandName string) ([]entities.DeviceModel, error)
	GetModelByID(ctx context.Context, id string) (entities.DeviceModel, error)
	EnsureModel(ctx context.Context, model entities.DeviceModel) (entities.DeviceModel, error)
	UpdateBasePrice(ctx context.Context, id string, newPrice decimal.Decimal) (entities.DeviceModel, error)

	ListComponents(ctx context.Context, deviceModelID string) ([]entities.DeviceModelComponent, error)
	ListPriceHistory(ctx context.Context, deviceModelID string) ([]entities.PriceHistory, error)
}
