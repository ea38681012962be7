package usecase

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/usecase/interfaces"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidDeviceType = errors.New("device type is required")
	ErrInvalidBrandName  = errors.New("brand name is required")
	ErrInvalidBasePrice  = errors.New("base price must be positive")
)

// ICatalogUseCase serves brand/model lookups for the catalog-driven pricing
// path. Empty result sets are seeded with the reference catalog on first
// access; seeding is idempotent (conditional puts on natural keys), so
// concurrent first readers cannot create duplicates.
//
// UpdateBasePrice is the administrative market-adjustment entry point; every
// accepted change lands in the price history.

type ICatalogUseCase interface {
	GetBrands(ctx context.Context, deviceType string) ([]entities.DeviceBrand, error)
	GetModels(ctx context.Context, deviceType, brandName string) ([]entities.DeviceModel, error)
	GetModelByID(ctx context.Context, id string) (entities.DeviceModel, error)
	UpdateBasePrice(ctx context.Context, id string, newPrice decimal.Decimal) (entities.DeviceModel, error)
	GetPriceHistory(ctx context.Context, id string) ([]entities.PriceHistory, error)
}

type CatalogUseCase struct {
	repo interfaces.IDeviceCatalogRepository
}

var _ ICatalogUseCase = (*CatalogUseCase)(nil)

func NewCatalogUseCase(repo interfaces.IDeviceCatalogRepository) *CatalogUseCase {
	return &CatalogUseCase{repo: repo}
}

func (u *CatalogUseCase) GetBrands(ctx context.Context, deviceType string) ([]entities.DeviceBrand, error) {
	if strings.TrimSpace(deviceType) == "" {
		return nil, ErrInvalidDeviceType
	}
	dt := entities.ParseDeviceType(deviceType)

	brands, err := u.repo.ListBrands(ctx, dt)
	if err != nil {
		return nil, err
	}
	if len(brands) > 0 {
		return brands, nil
	}

	seeded := seedBrands[dt]
	if len(seeded) == 0 {
		return brands, nil
	}
	log.Printf("[catalog][usecase] seeding brands device_type=%s count=%d", dt, len(seeded))
	for _, name := range seeded {
		brand := entities.DeviceBrand{ID: entities.BrandKey(name, dt), Name: name, DeviceType: dt}
		if _, err := u.repo.EnsureBrand(ctx, brand); err != nil {
			return nil, err
		}
	}
	return u.repo.ListBrands(ctx, dt)
}

func (u *CatalogUseCase) GetModels(ctx context.Context, deviceType, brandName string) ([]entities.DeviceModel, error) {
	if strings.TrimSpace(deviceType) == "" {
		return nil, ErrInvalidDeviceType
	}
	brandName = strings.TrimSpace(brandName)
	if brandName == "" {
		return nil, ErrInvalidBrandName
	}
	dt := entities.ParseDeviceType(deviceType)

	models, err := u.repo.ListModels(ctx, dt, brandName)
	if err != nil {
		return nil, err
	}
	if len(models) > 0 {
		return models, nil
	}

	specs := seedModelSpecs(dt, brandName)
	if len(specs) == 0 {
		return models, nil
	}
	log.Printf("[catalog][usecase] seeding models device_type=%s brand=%s count=%d", dt, brandName, len(specs))

	brand, err := u.repo.EnsureBrand(ctx, entities.DeviceBrand{
		ID:         entities.BrandKey(brandName, dt),
		Name:       brandName,
		DeviceType: dt,
	})
	if err != nil {
		return nil, err
	}
	for _, spec := range specs {
		model := entities.DeviceModel{
			ID:          uuid.NewString(),
			BrandID:     brand.ID,
			BrandName:   brand.Name,
			Name:        spec.name,
			DeviceType:  dt,
			BasePrice:   spec.basePrice,
			ReleaseYear: spec.releaseYear,
		}
		if _, err := u.repo.EnsureModel(ctx, model); err != nil {
			return nil, err
		}
	}
	return u.repo.ListModels(ctx, dt, brandName)
}

func (u *CatalogUseCase) GetModelByID(ctx context.Context, id string) (entities.DeviceModel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DeviceModel{}, ErrInvalidDeviceModelID
	}

	model, err := u.repo.GetModelByID(ctx, id)
	if err != nil {
		return entities.DeviceModel{}, err
	}
	if model.ID == "" {
		return entities.DeviceModel{}, ErrModelNotFound
	}
	return model, nil
}

// UpdateBasePrice applies an administrative base price change. The repository
// records the matching price history row as part of the update.
func (u *CatalogUseCase) UpdateBasePrice(ctx context.Context, id string, newPrice decimal.Decimal) (entities.DeviceModel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.DeviceModel{}, ErrInvalidDeviceModelID
	}
	if !newPrice.IsPositive() {
		return entities.DeviceModel{}, ErrInvalidBasePrice
	}

	model, err := u.repo.UpdateBasePrice(ctx, id, newPrice)
	if err != nil {
		return entities.DeviceModel{}, err
	}
	if model.ID == "" {
		return entities.DeviceModel{}, ErrModelNotFound
	}
	log.Printf("[catalog][usecase] base price updated model_id=%s price=%s", model.ID, newPrice.StringFixed(2))
	return model, nil
}

// GetPriceHistory lists the recorded base price changes of one catalog entry.
// The model is resolved first so unknown ids stay a not-found error.
func (u *CatalogUseCase) GetPriceHistory(ctx context.Context, id string) ([]entities.PriceHistory, error) {
	model, err := u.GetModelByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.repo.ListPriceHistory(ctx, model.ID)
}
