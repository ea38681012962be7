package interfaces

import (
	"context"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
)

// IMaterialPriceRepository abstracts DynamoDB persistence for per-gram material
// prices. Rows are upserted by the external market feed or by an operator
// through the admin endpoint; the pricing paths only read snapshots.

type IMaterialPriceRepository interface {
	GetAll(ctx context.Context) ([]entities.MaterialPrice, error)
	Upsert(ctx context.Context, price entities.MaterialPrice) (entities.MaterialPrice, error)
}
