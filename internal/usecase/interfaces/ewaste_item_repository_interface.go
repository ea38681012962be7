package interfaces

import (
	"context"

	"github.com/Shreevarshagopal/E-waste-price-estimator/internal/domain/entities"
)

// IEWasteItemRepository abstracts DynamoDB persistence for submitted items.

type IEWasteItemRepository interface {
	Create(ctx context.Context, item entities.EWasteItem) (entities.EWasteItem, error)
	GetByID(ctx context.Context, id string) (entities.EWasteItem, error)
}
