package categories

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// Repository persists item categories. Every Create adds a new record, even
// when an identical (store, label) pair already exists.
type Repository interface {
	Create(ctx context.Context, category *models.ItemCategory) error
	ListByStore(ctx context.Context, storeID string) ([]*models.ItemCategory, error)
}
