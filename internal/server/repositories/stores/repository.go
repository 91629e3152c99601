package stores

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// Repository persists stores. Store names are not unique.
type Repository interface {
	Create(ctx context.Context, store *models.Store) error
}
