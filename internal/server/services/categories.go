package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

type CategoryService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	newID       common.IDGenerator
	now         func() time.Time
}

func NewCategoryService(db *sql.DB, m repomanager.RepositoryManager, newID common.IDGenerator) *CategoryService {
	if newID == nil {
		newID = common.NewID
	}
	return &CategoryService{
		db:          db,
		repomanager: m,
		newID:       newID,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// AddCategory appends one category to storeID. Repeating a call adds another
// record. Neither the store nor the user is looked up; userID is kept for
// audit only.
func (s *CategoryService) AddCategory(ctx context.Context, userID, storeID, itemType string) error {
	if storeID == "" {
		return common.ErrStoreRequired
	}
	if itemType == "" {
		return common.Validationf("itemType is required")
	}

	category := &models.ItemCategory{
		ID:          s.newID(),
		StoreID:     storeID,
		OwnerUserID: userID,
		ItemType:    itemType,
		CreatedAt:   s.now(),
	}

	if err := s.repomanager.Categories(s.db).Create(ctx, category); err != nil {
		return persistenceError("creating category", err)
	}
	return nil
}

// ListCategories returns the categories of storeID in insertion order.
func (s *CategoryService) ListCategories(ctx context.Context, storeID string) ([]*models.ItemCategory, error) {
	if storeID == "" {
		return nil, common.ErrStoreRequired
	}
	list, err := s.repomanager.Categories(s.db).ListByStore(ctx, storeID)
	if err != nil {
		return nil, persistenceError("listing categories", err)
	}
	return list, nil
}
