package services

import (
	"context"
	"database/sql"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

type CreateStoreRequest struct {
	OwnerUserID   string
	StoreName     string
	ItemType      string
	NumCategories int
	Location      string
}

type StoreService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	newID       common.IDGenerator
	now         func() time.Time
}

func NewStoreService(db *sql.DB, m repomanager.RepositoryManager, newID common.IDGenerator) *StoreService {
	if newID == nil {
		newID = common.NewID
	}
	return &StoreService{
		db:          db,
		repomanager: m,
		newID:       newID,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateStore provisions a store and returns its storeID. The owner is
// taken on trust and store names need not be unique.
func (s *StoreService) CreateStore(ctx context.Context, req CreateStoreRequest) (string, error) {
	if req.OwnerUserID == "" || req.StoreName == "" || req.ItemType == "" || req.Location == "" || req.NumCategories <= 0 {
		return "", common.Validationf("ownerUserID, storeName, itemType, numCategories and location are required")
	}

	store := &models.Store{
		ID:            s.newID(),
		OwnerUserID:   req.OwnerUserID,
		Name:          req.StoreName,
		ItemType:      req.ItemType,
		NumCategories: req.NumCategories,
		Location:      req.Location,
		CreatedAt:     s.now(),
	}

	if err := s.repomanager.Stores(s.db).Create(ctx, store); err != nil {
		return "", persistenceError("creating store", err)
	}

	return store.ID, nil
}
