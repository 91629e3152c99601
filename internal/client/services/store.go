package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/api"
	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/session"
)

// NewStore describes the store to provision for the cached user.
type NewStore struct {
	StoreName     string
	ItemType      string
	NumCategories int
	Location      string
}

// StoreService covers the provisioning half of the workflow: a store is
// created for the cached user and its identifier is cached, then categories
// are added to that store.
type StoreService interface {
	CreateStore(ctx context.Context, store NewStore) (string, error)
	AddCategory(ctx context.Context, itemType string) error
	Categories(ctx context.Context) ([]api.Category, error)
}

type storeService struct {
	client client.Client
	db     *sql.DB
}

func NewStoreService(client client.Client, db *sql.DB) StoreService {
	return &storeService{client: client, db: db}
}

func (s *storeService) CreateStore(ctx context.Context, store NewStore) (string, error) {
	sess, err := loadSession(ctx, s.db)
	if err != nil {
		return "", err
	}
	if sess.UserID == "" {
		return "", ErrNotLoggedIn
	}

	storeID, err := s.client.CreateStore(ctx, &api.CreateStoreRequest{
		OwnerUserID:   sess.UserID,
		StoreName:     store.StoreName,
		ItemType:      store.ItemType,
		NumCategories: store.NumCategories,
		Location:      store.Location,
	})
	if err != nil {
		return "", err
	}

	if err := saveSession(ctx, s.db, false, map[string]string{session.KeyStoreID: storeID}); err != nil {
		return "", fmt.Errorf("session saving error: %w", err)
	}
	return storeID, nil
}

// AddCategory refuses to call the server until a store has been cached.
func (s *storeService) AddCategory(ctx context.Context, itemType string) error {
	sess, err := loadSession(ctx, s.db)
	if err != nil {
		return err
	}
	if sess.StoreID == "" {
		return ErrNoStore
	}

	return s.client.AddCategory(ctx, sess.UserID, sess.StoreID, itemType)
}

func (s *storeService) Categories(ctx context.Context) ([]api.Category, error) {
	sess, err := loadSession(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if sess.StoreID == "" {
		return nil, ErrNoStore
	}

	return s.client.ListCategories(ctx, sess.StoreID)
}
