package client

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/api"
)

type Client interface {
	Close() error
	Ping(ctx context.Context) error
	Register(ctx context.Context, req *api.RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	GetProfile(ctx context.Context, email string) (*api.Profile, error)
	UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (bool, error)
	CreateStore(ctx context.Context, req *api.CreateStoreRequest) (string, error)
	AddCategory(ctx context.Context, userID, storeID, itemType string) error
	ListCategories(ctx context.Context, storeID string) ([]api.Category, error)
}
