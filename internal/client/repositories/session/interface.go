package session

import (
	"context"
)

// Keys stored in the session table.
const (
	KeyUserID  = "user_id"
	KeyEmail   = "email"
	KeyStoreID = "store_id"
)

type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
