package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/categories"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/memory"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/stores"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/users"
)

// MemoryRepositoryManager hands out the same process-local repositories for
// every DBTX. The handle is ignored, so transactions are not isolated.
type MemoryRepositoryManager struct {
	users      *memory.Users
	stores     *memory.Stores
	categories *memory.Categories
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{
		users:      memory.NewUsers(),
		stores:     memory.NewStores(),
		categories: memory.NewCategories(),
	}
}

// RunMigrations is a no-op; there is no schema.
func (m *MemoryRepositoryManager) RunMigrations(context.Context, *sql.DB) error {
	return nil
}

func (m *MemoryRepositoryManager) Users(dbx.DBTX) users.Repository {
	return m.users
}

func (m *MemoryRepositoryManager) Stores(dbx.DBTX) stores.Repository {
	return m.stores
}

func (m *MemoryRepositoryManager) Categories(dbx.DBTX) categories.Repository {
	return m.categories
}
