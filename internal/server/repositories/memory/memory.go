// Package memory provides process-local repositories backed by maps. They
// honour the same contracts as the PostgreSQL repositories, including email
// uniqueness under concurrent writers, and serve development runs and tests.
package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// Users is an in-memory users repository with a unique email index.
type Users struct {
	mu      sync.RWMutex
	byID    map[string]*models.User
	byEmail map[string]string
}

func NewUsers() *Users {
	return &Users{byID: make(map[string]*models.User), byEmail: make(map[string]string)}
}

func (r *Users) Create(_ context.Context, user *models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byEmail[user.Email]; taken {
		return fmt.Errorf("email %q: %w", user.Email, common.ErrConflict)
	}
	if _, taken := r.byID[user.ID]; taken {
		return fmt.Errorf("user id %q: %w", user.ID, common.ErrConflict)
	}

	stored := *user
	r.byID[user.ID] = &stored
	r.byEmail[user.Email] = user.ID
	return nil
}

func (r *Users) GetByEmail(_ context.Context, email string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *r.byID[id]
	return &u, nil
}

func (r *Users) GetByID(_ context.Context, userID string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored, ok := r.byID[userID]
	if !ok {
		return nil, common.ErrorNotFound
	}
	u := *stored
	return &u, nil
}

func (r *Users) Update(_ context.Context, email string, patch models.UserPatch) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byEmail[email]
	if !ok {
		return nil, common.ErrorNotFound
	}
	stored := r.byID[id]
	patch.Apply(stored)

	u := *stored
	return &u, nil
}

// Stores is an in-memory stores repository.
type Stores struct {
	mu   sync.RWMutex
	byID map[string]models.Store
}

func NewStores() *Stores {
	return &Stores{byID: make(map[string]models.Store)}
}

func (r *Stores) Create(_ context.Context, s *models.Store) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.byID[s.ID]; taken {
		return fmt.Errorf("store id %q: %w", s.ID, common.ErrConflict)
	}
	r.byID[s.ID] = *s
	return nil
}

// Len returns the number of stored stores.
func (r *Stores) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byID)
}

// Categories is an in-memory, append-only categories repository.
type Categories struct {
	mu   sync.RWMutex
	rows []models.ItemCategory
}

func NewCategories() *Categories {
	return &Categories{}
}

func (r *Categories) Create(_ context.Context, c *models.ItemCategory) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rows = append(r.rows, *c)
	return nil
}

func (r *Categories) ListByStore(_ context.Context, storeID string) ([]*models.ItemCategory, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []*models.ItemCategory
	for i := range r.rows {
		if r.rows[i].StoreID == storeID {
			c := r.rows[i]
			result = append(result, &c)
		}
	}
	return result, nil
}

// Len returns the number of stored categories across all stores.
func (r *Categories) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.rows)
}
