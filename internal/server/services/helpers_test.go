package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/dmitrijs2005/storefront/internal/cryptox"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/categories"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/memory"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/stores"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/users"
	"golang.org/x/crypto/bcrypt"
)

var errBoom = errors.New("boom")

var fixedNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testHasher() *cryptox.Hasher {
	return cryptox.NewHasher(bcrypt.MinCost)
}

// seqIDs returns a generator yielding prefix-1, prefix-2, ...
func seqIDs(prefix string) func() string {
	var n atomic.Int64
	return func() string {
		return fmt.Sprintf("%s-%d", prefix, n.Add(1))
	}
}

// countingUsers wraps a users repository, counting calls and optionally
// failing them.
type countingUsers struct {
	inner users.Repository

	mu                                  sync.Mutex
	creates, getByEmails, updates       int
	createErr, getByEmailErr, updateErr error
	lastPatch                           models.UserPatch
}

func (r *countingUsers) Create(ctx context.Context, u *models.User) error {
	r.mu.Lock()
	r.creates++
	err := r.createErr
	r.mu.Unlock()
	if err != nil {
		return err
	}
	return r.inner.Create(ctx, u)
}

func (r *countingUsers) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	r.mu.Lock()
	r.getByEmails++
	err := r.getByEmailErr
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.inner.GetByEmail(ctx, email)
}

func (r *countingUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.inner.GetByID(ctx, id)
}

func (r *countingUsers) Update(ctx context.Context, email string, p models.UserPatch) (*models.User, error) {
	r.mu.Lock()
	r.updates++
	r.lastPatch = p
	err := r.updateErr
	r.mu.Unlock()
	if err != nil {
		return nil, err
	}
	return r.inner.Update(ctx, email, p)
}

func (r *countingUsers) calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.creates + r.getByEmails + r.updates
}

type failingStores struct {
	calls int
	err   error
}

func (r *failingStores) Create(context.Context, *models.Store) error {
	r.calls++
	return r.err
}

type failingCategories struct {
	calls int
	err   error
}

func (r *failingCategories) Create(context.Context, *models.ItemCategory) error {
	r.calls++
	return r.err
}

func (r *failingCategories) ListByStore(context.Context, string) ([]*models.ItemCategory, error) {
	r.calls++
	return nil, r.err
}

// fakeRepoManager serves fixed repositories regardless of the DBTX.
type fakeRepoManager struct {
	users      users.Repository
	stores     stores.Repository
	categories categories.Repository
}

func newFakeRepoManager() *fakeRepoManager {
	return &fakeRepoManager{
		users:      &countingUsers{inner: memory.NewUsers()},
		stores:     memory.NewStores(),
		categories: memory.NewCategories(),
	}
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return m.users }
func (m *fakeRepoManager) Stores(dbx.DBTX) stores.Repository            { return m.stores }
func (m *fakeRepoManager) Categories(dbx.DBTX) categories.Repository    { return m.categories }

func newAccounts(rm *fakeRepoManager) *AccountService {
	s := NewAccountService(nil, rm, testHasher(), seqIDs("user"))
	s.now = func() time.Time { return fixedNow }
	return s
}

func strPtr(s string) *string { return &s }
