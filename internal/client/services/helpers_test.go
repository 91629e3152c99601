package services

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/api"
	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/stretchr/testify/require"
)

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := client.OpenSession(context.Background(), filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// fakeClient implements client.Client and records the last arguments.
type fakeClient struct {
	RegisterRet string
	LoginRet    string
	ProfileRet  *api.Profile
	RotatedRet  bool
	StoreRet    string
	ListRet     []api.Category

	Err     error
	PingErr error

	LastRegister *api.RegisterRequest
	LastEmail    string
	LastUpdate   *api.UpdateProfileRequest
	LastStore    *api.CreateStoreRequest
	LastCategory [3]string
	LastListID   string

	Calls  int
	Closed bool
}

var _ client.Client = (*fakeClient)(nil)

func (f *fakeClient) Close() error                   { f.Closed = true; return nil }
func (f *fakeClient) Ping(ctx context.Context) error { return f.PingErr }

func (f *fakeClient) Register(ctx context.Context, req *api.RegisterRequest) (string, error) {
	f.Calls++
	f.LastRegister = req
	return f.RegisterRet, f.Err
}

func (f *fakeClient) Login(ctx context.Context, email, password string) (string, error) {
	f.Calls++
	f.LastEmail = email
	return f.LoginRet, f.Err
}

func (f *fakeClient) GetProfile(ctx context.Context, email string) (*api.Profile, error) {
	f.Calls++
	f.LastEmail = email
	return f.ProfileRet, f.Err
}

func (f *fakeClient) UpdateProfile(ctx context.Context, req *api.UpdateProfileRequest) (bool, error) {
	f.Calls++
	f.LastUpdate = req
	return f.RotatedRet, f.Err
}

func (f *fakeClient) CreateStore(ctx context.Context, req *api.CreateStoreRequest) (string, error) {
	f.Calls++
	f.LastStore = req
	return f.StoreRet, f.Err
}

func (f *fakeClient) AddCategory(ctx context.Context, userID, storeID, itemType string) error {
	f.Calls++
	f.LastCategory = [3]string{userID, storeID, itemType}
	return f.Err
}

func (f *fakeClient) ListCategories(ctx context.Context, storeID string) ([]api.Category, error) {
	f.Calls++
	f.LastListID = storeID
	return f.ListRet, f.Err
}

func strPtr(s string) *string { return &s }
