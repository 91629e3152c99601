package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/memory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validStore() CreateStoreRequest {
	return CreateStoreRequest{
		OwnerUserID:   "user-1",
		StoreName:     "Jo's Shop",
		ItemType:      "grocery",
		NumCategories: 3,
		Location:      "Town",
	}
}

func newStores(rm *fakeRepoManager) *StoreService {
	s := NewStoreService(nil, rm, seqIDs("store"))
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestCreateStore_Success(t *testing.T) {
	rm := newFakeRepoManager()
	s := newStores(rm)

	id, err := s.CreateStore(context.Background(), validStore())
	require.NoError(t, err)
	assert.Equal(t, "store-1", id)
	assert.Equal(t, 1, rm.stores.(*memory.Stores).Len())
}

func TestCreateStore_SameNameAllowed(t *testing.T) {
	rm := newFakeRepoManager()
	s := newStores(rm)
	ctx := context.Background()

	a, err := s.CreateStore(ctx, validStore())
	require.NoError(t, err)
	b, err := s.CreateStore(ctx, validStore())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, rm.stores.(*memory.Stores).Len())
}

func TestCreateStore_UnknownOwnerAccepted(t *testing.T) {
	rm := newFakeRepoManager()
	req := validStore()
	req.OwnerUserID = "nobody-registered-this"

	_, err := newStores(rm).CreateStore(context.Background(), req)
	require.NoError(t, err)
}

func TestCreateStore_Validation(t *testing.T) {
	cases := map[string]func(*CreateStoreRequest){
		"owner":          func(r *CreateStoreRequest) { r.OwnerUserID = "" },
		"name":           func(r *CreateStoreRequest) { r.StoreName = "" },
		"item type":      func(r *CreateStoreRequest) { r.ItemType = "" },
		"location":       func(r *CreateStoreRequest) { r.Location = "" },
		"zero count":     func(r *CreateStoreRequest) { r.NumCategories = 0 },
		"negative count": func(r *CreateStoreRequest) { r.NumCategories = -2 },
	}

	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			rm := newFakeRepoManager()
			fs := &failingStores{}
			rm.stores = fs

			req := validStore()
			mutate(&req)
			_, err := newStores(rm).CreateStore(context.Background(), req)
			assert.True(t, errors.Is(err, common.ErrValidation), "got %v", err)
			assert.Zero(t, fs.calls)
		})
	}
}

func TestCreateStore_DependencyFailure(t *testing.T) {
	rm := newFakeRepoManager()
	rm.stores = &failingStores{err: errBoom}

	_, err := newStores(rm).CreateStore(context.Background(), validStore())
	assert.True(t, errors.Is(err, common.ErrDependency))
	assert.True(t, errors.Is(err, errBoom))
}
