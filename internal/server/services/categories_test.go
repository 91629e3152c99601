package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCategories(rm *fakeRepoManager) *CategoryService {
	s := NewCategoryService(nil, rm, seqIDs("cat"))
	s.now = func() time.Time { return fixedNow }
	return s
}

func TestAddCategory_RequiresStore(t *testing.T) {
	rm := newFakeRepoManager()
	fc := &failingCategories{}
	rm.categories = fc

	err := newCategories(rm).AddCategory(context.Background(), "user-1", "", "Produce")
	assert.True(t, errors.Is(err, common.ErrStoreRequired))
	assert.True(t, errors.Is(err, common.ErrValidation))
	assert.Zero(t, fc.calls)

	_, err = newCategories(rm).ListCategories(context.Background(), "")
	assert.True(t, errors.Is(err, common.ErrStoreRequired))
	assert.Zero(t, fc.calls)
}

func TestAddCategory_RequiresItemType(t *testing.T) {
	rm := newFakeRepoManager()
	fc := &failingCategories{}
	rm.categories = fc

	err := newCategories(rm).AddCategory(context.Background(), "user-1", "store-1", "")
	assert.True(t, errors.Is(err, common.ErrValidation))
	assert.False(t, errors.Is(err, common.ErrStoreRequired))
	assert.Zero(t, fc.calls)
}

func TestAddCategory_NotIdempotent(t *testing.T) {
	rm := newFakeRepoManager()
	s := newCategories(rm)
	ctx := context.Background()

	require.NoError(t, s.AddCategory(ctx, "user-1", "store-1", "Produce"))
	require.NoError(t, s.AddCategory(ctx, "user-1", "store-1", "Produce"))

	list, err := s.ListCategories(ctx, "store-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.NotEqual(t, list[0].ID, list[1].ID)
	assert.Equal(t, "Produce", list[1].ItemType)
	assert.Equal(t, "user-1", list[0].OwnerUserID)
	assert.Equal(t, fixedNow, list[0].CreatedAt)
}

func TestAddCategory_UnknownStoreAccepted(t *testing.T) {
	rm := newFakeRepoManager()
	s := newCategories(rm)

	require.NoError(t, s.AddCategory(context.Background(), "", "never-created", "Dairy"))
}

func TestAddCategory_DependencyFailure(t *testing.T) {
	rm := newFakeRepoManager()
	rm.categories = &failingCategories{err: errBoom}
	s := newCategories(rm)

	err := s.AddCategory(context.Background(), "user-1", "store-1", "Produce")
	assert.True(t, errors.Is(err, common.ErrDependency))

	_, err = s.ListCategories(context.Background(), "store-1")
	assert.True(t, errors.Is(err, common.ErrDependency))
}
