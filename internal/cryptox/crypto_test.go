package cryptox

import (
	"errors"
	"strings"
	"testing"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_HashAndMatch(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("Abc12!")
	require.NoError(t, err)
	assert.NotEqual(t, "Abc12!", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$"))

	assert.True(t, h.Matches(hash, "Abc12!"))
	assert.False(t, h.Matches(hash, "abc12!"))
	assert.False(t, h.Matches(hash, ""))
}

func TestHasher_SaltedPerHash(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	a, err := h.Hash("same-password")
	require.NoError(t, err)
	b, err := h.Hash("same-password")
	require.NoError(t, err)

	assert.NotEqual(t, a, b, "each hash must carry its own salt")
	assert.True(t, h.Matches(a, "same-password"))
	assert.True(t, h.Matches(b, "same-password"))
}

func TestHasher_MalformedHashNeverMatches(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	assert.False(t, h.Matches("not-a-bcrypt-hash", "whatever"))
	assert.False(t, h.Matches("", ""))
}

func TestNewHasher_CostFallback(t *testing.T) {
	h := NewHasher(0)
	hash, err := h.Hash("x")
	require.NoError(t, err)

	cost, err := Cost(hash)
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}

func TestHasher_TooLongPassword(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)
	_, err := h.Hash(strings.Repeat("a", 73))
	require.Error(t, err)
}

func TestHasher_TooLongPasswordIsValidationError(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("a", MaxPasswordBytes+1))
	require.Error(t, err)
	assert.True(t, errors.Is(err, common.ErrValidation), "got %v", err)

	_, err = h.Hash(strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)
}
