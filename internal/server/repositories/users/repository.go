package users

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/server/models"
)

// Repository persists users. Email lookups are exact and case-sensitive.
//
// Create fails with common.ErrConflict when the email is already taken;
// lookups and Update fail with common.ErrorNotFound for an unknown user.
type Repository interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, userID string) (*models.User, error)
	Update(ctx context.Context, email string, patch models.UserPatch) (*models.User, error)
}
