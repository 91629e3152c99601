// Package services contains the server-side business logic: account
// registration and profile maintenance, store provisioning and category
// management. Services hold no mutable state and do not log; transports do.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/cryptox"
	"github.com/dmitrijs2005/storefront/internal/server/credentials"
	"github.com/dmitrijs2005/storefront/internal/server/models"
	"github.com/dmitrijs2005/storefront/internal/server/repositories/repomanager"
)

const profilePicturePrefix = "data:image"

// RegisterRequest carries the fields of a new account. The password is
// stored as supplied; the strength policy applies only to rotation.
type RegisterRequest struct {
	FirstName      string
	LastName       string
	Email          string
	Password       string
	ContactNumber  string
	ProfilePicture *string
}

// ProfileUpdate lists the fields a caller wants to change. A nil field is
// not supplied; an empty Password is treated the same as a nil one.
type ProfileUpdate struct {
	FirstName      *string
	LastName       *string
	ContactNumber  *string
	ProfilePicture *string
	Password       *string
}

type AccountService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	hasher      *cryptox.Hasher
	newID       common.IDGenerator
	now         func() time.Time
}

func NewAccountService(db *sql.DB, m repomanager.RepositoryManager, hasher *cryptox.Hasher, newID common.IDGenerator) *AccountService {
	if newID == nil {
		newID = common.NewID
	}
	return &AccountService{
		db:          db,
		repomanager: m,
		hasher:      hasher,
		newID:       newID,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Register creates an account and returns its userID. An email that is
// already registered yields common.ErrConflict and nothing is written.
func (s *AccountService) Register(ctx context.Context, req RegisterRequest) (string, error) {
	if req.Email == "" || req.Password == "" {
		return "", common.Validationf("email and password are required")
	}
	if len(req.Password) > cryptox.MaxPasswordBytes {
		return "", common.Validationf("password must be at most %d bytes", cryptox.MaxPasswordBytes)
	}
	if req.ProfilePicture != nil && *req.ProfilePicture != "" && !strings.HasPrefix(*req.ProfilePicture, profilePicturePrefix) {
		return "", common.Validationf("profile picture must be a %s data URI", profilePicturePrefix)
	}

	repo := s.repomanager.Users(s.db)

	_, err := repo.GetByEmail(ctx, req.Email)
	switch {
	case err == nil:
		return "", fmt.Errorf("email %q: %w", req.Email, common.ErrConflict)
	case !errors.Is(err, common.ErrorNotFound):
		return "", persistenceError("looking up email", err)
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return "", err
	}

	user := &models.User{
		ID:            s.newID(),
		Email:         req.Email,
		PasswordHash:  hash,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		CreatedAt:     s.now(),
	}
	if req.ProfilePicture != nil {
		user.ProfilePicture = *req.ProfilePicture
	}

	// a concurrent registration of the same email loses here
	if err := repo.Create(ctx, user); err != nil {
		return "", persistenceError("creating user", err)
	}

	return user.ID, nil
}

// GetProfile returns the public view of the user with exactly this email.
func (s *AccountService) GetProfile(ctx context.Context, email string) (*models.UserView, error) {
	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		return nil, persistenceError("loading profile", err)
	}
	view := user.View()
	return &view, nil
}

// UpdateProfile applies the supplied fields to the user identified by email
// in a single write. It reports whether the password was rotated.
func (s *AccountService) UpdateProfile(ctx context.Context, email string, upd ProfileUpdate) (bool, error) {
	repo := s.repomanager.Users(s.db)

	patch := models.UserPatch{
		FirstName:      upd.FirstName,
		LastName:       upd.LastName,
		ContactNumber:  upd.ContactNumber,
		ProfilePicture: upd.ProfilePicture,
	}

	rotate := upd.Password != nil && *upd.Password != ""
	if rotate {
		if err := credentials.CheckStrength(*upd.Password); err != nil {
			return false, err
		}

		user, err := repo.GetByEmail(ctx, email)
		if err != nil {
			return false, persistenceError("loading user", err)
		}
		if err := credentials.CheckRotation(s.hasher, *upd.Password, user.PasswordHash); err != nil {
			return false, err
		}

		hash, err := s.hasher.Hash(*upd.Password)
		if err != nil {
			return false, err
		}
		patch.PasswordHash = &hash
	}

	if patch.Empty() {
		// nothing to write, but the caller still learns whether the user exists
		if _, err := repo.GetByEmail(ctx, email); err != nil {
			return false, persistenceError("loading user", err)
		}
		return false, nil
	}

	if _, err := repo.Update(ctx, email, patch); err != nil {
		return false, persistenceError("updating user", err)
	}

	return rotate, nil
}

// Login verifies email and password and returns the userID. Any mismatch
// yields common.ErrorUnauthorized without revealing which part was wrong.
func (s *AccountService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", common.ErrorUnauthorized
	}

	user, err := s.repomanager.Users(s.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return "", common.ErrorUnauthorized
		}
		return "", persistenceError("loading user", err)
	}

	if !s.hasher.Matches(user.PasswordHash, password) {
		return "", common.ErrorUnauthorized
	}

	return user.ID, nil
}
