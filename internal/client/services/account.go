package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/api"
	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/repositories/session"
)

// ProfileChanges lists the fields to change. Nil fields are left as they are.
type ProfileChanges struct {
	FirstName      *string
	LastName       *string
	ContactNumber  *string
	ProfilePicture *string
	Password       *string
}

// AccountService covers the account half of the CLI workflow.
//
// Register and Login replace the cached session with the returned user.
// Profile and UpdateProfile act on the cached email. A rotated password
// clears the session so the user has to log in again.
type AccountService interface {
	Register(ctx context.Context, req *api.RegisterRequest) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
	Profile(ctx context.Context) (*api.Profile, error)
	UpdateProfile(ctx context.Context, changes ProfileChanges) (bool, error)
	Logout(ctx context.Context) error
	Session(ctx context.Context) (Session, error)
	Ping(ctx context.Context) error
	Close(ctx context.Context) error
}

type accountService struct {
	client client.Client
	db     *sql.DB
}

func NewAccountService(client client.Client, db *sql.DB) AccountService {
	return &accountService{client: client, db: db}
}

func (a *accountService) Register(ctx context.Context, req *api.RegisterRequest) (string, error) {
	userID, err := a.client.Register(ctx, req)
	if err != nil {
		return "", err
	}

	if err := a.remember(ctx, userID, req.Email); err != nil {
		return "", err
	}
	return userID, nil
}

func (a *accountService) Login(ctx context.Context, email, password string) (string, error) {
	userID, err := a.client.Login(ctx, email, password)
	if err != nil {
		return "", fmt.Errorf("login error: %w", err)
	}

	if err := a.remember(ctx, userID, email); err != nil {
		return "", err
	}
	return userID, nil
}

func (a *accountService) remember(ctx context.Context, userID, email string) error {
	err := saveSession(ctx, a.db, true, map[string]string{
		session.KeyUserID: userID,
		session.KeyEmail:  email,
	})
	if err != nil {
		return fmt.Errorf("session saving error: %w", err)
	}
	return nil
}

func (a *accountService) currentEmail(ctx context.Context) (string, error) {
	s, err := loadSession(ctx, a.db)
	if err != nil {
		return "", err
	}
	if s.Email == "" {
		return "", ErrNotLoggedIn
	}
	return s.Email, nil
}

func (a *accountService) Profile(ctx context.Context) (*api.Profile, error) {
	email, err := a.currentEmail(ctx)
	if err != nil {
		return nil, err
	}
	return a.client.GetProfile(ctx, email)
}

func (a *accountService) UpdateProfile(ctx context.Context, changes ProfileChanges) (bool, error) {
	email, err := a.currentEmail(ctx)
	if err != nil {
		return false, err
	}

	rotated, err := a.client.UpdateProfile(ctx, &api.UpdateProfileRequest{
		Email:          email,
		FirstName:      changes.FirstName,
		LastName:       changes.LastName,
		ContactNumber:  changes.ContactNumber,
		ProfilePicture: changes.ProfilePicture,
		Password:       changes.Password,
	})
	if err != nil {
		return false, err
	}

	if rotated {
		if err := clearSession(ctx, a.db); err != nil {
			return true, fmt.Errorf("session clearing error: %w", err)
		}
	}
	return rotated, nil
}

func (a *accountService) Logout(ctx context.Context) error {
	return clearSession(ctx, a.db)
}

func (a *accountService) Session(ctx context.Context) (Session, error) {
	return loadSession(ctx, a.db)
}

func (a *accountService) Ping(ctx context.Context) error {
	return a.client.Ping(ctx)
}

func (a *accountService) Close(ctx context.Context) error {
	return a.client.Close()
}
