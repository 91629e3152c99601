// Package services contains the application services behind the storefront
// CLI. They call the server through client.Client and keep the pseudo-session
// (user, email and store identifiers) in the local SQLite cache.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/client/repositories/session"
	"github.com/dmitrijs2005/storefront/internal/dbx"
)

var (
	ErrNotLoggedIn = errors.New("please register or log in first")
	ErrNoStore     = errors.New("please create a store first")
)

// Session is the cached client identity. Empty fields were never saved or
// have been cleared.
type Session struct {
	UserID  string
	Email   string
	StoreID string
}

func loadSession(ctx context.Context, db *sql.DB) (Session, error) {
	all, err := session.NewSQLiteRepository(db).List(ctx)
	if err != nil {
		return Session{}, fmt.Errorf("session load error: %w", err)
	}
	return Session{
		UserID:  string(all[session.KeyUserID]),
		Email:   string(all[session.KeyEmail]),
		StoreID: string(all[session.KeyStoreID]),
	}, nil
}

// saveSession writes values in one transaction. With reset the previous
// session is dropped first.
func saveSession(ctx context.Context, db *sql.DB, reset bool, values map[string]string) error {
	return dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if reset {
			if err := repo.Clear(ctx); err != nil {
				return err
			}
		}
		for k, v := range values {
			if err := repo.Set(ctx, k, []byte(v)); err != nil {
				return err
			}
		}
		return nil
	})
}

func clearSession(ctx context.Context, db *sql.DB) error {
	return session.NewSQLiteRepository(db).Clear(ctx)
}
