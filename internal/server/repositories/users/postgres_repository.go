package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/common"
	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

const userColumns = `user_id, email, password_hash, first_name, last_name, contact_number, profile_picture, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, user *models.User) error {

	query :=
		`INSERT INTO users (user_id, email, password_hash, first_name, last_name, contact_number, profile_picture, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 `

	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.FirstName, user.LastName,
		user.ContactNumber, user.ProfilePicture, user.CreatedAt)

	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return fmt.Errorf("email %q: %w", user.Email, common.ErrConflict)
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, email))
}

func (r *PostgresRepository) GetByID(ctx context.Context, userID string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE user_id = $1`
	return r.scanOne(r.db.QueryRowContext(ctx, query, userID))
}

// Update applies every non-nil field of patch in a single statement, so
// either all supplied fields change or none do.
func (r *PostgresRepository) Update(ctx context.Context, email string, patch models.UserPatch) (*models.User, error) {

	query :=
		`UPDATE users SET
		   first_name      = COALESCE($2, first_name),
		   last_name       = COALESCE($3, last_name),
		   contact_number  = COALESCE($4, contact_number),
		   profile_picture = COALESCE($5, profile_picture),
		   password_hash   = COALESCE($6, password_hash)
		 WHERE email = $1
		 RETURNING ` + userColumns

	row := r.db.QueryRowContext(ctx, query, email,
		patch.FirstName, patch.LastName, patch.ContactNumber, patch.ProfilePicture, patch.PasswordHash)

	return r.scanOne(row)
}

func (r *PostgresRepository) scanOne(row *sql.Row) (*models.User, error) {
	user := &models.User{}
	err := row.Scan(&user.ID, &user.Email, &user.PasswordHash, &user.FirstName, &user.LastName,
		&user.ContactNumber, &user.ProfilePicture, &user.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return user, nil
}
