package categories

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/storefront/internal/dbx"
	"github.com/dmitrijs2005/storefront/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.ItemCategory) error {

	query :=
		`INSERT INTO item_categories (category_id, store_id, owner_user_id, item_type, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 `

	_, err := r.db.ExecContext(ctx, query, c.ID, c.StoreID, c.OwnerUserID, c.ItemType, c.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) ListByStore(ctx context.Context, storeID string) ([]*models.ItemCategory, error) {

	query :=
		`SELECT category_id, store_id, owner_user_id, item_type, created_at
		 FROM item_categories
		 WHERE store_id = $1
		 ORDER BY id
		 `

	rows, err := r.db.QueryContext(ctx, query, storeID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.ItemCategory
	for rows.Next() {
		c := &models.ItemCategory{}
		if err := rows.Scan(&c.ID, &c.StoreID, &c.OwnerUserID, &c.ItemType, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return result, nil
}
