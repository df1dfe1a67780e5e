package wishlist

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) Exists(ctx context.Context, customerID, productID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM wishlist WHERE customer_id=$1 AND product_id=$2
		)`,
		customerID, productID).Scan(&exists)
	return exists, err
}

func (r *postgresRepo) Insert(ctx context.Context, customerID, productID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO wishlist (customer_id, product_id)
		VALUES ($1, $2)`,
		customerID, productID)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, customerID, productID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM wishlist
		WHERE customer_id=$1 AND product_id=$2`,
		customerID, productID)
	return err
}

func (r *postgresRepo) ListProductIDs(ctx context.Context, customerID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id FROM wishlist
		WHERE customer_id=$1
		ORDER BY added_at`,
		customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}
