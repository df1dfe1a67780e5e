package cart

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

// NewPostgresRepository creates the member-cart row store. The cart table
// carries a unique constraint on (customer_id, product_id).
func NewPostgresRepository(db *sql.DB) MemberRepository { return &postgresRepo{db: db} }

func (r *postgresRepo) Find(ctx context.Context, customerID, productID uuid.UUID) (*Line, error) {
	line := &Line{}
	err := r.db.QueryRowContext(ctx, `
		SELECT product_id, quantity
		FROM cart
		WHERE customer_id=$1 AND product_id=$2`,
		customerID, productID).Scan(&line.ProductID, &line.Quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return line, nil
}

func (r *postgresRepo) Insert(ctx context.Context, customerID uuid.UUID, line Line) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart (customer_id, product_id, quantity)
		VALUES ($1, $2, $3)`,
		customerID, line.ProductID, line.Quantity)
	return err
}

func (r *postgresRepo) SetQuantity(ctx context.Context, customerID, productID uuid.UUID, quantity int) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE cart SET quantity=$1
		WHERE customer_id=$2 AND product_id=$3`,
		quantity, customerID, productID)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, customerID, productID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM cart
		WHERE customer_id=$1 AND product_id=$2`,
		customerID, productID)
	return err
}

func (r *postgresRepo) List(ctx context.Context, customerID uuid.UUID) ([]Line, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT product_id, quantity
		FROM cart
		WHERE customer_id=$1
		ORDER BY added_at`,
		customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []Line
	for rows.Next() {
		var line Line
		if err := rows.Scan(&line.ProductID, &line.Quantity); err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, rows.Err()
}
