package admin

import (
	"context"
	"database/sql"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

func (r *postgresRepo) CountStats(ctx context.Context) (*Stats, error) {
	stats := &Stats{}
	err := r.db.QueryRowContext(ctx, `
		SELECT
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM products WHERE in_stock),
			(SELECT COUNT(*) FROM customers),
			(SELECT COUNT(*) FROM orders)`,
	).Scan(&stats.TotalProducts, &stats.InStockProducts, &stats.TotalCustomers, &stats.TotalOrders)
	if err != nil {
		return nil, err
	}
	return stats, nil
}
