package catalog

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type postgresRepo struct{ db *sql.DB }

func NewPostgresRepository(db *sql.DB) Repository { return &postgresRepo{db: db} }

const productColumns = `id, name, description, price, original_price, weight, image_url, category, badge, in_stock, featured, created_at, updated_at`

func (r *postgresRepo) Create(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO products
		  (id, name, description, price, original_price, weight, image_url, category, badge, in_stock, featured)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)`,
		p.ID, p.Name, p.Description, p.Price, p.OriginalPrice, p.Weight,
		p.ImageURL, p.Category, p.Badge, p.InStock, p.Featured)
	return err
}

func scanProduct(scan func(...interface{}) error) (*Product, error) {
	p := &Product{}
	var description, weight, category, badge sql.NullString
	err := scan(&p.ID, &p.Name, &description, &p.Price, &p.OriginalPrice, &weight,
		&p.ImageURL, &category, &badge, &p.InStock, &p.Featured,
		&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}
	p.Description = description.String
	p.Weight = weight.String
	p.Category = category.String
	p.Badge = badge.String
	return p, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id uuid.UUID) (*Product, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+productColumns+`
		FROM products WHERE id=$1`, id)
	return scanProduct(row.Scan)
}

func (r *postgresRepo) List(ctx context.Context, f Filter) ([]*Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE 1=1`
	args := []interface{}{}
	if f.Category != "" {
		args = append(args, f.Category)
		query += ` AND category=$1`
	}
	if f.InStockOnly {
		query += ` AND in_stock=true`
	}
	switch f.Order {
	case OrderFeaturedFirst:
		query += ` ORDER BY featured DESC, created_at DESC`
	default:
		query += ` ORDER BY created_at DESC`
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var products []*Product
	for rows.Next() {
		p, err := scanProduct(rows.Scan)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}
	return products, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, p *Product) error {
	_, err := r.db.ExecContext(ctx, `
		UPDATE products
		SET name=$1, description=$2, price=$3, original_price=$4, weight=$5,
		    image_url=$6, category=$7, badge=$8, in_stock=$9, featured=$10, updated_at=NOW()
		WHERE id=$11`,
		p.Name, p.Description, p.Price, p.OriginalPrice, p.Weight,
		p.ImageURL, p.Category, p.Badge, p.InStock, p.Featured, p.ID)
	return err
}

func (r *postgresRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id=$1`, id)
	return err
}
