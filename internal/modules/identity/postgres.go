package identity

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
)

type accountPostgresRepo struct {
	db *sql.DB
}

// NewAccountPostgresRepository creates a new PostgreSQL account repository.
func NewAccountPostgresRepository(db *sql.DB) AccountRepository {
	return &accountPostgresRepo{db: db}
}

func (r *accountPostgresRepo) CreateAccount(ctx context.Context, a *Account) error {
	query := `
		INSERT INTO accounts (id, email, password_hash)
		VALUES ($1, $2, $3)
	`
	_, err := r.db.ExecContext(ctx, query, a.ID, a.Email, a.PasswordHash)
	return err
}

func (r *accountPostgresRepo) GetAccountByEmail(ctx context.Context, email string) (*Account, error) {
	a := &Account{}
	query := `
		SELECT id, email, password_hash, created_at
		FROM accounts
		WHERE email = $1
	`
	err := r.db.QueryRowContext(ctx, query, email).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

func (r *accountPostgresRepo) GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	a := &Account{}
	query := `
		SELECT id, email, password_hash, created_at
		FROM accounts
		WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&a.ID, &a.Email, &a.PasswordHash, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return a, nil
}

type customerPostgresRepo struct {
	db *sql.DB
}

// NewCustomerPostgresRepository creates a new PostgreSQL customer repository.
func NewCustomerPostgresRepository(db *sql.DB) CustomerRepository {
	return &customerPostgresRepo{db: db}
}

func (r *customerPostgresRepo) CreateCustomer(ctx context.Context, c *Customer) error {
	query := `
		INSERT INTO customers (id, email, full_name, is_admin)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.db.ExecContext(ctx, query, c.ID, c.Email, c.FullName, c.IsAdmin)
	return err
}

func (r *customerPostgresRepo) GetCustomerByID(ctx context.Context, id uuid.UUID) (*Customer, error) {
	c := &Customer{}
	query := `
		SELECT id, email, full_name, is_admin, created_at
		FROM customers
		WHERE id = $1
	`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Email, &c.FullName, &c.IsAdmin, &c.CreatedAt)
	if err != nil {
		return nil, err
	}
	return c, nil
}
