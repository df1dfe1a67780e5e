package identity

import (
	"context"

	"github.com/google/uuid"
)

// AccountRepository stores identity records.
type AccountRepository interface {
	CreateAccount(ctx context.Context, a *Account) error
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error)
}

// CustomerRepository stores customer profiles keyed by account id.
type CustomerRepository interface {
	CreateCustomer(ctx context.Context, c *Customer) error
	GetCustomerByID(ctx context.Context, id uuid.UUID) (*Customer, error)
}
