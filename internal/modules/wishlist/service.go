package wishlist

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/nidamehendi/storefront-backend/internal/modules/identity"
)

// ErrAuthRequired is returned for guest callers; the storefront reacts by
// prompting sign-in rather than ignoring the toggle.
var ErrAuthRequired = errors.New("authentication required")

// ToggleResult reports which way a toggle went.
type ToggleResult string

const (
	ToggleAdded   ToggleResult = "added"
	ToggleRemoved ToggleResult = "removed"
)

// Service is the member-only wishlist toggle set.
type Service interface {
	// Toggle inserts the entry if absent, deletes it if present.
	Toggle(ctx context.Context, sess *identity.Session, productID uuid.UUID) (ToggleResult, error)
	// Contains reports membership, for rendering the toggle state.
	Contains(ctx context.Context, sess *identity.Session, productID uuid.UUID) (bool, error)
	ListProductIDs(ctx context.Context, sess *identity.Session) ([]uuid.UUID, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) Toggle(ctx context.Context, sess *identity.Session, productID uuid.UUID) (ToggleResult, error) {
	if sess == nil {
		return "", ErrAuthRequired
	}

	exists, err := s.repo.Exists(ctx, sess.CustomerID, productID)
	if err != nil {
		return "", err
	}
	if exists {
		if err := s.repo.Delete(ctx, sess.CustomerID, productID); err != nil {
			return "", err
		}
		return ToggleRemoved, nil
	}
	if err := s.repo.Insert(ctx, sess.CustomerID, productID); err != nil {
		return "", err
	}
	return ToggleAdded, nil
}

func (s *service) Contains(ctx context.Context, sess *identity.Session, productID uuid.UUID) (bool, error) {
	if sess == nil {
		return false, nil
	}
	return s.repo.Exists(ctx, sess.CustomerID, productID)
}

func (s *service) ListProductIDs(ctx context.Context, sess *identity.Session) ([]uuid.UUID, error) {
	if sess == nil {
		return nil, ErrAuthRequired
	}
	return s.repo.ListProductIDs(ctx, sess.CustomerID)
}
