package wishlist

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/nidamehendi/storefront-backend/internal/modules/identity"
)

type fakeRepo struct {
	entries map[uuid.UUID]map[uuid.UUID]bool
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{entries: make(map[uuid.UUID]map[uuid.UUID]bool)}
}

func (f *fakeRepo) Exists(_ context.Context, customerID, productID uuid.UUID) (bool, error) {
	return f.entries[customerID][productID], nil
}

func (f *fakeRepo) Insert(_ context.Context, customerID, productID uuid.UUID) error {
	if f.entries[customerID] == nil {
		f.entries[customerID] = make(map[uuid.UUID]bool)
	}
	f.entries[customerID][productID] = true
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, customerID, productID uuid.UUID) error {
	delete(f.entries[customerID], productID)
	return nil
}

func (f *fakeRepo) ListProductIDs(_ context.Context, customerID uuid.UUID) ([]uuid.UUID, error) {
	var out []uuid.UUID
	for id := range f.entries[customerID] {
		out = append(out, id)
	}
	return out, nil
}

func TestToggleIsSelfInverse(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()
	sess := &identity.Session{CustomerID: uuid.New()}
	productID := uuid.New()

	res, err := svc.Toggle(ctx, sess, productID)
	if err != nil {
		t.Fatalf("first toggle: %v", err)
	}
	if res != ToggleAdded {
		t.Fatalf("expected added, got %q", res)
	}

	res, err = svc.Toggle(ctx, sess, productID)
	if err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if res != ToggleRemoved {
		t.Fatalf("expected removed, got %q", res)
	}

	has, err := svc.Contains(ctx, sess, productID)
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if has {
		t.Fatal("expected entry gone after double toggle")
	}
}

func TestToggleRejectsGuests(t *testing.T) {
	svc := NewService(newFakeRepo())

	if _, err := svc.Toggle(context.Background(), nil, uuid.New()); err != ErrAuthRequired {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
}

func TestContainsIsFalseForGuests(t *testing.T) {
	svc := NewService(newFakeRepo())

	has, err := svc.Contains(context.Background(), nil, uuid.New())
	if err != nil {
		t.Fatalf("contains: %v", err)
	}
	if has {
		t.Fatal("guest wishlist membership must be false")
	}
}

func TestListProductIDs(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()
	sess := &identity.Session{CustomerID: uuid.New()}

	if _, err := svc.ListProductIDs(ctx, nil); err != ErrAuthRequired {
		t.Fatalf("expected ErrAuthRequired for guest list, got %v", err)
	}

	a, b := uuid.New(), uuid.New()
	if _, err := svc.Toggle(ctx, sess, a); err != nil {
		t.Fatalf("toggle a: %v", err)
	}
	if _, err := svc.Toggle(ctx, sess, b); err != nil {
		t.Fatalf("toggle b: %v", err)
	}

	ids, err := svc.ListProductIDs(ctx, sess)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
}
