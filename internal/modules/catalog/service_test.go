package catalog

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
)

type fakeRepo struct {
	products map[uuid.UUID]*Product
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{products: make(map[uuid.UUID]*Product)}
}

func (f *fakeRepo) Create(_ context.Context, p *Product) error {
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id uuid.UUID) (*Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	return p, nil
}

func (f *fakeRepo) List(_ context.Context, filter Filter) ([]*Product, error) {
	var out []*Product
	for _, p := range f.products {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if filter.InStockOnly && !p.InStock {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) Update(_ context.Context, p *Product) error {
	if _, ok := f.products[p.ID]; !ok {
		return sql.ErrNoRows
	}
	f.products[p.ID] = p
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func TestCreateProductAssignsID(t *testing.T) {
	svc := NewService(newFakeRepo())

	p, err := svc.CreateProduct(context.Background(), ProductRequest{
		Name:    "Kaju Katli",
		Price:   250,
		InStock: true,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Fatal("expected assigned id")
	}
	if p.Name != "Kaju Katli" || p.Price != 250 {
		t.Fatalf("fields not carried over: %+v", p)
	}
}

func TestCreateProductRejectsNegativePrice(t *testing.T) {
	svc := NewService(newFakeRepo())

	if _, err := svc.CreateProduct(context.Background(), ProductRequest{Name: "x", Price: -1}); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestGetProductMapsMissingRow(t *testing.T) {
	svc := NewService(newFakeRepo())

	if _, err := svc.GetProduct(context.Background(), uuid.New()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpdateProduct(t *testing.T) {
	svc := NewService(newFakeRepo())
	ctx := context.Background()

	p, err := svc.CreateProduct(ctx, ProductRequest{Name: "Kaju Katli", Price: 250, InStock: true})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := svc.UpdateProduct(ctx, p.ID, ProductRequest{Name: "Kaju Katli", Price: 300, InStock: false, Featured: true})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Price != 300 || updated.InStock || !updated.Featured {
		t.Fatalf("update not applied: %+v", updated)
	}

	if _, err := svc.UpdateProduct(ctx, uuid.New(), ProductRequest{Name: "x", Price: 1}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound for unknown id, got %v", err)
	}
}

func TestListProductsHonorsFilter(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ctx := context.Background()

	if _, err := svc.CreateProduct(ctx, ProductRequest{Name: "Kaju Katli", Price: 250, Category: "sweets", InStock: true}); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := svc.CreateProduct(ctx, ProductRequest{Name: "Aam Papad", Price: 90, Category: "dried", InStock: false}); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := svc.ListProducts(ctx, Filter{InStockOnly: true})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Kaju Katli" {
		t.Fatalf("unexpected listing: %+v", got)
	}

	got, err = svc.ListProducts(ctx, Filter{Category: "dried"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].Name != "Aam Papad" {
		t.Fatalf("unexpected listing: %+v", got)
	}
}
