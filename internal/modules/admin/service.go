// Package admin serves the dashboard behind the is_admin flag.
package admin

import "context"

// Stats is the dashboard summary block.
type Stats struct {
	TotalProducts   int `json:"total_products"`
	InStockProducts int `json:"in_stock_products"`
	TotalCustomers  int `json:"total_customers"`
	TotalOrders     int `json:"total_orders"`
}

// Repository counts dashboard figures straight off the store.
type Repository interface {
	CountStats(ctx context.Context) (*Stats, error)
}

// Service defines admin dashboard logic.
type Service interface {
	DashboardStats(ctx context.Context) (*Stats, error)
}

type service struct{ repo Repository }

func NewService(repo Repository) Service { return &service{repo: repo} }

func (s *service) DashboardStats(ctx context.Context) (*Stats, error) {
	return s.repo.CountStats(ctx)
}
