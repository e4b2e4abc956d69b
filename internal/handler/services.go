package handler

import (
	"context"

	"github.com/GTDGit/seller_hub/internal/marketplace"
	"github.com/GTDGit/seller_hub/internal/models"
)

// Service contracts consumed by the handlers. The implementations live in
// internal/service.

type DashboardService interface {
	GetDashboardStats(ctx context.Context) (*models.DashboardStats, error)
}

type ProductService interface {
	ListProducts(ctx context.Context, search, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id int) (*models.Product, error)
	CreateProduct(ctx context.Context, p *models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, id int, patch models.ProductPatch) (*models.Product, error)
}

type OrderService interface {
	ListOrders(ctx context.Context, search, status string) ([]models.Order, error)
	GetOrder(ctx context.Context, id int) (*models.OrderWithItems, error)
	CreateOrder(ctx context.Context, o *models.Order, items []models.NewOrderItem) (*models.OrderWithItems, error)
	UpdateOrder(ctx context.Context, id int, patch models.OrderPatch) (*models.Order, error)
	BulkUpdateOrdersStatus(ctx context.Context, ids []int, status string) (int, error)
	SyncOrders(ctx context.Context) (marketplace.SyncResult, error)
	GenerateInvoice(ctx context.Context, id int) (marketplace.Invoice, error)
}

type ReturnService interface {
	ListReturns(ctx context.Context) ([]models.Return, error)
	CreateReturn(ctx context.Context, r *models.Return) (*models.Return, error)
}

type SettingsService interface {
	GetSettings(ctx context.Context) (*models.Settings, error)
	UpdateSettings(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error)
}

type IntelligenceService interface {
	GetSuggestions(ctx context.Context) ([]models.Suggestion, error)
}
