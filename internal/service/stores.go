package service

import (
	"context"

	"github.com/GTDGit/seller_hub/internal/models"
)

// ProductStore is the product persistence used by services.
type ProductStore interface {
	List(ctx context.Context, search, category string) ([]models.Product, error)
	GetByID(ctx context.Context, id int) (*models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Update(ctx context.Context, id int, patch models.ProductPatch) (*models.Product, error)
	Count(ctx context.Context) (int, error)
	ListLowStock(ctx context.Context) ([]models.Product, error)
	ListInactiveInStock(ctx context.Context) ([]models.Product, error)
}

// OrderStore is the order persistence used by services.
type OrderStore interface {
	List(ctx context.Context, search, status string) ([]models.Order, error)
	GetByID(ctx context.Context, id int) (*models.Order, error)
	GetItems(ctx context.Context, orderID int) ([]models.OrderItem, error)
	CreateWithItems(ctx context.Context, o *models.Order, items []models.NewOrderItem) (*models.OrderWithItems, error)
	Update(ctx context.Context, id int, patch models.OrderPatch) (*models.Order, error)
	BulkUpdateStatus(ctx context.Context, ids []int, status string) (int, error)
	ListWithRTOReturns(ctx context.Context) ([]models.Order, error)
}

// ReturnStore is the return persistence used by services.
type ReturnStore interface {
	List(ctx context.Context) ([]models.Return, error)
	Create(ctx context.Context, r *models.Return) error
}

// SettingsStore is the settings persistence used by services.
type SettingsStore interface {
	Get(ctx context.Context) (*models.Settings, error)
	Upsert(ctx context.Context, patch models.SettingsPatch) (*models.Settings, error)
}

// StatsStore computes dashboard aggregates.
type StatsStore interface {
	Stats(ctx context.Context) (*models.DashboardStats, error)
}

// StatsCache caches dashboard aggregates.
type StatsCache interface {
	Get(ctx context.Context) (*models.DashboardStats, bool, error)
	Set(ctx context.Context, stats *models.DashboardStats) error
	Invalidate(ctx context.Context) error
}

// StatsInvalidator is notified after mutations that change dashboard aggregates.
type StatsInvalidator interface {
	Invalidate(ctx context.Context)
}
