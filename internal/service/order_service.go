package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/GTDGit/seller_hub/internal/marketplace"
	"github.com/GTDGit/seller_hub/internal/models"
	"github.com/GTDGit/seller_hub/internal/repository"
)

// OrderService provides order-related business logic and the marketplace operations.
type OrderService struct {
	orders OrderStore
	market marketplace.Marketplace
	stats  StatsInvalidator
}

// NewOrderService constructs an OrderService.
func NewOrderService(orders OrderStore, market marketplace.Marketplace, stats StatsInvalidator) *OrderService {
	return &OrderService{orders: orders, market: market, stats: stats}
}

// ListOrders returns orders filtered by exact status and a buyer name / order id substring.
func (s *OrderService) ListOrders(ctx context.Context, search, status string) ([]models.Order, error) {
	return s.orders.List(ctx, search, status)
}

// GetOrder returns an order with its items.
func (s *OrderService) GetOrder(ctx context.Context, id int) (*models.OrderWithItems, error) {
	o, err := s.orders.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	items, err := s.orders.GetItems(ctx, id)
	if err != nil {
		return nil, err
	}
	return &models.OrderWithItems{Order: *o, Items: items}, nil
}

// CreateOrder stores the order, its items and the matching stock decrements
// atomically. A duplicate external order id yields ErrOrderExists.
func (s *OrderService) CreateOrder(ctx context.Context, o *models.Order, items []models.NewOrderItem) (*models.OrderWithItems, error) {
	if o.Status == "" {
		o.Status = models.OrderStatusCreated
	}
	o.OrderDate = o.OrderDate.UTC()

	out, err := s.orders.CreateWithItems(ctx, o, items)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, ErrOrderExists
		}
		return nil, err
	}
	s.stats.Invalidate(ctx)
	return out, nil
}

// UpdateOrder applies a partial update to an order.
func (s *OrderService) UpdateOrder(ctx context.Context, id int, patch models.OrderPatch) (*models.Order, error) {
	o, err := s.orders.Update(ctx, id, patch)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}
	s.stats.Invalidate(ctx)
	return o, nil
}

// BulkUpdateOrdersStatus sets status on every listed order and returns how many
// existed. Unknown ids are ignored.
func (s *OrderService) BulkUpdateOrdersStatus(ctx context.Context, ids []int, status string) (int, error) {
	n, err := s.orders.BulkUpdateStatus(ctx, ids, status)
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.stats.Invalidate(ctx)
	}
	return n, nil
}

// SyncOrders imports orders from the marketplace.
func (s *OrderService) SyncOrders(ctx context.Context) (marketplace.SyncResult, error) {
	res, err := s.market.SyncOrders(ctx)
	if err != nil {
		return marketplace.SyncResult{}, err
	}
	s.stats.Invalidate(ctx)
	return res, nil
}

// GenerateInvoice produces the invoice document of an order and records its
// URL on the order.
func (s *OrderService) GenerateInvoice(ctx context.Context, id int) (marketplace.Invoice, error) {
	order, err := s.GetOrder(ctx, id)
	if err != nil {
		return marketplace.Invoice{}, err
	}

	inv, err := s.market.GenerateInvoice(ctx, order)
	if err != nil {
		return marketplace.Invoice{}, err
	}

	if _, err := s.orders.Update(ctx, id, models.OrderPatch{InvoiceURL: &inv.DocumentURL}); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return marketplace.Invoice{}, ErrOrderNotFound
		}
		return marketplace.Invoice{}, fmt.Errorf("store invoice url: %w", err)
	}
	return inv, nil
}
