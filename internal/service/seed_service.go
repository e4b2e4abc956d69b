package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/GTDGit/seller_hub/internal/models"
)

// SeedService loads demo data into an empty store.
type SeedService struct {
	products ProductStore
	orders   OrderStore
	settings SettingsStore
	now      func() time.Time
}

// NewSeedService constructs a SeedService.
func NewSeedService(products ProductStore, orders OrderStore, settings SettingsStore) *SeedService {
	return &SeedService{products: products, orders: orders, settings: settings, now: time.Now}
}

func ptr[T any](v T) *T { return &v }

// Seed inserts demo products, orders and settings when no product exists yet.
// It returns the number of orders inserted, which is zero when data was already present.
func (s *SeedService) Seed(ctx context.Context) (int, error) {
	n, err := s.products.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count products: %w", err)
	}
	if n > 0 {
		return 0, nil
	}

	products := []models.Product{
		{
			Name:        "Wireless Earbuds",
			SKU:         "AUDIO-001",
			Description: ptr("High quality wireless earbuds with noise cancellation"),
			Price:       models.MustMoney("1499.00"),
			Stock:       50,
			Category:    ptr("Electronics"),
		},
		{
			Name:        "Smart Watch X1",
			SKU:         "WEAR-001",
			Description: ptr("Smart watch with health tracking"),
			Price:       models.MustMoney("2999.00"),
			Stock:       10,
			Category:    ptr("Electronics"),
		},
		{
			Name:        "Phone Case - iPhone 14",
			SKU:         "ACC-001",
			Description: ptr("Durable phone case"),
			Price:       models.MustMoney("499.00"),
			Stock:       100,
			Category:    ptr("Accessories"),
		},
	}
	for i := range products {
		products[i].LowStockThreshold = 5
		products[i].IsActive = true
		if err := s.products.Create(ctx, &products[i]); err != nil {
			return 0, fmt.Errorf("seed product %s: %w", products[i].SKU, err)
		}
	}

	now := s.now().UTC()
	orders := []struct {
		order models.Order
		items []models.NewOrderItem
	}{
		{
			order: models.Order{
				OrderID:      "OD1234567890",
				OrderDate:    now,
				Status:       models.OrderStatusCreated,
				BuyerName:    ptr("Rahul Sharma"),
				BuyerAddress: ptr("123 MG Road, Bangalore, KA"),
				TotalAmount:  models.MustMoney("1499.00"),
				ShippingFee:  models.MustMoney("40.00"),
			},
			items: []models.NewOrderItem{{SKU: "AUDIO-001", Quantity: 1, Price: models.MustMoney("1499.00")}},
		},
		{
			order: models.Order{
				OrderID:      "OD9876543210",
				OrderDate:    now.Add(-24 * time.Hour),
				Status:       models.OrderStatusPacked,
				BuyerName:    ptr("Priya Singh"),
				BuyerAddress: ptr("45 Park Street, Kolkata, WB"),
				TotalAmount:  models.MustMoney("2999.00"),
				ShippingFee:  models.MustMoney("0.00"),
			},
			items: []models.NewOrderItem{{SKU: "WEAR-001", Quantity: 1, Price: models.MustMoney("2999.00")}},
		},
	}
	for i := range orders {
		o := &orders[i].order
		o.Commission = models.ZeroMoney()
		o.GST = models.ZeroMoney()
		if _, err := s.orders.CreateWithItems(ctx, o, orders[i].items); err != nil {
			return 0, fmt.Errorf("seed order %s: %w", o.OrderID, err)
		}
	}

	if _, err := s.settings.Upsert(ctx, models.SettingsPatch{
		SellerName:    ptr("TechGadgets India"),
		SellerAddress: ptr("Bangalore, India"),
		IsSandbox:     ptr(true),
	}); err != nil {
		return 0, fmt.Errorf("seed settings: %w", err)
	}

	log.Info().Int("products", len(products)).Int("orders", len(orders)).Msg("demo data seeded")
	return len(orders), nil
}
