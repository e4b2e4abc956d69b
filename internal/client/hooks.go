package client

import (
	"context"

	"github.com/GTDGit/seller_hub/internal/contract"
	"github.com/GTDGit/seller_hub/internal/models"
)

func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	s, err := read[models.DashboardStats](ctx, c, contract.DashboardStats, nil, nil)
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (c *Client) Products(ctx context.Context, filter contract.ListProductsQuery) ([]models.Product, error) {
	return read[[]models.Product](ctx, c, contract.ProductsList, nil, filter.Values())
}

// Product returns nil when the product does not exist.
func (c *Client) Product(ctx context.Context, id int) (*models.Product, error) {
	return readOne[models.Product](ctx, c, contract.ProductsGet, contract.ID(id))
}

func (c *Client) Orders(ctx context.Context, filter contract.ListOrdersQuery) ([]models.Order, error) {
	return read[[]models.Order](ctx, c, contract.OrdersList, nil, filter.Values())
}

// Order returns nil when the order does not exist.
func (c *Client) Order(ctx context.Context, id int) (*models.OrderWithItems, error) {
	return readOne[models.OrderWithItems](ctx, c, contract.OrdersGet, contract.ID(id))
}

func (c *Client) Returns(ctx context.Context) ([]models.Return, error) {
	return read[[]models.Return](ctx, c, contract.ReturnsList, nil, nil)
}

// Settings returns nil when no settings were saved yet.
func (c *Client) Settings(ctx context.Context) (*models.Settings, error) {
	return readOne[models.Settings](ctx, c, contract.SettingsGet, nil)
}

func (c *Client) Suggestions(ctx context.Context) ([]models.Suggestion, error) {
	return read[[]models.Suggestion](ctx, c, contract.IntelligenceSuggestions, nil, nil)
}

func (c *Client) CreateProduct(ctx context.Context, in contract.CreateProductInput) (*models.Product, error) {
	p, err := mutate[models.Product](ctx, c, contract.ProductsCreate, nil, in)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id int, in contract.UpdateProductInput) (*models.Product, error) {
	p, err := mutate[models.Product](ctx, c, contract.ProductsUpdate, contract.ID(id), in)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) CreateOrder(ctx context.Context, in contract.CreateOrderInput) (*models.OrderWithItems, error) {
	o, err := mutate[models.OrderWithItems](ctx, c, contract.OrdersCreate, nil, in)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) UpdateOrder(ctx context.Context, id int, in contract.UpdateOrderInput) (*models.Order, error) {
	o, err := mutate[models.Order](ctx, c, contract.OrdersUpdate, contract.ID(id), in)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

func (c *Client) SyncOrders(ctx context.Context) (*contract.SyncResponse, error) {
	r, err := mutate[contract.SyncResponse](ctx, c, contract.OrdersSync, nil, nil)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) GenerateInvoice(ctx context.Context, id int) (*contract.InvoiceResponse, error) {
	r, err := mutate[contract.InvoiceResponse](ctx, c, contract.OrdersInvoice, contract.ID(id), nil)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) BulkUpdateStatus(ctx context.Context, ids []int, status string) (*contract.BulkStatusResponse, error) {
	r, err := mutate[contract.BulkStatusResponse](ctx, c, contract.OrdersBulkStatus, nil,
		contract.BulkStatusInput{IDs: ids, Status: status})
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) CreateReturn(ctx context.Context, in contract.CreateReturnInput) (*models.Return, error) {
	r, err := mutate[models.Return](ctx, c, contract.ReturnsCreate, nil, in)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func (c *Client) UpdateSettings(ctx context.Context, in contract.UpdateSettingsInput) (*models.Settings, error) {
	s, err := mutate[models.Settings](ctx, c, contract.SettingsUpdate, nil, in)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
