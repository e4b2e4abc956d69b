package contract

import (
	"net/url"
	"time"

	"github.com/GTDGit/seller_hub/internal/models"
)

// CreateProductInput is the body of products.create.
type CreateProductInput struct {
	Name                 string        `json:"name" binding:"required"`
	SKU                  string        `json:"sku" binding:"required"`
	Description          *string       `json:"description"`
	Price                *models.Money `json:"price" binding:"required,money"`
	Stock                *int          `json:"stock" binding:"omitempty,gte=0"`
	LowStockThreshold    *int          `json:"lowStockThreshold" binding:"omitempty,gte=0"`
	ImageURL             *string       `json:"imageUrl" binding:"omitempty,url"`
	MarketplaceProductID *string       `json:"marketplaceProductId"`
	Category             *string       `json:"category"`
	IsActive             *bool         `json:"isActive"`
}

// ToModel converts the input into a product with defaults applied.
func (in CreateProductInput) ToModel() *models.Product {
	p := &models.Product{
		Name:                 in.Name,
		SKU:                  in.SKU,
		Description:          in.Description,
		Price:                *in.Price,
		LowStockThreshold:    5,
		ImageURL:             in.ImageURL,
		MarketplaceProductID: in.MarketplaceProductID,
		Category:             in.Category,
		IsActive:             true,
	}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if in.LowStockThreshold != nil {
		p.LowStockThreshold = *in.LowStockThreshold
	}
	if in.IsActive != nil {
		p.IsActive = *in.IsActive
	}
	return p
}

// UpdateProductInput is the body of products.update. Every field is optional.
type UpdateProductInput struct {
	Name                 *string       `json:"name" binding:"omitempty,min=1"`
	SKU                  *string       `json:"sku" binding:"omitempty,min=1"`
	Description          *string       `json:"description"`
	Price                *models.Money `json:"price" binding:"omitempty,money"`
	Stock                *int          `json:"stock" binding:"omitempty,gte=0"`
	LowStockThreshold    *int          `json:"lowStockThreshold" binding:"omitempty,gte=0"`
	ImageURL             *string       `json:"imageUrl" binding:"omitempty,url"`
	MarketplaceProductID *string       `json:"marketplaceProductId"`
	Category             *string       `json:"category"`
	IsActive             *bool         `json:"isActive"`
}

// ToPatch converts the input into a product patch.
func (in UpdateProductInput) ToPatch() models.ProductPatch {
	return models.ProductPatch{
		Name:                 in.Name,
		SKU:                  in.SKU,
		Description:          in.Description,
		Price:                in.Price,
		Stock:                in.Stock,
		LowStockThreshold:    in.LowStockThreshold,
		ImageURL:             in.ImageURL,
		MarketplaceProductID: in.MarketplaceProductID,
		Category:             in.Category,
		IsActive:             in.IsActive,
	}
}

// OrderItemInput is one line of CreateOrderInput.
type OrderItemInput struct {
	SKU      string        `json:"sku" binding:"required"`
	Quantity int           `json:"quantity" binding:"required,gt=0"`
	Price    *models.Money `json:"price" binding:"required,money"`
}

// CreateOrderInput is the body of orders.create.
type CreateOrderInput struct {
	OrderID        string           `json:"orderId" binding:"required"`
	OrderDate      *time.Time       `json:"orderDate"`
	Status         string           `json:"status"`
	BuyerName      *string          `json:"buyerName"`
	BuyerAddress   *string          `json:"buyerAddress"`
	TotalAmount    *models.Money    `json:"totalAmount" binding:"required,money"`
	ShippingFee    *models.Money    `json:"shippingFee" binding:"omitempty,money"`
	Commission     *models.Money    `json:"commission" binding:"omitempty,money"`
	GST            *models.Money    `json:"gst" binding:"omitempty,money"`
	DispatchByDate *time.Time       `json:"dispatchByDate"`
	TrackingID     *string          `json:"trackingId"`
	CourierName    *string          `json:"courierName"`
	Items          []OrderItemInput `json:"items" binding:"dive"`
}

// ToModel converts the input into an order and its items. A missing order
// date means now.
func (in CreateOrderInput) ToModel(now time.Time) (*models.Order, []models.NewOrderItem) {
	o := &models.Order{
		OrderID:        in.OrderID,
		OrderDate:      now,
		Status:         in.Status,
		BuyerName:      in.BuyerName,
		BuyerAddress:   in.BuyerAddress,
		TotalAmount:    *in.TotalAmount,
		ShippingFee:    moneyOrZero(in.ShippingFee),
		Commission:     moneyOrZero(in.Commission),
		GST:            moneyOrZero(in.GST),
		DispatchByDate: in.DispatchByDate,
		TrackingID:     in.TrackingID,
		CourierName:    in.CourierName,
	}
	if in.OrderDate != nil {
		o.OrderDate = *in.OrderDate
	}

	items := make([]models.NewOrderItem, 0, len(in.Items))
	for _, it := range in.Items {
		items = append(items, models.NewOrderItem{SKU: it.SKU, Quantity: it.Quantity, Price: *it.Price})
	}
	return o, items
}

func moneyOrZero(m *models.Money) models.Money {
	if m == nil {
		return models.ZeroMoney()
	}
	return *m
}

// UpdateOrderInput is the body of orders.update. Every field is optional.
type UpdateOrderInput struct {
	Status         *string    `json:"status" binding:"omitempty,min=1"`
	DispatchByDate *time.Time `json:"dispatchByDate"`
	TrackingID     *string    `json:"trackingId"`
	CourierName    *string    `json:"courierName"`
	InvoiceURL     *string    `json:"invoiceUrl"`
	PackingSlipURL *string    `json:"packingSlipUrl"`
}

// ToPatch converts the input into an order patch.
func (in UpdateOrderInput) ToPatch() models.OrderPatch {
	return models.OrderPatch{
		Status:         in.Status,
		DispatchByDate: in.DispatchByDate,
		TrackingID:     in.TrackingID,
		CourierName:    in.CourierName,
		InvoiceURL:     in.InvoiceURL,
		PackingSlipURL: in.PackingSlipURL,
	}
}

// BulkStatusInput is the body of orders.bulkStatus.
type BulkStatusInput struct {
	IDs    []int  `json:"ids" binding:"required,min=1,dive,gt=0"`
	Status string `json:"status" binding:"required"`
}

// CreateReturnInput is the body of returns.create.
type CreateReturnInput struct {
	OrderID    *int    `json:"orderId" binding:"omitempty,gt=0"`
	ReturnID   string  `json:"returnId" binding:"required"`
	Reason     *string `json:"reason"`
	Type       *string `json:"type" binding:"omitempty,oneof=RTO CUSTOMER_RETURN"`
	Status     *string `json:"status" binding:"omitempty,oneof=REQUESTED APPROVED RECEIVED REJECTED"`
	TrackingID *string `json:"trackingId"`
}

// ToModel converts the input into a return.
func (in CreateReturnInput) ToModel() *models.Return {
	return &models.Return{
		OrderID:    in.OrderID,
		ReturnID:   in.ReturnID,
		Reason:     in.Reason,
		Type:       in.Type,
		Status:     in.Status,
		TrackingID: in.TrackingID,
	}
}

// UpdateSettingsInput is the body of settings.update. sellerName is required
// until the settings exist.
type UpdateSettingsInput struct {
	SellerName              *string `json:"sellerName" binding:"omitempty,min=1"`
	SellerAddress           *string `json:"sellerAddress"`
	GSTIN                   *string `json:"gstin" binding:"omitempty,len=15,alphanum"`
	LogoURL                 *string `json:"logoUrl" binding:"omitempty,url"`
	MarketplaceClientID     *string `json:"marketplaceClientId"`
	MarketplaceClientSecret *string `json:"marketplaceClientSecret"`
	IsSandbox               *bool   `json:"isSandbox"`
}

// ToPatch converts the input into a settings patch.
func (in UpdateSettingsInput) ToPatch() models.SettingsPatch {
	return models.SettingsPatch{
		SellerName:              in.SellerName,
		SellerAddress:           in.SellerAddress,
		GSTIN:                   in.GSTIN,
		LogoURL:                 in.LogoURL,
		MarketplaceClientID:     in.MarketplaceClientID,
		MarketplaceClientSecret: in.MarketplaceClientSecret,
		IsSandbox:               in.IsSandbox,
	}
}

// ListProductsQuery holds the products.list filters.
type ListProductsQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
}

// Values encodes the non-empty filters.
func (q ListProductsQuery) Values() url.Values {
	v := url.Values{}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	if q.Category != "" {
		v.Set("category", q.Category)
	}
	return v
}

// ListOrdersQuery holds the orders.list filters.
type ListOrdersQuery struct {
	Status string `form:"status"`
	Search string `form:"search"`
}

// Values encodes the non-empty filters.
func (q ListOrdersQuery) Values() url.Values {
	v := url.Values{}
	if q.Status != "" {
		v.Set("status", q.Status)
	}
	if q.Search != "" {
		v.Set("search", q.Search)
	}
	return v
}
