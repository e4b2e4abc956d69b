package models

import "time"

// Known order statuses. Status is free text; transitions are not enforced.
const (
	OrderStatusCreated   = "CREATED"
	OrderStatusPacked    = "PACKED"
	OrderStatusShipped   = "SHIPPED"
	OrderStatusDelivered = "DELIVERED"
	OrderStatusCancelled = "CANCELLED"
)

// Order is a marketplace order as stored locally.
type Order struct {
	ID             int        `db:"id" json:"id"`
	OrderID        string     `db:"order_id" json:"orderId"`
	OrderDate      time.Time  `db:"order_date" json:"orderDate"`
	Status         string     `db:"status" json:"status"`
	BuyerName      *string    `db:"buyer_name" json:"buyerName"`
	BuyerAddress   *string    `db:"buyer_address" json:"buyerAddress"`
	TotalAmount    Money      `db:"total_amount" json:"totalAmount"`
	ShippingFee    Money      `db:"shipping_fee" json:"shippingFee"`
	Commission     Money      `db:"commission" json:"commission"`
	GST            Money      `db:"gst" json:"gst"`
	DispatchByDate *time.Time `db:"dispatch_by_date" json:"dispatchByDate"`
	TrackingID     *string    `db:"tracking_id" json:"trackingId"`
	CourierName    *string    `db:"courier_name" json:"courierName"`
	InvoiceURL     *string    `db:"invoice_url" json:"invoiceUrl"`
	PackingSlipURL *string    `db:"packing_slip_url" json:"packingSlipUrl"`
	CreatedAt      time.Time  `db:"created_at" json:"createdAt"`
	UpdatedAt      time.Time  `db:"updated_at" json:"updatedAt"`
}

// OrderItem is a line of an order. ProductID is nil when the SKU matched no product.
type OrderItem struct {
	ID        int    `db:"id" json:"id"`
	OrderID   int    `db:"order_id" json:"orderId"`
	ProductID *int   `db:"product_id" json:"productId"`
	SKU       string `db:"sku" json:"sku"`
	Quantity  int    `db:"quantity" json:"quantity"`
	Price     Money  `db:"price" json:"price"`
}

// OrderWithItems is an order together with its full item list.
type OrderWithItems struct {
	Order
	Items []OrderItem `json:"items"`
}

// NewOrderItem is an item supplied at order creation.
type NewOrderItem struct {
	SKU      string
	Quantity int
	Price    Money
}

// OrderPatch carries the fields of a partial order update. Nil fields are left unchanged.
type OrderPatch struct {
	Status         *string
	DispatchByDate *time.Time
	TrackingID     *string
	CourierName    *string
	InvoiceURL     *string
	PackingSlipURL *string
}
