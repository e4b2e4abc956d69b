package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/seller_hub/internal/contract"
	"github.com/GTDGit/seller_hub/internal/utils"
)

// OrderHandler handles order endpoints, including marketplace sync and invoices.
type OrderHandler struct {
	orderService OrderService
	now          func() time.Time
}

// NewOrderHandler constructs an OrderHandler.
func NewOrderHandler(orderService OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService, now: time.Now}
}

// ListOrders returns orders filtered by the optional status and search query params.
func (h *OrderHandler) ListOrders(c *gin.Context) {
	var q contract.ListOrdersQuery
	_ = c.ShouldBindQuery(&q)

	orders, err := h.orderService.ListOrders(c.Request.Context(), q.Search, q.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Orders retrieved successfully", orders)
}

// GetOrder returns an order with its items.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	o, err := h.orderService.GetOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Order retrieved successfully", o)
}

// CreateOrder records an order and its items.
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	in := inputOf[contract.CreateOrderInput](c)

	order, items := in.ToModel(h.now())
	o, err := h.orderService.CreateOrder(c.Request.Context(), order, items)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Order created successfully", o)
}

// UpdateOrder applies a partial update to an order.
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	in := inputOf[contract.UpdateOrderInput](c)

	o, err := h.orderService.UpdateOrder(c.Request.Context(), id, in.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Order updated successfully", o)
}

// SyncOrders imports orders from the marketplace.
func (h *OrderHandler) SyncOrders(c *gin.Context) {
	res, err := h.orderService.SyncOrders(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Sync successful", contract.SyncResponse{
		Message:     "Sync successful",
		SyncedCount: res.ImportedCount,
	})
}

// GenerateInvoice produces an invoice document for an order.
func (h *OrderHandler) GenerateInvoice(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	inv, err := h.orderService.GenerateInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Invoice generated", contract.InvoiceResponse{URL: inv.DocumentURL})
}

// BulkUpdateStatus sets one status on many orders.
func (h *OrderHandler) BulkUpdateStatus(c *gin.Context) {
	in := inputOf[contract.BulkStatusInput](c)

	n, err := h.orderService.BulkUpdateOrdersStatus(c.Request.Context(), in.IDs, in.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Orders updated", contract.BulkStatusResponse{Success: true, Count: n})
}
