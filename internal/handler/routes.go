package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/seller_hub/internal/contract"
)

// Handlers groups the resource handlers served under the contract registry.
type Handlers struct {
	Dashboard    *DashboardHandler
	Product      *ProductHandler
	Order        *OrderHandler
	Return       *ReturnHandler
	Settings     *SettingsHandler
	Intelligence *IntelligenceHandler
}

func (h *Handlers) byRoute() map[string]gin.HandlerFunc {
	return map[string]gin.HandlerFunc{
		contract.DashboardStats: h.Dashboard.GetStats,

		contract.ProductsList:   h.Product.ListProducts,
		contract.ProductsGet:    h.Product.GetProduct,
		contract.ProductsCreate: h.Product.CreateProduct,
		contract.ProductsUpdate: h.Product.UpdateProduct,

		contract.OrdersList:       h.Order.ListOrders,
		contract.OrdersGet:        h.Order.GetOrder,
		contract.OrdersCreate:     h.Order.CreateOrder,
		contract.OrdersUpdate:     h.Order.UpdateOrder,
		contract.OrdersSync:       h.Order.SyncOrders,
		contract.OrdersInvoice:    h.Order.GenerateInvoice,
		contract.OrdersBulkStatus: h.Order.BulkUpdateStatus,

		contract.ReturnsList:   h.Return.ListReturns,
		contract.ReturnsCreate: h.Return.CreateReturn,

		contract.SettingsGet:    h.Settings.GetSettings,
		contract.SettingsUpdate: h.Settings.UpdateSettings,

		contract.IntelligenceSuggestions: h.Intelligence.GetSuggestions,
	}
}

// RegisterRoutes mounts a handler for every route in the contract registry.
// Routes that declare an input get their JSON body validated against it first.
// It fails when a route has no handler.
func RegisterRoutes(r gin.IRoutes, h *Handlers) error {
	registerValidators()

	handlers := h.byRoute()
	for _, route := range contract.Routes {
		fn, ok := handlers[route.Name]
		if !ok {
			return fmt.Errorf("no handler for route %s", route.Name)
		}
		if route.Input != nil {
			r.Handle(route.Method, route.Path, validateInput(route), fn)
		} else {
			r.Handle(route.Method, route.Path, fn)
		}
	}
	return nil
}
