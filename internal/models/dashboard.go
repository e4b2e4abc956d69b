package models

// DashboardStats holds aggregate counters for the dashboard.
type DashboardStats struct {
	TotalOrders     int   `db:"total_orders" json:"totalOrders"`
	PendingDispatch int   `db:"pending_dispatch" json:"pendingDispatch"`
	TotalSales      Money `db:"total_sales" json:"totalSales"`
	LowStockCount   int   `db:"low_stock_count" json:"lowStockCount"`
	ReturnsCount    int   `db:"returns_count" json:"returnsCount"`
}

// ZeroDashboardStats returns stats with every counter at zero.
func ZeroDashboardStats() DashboardStats {
	return DashboardStats{TotalSales: ZeroMoney()}
}

// Suggestion types and priorities.
const (
	SuggestionPricing = "pricing"
	SuggestionStock   = "stock"
	SuggestionRTO     = "rto"

	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Suggestion is a seller intelligence hint. ProductID is set when the hint
// concerns a single product.
type Suggestion struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Priority  string `json:"priority"`
	ProductID *int   `json:"productId,omitempty"`
	OrderID   *int   `json:"orderId,omitempty"`
}
