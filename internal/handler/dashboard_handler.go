package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/seller_hub/internal/models"
	"github.com/GTDGit/seller_hub/internal/utils"
)

// DashboardHandler serves aggregate stats.
type DashboardHandler struct {
	dashboard    DashboardService
	fallbackZero bool
}

// NewDashboardHandler creates a DashboardHandler. With fallbackZero set, an
// aggregation failure answers all-zero stats instead of a 500.
func NewDashboardHandler(dashboard DashboardService, fallbackZero bool) *DashboardHandler {
	return &DashboardHandler{dashboard: dashboard, fallbackZero: fallbackZero}
}

// GetStats returns the dashboard counters.
func (h *DashboardHandler) GetStats(c *gin.Context) {
	stats, err := h.dashboard.GetDashboardStats(c.Request.Context())
	if err != nil {
		if !h.fallbackZero {
			respondError(c, err)
			return
		}
		log.Warn().Err(err).Str("request_id", c.GetString("request_id")).Msg("Dashboard stats failed, answering zeros")
		zero := models.ZeroDashboardStats()
		stats = &zero
	}

	utils.Success(c, 200, "Dashboard stats retrieved", stats)
}
