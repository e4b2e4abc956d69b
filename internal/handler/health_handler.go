package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/GTDGit/seller_hub/internal/utils"
)

var startTime = time.Now()

// Pinger is a dependency whose reachability is reported by the health check.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// HealthHandler provides health endpoint.
type HealthHandler struct {
	db Pinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db Pinger) *HealthHandler {
	return &HealthHandler{db: db}
}

// GetHealth responds with service and database status. An unreachable
// database answers 503.
func (h *HealthHandler) GetHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	code, status, dbStatus := 200, "healthy", "connected"
	if err := h.db.PingContext(ctx); err != nil {
		code, status, dbStatus = 503, "unhealthy", "disconnected"
	}

	data := gin.H{
		"status":   status,
		"version":  "1.0.0",
		"uptime":   int(time.Since(startTime).Seconds()),
		"database": dbStatus,
	}
	if code != 200 {
		c.JSON(code, utils.Response{Success: false, Code: code, Message: "Service is unhealthy", Data: data})
		return
	}
	utils.Success(c, code, "Service is healthy", data)
}
