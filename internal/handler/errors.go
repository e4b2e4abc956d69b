package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/GTDGit/seller_hub/internal/marketplace"
	"github.com/GTDGit/seller_hub/internal/service"
	"github.com/GTDGit/seller_hub/internal/utils"
)

// respondError maps a service error to its HTTP response. Unknown errors are
// logged and reported as a generic 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrProductNotFound):
		utils.Error(c, 404, utils.CodeNotFound, "Product not found")
	case errors.Is(err, service.ErrOrderNotFound):
		utils.Error(c, 404, utils.CodeNotFound, "Order not found")
	case errors.Is(err, service.ErrSettingsNotFound):
		utils.Error(c, 404, utils.CodeNotFound, "Settings not found")
	case errors.Is(err, service.ErrSKUExists):
		utils.ErrorField(c, 400, utils.CodeSKUExists, "SKU already exists", "sku")
	case errors.Is(err, service.ErrOrderExists):
		utils.ErrorField(c, 400, utils.CodeOrderExists, "Order ID already exists", "orderId")
	case errors.Is(err, service.ErrSellerNameRequired):
		utils.ErrorField(c, 400, utils.CodeValidation, "sellerName is required", "sellerName")
	case marketplace.IsTransient(err):
		logFailure(c, err)
		utils.Error(c, 503, utils.CodeMarketplaceBusy, "Marketplace temporarily unavailable")
	case marketplace.IsMarketplaceError(err):
		logFailure(c, err)
		utils.Error(c, 502, utils.CodeMarketplaceError, "Marketplace request failed")
	default:
		logFailure(c, err)
		utils.Error(c, 500, utils.CodeInternal, "Internal server error")
	}
}

func logFailure(c *gin.Context, err error) {
	log.Error().
		Err(err).
		Str("request_id", c.GetString("request_id")).
		Str("method", c.Request.Method).
		Str("path", c.FullPath()).
		Msg("Request failed")
}
