package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/GTDGit/seller_hub/internal/contract"
	"github.com/GTDGit/seller_hub/internal/utils"
)

// ReturnHandler handles returns and RTO records.
type ReturnHandler struct {
	returnService ReturnService
}

// NewReturnHandler constructs a ReturnHandler.
func NewReturnHandler(returnService ReturnService) *ReturnHandler {
	return &ReturnHandler{returnService: returnService}
}

// ListReturns returns every return, newest first.
func (h *ReturnHandler) ListReturns(c *gin.Context) {
	returns, err := h.returnService.ListReturns(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Returns retrieved successfully", returns)
}

// CreateReturn records a return.
func (h *ReturnHandler) CreateReturn(c *gin.Context) {
	in := inputOf[contract.CreateReturnInput](c)

	r, err := h.returnService.CreateReturn(c.Request.Context(), in.ToModel())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 201, "Return created successfully", r)
}
