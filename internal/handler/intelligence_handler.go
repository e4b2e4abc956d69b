package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/GTDGit/seller_hub/internal/utils"
)

type IntelligenceHandler struct {
	intelligence IntelligenceService
}

func NewIntelligenceHandler(intelligence IntelligenceService) *IntelligenceHandler {
	return &IntelligenceHandler{intelligence: intelligence}
}

// GetSuggestions returns rule-based hints about stock, RTOs and pricing.
func (h *IntelligenceHandler) GetSuggestions(c *gin.Context) {
	suggestions, err := h.intelligence.GetSuggestions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Suggestions retrieved successfully", suggestions)
}
