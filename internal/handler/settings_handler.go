package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/GTDGit/seller_hub/internal/contract"
	"github.com/GTDGit/seller_hub/internal/utils"
)

// SettingsHandler exposes the seller settings singleton.
type SettingsHandler struct {
	settingsService SettingsService
}

// NewSettingsHandler constructs a SettingsHandler.
func NewSettingsHandler(settingsService SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings returns the settings or 404 when none were saved yet.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	s, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Settings retrieved successfully", s)
}

// UpdateSettings creates or patches the settings.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	in := inputOf[contract.UpdateSettingsInput](c)

	s, err := h.settingsService.UpdateSettings(c.Request.Context(), in.ToPatch())
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Settings updated successfully", s)
}
