package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sangkips/snacksbunk-pos/internal/application/service"
	"github.com/sangkips/snacksbunk-pos/internal/domain/entity"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/dto/request"
	"github.com/sangkips/snacksbunk-pos/internal/presentation/http/dto/response"
)

// SettingsHandler handles settings-related HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the shop settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings replaces the shop settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "gstEnabled is required")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), entity.Settings{GSTEnabled: *req.GSTEnabled})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings updated successfully", settings)
}

// ToggleGST flips GST on or off
func (h *SettingsHandler) ToggleGST(c *gin.Context) {
	settings, err := h.settingsService.ToggleGST(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "GST setting toggled", settings)
}
