package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/application/service"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/presentation/http/dto/request"
	"github.com/sudipjangam/tasty-bite-harbor-sub001/internal/presentation/http/dto/response"
)

// SettingsHandler handles billing settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the restaurant's billing settings
// @Summary Get settings
// @Tags settings
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /settings [get]
func (h *SettingsHandler) Get(c *gin.Context) {
	restaurant, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings retrieved", restaurant)
}

// Update applies billing settings changes
// @Summary Update settings
// @Tags settings
// @Accept json
// @Produce json
// @Param request body request.UpdateSettingsRequest true "Settings"
// @Success 200 {object} response.APIResponse
// @Router /settings [put]
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	restaurant, err := h.settingsService.Update(c.Request.Context(), &service.UpdateInput{
		ServiceChargeEnabled: req.ServiceChargeEnabled,
		ServiceChargePercent: req.ServiceChargePercent,
		TaxRatePercent:       req.TaxRatePercent,
		Address:              req.Address,
		Phone:                req.Phone,
		GSTIN:                req.GSTIN,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings updated", restaurant)
}
