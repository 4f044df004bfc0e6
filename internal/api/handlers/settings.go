package handlers

import (
	"errors"
	"net/http"

	apperrors "modelforge-backend/internal/errors"
	"modelforge-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SettingsHandler handles HTTP requests for settings and maintenance
type SettingsHandler struct {
	service service.SettingsServiceInterface
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(service service.SettingsServiceInterface) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetMinStockThreshold handles GET /api/v1/settings/min-stock-threshold
// @Summary Get the low-stock alert threshold
// @Tags settings
// @Produce json
// @Success 200 {object} service.MinStockThresholdResponse "Current threshold"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /settings/min-stock-threshold [get]
func (h *SettingsHandler) GetMinStockThreshold(c *gin.Context) {
	threshold, err := h.service.GetMinStockThreshold()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get setting", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, service.MinStockThresholdResponse{MinStockThreshold: threshold})
}

// SetMinStockThreshold handles PUT /api/v1/settings/min-stock-threshold
// @Summary Set the low-stock alert threshold
// @Tags settings
// @Accept json
// @Produce json
// @Param setting body service.UpdateMinStockThresholdRequest true "New threshold"
// @Success 200 {object} service.MinStockThresholdResponse "Saved threshold"
// @Failure 400 {object} map[string]interface{} "Invalid threshold"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /settings/min-stock-threshold [put]
func (h *SettingsHandler) SetMinStockThreshold(c *gin.Context) {
	var req service.UpdateMinStockThresholdRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	if err := h.service.SetMinStockThreshold(req.MinStockThreshold); err != nil {
		if errors.Is(err, apperrors.ErrInvalidStockThreshold) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save setting", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, service.MinStockThresholdResponse{MinStockThreshold: req.MinStockThreshold})
}

// ClearAllData handles POST /api/v1/admin/clear-all-data
// @Summary Delete every stored entity
// @Description Remove all game systems, armies, models, paints, sessions and settings. Irreversible.
// @Tags admin
// @Produce json
// @Success 200 {object} map[string]interface{} "All data cleared"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /admin/clear-all-data [post]
func (h *SettingsHandler) ClearAllData(c *gin.Context) {
	if err := h.service.ClearAllData(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to clear data", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "All data cleared"})
}
