package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "modelforge-backend/internal/errors"
	"modelforge-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ArmyHandler handles HTTP requests for armies
type ArmyHandler struct {
	service service.ArmyServiceInterface
}

// NewArmyHandler creates a new army handler
func NewArmyHandler(service service.ArmyServiceInterface) *ArmyHandler {
	return &ArmyHandler{service: service}
}

// CreateArmy handles POST /api/v1/armies
// @Summary Create a new army
// @Tags armies
// @Accept json
// @Produce json
// @Param army body service.CreateArmyRequest true "Army data"
// @Success 201 {object} service.ArmyResponse "Successfully created army"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Game system not found"
// @Failure 409 {object} map[string]interface{} "Army already exists in this game system"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /armies [post]
func (h *ArmyHandler) CreateArmy(c *gin.Context) {
	var req service.CreateArmyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	army, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrGameSystemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrArmyExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create army", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, army)
}

// GetArmy handles GET /api/v1/armies/:id
// @Summary Get army by ID
// @Tags armies
// @Produce json
// @Param id path string true "Army ID (UUID)"
// @Success 200 {object} service.ArmyResponse "Successfully retrieved army"
// @Failure 400 {object} map[string]interface{} "Invalid army ID"
// @Failure 404 {object} map[string]interface{} "Army not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /armies/{id} [get]
func (h *ArmyHandler) GetArmy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid army ID: invalid UUID format"})
		return
	}

	army, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrArmyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get army", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, army)
}

// ListArmies handles GET /api/v1/armies
// @Summary List armies
// @Description List all armies, optionally filtered by game system
// @Tags armies
// @Produce json
// @Param game_system_id query string false "Filter by game system ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.ArmyListResponse "Successfully retrieved armies"
// @Failure 400 {object} map[string]interface{} "Invalid game system ID"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /armies [get]
func (h *ArmyHandler) ListArmies(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	var (
		resp *service.ArmyListResponse
		err  error
	)

	if raw := c.Query("game_system_id"); raw != "" {
		gameSystemID, parseErr := uuid.Parse(raw)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game system ID: invalid UUID format"})
			return
		}
		resp, err = h.service.GetByGameSystem(gameSystemID, page, pageSize)
	} else {
		resp, err = h.service.GetAll(page, pageSize)
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get armies", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateArmy handles PUT /api/v1/armies/:id
// @Summary Update an army
// @Tags armies
// @Accept json
// @Produce json
// @Param id path string true "Army ID (UUID)"
// @Param army body service.UpdateArmyRequest true "Fields to update"
// @Success 200 {object} service.ArmyResponse "Successfully updated army"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Army not found"
// @Failure 409 {object} map[string]interface{} "Army already exists in this game system"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /armies/{id} [put]
func (h *ArmyHandler) UpdateArmy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid army ID: invalid UUID format"})
		return
	}

	var req service.UpdateArmyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	army, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrArmyNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrArmyExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update army", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, army)
}

// DeleteArmy handles DELETE /api/v1/armies/:id
// @Summary Delete an army
// @Description Delete an army. Models linked to the army survive and only lose the link.
// @Tags armies
// @Produce json
// @Param id path string true "Army ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted army"
// @Failure 400 {object} map[string]interface{} "Invalid army ID"
// @Failure 404 {object} map[string]interface{} "Army not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /armies/{id} [delete]
func (h *ArmyHandler) DeleteArmy(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid army ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrArmyNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete army", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Army deleted successfully"})
}
