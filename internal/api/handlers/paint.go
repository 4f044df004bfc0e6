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

// PaintHandler handles HTTP requests for paints
type PaintHandler struct {
	service service.PaintServiceInterface
}

// NewPaintHandler creates a new paint handler
func NewPaintHandler(service service.PaintServiceInterface) *PaintHandler {
	return &PaintHandler{service: service}
}

// CreatePaint handles POST /api/v1/paints
// @Summary Create a new paint
// @Tags paints
// @Accept json
// @Produce json
// @Param paint body service.CreatePaintRequest true "Paint data"
// @Success 201 {object} service.PaintResponse "Successfully created paint"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Paint already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /paints [post]
func (h *PaintHandler) CreatePaint(c *gin.Context) {
	var req service.CreatePaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	paint, err := h.service.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPaintExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidPaintType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create paint", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusCreated, paint)
}

// GetPaint handles GET /api/v1/paints/:id
// @Summary Get paint by ID
// @Tags paints
// @Produce json
// @Param id path string true "Paint ID (UUID)"
// @Success 200 {object} service.PaintResponse "Successfully retrieved paint"
// @Failure 400 {object} map[string]interface{} "Invalid paint ID"
// @Failure 404 {object} map[string]interface{} "Paint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /paints/{id} [get]
func (h *PaintHandler) GetPaint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paint ID: invalid UUID format"})
		return
	}

	paint, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrPaintNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get paint", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, paint)
}

// ListPaints handles GET /api/v1/paints
// @Summary List all paints
// @Tags paints
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.PaintListResponse "Successfully retrieved paints"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /paints [get]
func (h *PaintHandler) ListPaints(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	resp, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get paints", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetLowStockPaints handles GET /api/v1/paints/low-stock
// @Summary List paints at or below the stock threshold
// @Description List paints whose stock is at or below the configured minimum, sorted by stock ascending
// @Tags paints
// @Produce json
// @Success 200 {object} service.LowStockResponse "Low stock paints and the active threshold"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /paints/low-stock [get]
func (h *PaintHandler) GetLowStockPaints(c *gin.Context) {
	resp, err := h.service.GetLowStock()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get low stock paints", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePaint handles PUT /api/v1/paints/:id
// @Summary Update a paint
// @Tags paints
// @Accept json
// @Produce json
// @Param id path string true "Paint ID (UUID)"
// @Param paint body service.UpdatePaintRequest true "Fields to update"
// @Success 200 {object} service.PaintResponse "Successfully updated paint"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Paint not found"
// @Failure 409 {object} map[string]interface{} "Paint already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /paints/{id} [put]
func (h *PaintHandler) UpdatePaint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paint ID: invalid UUID format"})
		return
	}

	var req service.UpdatePaintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	paint, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPaintNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrPaintExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInvalidPaintType):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update paint", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, paint)
}

// DeletePaint handles DELETE /api/v1/paints/:id
// @Summary Delete a paint
// @Description Delete a paint and remove it from every model's paint recipe
// @Tags paints
// @Produce json
// @Param id path string true "Paint ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted paint"
// @Failure 400 {object} map[string]interface{} "Invalid paint ID"
// @Failure 404 {object} map[string]interface{} "Paint not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /paints/{id} [delete]
func (h *PaintHandler) DeletePaint(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid paint ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrPaintNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete paint", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Paint deleted successfully"})
}
