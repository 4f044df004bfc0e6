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

// ModelHandler handles HTTP requests for miniature models
type ModelHandler struct {
	service service.ModelServiceInterface
}

// NewModelHandler creates a new model handler
func NewModelHandler(service service.ModelServiceInterface) *ModelHandler {
	return &ModelHandler{service: service}
}

// mapModelError writes the HTTP response for a model service error
func mapModelError(c *gin.Context, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.Is(err, apperrors.ErrModelNotFound),
		errors.Is(err, apperrors.ErrGameSystemNotFound),
		errors.Is(err, apperrors.ErrArmyNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrInvalidQuantity),
		errors.Is(err, apperrors.ErrBulkUpdateIncomplete),
		errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

// CreateModel handles POST /api/v1/models
// @Summary Create a new model
// @Description Create a miniature model with optional army links and paint recipe
// @Tags models
// @Accept json
// @Produce json
// @Param model body service.CreateModelRequest true "Model data"
// @Success 201 {object} service.ModelResponse "Successfully created model"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Referenced game system or army not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /models [post]
func (h *ModelHandler) CreateModel(c *gin.Context) {
	var req service.CreateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	model, err := h.service.Create(&req)
	if err != nil {
		mapModelError(c, err, "Failed to create model")
		return
	}

	c.JSON(http.StatusCreated, model)
}

// GetModel handles GET /api/v1/models/:id
// @Summary Get model by ID
// @Tags models
// @Produce json
// @Param id path string true "Model ID (UUID)"
// @Success 200 {object} service.ModelResponse "Successfully retrieved model"
// @Failure 400 {object} map[string]interface{} "Invalid model ID"
// @Failure 404 {object} map[string]interface{} "Model not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /models/{id} [get]
func (h *ModelHandler) GetModel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid model ID: invalid UUID format"})
		return
	}

	model, err := h.service.GetByID(id)
	if err != nil {
		mapModelError(c, err, "Failed to get model")
		return
	}

	c.JSON(http.StatusOK, model)
}

// ListModels handles GET /api/v1/models
// @Summary List all models
// @Tags models
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.ModelListResponse "Successfully retrieved models"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /models [get]
func (h *ModelHandler) ListModels(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	resp, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get models", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateModel handles PUT /api/v1/models/:id
// @Summary Update a model
// @Description Apply a partial update to a model. Omitted fields are left unchanged.
// @Tags models
// @Accept json
// @Produce json
// @Param id path string true "Model ID (UUID)"
// @Param model body service.UpdateModelRequest true "Fields to update"
// @Success 200 {object} service.ModelResponse "Successfully updated model"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Model not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /models/{id} [put]
func (h *ModelHandler) UpdateModel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid model ID: invalid UUID format"})
		return
	}

	var req service.UpdateModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	model, err := h.service.Update(id, &req)
	if err != nil {
		mapModelError(c, err, "Failed to update model")
		return
	}

	c.JSON(http.StatusOK, model)
}

// DeleteModel handles DELETE /api/v1/models/:id
// @Summary Delete a model
// @Tags models
// @Produce json
// @Param id path string true "Model ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted model"
// @Failure 400 {object} map[string]interface{} "Invalid model ID"
// @Failure 404 {object} map[string]interface{} "Model not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /models/{id} [delete]
func (h *ModelHandler) DeleteModel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid model ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		mapModelError(c, err, "Failed to delete model")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Model deleted successfully"})
}

// BulkAddModels handles POST /api/v1/models/bulk
// @Summary Bulk create models
// @Description Create many models in one transactional insert. Any invalid entry rejects the whole batch.
// @Tags models
// @Accept json
// @Produce json
// @Param request body service.BulkAddModelsRequest true "Models to create"
// @Success 201 {object} service.BulkAddModelsResponse "Successfully created models"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 404 {object} map[string]interface{} "Referenced game system or army not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /models/bulk [post]
func (h *ModelHandler) BulkAddModels(c *gin.Context) {
	var req service.BulkAddModelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.BulkAdd(&req)
	if err != nil {
		mapModelError(c, err, "Failed to bulk create models")
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// BulkUpdateModels handles PUT /api/v1/models/bulk
// @Summary Bulk update models
// @Description Apply the same partial update to many models. The batch is all-or-nothing: any unknown ID rejects the whole request.
// @Tags models
// @Accept json
// @Produce json
// @Param request body service.BulkUpdateModelsRequest true "IDs and fields to update"
// @Success 200 {object} service.BulkUpdateModelsResponse "Successfully updated models"
// @Failure 400 {object} map[string]interface{} "Invalid request or unknown model ID in batch"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /models/bulk [put]
func (h *ModelHandler) BulkUpdateModels(c *gin.Context) {
	var req service.BulkUpdateModelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.BulkUpdate(&req)
	if err != nil {
		mapModelError(c, err, "Failed to bulk update models")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// BulkDeleteModels handles POST /api/v1/models/bulk-delete
// @Summary Bulk delete models
// @Description Delete many models at once. Unknown IDs are ignored.
// @Tags models
// @Accept json
// @Produce json
// @Param request body service.BulkDeleteModelsRequest true "IDs to delete"
// @Success 200 {object} service.BulkDeleteModelsResponse "Deletion summary"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /models/bulk-delete [post]
func (h *ModelHandler) BulkDeleteModels(c *gin.Context) {
	var req service.BulkDeleteModelsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	resp, err := h.service.BulkDelete(&req)
	if err != nil {
		mapModelError(c, err, "Failed to bulk delete models")
		return
	}

	c.JSON(http.StatusOK, resp)
}
