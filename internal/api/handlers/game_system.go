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

// GameSystemHandler handles HTTP requests for game systems
type GameSystemHandler struct {
	service service.GameSystemServiceInterface
}

// NewGameSystemHandler creates a new game system handler
func NewGameSystemHandler(service service.GameSystemServiceInterface) *GameSystemHandler {
	return &GameSystemHandler{service: service}
}

// CreateGameSystem handles POST /api/v1/game-systems
// @Summary Create a new game system
// @Tags game-systems
// @Accept json
// @Produce json
// @Param game_system body service.CreateGameSystemRequest true "Game system data"
// @Success 201 {object} service.GameSystemResponse "Successfully created game system"
// @Failure 400 {object} map[string]interface{} "Invalid request body"
// @Failure 409 {object} map[string]interface{} "Game system already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /game-systems [post]
func (h *GameSystemHandler) CreateGameSystem(c *gin.Context) {
	var req service.CreateGameSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	system, err := h.service.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameSystemExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create game system", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, system)
}

// GetGameSystem handles GET /api/v1/game-systems/:id
// @Summary Get game system by ID
// @Tags game-systems
// @Produce json
// @Param id path string true "Game system ID (UUID)"
// @Success 200 {object} service.GameSystemResponse "Successfully retrieved game system"
// @Failure 400 {object} map[string]interface{} "Invalid game system ID"
// @Failure 404 {object} map[string]interface{} "Game system not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /game-systems/{id} [get]
func (h *GameSystemHandler) GetGameSystem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game system ID: invalid UUID format"})
		return
	}

	system, err := h.service.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameSystemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get game system", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, system)
}

// ListGameSystems handles GET /api/v1/game-systems
// @Summary List all game systems
// @Tags game-systems
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.GameSystemListResponse "Successfully retrieved game systems"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /game-systems [get]
func (h *GameSystemHandler) ListGameSystems(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	resp, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get game systems", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdateGameSystem handles PUT /api/v1/game-systems/:id
// @Summary Update a game system
// @Tags game-systems
// @Accept json
// @Produce json
// @Param id path string true "Game system ID (UUID)"
// @Param game_system body service.UpdateGameSystemRequest true "Fields to update"
// @Success 200 {object} service.GameSystemResponse "Successfully updated game system"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Game system not found"
// @Failure 409 {object} map[string]interface{} "Game system already exists"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /game-systems/{id} [put]
func (h *GameSystemHandler) UpdateGameSystem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game system ID: invalid UUID format"})
		return
	}

	var req service.UpdateGameSystemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	system, err := h.service.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrGameSystemNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrGameSystemExists):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update game system", "details": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, system)
}

// DeleteGameSystem handles DELETE /api/v1/game-systems/:id
// @Summary Delete a game system
// @Description Delete a game system, cascading to its armies and the models owned by the system or linked to its armies
// @Tags game-systems
// @Produce json
// @Param id path string true "Game system ID (UUID)"
// @Success 200 {object} service.DeleteGameSystemResponse "Cascade summary"
// @Failure 400 {object} map[string]interface{} "Invalid game system ID"
// @Failure 404 {object} map[string]interface{} "Game system not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /game-systems/{id} [delete]
func (h *GameSystemHandler) DeleteGameSystem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid game system ID: invalid UUID format"})
		return
	}

	result, err := h.service.Delete(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrGameSystemNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete game system", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}
