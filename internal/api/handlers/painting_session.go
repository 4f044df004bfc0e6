package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	apperrors "modelforge-backend/internal/errors"
	"modelforge-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// PaintingSessionHandler handles HTTP requests for painting sessions
type PaintingSessionHandler struct {
	service service.PaintingSessionServiceInterface
}

// NewPaintingSessionHandler creates a new painting session handler
func NewPaintingSessionHandler(service service.PaintingSessionServiceInterface) *PaintingSessionHandler {
	return &PaintingSessionHandler{service: service}
}

func mapSessionError(c *gin.Context, err error, fallback string) {
	var validationErr *apperrors.ValidationError
	switch {
	case errors.Is(err, apperrors.ErrPaintingSessionNotFound),
		errors.Is(err, apperrors.ErrModelNotFound),
		errors.Is(err, apperrors.ErrGameSystemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidTimeRange),
		errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback, "details": err.Error()})
	}
}

// CreatePaintingSession handles POST /api/v1/painting-sessions
// @Summary Create a new painting session
// @Tags painting-sessions
// @Accept json
// @Produce json
// @Param session body service.CreatePaintingSessionRequest true "Session data"
// @Success 201 {object} service.PaintingSessionResponse "Successfully created session"
// @Failure 400 {object} map[string]interface{} "Invalid request body or time range"
// @Failure 404 {object} map[string]interface{} "Referenced model or game system not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /painting-sessions [post]
func (h *PaintingSessionHandler) CreatePaintingSession(c *gin.Context) {
	var req service.CreatePaintingSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	session, err := h.service.Create(&req)
	if err != nil {
		mapSessionError(c, err, "Failed to create painting session")
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetPaintingSession handles GET /api/v1/painting-sessions/:id
// @Summary Get painting session by ID
// @Tags painting-sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.PaintingSessionResponse "Successfully retrieved session"
// @Failure 400 {object} map[string]interface{} "Invalid session ID"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /painting-sessions/{id} [get]
func (h *PaintingSessionHandler) GetPaintingSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID: invalid UUID format"})
		return
	}

	session, err := h.service.GetByID(id)
	if err != nil {
		mapSessionError(c, err, "Failed to get painting session")
		return
	}

	c.JSON(http.StatusOK, session)
}

// ListPaintingSessions handles GET /api/v1/painting-sessions
// @Summary List painting sessions
// @Description List all painting sessions, or only those overlapping the from/to window when both are given
// @Tags painting-sessions
// @Produce json
// @Param from query string false "Window start (RFC 3339)"
// @Param to query string false "Window end (RFC 3339)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(100)
// @Success 200 {object} service.PaintingSessionListResponse "Successfully retrieved sessions"
// @Failure 400 {object} map[string]interface{} "Invalid time window"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /painting-sessions [get]
func (h *PaintingSessionHandler) ListPaintingSessions(c *gin.Context) {
	fromRaw := c.Query("from")
	toRaw := c.Query("to")

	if fromRaw != "" || toRaw != "" {
		from, err := time.Parse(time.RFC3339, fromRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'from' timestamp: expected RFC 3339"})
			return
		}
		to, err := time.Parse(time.RFC3339, toRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid 'to' timestamp: expected RFC 3339"})
			return
		}

		sessions, err := h.service.GetInRange(from, to)
		if err != nil {
			mapSessionError(c, err, "Failed to get painting sessions")
			return
		}

		c.JSON(http.StatusOK, service.PaintingSessionListResponse{
			Sessions: sessions,
			Total:    int64(len(sessions)),
			Page:     1,
			PageSize: len(sessions),
		})
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "100"))

	resp, err := h.service.GetAll(page, pageSize)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get painting sessions", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// UpdatePaintingSession handles PUT /api/v1/painting-sessions/:id
// @Summary Update a painting session
// @Tags painting-sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param session body service.UpdatePaintingSessionRequest true "Fields to update"
// @Success 200 {object} service.PaintingSessionResponse "Successfully updated session"
// @Failure 400 {object} map[string]interface{} "Invalid request"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /painting-sessions/{id} [put]
func (h *PaintingSessionHandler) UpdatePaintingSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID: invalid UUID format"})
		return
	}

	var req service.UpdatePaintingSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	session, err := h.service.Update(id, &req)
	if err != nil {
		mapSessionError(c, err, "Failed to update painting session")
		return
	}

	c.JSON(http.StatusOK, session)
}

// DeletePaintingSession handles DELETE /api/v1/painting-sessions/:id
// @Summary Delete a painting session
// @Tags painting-sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} map[string]interface{} "Successfully deleted session"
// @Failure 400 {object} map[string]interface{} "Invalid session ID"
// @Failure 404 {object} map[string]interface{} "Session not found"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Security BearerAuth
// @Router /painting-sessions/{id} [delete]
func (h *PaintingSessionHandler) DeletePaintingSession(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session ID: invalid UUID format"})
		return
	}

	if err := h.service.Delete(id); err != nil {
		mapSessionError(c, err, "Failed to delete painting session")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Painting session deleted successfully"})
}
