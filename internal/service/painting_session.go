package service

import (
	"errors"
	"fmt"
	"time"

	"modelforge-backend/internal/database/models"
	apperrors "modelforge-backend/internal/errors"
	"modelforge-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaintingSessionService handles business logic for painting sessions
type PaintingSessionService struct {
	repo           repository.PaintingSessionRepositoryInterface
	modelRepo      repository.ModelRepositoryInterface
	gameSystemRepo repository.GameSystemRepositoryInterface
	validator      *validator.Validate
}

// NewPaintingSessionService creates a new painting session service
func NewPaintingSessionService(
	repo repository.PaintingSessionRepositoryInterface,
	modelRepo repository.ModelRepositoryInterface,
	gameSystemRepo repository.GameSystemRepositoryInterface,
	validator *validator.Validate,
) *PaintingSessionService {
	return &PaintingSessionService{
		repo:           repo,
		modelRepo:      modelRepo,
		gameSystemRepo: gameSystemRepo,
		validator:      validator,
	}
}

// CreatePaintingSessionRequest represents the request to create a session
type CreatePaintingSessionRequest struct {
	Title        string      `json:"title" validate:"required,min=1,max=200"`
	Start        time.Time   `json:"start" validate:"required"`
	End          time.Time   `json:"end" validate:"required"`
	Notes        string      `json:"notes,omitempty" validate:"max=2000"`
	ModelIDs     []uuid.UUID `json:"model_ids"`
	GameSystemID *uuid.UUID  `json:"game_system_id,omitempty"`
}

// UpdatePaintingSessionRequest represents a partial update to a session
type UpdatePaintingSessionRequest struct {
	Title        *string      `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Start        *time.Time   `json:"start,omitempty"`
	End          *time.Time   `json:"end,omitempty"`
	Notes        *string      `json:"notes,omitempty" validate:"omitempty,max=2000"`
	ModelIDs     *[]uuid.UUID `json:"model_ids,omitempty"`
	GameSystemID *uuid.UUID   `json:"game_system_id,omitempty"`
}

// PaintingSessionResponse represents the response for session operations
type PaintingSessionResponse struct {
	ID           uuid.UUID   `json:"id"`
	Title        string      `json:"title"`
	Start        string      `json:"start"`
	End          string      `json:"end"`
	Notes        string      `json:"notes,omitempty"`
	ModelIDs     []uuid.UUID `json:"model_ids"`
	GameSystemID *uuid.UUID  `json:"game_system_id,omitempty"`
	CreatedAt    string      `json:"created_at"`
	LastUpdated  string      `json:"last_updated"`
}

// PaintingSessionListResponse represents a list of sessions
type PaintingSessionListResponse struct {
	Sessions []PaintingSessionResponse `json:"sessions"`
	Total    int64                     `json:"total"`
	Page     int                       `json:"page"`
	PageSize int                       `json:"page_size"`
}

func (s *PaintingSessionService) resolveModels(ids []uuid.UUID) ([]models.Model, error) {
	linked := make([]models.Model, 0, len(ids))
	for _, id := range ids {
		model, err := s.modelRepo.GetByID(id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrModelNotFound
			}
			return nil, fmt.Errorf("failed to resolve model: %w", err)
		}
		linked = append(linked, *model)
	}
	return linked, nil
}

// Create creates a new painting session
func (s *PaintingSessionService) Create(req *CreatePaintingSessionRequest) (*PaintingSessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.End.After(req.Start) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	if req.GameSystemID != nil {
		if _, err := s.gameSystemRepo.GetByID(*req.GameSystemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrGameSystemNotFound
			}
			return nil, fmt.Errorf("failed to check game system: %w", err)
		}
	}

	linked, err := s.resolveModels(req.ModelIDs)
	if err != nil {
		return nil, err
	}

	session := &models.PaintingSession{
		Title:        req.Title,
		Start:        req.Start,
		End:          req.End,
		Notes:        req.Notes,
		GameSystemID: req.GameSystemID,
		Models:       linked,
	}

	if err := s.repo.Create(session); err != nil {
		return nil, fmt.Errorf("failed to create painting session: %w", err)
	}

	return s.toResponse(session), nil
}

// GetByID retrieves a session by ID
func (s *PaintingSessionService) GetByID(id uuid.UUID) (*PaintingSessionResponse, error) {
	session, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaintingSessionNotFound
		}
		return nil, fmt.Errorf("failed to get painting session: %w", err)
	}

	return s.toResponse(session), nil
}

// GetAll retrieves all sessions with pagination
func (s *PaintingSessionService) GetAll(page, pageSize int) (*PaintingSessionListResponse, error) {
	page, pageSize = normalizePage(page, pageSize, 100)

	offset := (page - 1) * pageSize
	sessions, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get painting sessions: %w", err)
	}

	responses := make([]PaintingSessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = *s.toResponse(&sessions[i])
	}

	return &PaintingSessionListResponse{
		Sessions: responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetInRange returns sessions overlapping [from, to), for the calendar
func (s *PaintingSessionService) GetInRange(from, to time.Time) ([]PaintingSessionResponse, error) {
	if !to.After(from) {
		return nil, apperrors.ErrInvalidTimeRange
	}

	sessions, err := s.repo.GetInRange(from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to get painting sessions: %w", err)
	}

	responses := make([]PaintingSessionResponse, len(sessions))
	for i := range sessions {
		responses[i] = *s.toResponse(&sessions[i])
	}
	return responses, nil
}

// Update applies a partial update to a session
func (s *PaintingSessionService) Update(id uuid.UUID, req *UpdatePaintingSessionRequest) (*PaintingSessionResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	session, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaintingSessionNotFound
		}
		return nil, fmt.Errorf("failed to get painting session: %w", err)
	}

	if req.Title != nil {
		session.Title = *req.Title
	}
	if req.Start != nil {
		session.Start = *req.Start
	}
	if req.End != nil {
		session.End = *req.End
	}
	if !session.End.After(session.Start) {
		return nil, apperrors.ErrInvalidTimeRange
	}
	if req.Notes != nil {
		session.Notes = *req.Notes
	}
	if req.GameSystemID != nil {
		if _, err := s.gameSystemRepo.GetByID(*req.GameSystemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrGameSystemNotFound
			}
			return nil, fmt.Errorf("failed to check game system: %w", err)
		}
		session.GameSystemID = req.GameSystemID
	}

	if err := s.repo.Update(session); err != nil {
		return nil, fmt.Errorf("failed to update painting session: %w", err)
	}

	if req.ModelIDs != nil {
		linked, err := s.resolveModels(*req.ModelIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceModels(session, linked); err != nil {
			return nil, fmt.Errorf("failed to update session models: %w", err)
		}
	}

	return s.toResponse(session), nil
}

// Delete removes a session
func (s *PaintingSessionService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPaintingSessionNotFound
		}
		return fmt.Errorf("failed to delete painting session: %w", err)
	}
	return nil
}

func (s *PaintingSessionService) toResponse(session *models.PaintingSession) *PaintingSessionResponse {
	modelIDs := make([]uuid.UUID, len(session.Models))
	for i, model := range session.Models {
		modelIDs[i] = model.ID
	}

	return &PaintingSessionResponse{
		ID:           session.ID,
		Title:        session.Title,
		Start:        session.Start.Format(timeFormat),
		End:          session.End.Format(timeFormat),
		Notes:        session.Notes,
		ModelIDs:     modelIDs,
		GameSystemID: session.GameSystemID,
		CreatedAt:    session.CreatedAt.Format(timeFormat),
		LastUpdated:  session.UpdatedAt.Format(timeFormat),
	}
}
