package service

import (
	"errors"
	"fmt"

	"modelforge-backend/internal/database/models"
	apperrors "modelforge-backend/internal/errors"
	"modelforge-backend/internal/logger"
	"modelforge-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameSystemService handles business logic for game systems
type GameSystemService struct {
	repo      repository.GameSystemRepositoryInterface
	validator *validator.Validate
	log       *logger.Logger
}

// NewGameSystemService creates a new game system service
func NewGameSystemService(repo repository.GameSystemRepositoryInterface, validator *validator.Validate) *GameSystemService {
	return &GameSystemService{
		repo:      repo,
		validator: validator,
		log:       logger.WithComponent("game_system_service"),
	}
}

// CreateGameSystemRequest represents the request to create a game system
type CreateGameSystemRequest struct {
	Name            string `json:"name" validate:"required,min=1,max=100"`
	PrimaryColor    string `json:"primary_color,omitempty" validate:"max=20"`
	SecondaryColor  string `json:"secondary_color,omitempty" validate:"max=20"`
	BackgroundColor string `json:"background_color,omitempty" validate:"max=20"`
}

// UpdateGameSystemRequest represents the request to update a game system
type UpdateGameSystemRequest struct {
	Name            *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	PrimaryColor    *string `json:"primary_color,omitempty" validate:"omitempty,max=20"`
	SecondaryColor  *string `json:"secondary_color,omitempty" validate:"omitempty,max=20"`
	BackgroundColor *string `json:"background_color,omitempty" validate:"omitempty,max=20"`
}

// GameSystemResponse represents the response for game system operations
type GameSystemResponse struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	PrimaryColor    string    `json:"primary_color,omitempty"`
	SecondaryColor  string    `json:"secondary_color,omitempty"`
	BackgroundColor string    `json:"background_color,omitempty"`
	CreatedAt       string    `json:"created_at"`
	LastUpdated     string    `json:"last_updated"`
}

// GameSystemListResponse represents a paginated list of game systems
type GameSystemListResponse struct {
	GameSystems []GameSystemResponse `json:"game_systems"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// DeleteGameSystemResponse reports what the cascade removed
type DeleteGameSystemResponse struct {
	ArmiesDeleted int64 `json:"armies_deleted"`
	ModelsDeleted int64 `json:"models_deleted"`
}

// Create creates a new game system
func (s *GameSystemService) Create(req *CreateGameSystemRequest) (*GameSystemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	existing, err := s.repo.GetByName(req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing game system: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrGameSystemExists
	}

	system := &models.GameSystem{
		Name:            req.Name,
		PrimaryColor:    req.PrimaryColor,
		SecondaryColor:  req.SecondaryColor,
		BackgroundColor: req.BackgroundColor,
	}

	if err := s.repo.Create(system); err != nil {
		return nil, fmt.Errorf("failed to create game system: %w", err)
	}

	return s.toResponse(system), nil
}

// GetByID retrieves a game system by ID
func (s *GameSystemService) GetByID(id uuid.UUID) (*GameSystemResponse, error) {
	system, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameSystemNotFound
		}
		return nil, fmt.Errorf("failed to get game system: %w", err)
	}

	return s.toResponse(system), nil
}

// GetAll retrieves all game systems with pagination
func (s *GameSystemService) GetAll(page, pageSize int) (*GameSystemListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 1000 {
		pageSize = 100
	}

	offset := (page - 1) * pageSize
	systems, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get game systems: %w", err)
	}

	responses := make([]GameSystemResponse, len(systems))
	for i, system := range systems {
		responses[i] = *s.toResponse(&system)
	}

	return &GameSystemListResponse{
		GameSystems: responses,
		Total:       total,
		Page:        page,
		PageSize:    pageSize,
	}, nil
}

// Update updates a game system
func (s *GameSystemService) Update(id uuid.UUID, req *UpdateGameSystemRequest) (*GameSystemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	system, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameSystemNotFound
		}
		return nil, fmt.Errorf("failed to get game system: %w", err)
	}

	if req.Name != nil {
		existing, err := s.repo.GetByName(*req.Name)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to check existing game system: %w", err)
		}
		if existing != nil && existing.ID != id {
			return nil, apperrors.ErrGameSystemExists
		}
		system.Name = *req.Name
	}
	if req.PrimaryColor != nil {
		system.PrimaryColor = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		system.SecondaryColor = *req.SecondaryColor
	}
	if req.BackgroundColor != nil {
		system.BackgroundColor = *req.BackgroundColor
	}

	if err := s.repo.Update(system); err != nil {
		return nil, fmt.Errorf("failed to update game system: %w", err)
	}

	return s.toResponse(system), nil
}

// Delete deletes a game system, cascading to its armies and to models
// owned by the system or linked to its armies
func (s *GameSystemService) Delete(id uuid.UUID) (*DeleteGameSystemResponse, error) {
	armies, modelsGone, err := s.repo.DeleteCascade(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameSystemNotFound
		}
		return nil, fmt.Errorf("failed to delete game system: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"game_system_id": id,
		"armies_deleted": armies,
		"models_deleted": modelsGone,
	}).Info("game system deleted with cascade")

	return &DeleteGameSystemResponse{
		ArmiesDeleted: armies,
		ModelsDeleted: modelsGone,
	}, nil
}

// toResponse converts a GameSystem model to API response
func (s *GameSystemService) toResponse(system *models.GameSystem) *GameSystemResponse {
	return &GameSystemResponse{
		ID:              system.ID,
		Name:            system.Name,
		PrimaryColor:    system.PrimaryColor,
		SecondaryColor:  system.SecondaryColor,
		BackgroundColor: system.BackgroundColor,
		CreatedAt:       system.CreatedAt.Format(timeFormat),
		LastUpdated:     system.UpdatedAt.Format(timeFormat),
	}
}
