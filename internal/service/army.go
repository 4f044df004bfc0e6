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

// ArmyService handles business logic for armies
type ArmyService struct {
	repo           repository.ArmyRepositoryInterface
	gameSystemRepo repository.GameSystemRepositoryInterface
	validator      *validator.Validate
	log            *logger.Logger
}

// NewArmyService creates a new army service
func NewArmyService(repo repository.ArmyRepositoryInterface, gameSystemRepo repository.GameSystemRepositoryInterface, validator *validator.Validate) *ArmyService {
	return &ArmyService{
		repo:           repo,
		gameSystemRepo: gameSystemRepo,
		validator:      validator,
		log:            logger.WithComponent("army_service"),
	}
}

// CreateArmyRequest represents the request to create an army
type CreateArmyRequest struct {
	Name         string    `json:"name" validate:"required,min=1,max=100"`
	GameSystemID uuid.UUID `json:"game_system_id" validate:"required"`
}

// UpdateArmyRequest represents the request to update an army
type UpdateArmyRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}

// ArmyResponse represents the response for army operations
type ArmyResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	GameSystemID uuid.UUID `json:"game_system_id"`
	CreatedAt    string    `json:"created_at"`
	LastUpdated  string    `json:"last_updated"`
}

// ArmyListResponse represents a paginated list of armies
type ArmyListResponse struct {
	Armies   []ArmyResponse `json:"armies"`
	Total    int64          `json:"total"`
	Page     int            `json:"page"`
	PageSize int            `json:"page_size"`
}

// Create creates a new army. The referenced game system must exist;
// this is the only point where the reference is enforced.
func (s *ArmyService) Create(req *CreateArmyRequest) (*ArmyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if _, err := s.gameSystemRepo.GetByID(req.GameSystemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameSystemNotFound
		}
		return nil, fmt.Errorf("failed to check game system: %w", err)
	}

	existing, err := s.repo.GetByName(req.GameSystemID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing army: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrArmyExists
	}

	army := &models.Army{
		Name:         req.Name,
		GameSystemID: req.GameSystemID,
	}

	if err := s.repo.Create(army); err != nil {
		return nil, fmt.Errorf("failed to create army: %w", err)
	}

	return s.toResponse(army), nil
}

// GetByID retrieves an army by ID
func (s *ArmyService) GetByID(id uuid.UUID) (*ArmyResponse, error) {
	army, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArmyNotFound
		}
		return nil, fmt.Errorf("failed to get army: %w", err)
	}

	return s.toResponse(army), nil
}

// GetAll retrieves all armies with pagination
func (s *ArmyService) GetAll(page, pageSize int) (*ArmyListResponse, error) {
	page, pageSize = normalizePage(page, pageSize, 100)

	offset := (page - 1) * pageSize
	armies, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get armies: %w", err)
	}

	return s.toListResponse(armies, total, page, pageSize), nil
}

// GetByGameSystem retrieves armies belonging to a game system
func (s *ArmyService) GetByGameSystem(gameSystemID uuid.UUID, page, pageSize int) (*ArmyListResponse, error) {
	page, pageSize = normalizePage(page, pageSize, 100)

	offset := (page - 1) * pageSize
	armies, total, err := s.repo.GetByGameSystemID(gameSystemID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get armies: %w", err)
	}

	return s.toListResponse(armies, total, page, pageSize), nil
}

// Update updates an army
func (s *ArmyService) Update(id uuid.UUID, req *UpdateArmyRequest) (*ArmyResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	army, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrArmyNotFound
		}
		return nil, fmt.Errorf("failed to get army: %w", err)
	}

	existing, err := s.repo.GetByName(army.GameSystemID, req.Name)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing army: %w", err)
	}
	if existing != nil && existing.ID != id {
		return nil, apperrors.ErrArmyExists
	}

	army.Name = req.Name
	if err := s.repo.Update(army); err != nil {
		return nil, fmt.Errorf("failed to update army: %w", err)
	}

	return s.toResponse(army), nil
}

// Delete removes an army. Models keep existing with the army link pulled.
func (s *ArmyService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrArmyNotFound
		}
		return fmt.Errorf("failed to delete army: %w", err)
	}

	s.log.WithField("army_id", id).Info("army deleted and detached from models")
	return nil
}

func (s *ArmyService) toResponse(army *models.Army) *ArmyResponse {
	return &ArmyResponse{
		ID:           army.ID,
		Name:         army.Name,
		GameSystemID: army.GameSystemID,
		CreatedAt:    army.CreatedAt.Format(timeFormat),
		LastUpdated:  army.UpdatedAt.Format(timeFormat),
	}
}

func (s *ArmyService) toListResponse(armies []models.Army, total int64, page, pageSize int) *ArmyListResponse {
	responses := make([]ArmyResponse, len(armies))
	for i, army := range armies {
		responses[i] = *s.toResponse(&army)
	}
	return &ArmyListResponse{
		Armies:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}
