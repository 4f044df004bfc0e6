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

// ModelService handles business logic for miniature models
type ModelService struct {
	repo           repository.ModelRepositoryInterface
	armyRepo       repository.ArmyRepositoryInterface
	gameSystemRepo repository.GameSystemRepositoryInterface
	validator      *validator.Validate
	log            *logger.Logger
}

// NewModelService creates a new model service
func NewModelService(
	repo repository.ModelRepositoryInterface,
	armyRepo repository.ArmyRepositoryInterface,
	gameSystemRepo repository.GameSystemRepositoryInterface,
	validator *validator.Validate,
) *ModelService {
	return &ModelService{
		repo:           repo,
		armyRepo:       armyRepo,
		gameSystemRepo: gameSystemRepo,
		validator:      validator,
		log:            logger.WithComponent("model_service"),
	}
}

// PaintRecipeInput is one recipe line on a create/update request
type PaintRecipeInput struct {
	PaintID uuid.UUID `json:"paint_id" validate:"required"`
	Usage   string    `json:"usage" validate:"max=200"`
}

// CreateModelRequest represents the request to create a model
type CreateModelRequest struct {
	Name          string             `json:"name" validate:"required,min=1,max=200"`
	GameSystemID  uuid.UUID          `json:"game_system_id" validate:"required"`
	ArmyIDs       []uuid.UUID        `json:"army_ids"`
	Description   string             `json:"description,omitempty" validate:"max=2000"`
	Quantity      int                `json:"quantity" validate:"required,gt=0"`
	Status        string             `json:"status" validate:"required"`
	ImageURL      string             `json:"image_url,omitempty" validate:"max=500"`
	PaintingNotes string             `json:"painting_notes,omitempty" validate:"max=2000"`
	PaintRecipe   []PaintRecipeInput `json:"paint_recipe,omitempty" validate:"dive"`
}

// UpdateModelRequest represents a partial update to a model. Only
// non-nil fields are applied.
type UpdateModelRequest struct {
	Name          *string             `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	ArmyIDs       *[]uuid.UUID        `json:"army_ids,omitempty"`
	Description   *string             `json:"description,omitempty" validate:"omitempty,max=2000"`
	Quantity      *int                `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Status        *string             `json:"status,omitempty"`
	ImageURL      *string             `json:"image_url,omitempty" validate:"omitempty,max=500"`
	PaintingNotes *string             `json:"painting_notes,omitempty" validate:"omitempty,max=2000"`
	PaintRecipe   *[]PaintRecipeInput `json:"paint_recipe,omitempty" validate:"omitempty,dive"`
}

// BulkAddModelsRequest creates many models in one transactional insert
type BulkAddModelsRequest struct {
	Models []CreateModelRequest `json:"models" validate:"required,min=1,dive"`
}

// BulkUpdateModelsRequest applies the same partial update to many models
type BulkUpdateModelsRequest struct {
	IDs           []uuid.UUID `json:"ids" validate:"required,min=1"`
	Status        *string     `json:"status,omitempty"`
	Quantity      *int        `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Description   *string     `json:"description,omitempty" validate:"omitempty,max=2000"`
	PaintingNotes *string     `json:"painting_notes,omitempty" validate:"omitempty,max=2000"`
}

// BulkDeleteModelsRequest removes many models at once
type BulkDeleteModelsRequest struct {
	IDs []uuid.UUID `json:"ids" validate:"required,min=1"`
}

// PaintRecipeEntryResponse is one recipe line in API responses
type PaintRecipeEntryResponse struct {
	PaintID uuid.UUID `json:"paint_id"`
	Usage   string    `json:"usage,omitempty"`
}

// ModelResponse represents the response for model operations
type ModelResponse struct {
	ID            uuid.UUID                  `json:"id"`
	Name          string                     `json:"name"`
	GameSystemID  uuid.UUID                  `json:"game_system_id"`
	ArmyIDs       []uuid.UUID                `json:"army_ids"`
	Description   string                     `json:"description,omitempty"`
	Quantity      int                        `json:"quantity"`
	Status        models.PaintingStatus      `json:"status"`
	ImageURL      string                     `json:"image_url,omitempty"`
	PaintingNotes string                     `json:"painting_notes,omitempty"`
	PaintRecipe   []PaintRecipeEntryResponse `json:"paint_recipe,omitempty"`
	CreatedAt     string                     `json:"created_at"`
	LastUpdated   string                     `json:"last_updated"`
}

// ModelListResponse represents a paginated list of models
type ModelListResponse struct {
	Models   []ModelResponse `json:"models"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// BulkAddModelsResponse reports the created models
type BulkAddModelsResponse struct {
	Created int             `json:"created"`
	Models  []ModelResponse `json:"models"`
}

// BulkUpdateModelsResponse reports the updated models
type BulkUpdateModelsResponse struct {
	Updated int             `json:"updated"`
	Models  []ModelResponse `json:"models"`
}

// BulkDeleteModelsResponse reports how many models were removed
type BulkDeleteModelsResponse struct {
	Deleted int64 `json:"deleted"`
}

// resolveArmies loads the armies for the given ids and checks each one
// belongs to the model's game system.
func (s *ModelService) resolveArmies(gameSystemID uuid.UUID, armyIDs []uuid.UUID) ([]models.Army, error) {
	armies := make([]models.Army, 0, len(armyIDs))
	for _, armyID := range armyIDs {
		army, err := s.armyRepo.GetByID(armyID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrArmyNotFound
			}
			return nil, fmt.Errorf("failed to resolve army: %w", err)
		}
		if army.GameSystemID != gameSystemID {
			return nil, &apperrors.ValidationError{
				Field:   "army_ids",
				Message: fmt.Sprintf("army %q belongs to a different game system", army.Name),
			}
		}
		armies = append(armies, *army)
	}
	return armies, nil
}

func recipeFromInputs(inputs []PaintRecipeInput) []models.PaintRecipeEntry {
	entries := make([]models.PaintRecipeEntry, len(inputs))
	for i, in := range inputs {
		entries[i] = models.PaintRecipeEntry{PaintID: in.PaintID, Usage: in.Usage}
	}
	return entries
}

// Create creates a new model
func (s *ModelService) Create(req *CreateModelRequest) (*ModelResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	status, ok := models.ParsePaintingStatus(req.Status)
	if !ok {
		return nil, apperrors.ErrInvalidStatus
	}

	if _, err := s.gameSystemRepo.GetByID(req.GameSystemID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGameSystemNotFound
		}
		return nil, fmt.Errorf("failed to check game system: %w", err)
	}

	armies, err := s.resolveArmies(req.GameSystemID, req.ArmyIDs)
	if err != nil {
		return nil, err
	}

	model := &models.Model{
		Name:          req.Name,
		GameSystemID:  req.GameSystemID,
		Description:   req.Description,
		Quantity:      req.Quantity,
		Status:        status,
		ImageURL:      req.ImageURL,
		PaintingNotes: req.PaintingNotes,
		Armies:        armies,
		PaintRecipe:   recipeFromInputs(req.PaintRecipe),
	}

	if err := s.repo.Create(model); err != nil {
		return nil, fmt.Errorf("failed to create model: %w", err)
	}

	return s.toResponse(model), nil
}

// GetByID retrieves a model by ID
func (s *ModelService) GetByID(id uuid.UUID) (*ModelResponse, error) {
	model, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrModelNotFound
		}
		return nil, fmt.Errorf("failed to get model: %w", err)
	}

	return s.toResponse(model), nil
}

// GetAll retrieves all models with pagination
func (s *ModelService) GetAll(page, pageSize int) (*ModelListResponse, error) {
	page, pageSize = normalizePage(page, pageSize, 100)

	offset := (page - 1) * pageSize
	list, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get models: %w", err)
	}

	responses := make([]ModelResponse, len(list))
	for i := range list {
		responses[i] = *s.toResponse(&list[i])
	}

	return &ModelListResponse{
		Models:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// Update applies a partial update to a model
func (s *ModelService) Update(id uuid.UUID, req *UpdateModelRequest) (*ModelResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	model, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrModelNotFound
		}
		return nil, fmt.Errorf("failed to get model: %w", err)
	}

	if req.Name != nil {
		model.Name = *req.Name
	}
	if req.Description != nil {
		model.Description = *req.Description
	}
	if req.Quantity != nil {
		model.Quantity = *req.Quantity
	}
	if req.Status != nil {
		status, ok := models.ParsePaintingStatus(*req.Status)
		if !ok {
			return nil, apperrors.ErrInvalidStatus
		}
		model.Status = status
	}
	if req.ImageURL != nil {
		model.ImageURL = *req.ImageURL
	}
	if req.PaintingNotes != nil {
		model.PaintingNotes = *req.PaintingNotes
	}

	if err := s.repo.Update(model); err != nil {
		return nil, fmt.Errorf("failed to update model: %w", err)
	}

	if req.ArmyIDs != nil {
		armies, err := s.resolveArmies(model.GameSystemID, *req.ArmyIDs)
		if err != nil {
			return nil, err
		}
		if err := s.repo.ReplaceArmies(model, armies); err != nil {
			return nil, fmt.Errorf("failed to update model armies: %w", err)
		}
	}

	if req.PaintRecipe != nil {
		if err := s.repo.ReplaceRecipe(model, recipeFromInputs(*req.PaintRecipe)); err != nil {
			return nil, fmt.Errorf("failed to update paint recipe: %w", err)
		}
	}

	return s.toResponse(model), nil
}

// Delete removes a model
func (s *ModelService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrModelNotFound
		}
		return fmt.Errorf("failed to delete model: %w", err)
	}
	return nil
}

// BulkAdd creates every listed model in a single transaction. Any
// invalid entry fails the whole batch before anything is inserted.
func (s *ModelService) BulkAdd(req *BulkAddModelsRequest) (*BulkAddModelsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	batch := make([]*models.Model, 0, len(req.Models))
	for i := range req.Models {
		in := &req.Models[i]

		status, ok := models.ParsePaintingStatus(in.Status)
		if !ok {
			return nil, apperrors.ErrInvalidStatus
		}

		if _, err := s.gameSystemRepo.GetByID(in.GameSystemID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrGameSystemNotFound
			}
			return nil, fmt.Errorf("failed to check game system: %w", err)
		}

		armies, err := s.resolveArmies(in.GameSystemID, in.ArmyIDs)
		if err != nil {
			return nil, err
		}

		batch = append(batch, &models.Model{
			Name:          in.Name,
			GameSystemID:  in.GameSystemID,
			Description:   in.Description,
			Quantity:      in.Quantity,
			Status:        status,
			ImageURL:      in.ImageURL,
			PaintingNotes: in.PaintingNotes,
			Armies:        armies,
			PaintRecipe:   recipeFromInputs(in.PaintRecipe),
		})
	}

	if err := s.repo.BulkCreate(batch); err != nil {
		return nil, fmt.Errorf("failed to bulk create models: %w", err)
	}

	responses := make([]ModelResponse, len(batch))
	for i := range batch {
		responses[i] = *s.toResponse(batch[i])
	}

	s.log.WithField("count", len(batch)).Info("bulk model add applied")

	return &BulkAddModelsResponse{
		Created: len(batch),
		Models:  responses,
	}, nil
}

// BulkUpdate applies the same partial update to every listed model.
// The call is all-or-nothing: an unknown id fails the whole batch and
// no model is changed.
func (s *ModelService) BulkUpdate(req *BulkUpdateModelsRequest) (*BulkUpdateModelsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updates := map[string]interface{}{}
	if req.Status != nil {
		status, ok := models.ParsePaintingStatus(*req.Status)
		if !ok {
			return nil, apperrors.ErrInvalidStatus
		}
		updates["status"] = status
	}
	if req.Quantity != nil {
		updates["quantity"] = *req.Quantity
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.PaintingNotes != nil {
		updates["painting_notes"] = *req.PaintingNotes
	}
	if len(updates) == 0 {
		return nil, &apperrors.ValidationError{Message: "no fields to update"}
	}

	updated, err := s.repo.BulkUpdate(req.IDs, updates)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrBulkUpdateIncomplete
		}
		return nil, fmt.Errorf("failed to bulk update models: %w", err)
	}

	responses := make([]ModelResponse, len(updated))
	for i := range updated {
		responses[i] = *s.toResponse(&updated[i])
	}

	s.log.WithField("count", len(updated)).Info("bulk model update applied")

	return &BulkUpdateModelsResponse{
		Updated: len(updated),
		Models:  responses,
	}, nil
}

// BulkDelete removes the listed models. Unknown ids are ignored.
func (s *ModelService) BulkDelete(req *BulkDeleteModelsRequest) (*BulkDeleteModelsResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	deleted, err := s.repo.BulkDelete(req.IDs)
	if err != nil {
		return nil, fmt.Errorf("failed to bulk delete models: %w", err)
	}

	s.log.WithField("count", deleted).Info("bulk model delete applied")

	return &BulkDeleteModelsResponse{Deleted: deleted}, nil
}

// toResponse converts a Model to API response
func (s *ModelService) toResponse(model *models.Model) *ModelResponse {
	recipe := make([]PaintRecipeEntryResponse, len(model.PaintRecipe))
	for i, entry := range model.PaintRecipe {
		recipe[i] = PaintRecipeEntryResponse{PaintID: entry.PaintID, Usage: entry.Usage}
	}

	return &ModelResponse{
		ID:            model.ID,
		Name:          model.Name,
		GameSystemID:  model.GameSystemID,
		ArmyIDs:       model.ArmyIDs(),
		Description:   model.Description,
		Quantity:      model.Quantity,
		Status:        model.Status,
		ImageURL:      model.ImageURL,
		PaintingNotes: model.PaintingNotes,
		PaintRecipe:   recipe,
		CreatedAt:     model.CreatedAt.Format(timeFormat),
		LastUpdated:   model.UpdatedAt.Format(timeFormat),
	}
}
