package service

import (
	"errors"
	"fmt"

	"modelforge-backend/internal/database/models"
	apperrors "modelforge-backend/internal/errors"
	"modelforge-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaintService handles business logic for the paint inventory
type PaintService struct {
	repo      repository.PaintRepositoryInterface
	settings  *SettingsService
	validator *validator.Validate
}

// NewPaintService creates a new paint service
func NewPaintService(repo repository.PaintRepositoryInterface, settings *SettingsService, validator *validator.Validate) *PaintService {
	return &PaintService{
		repo:      repo,
		settings:  settings,
		validator: validator,
	}
}

// CreatePaintRequest represents the request to create a paint
type CreatePaintRequest struct {
	Name         string `json:"name" validate:"required,min=1,max=100"`
	Manufacturer string `json:"manufacturer" validate:"required,min=1,max=100"`
	PaintType    string `json:"paint_type" validate:"required"`
	ColorScheme  string `json:"color_scheme,omitempty" validate:"max=50"`
	RGBCode      string `json:"rgb_code,omitempty" validate:"max=10"`
	Stock        int    `json:"stock" validate:"gte=0"`
}

// UpdatePaintRequest represents a partial update to a paint
type UpdatePaintRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Manufacturer *string `json:"manufacturer,omitempty" validate:"omitempty,min=1,max=100"`
	PaintType    *string `json:"paint_type,omitempty"`
	ColorScheme  *string `json:"color_scheme,omitempty" validate:"omitempty,max=50"`
	RGBCode      *string `json:"rgb_code,omitempty" validate:"omitempty,max=10"`
	Stock        *int    `json:"stock,omitempty" validate:"omitempty,gte=0"`
}

// PaintResponse represents the response for paint operations
type PaintResponse struct {
	ID           uuid.UUID        `json:"id"`
	Name         string           `json:"name"`
	Manufacturer string           `json:"manufacturer"`
	PaintType    models.PaintType `json:"paint_type"`
	ColorScheme  string           `json:"color_scheme,omitempty"`
	RGBCode      string           `json:"rgb_code,omitempty"`
	Stock        int              `json:"stock"`
	CreatedAt    string           `json:"created_at"`
	LastUpdated  string           `json:"last_updated"`
}

// PaintListResponse represents a paginated list of paints
type PaintListResponse struct {
	Paints   []PaintResponse `json:"paints"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

// LowStockResponse lists paints at or below the configured threshold
type LowStockResponse struct {
	Threshold int             `json:"threshold"`
	Paints    []PaintResponse `json:"paints"`
}

// Create creates a new paint
func (s *PaintService) Create(req *CreatePaintRequest) (*PaintResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	paintType := models.PaintType(req.PaintType)
	if !paintType.IsValid() {
		return nil, apperrors.ErrInvalidPaintType
	}

	existing, err := s.repo.GetByNameAndManufacturer(req.Name, req.Manufacturer)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing paint: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrPaintExists
	}

	paint := &models.Paint{
		Name:         req.Name,
		Manufacturer: req.Manufacturer,
		PaintType:    paintType,
		ColorScheme:  req.ColorScheme,
		RGBCode:      req.RGBCode,
		Stock:        req.Stock,
	}

	if err := s.repo.Create(paint); err != nil {
		return nil, fmt.Errorf("failed to create paint: %w", err)
	}

	return s.toResponse(paint), nil
}

// GetByID retrieves a paint by ID
func (s *PaintService) GetByID(id uuid.UUID) (*PaintResponse, error) {
	paint, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaintNotFound
		}
		return nil, fmt.Errorf("failed to get paint: %w", err)
	}

	return s.toResponse(paint), nil
}

// GetAll retrieves all paints with pagination
func (s *PaintService) GetAll(page, pageSize int) (*PaintListResponse, error) {
	page, pageSize = normalizePage(page, pageSize, 100)

	offset := (page - 1) * pageSize
	paints, total, err := s.repo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get paints: %w", err)
	}

	responses := make([]PaintResponse, len(paints))
	for i, paint := range paints {
		responses[i] = *s.toResponse(&paint)
	}

	return &PaintListResponse{
		Paints:   responses,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

// GetLowStock lists paints with stock at or below the configured
// minimum threshold, sorted ascending by stock
func (s *PaintService) GetLowStock() (*LowStockResponse, error) {
	threshold, err := s.settings.GetMinStockThreshold()
	if err != nil {
		return nil, fmt.Errorf("failed to get stock threshold: %w", err)
	}

	paints, err := s.repo.GetLowStock(threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to get low stock paints: %w", err)
	}

	responses := make([]PaintResponse, len(paints))
	for i, paint := range paints {
		responses[i] = *s.toResponse(&paint)
	}

	return &LowStockResponse{
		Threshold: threshold,
		Paints:    responses,
	}, nil
}

// Update applies a partial update to a paint
func (s *PaintService) Update(id uuid.UUID, req *UpdatePaintRequest) (*PaintResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	paint, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPaintNotFound
		}
		return nil, fmt.Errorf("failed to get paint: %w", err)
	}

	if req.Name != nil {
		paint.Name = *req.Name
	}
	if req.Manufacturer != nil {
		paint.Manufacturer = *req.Manufacturer
	}
	if req.PaintType != nil {
		paintType := models.PaintType(*req.PaintType)
		if !paintType.IsValid() {
			return nil, apperrors.ErrInvalidPaintType
		}
		paint.PaintType = paintType
	}
	if req.ColorScheme != nil {
		paint.ColorScheme = *req.ColorScheme
	}
	if req.RGBCode != nil {
		paint.RGBCode = *req.RGBCode
	}
	if req.Stock != nil {
		paint.Stock = *req.Stock
	}

	if err := s.repo.Update(paint); err != nil {
		return nil, fmt.Errorf("failed to update paint: %w", err)
	}

	return s.toResponse(paint), nil
}

// Delete removes a paint
func (s *PaintService) Delete(id uuid.UUID) error {
	if err := s.repo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrPaintNotFound
		}
		return fmt.Errorf("failed to delete paint: %w", err)
	}
	return nil
}

func (s *PaintService) toResponse(paint *models.Paint) *PaintResponse {
	return &PaintResponse{
		ID:           paint.ID,
		Name:         paint.Name,
		Manufacturer: paint.Manufacturer,
		PaintType:    paint.PaintType,
		ColorScheme:  paint.ColorScheme,
		RGBCode:      paint.RGBCode,
		Stock:        paint.Stock,
		CreatedAt:    paint.CreatedAt.Format(timeFormat),
		LastUpdated:  paint.UpdatedAt.Format(timeFormat),
	}
}
