package repository

import (
	"modelforge-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaintRepository handles database operations for paints
type PaintRepository struct {
	db *gorm.DB
}

// NewPaintRepository creates a new paint repository
func NewPaintRepository(db *gorm.DB) *PaintRepository {
	return &PaintRepository{db: db}
}

// Create creates a new paint
func (r *PaintRepository) Create(paint *models.Paint) error {
	return r.db.Create(paint).Error
}

// GetByID retrieves a paint by ID
func (r *PaintRepository) GetByID(id uuid.UUID) (*models.Paint, error) {
	var paint models.Paint
	err := r.db.First(&paint, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &paint, nil
}

// GetByNameAndManufacturer retrieves a paint by its name and manufacturer
func (r *PaintRepository) GetByNameAndManufacturer(name, manufacturer string) (*models.Paint, error) {
	var paint models.Paint
	err := r.db.First(&paint, "LOWER(name) = LOWER(?) AND LOWER(manufacturer) = LOWER(?)", name, manufacturer).Error
	if err != nil {
		return nil, err
	}
	return &paint, nil
}

// GetAll retrieves all paints with pagination
func (r *PaintRepository) GetAll(limit, offset int) ([]models.Paint, int64, error) {
	var paints []models.Paint
	var total int64

	if err := r.db.Model(&models.Paint{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("manufacturer, name").Find(&paints).Error
	if err != nil {
		return nil, 0, err
	}

	return paints, total, nil
}

// GetLowStock retrieves paints at or below the stock threshold,
// sorted ascending by stock
func (r *PaintRepository) GetLowStock(threshold int) ([]models.Paint, error) {
	var paints []models.Paint
	err := r.db.Where("stock <= ?", threshold).Order("stock, name").Find(&paints).Error
	if err != nil {
		return nil, err
	}
	return paints, nil
}

// Update updates a paint
func (r *PaintRepository) Update(paint *models.Paint) error {
	return r.db.Save(paint).Error
}

// Delete removes a paint and any recipe entries referencing it
func (r *PaintRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var paint models.Paint
		if err := tx.First(&paint, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("paint_id = ?", id).Delete(&models.PaintRecipeEntry{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Paint{}, "id = ?", id).Error
	})
}
