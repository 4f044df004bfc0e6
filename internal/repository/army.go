package repository

import (
	"modelforge-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArmyRepository handles database operations for armies
type ArmyRepository struct {
	db *gorm.DB
}

// NewArmyRepository creates a new army repository
func NewArmyRepository(db *gorm.DB) *ArmyRepository {
	return &ArmyRepository{db: db}
}

// Create creates a new army
func (r *ArmyRepository) Create(army *models.Army) error {
	return r.db.Create(army).Error
}

// GetByID retrieves an army by ID
func (r *ArmyRepository) GetByID(id uuid.UUID) (*models.Army, error) {
	var army models.Army
	err := r.db.First(&army, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &army, nil
}

// GetByName retrieves an army by name within a game system, matched
// case-insensitively
func (r *ArmyRepository) GetByName(gameSystemID uuid.UUID, name string) (*models.Army, error) {
	var army models.Army
	err := r.db.First(&army, "game_system_id = ? AND LOWER(name) = LOWER(?)", gameSystemID, name).Error
	if err != nil {
		return nil, err
	}
	return &army, nil
}

// GetAll retrieves all armies with pagination
func (r *ArmyRepository) GetAll(limit, offset int) ([]models.Army, int64, error) {
	var armies []models.Army
	var total int64

	if err := r.db.Model(&models.Army{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("name").Find(&armies).Error
	if err != nil {
		return nil, 0, err
	}

	return armies, total, nil
}

// GetByGameSystemID retrieves armies belonging to a game system
func (r *ArmyRepository) GetByGameSystemID(gameSystemID uuid.UUID, limit, offset int) ([]models.Army, int64, error) {
	var armies []models.Army
	var total int64

	base := r.db.Model(&models.Army{}).Where("game_system_id = ?", gameSystemID)
	if err := base.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("game_system_id = ?", gameSystemID).
		Limit(limit).Offset(offset).Order("name").
		Find(&armies).Error
	if err != nil {
		return nil, 0, err
	}

	return armies, total, nil
}

// Update updates an army
func (r *ArmyRepository) Update(army *models.Army) error {
	return r.db.Save(army).Error
}

// Delete detaches the army from every model and removes it. Models
// that referenced the army survive with the link pulled.
func (r *ArmyRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var army models.Army
		if err := tx.First(&army, "id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM model_armies WHERE army_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Army{}, "id = ?", id).Error
	})
}
