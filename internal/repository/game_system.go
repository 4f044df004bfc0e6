package repository

import (
	"modelforge-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GameSystemRepository handles database operations for game systems
type GameSystemRepository struct {
	db *gorm.DB
}

// NewGameSystemRepository creates a new game system repository
func NewGameSystemRepository(db *gorm.DB) *GameSystemRepository {
	return &GameSystemRepository{db: db}
}

// Create creates a new game system
func (r *GameSystemRepository) Create(system *models.GameSystem) error {
	return r.db.Create(system).Error
}

// GetByID retrieves a game system by ID
func (r *GameSystemRepository) GetByID(id uuid.UUID) (*models.GameSystem, error) {
	var system models.GameSystem
	err := r.db.First(&system, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &system, nil
}

// GetByName retrieves a game system by name, matched case-insensitively
func (r *GameSystemRepository) GetByName(name string) (*models.GameSystem, error) {
	var system models.GameSystem
	err := r.db.First(&system, "LOWER(name) = LOWER(?)", name).Error
	if err != nil {
		return nil, err
	}
	return &system, nil
}

// GetAll retrieves all game systems with pagination
func (r *GameSystemRepository) GetAll(limit, offset int) ([]models.GameSystem, int64, error) {
	var systems []models.GameSystem
	var total int64

	if err := r.db.Model(&models.GameSystem{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Limit(limit).Offset(offset).Order("name").Find(&systems).Error
	if err != nil {
		return nil, 0, err
	}

	return systems, total, nil
}

// Update updates a game system
func (r *GameSystemRepository) Update(system *models.GameSystem) error {
	return r.db.Save(system).Error
}

// DeleteCascade deletes a game system together with its armies and the
// models owned by the system or attached to its armies. All of it runs
// in one transaction so a failure leaves the catalog untouched.
func (r *GameSystemRepository) DeleteCascade(id uuid.UUID) (int64, int64, error) {
	var armiesDeleted, modelsDeleted int64

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var system models.GameSystem
		if err := tx.First(&system, "id = ?", id).Error; err != nil {
			return err
		}

		var armyIDs []uuid.UUID
		if err := tx.Model(&models.Army{}).Where("game_system_id = ?", id).Pluck("id", &armyIDs).Error; err != nil {
			return err
		}

		// Models owned by the system directly, plus models attached to
		// one of its armies through the join table.
		var modelIDs []uuid.UUID
		query := tx.Model(&models.Model{}).Where("game_system_id = ?", id)
		if len(armyIDs) > 0 {
			query = tx.Model(&models.Model{}).
				Where("game_system_id = ?", id).
				Or("id IN (SELECT model_id FROM model_armies WHERE army_id IN ?)", armyIDs)
		}
		if err := query.Distinct("id").Pluck("id", &modelIDs).Error; err != nil {
			return err
		}

		if len(modelIDs) > 0 {
			if err := deleteModelRows(tx, modelIDs); err != nil {
				return err
			}
			modelsDeleted = int64(len(modelIDs))
		}

		if len(armyIDs) > 0 {
			if err := tx.Exec("DELETE FROM model_armies WHERE army_id IN ?", armyIDs).Error; err != nil {
				return err
			}
			result := tx.Where("id IN ?", armyIDs).Delete(&models.Army{})
			if result.Error != nil {
				return result.Error
			}
			armiesDeleted = result.RowsAffected
		}

		return tx.Delete(&models.GameSystem{}, "id = ?", id).Error
	})
	if err != nil {
		return 0, 0, err
	}

	return armiesDeleted, modelsDeleted, nil
}
