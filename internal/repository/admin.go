package repository

import (
	"modelforge-backend/internal/database/models"

	"gorm.io/gorm"
)

// AdminRepository handles maintenance operations over the whole store
type AdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository
func NewAdminRepository(db *gorm.DB) *AdminRepository {
	return &AdminRepository{db: db}
}

// ClearAllData wipes every collection and the settings in one
// transaction. Join tables go first so no dangling links survive a
// partial failure.
func (r *AdminRepository) ClearAllData() error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, stmt := range []string{
			"DELETE FROM session_models",
			"DELETE FROM model_armies",
		} {
			if err := tx.Exec(stmt).Error; err != nil {
				return err
			}
		}
		for _, model := range []interface{}{
			&models.PaintRecipeEntry{},
			&models.PaintingSession{},
			&models.Model{},
			&models.Army{},
			&models.GameSystem{},
			&models.Paint{},
			&models.Setting{},
		} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
