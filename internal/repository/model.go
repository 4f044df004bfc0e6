package repository

import (
	"errors"

	"modelforge-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ModelRepository handles database operations for models
type ModelRepository struct {
	db *gorm.DB
}

// NewModelRepository creates a new model repository
func NewModelRepository(db *gorm.DB) *ModelRepository {
	return &ModelRepository{db: db}
}

// deleteModelRows removes models and everything hanging off them:
// recipe entries, army links and session links.
func deleteModelRows(tx *gorm.DB, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}
	if err := tx.Where("model_id IN ?", ids).Delete(&models.PaintRecipeEntry{}).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM model_armies WHERE model_id IN ?", ids).Error; err != nil {
		return err
	}
	if err := tx.Exec("DELETE FROM session_models WHERE model_id IN ?", ids).Error; err != nil {
		return err
	}
	return tx.Where("id IN ?", ids).Delete(&models.Model{}).Error
}

// Create inserts a model together with its recipe entries and army links
func (r *ModelRepository) Create(model *models.Model) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		armies := model.Armies
		model.Armies = nil
		if err := tx.Create(model).Error; err != nil {
			return err
		}
		model.Armies = armies
		if len(armies) > 0 {
			return tx.Model(model).Association("Armies").Append(&armies)
		}
		return nil
	})
}

// GetByID retrieves a model by ID with its armies and paint recipe
func (r *ModelRepository) GetByID(id uuid.UUID) (*models.Model, error) {
	var model models.Model
	err := r.db.
		Preload("Armies").
		Preload("PaintRecipe").
		Preload("PaintRecipe.Paint").
		First(&model, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &model, nil
}

// GetAll retrieves all models with pagination
func (r *ModelRepository) GetAll(limit, offset int) ([]models.Model, int64, error) {
	var list []models.Model
	var total int64

	if err := r.db.Model(&models.Model{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.
		Preload("Armies").
		Preload("PaintRecipe").
		Limit(limit).Offset(offset).Order("name").
		Find(&list).Error
	if err != nil {
		return nil, 0, err
	}

	return list, total, nil
}

// GetAllWithArmies retrieves the full model collection with army links
// loaded, for export and import duplicate checks.
func (r *ModelRepository) GetAllWithArmies() ([]models.Model, error) {
	var list []models.Model
	err := r.db.Preload("Armies").Order("name").Find(&list).Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

// Update saves model fields. Associations are replaced separately via
// ReplaceArmies / ReplaceRecipe.
func (r *ModelRepository) Update(model *models.Model) error {
	return r.db.Omit("Armies", "PaintRecipe").Save(model).Error
}

// ReplaceArmies replaces the model's army links
func (r *ModelRepository) ReplaceArmies(model *models.Model, armies []models.Army) error {
	if err := r.db.Model(model).Association("Armies").Replace(&armies); err != nil {
		return err
	}
	model.Armies = armies
	return nil
}

// ReplaceRecipe replaces the model's paint recipe entries
func (r *ModelRepository) ReplaceRecipe(model *models.Model, entries []models.PaintRecipeEntry) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("model_id = ?", model.ID).Delete(&models.PaintRecipeEntry{}).Error; err != nil {
			return err
		}
		for i := range entries {
			entries[i].ModelID = model.ID
		}
		if len(entries) > 0 {
			if err := tx.Create(&entries).Error; err != nil {
				return err
			}
		}
		model.PaintRecipe = entries
		return nil
	})
}

// Delete removes a model and its dependent rows
func (r *ModelRepository) Delete(id uuid.UUID) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var model models.Model
		if err := tx.First(&model, "id = ?", id).Error; err != nil {
			return err
		}
		return deleteModelRows(tx, []uuid.UUID{id})
	})
}

// BulkCreate inserts a batch of models in one transaction
func (r *ModelRepository) BulkCreate(batch []*models.Model) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		for _, model := range batch {
			armies := model.Armies
			model.Armies = nil
			if err := tx.Create(model).Error; err != nil {
				return err
			}
			model.Armies = armies
			if len(armies) > 0 {
				if err := tx.Model(model).Association("Armies").Append(&armies); err != nil {
					return err
				}
			}
		}
		return nil
	})
}

// BulkUpdate applies the same column updates to every id. The whole
// call runs in one transaction and aborts when any id is unknown, so a
// partial batch is never applied.
func (r *ModelRepository) BulkUpdate(ids []uuid.UUID, updates map[string]interface{}) ([]models.Model, error) {
	var updated []models.Model

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Model{}).Where("id IN ?", ids).Count(&count).Error; err != nil {
			return err
		}
		if count != int64(len(ids)) {
			return gorm.ErrRecordNotFound
		}

		if err := tx.Model(&models.Model{}).Where("id IN ?", ids).Updates(updates).Error; err != nil {
			return err
		}

		return tx.Preload("Armies").Where("id IN ?", ids).Find(&updated).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, gorm.ErrRecordNotFound
		}
		return nil, err
	}

	return updated, nil
}

// BulkDelete removes the given models and their dependent rows.
// Unknown ids are skipped, matching the adapter's idempotent delete.
func (r *ModelRepository) BulkDelete(ids []uuid.UUID) (int64, error) {
	var existing []uuid.UUID

	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Model{}).Where("id IN ?", ids).Pluck("id", &existing).Error; err != nil {
			return err
		}
		return deleteModelRows(tx, existing)
	})
	if err != nil {
		return 0, err
	}

	return int64(len(existing)), nil
}
