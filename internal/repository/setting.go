package repository

import (
	"modelforge-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository handles database operations for persisted settings
type SettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new setting repository
func NewSettingRepository(db *gorm.DB) *SettingRepository {
	return &SettingRepository{db: db}
}

// Get retrieves a setting value by key
func (r *SettingRepository) Get(key string) (string, error) {
	var setting models.Setting
	err := r.db.First(&setting, "key = ?", key).Error
	if err != nil {
		return "", err
	}
	return setting.Value, nil
}

// Set upserts a setting value
func (r *SettingRepository) Set(key, value string) error {
	setting := models.Setting{Key: key, Value: value}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value"}),
	}).Create(&setting).Error
}
