package service

import (
	"errors"
	"fmt"
	"strconv"

	"modelforge-backend/internal/database/models"
	apperrors "modelforge-backend/internal/errors"
	"modelforge-backend/internal/logger"
	"modelforge-backend/internal/repository"

	"gorm.io/gorm"
)

// defaultMinStockThreshold applies until the user saves a preference.
const defaultMinStockThreshold = 1

// SettingsService handles persisted preferences and store maintenance
type SettingsService struct {
	repo      repository.SettingRepositoryInterface
	adminRepo repository.AdminRepositoryInterface
	log       *logger.Logger
}

// NewSettingsService creates a new settings service
func NewSettingsService(repo repository.SettingRepositoryInterface, adminRepo repository.AdminRepositoryInterface) *SettingsService {
	return &SettingsService{
		repo:      repo,
		adminRepo: adminRepo,
		log:       logger.WithComponent("settings_service"),
	}
}

// MinStockThresholdResponse carries the low-stock alert cutoff
type MinStockThresholdResponse struct {
	MinStockThreshold int `json:"min_stock_threshold"`
}

// UpdateMinStockThresholdRequest sets the low-stock alert cutoff
type UpdateMinStockThresholdRequest struct {
	MinStockThreshold int `json:"min_stock_threshold"`
}

// GetMinStockThreshold returns the configured threshold, falling back
// to the default when nothing has been saved yet.
func (s *SettingsService) GetMinStockThreshold() (int, error) {
	value, err := s.repo.Get(models.SettingMinStockThreshold)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return defaultMinStockThreshold, nil
		}
		return 0, fmt.Errorf("failed to read setting: %w", err)
	}

	threshold, err := strconv.Atoi(value)
	if err != nil || threshold < 0 {
		// A corrupt row should not break the alerts page.
		s.log.WithField("value", value).Warn("invalid stored stock threshold, using default")
		return defaultMinStockThreshold, nil
	}

	return threshold, nil
}

// SetMinStockThreshold stores the threshold. Negative values are rejected.
func (s *SettingsService) SetMinStockThreshold(threshold int) error {
	if threshold < 0 {
		return apperrors.ErrInvalidStockThreshold
	}
	if err := s.repo.Set(models.SettingMinStockThreshold, strconv.Itoa(threshold)); err != nil {
		return fmt.Errorf("failed to save setting: %w", err)
	}
	return nil
}

// ClearAllData wipes every collection and the settings
func (s *SettingsService) ClearAllData() error {
	if err := s.adminRepo.ClearAllData(); err != nil {
		return fmt.Errorf("failed to clear data: %w", err)
	}
	s.log.Warn("all collections and settings wiped")
	return nil
}
