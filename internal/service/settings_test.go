package service

import (
	"testing"

	"modelforge-backend/internal/database/models"
	apperrors "modelforge-backend/internal/errors"
	"modelforge-backend/internal/repository"
	"modelforge-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type SettingsServiceSuite struct {
	suite.Suite
	db      *gorm.DB
	service *SettingsService
}

func (s *SettingsServiceSuite) SetupTest() {
	s.db = testutils.NewTestDB(s.T())
	s.service = NewSettingsService(
		repository.NewSettingRepository(s.db),
		repository.NewAdminRepository(s.db),
	)
}

func (s *SettingsServiceSuite) TestDefaultThreshold() {
	threshold, err := s.service.GetMinStockThreshold()
	s.Require().NoError(err)
	s.Equal(defaultMinStockThreshold, threshold)
}

func (s *SettingsServiceSuite) TestSetAndGetThreshold() {
	s.Require().NoError(s.service.SetMinStockThreshold(4))

	threshold, err := s.service.GetMinStockThreshold()
	s.Require().NoError(err)
	s.Equal(4, threshold)

	// Zero is a valid cutoff: only out-of-stock paints alert.
	s.Require().NoError(s.service.SetMinStockThreshold(0))
	threshold, err = s.service.GetMinStockThreshold()
	s.Require().NoError(err)
	s.Equal(0, threshold)
}

func (s *SettingsServiceSuite) TestRejectsNegativeThreshold() {
	err := s.service.SetMinStockThreshold(-1)
	s.ErrorIs(err, apperrors.ErrInvalidStockThreshold)
}

func (s *SettingsServiceSuite) TestCorruptValueFallsBackToDefault() {
	repo := repository.NewSettingRepository(s.db)
	s.Require().NoError(repo.Set(models.SettingMinStockThreshold, "not-a-number"))

	threshold, err := s.service.GetMinStockThreshold()
	s.Require().NoError(err)
	s.Equal(defaultMinStockThreshold, threshold)
}

func (s *SettingsServiceSuite) TestClearAllDataResetsThreshold() {
	s.Require().NoError(s.service.SetMinStockThreshold(9))
	s.Require().NoError(s.service.ClearAllData())

	threshold, err := s.service.GetMinStockThreshold()
	s.Require().NoError(err)
	s.Equal(defaultMinStockThreshold, threshold)
}

func TestSettingsServiceSuite(t *testing.T) {
	suite.Run(t, new(SettingsServiceSuite))
}
