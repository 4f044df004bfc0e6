package service

import (
	"testing"

	apperrors "modelforge-backend/internal/errors"
	"modelforge-backend/internal/repository"
	"modelforge-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type PaintServiceSuite struct {
	suite.Suite
	db       *gorm.DB
	service  *PaintService
	settings *SettingsService
}

func (s *PaintServiceSuite) SetupTest() {
	s.db = testutils.NewTestDB(s.T())
	repo := repository.NewPaintRepository(s.db)
	s.settings = NewSettingsService(
		repository.NewSettingRepository(s.db),
		repository.NewAdminRepository(s.db),
	)
	s.service = NewPaintService(repo, s.settings, validator.New())
}

func (s *PaintServiceSuite) createPaint(name string, stock int) *PaintResponse {
	created, err := s.service.Create(&CreatePaintRequest{
		Name:         name,
		Manufacturer: "Citadel",
		PaintType:    "Base",
		Stock:        stock,
	})
	s.Require().NoError(err)
	return created
}

func (s *PaintServiceSuite) TestCreateRejectsInvalidType() {
	_, err := s.service.Create(&CreatePaintRequest{
		Name:         "Macragge Blue",
		Manufacturer: "Citadel",
		PaintType:    "Glitter",
	})
	s.ErrorIs(err, apperrors.ErrInvalidPaintType)
}

func (s *PaintServiceSuite) TestCreateRejectsDuplicate() {
	s.createPaint("Macragge Blue", 3)

	_, err := s.service.Create(&CreatePaintRequest{
		Name:         "macragge blue",
		Manufacturer: "CITADEL",
		PaintType:    "Base",
	})
	s.ErrorIs(err, apperrors.ErrPaintExists)
}

func (s *PaintServiceSuite) TestLowStockUsesDefaultThreshold() {
	s.createPaint("Abaddon Black", 0)
	s.createPaint("Wraithbone", 1)
	s.createPaint("Macragge Blue", 2)

	resp, err := s.service.GetLowStock()
	s.Require().NoError(err)
	s.Equal(1, resp.Threshold)
	s.Require().Len(resp.Paints, 2)
	s.Equal("Abaddon Black", resp.Paints[0].Name)
	s.Equal("Wraithbone", resp.Paints[1].Name)
}

func (s *PaintServiceSuite) TestLowStockFollowsSavedThreshold() {
	s.createPaint("Abaddon Black", 0)
	s.createPaint("Macragge Blue", 2)
	s.createPaint("Retributor Armour", 7)

	s.Require().NoError(s.settings.SetMinStockThreshold(2))

	resp, err := s.service.GetLowStock()
	s.Require().NoError(err)
	s.Equal(2, resp.Threshold)
	s.Len(resp.Paints, 2)
}

func (s *PaintServiceSuite) TestUpdateStock() {
	created := s.createPaint("Macragge Blue", 3)

	stock := 0
	updated, err := s.service.Update(created.ID, &UpdatePaintRequest{Stock: &stock})
	s.Require().NoError(err)
	s.Equal(0, updated.Stock)
}

func TestPaintServiceSuite(t *testing.T) {
	suite.Run(t, new(PaintServiceSuite))
}
