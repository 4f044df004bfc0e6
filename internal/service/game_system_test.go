package service

import (
	"testing"

	"modelforge-backend/internal/database/models"
	apperrors "modelforge-backend/internal/errors"
	"modelforge-backend/internal/repository"
	"modelforge-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type GameSystemServiceSuite struct {
	suite.Suite
	db        *gorm.DB
	service   *GameSystemService
	armyRepo  *repository.ArmyRepository
	modelRepo *repository.ModelRepository
}

func (s *GameSystemServiceSuite) SetupTest() {
	s.db = testutils.NewTestDB(s.T())
	repo := repository.NewGameSystemRepository(s.db)
	s.armyRepo = repository.NewArmyRepository(s.db)
	s.modelRepo = repository.NewModelRepository(s.db)
	s.service = NewGameSystemService(repo, validator.New())
}

func (s *GameSystemServiceSuite) TestCreateAndGet() {
	created, err := s.service.Create(&CreateGameSystemRequest{
		Name:         "Necromunda",
		PrimaryColor: "#8a1c1c",
	})
	s.Require().NoError(err)
	s.Equal("Necromunda", created.Name)

	fetched, err := s.service.GetByID(created.ID)
	s.Require().NoError(err)
	s.Equal(created.ID, fetched.ID)
	s.Equal("#8a1c1c", fetched.PrimaryColor)
}

func (s *GameSystemServiceSuite) TestCreateRejectsDuplicateName() {
	_, err := s.service.Create(&CreateGameSystemRequest{Name: "Necromunda"})
	s.Require().NoError(err)

	_, err = s.service.Create(&CreateGameSystemRequest{Name: "necromunda"})
	s.ErrorIs(err, apperrors.ErrGameSystemExists)
}

func (s *GameSystemServiceSuite) TestCreateValidation() {
	_, err := s.service.Create(&CreateGameSystemRequest{Name: ""})
	s.Error(err)
	s.Contains(err.Error(), "validation failed")
}

func (s *GameSystemServiceSuite) TestUpdatePartial() {
	created, err := s.service.Create(&CreateGameSystemRequest{
		Name:         "Necromunda",
		PrimaryColor: "#8a1c1c",
	})
	s.Require().NoError(err)

	newColor := "#222222"
	updated, err := s.service.Update(created.ID, &UpdateGameSystemRequest{SecondaryColor: &newColor})
	s.Require().NoError(err)
	s.Equal("Necromunda", updated.Name)
	s.Equal("#8a1c1c", updated.PrimaryColor)
	s.Equal("#222222", updated.SecondaryColor)
}

func (s *GameSystemServiceSuite) TestDeleteReportsCascadeCounts() {
	created, err := s.service.Create(&CreateGameSystemRequest{Name: "Necromunda"})
	s.Require().NoError(err)

	army := testutils.NewArmyFactory().WithName("Goliaths", created.ID)
	s.Require().NoError(s.armyRepo.Create(army))

	model := testutils.NewModelFactory().WithGameSystem(created.ID)
	model.Armies = []models.Army{*army}
	s.Require().NoError(s.modelRepo.Create(model))

	result, err := s.service.Delete(created.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), result.ArmiesDeleted)
	s.Equal(int64(1), result.ModelsDeleted)

	_, err = s.service.GetByID(created.ID)
	s.ErrorIs(err, apperrors.ErrGameSystemNotFound)
}

func (s *GameSystemServiceSuite) TestDeleteUnknown() {
	system := testutils.NewGameSystemFactory().Create()
	_, err := s.service.Delete(system.ID)
	s.ErrorIs(err, apperrors.ErrGameSystemNotFound)
}

func TestGameSystemServiceSuite(t *testing.T) {
	suite.Run(t, new(GameSystemServiceSuite))
}
