package repository

import (
	"testing"

	"modelforge-backend/internal/database/models"
	"modelforge-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ArmyRepositorySuite struct {
	suite.Suite
	db         *gorm.DB
	repo       *ArmyRepository
	systemRepo *GameSystemRepository
	modelRepo  *ModelRepository
	system     *models.GameSystem
}

func (s *ArmyRepositorySuite) SetupTest() {
	s.db = testutils.NewTestDB(s.T())
	s.repo = NewArmyRepository(s.db)
	s.systemRepo = NewGameSystemRepository(s.db)
	s.modelRepo = NewModelRepository(s.db)

	s.system = testutils.NewGameSystemFactory().Create()
	s.Require().NoError(s.systemRepo.Create(s.system))
}

func (s *ArmyRepositorySuite) TestGetByNameScopedToGameSystem() {
	army := testutils.NewArmyFactory().WithName("Goliaths", s.system.ID)
	s.Require().NoError(s.repo.Create(army))

	found, err := s.repo.GetByName(s.system.ID, "goliaths")
	s.Require().NoError(err)
	s.Equal(army.ID, found.ID)

	// Same name under another system is a different army.
	other := testutils.NewGameSystemFactory().WithName("Other System")
	s.Require().NoError(s.systemRepo.Create(other))
	_, err = s.repo.GetByName(other.ID, "Goliaths")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *ArmyRepositorySuite) TestDeleteDetachesModels() {
	army := testutils.NewArmyFactory().WithName("Goliaths", s.system.ID)
	s.Require().NoError(s.repo.Create(army))

	model := testutils.NewModelFactory().WithGameSystem(s.system.ID)
	model.Armies = []models.Army{*army}
	s.Require().NoError(s.modelRepo.Create(model))

	s.Require().NoError(s.repo.Delete(army.ID))

	_, err := s.repo.GetByID(army.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	// The model survives with the link removed.
	loaded, err := s.modelRepo.GetByID(model.ID)
	s.Require().NoError(err)
	s.Empty(loaded.Armies)
}

func (s *ArmyRepositorySuite) TestGetByGameSystemID() {
	s.Require().NoError(s.repo.Create(testutils.NewArmyFactory().WithName("Goliaths", s.system.ID)))
	s.Require().NoError(s.repo.Create(testutils.NewArmyFactory().WithName("Eschers", s.system.ID)))

	other := testutils.NewGameSystemFactory().WithName("Other System")
	s.Require().NoError(s.systemRepo.Create(other))
	s.Require().NoError(s.repo.Create(testutils.NewArmyFactory().WithName("Orlocks", other.ID)))

	armies, total, err := s.repo.GetByGameSystemID(s.system.ID, 10, 0)
	s.Require().NoError(err)
	s.Equal(int64(2), total)
	s.Require().Len(armies, 2)
	s.Equal("Eschers", armies[0].Name)
	s.Equal("Goliaths", armies[1].Name)
}

func TestArmyRepositorySuite(t *testing.T) {
	suite.Run(t, new(ArmyRepositorySuite))
}
