package repository

import (
	"testing"

	"modelforge-backend/internal/database/models"
	"modelforge-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type GameSystemRepositorySuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *GameSystemRepository
	armyRepo  *ArmyRepository
	modelRepo *ModelRepository
}

func (s *GameSystemRepositorySuite) SetupTest() {
	s.db = testutils.NewTestDB(s.T())
	s.repo = NewGameSystemRepository(s.db)
	s.armyRepo = NewArmyRepository(s.db)
	s.modelRepo = NewModelRepository(s.db)
}

func (s *GameSystemRepositorySuite) TestGetByNameCaseInsensitive() {
	system := testutils.NewGameSystemFactory().WithName("Necromunda")
	s.Require().NoError(s.repo.Create(system))

	found, err := s.repo.GetByName("NECROMUNDA")
	s.Require().NoError(err)
	s.Equal(system.ID, found.ID)

	_, err = s.repo.GetByName("Mordheim")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *GameSystemRepositorySuite) TestDeleteCascadeRemovesArmiesAndModels() {
	system := testutils.NewGameSystemFactory().WithName("Necromunda")
	s.Require().NoError(s.repo.Create(system))

	army := testutils.NewArmyFactory().WithName("Goliaths", system.ID)
	s.Require().NoError(s.armyRepo.Create(army))

	// One model owned directly, one linked through the army.
	owned := testutils.NewModelFactory().WithName("Ambot", system.ID)
	s.Require().NoError(s.modelRepo.Create(owned))

	linked := testutils.NewModelFactory().WithName("Goliath Ganger", system.ID)
	linked.Armies = []models.Army{*army}
	s.Require().NoError(s.modelRepo.Create(linked))

	// A second system must survive untouched.
	other := testutils.NewGameSystemFactory().WithName("Kill Team")
	s.Require().NoError(s.repo.Create(other))
	survivor := testutils.NewModelFactory().WithName("Kommando", other.ID)
	s.Require().NoError(s.modelRepo.Create(survivor))

	armiesDeleted, modelsDeleted, err := s.repo.DeleteCascade(system.ID)
	s.Require().NoError(err)
	s.Equal(int64(1), armiesDeleted)
	s.Equal(int64(2), modelsDeleted)

	_, err = s.repo.GetByID(system.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = s.armyRepo.GetByID(army.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = s.modelRepo.GetByID(owned.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
	_, err = s.modelRepo.GetByID(linked.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	kept, err := s.modelRepo.GetByID(survivor.ID)
	s.Require().NoError(err)
	s.Equal("Kommando", kept.Name)

	var joinRows int64
	s.Require().NoError(s.db.Table("model_armies").Count(&joinRows).Error)
	s.Zero(joinRows)
}

func (s *GameSystemRepositorySuite) TestDeleteCascadeUnknownID() {
	system := testutils.NewGameSystemFactory().Create()

	_, _, err := s.repo.DeleteCascade(system.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestGameSystemRepositorySuite(t *testing.T) {
	suite.Run(t, new(GameSystemRepositorySuite))
}
