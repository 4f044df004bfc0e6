package repository

import (
	"testing"

	"modelforge-backend/internal/database/models"
	"modelforge-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ModelRepositorySuite struct {
	suite.Suite
	db         *gorm.DB
	repo       *ModelRepository
	systemRepo *GameSystemRepository
	armyRepo   *ArmyRepository
	system     *models.GameSystem
}

func (s *ModelRepositorySuite) SetupTest() {
	s.db = testutils.NewTestDB(s.T())
	s.repo = NewModelRepository(s.db)
	s.systemRepo = NewGameSystemRepository(s.db)
	s.armyRepo = NewArmyRepository(s.db)

	s.system = testutils.NewGameSystemFactory().Create()
	s.Require().NoError(s.systemRepo.Create(s.system))
}

func (s *ModelRepositorySuite) createModel(name string) *models.Model {
	model := testutils.NewModelFactory().WithName(name, s.system.ID)
	s.Require().NoError(s.repo.Create(model))
	return model
}

func (s *ModelRepositorySuite) TestCreateWithArmies() {
	army := testutils.NewArmyFactory().WithGameSystem(s.system.ID)
	s.Require().NoError(s.armyRepo.Create(army))

	model := testutils.NewModelFactory().WithGameSystem(s.system.ID)
	model.Armies = []models.Army{*army}
	s.Require().NoError(s.repo.Create(model))

	loaded, err := s.repo.GetByID(model.ID)
	s.Require().NoError(err)
	s.Require().Len(loaded.Armies, 1)
	s.Equal(army.ID, loaded.Armies[0].ID)
}

func (s *ModelRepositorySuite) TestBulkUpdateAppliesToAll() {
	first := s.createModel("Ganger A")
	second := s.createModel("Ganger B")

	updated, err := s.repo.BulkUpdate(
		[]uuid.UUID{first.ID, second.ID},
		map[string]interface{}{"status": models.StatusPrimed},
	)
	s.Require().NoError(err)
	s.Len(updated, 2)
	for _, model := range updated {
		s.Equal(models.StatusPrimed, model.Status)
	}
}

func (s *ModelRepositorySuite) TestBulkUpdateUnknownIDLeavesBatchUntouched() {
	model := s.createModel("Ganger A")

	_, err := s.repo.BulkUpdate(
		[]uuid.UUID{model.ID, uuid.New()},
		map[string]interface{}{"status": models.StatusPainted},
	)
	s.ErrorIs(err, gorm.ErrRecordNotFound)

	// The known model must not have been changed.
	loaded, err := s.repo.GetByID(model.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusAssembled, loaded.Status)
}

func (s *ModelRepositorySuite) TestBulkDeleteSkipsUnknownIDs() {
	first := s.createModel("Ganger A")
	second := s.createModel("Ganger B")

	deleted, err := s.repo.BulkDelete([]uuid.UUID{first.ID, second.ID, uuid.New()})
	s.Require().NoError(err)
	s.Equal(int64(2), deleted)

	_, err = s.repo.GetByID(first.ID)
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *ModelRepositorySuite) TestReplaceRecipe() {
	paintRepo := NewPaintRepository(s.db)
	paint := testutils.NewPaintFactory().Create()
	s.Require().NoError(paintRepo.Create(paint))

	model := s.createModel("Intercessor")

	s.Require().NoError(s.repo.ReplaceRecipe(model, []models.PaintRecipeEntry{
		{PaintID: paint.ID, Usage: "Armor base coat"},
	}))

	loaded, err := s.repo.GetByID(model.ID)
	s.Require().NoError(err)
	s.Require().Len(loaded.PaintRecipe, 1)
	s.Equal("Armor base coat", loaded.PaintRecipe[0].Usage)

	// Replacing with an empty recipe clears it.
	s.Require().NoError(s.repo.ReplaceRecipe(model, nil))
	loaded, err = s.repo.GetByID(model.ID)
	s.Require().NoError(err)
	s.Empty(loaded.PaintRecipe)
}

func TestModelRepositorySuite(t *testing.T) {
	suite.Run(t, new(ModelRepositorySuite))
}
