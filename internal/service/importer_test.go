package service

import (
	"strings"
	"testing"

	"modelforge-backend/internal/database/models"
	apperrors "modelforge-backend/internal/errors"
	"modelforge-backend/internal/repository"
	"modelforge-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ImporterServiceSuite struct {
	suite.Suite
	db         *gorm.DB
	importer   *ImporterService
	modelRepo  *repository.ModelRepository
	armyRepo   *repository.ArmyRepository
	systemRepo *repository.GameSystemRepository
}

func (s *ImporterServiceSuite) SetupTest() {
	s.db = testutils.NewTestDB(s.T())
	s.modelRepo = repository.NewModelRepository(s.db)
	s.armyRepo = repository.NewArmyRepository(s.db)
	s.systemRepo = repository.NewGameSystemRepository(s.db)
	s.importer = NewImporterService(s.modelRepo, s.armyRepo, s.systemRepo)
}

func (s *ImporterServiceSuite) validate(csv string) *ImportValidation {
	validation, err := s.importer.Validate(strings.NewReader(csv))
	s.Require().NoError(err)
	return validation
}

func (s *ImporterServiceSuite) TestValidateEmptyFile() {
	_, err := s.importer.Validate(strings.NewReader(""))
	s.ErrorIs(err, apperrors.ErrEmptyImport)
}

func (s *ImporterServiceSuite) TestValidateMissingHeader() {
	_, err := s.importer.Validate(strings.NewReader("name,army,quantity,status\n"))
	s.ErrorIs(err, apperrors.ErrMissingCSVHeader)
}

func (s *ImporterServiceSuite) TestValidateQueuesUnknownReferences() {
	csv := "name,game system,army,quantity,status\n" +
		"Goliath Ganger,Necromunda,Goliaths,5,Assembled\n"

	validation := s.validate(csv)

	s.Require().Len(validation.Rows, 1)
	s.Equal(RowNew, validation.Rows[0].Classification)
	s.True(validation.Rows[0].Import)
	s.Equal([]string{"Necromunda"}, validation.PendingGameSystems)
	s.Require().Len(validation.PendingArmies, 1)
	s.Equal("Goliaths", validation.PendingArmies[0].Name)
	s.Equal("Necromunda", validation.PendingArmies[0].GameSystemName)
	s.True(validation.NeedsReview)
}

func (s *ImporterServiceSuite) TestValidateClassifiesBadRows() {
	csv := "name,game system,army,quantity,status\n" +
		"Ganger,Necromunda,Goliaths,zero,Assembled\n" +
		"Ganger,Necromunda,Goliaths,-2,Assembled\n" +
		"Ganger,Necromunda,Goliaths,5,Shiny\n" +
		",Necromunda,Goliaths,5,Assembled\n"

	validation := s.validate(csv)
	s.Require().Len(validation.Rows, 4)

	s.Equal(RowError, validation.Rows[0].Classification)
	s.Contains(validation.Rows[0].Message, "positive integer")

	s.Equal(RowError, validation.Rows[1].Classification)
	s.Contains(validation.Rows[1].Message, "positive integer")

	s.Equal(RowError, validation.Rows[2].Classification)
	s.Contains(validation.Rows[2].Message, "not a recognized painting status")

	s.Equal(RowError, validation.Rows[3].Classification)
	s.Contains(validation.Rows[3].Message, "missing required fields: name")

	for _, row := range validation.Rows {
		s.False(row.Import)
	}
	s.True(validation.NeedsReview)
}

func (s *ImporterServiceSuite) TestValidateStatusCaseInsensitive() {
	csv := "name,game system,army,quantity,status\n" +
		"Ganger,Necromunda,Goliaths,5,ready to game\n"

	validation := s.validate(csv)
	s.Require().Len(validation.Rows, 1)
	s.Equal(RowNew, validation.Rows[0].Classification)
	s.Equal(string(models.StatusReadyToGame), validation.Rows[0].Status)
}

func (s *ImporterServiceSuite) TestValidateDetectsDuplicates() {
	system := testutils.NewGameSystemFactory().WithName("Necromunda")
	s.Require().NoError(s.systemRepo.Create(system))
	army := testutils.NewArmyFactory().WithName("Goliaths", system.ID)
	s.Require().NoError(s.armyRepo.Create(army))

	existing := testutils.NewModelFactory().WithName("Goliath Ganger", system.ID)
	existing.Armies = []models.Army{*army}
	s.Require().NoError(s.modelRepo.Create(existing))

	csv := "name,game system,army,quantity,status\n" +
		"goliath ganger,Necromunda,Goliaths,5,Assembled\n" + // dup: same name, same army
		"Goliath Ganger,Necromunda,Eschers,5,Assembled\n" // same name, different army: new

	validation := s.validate(csv)
	s.Require().Len(validation.Rows, 2)
	s.Equal(RowDuplicate, validation.Rows[0].Classification)
	s.True(validation.Rows[0].Import)
	s.Equal(RowNew, validation.Rows[1].Classification)
}

func (s *ImporterServiceSuite) TestCommitCreatesReferencesAndModels() {
	csv := "name,game system,army,quantity,status\n" +
		"Goliath Ganger,Necromunda,Goliaths,5,Assembled\n" +
		"Escher Ganger,Necromunda,Eschers,6,Primed\n"

	validation := s.validate(csv)
	summary, err := s.importer.Commit(&ImportCommitRequest{Rows: validation.Rows})
	s.Require().NoError(err)

	s.Equal(2, summary.Imported)
	s.Equal(1, summary.CreatedGameSystems)
	s.Equal(2, summary.CreatedArmies)
	s.Zero(summary.Errors)
	s.Zero(summary.SkippedDuplicates)

	system, err := s.systemRepo.GetByName("Necromunda")
	s.Require().NoError(err)
	_, err = s.armyRepo.GetByName(system.ID, "Goliaths")
	s.Require().NoError(err)

	imported, err := s.modelRepo.GetAllWithArmies()
	s.Require().NoError(err)
	s.Require().Len(imported, 2)
	s.Equal("Escher Ganger", imported[0].Name)
	s.Require().Len(imported[0].Armies, 1)
	s.Equal("Eschers", imported[0].Armies[0].Name)
}

func (s *ImporterServiceSuite) TestCommitSkipsDeselectedDuplicates() {
	csv := "name,game system,army,quantity,status\n" +
		"Goliath Ganger,Necromunda,Goliaths,5,Assembled\n"

	// First pass imports the row and creates references.
	validation := s.validate(csv)
	_, err := s.importer.Commit(&ImportCommitRequest{Rows: validation.Rows})
	s.Require().NoError(err)

	// Re-validating the same file now flags the row as a duplicate.
	validation = s.validate(csv)
	s.Require().Len(validation.Rows, 1)
	s.Equal(RowDuplicate, validation.Rows[0].Classification)

	// User deselects it; nothing new is written.
	validation.Rows[0].Import = false
	summary, err := s.importer.Commit(&ImportCommitRequest{Rows: validation.Rows})
	s.Require().NoError(err)
	s.Zero(summary.Imported)
	s.Equal(1, summary.SkippedDuplicates)
	s.Zero(summary.CreatedGameSystems)
	s.Zero(summary.CreatedArmies)

	imported, err := s.modelRepo.GetAllWithArmies()
	s.Require().NoError(err)
	s.Len(imported, 1)
}

func (s *ImporterServiceSuite) TestCommitCarriesErrorRows() {
	csv := "name,game system,army,quantity,status\n" +
		"Good Row,Necromunda,Goliaths,5,Assembled\n" +
		"Bad Row,Necromunda,Goliaths,zero,Assembled\n"

	validation := s.validate(csv)
	summary, err := s.importer.Commit(&ImportCommitRequest{Rows: validation.Rows})
	s.Require().NoError(err)

	s.Equal(1, summary.Imported)
	s.Equal(1, summary.Errors)
	s.Require().Len(summary.ErrorRows, 1)
	s.Equal("Bad Row", summary.ErrorRows[0].Name)
	s.Equal(1, summary.ErrorRows[0].Index)
}

func (s *ImporterServiceSuite) TestCommitSkipsReferencesOfDeselectedRows() {
	csv := "name,game system,army,quantity,status\n" +
		"Ganger,Necromunda,Goliaths,5,Assembled\n"

	validation := s.validate(csv)
	validation.Rows[0].Import = false

	summary, err := s.importer.Commit(&ImportCommitRequest{Rows: validation.Rows})
	s.Require().NoError(err)
	s.Zero(summary.Imported)
	s.Zero(summary.CreatedGameSystems)
	s.Zero(summary.CreatedArmies)

	_, err = s.systemRepo.GetByName("Necromunda")
	s.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (s *ImporterServiceSuite) TestValidateMultipleArmiesPerRow() {
	csv := "name,game system,army,quantity,status\n" +
		"Veteran,Necromunda,\"Goliaths, Eschers\",3,Painted\n"

	validation := s.validate(csv)
	s.Require().Len(validation.Rows, 1)
	s.Equal([]string{"Goliaths", "Eschers"}, validation.Rows[0].ArmyNames)
	s.Len(validation.PendingArmies, 2)

	summary, err := s.importer.Commit(&ImportCommitRequest{Rows: validation.Rows})
	s.Require().NoError(err)
	s.Equal(1, summary.Imported)
	s.Equal(2, summary.CreatedArmies)

	imported, err := s.modelRepo.GetAllWithArmies()
	s.Require().NoError(err)
	s.Require().Len(imported, 1)
	s.Len(imported[0].Armies, 2)
}

func TestImporterServiceSuite(t *testing.T) {
	suite.Run(t, new(ImporterServiceSuite))
}
