package handlers

import (
	"net/http"
	"strings"
	"testing"

	"modelforge-backend/internal/repository"
	"modelforge-backend/internal/service"
	"modelforge-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ImportExportHandlerSuite struct {
	suite.Suite
	db   *gorm.DB
	http *testutils.HTTPTestSuite
}

func (s *ImportExportHandlerSuite) SetupTest() {
	s.db = testutils.NewTestDB(s.T())
	s.http = testutils.SetupHTTPTest()

	modelRepo := repository.NewModelRepository(s.db)
	armyRepo := repository.NewArmyRepository(s.db)
	systemRepo := repository.NewGameSystemRepository(s.db)
	importer := service.NewImporterService(modelRepo, armyRepo, systemRepo)
	exporter := service.NewExporterService(modelRepo, systemRepo)
	handler := NewImportExportHandler(importer, exporter)

	group := s.http.Router.Group("/api/v1/models")
	group.GET("/export", handler.ExportModels)
	group.POST("/import/validate", handler.ValidateImport)
	group.POST("/import/commit", handler.CommitImport)
}

const importCSV = "name,game system,army,quantity,status\n" +
	"Goliath Ganger,Necromunda,Goliaths,5,Assembled\n"

func (s *ImportExportHandlerSuite) TestValidateRawBody() {
	recorder := s.http.MakeRawRequest(http.MethodPost, "/api/v1/models/import/validate", "text/csv", []byte(importCSV))

	var validation service.ImportValidation
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &validation)
	s.Require().Len(validation.Rows, 1)
	s.Equal(service.RowNew, validation.Rows[0].Classification)
	s.Equal([]string{"Necromunda"}, validation.PendingGameSystems)
	s.True(validation.NeedsReview)
}

func (s *ImportExportHandlerSuite) TestValidateRejectsMissingHeader() {
	recorder := s.http.MakeRawRequest(http.MethodPost, "/api/v1/models/import/validate", "text/csv", []byte("name,quantity\nGanger,5\n"))
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "required headers")
}

func (s *ImportExportHandlerSuite) TestCommitThenExport() {
	recorder := s.http.MakeRawRequest(http.MethodPost, "/api/v1/models/import/validate", "text/csv", []byte(importCSV))
	var validation service.ImportValidation
	testutils.ParseJSONResponse(s.T(), recorder, &validation)

	recorder = s.http.MakeRequest(http.MethodPost, "/api/v1/models/import/commit", service.ImportCommitRequest{Rows: validation.Rows})
	var summary service.ImportSummary
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &summary)
	s.Equal(1, summary.Imported)
	s.Equal(1, summary.CreatedGameSystems)
	s.Equal(1, summary.CreatedArmies)

	recorder = s.http.MakeRequest(http.MethodGet, "/api/v1/models/export", nil)
	s.Equal(http.StatusOK, recorder.Code)
	s.Equal("text/csv", recorder.Header().Get("Content-Type"))
	s.Contains(recorder.Header().Get("Content-Disposition"), "attachment")

	lines := strings.Split(strings.TrimRight(recorder.Body.String(), "\n"), "\n")
	s.Require().Len(lines, 2)
	s.Equal("name,game system,army,quantity,status", lines[0])
	s.Equal("Goliath Ganger,Necromunda,Goliaths,5,Assembled", lines[1])
}

func TestImportExportHandlerSuite(t *testing.T) {
	suite.Run(t, new(ImportExportHandlerSuite))
}
