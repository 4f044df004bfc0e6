package handlers

import (
	"net/http"
	"testing"

	"modelforge-backend/internal/database/models"
	"modelforge-backend/internal/repository"
	"modelforge-backend/internal/service"
	"modelforge-backend/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type ModelHandlerSuite struct {
	suite.Suite
	db     *gorm.DB
	http   *testutils.HTTPTestSuite
	system *models.GameSystem
}

func (s *ModelHandlerSuite) SetupTest() {
	s.db = testutils.NewTestDB(s.T())
	s.http = testutils.SetupHTTPTest()

	modelRepo := repository.NewModelRepository(s.db)
	armyRepo := repository.NewArmyRepository(s.db)
	systemRepo := repository.NewGameSystemRepository(s.db)
	svc := service.NewModelService(modelRepo, armyRepo, systemRepo, validator.New())
	handler := NewModelHandler(svc)

	group := s.http.Router.Group("/api/v1/models")
	group.GET("", handler.ListModels)
	group.POST("", handler.CreateModel)
	group.POST("/bulk", handler.BulkAddModels)
	group.PUT("/bulk", handler.BulkUpdateModels)
	group.POST("/bulk-delete", handler.BulkDeleteModels)
	group.GET("/:id", handler.GetModel)
	group.PUT("/:id", handler.UpdateModel)
	group.DELETE("/:id", handler.DeleteModel)

	s.system = testutils.NewGameSystemFactory().Create()
	s.Require().NoError(systemRepo.Create(s.system))
}

func (s *ModelHandlerSuite) createModel(name string) service.ModelResponse {
	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/models", map[string]interface{}{
		"name":           name,
		"game_system_id": s.system.ID,
		"quantity":       5,
		"status":         "Assembled",
	})

	var created service.ModelResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusCreated, &created)
	return created
}

func (s *ModelHandlerSuite) TestCreateWithUnknownGameSystem() {
	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/models", map[string]interface{}{
		"name":           "Ganger",
		"game_system_id": uuid.New(),
		"quantity":       5,
		"status":         "Assembled",
	})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusNotFound, "not found")
}

func (s *ModelHandlerSuite) TestCreateWithInvalidStatus() {
	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/models", map[string]interface{}{
		"name":           "Ganger",
		"game_system_id": s.system.ID,
		"quantity":       5,
		"status":         "Shiny",
	})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "painting status")
}

func (s *ModelHandlerSuite) TestBulkAdd() {
	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/models/bulk", map[string]interface{}{
		"models": []map[string]interface{}{
			{"name": "Ganger A", "game_system_id": s.system.ID, "quantity": 5, "status": "Assembled"},
			{"name": "Ganger B", "game_system_id": s.system.ID, "quantity": 3, "status": "Primed"},
		},
	})

	var resp service.BulkAddModelsResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusCreated, &resp)
	s.Equal(2, resp.Created)
}

func (s *ModelHandlerSuite) TestBulkUpdate() {
	first := s.createModel("Ganger A")
	second := s.createModel("Ganger B")

	recorder := s.http.MakeRequest(http.MethodPut, "/api/v1/models/bulk", map[string]interface{}{
		"ids":    []uuid.UUID{first.ID, second.ID},
		"status": "Primed",
	})

	var resp service.BulkUpdateModelsResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Equal(2, resp.Updated)
}

func (s *ModelHandlerSuite) TestBulkUpdateUnknownIDRejectsBatch() {
	first := s.createModel("Ganger A")

	recorder := s.http.MakeRequest(http.MethodPut, "/api/v1/models/bulk", map[string]interface{}{
		"ids":    []uuid.UUID{first.ID, uuid.New()},
		"status": "Primed",
	})
	s.Equal(http.StatusBadRequest, recorder.Code)

	// The known model is untouched.
	recorder = s.http.MakeRequest(http.MethodGet, "/api/v1/models/"+first.ID.String(), nil)
	var loaded service.ModelResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &loaded)
	s.Equal(models.StatusAssembled, loaded.Status)
}

func (s *ModelHandlerSuite) TestBulkDelete() {
	first := s.createModel("Ganger A")
	second := s.createModel("Ganger B")

	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/models/bulk-delete", map[string]interface{}{
		"ids": []uuid.UUID{first.ID, second.ID, uuid.New()},
	})

	var resp service.BulkDeleteModelsResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Equal(int64(2), resp.Deleted)
}

func TestModelHandlerSuite(t *testing.T) {
	suite.Run(t, new(ModelHandlerSuite))
}
