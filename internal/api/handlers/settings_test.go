package handlers

import (
	"net/http"
	"testing"

	"modelforge-backend/internal/repository"
	"modelforge-backend/internal/service"
	"modelforge-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

type SettingsHandlerSuite struct {
	suite.Suite
	db   *gorm.DB
	http *testutils.HTTPTestSuite
}

func (s *SettingsHandlerSuite) SetupTest() {
	s.db = testutils.NewTestDB(s.T())
	s.http = testutils.SetupHTTPTest()

	svc := service.NewSettingsService(
		repository.NewSettingRepository(s.db),
		repository.NewAdminRepository(s.db),
	)
	handler := NewSettingsHandler(svc)

	s.http.Router.GET("/api/v1/settings/min-stock-threshold", handler.GetMinStockThreshold)
	s.http.Router.PUT("/api/v1/settings/min-stock-threshold", handler.SetMinStockThreshold)
	s.http.Router.POST("/api/v1/admin/clear-all-data", handler.ClearAllData)
}

func (s *SettingsHandlerSuite) TestGetDefaultThreshold() {
	recorder := s.http.MakeRequest(http.MethodGet, "/api/v1/settings/min-stock-threshold", nil)

	var resp service.MinStockThresholdResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Equal(1, resp.MinStockThreshold)
}

func (s *SettingsHandlerSuite) TestSetAndGetThreshold() {
	recorder := s.http.MakeRequest(http.MethodPut, "/api/v1/settings/min-stock-threshold", map[string]interface{}{
		"min_stock_threshold": 4,
	})

	var resp service.MinStockThresholdResponse
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Equal(4, resp.MinStockThreshold)

	recorder = s.http.MakeRequest(http.MethodGet, "/api/v1/settings/min-stock-threshold", nil)
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Equal(4, resp.MinStockThreshold)
}

func (s *SettingsHandlerSuite) TestRejectsNegativeThreshold() {
	recorder := s.http.MakeRequest(http.MethodPut, "/api/v1/settings/min-stock-threshold", map[string]interface{}{
		"min_stock_threshold": -1,
	})
	testutils.AssertErrorResponse(s.T(), recorder, http.StatusBadRequest, "zero or greater")
}

func (s *SettingsHandlerSuite) TestClearAllData() {
	s.http.MakeRequest(http.MethodPut, "/api/v1/settings/min-stock-threshold", map[string]interface{}{
		"min_stock_threshold": 7,
	})

	recorder := s.http.MakeRequest(http.MethodPost, "/api/v1/admin/clear-all-data", nil)
	s.Equal(http.StatusOK, recorder.Code)

	var resp service.MinStockThresholdResponse
	recorder = s.http.MakeRequest(http.MethodGet, "/api/v1/settings/min-stock-threshold", nil)
	testutils.AssertJSONResponse(s.T(), recorder, http.StatusOK, &resp)
	s.Equal(1, resp.MinStockThreshold)
}

func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerSuite))
}
