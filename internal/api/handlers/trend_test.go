package handlers_test

import (
	"net/http"
	"testing"

	"teampulse-backend/internal/api/handlers"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/mocks"
	"teampulse-backend/internal/service"
	"teampulse-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// TrendHandlerTestSuite defines the test suite for TrendHandler
type TrendHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTrendServiceInterface
	handler     *handlers.TrendHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TrendHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTrendServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTrendHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	suite.httpSuite.Router.GET("/api/v1/trends", suite.handler.GetTrends)
}

// TearDownTest cleans up after each test
func (suite *TrendHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetTrends tests GET /api/v1/trends without a filter
func (suite *TrendHandlerTestSuite) TestGetTrends() {
	teamID := uuid.New()
	expected := &service.TrendsResponse{
		Points: []service.TrendPoint{
			{Date: "2026-08-01", TeamID: teamID, TeamName: "Platform", Score: 75},
		},
		Chart: []service.ChartRow{
			{"date": "2026-08-01", "Platform": 75},
		},
	}

	suite.mockService.EXPECT().
		GetTrends(gomock.Nil()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/trends", nil)

	var response service.TrendsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Points, 1)
	assert.Equal(suite.T(), "Platform", response.Points[0].TeamName)
	assert.Equal(suite.T(), 75, response.Points[0].Score)
	assert.Len(suite.T(), response.Chart, 1)
}

// TestGetTrendsFilteredByTeam tests that the team_id query is forwarded
func (suite *TrendHandlerTestSuite) TestGetTrendsFilteredByTeam() {
	teamID := uuid.New()

	suite.mockService.EXPECT().
		GetTrends(gomock.Any()).
		DoAndReturn(func(filter *uuid.UUID) (*service.TrendsResponse, error) {
			assert.NotNil(suite.T(), filter)
			assert.Equal(suite.T(), teamID, *filter)
			return &service.TrendsResponse{
				Points: []service.TrendPoint{},
				Chart:  []service.ChartRow{},
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/v1/trends?team_id="+teamID.String(), nil)

	var response service.TrendsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Empty(suite.T(), response.Points)
}

// TestGetTrendsInvalidTeamID tests that a malformed team_id maps to 400
func (suite *TrendHandlerTestSuite) TestGetTrendsInvalidTeamID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/v1/trends?team_id=not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid team ID")
}

// TestGetTrendsTeamNotFound tests that an unknown team maps to 404
func (suite *TrendHandlerTestSuite) TestGetTrendsTeamNotFound() {
	teamID := uuid.New()

	suite.mockService.EXPECT().
		GetTrends(gomock.Any()).
		Return(nil, apperrors.ErrTeamNotFound).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet,
		"/api/v1/trends?team_id="+teamID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
}

// TestTrendHandlerTestSuite runs the test suite
func TestTrendHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TrendHandlerTestSuite))
}
