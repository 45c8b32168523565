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

// TeamHandlerTestSuite defines the test suite for TeamHandler
type TeamHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockTeamServiceInterface
	handler     *handlers.TeamHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *TeamHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockTeamServiceInterface(suite.ctrl)
	suite.handler = handlers.NewTeamHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	teams := v1.Group("/teams")
	{
		teams.POST("", suite.handler.CreateTeam)
		teams.GET("", suite.handler.ListTeams)
		teams.GET("/:id", suite.handler.GetTeam)
		teams.DELETE("/:id", suite.handler.DeleteTeam)
	}
}

// TearDownTest cleans up after each test
func (suite *TeamHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateTeam tests POST /api/v1/teams
func (suite *TeamHandlerTestSuite) TestCreateTeam() {
	teamID := uuid.New()
	expected := &service.TeamResponse{ID: teamID, Name: "Platform"}

	suite.mockService.EXPECT().
		CreateTeam(gomock.Any()).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams",
		map[string]string{"name": "Platform"})

	var response service.TeamResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &response)
	assert.Equal(suite.T(), "Platform", response.Name)
	assert.Equal(suite.T(), teamID, response.ID)
}

// TestCreateTeamValidationError tests that validation failures map to 400
func (suite *TeamHandlerTestSuite) TestCreateTeamValidationError() {
	suite.mockService.EXPECT().
		CreateTeam(gomock.Any()).
		Return(nil, apperrors.NewValidationError("name", "team name must be between 1 and 50 characters")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/teams",
		map[string]string{"name": ""})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "name")
}

// TestListTeams tests GET /api/v1/teams
func (suite *TeamHandlerTestSuite) TestListTeams() {
	teams := []service.TeamResponse{
		{ID: uuid.New(), Name: "Platform", MemberCount: 2, AverageSentiment: "happy"},
		{ID: uuid.New(), Name: "Design", MemberCount: 0},
	}

	suite.mockService.EXPECT().ListTeams().Return(teams, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams", nil)

	var response map[string]interface{}
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Equal(suite.T(), float64(2), response["total"])
}

// TestGetTeam tests GET /api/v1/teams/:id
func (suite *TeamHandlerTestSuite) TestGetTeam() {
	teamID := uuid.New()
	expected := &service.TeamDetailResponse{
		ID:      teamID,
		Name:    "Platform",
		Members: []service.MemberResponse{{ID: uuid.New(), Name: "Alice"}},
	}

	suite.mockService.EXPECT().GetTeamByID(teamID).Return(expected, nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+teamID.String(), nil)

	var response service.TeamDetailResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.Len(suite.T(), response.Members, 1)
}

// TestGetTeamInvalidID tests that a malformed id is a 400
func (suite *TeamHandlerTestSuite) TestGetTeamInvalidID() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid team ID")
}

// TestGetTeamNotFound tests that an unknown team id is a 404
func (suite *TeamHandlerTestSuite) TestGetTeamNotFound() {
	teamID := uuid.New()

	suite.mockService.EXPECT().GetTeamByID(teamID).Return(nil, apperrors.ErrTeamNotFound).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/teams/"+teamID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "team not found")
}

// TestDeleteTeam tests DELETE /api/v1/teams/:id
func (suite *TeamHandlerTestSuite) TestDeleteTeam() {
	teamID := uuid.New()

	suite.mockService.EXPECT().DeleteTeam(teamID).Return(nil).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/"+teamID.String(), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestDeleteTeamWithMembersConflict tests that a non-empty team maps to 409
func (suite *TeamHandlerTestSuite) TestDeleteTeamWithMembersConflict() {
	teamID := uuid.New()

	suite.mockService.EXPECT().DeleteTeam(teamID).Return(apperrors.ErrTeamHasMembers).Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodDelete, "/api/v1/teams/"+teamID.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "still has members")
}

// TestTeamHandlerTestSuite runs the test suite
func TestTeamHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(TeamHandlerTestSuite))
}
