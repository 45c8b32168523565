package handlers_test

import (
	"net/http"
	"testing"

	"teampulse-backend/internal/api/handlers"
	"teampulse-backend/internal/auth"
	"teampulse-backend/internal/database/models"
	apperrors "teampulse-backend/internal/errors"
	"teampulse-backend/internal/mocks"
	"teampulse-backend/internal/service"
	"teampulse-backend/internal/testutils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// SettingsHandlerTestSuite defines the test suite for SettingsHandler
type SettingsHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockSettingsServiceInterface
	handler     *handlers.SettingsHandler
	httpSuite   *testutils.HTTPTestSuite
	user        *models.User
}

// SetupTest sets up the test suite with an authenticated test user
func (suite *SettingsHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockSettingsServiceInterface(suite.ctrl)
	suite.handler = handlers.NewSettingsHandler(suite.mockService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.user = &models.User{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Email:     "manager@test.com",
	}

	settings := suite.httpSuite.Router.Group("/api/v1/settings")
	settings.Use(func(c *gin.Context) {
		c.Set(auth.ContextUserKey, suite.user)
		c.Set(auth.ContextUserIDKey, suite.user.ID.String())
		c.Next()
	})
	{
		settings.GET("", suite.handler.GetSettings)
		settings.PUT("", suite.handler.UpdateSettings)
	}

	// Same routes without the user middleware, for unauthenticated cases
	suite.httpSuite.Router.GET("/bare/settings", suite.handler.GetSettings)
}

// TearDownTest cleans up after each test
func (suite *SettingsHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetSettings tests GET /api/v1/settings
func (suite *SettingsHandlerTestSuite) TestGetSettings() {
	expected := &service.SettingsResponse{CheckinsEnabled: true, Frequency: "weekly"}

	suite.mockService.EXPECT().
		GetSettings(suite.user.ID).
		Return(expected, nil).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/api/v1/settings", nil)

	var response service.SettingsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.True(suite.T(), response.CheckinsEnabled)
	assert.Equal(suite.T(), "weekly", response.Frequency)
}

// TestGetSettingsWithoutUser tests that a missing user maps to 401
func (suite *SettingsHandlerTestSuite) TestGetSettingsWithoutUser() {
	recorder := suite.httpSuite.MakeRequest(http.MethodGet, "/bare/settings", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusUnauthorized, "authentication required")
}

// TestUpdateSettings tests PUT /api/v1/settings
func (suite *SettingsHandlerTestSuite) TestUpdateSettings() {
	expected := &service.SettingsResponse{CheckinsEnabled: false, Frequency: "monthly"}

	suite.mockService.EXPECT().
		UpdateSettings(suite.user.ID, gomock.Any()).
		DoAndReturn(func(userID uuid.UUID, req *service.UpdateSettingsRequest) (*service.SettingsResponse, error) {
			assert.NotNil(suite.T(), req.CheckinsEnabled)
			assert.False(suite.T(), *req.CheckinsEnabled)
			assert.Equal(suite.T(), "monthly", req.Frequency)
			return expected, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/settings",
		map[string]interface{}{"checkins_enabled": false, "frequency": "monthly"})

	var response service.SettingsResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	assert.False(suite.T(), response.CheckinsEnabled)
	assert.Equal(suite.T(), "monthly", response.Frequency)
}

// TestUpdateSettingsInvalidFrequency tests that a bad frequency maps to 400
func (suite *SettingsHandlerTestSuite) TestUpdateSettingsInvalidFrequency() {
	suite.mockService.EXPECT().
		UpdateSettings(suite.user.ID, gomock.Any()).
		Return(nil, apperrors.NewValidationError("frequency", "must be one of: daily, weekly, monthly")).
		Times(1)

	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/settings",
		map[string]interface{}{"checkins_enabled": true, "frequency": "hourly"})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "frequency")
}

// TestUpdateSettingsMalformedBody tests that invalid JSON maps to 400
func (suite *SettingsHandlerTestSuite) TestUpdateSettingsMalformedBody() {
	recorder := suite.httpSuite.MakeRequest(http.MethodPut, "/api/v1/settings", "not-json")

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid request body")
}

// TestSettingsHandlerTestSuite runs the test suite
func TestSettingsHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}
