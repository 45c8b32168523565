//go:build integration
// +build integration

package repository

import (
	"testing"

	"teampulse-backend/internal/database/models"
	"teampulse-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// SettingsRepositoryTestSuite tests the SettingsRepository
type SettingsRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *SettingsRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *SettingsRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewSettingsRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *SettingsRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *SettingsRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *SettingsRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestGetByUserIDNotFound tests reading before any settings are saved
func (suite *SettingsRepositoryTestSuite) TestGetByUserIDNotFound() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(user))

	_, err := suite.repo.GetByUserID(user.ID)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUpsert tests that a second upsert updates the existing row
func (suite *SettingsRepositoryTestSuite) TestUpsert() {
	user := suite.factories.User.Create()
	suite.Require().NoError(suite.userRepo.Create(user))

	first := suite.factories.Settings.Create(user.ID)
	suite.NoError(suite.repo.Upsert(first))

	second := &models.Settings{
		UserID:          user.ID,
		CheckinsEnabled: false,
		Frequency:       models.CheckinFrequencyDaily,
	}
	suite.NoError(suite.repo.Upsert(second))

	found, err := suite.repo.GetByUserID(user.ID)
	suite.NoError(err)
	suite.False(found.CheckinsEnabled)
	suite.Equal(models.CheckinFrequencyDaily, found.Frequency)

	var count int64
	suite.baseTestSuite.DB.Model(&models.Settings{}).Where("user_id = ?", user.ID).Count(&count)
	suite.Equal(int64(1), count)
}

// TestSettingsRepositoryTestSuite runs the test suite
func TestSettingsRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SettingsRepositoryTestSuite))
}
