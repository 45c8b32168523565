//go:build integration
// +build integration

package repository

import (
	"testing"

	"teampulse-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// TeamRepositoryTestSuite tests the TeamRepository
type TeamRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *TeamRepository
	memberRepo    *MemberRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *TeamRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.memberRepo = NewMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *TeamRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *TeamRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *TeamRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a team
func (suite *TeamRepositoryTestSuite) TestCreate() {
	team := suite.factories.Team.WithName("Platform")

	err := suite.repo.Create(team)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, team.ID)

	found, err := suite.repo.GetByID(team.ID)
	suite.NoError(err)
	suite.Equal("Platform", found.Name)
}

// TestGetByIDNotFound tests retrieving an unknown team
func (suite *TeamRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAll tests that teams come back ordered by creation time
func (suite *TeamRepositoryTestSuite) TestGetAll() {
	first := suite.factories.Team.WithName("First")
	second := suite.factories.Team.WithName("Second")
	suite.NoError(suite.repo.Create(first))
	suite.NoError(suite.repo.Create(second))

	teams, err := suite.repo.GetAll()

	suite.NoError(err)
	suite.Len(teams, 2)
	suite.Equal("First", teams[0].Name)
	suite.Equal("Second", teams[1].Name)
}

// TestGetWithMembers tests preloading members in insertion order
func (suite *TeamRepositoryTestSuite) TestGetWithMembers() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	alice := suite.factories.Member.WithTeam(team.ID)
	alice.Name = "Alice"
	bob := suite.factories.Member.WithTeam(team.ID)
	bob.Name = "Bob"
	suite.NoError(suite.memberRepo.CreateWithLog(alice))
	suite.NoError(suite.memberRepo.CreateWithLog(bob))

	found, err := suite.repo.GetWithMembers(team.ID)

	suite.NoError(err)
	suite.Len(found.Members, 2)
}

// TestGetMemberCount tests the derived member count
func (suite *TeamRepositoryTestSuite) TestGetMemberCount() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	count, err := suite.repo.GetMemberCount(team.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	member := suite.factories.Member.WithTeam(team.ID)
	suite.NoError(suite.memberRepo.CreateWithLog(member))

	count, err = suite.repo.GetMemberCount(team.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestDelete tests deleting a team
func (suite *TeamRepositoryTestSuite) TestDelete() {
	team := suite.factories.Team.Create()
	suite.NoError(suite.repo.Create(team))

	suite.NoError(suite.repo.Delete(team.ID))

	_, err := suite.repo.GetByID(team.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteNotFound tests deleting an unknown team
func (suite *TeamRepositoryTestSuite) TestDeleteNotFound() {
	err := suite.repo.Delete(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestTeamRepositoryTestSuite runs the test suite
func TestTeamRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(TeamRepositoryTestSuite))
}
