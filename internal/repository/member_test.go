//go:build integration
// +build integration

package repository

import (
	"testing"

	"teampulse-backend/internal/database/models"
	"teampulse-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// MemberRepositoryTestSuite tests the MemberRepository transactions
type MemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *MemberRepository
	teamRepo      *TeamRepository
	logRepo       *SentimentLogRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *MemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewMemberRepository(suite.baseTestSuite.DB)
	suite.teamRepo = NewTeamRepository(suite.baseTestSuite.DB)
	suite.logRepo = NewSentimentLogRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *MemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *MemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *MemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *MemberRepositoryTestSuite) createTeam() *models.Team {
	team := suite.factories.Team.Create()
	suite.Require().NoError(suite.teamRepo.Create(team))
	return team
}

// TestCreateWithLog tests that creating a member also writes the
// initial sentiment log row
func (suite *MemberRepositoryTestSuite) TestCreateWithLog() {
	team := suite.createTeam()
	member := suite.factories.Member.WithTeam(team.ID)
	member.Sentiment = models.SentimentHappy

	err := suite.repo.CreateWithLog(member)

	suite.NoError(err)

	count, err := suite.logRepo.CountByMember(member.ID)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	logs, err := suite.logRepo.List(&team.ID)
	suite.NoError(err)
	suite.Len(logs, 1)
	suite.Equal(models.SentimentHappy, logs[0].Sentiment)
}

// TestUpdateSentimentWithLog tests that updating sentiment appends a log
// row and changes the member's current value
func (suite *MemberRepositoryTestSuite) TestUpdateSentimentWithLog() {
	team := suite.createTeam()
	member := suite.factories.Member.WithTeam(team.ID)
	suite.Require().NoError(suite.repo.CreateWithLog(member))

	updated, err := suite.repo.UpdateSentimentWithLog(member.ID, models.SentimentSad)

	suite.NoError(err)
	suite.Equal(models.SentimentSad, updated.Sentiment)

	found, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.Equal(models.SentimentSad, found.Sentiment)

	count, err := suite.logRepo.CountByMember(member.ID)
	suite.NoError(err)
	suite.Equal(int64(2), count)
}

// TestUpdateSentimentWithLogNotFound tests updating an unknown member
func (suite *MemberRepositoryTestSuite) TestUpdateSentimentWithLogNotFound() {
	_, err := suite.repo.UpdateSentimentWithLog(uuid.New(), models.SentimentHappy)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestDeleteWithLogs tests that deleting a member removes its log rows
// in the same transaction
func (suite *MemberRepositoryTestSuite) TestDeleteWithLogs() {
	team := suite.createTeam()
	member := suite.factories.Member.WithTeam(team.ID)
	suite.Require().NoError(suite.repo.CreateWithLog(member))
	_, err := suite.repo.UpdateSentimentWithLog(member.ID, models.SentimentHappy)
	suite.Require().NoError(err)

	suite.NoError(suite.repo.DeleteWithLogs(member.ID))

	_, err = suite.repo.GetByID(member.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	count, err := suite.logRepo.CountByMember(member.ID)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestDeleteWithLogsTwice tests that the second delete reports not found
func (suite *MemberRepositoryTestSuite) TestDeleteWithLogsTwice() {
	team := suite.createTeam()
	member := suite.factories.Member.WithTeam(team.ID)
	suite.Require().NoError(suite.repo.CreateWithLog(member))

	suite.NoError(suite.repo.DeleteWithLogs(member.ID))
	suite.ErrorIs(suite.repo.DeleteWithLogs(member.ID), gorm.ErrRecordNotFound)
}

// TestGetByTeamID tests listing team members in insertion order
func (suite *MemberRepositoryTestSuite) TestGetByTeamID() {
	team := suite.createTeam()
	other := suite.createTeam()

	first := suite.factories.Member.WithTeam(team.ID)
	first.Name = "First"
	second := suite.factories.Member.WithTeam(team.ID)
	second.Name = "Second"
	outsider := suite.factories.Member.WithTeam(other.ID)
	suite.Require().NoError(suite.repo.CreateWithLog(first))
	suite.Require().NoError(suite.repo.CreateWithLog(second))
	suite.Require().NoError(suite.repo.CreateWithLog(outsider))

	members, err := suite.repo.GetByTeamID(team.ID)

	suite.NoError(err)
	suite.Len(members, 2)
	suite.Equal("First", members[0].Name)
	suite.Equal("Second", members[1].Name)
}

// TestMemberRepositoryTestSuite runs the test suite
func TestMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(MemberRepositoryTestSuite))
}
