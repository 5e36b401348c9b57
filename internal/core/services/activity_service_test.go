package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/core/services"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ActivityRepository ---
type MockActivityRepository struct {
	mock.Mock
}

func (m *MockActivityRepository) SaveActivity(ctx context.Context, activity *domain.HarvestActivity) error {
	args := m.Called(ctx, activity)
	if args.Error(0) == nil {
		activity.ID = 42
	}
	return args.Error(0)
}

func (m *MockActivityRepository) ListActivitiesForDay(ctx context.Context, producerID int64, day time.Time) ([]domain.ActivityHistoryEntry, error) {
	args := m.Called(ctx, producerID, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityHistoryEntry), args.Error(1)
}

func (m *MockActivityRepository) ListActivityHistory(ctx context.Context, producerID int64, limit int) ([]domain.ActivityHistoryEntry, error) {
	args := m.Called(ctx, producerID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ActivityHistoryEntry), args.Error(1)
}

// --- Test Suite ---
type ActivityServiceTestSuite struct {
	suite.Suite
	mockRepo *MockActivityRepository
	service  portssvc.ActivitySvcFacade
}

func (suite *ActivityServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockActivityRepository)
	suite.service = services.NewActivityService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ActivityServiceTestSuite) TestCreateActivity() {
	ctx := context.Background()
	req := dto.CreateActivityRequest{
		ProducerID:   1,
		FarmID:       2,
		VarietyID:    3,
		ActivityType: "COLHEITA",
		PalletCount:  5,
	}

	suite.mockRepo.On("SaveActivity", ctx, mock.MatchedBy(func(a *domain.HarvestActivity) bool {
		return a.ProducerID == 1 && a.ActivityType == "COLHEITA" && a.PalletCount == 5
	})).Return(nil).Once()

	activity, err := suite.service.CreateActivity(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(42), activity.ID)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ActivityServiceTestSuite) TestGetDailySummaryGroupsByVarietyAndClassification() {
	ctx := context.Background()
	entries := []domain.ActivityHistoryEntry{
		{VarietyName: "Vitoria", ClassificationName: "CAT I", PalletCount: 3},
		{VarietyName: "Vitoria", ClassificationName: "CAT II", PalletCount: 2},
		{VarietyName: "Arra 15", ClassificationName: "CAT I", PalletCount: 4},
		{VarietyName: "Arra 15", ClassificationName: "", PalletCount: 1},
	}
	suite.mockRepo.On("ListActivitiesForDay", ctx, int64(7), mock.Anything).Return(entries, nil).Once()

	summary, err := suite.service.GetDailySummary(ctx, 7)

	suite.Require().NoError(err)
	suite.Equal(10, summary.TotalPallets)

	vitoria := summary.ByVariety["Vitoria"]
	suite.Equal(5, vitoria.TotalPallets)
	suite.Equal(3, vitoria.Classifications["CAT I"])
	suite.Equal(2, vitoria.Classifications["CAT II"])

	arra := summary.ByVariety["Arra 15"]
	suite.Equal(5, arra.TotalPallets)
	// The unclassified pallet counts toward the variety total only.
	suite.Equal(4, arra.Classifications["CAT I"])
	suite.Len(arra.Classifications, 1)
}

func (suite *ActivityServiceTestSuite) TestGetHistoryRendersLocalTime() {
	ctx := context.Background()
	createdAt := time.Date(2026, 3, 10, 18, 30, 0, 0, time.UTC)
	entries := []domain.ActivityHistoryEntry{{
		ID:           1,
		ActivityType: "COLHEITA",
		PalletCount:  2,
		CreatedAt:    createdAt,
		FarmName:     "Fazenda Uva Nova",
		VarietyName:  "Vitoria",
	}}
	suite.mockRepo.On("ListActivityHistory", ctx, int64(7), 20).Return(entries, nil).Once()

	history, err := suite.service.GetHistory(ctx, 7)

	suite.Require().NoError(err)
	suite.Require().Len(history, 1)
	// 18:30 UTC is 15:30 in Sao Paulo.
	assert.Equal(suite.T(), "10/03/2026 15:30", history[0].Date)
	assert.Equal(suite.T(), "Fazenda Uva Nova", history[0].Farm)
}

func TestActivityServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ActivityServiceTestSuite))
}
