package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/Leonzuka/Projeto-Valex/internal/apperrors"
	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/core/services"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProducerRepository ---
type MockProducerRepository struct {
	mock.Mock
}

func (m *MockProducerRepository) FindProducerByID(ctx context.Context, producerID int64) (*domain.Producer, error) {
	args := m.Called(ctx, producerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Producer), args.Error(1)
}

func (m *MockProducerRepository) ListProducers(ctx context.Context) ([]domain.Producer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Producer), args.Error(1)
}

func (m *MockProducerRepository) SaveProducer(ctx context.Context, producer *domain.Producer) error {
	args := m.Called(ctx, producer)
	if args.Error(0) == nil {
		producer.ID = 7
	}
	return args.Error(0)
}

func (m *MockProducerRepository) UpdateProducer(ctx context.Context, producer *domain.Producer) error {
	args := m.Called(ctx, producer)
	return args.Error(0)
}

func (m *MockProducerRepository) DeleteProducer(ctx context.Context, producerID int64) error {
	args := m.Called(ctx, producerID)
	return args.Error(0)
}

// --- Test Suite ---
type ProducerServiceTestSuite struct {
	suite.Suite
	mockRepo *MockProducerRepository
	service  portssvc.ProducerSvcFacade
}

func (suite *ProducerServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockProducerRepository)
	suite.service = services.NewProducerService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *ProducerServiceTestSuite) TestCreateProducer() {
	req := dto.CreateProducerRequest{
		Name:     "FAZENDA SANTA ROSA",
		GGN:      "4063061234567",
		Initials: "FSR",
	}

	suite.mockRepo.On("SaveProducer", mock.Anything, mock.MatchedBy(func(p *domain.Producer) bool {
		return p.Name == req.Name && p.GGN == req.GGN && p.Initials == req.Initials
	})).Return(nil).Once()

	producer, err := suite.service.CreateProducer(context.Background(), req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(7), producer.ID)
	assert.Equal(suite.T(), "FAZENDA SANTA ROSA", producer.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProducerServiceTestSuite) TestCreateProducerDuplicateGGN() {
	suite.mockRepo.On("SaveProducer", mock.Anything, mock.Anything).Return(apperrors.ErrDuplicate).Once()

	producer, err := suite.service.CreateProducer(context.Background(), dto.CreateProducerRequest{Name: "X"})

	assert.Nil(suite.T(), producer)
	assert.ErrorIs(suite.T(), err, apperrors.ErrDuplicate)
}

func (suite *ProducerServiceTestSuite) TestUpdateProducerAppliesOnlyProvidedFields() {
	existing := &domain.Producer{
		ID:       3,
		Name:     "ANTIGO",
		GGN:      "4063061234567",
		Initials: "AN",
		Phone:    "87 99999-0000",
	}
	suite.mockRepo.On("FindProducerByID", mock.Anything, int64(3)).Return(existing, nil).Once()

	newName := "NOVO NOME"
	suite.mockRepo.On("UpdateProducer", mock.Anything, mock.MatchedBy(func(p *domain.Producer) bool {
		return p.ID == 3 && p.Name == newName && p.GGN == "4063061234567" && p.Phone == "87 99999-0000"
	})).Return(nil).Once()

	producer, err := suite.service.UpdateProducer(context.Background(), 3, dto.UpdateProducerRequest{Name: &newName})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), newName, producer.Name)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ProducerServiceTestSuite) TestUpdateProducerNotFound() {
	suite.mockRepo.On("FindProducerByID", mock.Anything, int64(99)).Return(nil, apperrors.ErrNotFound).Once()

	producer, err := suite.service.UpdateProducer(context.Background(), 99, dto.UpdateProducerRequest{})

	assert.Nil(suite.T(), producer)
	assert.ErrorIs(suite.T(), err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "UpdateProducer", mock.Anything, mock.Anything)
}

func (suite *ProducerServiceTestSuite) TestListProducersNormalizesNil() {
	suite.mockRepo.On("ListProducers", mock.Anything).Return([]domain.Producer(nil), nil).Once()

	producers, err := suite.service.ListProducers(context.Background())

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), producers)
	assert.Empty(suite.T(), producers)
}

func (suite *ProducerServiceTestSuite) TestDeleteProducerPropagatesError() {
	suite.mockRepo.On("DeleteProducer", mock.Anything, int64(5)).Return(errors.New("boom")).Once()

	err := suite.service.DeleteProducer(context.Background(), 5)

	assert.Error(suite.T(), err)
}

func TestProducerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProducerServiceTestSuite))
}
