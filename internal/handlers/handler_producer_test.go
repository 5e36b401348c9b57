package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Leonzuka/Projeto-Valex/internal/apperrors"
	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
	"github.com/Leonzuka/Projeto-Valex/internal/handlers"
	"github.com/Leonzuka/Projeto-Valex/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ProducerService ---
type MockProducerService struct {
	mock.Mock
}

func (m *MockProducerService) GetProducerByID(ctx context.Context, producerID int64) (*domain.Producer, error) {
	args := m.Called(ctx, producerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Producer), args.Error(1)
}

func (m *MockProducerService) ListProducers(ctx context.Context) ([]domain.Producer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Producer), args.Error(1)
}

func (m *MockProducerService) CreateProducer(ctx context.Context, req dto.CreateProducerRequest) (*domain.Producer, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Producer), args.Error(1)
}

func (m *MockProducerService) UpdateProducer(ctx context.Context, producerID int64, req dto.UpdateProducerRequest) (*domain.Producer, error) {
	args := m.Called(ctx, producerID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Producer), args.Error(1)
}

func (m *MockProducerService) DeleteProducer(ctx context.Context, producerID int64) error {
	args := m.Called(ctx, producerID)
	return args.Error(0)
}

// Ensure mock implements the interface
var _ portssvc.ProducerSvcFacade = (*MockProducerService)(nil)

// --- Mock AuthService ---
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.LoginResponse), args.Error(1)
}

func (m *MockAuthService) VerifyToken(ctx context.Context, token string) (string, error) {
	args := m.Called(ctx, token)
	return args.String(0), args.Error(1)
}

var _ portssvc.AuthSvcFacade = (*MockAuthService)(nil)

// --- Test Suite ---
type ProducerHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockProducerService *MockProducerService
	mockAuthService     *MockAuthService
}

func (suite *ProducerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterCustomValidations()

	suite.router = gin.New()
	suite.mockProducerService = new(MockProducerService)
	suite.mockAuthService = new(MockAuthService)

	cfg := &config.Config{IsProduction: true}
	container := &portssvc.ServiceContainer{
		Producer: suite.mockProducerService,
		Auth:     suite.mockAuthService,
	}
	handlers.RegisterRoutes(suite.router, cfg, container)
}

// --- Test Cases ---

func (suite *ProducerHandlerTestSuite) TestListProducers() {
	expected := []domain.Producer{
		{ID: 1, Name: "ADAILTON"},
		{ID: 2, Name: "BERNARDO"},
	}
	suite.mockProducerService.On("ListProducers", mock.Anything).Return(expected, nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/produtores", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	var got []domain.Producer
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Len(got, 2)
	suite.Equal("ADAILTON", got[0].Name)
}

func (suite *ProducerHandlerTestSuite) TestGetProducerNotFound() {
	suite.mockProducerService.On("GetProducerByID", mock.Anything, int64(99)).
		Return(nil, apperrors.ErrNotFound).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/produtores/99", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func (suite *ProducerHandlerTestSuite) TestGetProducerInvalidID() {
	req, _ := http.NewRequest(http.MethodGet, "/api/produtores/abc", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProducerService.AssertNotCalled(suite.T(), "GetProducerByID", mock.Anything, mock.Anything)
}

func (suite *ProducerHandlerTestSuite) TestCreateProducer() {
	body := `{"nome": "FAZENDA NOVA", "ggn": "4063061234567", "sigla": "FN"}`
	created := &domain.Producer{ID: 10, Name: "FAZENDA NOVA", GGN: "4063061234567", Initials: "FN"}

	suite.mockProducerService.On("CreateProducer", mock.Anything, mock.MatchedBy(func(r dto.CreateProducerRequest) bool {
		return r.Name == "FAZENDA NOVA" && r.GGN == "4063061234567"
	})).Return(created, nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/produtores", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code)
	var got domain.Producer
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &got))
	suite.Equal(int64(10), got.ID)
}

func (suite *ProducerHandlerTestSuite) TestCreateProducerRejectsMalformedGGN() {
	body := `{"nome": "FAZENDA NOVA", "ggn": "not-a-ggn"}`

	req, _ := http.NewRequest(http.MethodPost, "/api/produtores", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockProducerService.AssertNotCalled(suite.T(), "CreateProducer", mock.Anything, mock.Anything)
}

func (suite *ProducerHandlerTestSuite) TestCreateProducerDuplicateGGN() {
	body := `{"nome": "FAZENDA NOVA", "ggn": "4063061234567"}`
	suite.mockProducerService.On("CreateProducer", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/produtores", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusConflict, w.Code)
}

func (suite *ProducerHandlerTestSuite) TestGestorRoutesRequireToken() {
	req, _ := http.NewRequest(http.MethodGet, "/api/gestor/estatisticas", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *ProducerHandlerTestSuite) TestGestorRoutesRejectOtherRoles() {
	suite.mockAuthService.On("VerifyToken", mock.Anything, "token-abc").Return("cooperado", nil).Once()

	req, _ := http.NewRequest(http.MethodGet, "/api/gestor/estatisticas", nil)
	req.Header.Set("Authorization", "Bearer token-abc")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusForbidden, w.Code)
}

func TestProducerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProducerHandlerTestSuite))
}
