package services_test

import (
	"context"
	"strings"
	"testing"

	"github.com/Leonzuka/Projeto-Valex/internal/apperrors"
	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/core/services"
	"github.com/Leonzuka/Projeto-Valex/internal/ingest"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock BalanceteRepository ---
type MockBalanceteRepository struct {
	mock.Mock
}

func (m *MockBalanceteRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	tx, _ := args.Get(0).(pgx.Tx)
	return tx, args.Error(1)
}

func (m *MockBalanceteRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockBalanceteRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	return m.Called(ctx, tx).Error(0)
}

func (m *MockBalanceteRepository) AcquireImportLockTx(ctx context.Context, tx pgx.Tx, key int64) error {
	return m.Called(ctx, tx, key).Error(0)
}

func (m *MockBalanceteRepository) AcquireImportLock(ctx context.Context, key int64) (func(), error) {
	args := m.Called(ctx, key)
	if args.Error(1) != nil {
		return nil, args.Error(1)
	}
	return func() {}, nil
}

func (m *MockBalanceteRepository) FindPeriodForUpdateTx(ctx context.Context, tx pgx.Tx, year int, month int) (*domain.AccountingPeriod, error) {
	args := m.Called(ctx, tx, year, month)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountingPeriod), args.Error(1)
}

func (m *MockBalanceteRepository) CreatePeriodTx(ctx context.Context, tx pgx.Tx, period *domain.AccountingPeriod) error {
	args := m.Called(ctx, tx, period)
	if args.Error(0) == nil {
		period.ID = 77
	}
	return args.Error(0)
}

func (m *MockBalanceteRepository) ListBalanceLines(ctx context.Context, competence string) ([]domain.BalanceLine, error) {
	args := m.Called(ctx, competence)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BalanceLine), args.Error(1)
}

func (m *MockBalanceteRepository) ListCompetences(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockBalanceteRepository) FindLatestCompetence(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockBalanceteRepository) InsertBalanceLinesTx(ctx context.Context, tx pgx.Tx, lines []domain.BalanceLine) (int, error) {
	args := m.Called(ctx, tx, lines)
	return args.Int(0), args.Error(1)
}

// balanceteFixture renders a minimal fixed-width report with the given data
// rows placed at the layout offsets.
func balanceteFixture(header bool, rows ...map[string]string) []byte {
	var b strings.Builder
	if header {
		b.WriteString("COOPERATIVA VALEX                EMISSAO: 05/04/24\n")
		b.WriteString("ACUMULADO DO MES Janeiro a Marco\n")
	} else {
		b.WriteString("RELATORIO SEM CABECALHO\n\n")
	}
	b.WriteString("CONTA                    REDUCAO TIPO DESCRICAO            VALOR ANTERIOR  DEBITO  CREDITO  SALDO ATUAL\n")
	b.WriteString(strings.Repeat("-", ingest.BalanceteLayout.Width()) + "\n")

	for _, fields := range rows {
		runes := []rune(strings.Repeat(" ", ingest.BalanceteLayout.Width()))
		for _, col := range ingest.BalanceteLayout {
			val, ok := fields[col.Name]
			if !ok {
				continue
			}
			for i, r := range val {
				if col.Start+i >= col.End {
					break
				}
				runes[col.Start+i] = r
			}
		}
		b.WriteString(string(runes) + "\n")
	}
	return []byte(b.String())
}

// --- Test Suite ---
type BalanceteImportServiceTestSuite struct {
	suite.Suite
	mockRepo *MockBalanceteRepository
	service  portssvc.BalanceteImportSvc
}

func (suite *BalanceteImportServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockBalanceteRepository)
	suite.service = services.NewBalanceteImportService(suite.mockRepo)
}

func (suite *BalanceteImportServiceTestSuite) allowTxPlumbing() {
	suite.mockRepo.On("Begin", mock.Anything).Return(nil, nil)
	suite.mockRepo.On("Commit", mock.Anything, mock.Anything).Return(nil)
	suite.mockRepo.On("Rollback", mock.Anything, mock.Anything).Return(nil)
	suite.mockRepo.On("AcquireImportLockTx", mock.Anything, mock.Anything, mock.Anything).Return(nil)
}

// --- Test Cases ---

func (suite *BalanceteImportServiceTestSuite) TestImport_CreatesPeriodFromFilename() {
	ctx := context.Background()
	data := balanceteFixture(true, map[string]string{
		"conta": "1.1.2", "reducao": "123", "tipo": "A", "descricao": "CAIXA",
		"valor_anterior": "1.000,00", "valor_periodo_debito": "10,00",
		"valor_periodo_credito": "5,00", "valor_atual": "1.005,00",
	})

	suite.allowTxPlumbing()
	suite.mockRepo.On("FindPeriodForUpdateTx", ctx, mock.Anything, 2024, 3).Return(nil, nil).Once()
	suite.mockRepo.On("CreatePeriodTx", ctx, mock.Anything, mock.MatchedBy(func(p *domain.AccountingPeriod) bool {
		return p.Year == 2024 && p.Month == 3 && p.Status == domain.PeriodOpen
	})).Return(nil).Once()
	suite.mockRepo.On("InsertBalanceLinesTx", ctx, mock.Anything, mock.MatchedBy(func(lines []domain.BalanceLine) bool {
		return len(lines) == 1 && lines[0].AccountCode == "1.1.2" && lines[0].Competence == "2024-03"
	})).Return(1, nil).Once()

	result, err := suite.service.ImportBalancete(ctx, "BALANCETE 2024.3.TXT", data)

	suite.Require().NoError(err)
	suite.Equal(1, result.Imported)
	suite.Require().NotNil(result.Competence)
	suite.Equal("2024-03", *result.Competence)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *BalanceteImportServiceTestSuite) TestImport_ExistingPeriodIsReused() {
	ctx := context.Background()
	data := balanceteFixture(true, map[string]string{
		"conta": "1.1", "tipo": "S", "descricao": "ATIVO CIRCULANTE",
		"valor_anterior": "0,00", "valor_periodo_debito": "0,00",
		"valor_periodo_credito": "0,00", "valor_atual": "0,00",
	})

	suite.allowTxPlumbing()
	suite.mockRepo.On("FindPeriodForUpdateTx", ctx, mock.Anything, 2024, 3).
		Return(&domain.AccountingPeriod{ID: 5, Year: 2024, Month: 3, Status: domain.PeriodOpen}, nil).Once()
	suite.mockRepo.On("InsertBalanceLinesTx", ctx, mock.Anything, mock.Anything).Return(1, nil).Once()

	_, err := suite.service.ImportBalancete(ctx, "BALANCETE 2024.3.TXT", data)

	suite.Require().NoError(err)
	suite.mockRepo.AssertNotCalled(suite.T(), "CreatePeriodTx", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceteImportServiceTestSuite) TestImport_NoCompetenceStoresLinesWithoutPeriod() {
	ctx := context.Background()
	data := balanceteFixture(false, map[string]string{
		"conta": "1.1", "tipo": "S", "descricao": "ATIVO CIRCULANTE",
		"valor_anterior": "0,00", "valor_periodo_debito": "0,00",
		"valor_periodo_credito": "0,00", "valor_atual": "0,00",
	})

	suite.allowTxPlumbing()
	suite.mockRepo.On("InsertBalanceLinesTx", ctx, mock.Anything, mock.MatchedBy(func(lines []domain.BalanceLine) bool {
		return len(lines) == 1 && lines[0].Competence == ""
	})).Return(1, nil).Once()

	result, err := suite.service.ImportBalancete(ctx, "RELATORIO.TXT", data)

	suite.Require().NoError(err)
	suite.Nil(result.Competence)
	suite.mockRepo.AssertNotCalled(suite.T(), "FindPeriodForUpdateTx", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BalanceteImportServiceTestSuite) TestImport_UnrecognizedFileIs400() {
	ctx := context.Background()

	result, err := suite.service.ImportBalancete(ctx, "BALANCETE 2024.3.TXT", []byte("nada\nde util\n"))

	suite.Require().Error(err)
	suite.Nil(result)

	var appErr *apperrors.AppError
	suite.Require().ErrorAs(err, &appErr)
	suite.Equal(400, appErr.Code)
	suite.mockRepo.AssertNotCalled(suite.T(), "Begin", mock.Anything)
}

func TestBalanceteImportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BalanceteImportServiceTestSuite))
}
