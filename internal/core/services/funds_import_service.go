package services

import (
	"context"
	"time"

	"github.com/Leonzuka/Projeto-Valex/internal/apperrors"
	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
	"github.com/Leonzuka/Projeto-Valex/internal/ingest"
)

type fundsImportService struct {
	BaseService
	fundRepo portsrepo.FundRepositoryFacade
}

// NewFundsImportService creates the special-funds workbook import service.
func NewFundsImportService(fundRepo portsrepo.FundRepositoryFacade) portssvc.FundsImportSvc {
	return &fundsImportService{fundRepo: fundRepo}
}

// ImportSpecialFunds replaces the fund entries of the given period with the
// FATES and investment-fund sheets of the workbook. Re-imports of the same
// month replace their previous data instead of appending.
func (s *fundsImportService) ImportSpecialFunds(ctx context.Context, year int, month int, data []byte) (*dto.FundsImportResult, error) {
	if year < 2000 || month < 1 || month > 12 {
		return nil, apperrors.NewAppError(400, "período inválido", apperrors.ErrValidation)
	}

	workbook, err := ingest.ParseFundsWorkbook(data)
	if err != nil {
		return nil, apperrors.NewAppError(400, "formato de arquivo não reconhecido", err)
	}
	s.LogInfo(ctx, "Funds workbook parsed",
		"fates_rows", len(workbook.FATES),
		"investment_rows", len(workbook.Investment),
		"year", year,
		"month", month,
	)

	tx, err := s.fundRepo.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to start import", err)
	}
	defer s.fundRepo.Rollback(ctx, tx)

	if err := s.fundRepo.AcquireImportLockTx(ctx, tx, portsrepo.LockKeyFundsImport); err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock import", err)
	}

	period, err := s.fundRepo.FindPeriodForUpdateTx(ctx, tx, year, month)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load accounting period", err)
	}
	if period == nil {
		period = &domain.AccountingPeriod{
			Year:     year,
			Month:    month,
			Status:   domain.PeriodOpen,
			OpenedAt: time.Now().UTC(),
		}
		if err := s.fundRepo.CreatePeriodTx(ctx, tx, period); err != nil {
			return nil, apperrors.NewAppError(500, "failed to open accounting period", err)
		}
	}

	if err := s.fundRepo.ClearPeriodEntriesTx(ctx, tx, period.ID); err != nil {
		return nil, apperrors.NewAppError(500, "failed to clear previous fund entries", err)
	}

	entries := make([]domain.SpecialFundEntry, 0, len(workbook.FATES)+len(workbook.Investment))
	entries = append(entries, fundEntries(domain.FundFATES, period.ID, workbook.FATES)...)
	entries = append(entries, fundEntries(domain.FundInvestment, period.ID, workbook.Investment)...)

	imported, err := s.fundRepo.InsertFundEntriesTx(ctx, tx, entries)
	if err != nil {
		s.LogError(ctx, err, "Funds import failed", "inserted_so_far", imported)
		return nil, apperrors.NewAppError(500, "failed to persist fund entries", err)
	}
	if err := s.fundRepo.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(500, "failed to commit import", err)
	}

	s.LogInfo(ctx, "Funds import finished", "imported", imported, "period_id", period.ID)
	return &dto.FundsImportResult{
		Message:  "Fundos especiais importados com sucesso",
		PeriodID: period.ID,
		Imported: imported,
	}, nil
}

func fundEntries(fundType domain.FundType, periodID int64, rows []ingest.FundRow) []domain.SpecialFundEntry {
	entries := make([]domain.SpecialFundEntry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, domain.SpecialFundEntry{
			FundType: fundType,
			PeriodID: periodID,
			Date:     row.Date,
			History:  row.History,
			Debit:    row.Debit,
			Credit:   row.Credit,
		})
	}
	return entries
}
