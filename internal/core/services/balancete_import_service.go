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
	"github.com/jackc/pgx/v5"
)

type balanceteImportService struct {
	BaseService
	balanceteRepo portsrepo.BalanceteRepositoryFacade
}

// NewBalanceteImportService creates the trial-balance import service.
func NewBalanceteImportService(balanceteRepo portsrepo.BalanceteRepositoryFacade) portssvc.BalanceteImportSvc {
	return &balanceteImportService{balanceteRepo: balanceteRepo}
}

// ImportBalancete parses a fixed-width trial-balance report and appends its
// lines under the detected competence. When no competence can be detected the
// lines are stored without one and no period is opened.
func (s *balanceteImportService) ImportBalancete(ctx context.Context, filename string, data []byte) (*dto.BalanceteImportResult, error) {
	file, err := ingest.ParseBalanceteFile(filename, data)
	if err != nil {
		return nil, apperrors.NewAppError(400, "formato de arquivo não reconhecido", err)
	}
	s.LogInfo(ctx, "Balancete file parsed",
		"rows", len(file.Rows),
		"ignored", file.Ignored,
		"competence", file.Competence,
		"encoding", file.Encoding,
	)

	tx, err := s.balanceteRepo.Begin(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to start import", err)
	}
	defer s.balanceteRepo.Rollback(ctx, tx)

	if err := s.balanceteRepo.AcquireImportLockTx(ctx, tx, portsrepo.LockKeyBalanceteImport); err != nil {
		return nil, apperrors.NewAppError(500, "failed to lock import", err)
	}

	if file.Competence != "" {
		year, month, err := ingest.SplitCompetence(file.Competence)
		if err != nil {
			return nil, apperrors.NewAppError(400, "competência inválida", err)
		}
		if _, err := s.findOrCreatePeriodTx(ctx, tx, year, month); err != nil {
			return nil, apperrors.NewAppError(500, "failed to open accounting period", err)
		}
	}

	lines := make([]domain.BalanceLine, 0, len(file.Rows))
	for _, row := range file.Rows {
		lines = append(lines, domain.BalanceLine{
			AccountCode:   row.AccountCode,
			ReductionCode: row.Reduction,
			Type:          row.Type,
			Description:   row.Description,
			PriorBalance:  row.PriorBalance,
			PeriodDebit:   row.PeriodDebit,
			PeriodCredit:  row.PeriodCredit,
			CurrentValue:  row.CurrentValue,
			Competence:    file.Competence,
		})
	}

	imported, err := s.balanceteRepo.InsertBalanceLinesTx(ctx, tx, lines)
	if err != nil {
		s.LogError(ctx, err, "Balancete import failed", "inserted_so_far", imported)
		return nil, apperrors.NewAppError(500, "failed to persist balance lines", err)
	}
	if err := s.balanceteRepo.Commit(ctx, tx); err != nil {
		return nil, apperrors.NewAppError(500, "failed to commit import", err)
	}

	s.LogInfo(ctx, "Balancete import finished", "imported", imported, "ignored", file.Ignored)

	result := &dto.BalanceteImportResult{
		Message:  "Balancete importado com sucesso",
		Imported: imported,
		Ignored:  file.Ignored,
	}
	if file.Competence != "" {
		competence := file.Competence
		result.Competence = &competence
	}
	return result, nil
}

// findOrCreatePeriodTx row-locks the period of the competence, creating it
// open when it does not exist yet.
func (s *balanceteImportService) findOrCreatePeriodTx(ctx context.Context, tx pgx.Tx, year, month int) (*domain.AccountingPeriod, error) {
	period, err := s.balanceteRepo.FindPeriodForUpdateTx(ctx, tx, year, month)
	if err != nil {
		return nil, err
	}
	if period != nil {
		return period, nil
	}
	period = &domain.AccountingPeriod{
		Year:     year,
		Month:    month,
		Status:   domain.PeriodOpen,
		OpenedAt: time.Now().UTC(),
	}
	if err := s.balanceteRepo.CreatePeriodTx(ctx, tx, period); err != nil {
		return nil, err
	}
	return period, nil
}
