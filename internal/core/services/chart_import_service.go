package services

import (
	"context"

	"github.com/Leonzuka/Projeto-Valex/internal/apperrors"
	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
	"github.com/Leonzuka/Projeto-Valex/internal/ingest"
)

// ImportPolicy controls the transactional granularity of file imports.
// In the default best-effort mode each batch commits on its own, so an
// infrastructure failure keeps the batches already committed. Atomic mode
// runs the whole import in a single transaction.
type ImportPolicy struct {
	BatchSize int
	Atomic    bool
}

// DefaultImportPolicy is the policy used when none is configured.
var DefaultImportPolicy = ImportPolicy{BatchSize: 100}

func (p ImportPolicy) normalized() ImportPolicy {
	if p.BatchSize <= 0 {
		p.BatchSize = DefaultImportPolicy.BatchSize
	}
	return p
}

type chartImportService struct {
	BaseService
	chartRepo portsrepo.ChartAccountRepositoryFacade
	policy    ImportPolicy
}

// NewChartImportService creates the chart-of-accounts import service.
func NewChartImportService(chartRepo portsrepo.ChartAccountRepositoryFacade, policy ImportPolicy) portssvc.ChartImportSvc {
	return &chartImportService{chartRepo: chartRepo, policy: policy.normalized()}
}

// ImportChartOfAccounts parses a delimited chart export and upserts it keyed
// on account code, then re-resolves parent links over the whole chart.
func (s *chartImportService) ImportChartOfAccounts(ctx context.Context, data []byte) (*dto.ChartImportResult, error) {
	file, err := ingest.ParseChartFile(data)
	if err != nil {
		// Always the caller's file: the ISO-8859-1 fallback decoder is a
		// total byte-to-rune mapping, so parse errors here can only be
		// structural (missing header, too few columns).
		return nil, apperrors.NewAppError(400, "formato de arquivo não reconhecido", err)
	}
	s.LogInfo(ctx, "Chart file parsed",
		"rows", len(file.Rows),
		"ignored", file.Ignored,
		"encoding", file.Encoding,
		"delimiter", string(file.Delimiter),
	)

	existing, err := s.chartRepo.FindAccountIDsByCode(ctx)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to load existing chart", err)
	}

	accounts := deriveChartAccounts(file.Rows)

	// Parent links are re-resolved over the union of stored and imported
	// codes: a parent that only arrives in this file still picks up the
	// children imported before it.
	parentCodeByCode := make(map[string]string, len(existing)+len(accounts))
	for code := range existing {
		if parent := domain.ParentCode(code); parent != "" {
			parentCodeByCode[code] = parent
		}
	}
	for _, a := range accounts {
		if parent := domain.ParentCode(a.Code); parent != "" {
			parentCodeByCode[a.Code] = parent
		}
	}

	var created, updated int
	if s.policy.Atomic {
		created, updated, err = s.importAtomic(ctx, accounts, parentCodeByCode)
	} else {
		created, updated, err = s.importBestEffort(ctx, accounts, parentCodeByCode)
	}
	if err != nil {
		s.LogError(ctx, err, "Chart import failed", "created_so_far", created, "updated_so_far", updated)
		return nil, apperrors.NewAppError(500, "failed to persist chart of accounts", err)
	}

	s.LogInfo(ctx, "Chart import finished", "created", created, "updated", updated, "ignored", file.Ignored)
	return &dto.ChartImportResult{
		Message:  "Plano de contas importado com sucesso",
		Imported: created,
		Updated:  updated,
		Ignored:  file.Ignored,
	}, nil
}

// importAtomic runs every batch and the parent pass in one transaction.
func (s *chartImportService) importAtomic(ctx context.Context, accounts []domain.ChartAccount, parentCodeByCode map[string]string) (int, int, error) {
	tx, err := s.chartRepo.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer s.chartRepo.Rollback(ctx, tx)

	if err := s.chartRepo.AcquireImportLockTx(ctx, tx, portsrepo.LockKeyChartImport); err != nil {
		return 0, 0, err
	}

	created, updated := 0, 0
	for _, chunk := range chunkAccounts(accounts, s.policy.BatchSize) {
		c, u, err := s.chartRepo.UpsertChartAccountsTx(ctx, tx, chunk)
		created += c
		updated += u
		if err != nil {
			return created, updated, err
		}
	}
	if err := s.chartRepo.SetParentAccountsTx(ctx, tx, parentCodeByCode); err != nil {
		return created, updated, err
	}
	return created, updated, s.chartRepo.Commit(ctx, tx)
}

// importBestEffort commits each batch separately. A failure aborts the import
// but keeps what already committed; the parent pass runs last in its own
// transaction. A session-scoped advisory lock is held across all batches, so
// two concurrent imports cannot interleave their partial commits.
func (s *chartImportService) importBestEffort(ctx context.Context, accounts []domain.ChartAccount, parentCodeByCode map[string]string) (int, int, error) {
	release, err := s.chartRepo.AcquireImportLock(ctx, portsrepo.LockKeyChartImport)
	if err != nil {
		return 0, 0, err
	}
	defer release()

	created, updated := 0, 0
	for _, chunk := range chunkAccounts(accounts, s.policy.BatchSize) {
		c, u, err := s.upsertBatch(ctx, chunk)
		created += c
		updated += u
		if err != nil {
			return created, updated, err
		}
	}

	tx, err := s.chartRepo.Begin(ctx)
	if err != nil {
		return created, updated, err
	}
	defer s.chartRepo.Rollback(ctx, tx)

	if err := s.chartRepo.SetParentAccountsTx(ctx, tx, parentCodeByCode); err != nil {
		return created, updated, err
	}
	return created, updated, s.chartRepo.Commit(ctx, tx)
}

// upsertBatch runs one chunk in its own transaction. The caller already holds
// the import lock; taking it again here would block, since batch transactions
// run on other pool connections.
func (s *chartImportService) upsertBatch(ctx context.Context, chunk []domain.ChartAccount) (int, int, error) {
	tx, err := s.chartRepo.Begin(ctx)
	if err != nil {
		return 0, 0, err
	}
	defer s.chartRepo.Rollback(ctx, tx)

	created, updated, err := s.chartRepo.UpsertChartAccountsTx(ctx, tx, chunk)
	if err != nil {
		return created, updated, err
	}
	return created, updated, s.chartRepo.Commit(ctx, tx)
}

// deriveChartAccounts turns parsed rows into chart accounts with the derived
// classification fields filled in.
func deriveChartAccounts(rows []ingest.ChartRow) []domain.ChartAccount {
	accounts := make([]domain.ChartAccount, 0, len(rows))
	for _, row := range rows {
		accounts = append(accounts, domain.ChartAccount{
			Sequence:    row.Sequence,
			Code:        row.Code,
			Description: row.Description,
			Level:       domain.AccountLevel(row.Code),
			AccountType: domain.AccountTypeForCode(row.Code),
			Nature:      domain.NatureForCode(row.Code),
			Postable:    domain.IsPostable(row.Type),
			Type:        row.Type,
			Reference:   row.Reference,
		})
	}
	return accounts
}

func chunkAccounts(accounts []domain.ChartAccount, size int) [][]domain.ChartAccount {
	var chunks [][]domain.ChartAccount
	for start := 0; start < len(accounts); start += size {
		end := start + size
		if end > len(accounts) {
			end = len(accounts)
		}
		chunks = append(chunks, accounts[start:end])
	}
	return chunks
}
