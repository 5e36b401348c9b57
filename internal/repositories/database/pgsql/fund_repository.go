package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFundRepository struct {
	// The funds import shares the period table with the balancete import, so
	// the period methods are embedded rather than duplicated.
	*PgxBalanceteRepository
}

// newPgxFundRepository creates a new repository for special fund entries.
func newPgxFundRepository(pool *pgxpool.Pool) portsrepo.FundRepositoryFacade {
	return &PgxFundRepository{
		PgxBalanceteRepository: &PgxBalanceteRepository{
			BaseRepository: BaseRepository{Pool: pool},
		},
	}
}

// Ensure implementation matches interface
var _ portsrepo.FundRepositoryFacade = (*PgxFundRepository)(nil)

// ClearPeriodEntriesTx removes every fund entry of a period.
func (r *PgxFundRepository) ClearPeriodEntriesTx(ctx context.Context, tx pgx.Tx, periodID int64) error {
	if _, err := tx.Exec(ctx, `DELETE FROM fundos_especiais WHERE periodo_id = $1`, periodID); err != nil {
		return fmt.Errorf("failed to clear fund entries of period %d: %w", periodID, err)
	}
	return nil
}

// InsertFundEntriesTx persists a batch of fund entries.
func (r *PgxFundRepository) InsertFundEntriesTx(ctx context.Context, tx pgx.Tx, entries []domain.SpecialFundEntry) (int, error) {
	query := `
		INSERT INTO fundos_especiais (tipo_fundo, periodo_id, data_movimento, historico,
		                              valor_debito, valor_credito, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	now := time.Now().UTC()

	batch := &pgx.Batch{}
	for _, e := range entries {
		batch.Queue(query, e.FundType, e.PeriodID, e.Date, e.History, e.Debit, e.Credit, now)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range entries {
		if _, err := results.Exec(); err != nil {
			return inserted, fmt.Errorf("failed to insert fund entry: %w", err)
		}
		inserted++
	}
	if err := results.Close(); err != nil {
		return inserted, fmt.Errorf("failed to flush fund entry batch: %w", err)
	}
	return inserted, nil
}
