package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxBalanceteRepository struct {
	BaseRepository
}

// newPgxBalanceteRepository creates a new repository for trial-balance data.
func newPgxBalanceteRepository(pool *pgxpool.Pool) portsrepo.BalanceteRepositoryFacade {
	return &PgxBalanceteRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.BalanceteRepositoryFacade = (*PgxBalanceteRepository)(nil)

// FindPeriodForUpdateTx retrieves and row-locks the period of a year/month
// pair. Returns nil when the period does not exist yet.
func (r *PgxBalanceteRepository) FindPeriodForUpdateTx(ctx context.Context, tx pgx.Tx, year int, month int) (*domain.AccountingPeriod, error) {
	query := `
		SELECT id, ano, mes, status, data_abertura, data_fechamento
		FROM periodos_contabeis
		WHERE ano = $1 AND mes = $2
		FOR UPDATE
	`
	var p domain.AccountingPeriod
	err := tx.QueryRow(ctx, query, year, month).Scan(
		&p.ID, &p.Year, &p.Month, &p.Status, &p.OpenedAt, &p.ClosedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find period %04d-%02d: %w", year, month, err)
	}
	return &p, nil
}

// CreatePeriodTx persists a new period and fills its generated ID.
func (r *PgxBalanceteRepository) CreatePeriodTx(ctx context.Context, tx pgx.Tx, period *domain.AccountingPeriod) error {
	query := `
		INSERT INTO periodos_contabeis (ano, mes, status, data_abertura)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := tx.QueryRow(ctx, query, period.Year, period.Month, period.Status, period.OpenedAt).Scan(&period.ID)
	if err != nil {
		return fmt.Errorf("failed to create period %04d-%02d: %w", period.Year, period.Month, err)
	}
	return nil
}

// ListBalanceLines retrieves the lines of a competence ordered by account code.
func (r *PgxBalanceteRepository) ListBalanceLines(ctx context.Context, competence string) ([]domain.BalanceLine, error) {
	query := `
		SELECT id, conta, reducao, COALESCE(tipo, ''), descricao,
		       valor_anterior, valor_periodo_debito, valor_periodo_credito, valor_atual,
		       COALESCE(competencia, ''), data_importacao
		FROM balancete_items
		WHERE competencia = $1
		ORDER BY conta
	`
	rows, err := r.Pool.Query(ctx, query, competence)
	if err != nil {
		return nil, fmt.Errorf("failed to list balance lines of %s: %w", competence, err)
	}
	defer rows.Close()

	var lines []domain.BalanceLine
	for rows.Next() {
		var l domain.BalanceLine
		err := rows.Scan(&l.ID, &l.AccountCode, &l.ReductionCode, &l.Type, &l.Description,
			&l.PriorBalance, &l.PeriodDebit, &l.PeriodCredit, &l.CurrentValue,
			&l.Competence, &l.ImportedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan balance line: %w", err)
		}
		lines = append(lines, l)
	}
	return lines, rows.Err()
}

// ListCompetences retrieves the distinct competences, newest first.
func (r *PgxBalanceteRepository) ListCompetences(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT competencia
		FROM balancete_items
		WHERE competencia IS NOT NULL
		ORDER BY competencia DESC
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list competences: %w", err)
	}
	defer rows.Close()

	var competences []string
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to scan competence: %w", err)
		}
		competences = append(competences, c)
	}
	return competences, rows.Err()
}

// FindLatestCompetence retrieves the most recent competence with data.
func (r *PgxBalanceteRepository) FindLatestCompetence(ctx context.Context) (string, error) {
	var c string
	err := r.Pool.QueryRow(ctx,
		`SELECT COALESCE(MAX(competencia), '') FROM balancete_items`,
	).Scan(&c)
	if err != nil {
		return "", fmt.Errorf("failed to find latest competence: %w", err)
	}
	return c, nil
}

// InsertBalanceLinesTx appends a batch of lines within the transaction.
func (r *PgxBalanceteRepository) InsertBalanceLinesTx(ctx context.Context, tx pgx.Tx, lines []domain.BalanceLine) (int, error) {
	query := `
		INSERT INTO balancete_items (conta, reducao, tipo, descricao, valor_anterior,
		                             valor_periodo_debito, valor_periodo_credito,
		                             valor_atual, competencia, data_importacao)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''), $10)
	`
	now := time.Now().UTC()

	batch := &pgx.Batch{}
	for _, l := range lines {
		importedAt := l.ImportedAt
		if importedAt.IsZero() {
			importedAt = now
		}
		batch.Queue(query,
			l.AccountCode, l.ReductionCode, l.Type, l.Description,
			l.PriorBalance, l.PeriodDebit, l.PeriodCredit, l.CurrentValue,
			l.Competence, importedAt,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	inserted := 0
	for range lines {
		if _, err := results.Exec(); err != nil {
			return inserted, fmt.Errorf("failed to insert balance line: %w", err)
		}
		inserted++
	}
	if err := results.Close(); err != nil {
		return inserted, fmt.Errorf("failed to flush balance line batch: %w", err)
	}
	return inserted, nil
}
