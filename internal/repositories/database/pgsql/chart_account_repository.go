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

type PgxChartAccountRepository struct {
	BaseRepository
}

// newPgxChartAccountRepository creates a new repository for the chart of accounts.
func newPgxChartAccountRepository(pool *pgxpool.Pool) portsrepo.ChartAccountRepositoryFacade {
	return &PgxChartAccountRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ChartAccountRepositoryFacade = (*PgxChartAccountRepository)(nil)

// ListChartAccounts retrieves the full chart ordered by account code.
func (r *PgxChartAccountRepository) ListChartAccounts(ctx context.Context) ([]domain.ChartAccount, error) {
	query := `
		SELECT id, COALESCE(sequencial, ''), codigo, COALESCE(codigo_reduzido, ''),
		       descricao, nivel, conta_pai_id, tipo_conta, natureza_saldo,
		       permite_lancamento, COALESCE(tipo, ''), COALESCE(referencia, ''),
		       created_at, updated_at
		FROM plano_contas
		ORDER BY codigo
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list chart accounts: %w", err)
	}
	defer rows.Close()

	var accounts []domain.ChartAccount
	for rows.Next() {
		var a domain.ChartAccount
		err := rows.Scan(&a.ID, &a.Sequence, &a.Code, &a.ReducedCode, &a.Description,
			&a.Level, &a.ParentID, &a.AccountType, &a.Nature, &a.Postable,
			&a.Type, &a.Reference, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan chart account: %w", err)
		}
		accounts = append(accounts, a)
	}
	return accounts, rows.Err()
}

// FindAccountIDsByCode retrieves the code to id mapping of the whole chart.
func (r *PgxChartAccountRepository) FindAccountIDsByCode(ctx context.Context) (map[string]int64, error) {
	rows, err := r.Pool.Query(ctx, `SELECT codigo, id FROM plano_contas`)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart account codes: %w", err)
	}
	defer rows.Close()

	ids := make(map[string]int64)
	for rows.Next() {
		var (
			code string
			id   int64
		)
		if err := rows.Scan(&code, &id); err != nil {
			return nil, fmt.Errorf("failed to scan chart account code: %w", err)
		}
		ids[code] = id
	}
	return ids, rows.Err()
}

// UpsertChartAccountsTx inserts or updates a batch of accounts keyed on code.
// The xmax system column distinguishes fresh inserts from conflict updates.
func (r *PgxChartAccountRepository) UpsertChartAccountsTx(ctx context.Context, tx pgx.Tx, accounts []domain.ChartAccount) (int, int, error) {
	now := time.Now().UTC()
	query := `
		INSERT INTO plano_contas (sequencial, codigo, codigo_reduzido, descricao, nivel,
		                          tipo_conta, natureza_saldo, permite_lancamento, tipo,
		                          referencia, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $11)
		ON CONFLICT (codigo) DO UPDATE SET
			sequencial = EXCLUDED.sequencial,
			codigo_reduzido = EXCLUDED.codigo_reduzido,
			descricao = EXCLUDED.descricao,
			nivel = EXCLUDED.nivel,
			tipo_conta = EXCLUDED.tipo_conta,
			natureza_saldo = EXCLUDED.natureza_saldo,
			permite_lancamento = EXCLUDED.permite_lancamento,
			tipo = EXCLUDED.tipo,
			referencia = EXCLUDED.referencia,
			updated_at = EXCLUDED.updated_at
		RETURNING (xmax = 0)
	`

	batch := &pgx.Batch{}
	for _, a := range accounts {
		batch.Queue(query,
			a.Sequence, a.Code, a.ReducedCode, a.Description, a.Level,
			a.AccountType, a.Nature, a.Postable, a.Type, a.Reference, now,
		)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	created, updated := 0, 0
	for _, a := range accounts {
		var inserted bool
		if err := results.QueryRow().Scan(&inserted); err != nil {
			return created, updated, fmt.Errorf("failed to upsert chart account %s: %w", a.Code, err)
		}
		if inserted {
			created++
		} else {
			updated++
		}
	}
	if err := results.Close(); err != nil {
		return created, updated, fmt.Errorf("failed to flush chart account batch: %w", err)
	}
	return created, updated, nil
}

// SetParentAccountsTx links accounts to their parents by code. The join runs
// inside the transaction so parents inserted in the same import are visible.
func (r *PgxChartAccountRepository) SetParentAccountsTx(ctx context.Context, tx pgx.Tx, parentCodeByCode map[string]string) error {
	if len(parentCodeByCode) == 0 {
		return nil
	}

	query := `
		UPDATE plano_contas c
		SET conta_pai_id = p.id
		FROM plano_contas p
		WHERE c.codigo = $1 AND p.codigo = $2
	`
	batch := &pgx.Batch{}
	for code, parentCode := range parentCodeByCode {
		batch.Queue(query, code, parentCode)
	}

	results := tx.SendBatch(ctx, batch)
	defer results.Close()

	for range parentCodeByCode {
		if _, err := results.Exec(); err != nil {
			return fmt.Errorf("failed to link chart account parent: %w", err)
		}
	}
	return results.Close()
}
