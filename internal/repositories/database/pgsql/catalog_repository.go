package pgsql

import (
	"context"
	"fmt"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxCatalogRepository struct {
	BaseRepository
}

// newPgxCatalogRepository creates a new repository for the static catalogs.
func newPgxCatalogRepository(pool *pgxpool.Pool) portsrepo.CatalogRepositoryFacade {
	return &PgxCatalogRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CatalogRepositoryFacade = (*PgxCatalogRepository)(nil)

// ListVarieties retrieves all varieties ordered by name.
func (r *PgxCatalogRepository) ListVarieties(ctx context.Context) ([]domain.Variety, error) {
	rows, err := r.Pool.Query(ctx, `SELECT id, nome, created_at, updated_at FROM variedade ORDER BY nome`)
	if err != nil {
		return nil, fmt.Errorf("failed to list varieties: %w", err)
	}
	defer rows.Close()

	var varieties []domain.Variety
	for rows.Next() {
		var v domain.Variety
		if err := rows.Scan(&v.ID, &v.Name, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan variety: %w", err)
		}
		varieties = append(varieties, v)
	}
	return varieties, rows.Err()
}

// ListClassifications retrieves all grape classifications.
func (r *PgxCatalogRepository) ListClassifications(ctx context.Context) ([]domain.GrapeClassification, error) {
	query := `
		SELECT id, classificacao, COALESCE(caixa, ''), COALESCE(cinta, ''),
		       COALESCE(peso, ''), COALESCE(cumbuca, ''), created_at, updated_at
		FROM classificacao_uva
		ORDER BY classificacao
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list classifications: %w", err)
	}
	defer rows.Close()

	var classifications []domain.GrapeClassification
	for rows.Next() {
		var c domain.GrapeClassification
		err := rows.Scan(&c.ID, &c.Classification, &c.Box, &c.Strap, &c.Weight, &c.Cup,
			&c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan classification: %w", err)
		}
		classifications = append(classifications, c)
	}
	return classifications, rows.Err()
}
