package pgsql

import (
	"context"
	"fmt"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFarmRepository struct {
	BaseRepository
}

// newPgxFarmRepository creates a new repository for farm data.
func newPgxFarmRepository(pool *pgxpool.Pool) portsrepo.FarmRepositoryFacade {
	return &PgxFarmRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.FarmRepositoryFacade = (*PgxFarmRepository)(nil)

const farmQuery = `
	SELECT f.id, f.nome, f.area_parcela, f.area_total, f.produtor_id, f.variedade_id,
	       v.nome, f.created_at, f.updated_at
	FROM fazenda f
	JOIN variedade v ON v.id = f.variedade_id
`

func scanFarms(rows pgx.Rows) ([]domain.Farm, error) {
	defer rows.Close()
	var farms []domain.Farm
	for rows.Next() {
		var f domain.Farm
		err := rows.Scan(&f.ID, &f.Name, &f.ParcelArea, &f.TotalArea, &f.ProducerID,
			&f.VarietyID, &f.VarietyName, &f.CreatedAt, &f.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan farm: %w", err)
		}
		farms = append(farms, f)
	}
	return farms, rows.Err()
}

// ListFarms retrieves all farms with their variety names joined in.
func (r *PgxFarmRepository) ListFarms(ctx context.Context) ([]domain.Farm, error) {
	rows, err := r.Pool.Query(ctx, farmQuery+` ORDER BY f.nome`)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	return scanFarms(rows)
}

// ListFarmsByProducer retrieves the farms of a single producer.
func (r *PgxFarmRepository) ListFarmsByProducer(ctx context.Context, producerID int64) ([]domain.Farm, error) {
	rows, err := r.Pool.Query(ctx, farmQuery+` WHERE f.produtor_id = $1 ORDER BY f.nome`, producerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms of producer %d: %w", producerID, err)
	}
	return scanFarms(rows)
}

// FindVarietiesByFarm retrieves the varieties planted on a farm.
func (r *PgxFarmRepository) FindVarietiesByFarm(ctx context.Context, farmID int64) ([]domain.Variety, error) {
	query := `
		SELECT v.id, v.nome, v.created_at, v.updated_at
		FROM variedade v
		JOIN fazenda f ON f.variedade_id = v.id
		WHERE f.id = $1
		ORDER BY v.nome
	`
	rows, err := r.Pool.Query(ctx, query, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list varieties of farm %d: %w", farmID, err)
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
