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

type PgxActivityRepository struct {
	BaseRepository
}

// newPgxActivityRepository creates a new repository for harvest activity data.
func newPgxActivityRepository(pool *pgxpool.Pool) portsrepo.ActivityRepositoryFacade {
	return &PgxActivityRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ActivityRepositoryFacade = (*PgxActivityRepository)(nil)

// SaveActivity inserts a new activity and fills its generated ID.
func (r *PgxActivityRepository) SaveActivity(ctx context.Context, activity *domain.HarvestActivity) error {
	now := time.Now().UTC()
	query := `
		INSERT INTO atividade (produtor_id, fazenda_id, variedade_id, classificacao_id,
		                       tipo_atividade, quantidade_pallets, caixas, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $8)
		RETURNING id
	`
	err := r.Pool.QueryRow(ctx, query,
		activity.ProducerID, activity.FarmID, activity.VarietyID, activity.ClassificationID,
		activity.ActivityType, activity.PalletCount, activity.BoxCount, now,
	).Scan(&activity.ID)
	if err != nil {
		return fmt.Errorf("failed to save activity: %w", err)
	}
	activity.CreatedAt = now
	activity.UpdatedAt = now
	return nil
}

const activityHistoryQuery = `
	SELECT a.id, a.tipo_atividade, a.quantidade_pallets, a.caixas, a.created_at,
	       f.nome, v.nome, COALESCE(c.classificacao, '')
	FROM atividade a
	JOIN fazenda f ON f.id = a.fazenda_id
	JOIN variedade v ON v.id = a.variedade_id
	LEFT JOIN classificacao_uva c ON c.id = a.classificacao_id
`

func scanActivityEntries(rows pgx.Rows) ([]domain.ActivityHistoryEntry, error) {
	defer rows.Close()
	var entries []domain.ActivityHistoryEntry
	for rows.Next() {
		var e domain.ActivityHistoryEntry
		err := rows.Scan(&e.ID, &e.ActivityType, &e.PalletCount, &e.BoxCount, &e.CreatedAt,
			&e.FarmName, &e.VarietyName, &e.ClassificationName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// ListActivitiesForDay retrieves a producer's activities created on the given
// day, joined with variety and classification names.
func (r *PgxActivityRepository) ListActivitiesForDay(ctx context.Context, producerID int64, day time.Time) ([]domain.ActivityHistoryEntry, error) {
	query := activityHistoryQuery + `
		WHERE a.produtor_id = $1 AND a.created_at >= $2 AND a.created_at < $3
		ORDER BY a.created_at
	`
	dayStart := startOfDay(day)
	rows, err := r.Pool.Query(ctx, query, producerID, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to list day activities of producer %d: %w", producerID, err)
	}
	return scanActivityEntries(rows)
}

// ListActivityHistory retrieves a producer's most recent activities, newest
// first.
func (r *PgxActivityRepository) ListActivityHistory(ctx context.Context, producerID int64, limit int) ([]domain.ActivityHistoryEntry, error) {
	query := activityHistoryQuery + `
		WHERE a.produtor_id = $1
		ORDER BY a.created_at DESC
		LIMIT $2
	`
	rows, err := r.Pool.Query(ctx, query, producerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list activity history of producer %d: %w", producerID, err)
	}
	return scanActivityEntries(rows)
}
