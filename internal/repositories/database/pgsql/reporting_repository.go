package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxReportingRepository struct {
	BaseRepository
}

// newPgxReportingRepository creates a new repository for dashboard aggregates.
func newPgxReportingRepository(pool *pgxpool.Pool) portsrepo.ReportingRepository {
	return &PgxReportingRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ReportingRepository = (*PgxReportingRepository)(nil)

// ListDaySummaries aggregates the day's pallets per producer, variety and
// classification, then assembles the nested roll-up.
func (r *PgxReportingRepository) ListDaySummaries(ctx context.Context, day time.Time) ([]domain.ProducerDailySummary, error) {
	query := `
		SELECT p.id, p.nome, COALESCE(p.sigla, ''), v.nome,
		       COALESCE(c.classificacao, ''), SUM(a.quantidade_pallets)
		FROM atividade a
		JOIN produtor p ON p.id = a.produtor_id
		JOIN variedade v ON v.id = a.variedade_id
		LEFT JOIN classificacao_uva c ON c.id = a.classificacao_id
		WHERE a.created_at >= $1 AND a.created_at < $2
		GROUP BY p.id, p.nome, p.sigla, v.nome, c.classificacao
		ORDER BY p.nome, v.nome
	`
	dayStart := startOfDay(day)
	rows, err := r.Pool.Query(ctx, query, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate day summaries: %w", err)
	}
	defer rows.Close()

	var summaries []domain.ProducerDailySummary
	byProducer := make(map[int64]int)
	for rows.Next() {
		var (
			producerID     int64
			name, initials string
			variety, class string
			pallets        int
		)
		if err := rows.Scan(&producerID, &name, &initials, &variety, &class, &pallets); err != nil {
			return nil, fmt.Errorf("failed to scan day summary: %w", err)
		}

		idx, ok := byProducer[producerID]
		if !ok {
			summaries = append(summaries, domain.ProducerDailySummary{
				ProducerID:       producerID,
				ProducerName:     name,
				ProducerInitials: initials,
				ByVariety:        make(map[string]domain.VarietySummary),
			})
			idx = len(summaries) - 1
			byProducer[producerID] = idx
		}

		s := &summaries[idx]
		s.TotalPallets += pallets
		vs, ok := s.ByVariety[variety]
		if !ok {
			vs = domain.VarietySummary{Classifications: make(map[string]int)}
		}
		vs.TotalPallets += pallets
		if class != "" {
			vs.Classifications[class] += pallets
		}
		s.ByVariety[variety] = vs
	}
	return summaries, rows.Err()
}

// GetDayStatistics retrieves the dashboard counters for the given day.
func (r *PgxReportingRepository) GetDayStatistics(ctx context.Context, day time.Time) (*domain.DailyStatistics, error) {
	dayStart := startOfDay(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	stats := &domain.DailyStatistics{ByActivityType: make(map[string]int)}

	totalsQuery := `
		SELECT COALESCE(SUM(quantidade_pallets), 0), COUNT(DISTINCT produtor_id)
		FROM atividade
		WHERE created_at >= $1 AND created_at < $2
	`
	err := r.Pool.QueryRow(ctx, totalsQuery, dayStart, dayEnd).Scan(&stats.TotalPallets, &stats.ActiveProducers)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate day totals: %w", err)
	}

	byTypeQuery := `
		SELECT tipo_atividade, COUNT(*)
		FROM atividade
		WHERE created_at >= $1 AND created_at < $2
		GROUP BY tipo_atividade
	`
	rows, err := r.Pool.Query(ctx, byTypeQuery, dayStart, dayEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate activity types: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			activityType string
			count        int
		)
		if err := rows.Scan(&activityType, &count); err != nil {
			return nil, fmt.Errorf("failed to scan activity type count: %w", err)
		}
		stats.ByActivityType[activityType] = count
	}
	return stats, rows.Err()
}
