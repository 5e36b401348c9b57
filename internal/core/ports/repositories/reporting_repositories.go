package repositories

import (
	"context"
	"time"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
)

// ReportingRepository defines the aggregate queries behind the manager
// dashboard. These run as SQL aggregates rather than row scans.
type ReportingRepository interface {
	// ListDaySummaries retrieves the per-producer pallet roll-up for the
	// given day. Producers without activity that day are omitted.
	ListDaySummaries(ctx context.Context, day time.Time) ([]domain.ProducerDailySummary, error)

	// GetDayStatistics retrieves the dashboard counters for the given day.
	GetDayStatistics(ctx context.Context, day time.Time) (*domain.DailyStatistics, error)
}
