package services

import (
	"context"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
)

// ActivitySvcFacade defines the operations for recording and reviewing
// harvest activities.
type ActivitySvcFacade interface {
	// CreateActivity records a new activity.
	CreateActivity(ctx context.Context, req dto.CreateActivityRequest) (*domain.HarvestActivity, error)

	// GetDailySummary rolls up a producer's pallets for today, grouped by
	// variety and then classification.
	GetDailySummary(ctx context.Context, producerID int64) (*domain.DailySummary, error)

	// GetHistory retrieves a producer's most recent activities.
	GetHistory(ctx context.Context, producerID int64) ([]dto.ActivityHistoryResponse, error)
}

// ReportingSvcFacade defines the manager dashboard operations.
type ReportingSvcFacade interface {
	// GetGeneralSummary retrieves today's per-producer roll-ups.
	GetGeneralSummary(ctx context.Context) ([]domain.ProducerDailySummary, error)

	// GetStatistics retrieves today's dashboard counters.
	GetStatistics(ctx context.Context) (*domain.DailyStatistics, error)
}
