package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
)

// activityHistoryLimit caps the producer history listing.
const activityHistoryLimit = 20

// producersLocation is the timezone activities are reported and summarized in.
var producersLocation = func() *time.Location {
	loc, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		return time.UTC
	}
	return loc
}()

type activityService struct {
	BaseService
	activityRepo portsrepo.ActivityRepositoryFacade
}

// NewActivityService creates the harvest activity service.
func NewActivityService(activityRepo portsrepo.ActivityRepositoryFacade) portssvc.ActivitySvcFacade {
	return &activityService{activityRepo: activityRepo}
}

func (s *activityService) CreateActivity(ctx context.Context, req dto.CreateActivityRequest) (*domain.HarvestActivity, error) {
	activity := domain.HarvestActivity{
		ProducerID:       req.ProducerID,
		FarmID:           req.FarmID,
		VarietyID:        req.VarietyID,
		ClassificationID: req.ClassificationID,
		ActivityType:     req.ActivityType,
		PalletCount:      req.PalletCount,
		BoxCount:         req.BoxCount,
	}
	if err := s.activityRepo.SaveActivity(ctx, &activity); err != nil {
		return nil, fmt.Errorf("failed to create activity: %w", err)
	}
	s.LogInfo(ctx, "Activity recorded",
		"producer_id", activity.ProducerID,
		"activity_type", activity.ActivityType,
		"pallets", activity.PalletCount,
	)
	return &activity, nil
}

// GetDailySummary rolls today's activities of a producer up into pallets per
// variety and classification.
func (s *activityService) GetDailySummary(ctx context.Context, producerID int64) (*domain.DailySummary, error) {
	entries, err := s.activityRepo.ListActivitiesForDay(ctx, producerID, time.Now().In(producersLocation))
	if err != nil {
		return nil, fmt.Errorf("failed to load day activities: %w", err)
	}

	summary := &domain.DailySummary{ByVariety: make(map[string]domain.VarietySummary)}
	for _, e := range entries {
		summary.TotalPallets += e.PalletCount

		vs, ok := summary.ByVariety[e.VarietyName]
		if !ok {
			vs = domain.VarietySummary{Classifications: make(map[string]int)}
		}
		vs.TotalPallets += e.PalletCount
		if e.ClassificationName != "" {
			vs.Classifications[e.ClassificationName] += e.PalletCount
		}
		summary.ByVariety[e.VarietyName] = vs
	}
	return summary, nil
}

func (s *activityService) GetHistory(ctx context.Context, producerID int64) ([]dto.ActivityHistoryResponse, error) {
	entries, err := s.activityRepo.ListActivityHistory(ctx, producerID, activityHistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load activity history: %w", err)
	}
	return dto.ToListActivityHistoryResponse(entries, producersLocation), nil
}

type reportingService struct {
	BaseService
	reportingRepo portsrepo.ReportingRepository
}

// NewReportingService creates the manager dashboard service.
func NewReportingService(reportingRepo portsrepo.ReportingRepository) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo}
}

func (s *reportingService) GetGeneralSummary(ctx context.Context) ([]domain.ProducerDailySummary, error) {
	summaries, err := s.reportingRepo.ListDaySummaries(ctx, time.Now().In(producersLocation))
	if err != nil {
		return nil, fmt.Errorf("failed to load general summary: %w", err)
	}
	if summaries == nil {
		summaries = []domain.ProducerDailySummary{}
	}
	return summaries, nil
}

func (s *reportingService) GetStatistics(ctx context.Context) (*domain.DailyStatistics, error) {
	stats, err := s.reportingRepo.GetDayStatistics(ctx, time.Now().In(producersLocation))
	if err != nil {
		return nil, fmt.Errorf("failed to load day statistics: %w", err)
	}
	return stats, nil
}
