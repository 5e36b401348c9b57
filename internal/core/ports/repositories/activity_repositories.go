package repositories

import (
	"context"
	"time"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
)

// ActivityReader defines read operations for harvest activity data
type ActivityReader interface {
	// ListActivitiesForDay retrieves a producer's activities created on the
	// given day, joined with variety and classification names.
	ListActivitiesForDay(ctx context.Context, producerID int64, day time.Time) ([]domain.ActivityHistoryEntry, error)

	// ListActivityHistory retrieves a producer's most recent activities,
	// newest first, joined with farm, variety and classification names.
	ListActivityHistory(ctx context.Context, producerID int64, limit int) ([]domain.ActivityHistoryEntry, error)
}

// ActivityWriter defines write operations for harvest activity data
type ActivityWriter interface {
	// SaveActivity persists a new activity and fills its generated ID.
	SaveActivity(ctx context.Context, activity *domain.HarvestActivity) error
}

// ActivityRepositoryFacade combines all activity-related repository interfaces
type ActivityRepositoryFacade interface {
	ActivityReader
	ActivityWriter
}
