package repositories

import (
	"context"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
)

// FarmReader defines read operations for farm data
type FarmReader interface {
	// ListFarms retrieves all farms with their variety names joined in.
	ListFarms(ctx context.Context) ([]domain.Farm, error)

	// ListFarmsByProducer retrieves the farms of a single producer.
	ListFarmsByProducer(ctx context.Context, producerID int64) ([]domain.Farm, error)

	// FindVarietiesByFarm retrieves the varieties planted on a farm.
	FindVarietiesByFarm(ctx context.Context, farmID int64) ([]domain.Variety, error)
}

// FarmRepositoryFacade combines all farm-related repository interfaces
type FarmRepositoryFacade interface {
	FarmReader
}
