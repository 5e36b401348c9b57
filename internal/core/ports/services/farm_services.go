package services

import (
	"context"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
)

// FarmSvcFacade defines the read operations exposed for farm data
type FarmSvcFacade interface {
	// ListFarms retrieves all farms with variety names joined in.
	ListFarms(ctx context.Context) ([]domain.Farm, error)

	// ListFarmsByProducer retrieves the farms of a single producer.
	ListFarmsByProducer(ctx context.Context, producerID int64) ([]domain.Farm, error)

	// ListVarietiesByFarm retrieves the varieties planted on a farm.
	ListVarietiesByFarm(ctx context.Context, farmID int64) ([]domain.Variety, error)
}

// CatalogSvcFacade exposes the static catalogs.
type CatalogSvcFacade interface {
	// ListVarieties retrieves all grape varieties.
	ListVarieties(ctx context.Context) ([]domain.Variety, error)

	// ListClassifications retrieves all grape classifications.
	ListClassifications(ctx context.Context) ([]domain.GrapeClassification, error)
}
