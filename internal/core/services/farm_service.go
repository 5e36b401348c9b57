package services

import (
	"context"
	"fmt"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
)

type farmService struct {
	BaseService
	farmRepo portsrepo.FarmRepositoryFacade
}

// NewFarmService creates the farm service.
func NewFarmService(farmRepo portsrepo.FarmRepositoryFacade) portssvc.FarmSvcFacade {
	return &farmService{farmRepo: farmRepo}
}

func (s *farmService) ListFarms(ctx context.Context) ([]domain.Farm, error) {
	farms, err := s.farmRepo.ListFarms(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list farms: %w", err)
	}
	if farms == nil {
		farms = []domain.Farm{}
	}
	return farms, nil
}

func (s *farmService) ListFarmsByProducer(ctx context.Context, producerID int64) ([]domain.Farm, error) {
	farms, err := s.farmRepo.ListFarmsByProducer(ctx, producerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list producer farms: %w", err)
	}
	if farms == nil {
		farms = []domain.Farm{}
	}
	return farms, nil
}

func (s *farmService) ListVarietiesByFarm(ctx context.Context, farmID int64) ([]domain.Variety, error) {
	varieties, err := s.farmRepo.FindVarietiesByFarm(ctx, farmID)
	if err != nil {
		return nil, fmt.Errorf("failed to list farm varieties: %w", err)
	}
	if varieties == nil {
		varieties = []domain.Variety{}
	}
	return varieties, nil
}

type catalogService struct {
	BaseService
	catalogRepo portsrepo.CatalogRepositoryFacade
}

// NewCatalogService creates the static catalog service.
func NewCatalogService(catalogRepo portsrepo.CatalogRepositoryFacade) portssvc.CatalogSvcFacade {
	return &catalogService{catalogRepo: catalogRepo}
}

func (s *catalogService) ListVarieties(ctx context.Context) ([]domain.Variety, error) {
	varieties, err := s.catalogRepo.ListVarieties(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list varieties: %w", err)
	}
	if varieties == nil {
		varieties = []domain.Variety{}
	}
	return varieties, nil
}

func (s *catalogService) ListClassifications(ctx context.Context) ([]domain.GrapeClassification, error) {
	classifications, err := s.catalogRepo.ListClassifications(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list classifications: %w", err)
	}
	if classifications == nil {
		classifications = []domain.GrapeClassification{}
	}
	return classifications, nil
}
