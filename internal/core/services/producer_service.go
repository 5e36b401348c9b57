package services

import (
	"context"
	"fmt"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
)

type producerService struct {
	BaseService
	producerRepo portsrepo.ProducerRepositoryFacade
}

// NewProducerService creates the producer service.
func NewProducerService(producerRepo portsrepo.ProducerRepositoryFacade) portssvc.ProducerSvcFacade {
	return &producerService{producerRepo: producerRepo}
}

func (s *producerService) GetProducerByID(ctx context.Context, producerID int64) (*domain.Producer, error) {
	producer, err := s.producerRepo.FindProducerByID(ctx, producerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get producer: %w", err)
	}
	return producer, nil
}

func (s *producerService) ListProducers(ctx context.Context) ([]domain.Producer, error) {
	producers, err := s.producerRepo.ListProducers(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list producers: %w", err)
	}
	if producers == nil {
		producers = []domain.Producer{}
	}
	return producers, nil
}

func (s *producerService) CreateProducer(ctx context.Context, req dto.CreateProducerRequest) (*domain.Producer, error) {
	producer := domain.Producer{
		Name:     req.Name,
		GGN:      req.GGN,
		Initials: req.Initials,
		Phone:    req.Phone,
		Address:  req.Address,
	}
	if err := s.producerRepo.SaveProducer(ctx, &producer); err != nil {
		return nil, fmt.Errorf("failed to create producer: %w", err)
	}
	s.LogInfo(ctx, "Producer created", "producer_id", producer.ID)
	return &producer, nil
}

func (s *producerService) UpdateProducer(ctx context.Context, producerID int64, req dto.UpdateProducerRequest) (*domain.Producer, error) {
	producer, err := s.producerRepo.FindProducerByID(ctx, producerID)
	if err != nil {
		return nil, fmt.Errorf("failed to load producer for update: %w", err)
	}

	if req.Name != nil {
		producer.Name = *req.Name
	}
	if req.GGN != nil {
		producer.GGN = *req.GGN
	}
	if req.Initials != nil {
		producer.Initials = *req.Initials
	}
	if req.Phone != nil {
		producer.Phone = *req.Phone
	}
	if req.Address != nil {
		producer.Address = *req.Address
	}

	if err := s.producerRepo.UpdateProducer(ctx, producer); err != nil {
		return nil, fmt.Errorf("failed to update producer: %w", err)
	}
	return producer, nil
}

func (s *producerService) DeleteProducer(ctx context.Context, producerID int64) error {
	if err := s.producerRepo.DeleteProducer(ctx, producerID); err != nil {
		return fmt.Errorf("failed to delete producer: %w", err)
	}
	s.LogInfo(ctx, "Producer deleted", "producer_id", producerID)
	return nil
}
