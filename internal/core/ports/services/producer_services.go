package services

import (
	"context"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
)

// ProducerReaderSvc defines read operations for producer data
type ProducerReaderSvc interface {
	// GetProducerByID retrieves a specific producer by its identifier.
	GetProducerByID(ctx context.Context, producerID int64) (*domain.Producer, error)

	// ListProducers retrieves all producers ordered by name.
	ListProducers(ctx context.Context) ([]domain.Producer, error)
}

// ProducerWriterSvc defines write operations for producer data
type ProducerWriterSvc interface {
	// CreateProducer registers a new producer.
	CreateProducer(ctx context.Context, req dto.CreateProducerRequest) (*domain.Producer, error)

	// UpdateProducer updates an existing producer's details.
	UpdateProducer(ctx context.Context, producerID int64, req dto.UpdateProducerRequest) (*domain.Producer, error)

	// DeleteProducer removes a producer.
	DeleteProducer(ctx context.Context, producerID int64) error
}

// ProducerSvcFacade combines all producer-related service interfaces
type ProducerSvcFacade interface {
	ProducerReaderSvc
	ProducerWriterSvc
}
