package repositories

import (
	"context"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
)

// ProducerReader defines read operations for producer data
type ProducerReader interface {
	// FindProducerByID retrieves a specific producer by its identifier.
	FindProducerByID(ctx context.Context, producerID int64) (*domain.Producer, error)

	// ListProducers retrieves all producers ordered by name.
	ListProducers(ctx context.Context) ([]domain.Producer, error)
}

// ProducerWriter defines write operations for producer data
type ProducerWriter interface {
	// SaveProducer persists a new producer and fills its generated ID.
	SaveProducer(ctx context.Context, producer *domain.Producer) error

	// UpdateProducer updates an existing producer's details.
	UpdateProducer(ctx context.Context, producer *domain.Producer) error

	// DeleteProducer removes a producer.
	DeleteProducer(ctx context.Context, producerID int64) error
}

// ProducerRepositoryFacade combines all producer-related repository interfaces
type ProducerRepositoryFacade interface {
	ProducerReader
	ProducerWriter
}
