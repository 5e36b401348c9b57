package repositories

import (
	"context"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
)

// VarietyReader defines read operations for grape variety data
type VarietyReader interface {
	// ListVarieties retrieves all varieties ordered by name.
	ListVarieties(ctx context.Context) ([]domain.Variety, error)
}

// ClassificationReader defines read operations for grape classification data
type ClassificationReader interface {
	// ListClassifications retrieves all classifications.
	ListClassifications(ctx context.Context) ([]domain.GrapeClassification, error)
}

// CatalogRepositoryFacade combines the static catalog repository interfaces
type CatalogRepositoryFacade interface {
	VarietyReader
	ClassificationReader
}
