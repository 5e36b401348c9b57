package services

import (
	"context"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
)

// AccountingSvcFacade defines the read side of the accounting subsystem.
type AccountingSvcFacade interface {
	// GetChartOfAccounts retrieves the full chart ordered by code.
	GetChartOfAccounts(ctx context.Context) ([]domain.ChartAccount, error)

	// GetFullBalancete retrieves the trial balance of a competence. An empty
	// competence selects the most recent one with data.
	GetFullBalancete(ctx context.Context, competence string) (*dto.BalanceteResponse, error)

	// ListCompetences retrieves the competences with imported data, newest
	// first.
	ListCompetences(ctx context.Context) ([]string, error)
}
