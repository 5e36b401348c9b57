package services

import (
	"context"
	"fmt"

	"github.com/Leonzuka/Projeto-Valex/internal/core/domain"
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/dto"
)

type accountingService struct {
	BaseService
	chartRepo     portsrepo.ChartAccountRepositoryFacade
	balanceteRepo portsrepo.BalanceteRepositoryFacade
}

// NewAccountingService creates the accounting read-side service.
func NewAccountingService(chartRepo portsrepo.ChartAccountRepositoryFacade, balanceteRepo portsrepo.BalanceteRepositoryFacade) portssvc.AccountingSvcFacade {
	return &accountingService{chartRepo: chartRepo, balanceteRepo: balanceteRepo}
}

func (s *accountingService) GetChartOfAccounts(ctx context.Context) ([]domain.ChartAccount, error) {
	accounts, err := s.chartRepo.ListChartAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load chart of accounts: %w", err)
	}
	if accounts == nil {
		accounts = []domain.ChartAccount{}
	}
	return accounts, nil
}

// GetFullBalancete returns the trial balance of a competence; an empty
// competence selects the latest one with imported data.
func (s *accountingService) GetFullBalancete(ctx context.Context, competence string) (*dto.BalanceteResponse, error) {
	if competence == "" {
		latest, err := s.balanceteRepo.FindLatestCompetence(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to find latest competence: %w", err)
		}
		competence = latest
	}

	response := &dto.BalanceteResponse{Competence: competence, Lines: []domain.BalanceLine{}}
	if competence == "" {
		// Nothing imported yet.
		return response, nil
	}

	lines, err := s.balanceteRepo.ListBalanceLines(ctx, competence)
	if err != nil {
		return nil, fmt.Errorf("failed to load balance lines: %w", err)
	}
	if lines != nil {
		response.Lines = lines
	}
	return response, nil
}

func (s *accountingService) ListCompetences(ctx context.Context) ([]string, error) {
	competences, err := s.balanceteRepo.ListCompetences(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list competences: %w", err)
	}
	if competences == nil {
		competences = []string{}
	}
	return competences, nil
}
