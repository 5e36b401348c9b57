package pgsql

import (
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ProducerRepo:     newPgxProducerRepository(dbPool),
		FarmRepo:         newPgxFarmRepository(dbPool),
		CatalogRepo:      newPgxCatalogRepository(dbPool),
		ActivityRepo:     newPgxActivityRepository(dbPool),
		ReportingRepo:    newPgxReportingRepository(dbPool),
		ChartAccountRepo: newPgxChartAccountRepository(dbPool),
		BalanceteRepo:    newPgxBalanceteRepository(dbPool),
		FundRepo:         newPgxFundRepository(dbPool),
	}
}
