package services

import (
	portsrepo "github.com/Leonzuka/Projeto-Valex/internal/core/ports/repositories"
	portssvc "github.com/Leonzuka/Projeto-Valex/internal/core/ports/services"
	"github.com/Leonzuka/Projeto-Valex/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	policy := ImportPolicy{BatchSize: cfg.ImportBatchSize, Atomic: cfg.ImportAtomic}

	return &portssvc.ServiceContainer{
		Producer:  NewProducerService(repos.ProducerRepo),
		Farm:      NewFarmService(repos.FarmRepo),
		Catalog:   NewCatalogService(repos.CatalogRepo),
		Activity:  NewActivityService(repos.ActivityRepo),
		Reporting: NewReportingService(repos.ReportingRepo),
		Import: &importService{
			ChartImportSvc:     NewChartImportService(repos.ChartAccountRepo, policy),
			BalanceteImportSvc: NewBalanceteImportService(repos.BalanceteRepo),
			FundsImportSvc:     NewFundsImportService(repos.FundRepo),
		},
		Accounting: NewAccountingService(repos.ChartAccountRepo, repos.BalanceteRepo),
		Auth:       NewAuthService(cfg),
	}
}

// importService bundles the three import services behind the facade.
type importService struct {
	portssvc.ChartImportSvc
	portssvc.BalanceteImportSvc
	portssvc.FundsImportSvc
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.ProducerSvcFacade   = (*producerService)(nil)
	_ portssvc.ActivitySvcFacade   = (*activityService)(nil)
	_ portssvc.ImportSvcFacade     = (*importService)(nil)
	_ portssvc.AccountingSvcFacade = (*accountingService)(nil)
)
