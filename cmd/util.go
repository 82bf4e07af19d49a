package cmd

import (
	"database/sql"
	"fmt"
	"os"
	"rebalancer/api"
	integration_tests "rebalancer/integration-tests"
	"rebalancer/internal/logger"
	"rebalancer/internal/repository"
	l1_service "rebalancer/internal/service/l1"
	l2_service "rebalancer/internal/service/l2"
	l3_service "rebalancer/internal/service/l3"
	"rebalancer/internal/util"
	"strings"

	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

type Dependencies struct {
	Config *util.Config
	Db     *sql.DB

	PriceService       l1_service.PriceService
	HoldingsService    l1_service.HoldingsService
	TargetService      l1_service.TargetService
	LookThroughService l2_service.LookThroughService
	RebalanceService   l3_service.RebalanceService
	ReportService      l3_service.ReportService
	PlanFileRepository repository.PlanFileRepository

	HoldingsFileRepository repository.HoldingsFileRepository

	ApiHandler *api.ApiHandler

	runRepository repository.RebalanceRunRepository
}

func CloseDependencies(deps *Dependencies) {
	if deps.Db == nil {
		return
	}
	err := deps.Db.Close()
	if err != nil {
		zap.S().Errorf("failed to close db: %v", err)
	}
}

func isTestEnv() bool {
	return strings.EqualFold(os.Getenv(logger.EnvVar), "test")
}

// InitializeDependencies wires every service from the config at
// configPath (or the per-environment default). Optional integrations are
// left nil when their settings are missing.
func InitializeDependencies(configPath string) (*Dependencies, error) {
	config, err := util.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	var dbConn *sql.DB
	if config.Db.Enabled() {
		dbConn, err = sql.Open("postgres", config.Db.ToConnectionStr())
		if err != nil {
			return nil, fmt.Errorf("failed to connect to db: %w", err)
		}
	}

	var alpacaRepository repository.AlpacaRepository
	if isTestEnv() {
		alpacaRepository = integration_tests.NewMockAlpacaRepositoryForTests()
	} else if config.Alpaca.Enabled() {
		alpacaRepository = repository.NewAlpacaRepository(config.Alpaca.ApiKey, config.Alpaca.ApiSecret, config.Alpaca.Endpoint)
	}

	equityPriceRepository, err := newEquityPriceRepository(*config, alpacaRepository)
	if err != nil {
		return nil, err
	}

	var navRepository repository.PriceRepository
	if len(config.SchemeIds) > 0 {
		navRepository = repository.NewMfNavRepository(config.MfApiBaseUrl, config.SchemeIds)
	}

	priceService := l1_service.NewPriceService(
		equityPriceRepository,
		navRepository,
		config.SchemeIds,
		config.PriceRequestInterval(),
	)

	targetWeightsRepository := repository.NewTargetWeightsRepository()
	holdingsFileRepository := repository.NewHoldingsFileRepository()

	var runRepository repository.RebalanceRunRepository
	if dbConn != nil {
		runRepository = repository.NewRebalanceRunRepository(dbConn)
	}

	var emailRepository repository.EmailRepository
	if config.SES.Enabled() {
		emailRepository, err = repository.NewEmailRepository(config.SES.Region, config.SES.FromEmail)
		if err != nil {
			return nil, fmt.Errorf("failed to create email repository: %w", err)
		}
	}

	deps := &Dependencies{
		Config:          config,
		Db:              dbConn,
		PriceService:    priceService,
		HoldingsService: l1_service.NewHoldingsService(holdingsFileRepository, alpacaRepository),
		TargetService:   l1_service.NewTargetService(targetWeightsRepository),
		LookThroughService: l2_service.NewLookThroughService(
			repository.NewAllocationSourceRepository(),
			targetWeightsRepository,
			config.FuzzyMatchThreshold,
			config.MinimumTargetWeight,
		),
		ReportService:      l3_service.NewReportService(emailRepository),
		PlanFileRepository: repository.NewPlanFileRepository(),
		runRepository:      runRepository,

		HoldingsFileRepository: holdingsFileRepository,
	}

	deps.RebalanceService, err = deps.NewRebalanceService(runRepository != nil)
	if err != nil {
		return nil, err
	}

	deps.ApiHandler = &api.ApiHandler{
		Db:                             dbConn,
		RebalanceService:               deps.RebalanceService,
		PriceService:                   priceService,
		DefaultAllocationMarginPercent: config.AllocationMarginPercent,
		Logger:                         zap.S(),
	}

	return deps, nil
}

// NewRebalanceService returns a service that stores its runs only when
// persist is set. Persisting without a configured database is an error.
func (d Dependencies) NewRebalanceService(persist bool) (l3_service.RebalanceService, error) {
	if !persist {
		return l3_service.NewRebalanceService(nil, d.PriceService, nil, d.Config.DisplayNames, d.Config.RefreshNonTargetPrices), nil
	}
	if d.runRepository == nil {
		return nil, fmt.Errorf("cannot persist runs: no database configured")
	}
	return l3_service.NewRebalanceService(d.Db, d.PriceService, d.runRepository, d.Config.DisplayNames, d.Config.RefreshNonTargetPrices), nil
}

func newEquityPriceRepository(config util.Config, alpacaRepository repository.AlpacaRepository) (repository.PriceRepository, error) {
	switch config.PriceSource {
	case util.PriceSourceYahoo:
		return repository.NewYahooPriceRepository(repository.SymbolMapper{
			Overrides: config.SymbolOverrides,
			Suffix:    config.ExchangeSuffix,
		}), nil
	case util.PriceSourceAlpaca:
		if alpacaRepository == nil {
			return nil, fmt.Errorf("price source %s requires alpaca credentials", config.PriceSource)
		}
		return alpacaRepository, nil
	case util.PriceSourceFile:
		if config.PriceFile == "" {
			return nil, fmt.Errorf("price source %s requires priceFile", config.PriceSource)
		}
		return repository.NewPriceFileRepository(config.PriceFile), nil
	default:
		return nil, fmt.Errorf("unknown price source %q", config.PriceSource)
	}
}
