package app

import (
	"context"

	"roulette_sim/internal/config"
	"roulette_sim/internal/config/env"
	"roulette_sim/internal/repository"
	"roulette_sim/internal/repository/result_file_repo"
	"roulette_sim/internal/repository/result_multi_repo"
	"roulette_sim/internal/repository/result_pg_repo"
	"roulette_sim/internal/repository/stats_repo"
	"roulette_sim/internal/service"
	"roulette_sim/internal/service/experiment"
	"roulette_sim/internal/service/roulette"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type ServiceProvider struct {
	// Logger
	logCfg config.LogConfig
	logger *zap.Logger

	//TXManager
	txManager trm.Manager

	// Database
	pgConfig config.PGConfig
	dbClient *pgxpool.Pool

	// Output
	outputCfg  config.OutputConfig
	resultRepo repository.ResultRepository
	statsRepo  repository.StatsRepository

	// Simulation bits
	strategyCfg   config.StrategyConfig
	experimentCfg config.ExperimentConfig
	trialServ     service.TrialService
	experiment    service.ExperimentService
}

func newServiceProvider() *ServiceProvider {
	return &ServiceProvider{}
}

func (sp *ServiceProvider) LogCfg() config.LogConfig {
	if sp.logCfg == nil {
		sp.logCfg = env.NewLogConfig()
	}
	return sp.logCfg
}

func (sp *ServiceProvider) Logger() *zap.Logger {
	if sp.logger == nil {
		level, err := zap.ParseAtomicLevel(sp.LogCfg().Level())
		if err != nil {
			panic("failed to parse log level: " + err.Error())
		}
		cfg := zap.NewProductionConfig()
		cfg.Level = level
		l, err := cfg.Build()
		if err != nil {
			panic("failed to build logger: " + err.Error())
		}
		sp.logger = l
	}
	return sp.logger
}

func (sp *ServiceProvider) PgConfig() config.PGConfig {
	if sp.pgConfig == nil {
		cfg, err := env.NewPGConfig()
		if err != nil {
			panic("failed to get database config: " + err.Error())
		}
		sp.pgConfig = cfg
	}
	return sp.pgConfig
}

func (sp *ServiceProvider) DBClient(ctx context.Context) *pgxpool.Pool {
	if sp.dbClient == nil {
		dbc, err := pgxpool.New(ctx, sp.PgConfig().DSN())
		if err != nil {
			panic("failed to create db pool: " + err.Error())
		}
		err = dbc.Ping(ctx)
		if err != nil {
			panic("failed to ping db: " + err.Error())
		}
		sp.dbClient = dbc
	}
	return sp.dbClient
}

func (sp *ServiceProvider) TXManager(ctx context.Context) trm.Manager {
	if sp.txManager == nil {
		m, err := manager.New(trmpgx.NewDefaultFactory(sp.DBClient(ctx)))
		if err != nil {
			panic("failed to create tx manager: " + err.Error())
		}

		sp.txManager = m
	}

	return sp.txManager
}

func (sp *ServiceProvider) OutputCfg() config.OutputConfig {
	if sp.outputCfg == nil {
		cfg, err := env.NewOutputConfig()
		if err != nil {
			panic("failed to get output config: " + err.Error())
		}
		sp.outputCfg = cfg
	}
	return sp.outputCfg
}

// ResultRepository Приемники из OUTPUT_DRIVERS
func (sp *ServiceProvider) ResultRepository(ctx context.Context) repository.ResultRepository {
	if sp.resultRepo == nil {
		var sinks []repository.ResultRepository
		for _, driver := range sp.OutputCfg().Drivers() {
			switch driver {
			case env.DriverFile:
				r, err := result_file_repo.NewResultRepository(sp.OutputCfg().FilePath())
				if err != nil {
					panic("failed to open output file: " + err.Error())
				}
				sinks = append(sinks, r)
			case env.DriverPostgres:
				sinks = append(sinks, result_pg_repo.NewResultRepository(sp.DBClient(ctx), sp.TXManager(ctx)))
			}
		}
		sp.resultRepo = result_multi_repo.NewResultRepository(sinks...)
	}
	return sp.resultRepo
}

func (sp *ServiceProvider) StatsRepository() repository.StatsRepository {
	if sp.statsRepo == nil {
		sp.statsRepo = stats_repo.NewStatsRepository(sp.StrategyCfg().Strategy().Stake, 0)
	}
	return sp.statsRepo
}

func (sp *ServiceProvider) StrategyCfg() config.StrategyConfig {
	if sp.strategyCfg == nil {
		cfg, err := env.NewStrategyConfig()
		if err != nil {
			panic("failed to get strategy config: " + err.Error())
		}
		sp.strategyCfg = cfg
	}
	return sp.strategyCfg
}

func (sp *ServiceProvider) ExperimentCfg() config.ExperimentConfig {
	if sp.experimentCfg == nil {
		cfg, err := env.NewExperimentConfig()
		if err != nil {
			panic("failed to get experiment config: " + err.Error())
		}
		sp.experimentCfg = cfg
	}
	return sp.experimentCfg
}

func (sp *ServiceProvider) TrialService() service.TrialService {
	if sp.trialServ == nil {
		s, err := roulette.NewTrialService(sp.StrategyCfg().Strategy(), nil)
		if err != nil {
			panic("failed to create trial service: " + err.Error())
		}
		sp.trialServ = s
	}
	return sp.trialServ
}

func (sp *ServiceProvider) ExperimentService(ctx context.Context) service.ExperimentService {
	if sp.experiment == nil {
		sp.experiment = experiment.NewExperimentService(
			sp.ExperimentCfg(),
			sp.TrialService(),
			sp.ResultRepository(ctx),
			sp.StatsRepository(),
			sp.Logger(),
		)
	}
	return sp.experiment
}
