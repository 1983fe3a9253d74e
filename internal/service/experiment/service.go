package experiment

import (
	"roulette_sim/internal/config"
	"roulette_sim/internal/repository"
	"roulette_sim/internal/service"
	"roulette_sim/internal/service/roulette"

	"go.uber.org/zap"
)

type serv struct {
	cfg        config.ExperimentConfig
	trials     service.TrialService
	resultRepo repository.ResultRepository
	statsRepo  repository.StatsRepository
	log        *zap.Logger

	// Генератор для испытания stream при базовом зерне seed
	newSource func(seed, stream uint64) service.OutcomeSource
}

// NewExperimentService Серия независимых испытаний с выводом в приемник результатов
func NewExperimentService(
	cfg config.ExperimentConfig,
	trials service.TrialService,
	resultRepo repository.ResultRepository,
	statsRepo repository.StatsRepository,
	log *zap.Logger,
) service.ExperimentService {
	return &serv{
		cfg:        cfg,
		trials:     trials,
		resultRepo: resultRepo,
		statsRepo:  statsRepo,
		log:        log,
		newSource:  roulette.NewWheel,
	}
}
