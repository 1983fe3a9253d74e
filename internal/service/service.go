package service

import (
	"context"

	"roulette_sim/internal/model"
)

// OutcomeSource Источник исходов колеса в диапазоне [0, 36]
type OutcomeSource interface {
	Next() int
}

type TrialService interface {
	RunTrial(src OutcomeSource) (*model.TrialResult, error)
	Strategy() model.Strategy
}

type ExperimentService interface {
	Run(ctx context.Context) (*model.Summary, error)
}
