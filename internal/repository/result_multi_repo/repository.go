package result_multi_repo

import (
	"context"

	"roulette_sim/internal/model"
	"roulette_sim/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/multierr"
)

type repo struct {
	sinks []repository.ResultRepository
}

// NewResultRepository Раздает результаты в несколько приемников по порядку.
// Ошибки всех приемников собираются в одну.
func NewResultRepository(sinks ...repository.ResultRepository) repository.ResultRepository {
	if len(sinks) == 1 {
		return sinks[0]
	}
	return &repo{sinks: sinks}
}

func (r *repo) StartRun(ctx context.Context, runID uuid.UUID, strategy model.Strategy) error {
	var err error
	for _, s := range r.sinks {
		err = multierr.Append(err, s.StartRun(ctx, runID, strategy))
	}
	return err
}

func (r *repo) SaveResults(ctx context.Context, runID uuid.UUID, results []model.TrialResult) error {
	var err error
	for _, s := range r.sinks {
		err = multierr.Append(err, s.SaveResults(ctx, runID, results))
	}
	return err
}

func (r *repo) FinishRun(ctx context.Context, summary model.Summary) error {
	var err error
	for _, s := range r.sinks {
		err = multierr.Append(err, s.FinishRun(ctx, summary))
	}
	return err
}

func (r *repo) Close() error {
	var err error
	for _, s := range r.sinks {
		err = multierr.Append(err, s.Close())
	}
	return err
}
