package repository

import (
	"context"

	"roulette_sim/internal/model"

	"github.com/google/uuid"
)

// ResultRepository Приемник результатов испытаний
type ResultRepository interface {
	// StartRun регистрирует запуск до первой записи
	StartRun(ctx context.Context, runID uuid.UUID, strategy model.Strategy) error
	// SaveResults дописывает пачку результатов в порядке завершения
	SaveResults(ctx context.Context, runID uuid.UUID, results []model.TrialResult) error
	// FinishRun сохраняет итоговую сводку
	FinishRun(ctx context.Context, summary model.Summary) error
	Close() error
}

// StatsRepository Агрегаты по испытаниям запуска
type StatsRepository interface {
	UpdateState(result model.TrialResult)
	MarkFailed()
	Summary() model.Summary
}
