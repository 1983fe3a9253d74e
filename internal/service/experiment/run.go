package experiment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"roulette_sim/internal/model"
	"roulette_sim/pkg/seed"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Run Выполняет все испытания запуска.
// Каждое испытание получает свой генератор (seed, номер испытания), поэтому
// результат испытания не зависит от числа воркеров. Результаты пишет одна
// горутина в порядке завершения испытаний.
func (s *serv) Run(ctx context.Context) (*model.Summary, error) {
	runID := uuid.New()
	startedAt := time.Now()

	baseSeed := s.cfg.Seed()
	if baseSeed == 0 {
		var err error
		if baseSeed, err = seed.New(); err != nil {
			return nil, err
		}
	}

	log := s.log.With(zap.Stringer("run_id", runID))
	log.Info("run started",
		zap.Int("trials", s.cfg.Trials()),
		zap.Int("workers", s.cfg.Workers()),
		zap.Uint64("seed", baseSeed),
	)

	if err := s.resultRepo.StartRun(ctx, runID, s.trials.Strategy()); err != nil {
		return nil, fmt.Errorf("start run: %w", err)
	}

	workers := max(s.cfg.Workers(), 1)
	jobs := make(chan int)
	results := make(chan model.TrialResult, workers)

	g, gctx := errgroup.WithContext(ctx)

	// Раздача номеров испытаний
	g.Go(func() error {
		defer close(jobs)
		for trial := 0; trial < s.cfg.Trials(); trial++ {
			select {
			case jobs <- trial:
			case <-gctx.Done():
				return gctx.Err()
			}
		}
		return nil
	})

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		g.Go(func() error {
			defer wg.Done()
			return s.work(gctx, log, baseSeed, jobs, results)
		})
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	g.Go(func() error {
		return s.write(gctx, log, runID, results)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	summary := s.statsRepo.Summary()
	summary.RunID = runID
	summary.StartedAt = startedAt
	summary.Duration = time.Since(startedAt)

	if err := s.resultRepo.FinishRun(ctx, summary); err != nil {
		return nil, fmt.Errorf("finish run: %w", err)
	}

	log.Info("run finished",
		zap.Int("trials", summary.Trials),
		zap.Int("failed", summary.Failed),
		zap.Int64("total_wagered", summary.TotalWagered),
		zap.Float64("mean_net", summary.MeanNet),
		zap.Float64("stddev_net", summary.StdDevNet),
		zap.Float64("ruin_probability", summary.RuinProbability),
		zap.Stringer("rtp", summary.RTP),
		zap.Duration("duration", summary.Duration),
	)

	return &summary, nil
}

// work Воркер: прогоняет испытания из jobs.
// Испытание с нарушенным инвариантом прерывается и не попадает в вывод.
func (s *serv) work(ctx context.Context, log *zap.Logger, baseSeed uint64, jobs <-chan int, results chan<- model.TrialResult) error {
	for trial := range jobs {
		res, err := s.trials.RunTrial(s.newSource(baseSeed, uint64(trial)))
		if err != nil {
			log.Error("trial aborted", zap.Int("trial", trial), zap.Error(err))
			s.statsRepo.MarkFailed()
			continue
		}
		res.Trial = trial

		select {
		case results <- *res:
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return nil
}

// write Единственный писатель: копит пачку и сбрасывает ее в приемник
func (s *serv) write(ctx context.Context, log *zap.Logger, runID uuid.UUID, results <-chan model.TrialResult) error {
	batch := make([]model.TrialResult, 0, s.cfg.BatchSize())
	done := 0

	for res := range results {
		s.statsRepo.UpdateState(res)
		batch = append(batch, res)
		done++

		if len(batch) >= s.cfg.BatchSize() {
			if err := s.resultRepo.SaveResults(ctx, runID, batch); err != nil {
				return fmt.Errorf("save results: %w", err)
			}
			batch = batch[:0]
		}

		if every := s.cfg.ProgressEvery(); every > 0 && done%every == 0 {
			snap := s.statsRepo.Summary()
			log.Info("progress",
				zap.Int("done", done),
				zap.Float64("mean_net", snap.MeanNet),
				zap.Float64("window_mean_net", snap.WindowMean),
			)
		}
	}

	if len(batch) > 0 {
		if err := s.resultRepo.SaveResults(ctx, runID, batch); err != nil {
			return fmt.Errorf("save results: %w", err)
		}
	}
	return nil
}
