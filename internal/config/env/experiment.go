package env

import (
	"fmt"
	"os"
	"runtime"
	"strconv"

	"roulette_sim/internal/config"
	rouletteModel "roulette_sim/internal/service/roulette/model"
)

const (
	trialsEnvName        = "TRIALS"
	workersEnvName       = "WORKERS"
	seedEnvName          = "SEED"
	batchSizeEnvName     = "BATCH_SIZE"
	progressEveryEnvName = "PROGRESS_EVERY"

	defaultWorkers       = 1
	defaultBatchSize     = 1000
	defaultProgressEvery = 100000
)

type experimentConfig struct {
	trials        int
	workers       int
	seed          uint64
	batchSize     int
	progressEvery int
}

func NewExperimentConfig() (config.ExperimentConfig, error) {
	trials, err := intFromEnv(trialsEnvName, rouletteModel.NumTrials)
	if err != nil {
		return nil, err
	}
	if trials <= 0 {
		return nil, fmt.Errorf("%s must be positive", trialsEnvName)
	}

	// 0 - по числу процессоров
	workers, err := intFromEnv(workersEnvName, defaultWorkers)
	if err != nil {
		return nil, err
	}
	if workers < 0 {
		return nil, fmt.Errorf("%s must not be negative", workersEnvName)
	}
	if workers == 0 {
		workers = runtime.NumCPU()
	}

	var seed uint64
	if raw := os.Getenv(seedEnvName); len(raw) != 0 {
		seed, err = strconv.ParseUint(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s: %w", seedEnvName, err)
		}
	}

	batchSize, err := intFromEnv(batchSizeEnvName, defaultBatchSize)
	if err != nil {
		return nil, err
	}
	if batchSize <= 0 {
		return nil, fmt.Errorf("%s must be positive", batchSizeEnvName)
	}

	progressEvery, err := intFromEnv(progressEveryEnvName, defaultProgressEvery)
	if err != nil {
		return nil, err
	}

	return &experimentConfig{
		trials:        trials,
		workers:       workers,
		seed:          seed,
		batchSize:     batchSize,
		progressEvery: progressEvery,
	}, nil
}

func (c *experimentConfig) Trials() int {
	return c.trials
}

func (c *experimentConfig) Workers() int {
	return c.workers
}

// Seed 0 означает случайное зерно на каждый запуск
func (c *experimentConfig) Seed() uint64 {
	return c.seed
}

func (c *experimentConfig) BatchSize() int {
	return c.batchSize
}

func (c *experimentConfig) ProgressEvery() int {
	return c.progressEvery
}

func intFromEnv(name string, def int) (int, error) {
	raw := os.Getenv(name)
	if len(raw) == 0 {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return v, nil
}
