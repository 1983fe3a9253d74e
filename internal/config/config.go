package config

import (
	"roulette_sim/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type StrategyConfig interface {
	Strategy() model.Strategy
}

type ExperimentConfig interface {
	Trials() int
	Workers() int
	Seed() uint64
	BatchSize() int
	ProgressEvery() int
}

type OutputConfig interface {
	FilePath() string
	Drivers() []string
}

type PGConfig interface {
	DSN() string
}

type LogConfig interface {
	Level() string
}
