package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"roulette_sim/internal/config"
	"roulette_sim/internal/model"
	rouletteModel "roulette_sim/internal/service/roulette/model"

	"gopkg.in/yaml.v3"
)

const (
	strategyPathEnvName = "STRATEGY_CONFIG"
	defaultStrategyPath = "config.yaml"
)

type strategyConfig struct {
	strategy model.Strategy
}

// NewStrategyConfig Путь к файлу стратегии из STRATEGY_CONFIG, по умолчанию config.yaml
func NewStrategyConfig() (config.StrategyConfig, error) {
	path := os.Getenv(strategyPathEnvName)
	if len(path) == 0 {
		path = defaultStrategyPath
	}
	return NewStrategyConfigFromYAML(path)
}

// NewStrategyConfigFromYAML Стратегия по умолчанию, поверх нее значения из файла.
// Отсутствующий файл не ошибка.
func NewStrategyConfigFromYAML(path string) (config.StrategyConfig, error) {
	strategy := rouletteModel.DefaultStrategy()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &strategyConfig{strategy: strategy}, nil
	case err != nil:
		return nil, fmt.Errorf("read strategy config: %w", err)
	}

	if err := yaml.Unmarshal(data, &strategy); err != nil {
		return nil, fmt.Errorf("parse strategy config: %w", err)
	}
	if err := strategy.Validate(); err != nil {
		return nil, err
	}

	return &strategyConfig{strategy: strategy}, nil
}

func (c *strategyConfig) Strategy() model.Strategy {
	return c.strategy
}
