package model

import (
	"errors"
	"fmt"
)

var ErrInvalidStrategy = errors.New("invalid strategy")

// PrepopulationMode Как при предзаполнении считается таблица колонн
type PrepopulationMode string

const (
	// Колонны считаются по суммам колонн, как и в живом цикле
	PrepopulateColumnSums PrepopulationMode = "column_sums"
	// Таблица колонн получает суммы дюжин (поведение исходной программы)
	PrepopulateDozenSums PrepopulationMode = "dozen_sums"
)

// BetDirection Какую комбинацию выбирает селектор
type BetDirection string

const (
	// Комбинация, которая выпадала чаще ожидаемого
	DirectionOverrepresented BetDirection = "overrepresented"
	// Комбинация, которая отстает от ожидания
	DirectionUnderrepresented BetDirection = "underrepresented"
)

// Strategy Параметры одного испытания
type Strategy struct {
	Stake             int               `yaml:"stake" json:"stake"`
	Goal              int               `yaml:"goal" json:"goal"`
	MaxSpins          int               `yaml:"max_spins" json:"max_spins"`
	InitialDataPoints int               `yaml:"initial_data_points" json:"initial_data_points"`
	MinDeviation      float64           `yaml:"min_deviation" json:"min_deviation"`
	Progression       []int             `yaml:"progression" json:"progression"`
	Prepopulation     PrepopulationMode `yaml:"prepopulation" json:"prepopulation"`
	Direction         BetDirection      `yaml:"direction" json:"direction"`
}

// Validate проверяет параметры стратегии
func (s Strategy) Validate() error {
	if s.Stake <= 0 {
		return fmt.Errorf("%w: stake must be positive", ErrInvalidStrategy)
	}
	if s.Goal <= 0 {
		return fmt.Errorf("%w: goal must be positive", ErrInvalidStrategy)
	}
	if s.MaxSpins <= 0 {
		return fmt.Errorf("%w: max spins must be positive", ErrInvalidStrategy)
	}
	if s.InitialDataPoints < 1 {
		return fmt.Errorf("%w: at least one initial data point is required", ErrInvalidStrategy)
	}
	if len(s.Progression) == 0 {
		return fmt.Errorf("%w: progression is empty", ErrInvalidStrategy)
	}
	for i, stake := range s.Progression {
		if stake <= 0 {
			return fmt.Errorf("%w: progression step %d is not positive", ErrInvalidStrategy, i)
		}
		if i > 0 && stake < s.Progression[i-1] {
			return fmt.Errorf("%w: progression decreases at step %d", ErrInvalidStrategy, i)
		}
	}
	switch s.Prepopulation {
	case PrepopulateColumnSums, PrepopulateDozenSums:
	default:
		return fmt.Errorf("%w: unknown prepopulation mode %q", ErrInvalidStrategy, s.Prepopulation)
	}
	switch s.Direction {
	case DirectionOverrepresented, DirectionUnderrepresented:
	default:
		return fmt.Errorf("%w: unknown bet direction %q", ErrInvalidStrategy, s.Direction)
	}
	return nil
}
