package model

import "roulette_sim/internal/model"

const (
	// Количество испытаний в запуске
	NumTrials = 1000000

	// Стартовый банк
	Stake = 100
	// Прибыль сверх банка, после которой испытание заканчивается
	Goal = 25
	// Максимум спинов со ставками в испытании
	NumSpins = 100

	// Сколько валидных пар нужно набрать до первой ставки
	NumInitialDataPoints = 15
	// Порог отклонения для допуска ставки
	MinDeviationForBet = 0.4
)

// Progression Последовательность ставок: растет после проигрыша, сбрасывается после выигрыша
var Progression = []int{1, 1, 2, 3, 5, 7, 11, 18}

// DefaultStrategy Стратегия по умолчанию
func DefaultStrategy() model.Strategy {
	progression := make([]int, len(Progression))
	copy(progression, Progression)

	return model.Strategy{
		Stake:             Stake,
		Goal:              Goal,
		MaxSpins:          NumSpins,
		InitialDataPoints: NumInitialDataPoints,
		MinDeviation:      MinDeviationForBet,
		Progression:       progression,
		Prepopulation:     model.PrepopulateColumnSums,
		Direction:         model.DirectionOverrepresented,
	}
}
