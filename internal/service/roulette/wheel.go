package roulette

import (
	"math/rand/v2"

	"roulette_sim/internal/model"
	"roulette_sim/internal/service"
)

type wheel struct {
	rng *rand.Rand
}

// NewWheel Колесо без смещения с собственным генератором.
// Пара (seed, stream) однозначно задает последовательность исходов.
func NewWheel(seed, stream uint64) service.OutcomeSource {
	return &wheel{rng: rand.New(rand.NewPCG(seed, stream))}
}

// Next Равномерный исход из [0, 36]
func (w *wheel) Next() int {
	return w.rng.IntN(model.Pockets)
}
