package roulette

import (
	"math"

	"roulette_sim/internal/model"
)

// ScoreFunc Оценка комбинации, селектор берет максимум
type ScoreFunc func(actual int, expected float64) float64

// Overrepresented Превышение факта над ожиданием
func Overrepresented(actual int, expected float64) float64 {
	return float64(actual) - expected
}

// Underrepresented Отставание факта от ожидания
func Underrepresented(actual int, expected float64) float64 {
	return expected - float64(actual)
}

// ScoreFor Оценка для направления ставки
func ScoreFor(direction model.BetDirection) ScoreFunc {
	if direction == model.DirectionUnderrepresented {
		return Underrepresented
	}
	return Overrepresented
}

// Selection Выбранная комбинация и ее отклонение от ожидания
type Selection struct {
	Combination int
	Actual      int
	Expected    float64
	Score       float64
	Ratio       float64 // Actual / Expected
}

// Overage Факт минус ожидание
func (s Selection) Overage() float64 {
	return float64(s.Actual) - s.Expected
}

// Select Комбинация с максимальной оценкой.
// При равенстве остается первая из просмотренных 2 -> 6.
func Select(counts *ComboCounts, spins int, score ScoreFunc) (Selection, error) {
	best := Selection{Score: math.Inf(-1)}
	for c := minCombination; c <= maxCombination; c++ {
		expected, err := ExpectedOccurrences(c, spins)
		if err != nil {
			return Selection{}, err
		}
		actual := counts.Count(c)
		if s := score(actual, expected); s > best.Score {
			best = Selection{
				Combination: c,
				Actual:      actual,
				Expected:    expected,
				Score:       s,
			}
		}
	}

	if best.Expected > 0 {
		best.Ratio = float64(best.Actual) / best.Expected
	}
	return best, nil
}

// AdmissionFunc Допуск ставки по выбранной комбинации
type AdmissionFunc func(sel Selection, threshold float64) bool

// RatioAdmission Отношение факта к ожиданию не ниже порога
func RatioAdmission(sel Selection, threshold float64) bool {
	return sel.Ratio >= threshold
}

// RawDeviationAdmission Сырое отклонение (ожидание минус факт) не ниже порога.
// Для перепредставленной комбинации оно обычно отрицательное.
func RawDeviationAdmission(sel Selection, threshold float64) bool {
	return sel.Expected-float64(sel.Actual) >= threshold
}
