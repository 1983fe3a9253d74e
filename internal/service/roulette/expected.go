package roulette

import (
	"errors"
	"fmt"
)

const (
	// Границы суммы двух групп
	minCombination = 2
	maxCombination = 6
	combinations   = maxCombination - minCombination + 1
)

var ErrInvalidCombination = errors.New("invalid combination")

// ExpectedOccurrences Ожидаемое число появлений комбинации после spins спинов.
// Вероятность суммы двух равномерных {1,2,3}: 1/9, 2/9, 3/9, 2/9, 1/9,
// число пар приближается как spins-1 без учета пар, разорванных зеро.
func ExpectedOccurrences(c, spins int) (float64, error) {
	var factor float64
	switch c {
	case 2, 6:
		factor = 1
	case 3, 5:
		factor = 2
	case 4:
		factor = 3
	default:
		return 0, fmt.Errorf("%w: %d", ErrInvalidCombination, c)
	}

	return factor * float64(spins-1) / 9.0, nil
}
