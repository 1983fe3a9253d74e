package roulette

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestExpectedOccurrences(t *testing.T) {
	tests := []struct {
		c     int
		spins int
		want  float64
	}{
		{2, 10, 1},
		{3, 10, 2},
		{4, 10, 3},
		{5, 10, 2},
		{6, 10, 1},
		{4, 1, 0},
		{3, 5, 8.0 / 9.0},
	}

	for _, tt := range tests {
		got, err := ExpectedOccurrences(tt.c, tt.spins)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-12, "c=%d spins=%d", tt.c, tt.spins)
	}
}

func TestExpectedOccurrencesRejectsInvalidCombination(t *testing.T) {
	for _, c := range []int{0, 1, 7, -3, 100} {
		_, err := ExpectedOccurrences(c, 10)
		assert.ErrorIs(t, err, ErrInvalidCombination, "c=%d", c)
	}
}

func TestExpectedOccurrencesSumToPairCount(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		spins := rapid.IntRange(1, 100000).Draw(t, "spins")

		sum := 0.0
		for c := minCombination; c <= maxCombination; c++ {
			e, err := ExpectedOccurrences(c, spins)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if e < 0 {
				t.Fatalf("ExpectedOccurrences(%d, %d) = %v < 0", c, spins, e)
			}
			sum += e
		}

		if math.Abs(sum-float64(spins-1)) > 1e-6 {
			t.Fatalf("sum = %v, want %d", sum, spins-1)
		}
	})
}
