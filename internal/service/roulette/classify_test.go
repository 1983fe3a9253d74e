package roulette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestDozen(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero", 0, Undefined},
		{"first of first dozen", 1, 1},
		{"last of first dozen", 12, 1},
		{"first of second dozen", 13, 2},
		{"last of second dozen", 24, 2},
		{"first of third dozen", 25, 3},
		{"last pocket", 36, 3},
		{"above wheel", 37, Undefined},
		{"negative", -1, Undefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Dozen(tt.n))
		})
	}
}

func TestColumn(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want int
	}{
		{"zero", 0, Undefined},
		{"one", 1, 1},
		{"two", 2, 2},
		{"three", 3, 3},
		{"thirty four", 34, 1},
		{"thirty five", 35, 2},
		{"thirty six", 36, 3},
		{"above wheel", 37, Undefined},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Column(tt.n))
		})
	}
}

func TestClassificationCoversNonZeroPockets(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 36).Draw(t, "n")

		if d := Dozen(n); d < 1 || d > 3 {
			t.Fatalf("Dozen(%d) = %d, want 1..3", n, d)
		}
		if c := Column(n); c < 1 || c > 3 {
			t.Fatalf("Column(%d) = %d, want 1..3", n, c)
		}
		if c := Column(n); c != (n-1)%3+1 {
			t.Fatalf("Column(%d) = %d", n, c)
		}
	})
}

func TestEachGroupHasTwelvePockets(t *testing.T) {
	dozens := map[int]int{}
	columns := map[int]int{}
	for n := 1; n <= 36; n++ {
		dozens[Dozen(n)]++
		columns[Column(n)]++
	}

	assert.Equal(t, map[int]int{1: 12, 2: 12, 3: 12}, dozens)
	assert.Equal(t, map[int]int{1: 12, 2: 12, 3: 12}, columns)
}
