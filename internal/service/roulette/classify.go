package roulette

// Undefined Группа для зеро и значений вне колеса
const Undefined = 0

// Dozen Дюжина исхода: 1-12 -> 1, 13-24 -> 2, 25-36 -> 3
func Dozen(n int) int {
	switch {
	case n >= 1 && n <= 12:
		return 1
	case n >= 13 && n <= 24:
		return 2
	case n >= 25 && n <= 36:
		return 3
	}
	return Undefined
}

// Column Колонна исхода по остатку от деления на 3
func Column(n int) int {
	if n < 1 || n > 36 {
		return Undefined
	}
	return (n-1)%3 + 1
}
