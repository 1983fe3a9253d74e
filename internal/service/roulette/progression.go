package roulette

// Progression Курсор по последовательности ставок одной линии
type Progression struct {
	stakes []int
	cursor int
}

func NewProgression(stakes []int) *Progression {
	return &Progression{stakes: stakes}
}

// Stake Текущая ставка, 0 если прогрессия исчерпана
func (p *Progression) Stake() int {
	if p.Exhausted() {
		return 0
	}
	return p.stakes[p.cursor]
}

func (p *Progression) Cursor() int {
	return p.cursor
}

// Exhausted Курсор дошел до конца последовательности
func (p *Progression) Exhausted() bool {
	return p.cursor >= len(p.stakes)
}

// Win Выигрыш: выплата 3 к ставке (2:1 плюс сама ставка), курсор в начало
func (p *Progression) Win() int {
	payout := 3 * p.Stake()
	p.cursor = 0
	return payout
}

// Loss Проигрыш: следующий шаг
func (p *Progression) Loss() {
	if !p.Exhausted() {
		p.cursor++
	}
}
