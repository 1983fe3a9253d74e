package roulette

import (
	"fmt"

	"roulette_sim/internal/model"
)

// ComboCounts Счетчики комбинаций 2..6
type ComboCounts [combinations]int

// Count Сколько раз встречалась комбинация c
func (t *ComboCounts) Count(c int) int {
	if c < minCombination || c > maxCombination {
		return 0
	}
	return t[c-minCombination]
}

func (t *ComboCounts) inc(c int) error {
	if c < minCombination || c > maxCombination {
		return fmt.Errorf("%w: %d", ErrInvalidCombination, c)
	}
	t[c-minCombination]++
	return nil
}

// Tracker История спинов и счетчики комбинаций одного испытания
type Tracker struct {
	spins   []int
	dozens  ComboCounts
	columns ComboCounts
	mode    model.PrepopulationMode
}

func NewTracker(mode model.PrepopulationMode, capacity int) *Tracker {
	return &Tracker{
		spins: make([]int, 0, capacity),
		mode:  mode,
	}
}

// Append добавляет исход в конец истории
func (t *Tracker) Append(outcome int) {
	t.spins = append(t.spins, outcome)
}

func (t *Tracker) Len() int {
	return len(t.spins)
}

// Counts Таблица комбинаций для линии
func (t *Tracker) Counts(track model.Track) *ComboCounts {
	if track == model.TrackColumns {
		return &t.columns
	}
	return &t.dozens
}

// LastNonZeroBefore Ближайший ненулевой исход строго перед позицией pos, 0 если его нет
func (t *Tracker) LastNonZeroBefore(pos int) int {
	if pos > len(t.spins) {
		pos = len(t.spins)
	}
	for i := pos - 1; i >= 0; i-- {
		if t.spins[i] != 0 {
			return t.spins[i]
		}
	}
	return 0
}

// PreviousNonZero Ненулевой исход перед последним спином истории.
// Последний спин не учитывается, даже если он ненулевой.
func (t *Tracker) PreviousNonZero() int {
	return t.LastNonZeroBefore(len(t.spins) - 1)
}

// RecordPair Учет пары при предзаполнении.
// Возвращает false, если одно из значений зеро: точка данных не получена.
func (t *Tracker) RecordPair(prev, cur int) (bool, error) {
	if prev == 0 || cur == 0 {
		return false, nil
	}

	dozenSum := Dozen(prev) + Dozen(cur)
	if err := t.dozens.inc(dozenSum); err != nil {
		return false, err
	}

	columnSum := Column(prev) + Column(cur)
	if t.mode == model.PrepopulateDozenSums {
		columnSum = dozenSum
	}
	if err := t.columns.inc(columnSum); err != nil {
		return false, err
	}

	return true, nil
}

// RecordLatest Предзаполнение по последнему исходу истории
func (t *Tracker) RecordLatest() (bool, error) {
	last := len(t.spins) - 1
	if last < 0 {
		return false, nil
	}
	return t.RecordPair(t.LastNonZeroBefore(last), t.spins[last])
}

// RecordLive Учет только что выпавшего исхода в живом цикле.
// Всегда считает дюжины по дюжинам и колонны по колоннам.
func (t *Tracker) RecordLive() error {
	last := len(t.spins) - 1
	if last < 0 {
		return nil
	}
	cur := t.spins[last]
	if cur == 0 {
		return nil
	}
	prev := t.LastNonZeroBefore(last)

	if err := t.dozens.inc(Dozen(prev) + Dozen(cur)); err != nil {
		return fmt.Errorf("dozens after %d: %w", prev, err)
	}
	if err := t.columns.inc(Column(prev) + Column(cur)); err != nil {
		return fmt.Errorf("columns after %d: %w", prev, err)
	}
	return nil
}
