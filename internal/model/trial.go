package model

// Количество лунок колеса: 36 номеров и зеро
const Pockets = 37

// Track Ставочная линия: дюжины или колонны
type Track int

const (
	TrackDozens Track = iota
	TrackColumns
)

func (t Track) String() string {
	switch t {
	case TrackDozens:
		return "dozens"
	case TrackColumns:
		return "columns"
	}
	return "unknown"
}

// StopReason Причина завершения испытания
type StopReason int

const (
	// Исчерпан лимит спинов
	StopSpinBudget StopReason = iota
	// Одна из прогрессий дошла до конца
	StopProgression
	// Достигнута цель по выигрышу
	StopGoal
	// Денег не хватает ни на одну ставку
	StopInsufficientCapital
)

func (r StopReason) String() string {
	switch r {
	case StopSpinBudget:
		return "spin_budget"
	case StopProgression:
		return "progression"
	case StopGoal:
		return "goal"
	case StopInsufficientCapital:
		return "insufficient_capital"
	}
	return "unknown"
}

// Ruin Разорение: прогрессия исчерпана или не на что ставить
func (r StopReason) Ruin() bool {
	return r == StopProgression || r == StopInsufficientCapital
}

// TrialResult Итог одного испытания
type TrialResult struct {
	Trial         int        // Номер испытания в запуске
	FinalBankroll int        // Банк в конце
	AmountWagered int        // Сколько всего поставлено
	Spins         int        // Сколько спинов со ставками сыграно
	Reason        StopReason // Почему остановились
	DozenBets     int        // Ставок на дюжины
	ColumnBets    int        // Ставок на колонны
	DozenCursor   int        // Позиция прогрессии дюжин в конце
	ColumnCursor  int        // Позиция прогрессии колонн в конце
}

// Net Чистый результат относительно стартового банка
func (r TrialResult) Net(stake int) int {
	return r.FinalBankroll - stake
}
