package model

// Строка таблицы trial_results
type TrialRow struct {
	RunID         string
	Trial         int
	FinalBankroll int
	AmountWagered int
	Spins         int
	Reason        string
	DozenBets     int
	ColumnBets    int
}

// Итоговые колонки simulation_runs
type SummaryRow struct {
	RunID           string
	Trials          int
	Failed          int
	TotalWagered    int64
	MeanNet         float64
	VarianceNet     float64
	RTP             string // numeric, передается строкой без потери точности
	RuinProbability float64
	DurationMs      int64
}
