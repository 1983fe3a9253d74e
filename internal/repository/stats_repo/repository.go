package stats_repo

import (
	"math"
	"sync"

	"roulette_sim/internal/model"
	repoModel "roulette_sim/internal/repository/stats_repo/model"

	"github.com/shopspring/decimal"
)

// Размер окна последних испытаний по умолчанию
const defaultWindowSize = 500

// StatsRepo Реализация репозитория агрегатов запуска в памяти
type StatsRepo struct {
	mtx   sync.RWMutex
	stake int
	state repoModel.RunState
}

// NewStatsRepository Конструктор с начальным состоянием
func NewStatsRepository(stake, windowSize int) *StatsRepo {
	if windowSize <= 0 {
		windowSize = defaultWindowSize
	}
	return &StatsRepo{
		stake: stake,
		state: repoModel.RunState{
			Reasons:    make(map[model.StopReason]int),
			NetWindow:  make([]int, 0, windowSize),
			WindowSize: windowSize,
		},
	}
}

// UpdateState Обновление агрегатов после испытания
func (r *StatsRepo) UpdateState(result model.TrialResult) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	net := result.Net(r.stake)
	r.state.Add(net)
	r.state.TotalWagered += int64(result.AmountWagered)
	r.state.TotalNet += int64(net)
	r.state.Reasons[result.Reason]++

	r.state.Push(net)
}

// MarkFailed Учет прерванного испытания
func (r *StatsRepo) MarkFailed() {
	r.mtx.Lock()
	defer r.mtx.Unlock()
	r.state.Failed++
}

// Summary Снимок агрегатов
func (r *StatsRepo) Summary() model.Summary {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	s := r.state
	reasons := make(map[model.StopReason]int, len(s.Reasons))
	var ruined int
	for reason, n := range s.Reasons {
		reasons[reason] = n
		if reason.Ruin() {
			ruined += n
		}
	}

	summary := model.Summary{
		Trials:       s.Trials,
		Failed:       s.Failed,
		TotalWagered: s.TotalWagered,
		TotalNet:     s.TotalNet,
		MeanNet:      s.MeanNet,
		VarianceNet:  s.Variance(),
		StdDevNet:    math.Sqrt(s.Variance()),
		RTP:          decimal.Zero,
		Reasons:      reasons,
		WindowMean:   s.WindowMean,
	}
	if s.Trials > 0 {
		summary.RuinProbability = float64(ruined) / float64(s.Trials)
	}
	// RTP: (ставки + чистый результат) / ставки
	if s.TotalWagered > 0 {
		returned := decimal.NewFromInt(s.TotalWagered + s.TotalNet)
		summary.RTP = returned.Div(decimal.NewFromInt(s.TotalWagered)).Round(4)
	}
	return summary
}
