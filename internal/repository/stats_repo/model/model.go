package model

import "roulette_sim/internal/model"

// Накопленное состояние запуска
type RunState struct {
	Trials       int   // Сколько испытаний учтено
	Failed       int   // Сколько прервано
	TotalWagered int64 // Сумма всех ставок
	TotalNet     int64 // Сумма (банк - стартовый банк)

	MeanNet float64 // Текущее среднее (Уэлфорд)
	m2      float64

	Reasons map[model.StopReason]int // Причины остановки

	NetWindow  []int   // Кольцевое окно последних результатов
	WindowMean float64 // Среднее в окне
	WindowSize int     // Размер окна
	windowPos  int     // Куда писать, когда окно заполнено
	windowSum  int64
}

// Add Учет одного чистого результата в среднем и дисперсии
func (s *RunState) Add(net int) {
	s.Trials++
	delta := float64(net) - s.MeanNet
	s.MeanNet += delta / float64(s.Trials)
	s.m2 += delta * (float64(net) - s.MeanNet)
}

// Variance Дисперсия генеральной совокупности
func (s *RunState) Variance() float64 {
	if s.Trials == 0 {
		return 0
	}
	return s.m2 / float64(s.Trials)
}

// Push Добавление результата в окно с пересчетом среднего по бегущей сумме
func (s *RunState) Push(net int) {
	if len(s.NetWindow) < s.WindowSize {
		s.NetWindow = append(s.NetWindow, net)
	} else {
		s.windowSum -= int64(s.NetWindow[s.windowPos])
		s.NetWindow[s.windowPos] = net
		s.windowPos = (s.windowPos + 1) % s.WindowSize
	}
	s.windowSum += int64(net)
	s.WindowMean = float64(s.windowSum) / float64(len(s.NetWindow))
}
