package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Summary Сводка по запуску
type Summary struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Duration  time.Duration

	Trials       int   // Успешно завершенных испытаний
	Failed       int   // Прерванных из-за нарушения инварианта
	TotalWagered int64 // Сумма всех ставок
	TotalNet     int64 // Сумма (банк - стартовый банк)

	MeanNet     float64 // Среднее (банк - стартовый банк)
	VarianceNet float64 // Дисперсия (банк - стартовый банк)
	StdDevNet   float64

	RTP             decimal.Decimal // Возврат игроку: выплаты / ставки
	RuinProbability float64         // Доля испытаний, закончившихся разорением
	Reasons         map[StopReason]int
	WindowMean      float64 // Среднее по окну последних испытаний
}
