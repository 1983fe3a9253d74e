package converter

import (
	"strconv"

	"roulette_sim/internal/model"
	repoModel "roulette_sim/internal/repository/result_pg_repo/model"

	"github.com/google/uuid"
)

// ToRecord Строка вывода: "банк, сумма ставок"
func ToRecord(res model.TrialResult) string {
	return strconv.Itoa(res.FinalBankroll) + ", " + strconv.Itoa(res.AmountWagered)
}

func ToTrialRow(runID uuid.UUID, res model.TrialResult) repoModel.TrialRow {
	return repoModel.TrialRow{
		RunID:         runID.String(),
		Trial:         res.Trial,
		FinalBankroll: res.FinalBankroll,
		AmountWagered: res.AmountWagered,
		Spins:         res.Spins,
		Reason:        res.Reason.String(),
		DozenBets:     res.DozenBets,
		ColumnBets:    res.ColumnBets,
	}
}

func ToTrialRows(runID uuid.UUID, results []model.TrialResult) []repoModel.TrialRow {
	rows := make([]repoModel.TrialRow, len(results))
	for i, r := range results {
		rows[i] = ToTrialRow(runID, r)
	}
	return rows
}

func ToSummaryRow(s model.Summary) repoModel.SummaryRow {
	return repoModel.SummaryRow{
		RunID:           s.RunID.String(),
		Trials:          s.Trials,
		Failed:          s.Failed,
		TotalWagered:    s.TotalWagered,
		MeanNet:         s.MeanNet,
		VarianceNet:     s.VarianceNet,
		RTP:             s.RTP.StringFixed(4),
		RuinProbability: s.RuinProbability,
		DurationMs:      s.Duration.Milliseconds(),
	}
}
