package result_pg_repo

import (
	"context"
	"encoding/json"
	"fmt"

	"roulette_sim/internal/converter"
	"roulette_sim/internal/model"
	"roulette_sim/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	runsTable      = "simulation_runs"
	colRunID       = "run_id"
	colStrategy    = "strategy"
	colTrials      = "trials"
	colFailed      = "failed"
	colWagered     = "total_wagered"
	colMeanNet     = "mean_net"
	colVarianceNet = "variance_net"
	colRTP         = "rtp"
	colRuin        = "ruin_probability"
	colDurationMs  = "duration_ms"

	resultsTable     = "trial_results"
	colTrial         = "trial"
	colFinalBankroll = "final_bankroll"
	colAmountWagered = "amount_wagered"
	colSpins         = "spins"
	colStopReason    = "stop_reason"
	colDozenBets     = "dozen_bets"
	colColumnBets    = "column_bets"

	// Ограничение на число параметров в одном запросе
	maxRowsPerInsert = 5000
)

const schema = `
CREATE TABLE IF NOT EXISTS simulation_runs (
	run_id           text PRIMARY KEY,
	started_at       timestamptz NOT NULL DEFAULT now(),
	strategy         jsonb NOT NULL,
	trials           integer,
	failed           integer,
	total_wagered    bigint,
	mean_net         double precision,
	variance_net     double precision,
	rtp              numeric,
	ruin_probability double precision,
	duration_ms      bigint
);
CREATE TABLE IF NOT EXISTS trial_results (
	run_id         text NOT NULL REFERENCES simulation_runs (run_id),
	trial          integer NOT NULL,
	final_bankroll integer NOT NULL,
	amount_wagered integer NOT NULL,
	spins          integer NOT NULL,
	stop_reason    text NOT NULL,
	dozen_bets     integer NOT NULL,
	column_bets    integer NOT NULL,
	PRIMARY KEY (run_id, trial)
);`

type repo struct {
	dbc       *pgxpool.Pool
	txManager trm.Manager
	getter    *trmpgx.CtxGetter
}

func NewResultRepository(dbc *pgxpool.Pool, txManager trm.Manager) repository.ResultRepository {
	return &repo{
		dbc:       dbc,
		txManager: txManager,
		getter:    trmpgx.DefaultCtxGetter,
	}
}

// StartRun - создает таблицы при необходимости и строку запуска
func (r *repo) StartRun(ctx context.Context, runID uuid.UUID, strategy model.Strategy) error {
	if _, err := r.dbc.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}

	raw, err := json.Marshal(strategy)
	if err != nil {
		return err
	}

	// Формируем запрос
	query := sq.Insert(runsTable).
		Columns(colRunID, colStrategy).
		Values(runID.String(), string(raw)).
		Suffix("ON CONFLICT (" + colRunID + ") DO NOTHING").
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

// SaveResults - вставляет пачку результатов в одной транзакции
func (r *repo) SaveResults(ctx context.Context, runID uuid.UUID, results []model.TrialResult) error {
	if len(results) == 0 {
		return nil
	}
	rows := converter.ToTrialRows(runID, results)

	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		for start := 0; start < len(rows); start += maxRowsPerInsert {
			end := min(start+maxRowsPerInsert, len(rows))

			query := sq.Insert(resultsTable).
				Columns(colRunID, colTrial, colFinalBankroll, colAmountWagered, colSpins, colStopReason, colDozenBets, colColumnBets).
				PlaceholderFormat(sq.Dollar)
			for _, row := range rows[start:end] {
				query = query.Values(row.RunID, row.Trial, row.FinalBankroll, row.AmountWagered, row.Spins, row.Reason, row.DozenBets, row.ColumnBets)
			}

			sqlStr, args, err := query.ToSql()
			if err != nil {
				return err
			}

			if _, err = r.getter.DefaultTrOrDB(txCtx, r.dbc).Exec(txCtx, sqlStr, args...); err != nil {
				return fmt.Errorf("insert trial results: %w", err)
			}
		}
		return nil
	})
}

// FinishRun - записывает сводку в строку запуска
func (r *repo) FinishRun(ctx context.Context, summary model.Summary) error {
	row := converter.ToSummaryRow(summary)

	query := sq.Update(runsTable).
		Set(colTrials, row.Trials).
		Set(colFailed, row.Failed).
		Set(colWagered, row.TotalWagered).
		Set(colMeanNet, row.MeanNet).
		Set(colVarianceNet, row.VarianceNet).
		Set(colRTP, row.RTP).
		Set(colRuin, row.RuinProbability).
		Set(colDurationMs, row.DurationMs).
		Where(sq.Eq{colRunID: row.RunID}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return fmt.Errorf("run %s not found", row.RunID)
	}
	return nil
}

func (r *repo) Close() error {
	r.dbc.Close()
	return nil
}
