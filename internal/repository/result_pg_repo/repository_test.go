package result_pg_repo

import (
	"context"
	"os"
	"testing"
	"time"

	"roulette_sim/internal/model"

	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Нужен живой Postgres: PG_DSN=postgres://... go test ./...
func TestResultRepositoryRoundTrip(t *testing.T) {
	dsn := os.Getenv("PG_DSN")
	if dsn == "" {
		t.Skip("PG_DSN not set")
	}

	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	require.NoError(t, pool.Ping(ctx))

	m, err := manager.New(trmpgx.NewDefaultFactory(pool))
	require.NoError(t, err)

	r := NewResultRepository(pool, m)
	defer r.Close()

	runID := uuid.New()
	require.NoError(t, r.StartRun(ctx, runID, model.Strategy{Stake: 100, Progression: []int{1, 2}}))
	require.NoError(t, r.SaveResults(ctx, runID, []model.TrialResult{
		{Trial: 0, FinalBankroll: 125, AmountWagered: 40, Spins: 30, Reason: model.StopGoal},
		{Trial: 1, FinalBankroll: 52, AmountWagered: 90, Spins: 12, Reason: model.StopProgression},
	}))
	require.NoError(t, r.FinishRun(ctx, model.Summary{
		RunID:    runID,
		Trials:   2,
		RTP:      decimal.RequireFromString("0.9385"),
		Duration: time.Second,
	}))

	var count int
	err = pool.QueryRow(ctx, "SELECT count(*) FROM trial_results WHERE run_id = $1", runID.String()).Scan(&count)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	var trials int
	err = pool.QueryRow(ctx, "SELECT trials FROM simulation_runs WHERE run_id = $1", runID.String()).Scan(&trials)
	require.NoError(t, err)
	assert.Equal(t, 2, trials)
}
