package roulette

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"roulette_sim/internal/model"
	rouletteModel "roulette_sim/internal/service/roulette/model"
)

// scriptedSource Повторяет заданную последовательность по кругу
type scriptedSource struct {
	outcomes []int
	pos      int
}

func script(outcomes ...int) *scriptedSource {
	return &scriptedSource{outcomes: outcomes}
}

func (s *scriptedSource) Next() int {
	o := s.outcomes[s.pos%len(s.outcomes)]
	s.pos++
	return o
}

func smallStrategy() model.Strategy {
	return model.Strategy{
		Stake:             10,
		Goal:              100,
		MaxSpins:          1,
		InitialDataPoints: 1,
		MinDeviation:      0.4,
		Progression:       []int{1, 2},
		Prepopulation:     model.PrepopulateColumnSums,
		Direction:         model.DirectionOverrepresented,
	}
}

func runTrial(t *testing.T, st model.Strategy, policies map[model.Track]Policy, src *scriptedSource) *model.TrialResult {
	t.Helper()
	s, err := NewTrialService(st, policies)
	require.NoError(t, err)
	res, err := s.RunTrial(src)
	require.NoError(t, err)
	return res
}

func TestRunTrialDozenWin(t *testing.T) {
	// 5, 17 - предзаполнение (дюжины 1+2), ставка на дюжину 3-1=2, выпадает 20
	res := runTrial(t, smallStrategy(), nil, script(5, 17, 20))

	assert.Equal(t, 12, res.FinalBankroll)
	assert.Equal(t, 1, res.AmountWagered)
	assert.Equal(t, 1, res.Spins)
	assert.Equal(t, 1, res.DozenBets)
	assert.Equal(t, 0, res.ColumnBets, "columns gate on raw deviation and skip")
	assert.Equal(t, model.StopSpinBudget, res.Reason)
	assert.Equal(t, 0, res.DozenCursor)
}

func TestRunTrialTargetUsesSpinBeforeLatest(t *testing.T) {
	// Цель считается от 5, а не от 17: ставка на дюжину 2, выпадает 3 (дюжина 1)
	res := runTrial(t, smallStrategy(), nil, script(5, 17, 3))

	assert.Equal(t, 9, res.FinalBankroll)
	assert.Equal(t, 1, res.AmountWagered)
	assert.Equal(t, 1, res.DozenBets)
	assert.Equal(t, 1, res.DozenCursor)
	assert.Equal(t, model.StopSpinBudget, res.Reason)

	// Зеро между ними пропускается: 5, 0, 17 дает ту же цель
	res = runTrial(t, smallStrategy(), nil, script(5, 0, 17, 3))

	assert.Equal(t, 9, res.FinalBankroll)
	assert.Equal(t, 1, res.DozenCursor)
}

func TestRunTrialProgressionExhausted(t *testing.T) {
	st := smallStrategy()
	st.MaxSpins = 5

	// Ставки на дюжину 2, затем на дюжину 1, оба раза выпадает 30
	res := runTrial(t, st, nil, script(5, 17, 30, 30))

	assert.Equal(t, 7, res.FinalBankroll)
	assert.Equal(t, 3, res.AmountWagered)
	assert.Equal(t, 2, res.Spins)
	assert.Equal(t, 2, res.DozenBets)
	assert.Equal(t, len(st.Progression), res.DozenCursor)
	assert.Equal(t, model.StopProgression, res.Reason)
}

func TestRunTrialGoalReached(t *testing.T) {
	st := smallStrategy()
	st.MaxSpins = 5
	st.Goal = 2

	res := runTrial(t, st, nil, script(5, 17, 20))

	assert.Equal(t, model.StopGoal, res.Reason)
	assert.Equal(t, 1, res.Spins)
	assert.GreaterOrEqual(t, res.FinalBankroll-st.Stake, st.Goal)
}

func TestRunTrialInsufficientCapital(t *testing.T) {
	st := smallStrategy()
	st.MaxSpins = 5
	st.Stake = 1

	res := runTrial(t, st, nil, script(5, 17, 3))

	assert.Equal(t, model.StopInsufficientCapital, res.Reason)
	assert.Equal(t, 0, res.FinalBankroll)
	assert.Equal(t, 1, res.AmountWagered)
}

func TestRunTrialInjectedColumnsAdmission(t *testing.T) {
	policies := map[model.Track]Policy{
		model.TrackColumns: {Admit: RatioAdmission},
	}

	// колонны: 5 и 17 дают 2+2=4, ставка на колонну 4-2=2.
	// Выпадает 2: дюжина 1 проигрывает, колонна 2 выигрывает.
	res := runTrial(t, smallStrategy(), policies, script(5, 17, 2))

	assert.Equal(t, 11, res.FinalBankroll)
	assert.Equal(t, 2, res.AmountWagered)
	assert.Equal(t, 1, res.DozenBets)
	assert.Equal(t, 1, res.ColumnBets)
	assert.Equal(t, 1, res.DozenCursor)
	assert.Equal(t, 0, res.ColumnCursor)
}

func TestRunTrialUnderrepresentedDirection(t *testing.T) {
	st := smallStrategy()
	st.Direction = model.DirectionUnderrepresented

	res := runTrial(t, st, nil, script(5, 17, 3))

	assert.Equal(t, st.Stake, res.FinalBankroll)
	assert.Equal(t, 0, res.AmountWagered)
	assert.Equal(t, model.StopSpinBudget, res.Reason)
}

func TestRunTrialPrepopulationStalled(t *testing.T) {
	s, err := NewTrialService(smallStrategy(), nil)
	require.NoError(t, err)

	_, err = s.RunTrial(script(0))
	assert.ErrorIs(t, err, ErrPrepopulationStalled)
}

func TestRunTrialOutcomeOutOfRange(t *testing.T) {
	s, err := NewTrialService(smallStrategy(), nil)
	require.NoError(t, err)

	_, err = s.RunTrial(script(5, 40))
	assert.ErrorIs(t, err, ErrOutcomeOutOfRange)
}

func TestNewTrialServiceValidatesStrategy(t *testing.T) {
	st := smallStrategy()
	st.Progression = []int{2, 1}

	_, err := NewTrialService(st, nil)
	assert.ErrorIs(t, err, model.ErrInvalidStrategy)
}

func TestRunTrialIsReproducible(t *testing.T) {
	s, err := NewTrialService(rouletteModel.DefaultStrategy(), nil)
	require.NoError(t, err)

	for stream := uint64(0); stream < 50; stream++ {
		first, err := s.RunTrial(NewWheel(42, stream))
		require.NoError(t, err)
		second, err := s.RunTrial(NewWheel(42, stream))
		require.NoError(t, err)

		assert.Equal(t, first, second, "stream %d", stream)
	}

	seq := []int{5, 17, 0, 3, 22, 36, 1, 14, 28, 9, 0, 33, 12, 25, 7, 19, 30, 2, 11, 24}
	first := runTrial(t, rouletteModel.DefaultStrategy(), nil, script(seq...))
	second := runTrial(t, rouletteModel.DefaultStrategy(), nil, script(seq...))
	assert.Equal(t, first, second)
}

func TestRunTrialStoppingInvariants(t *testing.T) {
	st := rouletteModel.DefaultStrategy()
	s, err := NewTrialService(st, nil)
	require.NoError(t, err)

	stakeAt := func(cursor int) int {
		if cursor >= len(st.Progression) {
			return 0
		}
		return st.Progression[cursor]
	}

	for stream := uint64(0); stream < 2000; stream++ {
		res, err := s.RunTrial(NewWheel(7, stream))
		require.NoError(t, err)

		require.LessOrEqual(t, res.Spins, st.MaxSpins)
		require.GreaterOrEqual(t, res.FinalBankroll, 0)

		switch res.Reason {
		case model.StopGoal:
			require.GreaterOrEqual(t, res.FinalBankroll-st.Stake, st.Goal)
		case model.StopProgression:
			exhausted := res.DozenCursor == len(st.Progression) || res.ColumnCursor == len(st.Progression)
			require.True(t, exhausted, "stream %d", stream)
		case model.StopSpinBudget:
			require.Equal(t, st.MaxSpins, res.Spins)
		}

		if res.Reason == model.StopGoal || res.Reason == model.StopSpinBudget {
			minStake := min(stakeAt(res.DozenCursor), stakeAt(res.ColumnCursor))
			require.GreaterOrEqual(t, res.FinalBankroll, minStake, "stream %d", stream)
		}
	}
}

// Характеристика: выплата 2:1 при вероятности 12/37 дает отрицательное ожидание,
// а колонны с порогом по сырому отклонению ставят реже дюжин.
func TestManyTrialsCharacterization(t *testing.T) {
	if testing.Short() {
		t.Skip("long simulation")
	}

	st := rouletteModel.DefaultStrategy()
	s, err := NewTrialService(st, nil)
	require.NoError(t, err)

	const trials = 10000
	var net, wagered, dozenBets, columnBets int
	for stream := uint64(0); stream < trials; stream++ {
		res, err := s.RunTrial(NewWheel(2024, stream))
		require.NoError(t, err)
		net += res.Net(st.Stake)
		wagered += res.AmountWagered
		dozenBets += res.DozenBets
		columnBets += res.ColumnBets
	}

	mean := float64(net) / trials
	t.Logf("mean net %.3f, wagered %d, dozen bets %d, column bets %d", mean, wagered, dozenBets, columnBets)

	assert.Less(t, mean, 0.0)
	assert.Positive(t, dozenBets)
	assert.Less(t, columnBets, dozenBets)
}
