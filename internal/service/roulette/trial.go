package roulette

import (
	"errors"
	"fmt"

	"roulette_sim/internal/model"
	"roulette_sim/internal/service"
)

// Предел спинов при предзаполнении
const prepopulationDrawLimit = 10000

var (
	ErrPrepopulationStalled = errors.New("prepopulation stalled")
	ErrOutcomeOutOfRange    = errors.New("outcome out of range")
)

// RunTrial Одно испытание: предзаполнение истории, затем цикл ставок до остановки
func (s *serv) RunTrial(src service.OutcomeSource) (*model.TrialResult, error) {
	st := s.strategy
	tracker := NewTracker(st.Prepopulation, 2*st.InitialDataPoints+st.MaxSpins+1)

	if err := prepopulate(tracker, src, st.InitialDataPoints); err != nil {
		return nil, fmt.Errorf("prepopulate: %w", err)
	}

	dozens := newTrack(model.TrackDozens, s.policies[model.TrackDozens], st.Progression)
	columns := newTrack(model.TrackColumns, s.policies[model.TrackColumns], st.Progression)
	tracks := [...]*track{dozens, columns}

	res := &model.TrialResult{Reason: model.StopSpinBudget}
	bankroll := st.Stake

	for spin := 0; spin < st.MaxSpins; spin++ {
		// Ставки списываются сразу
		for _, tr := range tracks {
			stake, err := tr.decide(tracker, bankroll, st.MinDeviation)
			if err != nil {
				return nil, fmt.Errorf("spin %d: %s: %w", spin, tr.kind, err)
			}
			bankroll -= stake
			res.AmountWagered += stake
		}

		outcome, err := draw(src)
		if err != nil {
			return nil, fmt.Errorf("spin %d: %w", spin, err)
		}
		tracker.Append(outcome)
		if err := tracker.RecordLive(); err != nil {
			return nil, fmt.Errorf("spin %d: %w", spin, err)
		}
		res.Spins++

		for _, tr := range tracks {
			bankroll += tr.resolve(outcome)
		}

		if reason, stop := s.stopReason(bankroll, dozens.progression, columns.progression); stop {
			res.Reason = reason
			break
		}
	}

	res.FinalBankroll = bankroll
	res.DozenBets = dozens.bets
	res.ColumnBets = columns.bets
	res.DozenCursor = dozens.progression.Cursor()
	res.ColumnCursor = columns.progression.Cursor()
	return res, nil
}

// stopReason Условия остановки в порядке проверки
func (s *serv) stopReason(bankroll int, dozens, columns *Progression) (model.StopReason, bool) {
	if dozens.Exhausted() || columns.Exhausted() {
		return model.StopProgression, true
	}
	if bankroll-s.strategy.Stake >= s.strategy.Goal {
		return model.StopGoal, true
	}
	if bankroll < dozens.Stake() && bankroll < columns.Stake() {
		return model.StopInsufficientCapital, true
	}
	return model.StopSpinBudget, false
}

// prepopulate Набор истории без ставок до нужного числа валидных пар
func prepopulate(t *Tracker, src service.OutcomeSource, dataPoints int) error {
	first, err := draw(src)
	if err != nil {
		return err
	}
	t.Append(first)

	got := 0
	for draws := 0; got < dataPoints; draws++ {
		if draws >= prepopulationDrawLimit {
			return fmt.Errorf("%w: %d of %d data points after %d spins", ErrPrepopulationStalled, got, dataPoints, draws)
		}

		outcome, err := draw(src)
		if err != nil {
			return err
		}
		t.Append(outcome)

		ok, err := t.RecordLatest()
		if err != nil {
			return err
		}
		if ok {
			got++
		}
	}
	return nil
}

func draw(src service.OutcomeSource) (int, error) {
	outcome := src.Next()
	if outcome < 0 || outcome >= model.Pockets {
		return 0, fmt.Errorf("%w: %d", ErrOutcomeOutOfRange, outcome)
	}
	return outcome, nil
}
