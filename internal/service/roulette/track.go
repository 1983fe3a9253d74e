package roulette

import (
	"roulette_sim/internal/model"
)

// Policy Правила выбора комбинации и допуска ставки для линии
type Policy struct {
	Score ScoreFunc
	Admit AdmissionFunc
}

// DefaultPolicies Дюжины допускаются по отношению, колонны по сырому отклонению
func DefaultPolicies(direction model.BetDirection) map[model.Track]Policy {
	score := ScoreFor(direction)
	return map[model.Track]Policy{
		model.TrackDozens:  {Score: score, Admit: RatioAdmission},
		model.TrackColumns: {Score: score, Admit: RawDeviationAdmission},
	}
}

// track Состояние одной линии в испытании
type track struct {
	kind        model.Track
	classify    func(int) int
	policy      Policy
	progression *Progression

	target int // На какую группу поставлено в этом спине, 0 - ставки нет
	bets   int
}

func newTrack(kind model.Track, policy Policy, stakes []int) *track {
	classify := Dozen
	if kind == model.TrackColumns {
		classify = Column
	}
	return &track{
		kind:        kind,
		classify:    classify,
		policy:      policy,
		progression: NewProgression(stakes),
	}
}

// decide Решение о ставке перед спином. Возвращает размер ставки или 0.
func (tr *track) decide(t *Tracker, bankroll int, threshold float64) (int, error) {
	tr.target = Undefined

	sel, err := Select(t.Counts(tr.kind), t.Len(), tr.policy.Score)
	if err != nil {
		return 0, err
	}
	if !tr.policy.Admit(sel, threshold) {
		return 0, nil
	}

	prev := tr.classify(t.PreviousNonZero())
	target := sel.Combination - prev
	if target < 1 || target > 3 {
		return 0, nil
	}

	stake := tr.progression.Stake()
	if stake == 0 || bankroll < stake {
		return 0, nil
	}

	tr.target = target
	tr.bets++
	return stake, nil
}

// resolve Расчет ставки по выпавшему исходу. Возвращает выплату.
func (tr *track) resolve(outcome int) int {
	if tr.target == Undefined {
		return 0
	}
	defer func() { tr.target = Undefined }()

	if tr.classify(outcome) == tr.target {
		return tr.progression.Win()
	}
	tr.progression.Loss()
	return 0
}
