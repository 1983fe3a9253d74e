package roulette

import (
	"roulette_sim/internal/model"
	"roulette_sim/internal/service"
)

type serv struct {
	strategy model.Strategy
	policies map[model.Track]Policy
}

// NewTrialService Создать сервис испытаний по стратегии.
// policies переопределяет правила линий, пропущенные линии берутся по умолчанию.
func NewTrialService(strategy model.Strategy, policies map[model.Track]Policy) (service.TrialService, error) {
	if err := strategy.Validate(); err != nil {
		return nil, err
	}

	merged := DefaultPolicies(strategy.Direction)
	for kind, p := range policies {
		if p.Score == nil {
			p.Score = merged[kind].Score
		}
		if p.Admit == nil {
			p.Admit = merged[kind].Admit
		}
		merged[kind] = p
	}

	return &serv{
		strategy: strategy,
		policies: merged,
	}, nil
}

func (s *serv) Strategy() model.Strategy {
	return s.strategy
}
