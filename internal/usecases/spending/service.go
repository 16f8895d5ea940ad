package spending

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vfg2006/orders-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/orders-report-api/infrastructure/repository"
	"github.com/vfg2006/orders-report-api/internal/domain"
	"github.com/vfg2006/orders-report-api/pkg/log"
)

type Service struct {
	integrator meta.SpendIntegrator
	cache      repository.SpendSnapshotRepository
}

func NewService(integrator meta.SpendIntegrator) *Service {
	return &Service{
		integrator: integrator,
	}
}

// WithCache usa o último gasto salvo do dia quando a consulta de um time falha
func (s *Service) WithCache(cache repository.SpendSnapshotRepository) *Service {
	s.cache = cache
	return s
}

type teamResult struct {
	team  domain.Team
	spend decimal.Decimal
	err   error
}

// GetTeamSpend consulta o gasto de cada time em paralelo. A falha de um time
// não afeta os demais.
func (s *Service) GetTeamSpend(ctx context.Context, day time.Time) domain.SpendSnapshot {
	logger := log.ForContext(ctx)

	teams := make([]domain.Team, 0, len(domain.Teams))
	for _, team := range domain.Teams {
		if team.HasSpend() {
			teams = append(teams, team)
		}
	}

	results := make([]teamResult, len(teams))
	var wg sync.WaitGroup
	for i, team := range teams {
		wg.Add(1)
		go func(i int, team domain.Team) {
			defer wg.Done()
			spend, err := s.integrator.GetTeamSpend(ctx, team, day)
			results[i] = teamResult{team: team, spend: spend, err: err}
		}(i, team)
	}
	wg.Wait()

	snapshot := domain.SpendSnapshot{
		Date:  day,
		Spend: make(map[domain.Team]decimal.Decimal, len(teams)),
	}

	for _, result := range results {
		if result.err != nil {
			logger.WithError(result.err).WithField("team", result.team).Warn("Falha ao consultar gasto do time, usando zero")
			snapshot.Failed = append(snapshot.Failed, result.team)
			snapshot.Spend[result.team] = decimal.Zero
			continue
		}
		snapshot.Spend[result.team] = result.spend
	}

	if snapshot.Degraded() && s.cache != nil {
		s.applyCache(ctx, &snapshot)
	}

	return snapshot
}

func (s *Service) applyCache(ctx context.Context, snapshot *domain.SpendSnapshot) {
	cached, err := s.cache.GetByDate(ctx, snapshot.Date)
	if err != nil {
		log.ForContext(ctx).WithError(err).Warn("Falha ao ler gasto salvo")
		return
	}

	for _, team := range snapshot.Failed {
		if spend, ok := cached[team]; ok {
			snapshot.Spend[team] = spend
			snapshot.Cached = append(snapshot.Cached, team)
		}
	}
}
