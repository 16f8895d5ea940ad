package reporting

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/pkg/errors"

	"github.com/vfg2006/orders-report-api/infrastructure/repository"
	"github.com/vfg2006/orders-report-api/internal/domain"
	"github.com/vfg2006/orders-report-api/internal/usecases/spending"
	"github.com/vfg2006/orders-report-api/pkg/log"
	"github.com/vfg2006/orders-report-api/pkg/utils"
)

var ErrLoadTotals = errors.New("error loading team totals")

type ReportService interface {
	// GenerateReport monta o relatório em texto; dia zero usa o dia atual
	GenerateReport(ctx context.Context, day time.Time) (*domain.GenerateReportResponse, error)
	// Summary devolve os números do relatório sem formatação
	Summary(ctx context.Context, day time.Time) (*domain.Report, error)
}

type Service struct {
	rollupRepository repository.OrderRollupRepository
	spendProvider    spending.Provider
	clock            Clock
}

func NewService(rollupRepository repository.OrderRollupRepository, spendProvider spending.Provider, clock Clock) ReportService {
	return &Service{
		rollupRepository: rollupRepository,
		spendProvider:    spendProvider,
		clock:            clock,
	}
}

func (s *Service) GenerateReport(ctx context.Context, day time.Time) (*domain.GenerateReportResponse, error) {
	report, snapshot, err := s.build(ctx, day)
	if err != nil {
		return nil, err
	}

	return &domain.GenerateReportResponse{
		Success:  true,
		Report:   FormatReport(*report),
		APIError: spendWarning(snapshot),
	}, nil
}

func (s *Service) Summary(ctx context.Context, day time.Time) (*domain.Report, error) {
	report, _, err := s.build(ctx, day)
	return report, err
}

func (s *Service) build(ctx context.Context, day time.Time) (*domain.Report, domain.SpendSnapshot, error) {
	logger := log.ForContext(ctx)
	now := s.clock.Now()

	if day.IsZero() {
		day = utils.StartOfDay(now)
	}

	totals, err := s.rollupRepository.SumByTeam(ctx)
	if err != nil {
		logger.WithError(err).Error("Erro ao consultar totais por time")
		return nil, domain.SpendSnapshot{}, errors.Wrap(ErrLoadTotals, err.Error())
	}

	snapshot := s.spendProvider.GetTeamSpend(ctx, day)
	if snapshot.Degraded() {
		logger.WithFields(log.Fields{
			"team_failed": snapshot.Failed,
			"team_cached": snapshot.Cached,
		}).Warn("Relatório gerado com gasto incompleto")
	}

	report := BuildReport(now, totals, snapshot)
	return &report, snapshot, nil
}

// spendWarning descreve os times sem gasto consultado, ou nil se não houver
func spendWarning(snapshot domain.SpendSnapshot) *string {
	if !snapshot.Degraded() {
		return nil
	}

	cached := make(map[domain.Team]bool, len(snapshot.Cached))
	for _, team := range snapshot.Cached {
		cached[team] = true
	}

	var zeroed, fromCache []string
	for _, team := range snapshot.Failed {
		if cached[team] {
			fromCache = append(fromCache, string(team))
			continue
		}
		zeroed = append(zeroed, string(team))
	}

	var parts []string
	if len(zeroed) > 0 {
		parts = append(parts, fmt.Sprintf("تعذر جلب الصرف للفرق: %s (تم احتسابه صفر)", strings.Join(zeroed, ", ")))
	}
	if len(fromCache) > 0 {
		parts = append(parts, fmt.Sprintf("تم استخدام آخر صرف محفوظ للفرق: %s", strings.Join(fromCache, ", ")))
	}

	message := strings.Join(parts, " | ")
	return &message
}
