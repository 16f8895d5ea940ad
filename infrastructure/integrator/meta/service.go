package meta

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/orders-report-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/orders-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/orders-report-api/internal/config"
	"github.com/vfg2006/orders-report-api/internal/domain"
)

// SpendIntegrator busca o gasto de anúncios de um time na Graph API
type SpendIntegrator interface {
	GetTeamSpend(ctx context.Context, team domain.Team, day time.Time) (decimal.Decimal, error)
}

type MetaIntegrator struct {
	adAccounts map[string]string // time -> act_<id>
	tokens     *metaclient.TokenManager
	Client     metaclient.Client
}

func New(cfg *config.Config, client metaclient.Client) *MetaIntegrator {
	return &MetaIntegrator{
		adAccounts: cfg.Meta.AdAccounts,
		tokens:     metaclient.NewTokenManager(cfg.Meta.BusinessTokens, cfg.Meta.TeamBusiness),
		Client:     client,
	}
}

// GetTeamSpend soma o gasto de todas as linhas diárias da conta do time
func (s *MetaIntegrator) GetTeamSpend(ctx context.Context, team domain.Team, day time.Time) (decimal.Decimal, error) {
	accountID, ok := s.adAccounts[string(team)]
	if !ok || accountID == "" {
		return decimal.Zero, fmt.Errorf("%w: %s", metadomain.ErrNoAdAccount, team)
	}

	token, err := s.tokens.TokenFor(string(team))
	if err != nil {
		return decimal.Zero, err
	}

	insights, err := s.Client.GetAccountSpendInsights(ctx, accountID, token, day)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"team":       team,
			"account_id": accountID,
			"error":      err.Error(),
		}).Error("spend: failed to get account insights from API")
		return decimal.Zero, err
	}

	total := decimal.Zero
	for _, insight := range insights {
		if insight.Spend == "" {
			continue
		}

		spend, err := decimal.NewFromString(insight.Spend)
		if err != nil {
			return decimal.Zero, fmt.Errorf("spend inválido %q na conta %s: %w", insight.Spend, accountID, err)
		}
		total = total.Add(spend)
	}

	logrus.WithFields(logrus.Fields{
		"team":       team,
		"account_id": accountID,
		"rows":       len(insights),
		"spend":      total.String(),
	}).Debug("spend: successfully retrieved team spend")

	return total, nil
}
