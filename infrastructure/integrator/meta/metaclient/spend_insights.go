package metaclient

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	metadomain "github.com/vfg2006/orders-report-api/infrastructure/integrator/meta/domain"
)

// limite de páginas seguidas por consulta
const maxInsightPages = 10

// GetAccountSpendInsights busca o gasto diário da conta no dia informado,
// seguindo a paginação da Graph API
func (c *MetaClient) GetAccountSpendInsights(ctx context.Context, accountID string, accessToken string, day time.Time) ([]metadomain.SpendInsight, error) {
	if !strings.HasPrefix(accountID, "act_") {
		accountID = "act_" + accountID
	}

	date := day.Format(time.DateOnly)
	timeRange := fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", date, date)

	params := url.Values{}
	params.Add("fields", "spend")
	params.Add("time_range", timeRange)
	params.Add("time_increment", "1")
	params.Add("access_token", accessToken)

	requestURL := fmt.Sprintf("%s/%s/insights?%s", c.baseURL, accountID, params.Encode())

	insights := make([]metadomain.SpendInsight, 0)
	for page := 0; page < maxInsightPages && requestURL != ""; page++ {
		body, err := c.get(ctx, requestURL)
		if err != nil {
			return nil, err
		}

		var response metadomain.InsightsResponse
		if err := json.Unmarshal(body, &response); err != nil {
			logrus.WithError(err).Error("Erro ao decodificar JSON")
			return nil, fmt.Errorf("erro ao decodificar insights: %w", err)
		}

		insights = append(insights, response.Data...)

		requestURL = ""
		if response.Paging != nil {
			requestURL = response.Paging.Next
		}
	}

	return insights, nil
}
