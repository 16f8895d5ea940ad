package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/orders-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/orders-report-api/internal/domain"
	spendingmocks "github.com/vfg2006/orders-report-api/internal/usecases/spending/mocks"
)

type fixedClock time.Time

func (c fixedClock) Now() time.Time {
	return time.Time(c)
}

var now = time.Date(2025, 7, 17, 2, 7, 0, 0, cairo)

func newTestService(t *testing.T) (ReportService, *mocks.MockOrderRollupRepository, *spendingmocks.MockProvider) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockOrderRollupRepository(ctrl)
	provider := spendingmocks.NewMockProvider(ctrl)
	return NewService(repo, provider, fixedClock(now)), repo, provider
}

func TestService_GenerateReport(t *testing.T) {
	service, repo, provider := newTestService(t)
	today := time.Date(2025, 7, 17, 0, 0, 0, 0, cairo)

	repo.EXPECT().SumByTeam(gomock.Any()).Return(sampleTotals(), nil)
	provider.EXPECT().GetTeamSpend(gomock.Any(), today).Return(sampleSpend())

	response, err := service.GenerateReport(context.Background(), time.Time{})

	require.NoError(t, err)
	assert.True(t, response.Success)
	assert.Nil(t, response.APIError)
	assert.Equal(t, FormatReport(BuildReport(now, sampleTotals(), sampleSpend())), response.Report)
	assert.Contains(t, response.Report, "الوقت: 02:07 AM")
}

func TestService_GenerateReport_GastoIncompleto(t *testing.T) {
	service, repo, provider := newTestService(t)
	day := time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC)

	snapshot := sampleSpend()
	snapshot.Failed = []domain.Team{domain.TeamA, domain.TeamC}
	snapshot.Cached = []domain.Team{domain.TeamC}

	repo.EXPECT().SumByTeam(gomock.Any()).Return(sampleTotals(), nil)
	provider.EXPECT().GetTeamSpend(gomock.Any(), day).Return(snapshot)

	response, err := service.GenerateReport(context.Background(), day)

	require.NoError(t, err)
	assert.True(t, response.Success)
	require.NotNil(t, response.APIError)
	assert.Contains(t, *response.APIError, "تعذر جلب الصرف للفرق: A")
	assert.Contains(t, *response.APIError, "تم استخدام آخر صرف محفوظ للفرق: C")
}

func TestService_GenerateReport_ErroNoBanco(t *testing.T) {
	service, repo, _ := newTestService(t)

	repo.EXPECT().SumByTeam(gomock.Any()).Return(nil, errors.New("connection refused"))

	response, err := service.GenerateReport(context.Background(), time.Time{})

	assert.Nil(t, response)
	assert.ErrorIs(t, err, ErrLoadTotals)
}

func TestService_Summary(t *testing.T) {
	service, repo, provider := newTestService(t)

	repo.EXPECT().SumByTeam(gomock.Any()).Return(sampleTotals(), nil)
	provider.EXPECT().GetTeamSpend(gomock.Any(), gomock.Any()).Return(sampleSpend())

	report, err := service.Summary(context.Background(), time.Time{})

	require.NoError(t, err)
	assert.Equal(t, now, report.GeneratedAt)
	assert.Equal(t, "50.00", report.Teams[0].CostPerOrder.StringFixed(2))
	assert.Equal(t, int64(20), report.Total.Orders)
}
