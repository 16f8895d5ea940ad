package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/vfg2006/orders-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/orders-report-api/internal/config"
	"github.com/vfg2006/orders-report-api/internal/domain"
	spendingmocks "github.com/vfg2006/orders-report-api/internal/usecases/spending/mocks"
)

var cairo = time.FixedZone("EEST", 3*60*60)

func newTestSyncService(t *testing.T) (*SpendSnapshotSyncService, *mocks.MockSpendSnapshotRepository, *spendingmocks.MockProvider) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockSpendSnapshotRepository(ctrl)
	provider := spendingmocks.NewMockProvider(ctrl)

	cfg := &config.Config{}
	cfg.Report.Location = cairo
	cfg.SpendSync.CronSchedule = "*/30 * * * *"
	cfg.SpendSync.RetentionDays = 30

	service := NewSpendSnapshotSyncService(repo, provider, cfg)
	service.now = func() time.Time {
		// 23:30 UTC já é o dia seguinte no Cairo
		return time.Date(2025, 7, 16, 23, 30, 0, 0, time.UTC)
	}

	return service, repo, provider
}

func TestSpendSnapshotSyncService_Sync(t *testing.T) {
	service, repo, provider := newTestSyncService(t)
	today := time.Date(2025, 7, 17, 0, 0, 0, 0, cairo)

	provider.EXPECT().GetTeamSpend(gomock.Any(), today).Return(domain.SpendSnapshot{
		Date: today,
		Spend: map[domain.Team]decimal.Decimal{
			domain.TeamA:  decimal.NewFromInt(250),
			domain.TeamB:  decimal.NewFromInt(100),
			domain.TeamC:  decimal.Zero,
			domain.TeamC1: decimal.NewFromInt(80),
		},
		Failed: []domain.Team{domain.TeamC},
	})

	var saved []domain.Team
	repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *domain.TeamSpendEntry) error {
			assert.Equal(t, today, entry.Date)
			saved = append(saved, entry.Team)
			return nil
		}).Times(3)
	repo.EXPECT().DeleteOlderThan(gomock.Any(), today.AddDate(0, 0, -30)).Return(int64(2), nil)

	service.syncSpendSnapshots(context.Background())

	assert.Equal(t, []domain.Team{domain.TeamA, domain.TeamB, domain.TeamC1}, saved)

	status := service.GetStatus()
	assert.Equal(t, 3, status["last_sync_saved"])
	assert.Equal(t, []domain.Team{domain.TeamC}, status["last_sync_failed"])
	assert.Equal(t, false, status["sync_running"])
}

func TestSpendSnapshotSyncService_Sync_ErroAoSalvar(t *testing.T) {
	service, repo, provider := newTestSyncService(t)

	provider.EXPECT().GetTeamSpend(gomock.Any(), gomock.Any()).Return(domain.SpendSnapshot{
		Spend: map[domain.Team]decimal.Decimal{
			domain.TeamA:  decimal.NewFromInt(1),
			domain.TeamB:  decimal.NewFromInt(2),
			domain.TeamC:  decimal.NewFromInt(3),
			domain.TeamC1: decimal.NewFromInt(4),
		},
	})
	repo.EXPECT().SaveOrUpdate(gomock.Any(), gomock.Any()).Return(errors.New("connection refused")).Times(4)
	repo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	service.syncSpendSnapshots(context.Background())

	assert.Equal(t, 0, service.GetStatus()["last_sync_saved"])
}

func TestSpendSnapshotSyncService_TriggerManualSync_EmAndamento(t *testing.T) {
	service, _, _ := newTestSyncService(t)
	service.syncRunning = true

	assert.False(t, service.TriggerManualSync())
}

func TestSpendSnapshotSyncService_Start_Desabilitado(t *testing.T) {
	service, _, _ := newTestSyncService(t)

	assert.NoError(t, service.Start(context.Background()))
	assert.Equal(t, false, service.GetStatus()["sync_enabled"])
}

func TestSpendSnapshotSyncService_TriggerManualSync_BloqueiaCron(t *testing.T) {
	service, repo, provider := newTestSyncService(t)

	ctx, cancel := context.WithCancel(context.Background())
	assert.NoError(t, service.Start(ctx))
	cancel()

	release := make(chan struct{})
	provider.EXPECT().GetTeamSpend(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ time.Time) domain.SpendSnapshot {
			assert.ErrorIs(t, ctx.Err(), context.Canceled)
			<-release
			return domain.SpendSnapshot{
				Failed: []domain.Team{domain.TeamA, domain.TeamB, domain.TeamC, domain.TeamC1},
			}
		}).Times(1)
	repo.EXPECT().DeleteOlderThan(gomock.Any(), gomock.Any()).Return(int64(0), nil)

	assert.True(t, service.TriggerManualSync())
	assert.Equal(t, true, service.GetStatus()["sync_running"])

	// Execução do cron durante a manual é ignorada
	service.syncSpendSnapshots(context.Background())
	assert.False(t, service.TriggerManualSync())

	close(release)
	assert.Eventually(t, func() bool {
		return service.GetStatus()["sync_running"] == false
	}, time.Second, 10*time.Millisecond)
}
