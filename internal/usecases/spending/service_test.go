package spending

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	metamocks "github.com/vfg2006/orders-report-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/orders-report-api/infrastructure/repository/mocks"
	"github.com/vfg2006/orders-report-api/internal/domain"
)

var day = time.Date(2025, 7, 17, 0, 0, 0, 0, time.UTC)

func TestService_GetTeamSpend(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := metamocks.NewMockSpendIntegrator(ctrl)
	service := NewService(mockIntegrator)

	mockIntegrator.EXPECT().GetTeamSpend(gomock.Any(), domain.TeamA, day).Return(decimal.NewFromInt(250), nil)
	mockIntegrator.EXPECT().GetTeamSpend(gomock.Any(), domain.TeamB, day).Return(decimal.NewFromInt(100), nil)
	mockIntegrator.EXPECT().GetTeamSpend(gomock.Any(), domain.TeamC, day).Return(decimal.Zero, errors.New("timeout"))
	mockIntegrator.EXPECT().GetTeamSpend(gomock.Any(), domain.TeamC1, day).Return(decimal.RequireFromString("80.5"), nil)
	// Follow-up nunca é consultado

	snapshot := service.GetTeamSpend(context.Background(), day)

	assert.Equal(t, day, snapshot.Date)
	assert.Equal(t, "250", snapshot.SpendFor(domain.TeamA).String())
	assert.Equal(t, "100", snapshot.SpendFor(domain.TeamB).String())
	assert.True(t, snapshot.SpendFor(domain.TeamC).IsZero())
	assert.Equal(t, "80.5", snapshot.SpendFor(domain.TeamC1).String())
	assert.True(t, snapshot.SpendFor(domain.TeamFollowUp).IsZero())
	assert.Equal(t, []domain.Team{domain.TeamC}, snapshot.Failed)
	assert.Empty(t, snapshot.Cached)
	assert.True(t, snapshot.Degraded())
}

func TestService_GetTeamSpend_ComCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := metamocks.NewMockSpendIntegrator(ctrl)
	mockCache := mocks.NewMockSpendSnapshotRepository(ctrl)
	service := NewService(mockIntegrator).WithCache(mockCache)

	mockIntegrator.EXPECT().GetTeamSpend(gomock.Any(), domain.TeamA, day).Return(decimal.Zero, errors.New("token expired"))
	mockIntegrator.EXPECT().GetTeamSpend(gomock.Any(), domain.TeamB, day).Return(decimal.Zero, errors.New("token expired"))
	mockIntegrator.EXPECT().GetTeamSpend(gomock.Any(), domain.TeamC, day).Return(decimal.NewFromInt(10), nil)
	mockIntegrator.EXPECT().GetTeamSpend(gomock.Any(), domain.TeamC1, day).Return(decimal.NewFromInt(20), nil)

	mockCache.EXPECT().GetByDate(gomock.Any(), day).Return(map[domain.Team]decimal.Decimal{
		domain.TeamA: decimal.NewFromInt(240),
		domain.TeamC: decimal.NewFromInt(9),
	}, nil)

	snapshot := service.GetTeamSpend(context.Background(), day)

	assert.Equal(t, "240", snapshot.SpendFor(domain.TeamA).String())
	assert.True(t, snapshot.SpendFor(domain.TeamB).IsZero())
	assert.Equal(t, "10", snapshot.SpendFor(domain.TeamC).String())
	assert.Equal(t, []domain.Team{domain.TeamA, domain.TeamB}, snapshot.Failed)
	assert.Equal(t, []domain.Team{domain.TeamA}, snapshot.Cached)
}

func TestService_GetTeamSpend_SemFalhasNaoLeCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockIntegrator := metamocks.NewMockSpendIntegrator(ctrl)
	mockCache := mocks.NewMockSpendSnapshotRepository(ctrl)
	service := NewService(mockIntegrator).WithCache(mockCache)

	mockIntegrator.EXPECT().GetTeamSpend(gomock.Any(), gomock.Any(), day).Return(decimal.NewFromInt(1), nil).Times(4)

	snapshot := service.GetTeamSpend(context.Background(), day)
	assert.False(t, snapshot.Degraded())
	assert.Len(t, snapshot.Spend, 4)
}
