package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/vfg2006/orders-report-api/infrastructure/repository"
	"github.com/vfg2006/orders-report-api/internal/config"
	"github.com/vfg2006/orders-report-api/internal/domain"
	"github.com/vfg2006/orders-report-api/internal/usecases/spending"
	"github.com/vfg2006/orders-report-api/pkg/log"
	"github.com/vfg2006/orders-report-api/pkg/utils"
)

// SpendSnapshotSyncConfig representa a configuração do agendador de gasto diário
type SpendSnapshotSyncConfig struct {
	CronSchedule  string
	RetentionDays int
	SyncEnabled   bool
	Location      *time.Location
}

// SpendSnapshotSyncService agenda a gravação periódica do gasto do dia de cada time.
// O valor salvo é usado pelo relatório quando a consulta ao Meta falha.
type SpendSnapshotSyncService struct {
	scheduler           *gocron.Scheduler
	config              SpendSnapshotSyncConfig
	spendProvider       spending.Provider
	snapshotRepo        repository.SpendSnapshotRepository
	now                 func() time.Time
	runCtx              context.Context
	syncRunning         bool
	syncMutex           sync.Mutex
	lastSyncStartedAt   time.Time
	lastSyncCompletedAt time.Time
	lastSyncSaved       int
	lastSyncFailed      []domain.Team
}

// NewSpendSnapshotSyncService cria uma nova instância do serviço de sincronização do gasto diário
func NewSpendSnapshotSyncService(
	snapshotRepo repository.SpendSnapshotRepository,
	spendProvider spending.Provider,
	appConfig *config.Config,
) *SpendSnapshotSyncService {
	location := appConfig.Report.Location
	if location == nil {
		location = time.Local
	}

	syncConfig := SpendSnapshotSyncConfig{
		CronSchedule:  appConfig.SpendSync.CronSchedule,
		RetentionDays: appConfig.SpendSync.RetentionDays,
		SyncEnabled:   appConfig.SpendSync.Enabled,
		Location:      location,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule":  syncConfig.CronSchedule,
		"retention_days": syncConfig.RetentionDays,
		"sync_enabled":   syncConfig.SyncEnabled,
		"timezone":       location.String(),
	}).Info("Configuração do agendador de gasto diário carregada")

	return &SpendSnapshotSyncService{
		scheduler:     gocron.NewScheduler(location),
		config:        syncConfig,
		spendProvider: spendProvider,
		snapshotRepo:  snapshotRepo,
		now:           time.Now,
		runCtx:        context.Background(),
	}
}

// Start inicia o agendador
func (s *SpendSnapshotSyncService) Start(ctx context.Context) error {
	s.syncMutex.Lock()
	s.runCtx = ctx
	s.syncMutex.Unlock()

	if !s.config.SyncEnabled {
		log.L.Info("Sincronização do gasto diário desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de sincronização do gasto diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.syncSpendSnapshots(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar sincronização do gasto diário: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de sincronização do gasto diário")
		s.scheduler.Stop()
	}()

	return nil
}

// syncSpendSnapshots consulta o gasto do dia e grava os times consultados com sucesso
func (s *SpendSnapshotSyncService) syncSpendSnapshots(ctx context.Context) {
	if !s.tryStartSync() {
		log.L.Info("Sincronização do gasto diário já em andamento, ignorando")
		return
	}
	s.runSync(ctx)
}

// tryStartSync marca a sincronização como em andamento; false se já havia uma
func (s *SpendSnapshotSyncService) tryStartSync() bool {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	if s.syncRunning {
		return false
	}
	s.syncRunning = true
	s.lastSyncStartedAt = s.now()
	return true
}

// runSync executa uma sincronização já marcada por tryStartSync
func (s *SpendSnapshotSyncService) runSync(ctx context.Context) {
	defer func() {
		s.syncMutex.Lock()
		s.syncRunning = false
		s.syncMutex.Unlock()
	}()

	startTime := s.now()
	today := utils.StartOfDay(startTime.In(s.config.Location))

	snapshot := s.spendProvider.GetTeamSpend(ctx, today)

	failed := make(map[domain.Team]bool, len(snapshot.Failed))
	for _, team := range snapshot.Failed {
		failed[team] = true
	}

	saved := 0
	for _, team := range domain.Teams {
		if !team.HasSpend() || failed[team] {
			continue
		}

		entry := &domain.TeamSpendEntry{
			Team:  team,
			Date:  today,
			Spend: snapshot.SpendFor(team),
		}

		if err := s.snapshotRepo.SaveOrUpdate(ctx, entry); err != nil {
			log.L.WithError(err).WithFields(log.Fields{
				"team": team,
				"date": today.Format(time.DateOnly),
			}).Error("Erro ao salvar gasto diário no banco de dados")
			continue
		}
		saved++
	}

	s.cleanupOldSnapshots(ctx, today)

	s.syncMutex.Lock()
	s.lastSyncSaved = saved
	s.lastSyncFailed = snapshot.Failed
	s.lastSyncCompletedAt = s.now()
	s.syncMutex.Unlock()

	log.L.WithFields(log.Fields{
		"duration":    time.Since(startTime).String(),
		"date":        today.Format(time.DateOnly),
		"team_saved":  saved,
		"team_failed": snapshot.Failed,
	}).Info("Sincronização do gasto diário concluída")
}

// cleanupOldSnapshots remove os gastos mais antigos que a retenção configurada
func (s *SpendSnapshotSyncService) cleanupOldSnapshots(ctx context.Context, today time.Time) {
	if s.config.RetentionDays <= 0 {
		return
	}

	cutoff := today.AddDate(0, 0, -s.config.RetentionDays)
	deleted, err := s.snapshotRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.L.WithError(err).Error("Erro ao remover gastos diários antigos")
		return
	}

	if deleted > 0 {
		log.L.WithFields(log.Fields{
			"deleted": deleted,
			"cutoff":  cutoff.Format(time.DateOnly),
		}).Info("Gastos diários antigos removidos")
	}
}

// TriggerManualSync inicia manualmente uma sincronização do gasto diário
func (s *SpendSnapshotSyncService) TriggerManualSync() bool {
	if !s.tryStartSync() {
		log.L.Info("Sincronização do gasto diário já em andamento, ignorando solicitação manual")
		return false
	}

	s.syncMutex.Lock()
	ctx := s.runCtx
	s.syncMutex.Unlock()

	log.L.Info("Iniciando sincronização manual do gasto diário")
	go s.runSync(ctx)
	return true
}

// GetStatus retorna o status atual do agendador
func (s *SpendSnapshotSyncService) GetStatus() map[string]any {
	s.syncMutex.Lock()
	defer s.syncMutex.Unlock()

	return map[string]any{
		"sync_enabled":           s.config.SyncEnabled,
		"sync_cron":              s.config.CronSchedule,
		"sync_running":           s.syncRunning,
		"timezone":               s.config.Location.String(),
		"retention_policy":       fmt.Sprintf("%d dias", s.config.RetentionDays),
		"last_sync_started_at":   s.lastSyncStartedAt,
		"last_sync_completed_at": s.lastSyncCompletedAt,
		"last_sync_saved":        s.lastSyncSaved,
		"last_sync_failed":       s.lastSyncFailed,
	}
}
