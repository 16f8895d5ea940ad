package main

import (
	"context"

	"github.com/vfg2006/orders-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/orders-report-api/infrastructure/integrator/meta"
	"github.com/vfg2006/orders-report-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/orders-report-api/infrastructure/migration"
	"github.com/vfg2006/orders-report-api/infrastructure/repository"
	"github.com/vfg2006/orders-report-api/internal/api"
	"github.com/vfg2006/orders-report-api/internal/api/handler"
	"github.com/vfg2006/orders-report-api/internal/config"
	"github.com/vfg2006/orders-report-api/internal/parsing"
	"github.com/vfg2006/orders-report-api/internal/scheduler"
	"github.com/vfg2006/orders-report-api/internal/usecases/ordering"
	"github.com/vfg2006/orders-report-api/internal/usecases/reporting"
	"github.com/vfg2006/orders-report-api/internal/usecases/spending"
	"github.com/vfg2006/orders-report-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		log.L.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	log.L.Infof("Nível de log configurado para: %s", cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	if err := migration.Run(ctx, pgConn); err != nil {
		log.L.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	rollupRepo := repository.NewOrderRollupRepository(pgConn)
	snapshotRepo := repository.NewSpendSnapshotRepository(pgConn)

	metaClient := metaclient.NewClient(cfg)
	metaIntegrator := meta.New(cfg, metaClient)

	// O agendador grava apenas o que o Meta devolveu; o relatório usa o valor salvo como reserva
	liveSpend := spending.NewService(metaIntegrator)
	cachedSpend := spending.NewService(metaIntegrator).WithCache(snapshotRepo)

	parser := parsing.NewParser(parsing.NewSegmenter(cfg.Report.MinChatBlockLength))
	orderingService := ordering.NewService(rollupRepo, parser)
	reportService := reporting.NewService(rollupRepo, cachedSpend, reporting.SystemClock{Location: cfg.Report.Location})

	spendSyncService := scheduler.NewSpendSnapshotSyncService(snapshotRepo, liveSpend, cfg)
	if err := spendSyncService.Start(ctx); err != nil {
		log.L.WithError(err).Error("Erro ao iniciar o agendador de sincronização do gasto diário")
	} else {
		log.L.Info("Agendador de sincronização do gasto diário iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		orderingService,
		reportService,
		handler.CronJobServices{SpendSnapshotSyncService: spendSyncService},
	)
	if err != nil {
		log.L.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		log.L.Error(err)
	}
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		log.L.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	log.L.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
