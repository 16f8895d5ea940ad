package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/vfg2006/orders-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/orders-report-api/pkg/log"
)

type step struct {
	name      string
	statement string
}

// steps são idempotentes e executados na ordem a cada inicialização
var steps = []step{
	{
		name: "create_order_rollups",
		statement: `CREATE TABLE IF NOT EXISTS order_rollups (
			id BIGSERIAL PRIMARY KEY,
			batch_id VARCHAR(12) NOT NULL,
			team VARCHAR(16) NOT NULL,
			order_count INTEGER NOT NULL CHECK (order_count >= 0),
			sales_total NUMERIC NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		// bases antigas guardavam o total arredondado em centavos
		name:      "alter_order_rollups_sales_total",
		statement: `ALTER TABLE order_rollups ALTER COLUMN sales_total TYPE NUMERIC`,
	},
	{
		name:      "index_order_rollups_team",
		statement: `CREATE INDEX IF NOT EXISTS idx_order_rollups_team ON order_rollups (team)`,
	},
	{
		name: "create_team_spend_snapshots",
		statement: `CREATE TABLE IF NOT EXISTS team_spend_snapshots (
			id BIGSERIAL PRIMARY KEY,
			team VARCHAR(16) NOT NULL,
			date DATE NOT NULL,
			spend NUMERIC(14,2) NOT NULL DEFAULT 0,
			created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			UNIQUE (team, date)
		)`,
	},
}

// Run cria as tabelas que ainda não existem em uma única transação
func Run(ctx context.Context, conn postgres.Conn) error {
	startTime := time.Now()

	err := conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		for _, s := range steps {
			if _, err := tx.ExecContext(ctx, s.statement); err != nil {
				return fmt.Errorf("erro ao executar migração %s: %w", s.name, err)
			}
			log.L.Debugf("Migração %s aplicada", s.name)
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.L.WithFields(log.Fields{
		"steps":       len(steps),
		"duration_ms": time.Since(startTime).Milliseconds(),
	}).Info("Migrações aplicadas")

	return nil
}
