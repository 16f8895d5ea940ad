package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/orders-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/orders-report-api/internal/domain"
)

const (
	orderRollupsTable = "order_rollups"
)

// OrderRollupRepository guarda os resumos de lote. Linhas são apenas inseridas;
// os totais por time são somados na consulta.
type OrderRollupRepository interface {
	Insert(ctx context.Context, rollup *domain.TeamRollup) error
	SumByTeam(ctx context.Context) (map[domain.Team]domain.TeamTotals, error)
	DeleteAll(ctx context.Context) (int64, error)
}

type orderRollupRepository struct {
	conn postgres.Queryer
}

func NewOrderRollupRepository(conn postgres.Queryer) OrderRollupRepository {
	return &orderRollupRepository{
		conn: conn,
	}
}

func (r *orderRollupRepository) Insert(ctx context.Context, rollup *domain.TeamRollup) error {
	query, args, err := squirrel.
		Insert(orderRollupsTable).
		Columns("batch_id", "team", "order_count", "sales_total").
		Values(rollup.BatchID, string(rollup.Team), rollup.OrderCount, rollup.SalesTotal).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&rollup.ID, &rollup.RecordedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao inserir resumo do lote: %w", err)
	}

	return nil
}

func (r *orderRollupRepository) SumByTeam(ctx context.Context) (map[domain.Team]domain.TeamTotals, error) {
	query, args, err := squirrel.
		Select("team", "COALESCE(SUM(order_count), 0)", "COALESCE(SUM(sales_total), 0)").
		From(orderRollupsTable).
		GroupBy("team").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	totals := make(map[domain.Team]domain.TeamTotals)
	for rows.Next() {
		var (
			team   string
			count  int64
			amount decimal.Decimal
		)
		if err := rows.Scan(&team, &count, &amount); err != nil {
			return nil, fmt.Errorf("erro ao escanear totais: %w", err)
		}

		totals[domain.Team(team)] = domain.TeamTotals{
			OrderCount: count,
			SalesTotal: amount,
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return totals, nil
}

func (r *orderRollupRepository) DeleteAll(ctx context.Context) (int64, error) {
	query, args, err := squirrel.
		Delete(orderRollupsTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	return result.RowsAffected()
}
