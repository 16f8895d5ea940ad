package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/vfg2006/orders-report-api/infrastructure/database/postgres"
	"github.com/vfg2006/orders-report-api/internal/domain"
)

const (
	spendSnapshotsTable = "team_spend_snapshots"
)

type SpendSnapshotRepository interface {
	SaveOrUpdate(ctx context.Context, entry *domain.TeamSpendEntry) error
	GetByDate(ctx context.Context, date time.Time) (map[domain.Team]decimal.Decimal, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type spendSnapshotRepository struct {
	conn postgres.Queryer
}

func NewSpendSnapshotRepository(conn postgres.Queryer) SpendSnapshotRepository {
	return &spendSnapshotRepository{
		conn: conn,
	}
}

func (r *spendSnapshotRepository) SaveOrUpdate(ctx context.Context, entry *domain.TeamSpendEntry) error {
	query, args, err := squirrel.StatementBuilder.
		Insert(spendSnapshotsTable).
		Columns("team", "date", "spend").
		Values(
			string(entry.Team),
			entry.Date.Format(time.DateOnly),
			entry.Spend,
		).
		Suffix(`
			ON CONFLICT (team, date) DO UPDATE SET
				spend = EXCLUDED.spend,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *spendSnapshotRepository) GetByDate(ctx context.Context, date time.Time) (map[domain.Team]decimal.Decimal, error) {
	query, args, err := squirrel.
		Select("team", "spend").
		From(spendSnapshotsTable).
		Where(squirrel.Eq{"date": date.Format(time.DateOnly)}).
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

	spend := make(map[domain.Team]decimal.Decimal)
	for rows.Next() {
		var (
			team  string
			value decimal.Decimal
		)
		if err := rows.Scan(&team, &value); err != nil {
			return nil, fmt.Errorf("erro ao escanear gasto: %w", err)
		}
		spend[domain.Team(team)] = value
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return spend, nil
}

func (r *spendSnapshotRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	query, args, err := squirrel.
		Delete(spendSnapshotsTable).
		Where(squirrel.Lt{"date": cutoff.Format(time.DateOnly)}).
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
