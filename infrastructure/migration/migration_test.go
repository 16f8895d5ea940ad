package migration

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vfg2006/orders-report-api/infrastructure/database/postgres"
)

func TestRun(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS order_rollups \(.*sales_total NUMERIC NOT NULL`).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("ALTER TABLE order_rollups ALTER COLUMN sales_total TYPE NUMERIC")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE INDEX IF NOT EXISTS idx_order_rollups_team")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS team_spend_snapshots")).WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	err = Run(context.Background(), &postgres.Connection{DB: db})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRun_Rollback(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("CREATE TABLE IF NOT EXISTS order_rollups")).WillReturnError(errors.New("permission denied"))
	mock.ExpectRollback()

	err = Run(context.Background(), &postgres.Connection{DB: db})

	assert.ErrorContains(t, err, "create_order_rollups")
	assert.NoError(t, mock.ExpectationsWereMet())
}
