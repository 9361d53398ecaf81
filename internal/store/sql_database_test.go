package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-identity-vault/internal/config"
	"github.com/MKhiriev/go-identity-vault/internal/logger"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)

func newDBFromSQL(db *sql.DB) *DB {
	return newDB(db, config.DriverPostgres, logger.Nop())
}

func newTestDB(t *testing.T) (*DB, sqlmock.Sqlmock) {
	t.Helper()

	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return newDBFromSQL(conn), mock
}

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestNewDB_DriverSelection(t *testing.T) {
	conn, _, err := sqlmock.New()
	require.NoError(t, err)
	defer conn.Close()

	pg := newDB(conn, config.DriverPostgres, logger.Nop())
	query, _, err := buildSelectTokenVersionQuery(pg.builder, 1)
	require.NoError(t, err)
	assert.Contains(t, query, "id = $1")
	assert.IsType(t, &PostgresErrorClassifier{}, pg.errorClassificator)

	lite := newDB(conn, config.DriverSQLite, logger.Nop())
	query, _, err = buildSelectTokenVersionQuery(lite.builder, 1)
	require.NoError(t, err)
	assert.Contains(t, query, "id = ?")
	assert.IsType(t, &SQLiteErrorClassifier{}, lite.errorClassificator)
}

func TestNewConnect_UnsupportedDriver(t *testing.T) {
	_, err := NewConnect(context.Background(), config.DB{Driver: "oracle", DSN: "x"}, logger.Nop())
	assert.ErrorContains(t, err, "unsupported database driver")
}

func TestDB_Exec(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectExec("UPDATE users").WillReturnResult(sqlmock.NewResult(0, 2))
	affected, err := db.exec(testContext(), db, "test", "UPDATE users SET name = $1", []any{"x"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), affected)

	mock.ExpectExec("UPDATE users").WillReturnError(sql.ErrConnDone)
	_, err = db.exec(testContext(), db, "test", "UPDATE users SET name = $1", []any{"x"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, sql.ErrConnDone)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDB_WithTx(t *testing.T) {
	t.Run("commit", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		err := db.withTx(testContext(), "test", func(tx *sql.Tx) error { return nil })
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		err := db.withTx(testContext(), "test", func(tx *sql.Tx) error { return ErrNotFound })
		assert.ErrorIs(t, err, ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("begin fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin().WillReturnError(sql.ErrConnDone)

		err := db.withTx(testContext(), "test", func(tx *sql.Tx) error { return nil })
		assert.ErrorIs(t, err, ErrBeginningTransaction)
	})

	t.Run("commit fails", func(t *testing.T) {
		db, mock := newTestDB(t)
		mock.ExpectBegin()
		mock.ExpectCommit().WillReturnError(sql.ErrConnDone)

		err := db.withTx(testContext(), "test", func(tx *sql.Tx) error { return nil })
		assert.ErrorIs(t, err, ErrCommitingTransaction)
	})
}
