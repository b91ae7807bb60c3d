package storage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"zetanom/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	return NewStore(db), mock
}

func TestTransactionLockContention(t *testing.T) {
	store, mock := newMockStore(t)

	store.mu.Lock()
	called := false
	err := store.Transaction(context.Background(), func(tx *gorm.DB) error {
		called = true
		return nil
	})
	store.mu.Unlock()

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrDatabaseLocked))
	assert.True(t, errors.Is(err, domain.ErrStorageFault))
	assert.False(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionCommits(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM entries").WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	err := store.Transaction(context.Background(), func(tx *gorm.DB) error {
		return tx.Exec("DELETE FROM entries").Error
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionErrorTranslation(t *testing.T) {
	tests := []struct {
		name     string
		dbErr    error
		expected error
	}{
		{
			name:     "driver failure becomes a storage fault",
			dbErr:    errors.New("disk I/O error"),
			expected: domain.ErrStorageFault,
		},
		{
			name:     "foreign key violation becomes an integrity error",
			dbErr:    &pgconn.PgError{Code: "23503", Message: "violates foreign key constraint"},
			expected: domain.ErrReferenceViolated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store, mock := newMockStore(t)

			mock.ExpectBegin()
			mock.ExpectExec("DELETE FROM foods").WillReturnError(tt.dbErr)
			mock.ExpectRollback()

			err := store.Transaction(context.Background(), func(tx *gorm.DB) error {
				return tx.Exec("DELETE FROM foods").Error
			})

			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.expected))
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestTransactionKeepsDomainErrors(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := store.Transaction(context.Background(), func(tx *gorm.DB) error {
		return domain.ErrFoodNotFound
	})

	assert.Same(t, domain.ErrFoodNotFound, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestTransactionReleasesLock(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectBegin()
	mock.ExpectRollback()
	mock.ExpectBegin()
	mock.ExpectCommit()

	ctx := context.Background()
	_ = store.Transaction(ctx, func(tx *gorm.DB) error { return errors.New("abort") })
	require.NoError(t, store.Transaction(ctx, func(tx *gorm.DB) error { return nil }))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLiteDSN(t *testing.T) {
	assert.Equal(t, "/tmp/zetanom.db?_foreign_keys=on", SQLiteDSN("/tmp/zetanom.db"))
	assert.Equal(t, "file:test.db?cache=shared&_foreign_keys=on", SQLiteDSN("file:test.db?cache=shared"))

	first, second := SQLiteDSN(MemoryPath), SQLiteDSN(MemoryPath)
	assert.True(t, strings.HasPrefix(first, "file:zetanom-"))
	assert.Contains(t, first, "mode=memory")
	assert.NotEqual(t, first, second)
}

func TestOpenMemoryIsolated(t *testing.T) {
	first, err := OpenMemory()
	require.NoError(t, err)
	second, err := OpenMemory()
	require.NoError(t, err)

	require.NoError(t, first.Exec("CREATE TABLE probe (id INTEGER)").Error)
	assert.True(t, first.Migrator().HasTable("probe"))
	assert.False(t, second.Migrator().HasTable("probe"))
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open("mysql", "", logger.Silent)
	assert.Error(t, err)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, logger.Silent, ParseLogLevel("silent"))
	assert.Equal(t, logger.Error, ParseLogLevel("error"))
	assert.Equal(t, logger.Info, ParseLogLevel("info"))
	assert.Equal(t, logger.Warn, ParseLogLevel("warn"))
	assert.Equal(t, logger.Warn, ParseLogLevel(""))
}
