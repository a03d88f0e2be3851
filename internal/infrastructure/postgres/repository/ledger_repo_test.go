package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{TranslateError: true})
	require.NoError(t, err)

	return db, mock
}

func TestFiscalIDExists(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultLedgerRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "fiscal_checks" WHERE fiscal_id = \$1`).
		WithArgs("F-123").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	exists, err := repo.FiscalIDExists(context.Background(), "F-123")
	require.NoError(t, err)
	assert.True(t, exists)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "fiscal_checks" WHERE fiscal_id = \$1`).
		WithArgs("F-999").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	exists, err = repo.FiscalIDExists(context.Background(), "F-999")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFiscalIDExists_QueryError(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultLedgerRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "fiscal_checks"`).
		WillReturnError(fmt.Errorf("connection reset"))

	_, err := repo.FiscalIDExists(context.Background(), "F-123")
	assert.Error(t, err)
}

func TestCountChecksForDay(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultLedgerRepository(db)

	dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "fiscal_checks" WHERE customer_id = \$1 AND \(created_at >= \$2 AND created_at < \$3\)`).
		WithArgs("cust-1", dayStart, dayEnd).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := repo.CountChecksForDay(context.Background(), "cust-1", dayStart, dayEnd)
	require.NoError(t, err)
	assert.Equal(t, int64(7), count)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetChecksByCustomerID_Pagination(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewDefaultLedgerRepository(db)

	mock.ExpectQuery(`SELECT count\(\*\) FROM "fiscal_checks" WHERE customer_id = \$1`).
		WithArgs("cust-1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	now := time.Now()
	rows := sqlmock.NewRows([]string{"id", "customer_id", "fiscal_id", "amount", "issued_at", "cashback_amount", "created_at"}).
		AddRow("chk-2", "cust-1", "F-2", "200.00", now, "2.00", now).
		AddRow("chk-1", "cust-1", "F-1", "100.00", now, "1.00", now)
	mock.ExpectQuery(`SELECT .* FROM "fiscal_checks" WHERE customer_id = \$1 ORDER BY created_at DESC LIMIT \$2`).
		WillReturnRows(rows)

	checks, total, err := repo.GetChecksByCustomerID(context.Background(), "cust-1", 1, 20)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	require.Len(t, checks, 2)
	assert.Equal(t, "F-2", checks[0].FiscalID)
	assert.Equal(t, "F-1", checks[1].FiscalID)
}
