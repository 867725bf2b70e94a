package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billkit/internal/domain"
)

var errRowsUnavailable = errors.New("rows affected unavailable")

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return sqlx.NewDb(db, "pgx"), mock
}

func TestGenerationLogRepo_Claim_Inserted(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO generation_log").WillReturnResult(sqlmock.NewResult(0, 1))

	entry := &domain.GenerationLogEntry{ProfileID: uuid.New(), GenerationDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), InvoiceID: uuid.New()}
	claimed, err := NewGenerationLogRepo(db).Claim(context.Background(), entry)

	require.NoError(t, err)
	assert.True(t, claimed)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGenerationLogRepo_Claim_RowsAffectedError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("INSERT INTO generation_log").WillReturnResult(sqlmock.NewErrorResult(errRowsUnavailable))

	entry := &domain.GenerationLogEntry{ProfileID: uuid.New(), GenerationDate: time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), InvoiceID: uuid.New()}
	claimed, err := NewGenerationLogRepo(db).Claim(context.Background(), entry)

	assert.False(t, claimed)
	assert.ErrorIs(t, err, errRowsUnavailable)
	assert.Contains(t, err.Error(), "generationLogRepo.Claim rows")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepo_UpdateStatus_RowsAffectedError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE invoices SET status").WillReturnResult(sqlmock.NewErrorResult(errRowsUnavailable))

	inv := &domain.Invoice{ID: uuid.New(), Status: domain.InvoiceStatusSent, Version: 1}
	err := NewInvoiceRepo(db).UpdateStatus(context.Background(), inv, 1)

	assert.ErrorIs(t, err, errRowsUnavailable)
	assert.Equal(t, 1, inv.Version)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRecurringProfileRepo_Update_RowsAffectedError(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectExec("UPDATE recurring_profiles SET").WillReturnResult(sqlmock.NewErrorResult(errRowsUnavailable))

	p := &domain.RecurringProfile{ID: uuid.New(), Status: domain.ProfileStatusActive, GeneratedInvoices: domain.UUIDList{}, Version: 2}
	err := NewRecurringProfileRepo(db).Update(context.Background(), p, 2)

	assert.ErrorIs(t, err, errRowsUnavailable)
	assert.NoError(t, mock.ExpectationsWereMet())
}
