package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/sma-dashboard-api/internal/models"
)

var recordColumns = []string{"id", "resource", "position", "status", "payload", "created_at", "updated_at"}

func TestRecordRepositoryList(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()
	repo := NewRecordRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(recordColumns).
		AddRow("LR-001", "leave-requests", 0, "Pending", []byte(`{"id":"LR-001","status":"Pending"}`), now, now).
		AddRow("LR-002", "leave-requests", 1, "Approved", []byte(`{"id":"LR-002","status":"Approved"}`), now, now)
	mock.ExpectQuery(regexp.QuoteMeta("FROM records WHERE resource = $1 ORDER BY position ASC, id ASC")).
		WithArgs("leave-requests").
		WillReturnRows(rows)

	result, err := repo.List(context.Background(), "leave-requests")
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "LR-002", result[1].ID)
	assert.JSONEq(t, `{"id":"LR-001","status":"Pending"}`, string(result[0].Payload))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()
	repo := NewRecordRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM records WHERE resource = $1 AND id = $2")).
		WithArgs("assets", "AST-404").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "assets", "AST-404")
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepositoryUpdateStatus(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()
	repo := NewRecordRepository(db)

	now := time.Now()
	payload := []byte(`{"id":"EXP-001","status":"submitted"}`)
	mock.ExpectExec(regexp.QuoteMeta("UPDATE records SET status = ?, payload = ?, updated_at = ? WHERE resource = ? AND id = ? AND status = ?")).
		WithArgs("submitted", payload, now, "expenses", "EXP-001", "draft").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus(context.Background(), UpdateStatusParams{
		Resource: "expenses", ID: "EXP-001", From: "draft", To: "submitted", Payload: payload, UpdatedAt: now,
	})
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepositoryUpdateStatusConflict(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()
	repo := NewRecordRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE records SET status")).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateStatus(context.Background(), UpdateStatusParams{Resource: "expenses", ID: "EXP-001", From: "draft", To: "submitted"})
	assert.True(t, errors.Is(err, sql.ErrNoRows))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepositoryUpsert(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()
	repo := NewRecordRepository(db)

	now := time.Now()
	rows := []models.RecordRow{
		{ID: "USR-001", Resource: "users", Position: 0, Status: "active", Payload: []byte(`{}`), CreatedAt: now, UpdatedAt: now},
		{ID: "USR-002", Resource: "users", Position: 1, Status: "inactive", Payload: []byte(`{}`), CreatedAt: now, UpdatedAt: now},
	}
	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO records")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO records")).WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.Upsert(context.Background(), rows))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRecordRepositoryUpsertRollsBack(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()
	repo := NewRecordRepository(db)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO records")).WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.Upsert(context.Background(), []models.RecordRow{{ID: "USR-001", Resource: "users"}})
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}
