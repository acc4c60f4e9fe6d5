package store

import (
	"context"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
)

// Error paths are driven through sqlmock so they don't depend on coaxing a
// real SQLite file into failing.

func newMockStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &Store{db: db, dbPath: "mock"}, mock
}

func TestInsertDatasetBeginFails(t *testing.T) {
	st, mock := newMockStore(t)
	mock.ExpectBegin().WillReturnError(errors.New("disk I/O error"))

	_, err := st.InsertDataset(context.Background(), testDataset())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to begin transaction")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestInsertDatasetRollsBackOnInsertError(t *testing.T) {
	st, mock := newMockStore(t)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare("INSERT INTO users")
	prep.ExpectExec().WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	_, err := st.InsertDataset(context.Background(), testDataset())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to insert user 1")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCountsPropagatesError(t *testing.T) {
	st, mock := newMockStore(t)
	mock.ExpectQuery("SELECT COUNT").WillReturnError(errors.New("no such table: users"))

	_, err := st.Counts(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "failed to count users")
}
