package iostore_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gnames/gn"
	"github.com/sigapair/airlab/internal/iostore"
	"github.com/sigapair/airlab/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mockStore(t *testing.T, d iostore.Dialect) (*iostore.Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return iostore.New(db, d), mock
}

func TestReplaceDeleteFails(t *testing.T) {
	s, mock := mockStore(t, iostore.SQLite)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM lab_results WHERE report_id = ?")).
		WithArgs("r-1").
		WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err := s.Replace(context.Background(), "r-1", rows("r-1", 50, testedAt))
	require.Error(t, err)
	assert.Equal(t, errcode.StoreDeleteError, err.(*gn.Error).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceInsertFails(t *testing.T) {
	s, mock := mockStore(t, iostore.SQLite)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM lab_results").
		WillReturnResult(sqlmock.NewResult(0, 8))
	mock.ExpectExec("INSERT INTO lab_results").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := s.Replace(context.Background(), "r-1", rows("r-1", 50, testedAt))
	require.Error(t, err)
	assert.Equal(t, errcode.StoreInsertError, err.(*gn.Error).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplaceCommitFails(t *testing.T) {
	s, mock := mockStore(t, iostore.SQLite)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM lab_results").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO lab_results").
		WillReturnResult(sqlmock.NewResult(0, 8))
	mock.ExpectCommit().WillReturnError(errors.New("database is locked"))

	err := s.Replace(context.Background(), "r-1", rows("r-1", 50, testedAt))
	require.Error(t, err)
	assert.Equal(t, errcode.StoreCommitError, err.(*gn.Error).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReplacePostgres(t *testing.T) {
	s, mock := mockStore(t, iostore.Postgres)

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta("SELECT pg_advisory_xact_lock(hashtext($1))")).
		WithArgs("r-1").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM lab_results WHERE report_id = $1")).
		WithArgs("r-1").
		WillReturnResult(sqlmock.NewResult(0, 8))
	mock.ExpectExec(regexp.QuoteMeta("($71, $72, $73, $74, $75, $76, $77, $78, $79, $80)")).
		WillReturnResult(sqlmock.NewResult(0, 8))
	mock.ExpectCommit()

	err := s.Replace(context.Background(), "r-1", rows("r-1", 50, testedAt))
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReadGroupedQueryFails(t *testing.T) {
	s, mock := mockStore(t, iostore.Postgres)

	mock.ExpectQuery(regexp.QuoteMeta("WHERE report_id IN ($1, $2)")).
		WithArgs("a", "b").
		WillReturnError(errors.New("connection reset"))

	_, err := s.ReadGrouped(context.Background(), []string{"a", "b"})
	require.Error(t, err)
	assert.Equal(t, errcode.StoreQueryError, err.(*gn.Error).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateStatusFails(t *testing.T) {
	s, mock := mockStore(t, iostore.Postgres)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reports SET status = $1 WHERE id = $2")).
		WithArgs("selesai", "r-1").
		WillReturnError(errors.New("read-only transaction"))

	err := s.UpdateStatus(context.Background(), "r-1", "selesai")
	require.Error(t, err)
	assert.Equal(t, errcode.StoreUpdateStatusError, err.(*gn.Error).Code)
	assert.NoError(t, mock.ExpectationsWereMet())
}
